package seeds

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"mentorhub_backend/internals/constants"
	announcementModel "mentorhub_backend/internals/features/announcements/model"
	chatModel "mentorhub_backend/internals/features/chat/model"
	notificationModel "mentorhub_backend/internals/features/notifications/model"
	ratingModel "mentorhub_backend/internals/features/ratings/model"
	resourceModel "mentorhub_backend/internals/features/resources/model"
	salesModel "mentorhub_backend/internals/features/sales/model"
	sessionModel "mentorhub_backend/internals/features/sessions/model"
	userModel "mentorhub_backend/internals/features/users/model"
)

// DemoPassword is shared by every seeded account; it is hashed once per run.
const DemoPassword = "password123"

const (
	AdminEmail  = "admin@example.com"
	MentorEmail = "mentor@example.com"
	MenteeEmail = "mentee@example.com"
)

// DemoPlan is the full dataset held in memory before any insert happens.
// Every cross-reference is threaded through these generated IDs, so the
// insert phases never have to query anything back.
type DemoPlan struct {
	Users          []userModel.UserModel
	Sessions       []sessionModel.SessionModel
	SessionMentees []sessionModel.SessionMenteeModel
	Announcements  []announcementModel.AnnouncementModel
	Resources      []resourceModel.ResourceModel
	ChatGroups     []chatModel.ChatGroupModel
	GroupMembers   []chatModel.GroupMemberModel
	Messages       []chatModel.MessageModel
	Ratings        []ratingModel.RatingModel
	SalesData      []salesModel.SalesDataModel
	Notifications  []notificationModel.NotificationModel
}

func strPtr(s string) *string { return &s }

// BuildDemoPlan assembles the demo dataset. Referenced rows are always
// created by an earlier phase than the rows that point at them.
func BuildDemoPlan(now time.Time, passwordHash string) *DemoPlan {
	plan := &DemoPlan{}

	// ---------- users ----------
	admin := userModel.UserModel{
		ID: uuid.New(), Name: "Admin User", Email: AdminEmail,
		PasswordHash: passwordHash, Role: constants.RoleAdmin,
		Status: constants.StatusActive, Verified: true,
	}
	mentor1 := userModel.UserModel{
		ID: uuid.New(), Name: "Rina Wijaya", Email: MentorEmail,
		PasswordHash: passwordHash, Role: constants.RoleMentor,
		Status: constants.StatusActive, Verified: true,
		Expertise: strPtr("Digital Marketing"),
	}
	mentor2 := userModel.UserModel{
		ID: uuid.New(), Name: "Andi Pratama", Email: "mentor2@example.com",
		PasswordHash: passwordHash, Role: constants.RoleMentor,
		Status: constants.StatusActive, Verified: true,
		Expertise: strPtr("Financial Planning"),
	}
	mentee1 := userModel.UserModel{
		ID: uuid.New(), Name: "Dewi Lestari", Email: MenteeEmail,
		PasswordHash: passwordHash, Role: constants.RoleMentee,
		Status: constants.StatusActive, Verified: true,
		CompanyName: strPtr("Dewi Snacks"),
	}
	mentee2 := userModel.UserModel{
		ID: uuid.New(), Name: "Joko Santoso", Email: "mentee2@example.com",
		PasswordHash: passwordHash, Role: constants.RoleMentee,
		Status: constants.StatusActive, Verified: true,
		CompanyName: strPtr("Santoso Craft"),
	}
	mentee3 := userModel.UserModel{
		ID: uuid.New(), Name: "Maya Putri", Email: "mentee3@example.com",
		PasswordHash: passwordHash, Role: constants.RoleMentee,
		Status: constants.StatusActive, Verified: true,
		CompanyName: strPtr("Putri Boutique"),
	}
	plan.Users = []userModel.UserModel{admin, mentor1, mentor2, mentee1, mentee2, mentee3}

	// ---------- sessions ----------
	session1 := sessionModel.SessionModel{
		SessionID:          uuid.New(),
		SessionTitle:       "Growing Your Online Presence",
		SessionDescription: "Hands-on session about social media strategy for small businesses.",
		SessionDate:        now.AddDate(0, 0, 7),
		SessionDuration:    90,
		SessionStatus:      constants.SessionScheduled,
		SessionMentorID:    mentor1.ID,
	}
	session2 := sessionModel.SessionModel{
		SessionID:          uuid.New(),
		SessionTitle:       "Cash Flow Basics",
		SessionDescription: "Budgeting and cash-flow planning for first-year businesses.",
		SessionDate:        now.AddDate(0, 0, 14),
		SessionDuration:    60,
		SessionStatus:      constants.SessionScheduled,
		SessionMentorID:    mentor2.ID,
	}
	session3 := sessionModel.SessionModel{
		SessionID:          uuid.New(),
		SessionTitle:       "Kickoff: Setting Business Goals",
		SessionDescription: "Completed onboarding session from last month.",
		SessionDate:        now.AddDate(0, -1, 0),
		SessionDuration:    60,
		SessionStatus:      constants.SessionCompleted,
		SessionMentorID:    mentor1.ID,
	}
	plan.Sessions = []sessionModel.SessionModel{session1, session2, session3}

	plan.SessionMentees = []sessionModel.SessionMenteeModel{
		{SessionMenteeID: uuid.New(), SessionID: session1.SessionID, MenteeID: mentee1.ID},
		{SessionMenteeID: uuid.New(), SessionID: session1.SessionID, MenteeID: mentee2.ID},
		{SessionMenteeID: uuid.New(), SessionID: session2.SessionID, MenteeID: mentee3.ID},
		{SessionMenteeID: uuid.New(), SessionID: session3.SessionID, MenteeID: mentee1.ID},
	}

	// ---------- announcements ----------
	plan.Announcements = []announcementModel.AnnouncementModel{
		{
			AnnouncementID:         uuid.New(),
			AnnouncementTitle:      "Welcome to MentorHub",
			AnnouncementMessage:    "The platform is live. Browse sessions and book your first one!",
			AnnouncementTargetRole: constants.TargetAllRoles,
			AnnouncementCreatedBy:  admin.ID,
		},
		{
			AnnouncementID:         uuid.New(),
			AnnouncementTitle:      "Monthly sales reports due",
			AnnouncementMessage:    "Please record last month's revenue before the 5th.",
			AnnouncementTargetRole: constants.RoleMentee,
			AnnouncementCreatedBy:  admin.ID,
		},
	}

	// ---------- resources ----------
	plan.Resources = []resourceModel.ResourceModel{
		{
			ResourceID:          uuid.New(),
			ResourceTitle:       "Marketing Plan Template",
			ResourceDescription: "Fill-in-the-blank one-page marketing plan.",
			ResourceFileURL:     "https://files.example.com/resources/marketing-plan.pdf",
			ResourceFileName:    "marketing-plan.pdf",
			ResourceFileSize:    482133,
			ResourceFileType:    constants.FileTypePDF,
			ResourceTags:        []string{"marketing", "template"},
			ResourceUploadedBy:  mentor1.ID,
		},
		{
			ResourceID:          uuid.New(),
			ResourceTitle:       "Budget Spreadsheet",
			ResourceDescription: "Twelve-month budget tracker used in the cash flow session.",
			ResourceFileURL:     "https://files.example.com/resources/budget.xlsx",
			ResourceFileName:    "budget.xlsx",
			ResourceFileSize:    73420,
			ResourceFileType:    constants.FileTypeUnknown,
			ResourceTags:        []string{"finance"},
			ResourceUploadedBy:  mentor2.ID,
		},
	}

	// ---------- chat ----------
	general := chatModel.ChatGroupModel{
		ChatGroupID:        uuid.New(),
		ChatGroupName:      "General",
		ChatGroupIsGeneral: true,
		ChatGroupCreatedBy: nil, // the one group allowed a null creator
	}
	lounge := chatModel.ChatGroupModel{
		ChatGroupID:        uuid.New(),
		ChatGroupName:      "Mentor Lounge",
		ChatGroupCreatedBy: &mentor1.ID,
	}
	plan.ChatGroups = []chatModel.ChatGroupModel{general, lounge}

	for _, u := range plan.Users {
		plan.GroupMembers = append(plan.GroupMembers, chatModel.GroupMemberModel{
			GroupMemberID: uuid.New(), GroupID: general.ChatGroupID, UserID: u.ID,
		})
	}
	plan.GroupMembers = append(plan.GroupMembers,
		chatModel.GroupMemberModel{GroupMemberID: uuid.New(), GroupID: lounge.ChatGroupID, UserID: mentor1.ID},
		chatModel.GroupMemberModel{GroupMemberID: uuid.New(), GroupID: lounge.ChatGroupID, UserID: mentor2.ID},
	)

	plan.Messages = []chatModel.MessageModel{
		{
			MessageID:       uuid.New(),
			MessageContent:  "Welcome everyone! Introduce yourself and your business here.",
			MessageSenderID: admin.ID,
			MessageGroupID:  &general.ChatGroupID,
		},
		{
			MessageID:       uuid.New(),
			MessageContent:  "Hi all, Dewi here — we make traditional snacks in Bandung.",
			MessageSenderID: mentee1.ID,
			MessageGroupID:  &general.ChatGroupID,
		},
		{
			MessageID:         uuid.New(),
			MessageContent:    "Thank you for the kickoff session, it really helped!",
			MessageSenderID:   mentee1.ID,
			MessageReceiverID: &mentor1.ID,
		},
	}

	// ---------- ratings ----------
	plan.Ratings = []ratingModel.RatingModel{
		{
			RatingID: uuid.New(), RatingMentorID: mentor1.ID, RatingMenteeID: mentee1.ID,
			RatingScore: 5, RatingComment: "Very practical advice, highly recommended.",
		},
		{
			RatingID: uuid.New(), RatingMentorID: mentor1.ID, RatingMenteeID: mentee2.ID,
			RatingScore: 4, RatingComment: "Good session, would love a follow-up on ads.",
		},
	}

	// ---------- sales data ----------
	// Three distinct periods per mentee so the external uniqueness rule on
	// (user, month, year) can never trip within one run.
	periods := LastThreePeriods(now)
	revenues := map[uuid.UUID][3]float64{
		mentee1.ID: {1250.00, 1710.50, 2240.00},
		mentee2.ID: {830.00, 990.25, 1105.75},
		mentee3.ID: {2100.00, 1985.00, 2675.40},
	}
	categories := map[uuid.UUID]string{
		mentee1.ID: "Food & Beverage",
		mentee2.ID: "Handicraft",
		mentee3.ID: "Fashion",
	}
	for _, mentee := range []userModel.UserModel{mentee1, mentee2, mentee3} {
		for i, p := range periods {
			plan.SalesData = append(plan.SalesData, salesModel.SalesDataModel{
				SalesID:       uuid.New(),
				SalesUserID:   mentee.ID,
				SalesRevenue:  revenues[mentee.ID][i],
				SalesCategory: categories[mentee.ID],
				SalesMonth:    p.Month,
				SalesYear:     p.Year,
			})
		}
	}

	// ---------- notifications ----------
	sessionPayload := datatypes.JSON(fmt.Appendf(nil, `{"session_id":%q}`, session1.SessionID))
	plan.Notifications = []notificationModel.NotificationModel{
		{
			NotificationID:      uuid.New(),
			NotificationUserID:  mentee1.ID,
			NotificationTitle:   "Session reminder",
			NotificationMessage: "Growing Your Online Presence starts in one week.",
			NotificationType:    "SESSION",
			NotificationPayload: sessionPayload,
		},
		{
			NotificationID:      uuid.New(),
			NotificationUserID:  mentor1.ID,
			NotificationTitle:   "New rating received",
			NotificationMessage: "Dewi Lestari rated your session 5 stars.",
			NotificationType:    "RATING",
		},
		{
			NotificationID:      uuid.New(),
			NotificationUserID:  mentee2.ID,
			NotificationTitle:   "Welcome!",
			NotificationMessage: "Your account is ready. Join the General chat to say hello.",
			NotificationType:    "SYSTEM",
			NotificationRead:    true,
		},
	}

	return plan
}
