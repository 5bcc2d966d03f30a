package constants

import "fmt"

// Platform roles. Fixed at creation for seeded accounts.
const (
	RoleAdmin  = "ADMIN"
	RoleMentor = "MENTOR"
	RoleMentee = "MENTEE"
)

// Account statuses.
const (
	StatusActive          = "ACTIVE"
	StatusPendingApproval = "PENDING_APPROVAL"
)

// Session statuses.
const (
	SessionScheduled = "SCHEDULED"
	SessionCompleted = "COMPLETED"
	SessionCancelled = "CANCELLED"
)

// Announcement target covering every role.
const TargetAllRoles = "ALL"

// Template pesan error role
const (
	ErrOnlyMentorsCanAccess = "❌ Only mentors or admins may access %s."
	ErrOnlyAdminsCanAccess  = "❌ Only admins may access %s."
	ErrOnlyMenteesCanAccess = "❌ Only mentees may access %s."
)

func RoleErrorMentor(feature string) string {
	return fmt.Sprintf(ErrOnlyMentorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorMentee(feature string) string {
	return fmt.Sprintf(ErrOnlyMenteesCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleMentor,
		RoleMentee,
	}

	MentorAndAbove = []string{
		RoleMentor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	MenteeOnly = []string{
		RoleMentee,
	}
)
