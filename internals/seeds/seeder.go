package seeds

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	announcementModel "mentorhub_backend/internals/features/announcements/model"
	chatModel "mentorhub_backend/internals/features/chat/model"
	notificationModel "mentorhub_backend/internals/features/notifications/model"
	ratingModel "mentorhub_backend/internals/features/ratings/model"
	resourceModel "mentorhub_backend/internals/features/resources/model"
	salesModel "mentorhub_backend/internals/features/sales/model"
	sessionModel "mentorhub_backend/internals/features/sessions/model"
	userModel "mentorhub_backend/internals/features/users/model"
	helper "mentorhub_backend/internals/helpers"
)

// SeedTableOrder is the topological insert order: every table appears after
// the tables it references.
func SeedTableOrder() []string {
	return []string{
		userModel.UserModel{}.TableName(),
		sessionModel.SessionModel{}.TableName(),
		sessionModel.SessionMenteeModel{}.TableName(),
		announcementModel.AnnouncementModel{}.TableName(),
		resourceModel.ResourceModel{}.TableName(),
		chatModel.ChatGroupModel{}.TableName(),
		chatModel.GroupMemberModel{}.TableName(),
		chatModel.MessageModel{}.TableName(),
		ratingModel.RatingModel{}.TableName(),
		salesModel.SalesDataModel{}.TableName(),
		notificationModel.NotificationModel{}.TableName(),
	}
}

// ResetTableOrder is the delete order: dependents before their referents,
// i.e. the insert order reversed.
func ResetTableOrder() []string {
	order := SeedTableOrder()
	reversed := make([]string, len(order))
	for i, t := range order {
		reversed[len(order)-1-i] = t
	}
	return reversed
}

// Run clears and repopulates the demo dataset. The whole reset-and-seed
// sequence is one transaction: a failed run rolls back instead of leaving
// the store cleared but half filled.
func Run(db *gorm.DB, now time.Time) error {
	log.Println("🔐 Hashing demo password (once, reused for every account)...")
	passwordHash, err := helper.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	plan := BuildDemoPlan(now, passwordHash)

	err = db.Transaction(func(tx *gorm.DB) error {
		log.Println("🧹 Clearing existing data (dependents first)...")
		for _, table := range ResetTableOrder() {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		if err := insertPlan(tx, plan); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	printCredentials()
	return nil
}

func insertPlan(tx *gorm.DB, plan *DemoPlan) error {
	if err := tx.Create(&plan.Users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Printf("✅ Seeded %d users", len(plan.Users))

	if err := tx.Create(&plan.Sessions).Error; err != nil {
		return fmt.Errorf("seed sessions: %w", err)
	}
	log.Printf("✅ Seeded %d sessions", len(plan.Sessions))

	if err := tx.Create(&plan.SessionMentees).Error; err != nil {
		return fmt.Errorf("seed session mentees: %w", err)
	}
	log.Printf("✅ Seeded %d session enrollments", len(plan.SessionMentees))

	if err := tx.Create(&plan.Announcements).Error; err != nil {
		return fmt.Errorf("seed announcements: %w", err)
	}
	log.Printf("✅ Seeded %d announcements", len(plan.Announcements))

	if err := tx.Create(&plan.Resources).Error; err != nil {
		return fmt.Errorf("seed resources: %w", err)
	}
	log.Printf("✅ Seeded %d resources", len(plan.Resources))

	if err := tx.Create(&plan.ChatGroups).Error; err != nil {
		return fmt.Errorf("seed chat groups: %w", err)
	}
	log.Printf("✅ Seeded %d chat groups", len(plan.ChatGroups))

	if err := tx.Create(&plan.GroupMembers).Error; err != nil {
		return fmt.Errorf("seed group members: %w", err)
	}
	log.Printf("✅ Seeded %d group members", len(plan.GroupMembers))

	if err := tx.Create(&plan.Messages).Error; err != nil {
		return fmt.Errorf("seed messages: %w", err)
	}
	log.Printf("✅ Seeded %d messages", len(plan.Messages))

	if err := tx.Create(&plan.Ratings).Error; err != nil {
		return fmt.Errorf("seed ratings: %w", err)
	}
	log.Printf("✅ Seeded %d ratings", len(plan.Ratings))

	if err := tx.Create(&plan.SalesData).Error; err != nil {
		return fmt.Errorf("seed sales data: %w", err)
	}
	log.Printf("✅ Seeded %d sales rows", len(plan.SalesData))

	if err := tx.Create(&plan.Notifications).Error; err != nil {
		return fmt.Errorf("seed notifications: %w", err)
	}
	log.Printf("✅ Seeded %d notifications", len(plan.Notifications))

	return nil
}

func printCredentials() {
	log.Println("🎉 Demo data seeded successfully!")
	log.Println("   Default logins (password for all: " + DemoPassword + ")")
	log.Println("   👑 Admin : " + AdminEmail)
	log.Println("   🧑‍🏫 Mentor: " + MentorEmail)
	log.Println("   🏪 Mentee: " + MenteeEmail)
}
