package bootstrap

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mentorhub_backend/internals/configs"
	"mentorhub_backend/internals/constants"
	helper "mentorhub_backend/internals/helpers"
)

// AdminOptions controls the account EnsureAdmin converges the store to.
type AdminOptions struct {
	Email    string
	Password string
	Name     string
}

const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "Admin User"
)

// AdminOptionsFromEnv reads ADMIN_EMAIL / ADMIN_PASSWORD / ADMIN_NAME,
// treating an empty value the same as an unset one.
func AdminOptionsFromEnv() AdminOptions {
	opts := AdminOptions{
		Email:    configs.GetEnv("ADMIN_EMAIL", DefaultAdminEmail),
		Password: configs.GetEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		Name:     configs.GetEnv("ADMIN_NAME", DefaultAdminName),
	}
	if opts.Email == "" {
		opts.Email = DefaultAdminEmail
	}
	if opts.Password == "" {
		opts.Password = DefaultAdminPassword
	}
	if opts.Name == "" {
		opts.Name = DefaultAdminName
	}
	return opts
}

// requiredUserColumns is every column the raw statements below touch.
var requiredUserColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"role",
	"status",
	"verified",
	"created_at",
	"updated_at",
}

// MissingUserColumns diffs the required set against what the live table has.
func MissingUserColumns(present []string) []string {
	have := make(map[string]bool, len(present))
	for _, c := range present {
		have[strings.ToLower(c)] = true
	}
	var missing []string
	for _, c := range requiredUserColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// ValidateUsersTable checks the users table exposes every column the raw
// SQL below assumes, so a schema drift fails loudly before any write.
func ValidateUsersTable(db *gorm.DB) error {
	var present []string
	err := db.Raw(
		`SELECT column_name FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = 'users'`,
	).Scan(&present).Error
	if err != nil {
		return fmt.Errorf("inspect users table: %w", err)
	}
	if len(present) == 0 {
		return fmt.Errorf("users table not found; run migrations first")
	}
	if missing := MissingUserColumns(present); len(missing) > 0 {
		return fmt.Errorf("users table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// EnsureAdmin makes sure exactly one account with opts.Email exists as a
// verified, active admin. Re-runs converge to the same state: an existing
// row keeps its id and created_at, everything else is overwritten.
func EnsureAdmin(db *gorm.DB, opts AdminOptions) error {
	if err := ValidateUsersTable(db); err != nil {
		return err
	}

	passwordHash, err := helper.HashPassword(opts.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	var existingID string
	err = db.Raw(`SELECT id FROM users WHERE email = ?`, opts.Email).Scan(&existingID).Error
	if err != nil {
		return fmt.Errorf("look up admin account: %w", err)
	}

	if existingID != "" {
		log.Printf("♻️ Admin account %s already exists, refreshing it...", opts.Email)
		err = db.Exec(
			`UPDATE users
			 SET name = ?, password_hash = ?, role = ?, status = ?, verified = true, updated_at = NOW()
			 WHERE id = ?`,
			opts.Name, passwordHash, constants.RoleAdmin, constants.StatusActive, existingID,
		).Error
		if err != nil {
			return fmt.Errorf("update admin account: %w", err)
		}
	} else {
		log.Printf("✨ Creating admin account %s...", opts.Email)
		err = db.Exec(
			`INSERT INTO users (id, name, email, password_hash, role, status, verified, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, true, NOW(), NOW())`,
			uuid.New(), opts.Name, opts.Email, passwordHash, constants.RoleAdmin, constants.StatusActive,
		).Error
		if err != nil {
			return fmt.Errorf("insert admin account: %w", err)
		}
	}

	log.Println("✅ Admin account ready")
	log.Println("   📧 Email   : " + opts.Email)
	log.Println("   🔑 Password: " + opts.Password)
	return nil
}
