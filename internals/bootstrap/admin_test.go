package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminOptionsFromEnvDefaults(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_NAME", "")

	opts := AdminOptionsFromEnv()

	assert.Equal(t, DefaultAdminEmail, opts.Email)
	assert.Equal(t, DefaultAdminPassword, opts.Password)
	assert.Equal(t, DefaultAdminName, opts.Name)
}

func TestAdminOptionsFromEnvOverrides(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "ops@mentorhub.id")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("ADMIN_NAME", "Ops Admin")

	opts := AdminOptionsFromEnv()

	assert.Equal(t, "ops@mentorhub.id", opts.Email)
	assert.Equal(t, "s3cret", opts.Password)
	assert.Equal(t, "Ops Admin", opts.Name)
}

func TestMissingUserColumns(t *testing.T) {
	complete := []string{
		"id", "name", "email", "password_hash", "role",
		"status", "verified", "created_at", "updated_at",
		"avatar_url", "company_name", "expertise",
	}
	assert.Empty(t, MissingUserColumns(complete))

	partial := []string{"id", "name", "email"}
	assert.ElementsMatch(t,
		[]string{"password_hash", "role", "status", "verified", "created_at", "updated_at"},
		MissingUserColumns(partial),
	)

	// case-insensitive against how the catalog reports names
	assert.Empty(t, MissingUserColumns([]string{
		"ID", "NAME", "EMAIL", "PASSWORD_HASH", "ROLE",
		"STATUS", "VERIFIED", "CREATED_AT", "UPDATED_AT",
	}))
}
