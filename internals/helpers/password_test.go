package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordUsesConfiguredCost(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, BcryptCost, cost)
}

func TestCheckPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NoError(t, CheckPasswordHash(hash, "password123"))
	assert.Error(t, CheckPasswordHash(hash, "password124"))
}
