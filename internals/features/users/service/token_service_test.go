package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := CreateAccessToken("test-secret", userID, "MENTOR", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAccessToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "MENTOR", claims.Role)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	token, err := CreateAccessToken("test-secret", uuid.New(), "MENTEE", time.Hour)
	require.NoError(t, err)

	_, err = ParseAccessToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenExpired(t *testing.T) {
	token, err := CreateAccessToken("test-secret", uuid.New(), "MENTEE", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken("test-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken("test-secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
