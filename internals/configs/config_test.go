package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("MENTORHUB_TEST_KEY", "set-value")

	assert.Equal(t, "set-value", GetEnv("MENTORHUB_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("MENTORHUB_TEST_MISSING", "fallback"))
	assert.Equal(t, "", GetEnv("MENTORHUB_TEST_MISSING"))
}
