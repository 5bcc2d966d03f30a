package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		completed int
		want      string
	}{
		{0, ExperienceBeginner},
		{4, ExperienceBeginner},
		{5, ExperienceIntermediate},
		{14, ExperienceIntermediate},
		{15, ExperienceAdvanced},
		{40, ExperienceAdvanced},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExperienceLevel(tt.completed), "completed=%d", tt.completed)
	}
}
