package model

// Mentor experience levels derived from the number of completed sessions.
const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
)

const (
	intermediateThreshold = 5
	advancedThreshold     = 15
)

func ExperienceLevel(completedSessions int) string {
	switch {
	case completedSessions >= advancedThreshold:
		return ExperienceAdvanced
	case completedSessions >= intermediateThreshold:
		return ExperienceIntermediate
	default:
		return ExperienceBeginner
	}
}
