package seeds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLastThreePeriodsMidYear(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	periods := LastThreePeriods(now)

	assert.Equal(t, [3]SalesPeriod{
		{Month: 1, Year: 2024},
		{Month: 2, Year: 2024},
		{Month: 3, Year: 2024},
	}, periods)
}

func TestLastThreePeriodsJanuaryRollsBack(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

	periods := LastThreePeriods(now)

	assert.Equal(t, [3]SalesPeriod{
		{Month: 11, Year: 2023},
		{Month: 12, Year: 2023},
		{Month: 1, Year: 2024},
	}, periods)
}

func TestLastThreePeriodsFebruaryRollsBack(t *testing.T) {
	now := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	periods := LastThreePeriods(now)

	assert.Equal(t, [3]SalesPeriod{
		{Month: 12, Year: 2024},
		{Month: 1, Year: 2025},
		{Month: 2, Year: 2025},
	}, periods)
}

func TestLastThreePeriodsMonthEndDoesNotSkip(t *testing.T) {
	// A month-end clock must still report the calendar months, not whatever
	// date normalization would produce.
	now := time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)

	periods := LastThreePeriods(now)

	assert.Equal(t, [3]SalesPeriod{
		{Month: 1, Year: 2024},
		{Month: 2, Year: 2024},
		{Month: 3, Year: 2024},
	}, periods)
}
