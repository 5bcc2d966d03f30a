package seeds

import "time"

// SalesPeriod is one (month, year) slot of self-reported revenue.
type SalesPeriod struct {
	Month int
	Year  int
}

// LastThreePeriods returns the current month and the two before it, oldest
// first. The year rolls back explicitly when the subtraction crosses below
// January, so a January run yields November and December of the prior year.
func LastThreePeriods(now time.Time) [3]SalesPeriod {
	var out [3]SalesPeriod
	for i := 0; i < 3; i++ {
		month := int(now.Month()) - (2 - i)
		year := now.Year()
		for month < 1 {
			month += 12
			year--
		}
		out[i] = SalesPeriod{Month: month, Year: year}
	}
	return out
}
