// utils/penalty.go
package utils

// PenaltyRange is one overdue band with its daily rate. Mirrors
// models.PenaltyPeriod; utils cannot import models.
type PenaltyRange struct {
	FromDay           int
	ToDay             int
	RatePerDayPercent float64
}

// CalculatePenalty splits daysOverdue across the configured ranges and sums
// amount * rate% per day spent inside each range. Days beyond the last
// configured range accrue nothing.
func CalculatePenalty(amount float64, daysOverdue int, ranges []PenaltyRange) float64 {
	if daysOverdue <= 0 || amount <= 0 {
		return 0
	}

	total := 0.0
	for _, r := range ranges {
		if r.ToDay < r.FromDay || daysOverdue < r.FromDay {
			continue
		}
		last := r.ToDay
		if daysOverdue < last {
			last = daysOverdue
		}
		days := last - r.FromDay + 1
		total += amount * r.RatePerDayPercent / 100 * float64(days)
	}
	return total
}
