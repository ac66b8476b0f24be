package services

import (
	"time"

	"github.com/Manav279/DailyTracker/internal/domain"
)

// DateWindow returns daysCount ascending YYYY-MM-DD dates ending on today's
// calendar date. It returns nil for daysCount <= 0.
func DateWindow(today time.Time, daysCount int) []string {
	if daysCount <= 0 {
		return nil
	}

	dates := make([]string, daysCount)
	start := domain.AddDays(today, -(daysCount - 1))
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(domain.DateLayout)
	}
	return dates
}
