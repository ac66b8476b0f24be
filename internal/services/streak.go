package services

import (
	"context"
	"time"

	"github.com/Manav279/DailyTracker/internal/domain"
)

// streakSafetyCap bounds every streak walk, in days examined.
const streakSafetyCap = 365

// completedOn reports whether the walk should count date.
type completedOn func(ctx context.Context, date string) (bool, error)

// walkStreak counts consecutive completed days walking back from today.
// An empty today is skipped once instead of ending the walk; the skip uses
// up one of the capped iterations.
func walkStreak(ctx context.Context, today time.Time, completed completedOn) (int, error) {
	todayStr := domain.FormatDate(today)
	cursor := domain.CalendarDay(today)
	streak := 0

	for i := 0; i < streakSafetyCap; i++ {
		date := cursor.Format(domain.DateLayout)
		ok, err := completed(ctx, date)
		if err != nil {
			return 0, err
		}

		if ok {
			streak++
		} else if date != todayStr {
			break
		}
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak, nil
}

// completedDates indexes the dates of the completed logs.
func completedDates(logs []*domain.TaskLog) map[string]bool {
	dates := make(map[string]bool, len(logs))
	for _, log := range logs {
		if log.IsCompleted() {
			dates[log.Date] = true
		}
	}
	return dates
}
