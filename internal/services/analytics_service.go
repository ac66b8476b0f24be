package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/Manav279/DailyTracker/internal/domain"
	"github.com/Manav279/DailyTracker/internal/logging"
)

// historyDays is the width of the habit history matrix.
const historyDays = 7

// analyticsServiceImpl implements the AnalyticsService interface
type analyticsServiceImpl struct {
	reader RecordReader
	log    *slog.Logger
}

// NewAnalyticsService creates a new AnalyticsService over reader
func NewAnalyticsService(reader RecordReader) AnalyticsService {
	return &analyticsServiceImpl{
		reader: reader,
		log:    logging.Component("analytics"),
	}
}

// pillarLookup maps assigned task ids to their pillar.
func (a *analyticsServiceImpl) pillarLookup(ctx context.Context) (map[domain.ID]domain.Pillar, error) {
	tasks, err := a.reader.ListAllTasks(ctx)
	if err != nil {
		return nil, err
	}

	lookup := make(map[domain.ID]domain.Pillar, len(tasks))
	for _, task := range tasks {
		if task.ID.Assigned() {
			lookup[task.ID] = task.Pillar
		}
	}
	return lookup, nil
}

// persistedTasks lists the tasks that have an assigned id, in store order.
func (a *analyticsServiceImpl) persistedTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := a.reader.ListAllTasks(ctx)
	if err != nil {
		return nil, err
	}

	persisted := tasks[:0:0]
	for _, task := range tasks {
		if task.ID.Assigned() {
			persisted = append(persisted, task)
		}
	}
	return persisted, nil
}

// DailyStats counts every task and the completions logged on date.
func (a *analyticsServiceImpl) DailyStats(ctx context.Context, date time.Time) (*DailyStats, error) {
	dateStr := domain.FormatDate(date)

	total, err := a.reader.CountTasks(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := a.reader.CountLogs(ctx, domain.CompletedOn(dateStr))
	if err != nil {
		return nil, err
	}

	return &DailyStats{
		Date:      dateStr,
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
	}, nil
}

// PeriodStats returns one entry per day of the window ending today.
func (a *analyticsServiceImpl) PeriodStats(ctx context.Context, today time.Time, daysCount int) ([]DayStats, error) {
	dates := DateWindow(today, daysCount)
	if len(dates) == 0 {
		return []DayStats{}, nil
	}

	lookup, err := a.pillarLookup(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]DayStats, len(dates))
	for i, date := range dates {
		logs, err := a.reader.ListLogs(ctx, domain.CompletedOn(date))
		if err != nil {
			return nil, err
		}

		var counts domain.PillarCounts
		for _, log := range logs {
			counts.Add(lookup[log.TaskID])
		}
		stats[i] = DayStats{
			Date:     date,
			Count:    len(logs),
			Physical: counts.Physical,
			Mental:   counts.Mental,
			Social:   counts.Social,
		}
	}

	a.log.Debug("period stats", slog.Int("days", daysCount), slog.String("from", dates[0]), slog.String("to", dates[len(dates)-1]))
	return stats, nil
}

// WeeklyStats is PeriodStats over seven days.
func (a *analyticsServiceImpl) WeeklyStats(ctx context.Context, today time.Time) ([]DayStats, error) {
	return a.PeriodStats(ctx, today, 7)
}

// PillarStats counts completions per pillar over the trailing window, or
// over all time when daysCount <= 0. Logs of unknown tasks are dropped.
func (a *analyticsServiceImpl) PillarStats(ctx context.Context, today time.Time, daysCount int) (domain.PillarCounts, error) {
	filter := domain.LogFilter{}.WithStatus(domain.StatusCompleted)
	if daysCount > 0 {
		filter = filter.Between(
			domain.FormatDate(domain.AddDays(today, -(daysCount-1))),
			domain.FormatDate(today),
		)
	}

	lookup, err := a.pillarLookup(ctx)
	if err != nil {
		return domain.PillarCounts{}, err
	}
	logs, err := a.reader.ListLogs(ctx, filter)
	if err != nil {
		return domain.PillarCounts{}, err
	}

	var counts domain.PillarCounts
	for _, log := range logs {
		if pillar, ok := lookup[log.TaskID]; ok {
			counts.Add(pillar)
		}
	}
	return counts, nil
}

// CurrentStreak counts consecutive days with at least one completion.
func (a *analyticsServiceImpl) CurrentStreak(ctx context.Context, today time.Time) (int, error) {
	streak, err := walkStreak(ctx, today, func(ctx context.Context, date string) (bool, error) {
		n, err := a.reader.CountLogs(ctx, domain.CompletedOn(date))
		return n > 0, err
	})
	if err != nil {
		return 0, err
	}

	a.log.Debug("current streak", slog.String("today", domain.FormatDate(today)), slog.Int("streak", streak))
	return streak, nil
}

// HabitStreaks returns each habit's streak, longest first. Habits with
// equal streaks keep their store order.
func (a *analyticsServiceImpl) HabitStreaks(ctx context.Context, today time.Time) ([]HabitStreak, error) {
	tasks, err := a.persistedTasks(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]HabitStreak, 0, len(tasks))
	for _, task := range tasks {
		logs, err := a.reader.ListLogs(ctx, domain.LogFilter{}.ForTask(task.ID))
		if err != nil {
			return nil, err
		}
		done := completedDates(logs)

		streak, err := walkStreak(ctx, today, func(_ context.Context, date string) (bool, error) {
			return done[date], nil
		})
		if err != nil {
			return nil, err
		}

		result = append(result, HabitStreak{
			ID:     task.ID,
			Title:  task.Title,
			Pillar: task.Pillar,
			Streak: streak,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Streak > result[j].Streak
	})
	return result, nil
}

// HabitHistory builds the completion matrix of the last seven days.
func (a *analyticsServiceImpl) HabitHistory(ctx context.Context, today time.Time) (*HabitHistory, error) {
	dates := DateWindow(today, historyDays)

	tasks, err := a.persistedTasks(ctx)
	if err != nil {
		return nil, err
	}

	habits := make([]HabitHistoryRow, 0, len(tasks))
	for _, task := range tasks {
		logs, err := a.reader.ListLogs(ctx, domain.LogFilter{}.ForTask(task.ID).WithStatus(domain.StatusCompleted))
		if err != nil {
			return nil, err
		}
		done := completedDates(logs)

		history := make([]bool, len(dates))
		for i, date := range dates {
			history[i] = done[date]
		}
		habits = append(habits, HabitHistoryRow{
			ID:      task.ID,
			Title:   task.Title,
			Pillar:  task.Pillar,
			History: history,
		})
	}

	return &HabitHistory{Dates: dates, Habits: habits}, nil
}
