package api

import (
	"context"
	"io"
	"time"

	"github.com/Manav279/DailyTracker/internal/domain"
	"github.com/Manav279/DailyTracker/internal/errors"
	"github.com/Manav279/DailyTracker/internal/services"
	"github.com/Manav279/DailyTracker/internal/validation"
)

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	services     *services.ServiceContainer
	logValidator *validation.LogValidator
}

// NewBusinessAPI creates a new BusinessAPI over an existing service container
func NewBusinessAPI(container *services.ServiceContainer) BusinessAPI {
	return &businessAPIImpl{
		services:     container,
		logValidator: validation.NewLogValidator(nil),
	}
}

// ========== Habits ==========

func (b *businessAPIImpl) AddTask(ctx context.Context, title, pillar, frequency string) (*domain.Task, error) {
	return b.services.TaskService.CreateTask(ctx, title, pillar, frequency)
}

func (b *businessAPIImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return b.services.TaskService.ListTasks(ctx)
}

func (b *businessAPIImpl) RemoveTask(ctx context.Context, id domain.ID) error {
	return b.services.TaskService.DeleteTask(ctx, id)
}

func (b *businessAPIImpl) TasksForDate(ctx context.Context, date string) ([]*domain.TaskDayStatus, error) {
	return b.services.TaskService.TasksForDate(ctx, date)
}

func (b *businessAPIImpl) ToggleTask(ctx context.Context, id domain.ID, date string, today time.Time) (*domain.TaskDayStatus, error) {
	return b.services.TaskService.ToggleCompleted(ctx, id, date, today)
}

func (b *businessAPIImpl) SkipTask(ctx context.Context, id domain.ID, date string, today time.Time) (*domain.TaskDayStatus, error) {
	return b.services.TaskService.MarkSkipped(ctx, id, date, today)
}

// ========== Journal ==========

func (b *businessAPIImpl) ReadJournal(ctx context.Context, date string) (*domain.JournalEntry, error) {
	return b.services.JournalService.GetEntry(ctx, date)
}

func (b *businessAPIImpl) WriteJournal(ctx context.Context, date, content string) (*domain.JournalEntry, error) {
	return b.services.JournalService.SaveEntry(ctx, date, content)
}

func (b *businessAPIImpl) RecentJournal(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	return b.services.JournalService.RecentEntries(ctx, limit)
}

// ========== Analytics ==========

func (b *businessAPIImpl) DailyStats(ctx context.Context, date time.Time) (*services.DailyStats, error) {
	return b.services.AnalyticsService.DailyStats(ctx, date)
}

// PeriodStats requires at least one day; the engine itself treats a
// non-positive window as empty.
func (b *businessAPIImpl) PeriodStats(ctx context.Context, today time.Time, days int) ([]services.DayStats, error) {
	if err := b.logValidator.ValidateDays(days, false); err != nil {
		return nil, errors.NewValidationError("invalid period", err)
	}
	return b.services.AnalyticsService.PeriodStats(ctx, today, days)
}

// PillarStats accepts 0 for all time and rejects negative windows.
func (b *businessAPIImpl) PillarStats(ctx context.Context, today time.Time, days int) (domain.PillarCounts, error) {
	if err := b.logValidator.ValidateDays(days, true); err != nil {
		return domain.PillarCounts{}, errors.NewValidationError("invalid period", err)
	}
	return b.services.AnalyticsService.PillarStats(ctx, today, days)
}

func (b *businessAPIImpl) CurrentStreak(ctx context.Context, today time.Time) (int, error) {
	return b.services.AnalyticsService.CurrentStreak(ctx, today)
}

func (b *businessAPIImpl) HabitStreaks(ctx context.Context, today time.Time) ([]services.HabitStreak, error) {
	return b.services.AnalyticsService.HabitStreaks(ctx, today)
}

func (b *businessAPIImpl) HabitHistory(ctx context.Context, today time.Time) (*services.HabitHistory, error) {
	return b.services.AnalyticsService.HabitHistory(ctx, today)
}

func (b *businessAPIImpl) Overview(ctx context.Context, today time.Time) (*DayOverview, error) {
	date := domain.FormatDate(today)

	stats, err := b.DailyStats(ctx, today)
	if err != nil {
		return nil, err
	}
	streak, err := b.CurrentStreak(ctx, today)
	if err != nil {
		return nil, err
	}
	tasks, err := b.TasksForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &DayOverview{
		Date:   date,
		Stats:  stats,
		Streak: streak,
		Tasks:  tasks,
		Quote:  b.QuoteOfTheDay(today),
	}, nil
}

// ========== Data ==========

func (b *businessAPIImpl) ExportData(ctx context.Context, w io.Writer, now time.Time) (*services.Snapshot, error) {
	return b.services.SnapshotService.WriteExport(ctx, w, now)
}

func (b *businessAPIImpl) ImportData(ctx context.Context, r io.Reader) (*services.ImportResult, error) {
	return b.services.SnapshotService.Import(ctx, r)
}

func (b *businessAPIImpl) ClearAllData(ctx context.Context) error {
	return b.services.SnapshotService.ClearAll(ctx)
}

func (b *businessAPIImpl) QuoteOfTheDay(day time.Time) services.Quote {
	return b.services.QuoteService.QuoteOfTheDay(day)
}
