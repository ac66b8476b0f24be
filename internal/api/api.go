package api

import (
	"context"
	"io"
	"time"

	"github.com/Manav279/DailyTracker/internal/config"
	"github.com/Manav279/DailyTracker/internal/domain"
	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
	"github.com/Manav279/DailyTracker/internal/services"
	"github.com/Manav279/DailyTracker/internal/validation"
)

// DayOverview is everything shown for one day at a glance.
type DayOverview struct {
	Date   string                  `json:"date" yaml:"date"`
	Stats  *services.DailyStats    `json:"stats" yaml:"stats"`
	Streak int                     `json:"streak" yaml:"streak"`
	Tasks  []*domain.TaskDayStatus `json:"tasks" yaml:"tasks"`
	Quote  services.Quote          `json:"quote" yaml:"quote"`
}

// BusinessAPI is the single entry point the CLI talks to. Operations that
// depend on the current day take it as today.
type BusinessAPI interface {
	// ========== Habits ==========

	// AddTask creates a habit; an empty frequency means daily
	AddTask(ctx context.Context, title, pillar, frequency string) (*domain.Task, error)

	// ListTasks returns every habit in creation order
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// RemoveTask deletes a habit and leaves its logs in place
	RemoveTask(ctx context.Context, id domain.ID) error

	// TasksForDate returns every habit with its status on date
	TasksForDate(ctx context.Context, date string) ([]*domain.TaskDayStatus, error)

	// ToggleTask flips a habit between completed and pending on date
	ToggleTask(ctx context.Context, id domain.ID, date string, today time.Time) (*domain.TaskDayStatus, error)

	// SkipTask marks a habit skipped on date
	SkipTask(ctx context.Context, id domain.ID, date string, today time.Time) (*domain.TaskDayStatus, error)

	// ========== Journal ==========

	ReadJournal(ctx context.Context, date string) (*domain.JournalEntry, error)
	WriteJournal(ctx context.Context, date, content string) (*domain.JournalEntry, error)
	RecentJournal(ctx context.Context, limit int) ([]*domain.JournalEntry, error)

	// ========== Analytics ==========

	DailyStats(ctx context.Context, date time.Time) (*services.DailyStats, error)
	PeriodStats(ctx context.Context, today time.Time, days int) ([]services.DayStats, error)
	PillarStats(ctx context.Context, today time.Time, days int) (domain.PillarCounts, error)
	CurrentStreak(ctx context.Context, today time.Time) (int, error)
	HabitStreaks(ctx context.Context, today time.Time) ([]services.HabitStreak, error)
	HabitHistory(ctx context.Context, today time.Time) (*services.HabitHistory, error)

	// Overview gathers stats, streak, task statuses and the quote for today
	Overview(ctx context.Context, today time.Time) (*DayOverview, error)

	// ========== Data ==========

	ExportData(ctx context.Context, w io.Writer, now time.Time) (*services.Snapshot, error)
	ImportData(ctx context.Context, r io.Reader) (*services.ImportResult, error)
	ClearAllData(ctx context.Context) error

	QuoteOfTheDay(day time.Time) services.Quote
}

// New creates a BusinessAPI over repo. Validation limits come from cfg;
// a nil cfg uses the defaults.
func New(repo sqlite.Repository, cfg *config.Config) BusinessAPI {
	validator := validation.NewValidator()
	if cfg != nil {
		validator = validation.NewValidatorWithConfig(cfg)
	}
	return NewBusinessAPI(services.NewServiceContainer(repo, validator))
}
