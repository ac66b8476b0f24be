package services

import (
	"context"
	"io"
	"time"

	"github.com/Manav279/DailyTracker/internal/domain"
)

// RecordReader is the read-only view of the store that analytics run on.
type RecordReader interface {
	ListAllTasks(ctx context.Context) ([]*domain.Task, error)
	ListLogs(ctx context.Context, filter domain.LogFilter) ([]*domain.TaskLog, error)
	CountLogs(ctx context.Context, filter domain.LogFilter) (int, error)
	CountTasks(ctx context.Context) (int, error)
}

// DailyStats summarises one date. Pending is Total minus Completed and can
// be negative when logs point at deleted tasks.
type DailyStats struct {
	Date      string `json:"date" yaml:"date"`
	Total     int    `json:"total" yaml:"total"`
	Completed int    `json:"completed" yaml:"completed"`
	Pending   int    `json:"pending" yaml:"pending"`
}

// DayStats holds the completions of one day, split by pillar. Count
// includes completions whose task no longer exists.
type DayStats struct {
	Date     string `json:"date" yaml:"date"`
	Count    int    `json:"count" yaml:"count"`
	Physical int    `json:"physical" yaml:"physical"`
	Mental   int    `json:"mental" yaml:"mental"`
	Social   int    `json:"social" yaml:"social"`
}

// HabitStreak is the current streak of one habit.
type HabitStreak struct {
	ID     domain.ID     `json:"id" yaml:"id"`
	Title  string        `json:"title" yaml:"title"`
	Pillar domain.Pillar `json:"pillar" yaml:"pillar"`
	Streak int           `json:"streak" yaml:"streak"`
}

// HabitHistoryRow marks, for each date of the matrix, whether the habit was completed.
type HabitHistoryRow struct {
	ID      domain.ID     `json:"id" yaml:"id"`
	Title   string        `json:"title" yaml:"title"`
	Pillar  domain.Pillar `json:"pillar" yaml:"pillar"`
	History []bool        `json:"history" yaml:"history"`
}

// HabitHistory is the completion matrix of the trailing week.
type HabitHistory struct {
	Dates  []string          `json:"dates" yaml:"dates"`
	Habits []HabitHistoryRow `json:"habits" yaml:"habits"`
}

// AnalyticsService derives statistics and streaks from stored logs. Every
// operation is read-only; today is always passed in explicitly.
type AnalyticsService interface {
	DailyStats(ctx context.Context, date time.Time) (*DailyStats, error)
	PeriodStats(ctx context.Context, today time.Time, daysCount int) ([]DayStats, error)
	WeeklyStats(ctx context.Context, today time.Time) ([]DayStats, error)
	PillarStats(ctx context.Context, today time.Time, daysCount int) (domain.PillarCounts, error)
	CurrentStreak(ctx context.Context, today time.Time) (int, error)
	HabitStreaks(ctx context.Context, today time.Time) ([]HabitStreak, error)
	HabitHistory(ctx context.Context, today time.Time) (*HabitHistory, error)
}

// TaskService handles habit definitions and their daily status
type TaskService interface {
	CreateTask(ctx context.Context, title, pillar, frequency string) (*domain.Task, error)
	GetTask(ctx context.Context, id domain.ID) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	DeleteTask(ctx context.Context, id domain.ID) error

	TasksForDate(ctx context.Context, date string) ([]*domain.TaskDayStatus, error)
	ToggleCompleted(ctx context.Context, id domain.ID, date string, today time.Time) (*domain.TaskDayStatus, error)
	MarkSkipped(ctx context.Context, id domain.ID, date string, today time.Time) (*domain.TaskDayStatus, error)
}

// JournalService handles the one-entry-per-day journal
type JournalService interface {
	GetEntry(ctx context.Context, date string) (*domain.JournalEntry, error)
	SaveEntry(ctx context.Context, date, content string) (*domain.JournalEntry, error)
	RecentEntries(ctx context.Context, limit int) ([]*domain.JournalEntry, error)
}

// SnapshotVersion is the backup document version written by Export.
const SnapshotVersion = 1

// Snapshot is the portable backup document.
type Snapshot struct {
	Version   int                    `json:"version"`
	Timestamp string                 `json:"timestamp"`
	ExportID  string                 `json:"exportId,omitempty"`
	Tasks     []*domain.Task         `json:"tasks"`
	TaskLogs  []*domain.TaskLog      `json:"taskLogs"`
	Journal   []*domain.JournalEntry `json:"journal"`
}

// ImportResult counts the entities written by an import.
type ImportResult struct {
	Tasks    int `json:"tasks" yaml:"tasks"`
	TaskLogs int `json:"taskLogs" yaml:"taskLogs"`
	Journal  int `json:"journal" yaml:"journal"`
}

// SnapshotService exports, imports and clears the whole store
type SnapshotService interface {
	Export(ctx context.Context, now time.Time) (*Snapshot, error)
	WriteExport(ctx context.Context, w io.Writer, now time.Time) (*Snapshot, error)
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
	ClearAll(ctx context.Context) error
}

// Quote is an attributed quotation.
type Quote struct {
	Text   string `json:"text" yaml:"text"`
	Author string `json:"author" yaml:"author"`
}

// QuoteService picks the quote shown for a day
type QuoteService interface {
	QuoteOfTheDay(day time.Time) Quote
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	AnalyticsService AnalyticsService
	TaskService      TaskService
	JournalService   JournalService
	SnapshotService  SnapshotService
	QuoteService     QuoteService
}
