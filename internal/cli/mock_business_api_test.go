package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/Manav279/DailyTracker/internal/api"
	"github.com/Manav279/DailyTracker/internal/domain"
	"github.com/Manav279/DailyTracker/internal/errors"
	"github.com/Manav279/DailyTracker/internal/services"
	"github.com/Manav279/DailyTracker/internal/validation"
)

// mockBusinessAPI implements the BusinessAPI interface for testing
type mockBusinessAPI struct {
	tasks   []*domain.Task
	logs    map[string]*domain.TaskLog
	journal map[string]*domain.JournalEntry
	nextID  domain.ID

	streak   int
	cleared  bool
	imported string

	// recorded arguments
	lastDate  string
	lastToday time.Time
	lastDays  int
	lastLimit int
}

var _ api.BusinessAPI = (*mockBusinessAPI)(nil)

// newMockBusinessAPI creates a new mock BusinessAPI instance
func newMockBusinessAPI() *mockBusinessAPI {
	return &mockBusinessAPI{
		logs:    make(map[string]*domain.TaskLog),
		journal: make(map[string]*domain.JournalEntry),
		nextID:  1,
	}
}

func logKey(id domain.ID, date string) string {
	return fmt.Sprintf("%d|%s", id, date)
}

func (m *mockBusinessAPI) findTask(id domain.ID) (*domain.Task, error) {
	for _, task := range m.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, errors.NewNotFoundError("task", id.String())
}

// findTaskOn mirrors the task service, which names the day in its not found errors.
func (m *mockBusinessAPI) findTaskOn(id domain.ID, date string) (*domain.Task, error) {
	task, err := m.findTask(id)
	if err != nil {
		return nil, errors.NewNotFoundError("task", id.String()).WithContext("date", date)
	}
	return task, nil
}

func (m *mockBusinessAPI) status(task *domain.Task, date string) *domain.TaskDayStatus {
	s := &domain.TaskDayStatus{Task: *task, Date: date, Status: domain.TaskPending}
	if log, ok := m.logs[logKey(task.ID, date)]; ok {
		s.Status = domain.TaskStatus(log.Status)
		s.LogID = log.ID
		s.LoggedLate = log.LoggedLate
	}
	return s
}

func (m *mockBusinessAPI) AddTask(ctx context.Context, title, pillar, frequency string) (*domain.Task, error) {
	p, ok := domain.ParsePillar(pillar)
	if !ok {
		ve := validation.NewValidationError()
		ve.AddError("pillar", validation.ErrorTypeInvalidValue, "pillar must be one of Physical, Mental, Social", pillar)
		return nil, errors.NewValidationError("invalid task", ve)
	}
	task := domain.NewTask(title, p, frequency)
	task.ID = m.nextID
	m.nextID++
	m.tasks = append(m.tasks, &task)
	return &task, nil
}

func (m *mockBusinessAPI) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return m.tasks, nil
}

func (m *mockBusinessAPI) RemoveTask(ctx context.Context, id domain.ID) error {
	for i, task := range m.tasks {
		if task.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("task", id.String())
}

func (m *mockBusinessAPI) TasksForDate(ctx context.Context, date string) ([]*domain.TaskDayStatus, error) {
	m.lastDate = date
	statuses := make([]*domain.TaskDayStatus, len(m.tasks))
	for i, task := range m.tasks {
		statuses[i] = m.status(task, date)
	}
	return statuses, nil
}

func (m *mockBusinessAPI) ToggleTask(ctx context.Context, id domain.ID, date string, today time.Time) (*domain.TaskDayStatus, error) {
	m.lastDate, m.lastToday = date, today
	task, err := m.findTaskOn(id, date)
	if err != nil {
		return nil, err
	}

	key := logKey(id, date)
	if log, ok := m.logs[key]; ok && log.IsCompleted() {
		delete(m.logs, key)
	} else if ok {
		log.Status = domain.StatusCompleted
	} else {
		m.logs[key] = &domain.TaskLog{
			ID: m.nextID, TaskID: id, Date: date, Status: domain.StatusCompleted,
			LoggedLate: date != domain.FormatDate(today),
		}
		m.nextID++
	}
	return m.status(task, date), nil
}

func (m *mockBusinessAPI) SkipTask(ctx context.Context, id domain.ID, date string, today time.Time) (*domain.TaskDayStatus, error) {
	m.lastDate, m.lastToday = date, today
	task, err := m.findTaskOn(id, date)
	if err != nil {
		return nil, err
	}

	key := logKey(id, date)
	if log, ok := m.logs[key]; ok {
		log.Status = domain.StatusSkipped
	} else {
		m.logs[key] = &domain.TaskLog{
			ID: m.nextID, TaskID: id, Date: date, Status: domain.StatusSkipped,
			LoggedLate: date != domain.FormatDate(today),
		}
		m.nextID++
	}
	return m.status(task, date), nil
}

func (m *mockBusinessAPI) ReadJournal(ctx context.Context, date string) (*domain.JournalEntry, error) {
	m.lastDate = date
	return m.journal[date], nil
}

func (m *mockBusinessAPI) WriteJournal(ctx context.Context, date, content string) (*domain.JournalEntry, error) {
	entry, ok := m.journal[date]
	if !ok {
		entry = &domain.JournalEntry{ID: m.nextID, Date: date}
		m.nextID++
		m.journal[date] = entry
	}
	entry.Content = content
	return entry, nil
}

func (m *mockBusinessAPI) RecentJournal(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	m.lastLimit = limit
	entries := make([]*domain.JournalEntry, 0, len(m.journal))
	for _, entry := range m.journal {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *mockBusinessAPI) completedOn(date string) int {
	n := 0
	for _, log := range m.logs {
		if log.Date == date && log.IsCompleted() {
			n++
		}
	}
	return n
}

func (m *mockBusinessAPI) DailyStats(ctx context.Context, date time.Time) (*services.DailyStats, error) {
	d := domain.FormatDate(date)
	completed := m.completedOn(d)
	return &services.DailyStats{Date: d, Total: len(m.tasks), Completed: completed, Pending: len(m.tasks) - completed}, nil
}

func (m *mockBusinessAPI) PeriodStats(ctx context.Context, today time.Time, days int) ([]services.DayStats, error) {
	m.lastToday, m.lastDays = today, days
	if days < 1 {
		return nil, errors.NewValidationError("invalid period", nil)
	}
	dates := services.DateWindow(today, days)
	stats := make([]services.DayStats, len(dates))
	for i, date := range dates {
		stats[i] = services.DayStats{Date: date, Count: m.completedOn(date)}
	}
	return stats, nil
}

func (m *mockBusinessAPI) PillarStats(ctx context.Context, today time.Time, days int) (domain.PillarCounts, error) {
	m.lastToday, m.lastDays = today, days
	if days < 0 {
		return domain.PillarCounts{}, errors.NewValidationError("invalid period", nil)
	}
	var counts domain.PillarCounts
	for _, log := range m.logs {
		if task, err := m.findTask(log.TaskID); err == nil && log.IsCompleted() {
			counts.Add(task.Pillar)
		}
	}
	return counts, nil
}

func (m *mockBusinessAPI) CurrentStreak(ctx context.Context, today time.Time) (int, error) {
	m.lastToday = today
	return m.streak, nil
}

func (m *mockBusinessAPI) HabitStreaks(ctx context.Context, today time.Time) ([]services.HabitStreak, error) {
	streaks := make([]services.HabitStreak, len(m.tasks))
	for i, task := range m.tasks {
		streaks[i] = services.HabitStreak{ID: task.ID, Title: task.Title, Pillar: task.Pillar}
		if log, ok := m.logs[logKey(task.ID, domain.FormatDate(today))]; ok && log.IsCompleted() {
			streaks[i].Streak = 1
		}
	}
	return streaks, nil
}

func (m *mockBusinessAPI) HabitHistory(ctx context.Context, today time.Time) (*services.HabitHistory, error) {
	dates := services.DateWindow(today, 7)
	history := &services.HabitHistory{Dates: dates, Habits: []services.HabitHistoryRow{}}
	for _, task := range m.tasks {
		row := services.HabitHistoryRow{ID: task.ID, Title: task.Title, Pillar: task.Pillar, History: make([]bool, len(dates))}
		for i, date := range dates {
			if log, ok := m.logs[logKey(task.ID, date)]; ok && log.IsCompleted() {
				row.History[i] = true
			}
		}
		history.Habits = append(history.Habits, row)
	}
	return history, nil
}

func (m *mockBusinessAPI) Overview(ctx context.Context, today time.Time) (*api.DayOverview, error) {
	date := domain.FormatDate(today)
	stats, _ := m.DailyStats(ctx, today)
	tasks, _ := m.TasksForDate(ctx, date)
	return &api.DayOverview{Date: date, Stats: stats, Streak: m.streak, Tasks: tasks, Quote: m.QuoteOfTheDay(today)}, nil
}

func (m *mockBusinessAPI) ExportData(ctx context.Context, w io.Writer, now time.Time) (*services.Snapshot, error) {
	snapshot := &services.Snapshot{Version: services.SnapshotVersion, Timestamp: now.UTC().Format(time.RFC3339), Tasks: m.tasks}
	_, err := fmt.Fprintf(w, "{\"version\": %d, \"tasks\": %d}\n", snapshot.Version, len(snapshot.Tasks))
	return snapshot, err
}

func (m *mockBusinessAPI) ImportData(ctx context.Context, r io.Reader) (*services.ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.NewSnapshotError("not valid JSON", nil)
	}
	m.imported = string(data)
	return &services.ImportResult{Tasks: 2, TaskLogs: 3, Journal: 1}, nil
}

func (m *mockBusinessAPI) ClearAllData(ctx context.Context) error {
	m.cleared = true
	m.tasks = nil
	m.logs = make(map[string]*domain.TaskLog)
	m.journal = make(map[string]*domain.JournalEntry)
	return nil
}

func (m *mockBusinessAPI) QuoteOfTheDay(day time.Time) services.Quote {
	return services.Quote{Text: "Make each day your masterpiece.", Author: "John Wooden"}
}
