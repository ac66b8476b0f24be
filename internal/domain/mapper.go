package domain

import (
	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(task Task) sqlite.Task {
	return sqlite.Task{
		ID:        int64(task.ID),
		Title:     task.Title,
		Pillar:    string(task.Pillar),
		Frequency: task.Frequency,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(row sqlite.Task) Task {
	return Task{
		ID:        ID(row.ID),
		Title:     row.Title,
		Pillar:    Pillar(row.Pillar),
		Frequency: row.Frequency,
	}
}

// ToDatabaseSlice converts domain Tasks to database Tasks.
func (m *TaskMapper) ToDatabaseSlice(tasks []*Task) []*sqlite.Task {
	rows := make([]*sqlite.Task, len(tasks))
	for i, task := range tasks {
		row := m.ToDatabase(*task)
		rows[i] = &row
	}
	return rows
}

// FromDatabaseSlice converts database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(rows []*sqlite.Task) []*Task {
	tasks := make([]*Task, len(rows))
	for i, row := range rows {
		task := m.FromDatabase(*row)
		tasks[i] = &task
	}
	return tasks
}

// TaskLogMapper handles conversion between domain and database TaskLog models.
type TaskLogMapper struct{}

// NewTaskLogMapper creates a new TaskLogMapper instance.
func NewTaskLogMapper() *TaskLogMapper {
	return &TaskLogMapper{}
}

// ToDatabase converts a domain TaskLog to a database TaskLog.
func (m *TaskLogMapper) ToDatabase(log TaskLog) sqlite.TaskLog {
	return sqlite.TaskLog{
		ID:         int64(log.ID),
		TaskID:     int64(log.TaskID),
		Date:       log.Date,
		Status:     string(log.Status),
		LoggedLate: log.LoggedLate,
	}
}

// FromDatabase converts a database TaskLog to a domain TaskLog.
func (m *TaskLogMapper) FromDatabase(row sqlite.TaskLog) TaskLog {
	return TaskLog{
		ID:         ID(row.ID),
		TaskID:     ID(row.TaskID),
		Date:       row.Date,
		Status:     LogStatus(row.Status),
		LoggedLate: row.LoggedLate,
	}
}

// ToDatabaseSlice converts domain TaskLogs to database TaskLogs.
func (m *TaskLogMapper) ToDatabaseSlice(logs []*TaskLog) []*sqlite.TaskLog {
	rows := make([]*sqlite.TaskLog, len(logs))
	for i, log := range logs {
		row := m.ToDatabase(*log)
		rows[i] = &row
	}
	return rows
}

// FromDatabaseSlice converts database TaskLogs to domain TaskLogs.
func (m *TaskLogMapper) FromDatabaseSlice(rows []*sqlite.TaskLog) []*TaskLog {
	logs := make([]*TaskLog, len(rows))
	for i, row := range rows {
		log := m.FromDatabase(*row)
		logs[i] = &log
	}
	return logs
}

// JournalMapper handles conversion between domain and database journal entries.
type JournalMapper struct{}

// NewJournalMapper creates a new JournalMapper instance.
func NewJournalMapper() *JournalMapper {
	return &JournalMapper{}
}

// ToDatabase converts a domain JournalEntry to a database JournalEntry.
func (m *JournalMapper) ToDatabase(entry JournalEntry) sqlite.JournalEntry {
	return sqlite.JournalEntry{
		ID:      int64(entry.ID),
		Date:    entry.Date,
		Content: entry.Content,
	}
}

// FromDatabase converts a database JournalEntry to a domain JournalEntry.
func (m *JournalMapper) FromDatabase(row sqlite.JournalEntry) JournalEntry {
	return JournalEntry{
		ID:      ID(row.ID),
		Date:    row.Date,
		Content: row.Content,
	}
}

// ToDatabaseSlice converts domain journal entries to database entries.
func (m *JournalMapper) ToDatabaseSlice(entries []*JournalEntry) []*sqlite.JournalEntry {
	rows := make([]*sqlite.JournalEntry, len(entries))
	for i, entry := range entries {
		row := m.ToDatabase(*entry)
		rows[i] = &row
	}
	return rows
}

// FromDatabaseSlice converts database journal entries to domain entries.
func (m *JournalMapper) FromDatabaseSlice(rows []*sqlite.JournalEntry) []*JournalEntry {
	entries := make([]*JournalEntry, len(rows))
	for i, row := range rows {
		entry := m.FromDatabase(*row)
		entries[i] = &entry
	}
	return entries
}

// LogFilterMapper converts domain log filters to database filters.
type LogFilterMapper struct{}

// NewLogFilterMapper creates a new LogFilterMapper instance.
func NewLogFilterMapper() *LogFilterMapper {
	return &LogFilterMapper{}
}

// ToDatabase converts a domain LogFilter to a database LogFilter.
func (m *LogFilterMapper) ToDatabase(filter LogFilter) sqlite.LogFilter {
	out := sqlite.LogFilter{
		Date:     filter.Date,
		DateFrom: filter.DateFrom,
		DateTo:   filter.DateTo,
	}
	if filter.TaskID != nil {
		id := int64(*filter.TaskID)
		out.TaskID = &id
	}
	if filter.Status != nil {
		status := string(*filter.Status)
		out.Status = &status
	}
	return out
}

// Mapper provides access to all mappers.
type Mapper struct {
	Task      *TaskMapper
	TaskLog   *TaskLogMapper
	Journal   *JournalMapper
	LogFilter *LogFilterMapper
}

// NewMapper creates a new Mapper instance with all mappers initialized.
func NewMapper() *Mapper {
	return &Mapper{
		Task:      NewTaskMapper(),
		TaskLog:   NewTaskLogMapper(),
		Journal:   NewJournalMapper(),
		LogFilter: NewLogFilterMapper(),
	}
}
