package sqlite

// Task is a row of the tasks table.
type Task struct {
	ID        int64
	Title     string
	Pillar    string
	Frequency string
}

// TaskLog is a row of the task_logs table. TaskID is not a foreign key.
type TaskLog struct {
	ID         int64
	TaskID     int64
	Date       string
	Status     string
	LoggedLate bool
}

// JournalEntry is a row of the journal table.
type JournalEntry struct {
	ID      int64
	Date    string
	Content string
}

// LogFilter holds the optional task_logs constraints.
// Date range bounds are inclusive.
type LogFilter struct {
	Date     *string
	TaskID   *int64
	Status   *string
	DateFrom *string
	DateTo   *string
}

// Snapshot is the full content of the store.
type Snapshot struct {
	Tasks    []*Task
	TaskLogs []*TaskLog
	Journal  []*JournalEntry
}
