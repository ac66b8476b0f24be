package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanAll drains rows with scan.
func ScanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	err := scanner.Scan(&task.ID, &task.Title, &task.Pillar, &task.Frequency)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	return ScanAll(rows, ScanTask)
}

// ScanTaskLog scans a single task log from a database row
func ScanTaskLog(scanner Scanner) (*TaskLog, error) {
	log := &TaskLog{}
	var loggedLate int64

	err := scanner.Scan(
		&log.ID,
		&log.TaskID,
		&log.Date,
		&log.Status,
		&loggedLate,
	)
	if err != nil {
		return nil, err
	}

	log.LoggedLate = ParseBoolFromDB(loggedLate)
	return log, nil
}

// ScanTaskLogs scans multiple task logs from database rows
func ScanTaskLogs(rows Rows) ([]*TaskLog, error) {
	return ScanAll(rows, ScanTaskLog)
}

// ScanJournalEntry scans a single journal entry from a database row
func ScanJournalEntry(scanner Scanner) (*JournalEntry, error) {
	entry := &JournalEntry{}
	err := scanner.Scan(&entry.ID, &entry.Date, &entry.Content)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ScanJournalEntries scans multiple journal entries from database rows
func ScanJournalEntries(rows Rows) ([]*JournalEntry, error) {
	return ScanAll(rows, ScanJournalEntry)
}
