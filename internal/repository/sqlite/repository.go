package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Manav279/DailyTracker/internal/errors"
	"github.com/Manav279/DailyTracker/internal/logging"
	"github.com/Manav279/DailyTracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Tasks
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	DeleteTask(ctx context.Context, id int64) error
	CountTasks(ctx context.Context) (int, error)

	// Task logs
	CreateTaskLog(ctx context.Context, log *TaskLog) error
	FindTaskLog(ctx context.Context, taskID int64, date string) (*TaskLog, error)
	ListTaskLogs(ctx context.Context, filter LogFilter) ([]*TaskLog, error)
	CountTaskLogs(ctx context.Context, filter LogFilter) (int, error)
	UpdateTaskLog(ctx context.Context, log *TaskLog) error
	DeleteTaskLog(ctx context.Context, id int64) error

	// Journal
	GetJournalEntry(ctx context.Context, date string) (*JournalEntry, error)
	SaveJournalEntry(ctx context.Context, entry *JournalEntry) error
	ListJournalEntries(ctx context.Context, limit int) ([]*JournalEntry, error)

	// Whole store
	ExportAll(ctx context.Context) (*Snapshot, error)
	ImportSnapshot(ctx context.Context, snapshot *Snapshot) error
	ClearAll(ctx context.Context) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db           *sql.DB
	log          *slog.Logger
	queryTimeout time.Duration
}

// Option configures a SQLiteRepository
type Option func(*SQLiteRepository)

// WithQueryTimeout bounds every repository call by d. Zero means no bound
// beyond the caller's context.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *SQLiteRepository) {
		r.queryTimeout = d
	}
}

// New creates a new SQLite repository instance
func New(dbPath string, opts ...Option) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// One connection: a single local writer, and ":memory:" databases are
	// per connection.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	repo := &SQLiteRepository{db: db, log: logging.Component("sqlite")}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

// bound applies the query timeout to ctx.
func (r *SQLiteRepository) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const (
	taskColumns    = "id, title, pillar, frequency"
	taskLogColumns = "id, task_id, date, status, logged_late"
	journalColumns = "id, date, content"
)

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `INSERT INTO tasks (title, pillar, frequency) VALUES (?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Title, task.Pillar, task.Frequency)
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in creation order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// DeleteTask deletes a task by ID. Its logs are left in place.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// CountTasks returns the number of stored tasks
func (r *SQLiteRepository) CountTasks(ctx context.Context) (int, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	return QueryCount(ctx, r.db, `SELECT COUNT(*) FROM tasks`, "tasks")
}

// CreateTaskLog creates a new task log
func (r *SQLiteRepository) CreateTaskLog(ctx context.Context, log *TaskLog) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
	INSERT INTO task_logs (task_id, date, status, logged_late)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, log.TaskID, log.Date, log.Status, FormatBoolForDB(log.LoggedLate))
	if err != nil {
		return err
	}
	log.ID = id
	return nil
}

// FindTaskLog returns the first log for a task on a date.
func (r *SQLiteRepository) FindTaskLog(ctx context.Context, taskID int64, date string) (*TaskLog, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
	SELECT ` + taskLogColumns + `
	FROM task_logs
	WHERE task_id = ? AND date = ?
	ORDER BY id ASC
	LIMIT 1`
	return QuerySingle(ctx, r.db, query, ScanTaskLog, "task log", fmt.Sprintf("task %d on %s", taskID, date), taskID, date)
}

// ListTaskLogs retrieves the logs matching filter ordered by date
func (r *SQLiteRepository) ListTaskLogs(ctx context.Context, filter LogFilter) ([]*TaskLog, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	where, args := BuildLogConditions(filter)
	query := `SELECT ` + taskLogColumns + ` FROM task_logs` + where + ` ORDER BY date ASC, id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTaskLogs, "task logs", args...)
}

// CountTaskLogs counts the logs matching filter
func (r *SQLiteRepository) CountTaskLogs(ctx context.Context, filter LogFilter) (int, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	where, args := BuildLogConditions(filter)
	return QueryCount(ctx, r.db, `SELECT COUNT(*) FROM task_logs`+where, "task logs", args...)
}

// UpdateTaskLog updates an existing task log
func (r *SQLiteRepository) UpdateTaskLog(ctx context.Context, log *TaskLog) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
	UPDATE task_logs
	SET task_id = ?, date = ?, status = ?, logged_late = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task log", fmt.Sprintf("%d", log.ID), log.TaskID, log.Date, log.Status, FormatBoolForDB(log.LoggedLate), log.ID)
}

// DeleteTaskLog deletes a task log by ID
func (r *SQLiteRepository) DeleteTaskLog(ctx context.Context, id int64) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `DELETE FROM task_logs WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task log", fmt.Sprintf("%d", id), id)
}

// GetJournalEntry retrieves the entry for a date
func (r *SQLiteRepository) GetJournalEntry(ctx context.Context, date string) (*JournalEntry, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `SELECT ` + journalColumns + ` FROM journal WHERE date = ?`
	return QuerySingle(ctx, r.db, query, ScanJournalEntry, "journal entry", date, date)
}

// SaveJournalEntry inserts the entry or replaces the content of the
// existing entry for the same date. entry.ID is set to the stored row.
func (r *SQLiteRepository) SaveJournalEntry(ctx context.Context, entry *JournalEntry) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
	INSERT INTO journal (date, content) VALUES (?, ?)
	ON CONFLICT(date) DO UPDATE SET content = excluded.content`

	if _, err := r.db.ExecContext(ctx, query, entry.Date, entry.Content); err != nil {
		return HandleDatabaseError("save journal entry", err)
	}

	stored, err := r.GetJournalEntry(ctx, entry.Date)
	if err != nil {
		return err
	}
	entry.ID = stored.ID
	return nil
}

// ListJournalEntries returns entries newest first. A limit <= 0 returns all.
func (r *SQLiteRepository) ListJournalEntries(ctx context.Context, limit int) ([]*JournalEntry, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `SELECT ` + journalColumns + ` FROM journal ORDER BY date DESC`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return QueryMultiple(ctx, r.db, query, ScanJournalEntries, "journal entries", args...)
}

// ExportAll reads every table.
func (r *SQLiteRepository) ExportAll(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	tasks, err := r.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := QueryMultiple(ctx, r.db, `SELECT `+taskLogColumns+` FROM task_logs ORDER BY id ASC`, ScanTaskLogs, "task logs")
	if err != nil {
		return nil, err
	}
	journal, err := QueryMultiple(ctx, r.db, `SELECT `+journalColumns+` FROM journal ORDER BY id ASC`, ScanJournalEntries, "journal entries")
	if err != nil {
		return nil, err
	}

	return &Snapshot{Tasks: tasks, TaskLogs: logs, Journal: journal}, nil
}

// ImportSnapshot upserts every row by id in one transaction. Rows without
// an id get a new one. A journal row replaces any other row for its date.
func (r *SQLiteRepository) ImportSnapshot(ctx context.Context, snapshot *Snapshot) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	return r.withTx(ctx, "import snapshot", func(tx *sql.Tx) error {
		for _, task := range snapshot.Tasks {
			if err := upsertTask(ctx, tx, task); err != nil {
				return err
			}
		}
		for _, log := range snapshot.TaskLogs {
			if err := upsertTaskLog(ctx, tx, log); err != nil {
				return err
			}
		}
		for _, entry := range snapshot.Journal {
			if err := upsertJournalEntry(ctx, tx, entry); err != nil {
				return err
			}
		}
		r.log.Debug("snapshot imported",
			slog.Int("tasks", len(snapshot.Tasks)),
			slog.Int("taskLogs", len(snapshot.TaskLogs)),
			slog.Int("journal", len(snapshot.Journal)))
		return nil
	})
}

// ClearAll deletes every task, log and journal entry in one transaction.
func (r *SQLiteRepository) ClearAll(ctx context.Context) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	return r.withTx(ctx, "clear all", func(tx *sql.Tx) error {
		for _, table := range []string{"task_logs", "tasks", "journal"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return HandleDatabaseError("clear "+table, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) withTx(ctx context.Context, operation string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin "+operation, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Warn("rollback failed", slog.String("operation", operation), slog.Any("error", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit "+operation, err)
	}
	return nil
}

func upsertTask(ctx context.Context, tx Executor, task *Task) error {
	if task.ID <= 0 {
		id, err := ExecuteWithLastInsertID(ctx, tx, `INSERT INTO tasks (title, pillar, frequency) VALUES (?, ?, ?)`,
			task.Title, task.Pillar, task.Frequency)
		task.ID = id
		return err
	}

	query := `
	INSERT INTO tasks (id, title, pillar, frequency) VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET title = excluded.title, pillar = excluded.pillar, frequency = excluded.frequency`
	if _, err := tx.ExecContext(ctx, query, task.ID, task.Title, task.Pillar, task.Frequency); err != nil {
		return HandleDatabaseError("import task", err)
	}
	return nil
}

func upsertTaskLog(ctx context.Context, tx Executor, log *TaskLog) error {
	late := FormatBoolForDB(log.LoggedLate)
	if log.ID <= 0 {
		id, err := ExecuteWithLastInsertID(ctx, tx, `INSERT INTO task_logs (task_id, date, status, logged_late) VALUES (?, ?, ?, ?)`,
			log.TaskID, log.Date, log.Status, late)
		log.ID = id
		return err
	}

	query := `
	INSERT INTO task_logs (id, task_id, date, status, logged_late) VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET task_id = excluded.task_id, date = excluded.date,
		status = excluded.status, logged_late = excluded.logged_late`
	if _, err := tx.ExecContext(ctx, query, log.ID, log.TaskID, log.Date, log.Status, late); err != nil {
		return HandleDatabaseError("import task log", err)
	}
	return nil
}

func upsertJournalEntry(ctx context.Context, tx Executor, entry *JournalEntry) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM journal WHERE date = ? AND id != ?`, entry.Date, entry.ID); err != nil {
		return HandleDatabaseError("import journal entry", err)
	}

	if entry.ID <= 0 {
		id, err := ExecuteWithLastInsertID(ctx, tx, `INSERT INTO journal (date, content) VALUES (?, ?)`, entry.Date, entry.Content)
		entry.ID = id
		return err
	}

	query := `
	INSERT INTO journal (id, date, content) VALUES (?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET date = excluded.date, content = excluded.content`
	if _, err := tx.ExecContext(ctx, query, entry.ID, entry.Date, entry.Content); err != nil {
		return HandleDatabaseError("import journal entry", err)
	}
	return nil
}
