package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Manav279/DailyTracker/internal/domain"
	"github.com/Manav279/DailyTracker/internal/errors"
	"github.com/Manav279/DailyTracker/internal/logging"
	"github.com/Manav279/DailyTracker/internal/repository/sqlite"
	"github.com/Manav279/DailyTracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	logValidator  *validation.LogValidator
	log           *slog.Logger
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, validator *validation.Validator) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(validator),
		logValidator:  validation.NewLogValidator(validator),
		log:           logging.Component("tasks"),
	}
}

// CreateTask validates and stores a new habit
func (t *taskServiceImpl) CreateTask(ctx context.Context, title, pillar, frequency string) (*domain.Task, error) {
	task, err := t.taskValidator.ValidateTaskForCreation(title, pillar, frequency)
	if err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	row := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &row); err != nil {
		return nil, err
	}

	created := t.mapper.Task.FromDatabase(row)
	t.log.Debug("task created", slog.String("id", created.ID.String()), slog.String("pillar", string(created.Pillar)))
	return &created, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id domain.ID) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task id", err)
	}

	row, err := t.repo.GetTask(ctx, int64(id))
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*row)
	return &task, nil
}

// ListTasks returns every task in creation order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	rows, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(rows), nil
}

// DeleteTask removes a task. Its logs stay behind and no longer count
// toward any pillar.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id domain.ID) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task id", err)
	}
	return t.repo.DeleteTask(ctx, int64(id))
}

// TasksForDate pairs every task with its status on date. The first log
// found for a task on that date decides its status.
func (t *taskServiceImpl) TasksForDate(ctx context.Context, date string) ([]*domain.TaskDayStatus, error) {
	if err := t.logValidator.ValidateDate("date", date); err != nil {
		return nil, errors.NewValidationError("invalid date", err)
	}

	tasks, err := t.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := t.repo.ListTaskLogs(ctx, t.mapper.LogFilter.ToDatabase(domain.LogFilter{}.OnDate(date)))
	if err != nil {
		return nil, err
	}

	firstLog := make(map[domain.ID]domain.TaskLog, len(rows))
	for _, row := range rows {
		log := t.mapper.TaskLog.FromDatabase(*row)
		if _, seen := firstLog[log.TaskID]; !seen {
			firstLog[log.TaskID] = log
		}
	}

	statuses := make([]*domain.TaskDayStatus, len(tasks))
	for i, task := range tasks {
		status := &domain.TaskDayStatus{Task: *task, Date: date, Status: domain.TaskPending}
		if log, ok := firstLog[task.ID]; ok {
			status.Status = domain.TaskStatus(log.Status)
			status.LogID = log.ID
			status.LoggedLate = log.LoggedLate
		}
		statuses[i] = status
	}
	return statuses, nil
}

// ToggleCompleted flips a habit between completed and pending on date.
// A completed log is deleted, a skipped log becomes completed and a missing
// log is created as completed, marked late when date is not today.
func (t *taskServiceImpl) ToggleCompleted(ctx context.Context, id domain.ID, date string, today time.Time) (*domain.TaskDayStatus, error) {
	task, existing, err := t.lookupDay(ctx, id, date)
	if err != nil {
		return nil, err
	}

	switch {
	case existing == nil:
		return t.insertLog(ctx, task, date, domain.StatusCompleted, today)
	case existing.Status == domain.StatusCompleted:
		if err := t.repo.DeleteTaskLog(ctx, int64(existing.ID)); err != nil {
			return nil, err
		}
		t.log.Debug("completion removed", slog.String("task", id.String()), slog.String("date", date))
		return &domain.TaskDayStatus{Task: *task, Date: date, Status: domain.TaskPending}, nil
	default:
		return t.updateStatus(ctx, task, existing, domain.StatusCompleted)
	}
}

// MarkSkipped records that a habit was deliberately skipped on date.
func (t *taskServiceImpl) MarkSkipped(ctx context.Context, id domain.ID, date string, today time.Time) (*domain.TaskDayStatus, error) {
	task, existing, err := t.lookupDay(ctx, id, date)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return t.insertLog(ctx, task, date, domain.StatusSkipped, today)
	}
	if existing.Status == domain.StatusSkipped {
		return dayStatus(task, existing), nil
	}
	return t.updateStatus(ctx, task, existing, domain.StatusSkipped)
}

// lookupDay loads the task and its first log on date, which may be nil.
func (t *taskServiceImpl) lookupDay(ctx context.Context, id domain.ID, date string) (*domain.Task, *domain.TaskLog, error) {
	if err := t.logValidator.ValidateDate("date", date); err != nil {
		return nil, nil, errors.NewValidationError("invalid date", err)
	}
	task, err := t.GetTask(ctx, id)
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok && appErr.Type == errors.ErrorTypeNotFound {
			return nil, nil, appErr.WithContext("date", date)
		}
		return nil, nil, err
	}

	row, err := t.repo.FindTaskLog(ctx, int64(id), date)
	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return task, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	log := t.mapper.TaskLog.FromDatabase(*row)
	return task, &log, nil
}

func (t *taskServiceImpl) insertLog(ctx context.Context, task *domain.Task, date string, status domain.LogStatus, today time.Time) (*domain.TaskDayStatus, error) {
	log := domain.TaskLog{
		TaskID:     task.ID,
		Date:       date,
		Status:     status,
		LoggedLate: date != domain.FormatDate(today),
	}

	row := t.mapper.TaskLog.ToDatabase(log)
	if err := t.repo.CreateTaskLog(ctx, &row); err != nil {
		return nil, err
	}
	log.ID = domain.ID(row.ID)

	t.log.Debug("log created", slog.String("task", task.ID.String()), slog.String("date", date),
		slog.String("status", string(status)), slog.Bool("late", log.LoggedLate))
	return dayStatus(task, &log), nil
}

func (t *taskServiceImpl) updateStatus(ctx context.Context, task *domain.Task, log *domain.TaskLog, status domain.LogStatus) (*domain.TaskDayStatus, error) {
	log.Status = status
	row := t.mapper.TaskLog.ToDatabase(*log)
	if err := t.repo.UpdateTaskLog(ctx, &row); err != nil {
		return nil, err
	}
	return dayStatus(task, log), nil
}

func dayStatus(task *domain.Task, log *domain.TaskLog) *domain.TaskDayStatus {
	return &domain.TaskDayStatus{
		Task:       *task,
		Date:       log.Date,
		Status:     domain.TaskStatus(log.Status),
		LogID:      log.ID,
		LoggedLate: log.LoggedLate,
	}
}
