package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Manav279/DailyTracker/internal/domain"
	"github.com/Manav279/DailyTracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app       *App
	Pillar    string
	Frequency string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: dt add \"title\" --pillar Physical|Mental|Social")
	}

	task, err := c.app.businessAPI.AddTask(ctx, strings.Join(args, " "), c.Pillar, c.Frequency)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added task %d: %s [%s, %s]\n", task.ID, task.Title, task.Pillar, task.Frequency)
	return nil
}

// TasksCommand lists every task with its status on one date
type TasksCommand struct {
	app       *App
	Date      string
	Yesterday bool
}

// NewTasksCommand creates a new tasks command handler
func NewTasksCommand(app *App) *TasksCommand {
	return &TasksCommand{app: app}
}

// Execute runs the tasks command
func (c *TasksCommand) Execute(ctx context.Context, args []string) error {
	date, err := resolveDate(c.Date, c.Yesterday)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	statuses, err := c.app.businessAPI.TasksForDate(ctx, date)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	return c.app.renderer().Render(statuses, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Tasks for %s\n", c.app.displayDate(date))
		if len(statuses) == 0 {
			fmt.Fprintln(tw, "No tasks yet. Add one with: dt add \"title\" --pillar Physical")
			return
		}
		fmt.Fprintln(tw, "ID\tTASK\tPILLAR\tSTATUS")
		for _, s := range statuses {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Task.ID, s.Task.Title, s.Task.Pillar, statusLabel(s))
		}
	})
}

// statusLabel renders a day status, marking late logs.
func statusLabel(s *domain.TaskDayStatus) string {
	if s.LoggedLate && s.Status != domain.TaskPending {
		return string(s.Status) + " (late)"
	}
	return string(s.Status)
}

// DoneCommand toggles a task between completed and pending
type DoneCommand struct {
	app       *App
	Date      string
	Yesterday bool
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	id, date, err := taskDayArgs("done", args, c.Date, c.Yesterday)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	status, err := c.app.businessAPI.ToggleTask(ctx, id, date, timeNow())
	if err != nil {
		return c.app.errorHandler.Handle("toggle task", err)
	}

	if status.Status == domain.TaskCompleted {
		fmt.Fprintf(c.app.out, "Completed %q on %s", status.Task.Title, date)
		if status.LoggedLate {
			fmt.Fprint(c.app.out, " (logged late)")
		}
		fmt.Fprintln(c.app.out)
		return nil
	}
	fmt.Fprintf(c.app.out, "Marked %q as pending on %s\n", status.Task.Title, date)
	return nil
}

// SkipCommand marks a task as skipped
type SkipCommand struct {
	app       *App
	Date      string
	Yesterday bool
}

// NewSkipCommand creates a new skip command handler
func NewSkipCommand(app *App) *SkipCommand {
	return &SkipCommand{app: app}
}

// Execute runs the skip command
func (c *SkipCommand) Execute(ctx context.Context, args []string) error {
	id, date, err := taskDayArgs("skip", args, c.Date, c.Yesterday)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	status, err := c.app.businessAPI.SkipTask(ctx, id, date, timeNow())
	if err != nil {
		return c.app.errorHandler.Handle("skip task", err)
	}

	fmt.Fprintf(c.app.out, "Skipped %q on %s\n", status.Task.Title, date)
	return nil
}

// taskDayArgs parses the <task-id> argument and the date flags.
func taskDayArgs(command string, args []string, date string, yesterday bool) (domain.ID, string, error) {
	if len(args) != 1 {
		return 0, "", errors.NewInvalidInputError("command", command, fmt.Sprintf("usage: dt %s <task-id> [--date YYYY-MM-DD | --yesterday]", command))
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return 0, "", err
	}
	resolved, err := resolveDate(date, yesterday)
	if err != nil {
		return 0, "", err
	}
	return id, resolved, nil
}

// RemoveCommand deletes a task
type RemoveCommand struct {
	app *App
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app}
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "remove", "usage: dt remove <task-id>")
	}
	id, err := parseTaskID(args[0])
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	if err := c.app.businessAPI.RemoveTask(ctx, id); err != nil {
		return c.app.errorHandler.Handle("remove task", err)
	}

	fmt.Fprintf(c.app.out, "Removed task %d\n", id)
	return nil
}
