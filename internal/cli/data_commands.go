package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Manav279/DailyTracker/internal/errors"
)

// ExportCommand writes a JSON backup of every task, log and journal entry
type ExportCommand struct {
	app  *App
	File string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// Execute runs the export command. Without --file the backup goes to stdout.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if c.File == "" {
		if _, err := c.app.businessAPI.ExportData(ctx, c.app.out, timeNow()); err != nil {
			return c.app.errorHandler.Handle("export data", err)
		}
		return nil
	}

	f, err := os.Create(c.File)
	if err != nil {
		return c.app.errorHandler.Handle("export data", errors.NewPermissionError("write", c.File))
	}
	defer f.Close()

	snapshot, err := c.app.businessAPI.ExportData(ctx, f, timeNow())
	if err != nil {
		return c.app.errorHandler.Handle("export data", err)
	}
	if err := f.Close(); err != nil {
		return c.app.errorHandler.Handle("export data", errors.WrapError(err, errors.ErrorTypePermission, "failed to write "+c.File))
	}

	fmt.Fprintf(c.app.out, "Exported %d tasks, %d logs and %d journal entries to %s\n",
		len(snapshot.Tasks), len(snapshot.TaskLogs), len(snapshot.Journal), c.File)
	return nil
}

// ImportCommand merges a JSON backup into the store
type ImportCommand struct {
	app *App
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{app: app}
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "import", "usage: dt import <file>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return c.app.errorHandler.Handle("import data", errors.NewNotFoundError("file", args[0]))
		}
		return c.app.errorHandler.Handle("import data", errors.NewPermissionError("read", args[0]))
	}
	defer f.Close()

	result, err := c.app.businessAPI.ImportData(ctx, f)
	if err != nil {
		return c.app.errorHandler.Handle("import data", err)
	}

	fmt.Fprintf(c.app.out, "Imported %d tasks, %d logs and %d journal entries\n", result.Tasks, result.TaskLogs, result.Journal)
	return nil
}

// ClearCommand deletes all stored data
type ClearCommand struct {
	app *App
	Yes bool
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{app: app}
}

// Execute runs the clear command. It refuses to run without --yes.
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	if !c.Yes {
		return c.app.errorHandler.HandleSimple(
			errors.NewInvalidInputError("yes", false, "this deletes every task, log and journal entry; rerun with --yes to confirm"))
	}

	if err := c.app.businessAPI.ClearAllData(ctx); err != nil {
		return c.app.errorHandler.Handle("clear data", err)
	}

	fmt.Fprintln(c.app.out, "All data cleared")
	return nil
}
