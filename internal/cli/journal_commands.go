package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Manav279/DailyTracker/internal/errors"
)

// JournalWriteCommand saves the journal entry of a date
type JournalWriteCommand struct {
	app  *App
	Date string
}

// NewJournalWriteCommand creates a new journal write command handler
func NewJournalWriteCommand(app *App) *JournalWriteCommand {
	return &JournalWriteCommand{app: app}
}

// Execute runs the journal write command. The entry replaces any earlier
// text for the same date.
func (c *JournalWriteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "journal write", "usage: dt journal write \"text\" [--date YYYY-MM-DD]")
	}
	date, err := resolveDate(c.Date, false)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	entry, err := c.app.businessAPI.WriteJournal(ctx, date, strings.Join(args, " "))
	if err != nil {
		return c.app.errorHandler.Handle("save journal entry", err)
	}

	fmt.Fprintf(c.app.out, "Saved journal entry for %s\n", entry.Date)
	return nil
}

// JournalShowCommand prints the journal entry of a date
type JournalShowCommand struct {
	app  *App
	Date string
}

// NewJournalShowCommand creates a new journal show command handler
func NewJournalShowCommand(app *App) *JournalShowCommand {
	return &JournalShowCommand{app: app}
}

// Execute runs the journal show command
func (c *JournalShowCommand) Execute(ctx context.Context, args []string) error {
	date, err := resolveDate(c.Date, false)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	entry, err := c.app.businessAPI.ReadJournal(ctx, date)
	if err != nil {
		return c.app.errorHandler.Handle("read journal entry", err)
	}
	if entry == nil {
		fmt.Fprintf(c.app.out, "No journal entry for %s\n", date)
		return nil
	}

	return c.app.renderer().Render(entry, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "%s\n\n%s\n", c.app.displayDate(entry.Date), entry.Content)
	})
}

// JournalRecentCommand lists the newest journal entries
type JournalRecentCommand struct {
	app   *App
	Limit int
}

// NewJournalRecentCommand creates a new journal recent command handler
func NewJournalRecentCommand(app *App) *JournalRecentCommand {
	return &JournalRecentCommand{app: app}
}

// Execute runs the journal recent command. A limit of 0 uses the configured one.
func (c *JournalRecentCommand) Execute(ctx context.Context, args []string) error {
	limit := c.Limit
	if limit <= 0 {
		limit = c.app.config.Journal.RecentLimit
	}

	entries, err := c.app.businessAPI.RecentJournal(ctx, limit)
	if err != nil {
		return c.app.errorHandler.Handle("list journal entries", err)
	}

	return c.app.renderer().Render(entries, func(tw *tabwriter.Writer) {
		if len(entries) == 0 {
			fmt.Fprintln(tw, "No journal entries")
			return
		}
		fmt.Fprintln(tw, "DATE\tENTRY")
		for _, entry := range entries {
			fmt.Fprintf(tw, "%s\t%s\n", entry.Date, firstLine(entry.Content, 60))
		}
	})
}

// firstLine shortens text to its first line, cut at max runes.
func firstLine(text string, max int) string {
	line, _, more := strings.Cut(text, "\n")
	runes := []rune(line)
	if len(runes) > max {
		return string(runes[:max-3]) + "..."
	}
	if more {
		return line + " ..."
	}
	return line
}
