package cli

import (
	"io"
	"strings"
	"time"

	"github.com/Manav279/DailyTracker/internal/api"
	"github.com/Manav279/DailyTracker/internal/config"
	"github.com/Manav279/DailyTracker/internal/domain"
	"github.com/Manav279/DailyTracker/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App carries what every command handler needs
type App struct {
	businessAPI  api.BusinessAPI
	config       *config.Config
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection.
// A nil cfg uses the defaults.
func NewApp(businessAPI api.BusinessAPI, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	errorHandler := NewErrorHandler()
	errorHandler.SetVerbose(cfg.Application.Verbose)
	return &App{
		businessAPI:  businessAPI,
		config:       cfg,
		out:          out,
		errorHandler: errorHandler,
	}
}

// renderer returns a renderer for the configured output format
func (a *App) renderer() *Renderer {
	return NewRenderer(a.out, a.config.Commands.OutputFormat)
}

// displayDate renders a YYYY-MM-DD date with the configured layout.
func (a *App) displayDate(date string) string {
	t, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format(a.config.Display.DateFormat)
}

// resolveDate turns the --date and --yesterday flags into a YYYY-MM-DD
// date. No flag means today; "today" and "yesterday" are accepted as dates.
func resolveDate(date string, yesterday bool) (string, error) {
	now := timeNow()
	if yesterday {
		return domain.FormatDate(domain.AddDays(now, -1)), nil
	}

	switch strings.ToLower(strings.TrimSpace(date)) {
	case "", "today":
		return domain.FormatDate(now), nil
	case "yesterday":
		return domain.FormatDate(domain.AddDays(now, -1)), nil
	}

	if !domain.IsValidDate(date) {
		return "", errors.NewInvalidInputError("date", date, "expected YYYY-MM-DD")
	}
	return date, nil
}

// parseTaskID parses a task id argument
func parseTaskID(arg string) (domain.ID, error) {
	id, err := domain.ParseID(strings.TrimSpace(arg))
	if err != nil || !id.Assigned() {
		return 0, errors.NewInvalidInputError("task id", arg, "must be a positive integer")
	}
	return id, nil
}
