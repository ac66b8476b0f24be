package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize/english"

	"github.com/Manav279/DailyTracker/internal/domain"
)

// StatsCommand shows the completion summary of one day
type StatsCommand struct {
	app       *App
	Date      string
	Yesterday bool
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	date, err := resolveDate(c.Date, c.Yesterday)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}
	day, err := domain.ParseDate(date)
	if err != nil {
		return c.app.errorHandler.HandleSimple(err)
	}

	stats, err := c.app.businessAPI.DailyStats(ctx, day)
	if err != nil {
		return c.app.errorHandler.Handle("compute daily stats", err)
	}

	return c.app.renderer().Render(stats, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Stats for %s\n", c.app.displayDate(stats.Date))
		fmt.Fprintf(tw, "Total\t%d\n", stats.Total)
		fmt.Fprintf(tw, "Completed\t%d\n", stats.Completed)
		fmt.Fprintf(tw, "Pending\t%d\n", stats.Pending)
	})
}

// PeriodCommand shows completions per day over a trailing window
type PeriodCommand struct {
	app     *App
	Days    int
	DaysSet bool
}

// NewPeriodCommand creates a new period command handler
func NewPeriodCommand(app *App) *PeriodCommand {
	return &PeriodCommand{app: app}
}

// Execute runs the period command
func (c *PeriodCommand) Execute(ctx context.Context, args []string) error {
	days := c.app.config.Analytics.PeriodDays
	if c.DaysSet {
		days = c.Days
	}

	stats, err := c.app.businessAPI.PeriodStats(ctx, timeNow(), days)
	if err != nil {
		return c.app.errorHandler.Handle("compute period stats", err)
	}

	return c.app.renderer().Render(stats, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "DATE\tDONE\tPHYSICAL\tMENTAL\tSOCIAL\t")
		for _, s := range stats {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n",
				c.app.displayDate(s.Date), s.Count, s.Physical, s.Mental, s.Social, strings.Repeat("#", s.Count))
		}
	})
}

// PillarsCommand shows how completions are spread over the pillars
type PillarsCommand struct {
	app     *App
	Days    int
	DaysSet bool
}

// NewPillarsCommand creates a new pillars command handler
func NewPillarsCommand(app *App) *PillarsCommand {
	return &PillarsCommand{app: app}
}

// Execute runs the pillars command
func (c *PillarsCommand) Execute(ctx context.Context, args []string) error {
	days := c.app.config.Analytics.PillarDays
	if c.DaysSet {
		days = c.Days
	}

	counts, err := c.app.businessAPI.PillarStats(ctx, timeNow(), days)
	if err != nil {
		return c.app.errorHandler.Handle("compute pillar stats", err)
	}

	return c.app.renderer().Render(counts, func(tw *tabwriter.Writer) {
		if days > 0 {
			fmt.Fprintf(tw, "Completions over the last %s\n", english.Plural(days, "day", ""))
		} else {
			fmt.Fprintln(tw, "Completions over all time")
		}
		fmt.Fprintln(tw, "PILLAR\tCOUNT\tSHARE")
		total := counts.Total()
		for _, pillar := range domain.Pillars {
			share := 0
			if total > 0 {
				share = counts.Get(pillar) * 100 / total
			}
			fmt.Fprintf(tw, "%s\t%d\t%d%%\n", pillar, counts.Get(pillar), share)
		}
	})
}

// StreakCommand shows the current overall streak
type StreakCommand struct {
	app *App
}

// NewStreakCommand creates a new streak command handler
func NewStreakCommand(app *App) *StreakCommand {
	return &StreakCommand{app: app}
}

// Execute runs the streak command
func (c *StreakCommand) Execute(ctx context.Context, args []string) error {
	streak, err := c.app.businessAPI.CurrentStreak(ctx, timeNow())
	if err != nil {
		return c.app.errorHandler.Handle("compute streak", err)
	}

	data := map[string]int{"streak": streak}
	return c.app.renderer().Render(data, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Current streak: %s\n", english.Plural(streak, "day", ""))
	})
}

// HabitsCommand lists every habit with its own streak, longest first
type HabitsCommand struct {
	app *App
}

// NewHabitsCommand creates a new habits command handler
func NewHabitsCommand(app *App) *HabitsCommand {
	return &HabitsCommand{app: app}
}

// Execute runs the habits command
func (c *HabitsCommand) Execute(ctx context.Context, args []string) error {
	streaks, err := c.app.businessAPI.HabitStreaks(ctx, timeNow())
	if err != nil {
		return c.app.errorHandler.Handle("compute habit streaks", err)
	}

	return c.app.renderer().Render(streaks, func(tw *tabwriter.Writer) {
		if len(streaks) == 0 {
			fmt.Fprintln(tw, "No tasks yet")
			return
		}
		fmt.Fprintln(tw, "ID\tTASK\tPILLAR\tSTREAK")
		for _, s := range streaks {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Title, s.Pillar, english.Plural(s.Streak, "day", ""))
		}
	})
}

// HistoryCommand shows the completion matrix of the last seven days
type HistoryCommand struct {
	app *App
}

// NewHistoryCommand creates a new history command handler
func NewHistoryCommand(app *App) *HistoryCommand {
	return &HistoryCommand{app: app}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context, args []string) error {
	history, err := c.app.businessAPI.HabitHistory(ctx, timeNow())
	if err != nil {
		return c.app.errorHandler.Handle("build habit history", err)
	}

	display := c.app.config.Display
	return c.app.renderer().Render(history, func(tw *tabwriter.Writer) {
		fmt.Fprint(tw, "TASK")
		for _, date := range history.Dates {
			fmt.Fprintf(tw, "\t%s", weekday(date))
		}
		fmt.Fprintln(tw)

		for _, habit := range history.Habits {
			fmt.Fprint(tw, habit.Title)
			for _, done := range habit.History {
				mark := display.MissMark
				if done {
					mark = display.DoneMark
				}
				fmt.Fprintf(tw, "\t%s", mark)
			}
			fmt.Fprintln(tw)
		}
	})
}

// weekday renders a YYYY-MM-DD date as its short weekday name.
func weekday(date string) string {
	t, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Mon")
}

// OverviewCommand shows today's tasks, stats, streak and quote
type OverviewCommand struct {
	app *App
}

// NewOverviewCommand creates a new overview command handler
func NewOverviewCommand(app *App) *OverviewCommand {
	return &OverviewCommand{app: app}
}

// Execute runs the overview command
func (c *OverviewCommand) Execute(ctx context.Context, args []string) error {
	overview, err := c.app.businessAPI.Overview(ctx, timeNow())
	if err != nil {
		return c.app.errorHandler.Handle("load today", err)
	}

	return c.app.renderer().Render(overview, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "%s\n", c.app.displayDate(overview.Date))
		fmt.Fprintf(tw, "%q - %s\n\n", overview.Quote.Text, overview.Quote.Author)
		fmt.Fprintf(tw, "Done %d of %d, streak %s\n\n",
			overview.Stats.Completed, overview.Stats.Total, english.Plural(overview.Streak, "day", ""))
		for _, s := range overview.Tasks {
			mark := " "
			if s.Status == domain.TaskCompleted {
				mark = c.app.config.Display.DoneMark
			}
			fmt.Fprintf(tw, "[%s]\t%d\t%s\t%s\n", mark, s.Task.ID, s.Task.Title, statusLabel(s))
		}
	})
}
