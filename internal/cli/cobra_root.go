package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Manav279/DailyTracker/internal/api"
	"github.com/Manav279/DailyTracker/internal/config"
	"github.com/Manav279/DailyTracker/internal/logging"
)

// skipAPIAnnotation marks commands that run without opening the database.
const skipAPIAnnotation = "dt/skip-api"

// ConfigLoader builds the effective configuration from the flag overrides
type ConfigLoader func(overrides *config.ConfigOverrides) (*config.Config, error)

// APIFactory opens the store named by cfg. The returned closer, if any, is
// closed once the command finishes.
type APIFactory func(cfg *config.Config) (api.BusinessAPI, io.Closer, error)

// DefaultConfigLoader reads defaults, the config file, the environment and
// then the overrides.
func DefaultConfigLoader(overrides *config.ConfigOverrides) (*config.Config, error) {
	return config.NewLoader().LoadWithOverrides(overrides)
}

// handler is implemented by every command handler
type handler interface {
	Execute(ctx context.Context, args []string) error
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	load    ConfigLoader
	factory APIFactory

	config *config.Config
	app    *App
	closer io.Closer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(load ConfigLoader, factory APIFactory) *RootCommand {
	root := &RootCommand{
		load:    load,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "dt",
		Short: "Track daily habits across the physical, mental and social pillars",
		Long: `Daily Tracker (dt) records daily habits and shows how consistent you are.

Every habit belongs to one pillar: Physical, Mental or Social. Mark habits
done each day, keep a short journal, and follow your streaks and how your
effort is spread over the pillars.

EXAMPLES:
  dt add "Morning run" --pillar Physical     # Create a habit
  dt                                         # Today's habits, stats and quote
  dt done 1                                  # Toggle habit 1 for today
  dt done 1 --yesterday                      # Catch up on yesterday (logged late)
  dt skip 2                                  # Skip habit 2 today
  dt journal write "Slept well"              # Today's journal entry
  dt period --days 14                        # Completions per day
  dt pillars --days 30 -o json               # Pillar split as JSON
  dt habits                                  # Streak of every habit
  dt export --file backup.json               # Back up everything

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults.
  The config file is $DT_CONFIG or ~/.dt/config.yaml.

  DT_DB_DIR, DT_DB_FILENAME, DT_DB_QUERY_TIMEOUT, DT_DB_DIR_PERMISSIONS
  DT_VALIDATION_TITLE_MAX, DT_VALIDATION_JOURNAL_MAX
  DT_DISPLAY_DATE_FORMAT, DT_DISPLAY_DONE_MARK, DT_DISPLAY_MISS_MARK
  DT_ANALYTICS_PERIOD_DAYS, DT_ANALYTICS_PILLAR_DAYS, DT_JOURNAL_RECENT_LIMIT
  DT_APP_TIMEOUT, DT_APP_VERBOSE, DT_OUTPUT_FORMAT, DT_DEBUG`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		RunE: root.run(func(app *App) handler { return NewOverviewCommand(app) }),
	}

	config.RegisterFlags(root.cmd.PersistentFlags())
	root.addSubcommands()

	return root
}

// Command exposes the cobra command, mainly for tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command and releases the store afterwards
func (r *RootCommand) Execute() error {
	err := r.cmd.Execute()
	if r.closer != nil {
		if closeErr := r.closer.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close database: %w", closeErr)
		}
		r.closer = nil
	}
	return err
}

// setup loads the configuration and, unless the command opts out, opens the store.
func (r *RootCommand) setup(cmd *cobra.Command) error {
	overrides, err := config.OverridesFromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := r.load(overrides)
	if err != nil {
		return err
	}
	r.config = cfg
	logging.Configure(cmd.ErrOrStderr(), cfg.Application.Verbose)

	if cmd.Annotations[skipAPIAnnotation] != "" {
		return nil
	}

	businessAPI, closer, err := r.factory(cfg)
	if err != nil {
		return err
	}
	r.closer = closer
	r.app = NewApp(businessAPI, cfg, cmd.OutOrStdout())
	logging.Logger().Debug("store opened", "path", cfg.GetDatabasePath())
	return nil
}

// run adapts a handler to cobra, applying the configured timeout.
func (r *RootCommand) run(build func(app *App) handler) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), r.config.Application.Timeout)
		defer cancel()
		return build(r.app).Execute(ctx, args)
	}
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Habits
	add := &AddCommand{}
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a habit",
		Long: `Create a habit in one of the pillars Physical, Mental or Social.

Examples:
  dt add "Morning run" --pillar Physical
  dt add "Call a friend" --pillar social --frequency weekly`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.run(func(app *App) handler {
			add.app = app
			return add
		}),
	}
	addCmd.Flags().StringVarP(&add.Pillar, "pillar", "p", "", "pillar: Physical, Mental or Social")
	addCmd.Flags().StringVarP(&add.Frequency, "frequency", "f", "", "frequency label (default daily)")
	_ = addCmd.MarkFlagRequired("pillar")

	tasks := &TasksCommand{}
	tasksCmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"ls"},
		Short:   "List habits with their status for a day",
		Args:    cobra.NoArgs,
		RunE: r.run(func(app *App) handler {
			tasks.app = app
			return tasks
		}),
	}
	addDateFlags(tasksCmd, &tasks.Date, &tasks.Yesterday)

	done := &DoneCommand{}
	doneCmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a habit between completed and pending",
		Long: `Mark a habit completed for a day, or undo the completion if it was
already completed. A skipped habit becomes completed. Completing a past day
records the log as late.`,
		Args: cobra.ExactArgs(1),
		RunE: r.run(func(app *App) handler {
			done.app = app
			return done
		}),
	}
	addDateFlags(doneCmd, &done.Date, &done.Yesterday)

	skip := &SkipCommand{}
	skipCmd := &cobra.Command{
		Use:   "skip <task-id>",
		Short: "Mark a habit as skipped for a day",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App) handler {
			skip.app = app
			return skip
		}),
	}
	addDateFlags(skipCmd, &skip.Date, &skip.Yesterday)

	removeCmd := &cobra.Command{
		Use:     "remove <task-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a habit",
		Long:    "Delete a habit. Its past logs are kept but no longer count toward any pillar.",
		Args:    cobra.ExactArgs(1),
		RunE:    r.run(func(app *App) handler { return NewRemoveCommand(app) }),
	}

	// Journal
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Write and read the daily journal",
	}

	journalWrite := &JournalWriteCommand{}
	journalWriteCmd := &cobra.Command{
		Use:   "write <text>",
		Short: "Save the journal entry of a day, replacing any earlier text",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.run(func(app *App) handler {
			journalWrite.app = app
			return journalWrite
		}),
	}
	journalWriteCmd.Flags().StringVarP(&journalWrite.Date, "date", "d", "", "date as YYYY-MM-DD (default today)")

	journalShow := &JournalShowCommand{}
	journalShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the journal entry of a day",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) handler {
			journalShow.app = app
			return journalShow
		}),
	}
	journalShowCmd.Flags().StringVarP(&journalShow.Date, "date", "d", "", "date as YYYY-MM-DD (default today)")

	journalRecent := &JournalRecentCommand{}
	journalRecentCmd := &cobra.Command{
		Use:   "recent",
		Short: "List the newest journal entries",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) handler {
			journalRecent.app = app
			return journalRecent
		}),
	}
	journalRecentCmd.Flags().IntVarP(&journalRecent.Limit, "limit", "n", 0, "number of entries (default from config)")

	journalCmd.AddCommand(journalWriteCmd, journalShowCmd, journalRecentCmd)

	// Analytics
	stats := &StatsCommand{}
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show total, completed and pending habits for a day",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) handler {
			stats.app = app
			return stats
		}),
	}
	addDateFlags(statsCmd, &stats.Date, &stats.Yesterday)

	period := &PeriodCommand{}
	periodCmd := &cobra.Command{
		Use:   "period",
		Short: "Show completions per day over the last days",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) handler {
			period.app = app
			return period
		}),
	}
	periodCmd.Flags().IntVar(&period.Days, "days", 0, "number of days ending today (default from config)")
	periodCmd.PreRun = func(cmd *cobra.Command, args []string) {
		period.DaysSet = cmd.Flags().Changed("days")
	}

	pillars := &PillarsCommand{}
	pillarsCmd := &cobra.Command{
		Use:   "pillars",
		Short: "Show how completions are spread over the pillars",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) handler {
			pillars.app = app
			return pillars
		}),
	}
	pillarsCmd.Flags().IntVar(&pillars.Days, "days", 0, "number of days ending today, 0 for all time (default from config)")
	pillarsCmd.PreRun = func(cmd *cobra.Command, args []string) {
		pillars.DaysSet = cmd.Flags().Changed("days")
	}

	streakCmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the number of consecutive days with a completed habit",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(app *App) handler { return NewStreakCommand(app) }),
	}

	habitsCmd := &cobra.Command{
		Use:   "habits",
		Short: "Show the streak of every habit, longest first",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(app *App) handler { return NewHabitsCommand(app) }),
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show which habits were completed over the last seven days",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(app *App) handler { return NewHistoryCommand(app) }),
	}

	// Data
	export := &ExportCommand{}
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of all data",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) handler {
			export.app = app
			return export
		}),
	}
	exportCmd.Flags().StringVar(&export.File, "file", "", "write to this file instead of stdout")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a JSON backup into the database",
		Long: `Merge a JSON backup into the database. Rows with the same id are
overwritten; journal entries replace the entry of the same date. Nothing is
written when the file is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: r.run(func(app *App) handler { return NewImportCommand(app) }),
	}

	clearData := &ClearCommand{}
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every habit, log and journal entry",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) handler {
			clearData.app = app
			return clearData
		}),
	}
	clearCmd.Flags().BoolVar(&clearData.Yes, "yes", false, "confirm deleting all data")

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Show the quote of the day",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(app *App) handler { return NewQuoteCommand(app) }),
	}

	configCmd := &cobra.Command{
		Use:         "config",
		Short:       "Print the effective configuration as YAML",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipAPIAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewConfigCommand(r.config, cmd.OutOrStdout()).Execute()
		},
	}

	r.cmd.AddCommand(
		addCmd,
		tasksCmd,
		doneCmd,
		skipCmd,
		removeCmd,
		journalCmd,
		statsCmd,
		periodCmd,
		pillarsCmd,
		streakCmd,
		habitsCmd,
		historyCmd,
		exportCmd,
		importCmd,
		clearCmd,
		quoteCmd,
		configCmd,
	)
}

// addDateFlags adds --date and --yesterday to cmd
func addDateFlags(cmd *cobra.Command, date *string, yesterday *bool) {
	cmd.Flags().StringVarP(date, "date", "d", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVarP(yesterday, "yesterday", "y", false, "use yesterday's date")
	cmd.MarkFlagsMutuallyExclusive("date", "yesterday")
}
