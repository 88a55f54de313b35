package cli

import (
	"fmt"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/config"
	"github.com/MikeBiancalana/dtpick/internal/history"
	"github.com/MikeBiancalana/dtpick/internal/logger"
	"github.com/MikeBiancalana/dtpick/internal/picker"
	"github.com/MikeBiancalana/dtpick/internal/storage"
	"github.com/MikeBiancalana/dtpick/internal/sync"
	"github.com/MikeBiancalana/dtpick/internal/tui"
	"github.com/MikeBiancalana/dtpick/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	valueFlag string
	watchFlag bool
	noHistory bool
	stayFlag  bool
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "dtpick",
	Short: "dtpick - terminal date and time picker",
	Long: `A terminal date and time picker. Opens a calendar and time selector,
prints the confirmed value as "YYYY-MM-DD H:mm:00" and records it in the history.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker(cmd)
	},
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVar(&flags.format, "format", "", "Display format (moment tokens, or strftime when it contains %)")
	pf.StringVar(&flags.placeholder, "placeholder", "", "Text shown when no value is set")
	pf.StringVar(&flags.themeColor, "theme-color", "", "Accent colour as hex")
	pf.StringVar(&flags.timezone, "tz", "", "IANA timezone (default: local)")
	pf.BoolVar(&flags.dateOnly, "date-only", false, "Hide the time selector")
	pf.BoolVar(&flags.dark, "dark", false, "Use dark colours")
	pf.BoolVar(&flags.disablePast, "disable-past", false, "Disable dates and times before now")
	pf.BoolVar(&flags.disableFuture, "disable-future", false, "Disable dates and times after now")
	pf.StringSliceVar(&flags.disabledDates, "disabled-date", nil, "Disable a YYYY-MM-DD date (repeatable)")
	pf.StringVar(&flags.disableBefore, "disable-before", "", "Disable everything before this date-time")
	pf.StringVar(&flags.disableAfter, "disable-after", "", "Disable everything after this date-time")

	RootCmd.Flags().StringVar(&valueFlag, "value", "", "Initial value (YYYY-MM-DD H:mm:ss)")
	RootCmd.Flags().BoolVar(&watchFlag, "watch", false, "Reload config.yaml while the picker is open")
	RootCmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the confirmed value")
	RootCmd.Flags().BoolVar(&stayFlag, "stay", false, "Keep running after a value is confirmed")

	// Add subcommands
	RootCmd.AddCommand(formatCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(yearsCmd)
	RootCmd.AddCommand(historyCmd)
	RootCmd.AddCommand(GetConfigCommand())
}

// runPicker launches the TUI and prints the confirmed value
func runPicker(cmd *cobra.Command) error {
	// The alt screen owns the terminal, so logs go to a file
	if err := logger.InitializeWithConfig(logger.ConfigFromEnv(true)); err != nil {
		return err
	}
	defer logger.Close()

	opts, err := resolveOptions(cmd.Flags().Changed)
	if err != nil {
		return err
	}

	dtp := components.NewDateTimePicker(opts, logger.GetLogger())
	if valueFlag != "" {
		dtp.SetValue(valueFlag)
	}

	model := tui.NewModel(dtp)
	model.SetAutoOpen(true)
	model.SetQuitOnConfirm(!stayFlag)

	if !noHistory {
		db, repo, err := openHistory()
		if err != nil {
			logger.Warn("history disabled", "error", err)
		} else {
			defer db.Close()
			session, err := repo.StartSession("tui")
			if err != nil {
				logger.Warn("history disabled", "error", err)
			} else {
				model.SetHistory(repo, session.ID)
			}
		}
	}

	if watchFlag {
		path, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		w, err := sync.NewWatcher(path, logger.GetLogger())
		if err != nil {
			return err
		}
		defer w.Stop()

		changed := cmd.Flags().Changed
		model.SetWatcher(w, func(o picker.Options) picker.Options {
			merged, err := flags.apply(o, changed)
			if err != nil {
				logger.Warn("flags not reapplied", "error", err)
				return o
			}
			return merged
		})
	}

	start := time.Now()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	dtp.Picker().Stats().LogStats(logger.GetLogger())
	logger.Info("picker closed", "elapsed", time.Since(start), "result", model.Result())

	if model.Result() == "" {
		return fmt.Errorf("no value selected")
	}
	fmt.Fprintln(cmd.OutOrStdout(), model.Result())
	return nil
}

// openHistory opens the history database in the data directory
func openHistory() (*storage.Database, *history.Repository, error) {
	dbPath, err := config.DatabasePath()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database path: %w", err)
	}

	db, err := storage.NewDatabase(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, history.NewRepository(db, logger.GetLogger()), nil
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
