package cli

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/config"
	"github.com/MikeBiancalana/dtpick/internal/picker"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configForceFlag    bool
	configDefaultsFlag bool
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// GetConfigCommand returns the config command with its subcommands
func GetConfigCommand() *cobra.Command {
	return configCmd
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the picker configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !configForceFlag {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg := config.DefaultPickerConfig()
		if !configDefaultsFlag {
			cfg, err = runConfigForm(cfg)
			if err != nil {
				return err
			}
		}

		if err := config.SavePickerConfig(path, cfg); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForceFlag, "force", false, "Overwrite an existing config file")
	configInitCmd.Flags().BoolVar(&configDefaultsFlag, "defaults", false, "Write the defaults without prompting")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// runConfigForm asks for the common settings, starting from cfg
func runConfigForm(cfg config.PickerConfig) (config.PickerConfig, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display format").
				Description("Moment tokens such as " + picker.DefaultDisplayFormat + ", or a strftime layout").
				Value(&cfg.DisplayFormat),
			huh.NewInput().
				Title("Placeholder").
				Value(&cfg.Placeholder),
			huh.NewInput().
				Title("Timezone (empty for local)").
				Value(&cfg.Timezone).
				Validate(validateTimezone),
			huh.NewConfirm().
				Title("Date only?").
				Value(&cfg.DateOnly),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Theme colour").
				Value(&cfg.Theme.Color).
				Validate(validateHexColor),
			huh.NewConfirm().
				Title("Dark mode?").
				Value(&cfg.Theme.DarkMode),
			huh.NewConfirm().
				Title("Disable past dates?").
				Value(&cfg.Rules.DisablePast),
			huh.NewConfirm().
				Title("Disable future dates?").
				Value(&cfg.Rules.DisableFuture),
		),
	)

	if err := form.Run(); err != nil {
		return cfg, fmt.Errorf("form cancelled: %w", err)
	}

	cfg.Timezone = strings.TrimSpace(cfg.Timezone)
	return cfg, nil
}

func validateTimezone(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.LoadLocation(s); err != nil {
		return fmt.Errorf("unknown timezone %q", s)
	}
	return nil
}

func validateHexColor(s string) error {
	if !hexColor.MatchString(s) {
		return errors.New("use #RRGGBB")
	}
	return nil
}
