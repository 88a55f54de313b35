package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/picker"
	"github.com/spf13/cobra"
)

// ErrUnavailable is returned by check when the value may not be selected
var ErrUnavailable = errors.New("value unavailable")

// checkNow is replaced in tests
var checkNow = time.Now

var checkCmd = &cobra.Command{
	Use:   "check VALUE",
	Short: "Report whether a value is selectable",
	Long:  `Evaluates VALUE against the configured disablement rules. Exits non-zero when the date or time is disabled.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd.Flags().Changed)
		if err != nil {
			return err
		}

		loc, err := opts.Location()
		if err != nil {
			return err
		}

		t, err := picker.ParseValue(args[0], loc)
		if err != nil {
			return err
		}

		value := picker.FormatValue(t)
		reason := checkValue(opts, t, checkNow().In(loc))
		if reason != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: unavailable (%s)\n", value, reason)
			return fmt.Errorf("%w: %s", ErrUnavailable, reason)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: available\n", value)
		return nil
	},
}

// checkValue returns why t is disabled, or "" when it is selectable
func checkValue(opts picker.Options, t, now time.Time) string {
	if opts.Rules.DateDisabled(t, now) {
		return "date disabled"
	}
	if opts.DateOnly {
		return ""
	}

	hour, period := picker.From24Hour(t.Hour())
	if opts.Rules.TimeDisabled(t, hour, t.Minute(), period, now) {
		return "time disabled"
	}
	return ""
}
