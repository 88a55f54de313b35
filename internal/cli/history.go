package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimitFlag  int
	historyJSONFlag   bool
	historyOutputFlag string
	historyClearFlag  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List confirmed values",
	Long:  `Lists values confirmed in the picker, most recent first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(historyOutputFlag)
		if err != nil {
			return err
		}
		if historyJSONFlag {
			format = FormatJSON
		}

		db, repo, err := openHistory()
		if err != nil {
			return err
		}
		defer db.Close()

		if historyClearFlag {
			n, err := repo.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Cleared %d confirmations\n", n)
			return nil
		}

		items, err := repo.List(historyLimitFlag)
		if err != nil {
			return err
		}

		return writeConfirmations(cmd.OutOrStdout(), format, items, checkNow())
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 20, "Maximum number of entries (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSONFlag, "json", false, "Output as JSON")
	historyCmd.Flags().StringVarP(&historyOutputFlag, "output", "o", "text", "Output format (text, json, tsv, csv)")
	historyCmd.Flags().BoolVar(&historyClearFlag, "clear", false, "Delete all recorded confirmations")
}
