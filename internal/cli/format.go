package cli

import (
	"fmt"

	"github.com/MikeBiancalana/dtpick/internal/logger"
	"github.com/MikeBiancalana/dtpick/internal/picker"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format VALUE",
	Short: "Print the display text for a value",
	Long: `Renders VALUE ("YYYY-MM-DD H:mm:ss") with the configured display format.
Unparseable values print the placeholder, exactly as the picker input would.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOptions(cmd.Flags().Changed)
		if err != nil {
			return err
		}

		p := picker.New(opts, logger.GetLogger())
		p.SetValue(args[0])

		text, _ := p.DisplayValue()
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}
