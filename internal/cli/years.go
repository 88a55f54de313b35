package cli

import (
	"fmt"
	"strings"

	"github.com/MikeBiancalana/dtpick/internal/picker"
	"github.com/spf13/cobra"
)

var yearsPageFlag int

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Print a page of the year selector",
	Long:  `Prints the years offered by the year overlay, 20 per page, centred on the current year.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := checkNow().Year()
		pager := picker.NewYearPager(current)

		if cmd.Flags().Changed("page") {
			if yearsPageFlag < 1 || yearsPageFlag > pager.PageCount() {
				return fmt.Errorf("page must be between 1 and %d", pager.PageCount())
			}
			pager.SetPage(yearsPageFlag - 1)
		}

		fmt.Fprint(cmd.OutOrStdout(), renderYearPage(pager, current))
		return nil
	},
}

func init() {
	yearsCmd.Flags().IntVar(&yearsPageFlag, "page", 0, "Page to show (1-based, default: the page holding this year)")
}

// renderYearPage lays the page out four to a row, marking the current year
func renderYearPage(pager picker.YearPager, current int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Page %d/%d  %s\n", pager.Page()+1, pager.PageCount(), pager.RangeLabel())

	years := pager.Years()
	for start := 0; start < len(years); start += 4 {
		row := years[start:min(start+4, len(years))]
		cells := make([]string, len(row))
		for i, y := range row {
			cells[i] = fmt.Sprintf(" %d ", y)
			if y == current {
				cells[i] = fmt.Sprintf("[%d]", y)
			}
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return b.String()
}
