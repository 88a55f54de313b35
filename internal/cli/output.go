package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/history"
	"github.com/dustin/go-humanize"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatTSV  OutputFormat = "tsv"
	FormatCSV  OutputFormat = "csv"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "tsv":
		return FormatTSV, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json, tsv, csv)", s)
	}
}

func writeConfirmations(w io.Writer, format OutputFormat, items []*history.Confirmation, now time.Time) error {
	switch format {
	case FormatJSON:
		return formatConfirmationsJSON(w, items)
	case FormatTSV:
		return formatConfirmationsTSV(w, items)
	case FormatCSV:
		return formatConfirmationsCSV(w, items)
	default:
		return formatConfirmationsText(w, items, now)
	}
}

func formatConfirmationsText(w io.Writer, items []*history.Confirmation, now time.Time) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "No confirmations recorded")
		return nil
	}
	for _, c := range items {
		fmt.Fprintf(w, "%s  %s  (%s)\n", c.Value, c.Display, humanize.RelTime(c.ConfirmedAt, now, "ago", "from now"))
	}
	return nil
}

func formatConfirmationsJSON(w io.Writer, items []*history.Confirmation) error {
	if items == nil {
		items = []*history.Confirmation{}
	}
	return json.NewEncoder(w).Encode(items)
}

func formatConfirmationsTSV(w io.Writer, items []*history.Confirmation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(tw, "ID\tVALUE\tTIMEZONE\tCONFIRMED\tDISPLAY")
	for _, c := range items {
		fmt.Fprintf(tw, "%.8s\t%s\t%s\t%s\t%s\n", c.ID, c.Value, c.Timezone, c.ConfirmedAt.Format(time.RFC3339), c.Display)
	}
	return tw.Flush()
}

func formatConfirmationsCSV(w io.Writer, items []*history.Confirmation) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"ID", "VALUE", "TIMEZONE", "CONFIRMED", "DISPLAY"})
	for _, c := range items {
		record := []string{c.ID, c.Value, c.Timezone, c.ConfirmedAt.Format(time.RFC3339), c.Display}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
