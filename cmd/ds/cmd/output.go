package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	domain "github.com/dealscout/dealscout/pkg/types"
)

// tabWriter wraps tabwriter.Writer and tracks the first write error so the
// print helpers don't need an error check per line.
type tabWriter struct {
	w   *tabwriter.Writer
	err error
}

func newTabWriter() *tabWriter {
	return &tabWriter{w: tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)}
}

func (t *tabWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *tabWriter) flush() error {
	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printListingsTable(listings []domain.Listing) error {
	t := newTabWriter()
	t.printf("VIN\tYEAR\tMAKE\tMODEL\tPRICE\tMILES\tDOM\tSCORE\tBUY MAX\n")
	for _, l := range listings {
		t.printf("%s\t%d\t%s\t%s\t%.2f\t%d\t%d\t%s\t%s\n",
			l.VIN, l.Year, truncate(l.Make, 12), truncate(l.Model, 16),
			l.Price, l.Miles, l.DOM, fmtScore(l.Score), fmtBuyMax(l.BuyMax))
	}
	t.printf("\n%d listing(s)\n", len(listings))
	return t.flush()
}

func printScoresTable(responses []domain.ScoreResponse) error {
	t := newTabWriter()
	t.printf("VIN\tSCORE\tBUY MAX\tREASONS\n")
	for _, r := range responses {
		t.printf("%s\t%d\t%.2f\t%v\n", r.VIN, r.Score, r.BuyMax, r.ReasonCodes)
	}
	return t.flush()
}

func fmtScore(score *int) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *score)
}

func fmtBuyMax(buyMax *float64) string {
	if buyMax == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *buyMax)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
