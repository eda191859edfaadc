package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/aggregate"
)

// WriteTable prints a compact terminal summary: criteria, overall scores and alerts.
func WriteTable(r *aggregate.Result, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "=== Consolidation (%d reports) ===\n\n", r.TotalReports)
	writeCriteriaTable(tw, r)

	fmt.Fprintf(tw, "Overall (mean of criterion means)\t%s\n", FormatOptional(r.OverallScore))
	if r.OverallScoreFromReports != nil {
		fmt.Fprintf(tw, "Overall (reported)\t%s\n", FormatOptional(r.OverallScoreFromReports))
	}

	if len(r.Alerts) > 0 {
		fmt.Fprintf(tw, "\nHigh divergence\n\n")
		writeRow(tw, "Criterion", "Stdev")
		writeSeparator(tw, 2)
		for _, a := range r.Alerts {
			writeRow(tw, a.Criterion, FormatDecimal(a.Stdev))
		}
	}

	return tw.Flush()
}

func writeCriteriaTable(tw *tabwriter.Writer, r *aggregate.Result) {
	header := []string{"Criterion", "N", "Coverage", "Mean", "Min", "Max", "Stdev"}
	writeRow(tw, header...)
	writeSeparator(tw, len(header))

	for _, cs := range r.OrderedStats() {
		writeRow(tw,
			cs.Name,
			fmt.Sprintf("%d", cs.N),
			fmt.Sprintf("%d/%d", cs.N, r.TotalReports),
			FormatDecimal(cs.Mean),
			FormatDecimal(cs.Min),
			FormatDecimal(cs.Max),
			FormatOptional(cs.Stdev),
		)
	}

	fmt.Fprintln(tw)
}

func writeRow(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func writeSeparator(tw *tabwriter.Writer, n int) {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(tw, sep...)
}
