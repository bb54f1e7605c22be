package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// WriteTable writes the human-readable rendition: an aligned row table in
// the same order as the JSON artifact, followed by the summary block and
// any warnings. Undefined values render as "-".
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSECTOR\tPATH\tCOMPUTED\tEXPERIMENTAL\tUNCERTAINTY\tSIGMA\tSTATUS")
	for _, row := range r.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Name,
			orDash(row.Sector),
			row.ParamPath,
			formatFloat(row.Computed),
			formatFloat(row.Experimental),
			formatFloat(row.Uncertainty),
			formatFloat(row.Sigma),
			row.Status,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report table: %w", err)
	}

	s := r.Summary
	fmt.Fprintf(w, "\n%d checks: %d pass, %d marginal, %d tension, %d fail, %d missing, %d invalid\n",
		s.Checks, s.Pass, s.Marginal, s.Tension, s.Fail, s.Missing, s.Invalid)
	if s.Evaluated > 0 {
		fmt.Fprintf(w, "pass rate: %.1f%% (%d of %d evaluated)\n", s.PassRate*100, s.Pass, s.Evaluated)
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'g', 6, 64)
}
