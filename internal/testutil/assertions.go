package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/report"
)

// AssertRowStatus checks the parsed report within a HarnessResult to confirm
// that a named check landed on the expected status. It abstracts row lookup,
// making tests resilient to row-order changes in unrelated checks.
func AssertRowStatus(t *testing.T, result *HarnessResult, name string, status report.Status) {
	t.Helper()

	require.NotNil(t, result.Report, "no report artifact was produced")
	for _, row := range result.Report.Results {
		if row.Name == name {
			require.Equal(t, status, row.Status, "check %q has the wrong status", name)
			return
		}
	}
	require.Failf(t, "check row not found",
		"no row named %q in the report (have %d rows)", name, len(result.Report.Results))
}

// FindRow returns the named check row, failing the test when it is absent.
func FindRow(t *testing.T, result *HarnessResult, name string) report.Row {
	t.Helper()

	require.NotNil(t, result.Report, "no report artifact was produced")
	for _, row := range result.Report.Results {
		if row.Name == name {
			return row
		}
	}
	require.Failf(t, "check row not found",
		"no row named %q in the report (have %d rows)", name, len(result.Report.Results))
	return report.Row{}
}
