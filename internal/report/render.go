package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/accrava/codesweep/internal/types"
)

// Sort orders findings ascending by (severity text, path, line). Severity
// compares as a plain string, so HIGH < LOW < MEDIUM; this is the tool's
// long-standing observable order and stays as is.
func Sort(findings []types.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Severity != b.Severity {
			return a.Severity < b.Severity
		}
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Line < b.Line
	})
}

// Print renders the scan report: banner, findings in sorted order, and a
// per-severity summary block.
func Print(w io.Writer, rs *types.ResultSet) {
	bar := strings.Repeat("=", 60)
	fmt.Fprintln(w, bar)
	fmt.Fprintln(w, "  Security Scan Results")
	fmt.Fprintln(w, bar)

	findings := rs.Findings()
	if len(findings) == 0 {
		fmt.Fprintln(w, "\n  No findings. All clear!")
		fmt.Fprintln(w)
		return
	}

	Sort(findings)
	for _, f := range findings {
		fmt.Fprintf(w, "  [%s] %s:%d - %s\n", f.Severity, f.Path, f.Line, f.Description)
	}

	summary := rs.Summary()
	sep := strings.Repeat("-", 60)
	fmt.Fprintln(w, "\n"+sep)
	fmt.Fprintln(w, "  Summary")
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  HIGH:   %d\n", summary[types.SevHigh])
	fmt.Fprintf(w, "  MEDIUM: %d\n", summary[types.SevMedium])
	fmt.Fprintf(w, "  LOW:    %d\n", summary[types.SevLow])
	fmt.Fprintf(w, "  TOTAL:  %d\n", len(findings))
	fmt.Fprintln(w, sep)
}

// ShouldFail reports whether the run must exit non-zero: only HIGH findings
// escalate, MEDIUM and LOW never do.
func ShouldFail(findings []types.Finding) bool {
	for _, f := range findings {
		if f.Severity == types.SevHigh {
			return true
		}
	}
	return false
}
