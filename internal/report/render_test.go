package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/accrava/codesweep/internal/types"
)

func TestSort_SeverityIsLexicographic(t *testing.T) {
	findings := []types.Finding{
		{Path: "b.py", Line: 1, Severity: types.SevLow, Description: "l"},
		{Path: "a.py", Line: 5, Severity: types.SevHigh, Description: "h"},
		{Path: "a.py", Line: 2, Severity: types.SevMedium, Description: "m"},
	}
	Sort(findings)
	// HIGH < LOW < MEDIUM as plain strings
	got := []types.Severity{findings[0].Severity, findings[1].Severity, findings[2].Severity}
	want := []types.Severity{types.SevHigh, types.SevLow, types.SevMedium}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSort_PathThenLine(t *testing.T) {
	findings := []types.Finding{
		{Path: "b.py", Line: 3, Severity: types.SevHigh},
		{Path: "a.py", Line: 9, Severity: types.SevHigh},
		{Path: "a.py", Line: 2, Severity: types.SevHigh},
	}
	Sort(findings)
	if findings[0].Path != "a.py" || findings[0].Line != 2 || findings[2].Path != "b.py" {
		t.Fatalf("unexpected order: %#v", findings)
	}
}

func TestPrint_Empty(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, &types.ResultSet{})
	out := buf.String()
	if !strings.Contains(out, "Security Scan Results") {
		t.Fatalf("missing banner:\n%s", out)
	}
	if !strings.Contains(out, "No findings. All clear!") {
		t.Fatalf("missing clean-scan message:\n%s", out)
	}
	if strings.Contains(out, "Summary") {
		t.Fatalf("empty report must not print a summary:\n%s", out)
	}
}

func TestPrint_FindingsAndSummary(t *testing.T) {
	rs := &types.ResultSet{}
	rs.Add("a.py", 5, types.SevHigh, "Use of eval() can execute arbitrary code")
	rs.Add("a.py", 9, types.SevHigh, "os.system() is vulnerable to shell injection")
	rs.Add("cfg.ts", 1, types.SevMedium, "Possible hardcoded secret detected")

	var buf bytes.Buffer
	Print(&buf, rs)
	out := buf.String()

	if !strings.Contains(out, "  [HIGH] a.py:5 - Use of eval() can execute arbitrary code") {
		t.Fatalf("missing finding line:\n%s", out)
	}
	for _, want := range []string{"  HIGH:   2", "  MEDIUM: 1", "  LOW:    0", "  TOTAL:  3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing summary line %q:\n%s", want, out)
		}
	}
}

func TestShouldFail(t *testing.T) {
	if ShouldFail(nil) {
		t.Fatal("empty set must not fail")
	}
	if ShouldFail([]types.Finding{{Severity: types.SevMedium}, {Severity: types.SevLow}}) {
		t.Fatal("MEDIUM/LOW findings must not fail the run")
	}
	if !ShouldFail([]types.Finding{{Severity: types.SevLow}, {Severity: types.SevHigh}}) {
		t.Fatal("HIGH finding must fail the run")
	}
}
