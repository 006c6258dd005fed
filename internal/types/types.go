package types

type Severity string

const (
	SevHigh   Severity = "HIGH"
	SevMedium Severity = "MEDIUM"
	SevLow    Severity = "LOW"
)

type Finding struct {
	Path        string   `json:"path"`
	Line        int      `json:"line"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// ResultSet accumulates findings in discovery order. Scanners append to it;
// the reporter reads it once at the end of a run.
type ResultSet struct {
	findings []Finding
}

func (r *ResultSet) Add(path string, line int, sev Severity, description string) {
	r.findings = append(r.findings, Finding{
		Path:        path,
		Line:        line,
		Severity:    sev,
		Description: description,
	})
}

func (r *ResultSet) Findings() []Finding {
	return r.findings
}

// Summary counts findings per severity. All three severities are always
// present, zero-filled when absent.
func (r *ResultSet) Summary() map[Severity]int {
	counts := map[Severity]int{SevHigh: 0, SevMedium: 0, SevLow: 0}
	for _, f := range r.findings {
		counts[f.Severity]++
	}
	return counts
}
