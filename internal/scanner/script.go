package scanner

import (
	"bufio"
	"bytes"

	"github.com/accrava/codesweep/internal/rules"
	"github.com/accrava/codesweep/internal/types"
)

// Script runs the line patterns for JS/TS/JSX/TSX files plus the secret
// check. A line can match several patterns; each match reports on its own.
func Script(path string, data []byte, rs *types.ResultSet) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		t := sc.Text()
		for _, p := range rules.ScriptPatterns {
			if p.Re.MatchString(t) {
				rs.Add(path, line, p.Severity, p.Description)
			}
		}
		if rules.HardcodedSecretRe.MatchString(t) {
			rs.Add(path, line, types.SevMedium, "Possible hardcoded secret detected")
		}
	}
}
