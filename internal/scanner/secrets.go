package scanner

import (
	"bufio"
	"bytes"

	"github.com/accrava/codesweep/internal/rules"
	"github.com/accrava/codesweep/internal/types"
)

// Secrets flags assignment of quoted literals to credential-looking names.
// It runs on every scanned file regardless of language.
func Secrets(path string, data []byte, rs *types.ResultSet) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		if rules.HardcodedSecretRe.MatchString(sc.Text()) {
			rs.Add(path, line, types.SevMedium, "Possible hardcoded secret detected")
		}
	}
}
