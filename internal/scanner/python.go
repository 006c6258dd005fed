package scanner

import (
	"fmt"

	"github.com/accrava/codesweep/internal/logging"
	"github.com/accrava/codesweep/internal/pylang"
	"github.com/accrava/codesweep/internal/rules"
	"github.com/accrava/codesweep/internal/types"
)

// Python runs the call-pattern checks and the secret check on one .py file.
// A file that fails to tokenize skips the structural checks only; the
// line-based secret check still runs.
func Python(path string, data []byte, rs *types.ResultSet) {
	calls, err := pylang.Calls(data)
	if err != nil {
		logging.Logger.Debugw("skipping structural checks", "file", path, "err", err)
	}
	for _, c := range calls {
		if rule, ok := rules.DangerousCalls[c.Name]; ok {
			rs.Add(path, c.Line, rule.Severity, rule.Description)
		}

		if rules.SubprocessCalls[c.Name] {
			for _, kw := range c.Keywords {
				if kw.Name == "shell" && kw.Bool != nil && *kw.Bool {
					rs.Add(path, c.Line, types.SevHigh,
						fmt.Sprintf("%s() called with shell=True -- risk of shell injection", c.Name))
				}
			}
		}

		if c.Name == "text" || c.Name == "sqlalchemy.text" {
			if len(c.Args) > 0 && c.Args[0] == pylang.ArgFString {
				rs.Add(path, c.Line, types.SevHigh,
					"SQL text() with f-string -- use bind parameters instead")
			}
		}
	}

	Secrets(path, data, rs)
}
