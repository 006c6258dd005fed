package rules

import (
	"regexp"

	"github.com/accrava/codesweep/internal/types"
)

type Rule struct {
	Severity    types.Severity
	Description string
}

// DangerousCalls maps fully-qualified callable names to the finding they
// produce. Read-only, process-wide.
var DangerousCalls = map[string]Rule{
	"eval":         {types.SevHigh, "Use of eval() can execute arbitrary code"},
	"exec":         {types.SevHigh, "Use of exec() can execute arbitrary code"},
	"os.system":    {types.SevHigh, "os.system() is vulnerable to shell injection"},
	"pickle.loads": {types.SevHigh, "pickle.loads() can deserialize malicious objects"},
	"pickle.load":  {types.SevHigh, "pickle.load() can deserialize malicious objects"},
}

// SubprocessCalls are process-spawning callables checked for shell=True.
var SubprocessCalls = map[string]bool{
	"subprocess.call":  true,
	"subprocess.run":   true,
	"subprocess.Popen": true,
}

type LinePattern struct {
	Re          *regexp.Regexp
	Severity    types.Severity
	Description string
}

// ScriptPatterns are matched per physical line of JS/TS/JSX/TSX files.
var ScriptPatterns = []LinePattern{
	{regexp.MustCompile(`dangerouslySetInnerHTML`), types.SevMedium, "dangerouslySetInnerHTML can lead to XSS"},
	{regexp.MustCompile(`javascript\s*:`), types.SevHigh, "javascript: URL is an XSS vector"},
}

// HardcodedSecretRe matches assignment of a quoted literal (4+ chars) to a
// credential-looking identifier. Applied to every scanned file.
var HardcodedSecretRe = regexp.MustCompile(`(?i)(?:API_KEY|SECRET|PASSWORD|TOKEN|PRIVATE_KEY)\s*=\s*["'][^"']{4,}["']`)
