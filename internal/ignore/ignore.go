package ignore

import (
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

type Matcher struct{ m gitignore.Matcher }

// Load reads a .codesweepignore file; a missing file yields an empty matcher.
func Load(path string) (Matcher, error) {
	var m Matcher
	data, err := os.ReadFile(path)
	if err != nil {
		return m, nil
	}
	var ps []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	if len(ps) > 0 {
		m.m = gitignore.NewMatcher(ps)
	}
	return m, nil
}

func (m Matcher) Match(p string) bool {
	if m.m == nil {
		return false
	}
	return m.m.Match(strings.Split(p, "/"), false)
}
