package scanner

import (
	"testing"

	"github.com/accrava/codesweep/internal/types"
)

func TestSecrets(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"api_key", `API_KEY = "abcd1234"`, 1},
		{"too_short", `API_KEY = "abc"`, 0},
		{"lowercase", `password = 'hunter22'`, 1},
		{"prefixed_identifier", `MY_TOKEN = "abcdef"`, 1},
		{"single_quotes", `SECRET='s3cr3tvalue'`, 1},
		{"no_assignment", `# TOKEN rotation policy`, 0},
		{"not_a_literal", `PASSWORD = get_password()`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := &types.ResultSet{}
			Secrets("cfg.py", []byte(tt.line+"\n"), rs)
			fs := rs.Findings()
			if len(fs) != tt.want {
				t.Fatalf("expected %d findings, got %#v", tt.want, fs)
			}
			if tt.want == 1 {
				if fs[0].Severity != types.SevMedium || fs[0].Line != 1 {
					t.Fatalf("unexpected finding %#v", fs[0])
				}
				if fs[0].Description != "Possible hardcoded secret detected" {
					t.Fatalf("unexpected description %q", fs[0].Description)
				}
			}
		})
	}
}

func TestSecrets_LineNumbers(t *testing.T) {
	src := "x = 1\n\nTOKEN = \"abcd1234\"\n"
	rs := &types.ResultSet{}
	Secrets("cfg.py", []byte(src), rs)
	fs := rs.Findings()
	if len(fs) != 1 || fs[0].Line != 3 {
		t.Fatalf("expected finding at line 3, got %#v", fs)
	}
}
