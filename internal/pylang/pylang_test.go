package pylang

import "testing"

func mustCalls(t *testing.T, src string) []Call {
	t.Helper()
	calls, err := Calls([]byte(src))
	if err != nil {
		t.Fatalf("Calls: %v", err)
	}
	return calls
}

func TestCalls_BareAndDotted(t *testing.T) {
	calls := mustCalls(t, "eval(x)\nos.system(\"ls\")\na.b.c(1)\n")
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d: %#v", len(calls), calls)
	}
	want := []struct {
		name string
		line int
	}{
		{"eval", 1},
		{"os.system", 2},
		{"a.b.c", 3},
	}
	for i, w := range want {
		if calls[i].Name != w.name || calls[i].Line != w.line {
			t.Fatalf("call %d: got (%s, %d), want (%s, %d)", i, calls[i].Name, calls[i].Line, w.name, w.line)
		}
	}
}

func TestCalls_Nested(t *testing.T) {
	calls := mustCalls(t, "os.system(eval(x))\n")
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if calls[0].Name != "os.system" || calls[1].Name != "eval" {
		t.Fatalf("unexpected names: %s, %s", calls[0].Name, calls[1].Name)
	}
}

func TestCalls_UnresolvedRootSkipped(t *testing.T) {
	for _, src := range []string{
		"f().b(x)\n",
		"x[0].append(y)\n",
		"(a + b)(x)\n",
	} {
		calls := mustCalls(t, src)
		for _, c := range calls {
			switch c.Name {
			case "f", "append":
				// resolvable inner calls are fine; the chained call must not
				// resolve to a dotted name
			default:
				if c.Name == "b" || c.Name == "x.append" {
					t.Fatalf("%q: resolved a call through a non-identifier root: %#v", src, c)
				}
			}
		}
	}
}

func TestCalls_DefAndClassHeadersNotCalls(t *testing.T) {
	calls := mustCalls(t, "def handler(a):\n    return g(a)\n\nclass Worker(Base):\n    pass\n")
	if len(calls) != 1 || calls[0].Name != "g" {
		t.Fatalf("expected only g(), got %#v", calls)
	}
}

func TestCalls_KeywordStatementsNotCalls(t *testing.T) {
	calls := mustCalls(t, "if (x):\n    pass\nwhile (y):\n    break\nreturn_value = not (z)\n")
	if len(calls) != 0 {
		t.Fatalf("expected no calls, got %#v", calls)
	}
}

func TestCalls_DecoratorIsACall(t *testing.T) {
	calls := mustCalls(t, "@app.route(\"/\")\ndef index():\n    pass\n")
	if len(calls) != 1 || calls[0].Name != "app.route" || calls[0].Line != 1 {
		t.Fatalf("expected app.route at line 1, got %#v", calls)
	}
}

func TestCalls_KeywordArguments(t *testing.T) {
	calls := mustCalls(t, "subprocess.run(cmd, shell=True)\nsubprocess.run(cmd, shell=flag)\nsubprocess.run(cmd, shell=False)\n")
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	kw := calls[0].Keywords
	if len(kw) != 1 || kw[0].Name != "shell" || kw[0].Bool == nil || !*kw[0].Bool {
		t.Fatalf("expected shell=True literal, got %#v", kw)
	}
	if calls[1].Keywords[0].Bool != nil {
		t.Fatalf("shell=flag must not be a literal bool")
	}
	if b := calls[2].Keywords[0].Bool; b == nil || *b {
		t.Fatalf("expected shell=False literal, got %#v", b)
	}
}

func TestCalls_ArgumentKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind ArgKind
	}{
		{"text(\"SELECT 1\")\n", ArgString},
		{"text(f\"SELECT {x}\")\n", ArgFString},
		{"text(\"a\" \"b\")\n", ArgString},
		{"text(f\"a\" \"b\")\n", ArgFString},
		{"text(\"a\" + x)\n", ArgOther},
		{"text(stmt)\n", ArgOther},
	}
	for _, tt := range tests {
		calls := mustCalls(t, tt.src)
		if len(calls) != 1 {
			t.Fatalf("%q: expected 1 call, got %d", tt.src, len(calls))
		}
		if len(calls[0].Args) != 1 || calls[0].Args[0] != tt.kind {
			t.Fatalf("%q: expected kind %d, got %#v", tt.src, tt.kind, calls[0].Args)
		}
	}
}

func TestCalls_MultilineCall(t *testing.T) {
	calls := mustCalls(t, "subprocess.run(\n    cmd,\n    shell=True,\n)\n")
	if len(calls) != 1 || calls[0].Line != 1 {
		t.Fatalf("expected one call at line 1, got %#v", calls)
	}
	if len(calls[0].Keywords) != 1 || calls[0].Keywords[0].Name != "shell" {
		t.Fatalf("keyword lost across lines: %#v", calls[0].Keywords)
	}
}

func TestCalls_StringsAndCommentsInert(t *testing.T) {
	calls := mustCalls(t, "\"\"\"eval(x) in a docstring\"\"\"\n# eval(x) in a comment\ns = 'eval(x)'\n")
	if len(calls) != 0 {
		t.Fatalf("expected no calls, got %#v", calls)
	}
}

func TestCalls_LineNumbersAfterMultilineString(t *testing.T) {
	calls := mustCalls(t, "doc = \"\"\"\nline\nline\n\"\"\"\neval(x)\n")
	if len(calls) != 1 || calls[0].Line != 5 {
		t.Fatalf("expected eval at line 5, got %#v", calls)
	}
}

func TestCalls_StatementBoundary(t *testing.T) {
	// a parenthesized expression on the next line is not a call of the
	// previous statement's trailing name
	calls := mustCalls(t, "x = foo\n(bar)\n")
	if len(calls) != 0 {
		t.Fatalf("expected no calls across a statement boundary, got %#v", calls)
	}
	// inside brackets Python joins lines, so the same shape is a call
	calls = mustCalls(t, "y = (foo\n(bar))\n")
	if len(calls) != 1 || calls[0].Name != "foo" {
		t.Fatalf("expected foo() inside brackets, got %#v", calls)
	}
}

func TestCalls_SyntaxErrors(t *testing.T) {
	for _, src := range []string{
		"def f(:\n",
		"s = \"unterminated\n",
		"x = (1\n",
		"x = 1)\n",
		"s = '''never closed\n",
	} {
		if _, err := Calls([]byte(src)); err == nil {
			t.Fatalf("%q: expected a syntax error", src)
		}
	}
}
