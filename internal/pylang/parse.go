// Package pylang extracts call expressions from Python source.
//
// It is not a full parser: only the handful of node shapes the scanner
// inspects are modeled (dotted callee names, positional argument kinds,
// keyword arguments with literal booleans). Anything it cannot resolve to
// a plain identifier chain is reported as an unresolved call and carries
// no name, which matches how an AST visitor would see a call whose func
// is itself a call result or subscript.
package pylang

// ArgKind classifies a positional argument as far as the scanner cares.
type ArgKind int

const (
	ArgOther ArgKind = iota
	ArgString
	ArgFString
)

type Keyword struct {
	Name string
	// Bool is non-nil only when the value is a literal True or False.
	Bool *bool
}

type Call struct {
	Name     string // dotted callee name, e.g. "os.system"
	Line     int    // 1-based line of the callee
	Args     []ArgKind
	Keywords []Keyword
}

// Python keywords cannot be callee names; `if (x):` is not a call.
// match/case are soft keywords and stay callable (re.match).
var pyKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// Calls tokenizes src and returns every call expression with a resolvable
// dotted callee name, in source order. Nested calls are included. A non-nil
// error means the file could not be tokenized at all.
func Calls(src []byte) ([]Call, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	var calls []Call
	for i := range toks {
		if toks[i].kind != tokOp || toks[i].text != "(" {
			continue
		}
		if c, ok := callAt(toks, i); ok {
			calls = append(calls, c)
		}
	}
	return calls, nil
}

// callAt resolves the callee of the open paren at index i. It walks the
// attribute chain right to left; if the chain does not terminate at a plain
// identifier, or the paren belongs to a def/class header or a grouping
// expression, no call is produced.
func callAt(toks []token, i int) (Call, bool) {
	j := i - 1
	if j < 0 || toks[j].kind != tokName {
		return Call{}, false
	}
	parts := []int{j}
	k := j
	for k >= 2 && toks[k-1].kind == tokOp && toks[k-1].text == "." && toks[k-2].kind == tokName {
		k -= 2
		parts = append(parts, k)
	}
	if k >= 1 {
		prev := toks[k-1]
		if prev.kind == tokOp && prev.text == "." {
			// chain rooted in a call result, subscript, or literal
			return Call{}, false
		}
		if prev.kind == tokName && (prev.text == "def" || prev.text == "class") {
			return Call{}, false
		}
	}
	if len(parts) == 1 && pyKeywords[toks[parts[0]].text] {
		return Call{}, false
	}

	name := toks[parts[len(parts)-1]].text
	for p := len(parts) - 2; p >= 0; p-- {
		name += "." + toks[parts[p]].text
	}

	call := Call{Name: name, Line: toks[parts[len(parts)-1]].line}
	call.Args, call.Keywords = parseArgs(toks, i)
	return call, true
}

// parseArgs splits the argument list of the call opened at index open into
// top-level segments and classifies each one.
func parseArgs(toks []token, open int) ([]ArgKind, []Keyword) {
	var (
		args []ArgKind
		kws  []Keyword
		seg  []token
	)
	flush := func() {
		if len(seg) == 0 {
			return
		}
		if len(seg) >= 2 && seg[0].kind == tokName && seg[1].kind == tokOp && seg[1].text == "=" {
			kw := Keyword{Name: seg[0].text}
			if len(seg) == 3 && seg[2].kind == tokName {
				switch seg[2].text {
				case "True":
					v := true
					kw.Bool = &v
				case "False":
					v := false
					kw.Bool = &v
				}
			}
			kws = append(kws, kw)
			seg = nil
			return
		}
		args = append(args, classify(seg))
		seg = nil
	}

	depth := 1
	for j := open + 1; j < len(toks); j++ {
		t := toks[j]
		if t.kind == tokOp {
			switch t.text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
				if depth == 0 {
					flush()
					return args, kws
				}
			case ",":
				if depth == 1 {
					flush()
					continue
				}
			}
		}
		seg = append(seg, t)
	}
	flush()
	return args, kws
}

// classify decides what expression kind an argument segment is. A run of
// adjacent string literals is implicit concatenation: still one string, and
// an f-string if any piece is one. Anything else is some other expression.
func classify(seg []token) ArgKind {
	f := false
	for _, t := range seg {
		if t.kind != tokString {
			return ArgOther
		}
		if t.fstring {
			f = true
		}
	}
	if f {
		return ArgFString
	}
	return ArgString
}
