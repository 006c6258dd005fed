package pylang

import "fmt"

type tokenKind int

const (
	tokName tokenKind = iota
	tokNumber
	tokString
	tokOp
)

type token struct {
	kind    tokenKind
	text    string
	line    int
	fstring bool
}

// SyntaxError reports a source file that cannot be tokenized: unterminated
// strings, unbalanced brackets, stray characters.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Multi-char operators, longest first so greedy matching works.
var multiOps = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"==", "!=", ">=", "<=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
	"**", "//", ">>", "<<",
}

const singleOps = "+-*/%@<>=&|^~(),:.;[]{}"

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isStringPrefix reports whether an identifier directly attached to a quote
// is a legal string prefix (r, b, u, f and two-letter combinations).
func isStringPrefix(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		default:
			return false
		}
	}
	return true
}

func prefixHasF(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 'f' || s[i] == 'F' {
			return true
		}
	}
	return false
}

type bracket struct {
	ch   byte
	line int
}

func tokenize(src []byte) ([]token, error) {
	var (
		toks  []token
		stack []bracket
	)
	line := 1
	i, n := 0, len(src)

	for i < n {
		c := src[i]
		switch {
		case c == '\n':
			// statement boundary, but only at top level: inside brackets
			// Python joins physical lines
			if len(stack) == 0 && len(toks) > 0 && !isNewline(toks[len(toks)-1]) {
				toks = append(toks, token{tokOp, "\n", line, false})
			}
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f':
			i++
		case c == '\\':
			// line continuation
			j := i + 1
			if j < n && src[j] == '\r' {
				j++
			}
			if j < n && src[j] == '\n' {
				line++
				i = j + 1
				continue
			}
			return nil, &SyntaxError{line, "unexpected character after line continuation"}
		case c == '#':
			for i < n && src[i] != '\n' {
				i++
			}
		case isIdentStart(c):
			start := i
			for i < n && isIdentPart(src[i]) {
				i++
			}
			name := string(src[start:i])
			if i < n && (src[i] == '"' || src[i] == '\'') && isStringPrefix(name) {
				tok, next, err := lexString(src, i, line, prefixHasF(name))
				if err != nil {
					return nil, err
				}
				line = tok.line
				toks = append(toks, token{tokString, tok.text, tok.startLine, tok.fstring})
				i = next
				continue
			}
			toks = append(toks, token{tokName, name, line, false})
		case c == '"' || c == '\'':
			tok, next, err := lexString(src, i, line, false)
			if err != nil {
				return nil, err
			}
			line = tok.line
			toks = append(toks, token{tokString, tok.text, tok.startLine, false})
			i = next
		case isDigit(c) || (c == '.' && i+1 < n && isDigit(src[i+1])):
			start := i
			for i < n {
				d := src[i]
				if isDigit(d) || isIdentPart(d) {
					i++
					continue
				}
				if d == '.' && i+1 < n && isDigit(src[i+1]) {
					i++
					continue
				}
				break
			}
			toks = append(toks, token{tokNumber, string(src[start:i]), line, false})
		default:
			if op, ok := matchOp(src[i:]); ok {
				switch op {
				case "(", "[", "{":
					stack = append(stack, bracket{c, line})
				case ")", "]", "}":
					if len(stack) == 0 || !bracketsPair(stack[len(stack)-1].ch, c) {
						return nil, &SyntaxError{line, fmt.Sprintf("unmatched %q", string(c))}
					}
					stack = stack[:len(stack)-1]
				}
				toks = append(toks, token{tokOp, op, line, false})
				i += len(op)
				continue
			}
			return nil, &SyntaxError{line, fmt.Sprintf("invalid character %q", string(c))}
		}
	}

	if len(stack) > 0 {
		b := stack[len(stack)-1]
		return nil, &SyntaxError{b.line, fmt.Sprintf("%q was never closed", string(b.ch))}
	}
	return toks, nil
}

func matchOp(rest []byte) (string, bool) {
	for _, op := range multiOps {
		if len(rest) >= len(op) && string(rest[:len(op)]) == op {
			return op, true
		}
	}
	for j := 0; j < len(singleOps); j++ {
		if rest[0] == singleOps[j] {
			return string(rest[0]), true
		}
	}
	return "", false
}

func isNewline(t token) bool {
	return t.kind == tokOp && t.text == "\n"
}

func bracketsPair(open, close byte) bool {
	switch open {
	case '(':
		return close == ')'
	case '[':
		return close == ']'
	case '{':
		return close == '}'
	}
	return false
}

type stringTok struct {
	text      string
	startLine int
	line      int // line after the closing quote
	fstring   bool
}

// lexString consumes a string literal starting at the opening quote. A
// backslash always escapes the next character for termination purposes.
// The whole literal becomes one opaque token, f-strings included: calls
// inside an interpolation (f"{os.system(x)}") are not surfaced, unlike
// CPython's AST which descends into FormattedValue nodes.
func lexString(src []byte, i, line int, fstr bool) (stringTok, int, error) {
	startLine := line
	q := src[i]
	n := len(src)
	triple := i+2 < n && src[i+1] == q && src[i+2] == q
	start := i
	if triple {
		i += 3
		for i < n {
			if src[i] == '\\' {
				if i+1 < n && src[i+1] == '\n' {
					line++
				}
				i += 2
				continue
			}
			if src[i] == q && i+2 < n && src[i+1] == q && src[i+2] == q {
				i += 3
				return stringTok{string(src[start:i]), startLine, line, fstr}, i, nil
			}
			if src[i] == '\n' {
				line++
			}
			i++
		}
		return stringTok{}, 0, &SyntaxError{startLine, "unterminated triple-quoted string literal"}
	}
	i++
	for i < n {
		switch src[i] {
		case '\\':
			if i+1 < n && src[i+1] == '\n' {
				line++
			}
			i += 2
		case q:
			i++
			return stringTok{string(src[start:i]), startLine, line, fstr}, i, nil
		case '\n':
			return stringTok{}, 0, &SyntaxError{startLine, "unterminated string literal"}
		default:
			i++
		}
	}
	return stringTok{}, 0, &SyntaxError{startLine, "unterminated string literal"}
}
