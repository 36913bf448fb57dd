package rsyn

import (
	"fmt"
	"strings"
)

// lexer splits declaration source into tokens. It understands the lexical
// shape of Rust declarations: identifiers, lifetimes, numeric/string/char
// literals, line and block comments (nested), and punctuation. Multi-char
// puncts are limited to the ones that occur in declarations: "::", "->", "=>".
type lexer struct {
	src  []byte
	off  int
	line int
	col  int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

// lexAll tokenizes the whole source. The trailing token is always EOF.
func lexAll(src []byte) ([]Token, error) {
	lx := newLexer(src)
	var toks []Token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

func (lx *lexer) errorf(pos Pos, format string, args ...any) error {
	return fmt.Errorf("%s: %s", pos, fmt.Sprintf(format, args...))
}

func (lx *lexer) pos() Pos { return Pos{Line: lx.line, Col: lx.col} }

func (lx *lexer) peek() byte {
	if lx.off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.off]
}

func (lx *lexer) peekAt(n int) byte {
	if lx.off+n >= len(lx.src) {
		return 0
	}
	return lx.src[lx.off+n]
}

func (lx *lexer) advance() byte {
	b := lx.src[lx.off]
	lx.off++
	if b == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return b
}

func (lx *lexer) next() (Token, error) {
	if err := lx.skipTrivia(); err != nil {
		return Token{}, err
	}

	pos := lx.pos()
	start := lx.off
	if lx.off >= len(lx.src) {
		return Token{Kind: EOF, Pos: pos, Off: start, End: start}, nil
	}

	b := lx.peek()
	switch {
	case isIdentStart(b):
		lx.scanIdent()
		return lx.token(Ident, pos, start), nil

	case b >= '0' && b <= '9':
		kind := lx.scanNumber()
		return lx.token(kind, pos, start), nil

	case b == '\'':
		kind, err := lx.scanQuote(pos)
		if err != nil {
			return Token{}, err
		}
		return lx.token(kind, pos, start), nil

	case b == '"':
		if err := lx.scanString(pos); err != nil {
			return Token{}, err
		}
		return lx.token(Str, pos, start), nil

	default:
		lx.advance()
		text := string(lx.src[start:lx.off])
		// Merge the few multi-char puncts declarations use.
		if two := text + string(lx.peek()); two == "::" || two == "->" || two == "=>" {
			lx.advance()
		}
		return lx.token(Punct, pos, start), nil
	}
}

func (lx *lexer) token(kind Kind, pos Pos, start int) Token {
	return Token{Kind: kind, Text: string(lx.src[start:lx.off]), Pos: pos, Off: start, End: lx.off}
}

// skipTrivia consumes whitespace and comments. Block comments nest.
func (lx *lexer) skipTrivia() error {
	for lx.off < len(lx.src) {
		b := lx.peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			lx.advance()

		case b == '/' && lx.peekAt(1) == '/':
			for lx.off < len(lx.src) && lx.peek() != '\n' {
				lx.advance()
			}

		case b == '/' && lx.peekAt(1) == '*':
			pos := lx.pos()
			lx.advance()
			lx.advance()
			depth := 1
			for depth > 0 {
				if lx.off >= len(lx.src) {
					return lx.errorf(pos, "unterminated block comment")
				}
				if lx.peek() == '/' && lx.peekAt(1) == '*' {
					lx.advance()
					lx.advance()
					depth++
				} else if lx.peek() == '*' && lx.peekAt(1) == '/' {
					lx.advance()
					lx.advance()
					depth--
				} else {
					lx.advance()
				}
			}

		default:
			return nil
		}
	}
	return nil
}

func (lx *lexer) scanIdent() {
	for lx.off < len(lx.src) && isIdentPart(lx.peek()) {
		lx.advance()
	}
}

func (lx *lexer) scanNumber() Kind {
	kind := Int
	for lx.off < len(lx.src) && (isIdentPart(lx.peek()) || lx.peek() == '.') {
		if lx.peek() == '.' {
			// ".." after a number is a range, not a float.
			if lx.peekAt(1) == '.' {
				break
			}
			kind = Float
		}
		lx.advance()
	}
	return kind
}

// scanQuote disambiguates lifetimes ('a, 'static, '_) from char literals
// ('x', '\n'). A quote followed by identifier chars with no closing quote is
// a lifetime.
func (lx *lexer) scanQuote(pos Pos) (Kind, error) {
	lx.advance() // consume '
	if lx.off < len(lx.src) && (isIdentStart(lx.peek()) || lx.peek() == '_') {
		mark := lx.off
		lx.scanIdent()
		if lx.peek() != '\'' {
			return Lifetime, nil
		}
		// Single identifier char followed by a quote is a char literal.
		if lx.off-mark == 1 {
			lx.advance()
			return Char, nil
		}
		return 0, lx.errorf(pos, "malformed char literal %q", string(lx.src[mark-1:lx.off+1]))
	}

	// Escaped or non-identifier char literal.
	if lx.peek() == '\\' {
		lx.advance()
		if lx.off < len(lx.src) {
			lx.advance()
		}
	} else if lx.off < len(lx.src) {
		lx.advance()
	}
	if lx.peek() != '\'' {
		return 0, lx.errorf(pos, "unterminated char literal")
	}
	lx.advance()
	return Char, nil
}

func (lx *lexer) scanString(pos Pos) error {
	lx.advance() // consume "
	for {
		if lx.off >= len(lx.src) {
			return lx.errorf(pos, "unterminated string literal")
		}
		switch lx.peek() {
		case '\\':
			lx.advance()
			if lx.off < len(lx.src) {
				lx.advance()
			}
		case '"':
			lx.advance()
			return nil
		default:
			lx.advance()
		}
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || b >= '0' && b <= '9'
}

// keywords are the declaration-language keywords that cannot be used as
// synthesized binding names in generated code.
var keywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true, "crate": true,
	"dyn": true, "else": true, "enum": true, "extern": true, "false": true,
	"fn": true, "for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "static": true,
	"struct": true, "super": true, "trait": true, "true": true, "type": true,
	"union": true, "unsafe": true, "use": true, "where": true, "while": true,
}

// IsKeyword reports whether name is a declaration-language keyword.
func IsKeyword(name string) bool { return keywords[name] }

// trimSpan cuts leading/trailing whitespace off a raw source span.
func trimSpan(src []byte, from, to int) string {
	return strings.TrimSpace(string(src[from:to]))
}
