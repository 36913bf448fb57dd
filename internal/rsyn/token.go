package rsyn

import "fmt"

// Pos is a position in a declaration file. The zero value is invalid.
type Pos struct {
	Line int // 1-based
	Col  int // 1-based, in bytes
}

// IsValid reports whether the position has been set.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-:-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Kind classifies a token.
type Kind int

const (
	EOF Kind = iota
	Ident
	Lifetime // 'a, 'static, '_
	Int
	Float
	Str
	Char
	Punct
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case Lifetime:
		return "lifetime"
	case Int:
		return "integer"
	case Float:
		return "float"
	case Str:
		return "string"
	case Char:
		return "char"
	case Punct:
		return "punctuation"
	}
	return "unknown"
}

// Token is a single lexical token. Off and End are byte offsets into the
// source so any span can be reprinted verbatim.
type Token struct {
	Kind Kind
	Text string
	Pos  Pos
	Off  int
	End  int
}

// Is reports whether the token is a punct with the given text.
func (t Token) Is(punct string) bool {
	return t.Kind == Punct && t.Text == punct
}

// IsIdent reports whether the token is the given identifier or keyword.
func (t Token) IsIdent(name string) bool {
	return t.Kind == Ident && t.Text == name
}
