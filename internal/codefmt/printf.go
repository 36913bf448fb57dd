package codefmt

import (
	"fmt"
	"io"

	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

type (
	Poser interface{ Pos() rsyn.Pos }
	Coder interface{ Code() string }
)

func (f Formatter) wrapPrintfArgs(args []any) []any {
	for i, arg := range args {
		switch arg := arg.(type) {
		case rsyn.Pos:
			args[i] = formatArg{arg, f}
		case Coder, Poser:
			args[i] = formatArg{arg, f}
		}
	}
	return args
}

type formatArg struct {
	x   any
	fmt Formatter
}

func (f formatArg) Code() string {
	if coder, ok := f.x.(Coder); ok {
		return coder.Code()
	}
	return ""
}

func (f formatArg) Position() *rsyn.Pos {
	switch x := f.x.(type) {
	case rsyn.Pos:
		return &x
	case Poser:
		p := x.Pos()
		return &p
	}
	return nil
}

// Format implements fmt.Formatter interface.
//
// Supported verbs:
//
//	%c: syntax node - source code form
//	%b: position - file:line:col form
//
// For other verbs, it falls back to the default formatting of fmt package.
func (f formatArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 'c':
		code := f.Code()
		if code == "" {
			fmt.Fprintf(s, "[%%c cannot format %T]", f.x)
			return
		}
		_, _ = s.Write([]byte(code))

	case 'b':
		pos := f.Position()
		if pos == nil {
			fmt.Fprintf(s, "[%%b cannot format %T]", f.x)
			return
		}
		_, _ = s.Write([]byte(f.fmt.Pos(*pos)))

	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.x)
	}
}

func (f Formatter) Sprintf(format string, args ...any) string {
	args = f.wrapPrintfArgs(args)
	return fmt.Sprintf(format, args...)
}

func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	args = f.wrapPrintfArgs(args)
	return fmt.Fprintf(w, format, args...)
}
