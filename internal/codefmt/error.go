package codefmt

import (
	"fmt"

	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

// CodeError indicates where the error occurred in the user's declaration
// source.
type CodeError struct {
	err  error
	name string
	pos  rsyn.Pos
}

// Unwrap returns the underlying error.
func (e *CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e *CodeError) Pos() rsyn.Pos { return e.pos }

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e *CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	if !e.pos.IsValid() {
		return e.err.Error()
	}

	return fmt.Sprintf("%s: %s", FormatPosition(e.name, e.pos), e.err.Error())
}

// Errorf formats an error message. The error will indicate the position in
// the source code if the position is valid.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	// Prevent wrapping error in args
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos rsyn.Pos
	if poser != nil {
		pos = poser.Pos()
	}

	name := ""
	if f.File != nil {
		name = f.File.Name
	}

	args = f.wrapPrintfArgs(args)
	err := fmt.Errorf(format, args...)
	return &CodeError{err, name, pos}
}

// Errorf is a shorthand for [Formatter.Errorf].
func Errorf(file *rsyn.File, poser Poser, format string, args ...any) error {
	return New(file).Errorf(poser, format, args...)
}
