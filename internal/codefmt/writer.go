package codefmt

import (
	"bytes"
	"strings"

	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

// Writer is a writer for generated code. It tracks indentation and shares
// the formatter's printf verbs.
type Writer struct {
	buf    *bytes.Buffer
	fmt    Formatter
	indent int
}

// NewWriter creates a new [Writer] for code generated from the given file.
func NewWriter(file *rsyn.File) *Writer {
	return &Writer{buf: new(bytes.Buffer), fmt: New(file)}
}

// Bytes returns the generated code.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// In increases the indentation level.
func (w *Writer) In() { w.indent++ }

// Out decreases the indentation level.
func (w *Writer) Out() {
	if w.indent == 0 {
		panic("negative indent")
	}
	w.indent--
}

// Linef writes one indented line using [Formatter.Fprintf] verbs.
func (w *Writer) Linef(format string, args ...any) {
	w.buf.WriteString(strings.Repeat("    ", w.indent))
	_, _ = w.fmt.Fprintf(w.buf, format, args...)
	w.buf.WriteByte('\n')
}

// Blank writes an empty line.
func (w *Writer) Blank() { w.buf.WriteByte('\n') }

// Printf writes a formatted string without indentation or newline.
func (w *Writer) Printf(format string, args ...any) {
	_, _ = w.fmt.Fprintf(w.buf, format, args...)
}

// Sprintf creates a formatted string using [Formatter.Sprintf].
func (w *Writer) Sprintf(format string, args ...any) string {
	return w.fmt.Sprintf(format, args...)
}
