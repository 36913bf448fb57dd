package codefmt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

// Formatter formats syntax nodes and positions of one declaration file.
type Formatter struct {
	File *rsyn.File
}

func New(file *rsyn.File) Formatter {
	return Formatter{File: file}
}

// Code returns the source form of the given node.
//
// e.g., f.Code([field "bar: &'static str"]) => "bar: &'static str"
func (f Formatter) Code(coder Coder) string {
	if coder == nil {
		return "<nil>"
	}
	return coder.Code()
}

// Pos returns a "file:line:col" string for the given position.
func (f Formatter) Pos(pos rsyn.Pos) string {
	name := ""
	if f.File != nil {
		name = f.File.Name
	}
	return FormatPosition(name, pos)
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

func FormatPosition(name string, pos rsyn.Pos) string {
	if name == "" {
		name = "-"
	} else if rel, err := filepath.Rel(wd, name); err == nil && len(rel) < len(name) {
		name = rel
	}

	if !pos.IsValid() {
		return name + ":-:-"
	}
	return fmt.Sprintf("%s:%d:%d", name, pos.Line, pos.Col)
}
