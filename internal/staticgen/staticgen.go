package staticgeninternal

import (
	"bytes"
	"errors"
	"path/filepath"

	"github.com/staticgen-dev/staticgen/internal/config"
	"github.com/staticgen-dev/staticgen/internal/rsyn"
	"github.com/staticgen-dev/staticgen/internal/staticgen/generate"
)

// Generator generates conversion impls for one declaration file.
type Generator struct {
	file  *rsyn.File
	cfg   config.Config
	items []*rsyn.Item
}

// New parses the declaration source and creates a [Generator] for it.
func New(name string, src []byte, cfg config.Config) (*Generator, error) {
	file, err := rsyn.ParseFile(name, src)
	if err != nil {
		return nil, err
	}
	return &Generator{file: file, cfg: cfg}, nil
}

// Build selects the items marked with the derive attribute and validates
// every field reachable from them. All validation failures are reported
// together.
func (g *Generator) Build() error {
	var errs error
	for _, item := range g.file.Items {
		if !item.Derives(g.cfg.Derive) {
			continue
		}
		errs = errors.Join(errs, generate.CheckItem(g.file, item))
		g.items = append(g.items, item)
	}
	return errs
}

// Generate emits the generated file: both conversion impls for every
// selected item. It returns nil content when the file selects no items.
// Generation fails for items of an unsupported shape.
func (g *Generator) Generate() ([]byte, error) {
	if len(g.items) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.WriteString("// @generated by staticgen")
	if Version != "" {
		buf.WriteString(" " + Version)
	}
	buf.WriteString(". DO NOT EDIT.\n")
	buf.WriteString("// source: " + filepath.Base(g.file.Name) + "\n")

	var errs error
	for _, item := range g.items {
		code, err := generate.Item(g.file, item, g.cfg.TraitCrate)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		buf.WriteByte('\n')
		buf.Write(code)
	}
	if errs != nil {
		return nil, errs
	}
	return buf.Bytes(), nil
}

// GenerateSource runs the whole pipeline for one in-memory source.
func GenerateSource(name string, src []byte, cfg config.Config) ([]byte, error) {
	gen, err := New(name, src, cfg)
	if err != nil {
		return nil, err
	}
	if err := gen.Build(); err != nil {
		return nil, err
	}
	return gen.Generate()
}
