package staticgeninternal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/staticgen-dev/staticgen/internal/config"
)

var Version string

// Main is the main entry point for staticgen. It is used by the command-line
// tool directly.
//
// wd is the path of the working directory, cfg the loaded configuration, and
// patterns the declaration files or directories to process. Directories are
// walked for .rs files; previously generated outputs are skipped.
//
// It returns a map of output file paths to their contents. If any error
// occurs, it returns a non-nil error. Generation is all-or-nothing: a failed
// file produces no output at all.
func Main(wd string, cfg config.Config, patterns []string) (map[string][]byte, error) {
	files, err := resolve(wd, cfg, patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no declaration files found: %v", patterns)
	}

	outs := make(map[string][]byte)
	var errs error

	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code, err := GenerateSource(path, src, cfg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if len(code) == 0 {
			continue
		}

		outs[outputPath(path, cfg.OutputSuffix)] = code
	}
	if errs != nil {
		return nil, errs
	}

	return outs, nil
}

// resolve expands patterns into a sorted list of declaration files.
func resolve(wd string, cfg config.Config, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if isGenerated(path, cfg.OutputSuffix) || seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(wd, path)
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(sub string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(sub, ".rs") {
				add(sub)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// isGenerated reports whether the path names a file this tool generated.
func isGenerated(path string, suffix string) bool {
	stem := strings.TrimSuffix(filepath.Base(path), ".rs")
	return strings.HasSuffix(stem, suffix)
}

// outputPath names the generated file: types.rs -> types_static.rs.
func outputPath(path string, suffix string) string {
	dir := filepath.Dir(path)
	stem := strings.TrimSuffix(filepath.Base(path), ".rs")
	return filepath.Join(dir, stem+suffix+".rs")
}
