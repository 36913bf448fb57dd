package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "bounded_static", cfg.TraitCrate)
	assert.Equal(t, "ToStatic", cfg.Derive)
	assert.Equal(t, "_static", cfg.OutputSuffix)
	assert.Equal(t, []string{"core", "alloc", "collections", "std"}, cfg.Features)
}

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staticgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `
trait_crate = "my_crate"
features = ["core", "alloc"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "my_crate", cfg.TraitCrate)
	assert.Equal(t, []string{"core", "alloc"}, cfg.Features)
	// Unset keys keep their defaults.
	assert.Equal(t, "ToStatic", cfg.Derive)
	assert.Equal(t, "_static", cfg.OutputSuffix)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "staticgen.toml"))

	// The caller decides whether a missing file matters; the defaults are
	// still usable.
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, Default(), cfg)
}

func TestLoadUnknownKey(t *testing.T) {
	path := write(t, `trait_create = "typo"`)

	_, err := Load(path)
	assert.ErrorContains(t, err, `unknown key "trait_create"`)
}

func TestLoadMalformed(t *testing.T) {
	path := write(t, `trait_crate = `)

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to load")
}

func TestLoadRejectsEmptyValues(t *testing.T) {
	for _, content := range []string{
		`trait_crate = ""`,
		`derive = ""`,
		`output_suffix = ""`,
	} {
		_, err := Load(write(t, content))
		assert.ErrorContains(t, err, "must not be empty", "content %q", content)
	}
}
