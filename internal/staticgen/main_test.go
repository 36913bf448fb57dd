package staticgeninternal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staticgen-dev/staticgen/internal/config"
)

const declSrc = `#[derive(ToStatic)]
struct Foo<'a> {
    bar: Cow<'a, str>,
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMain_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "types.rs", declSrc)
	writeFile(t, dir, "plain.rs", "struct Plain;\n")
	writeFile(t, dir, "notes.txt", "not a declaration file")

	outs, err := Main(dir, config.Default(), nil)
	require.NoError(t, err)

	// plain.rs selects no items, so only types.rs produces output.
	require.Len(t, outs, 1)
	code, ok := outs[filepath.Join(dir, "types_static.rs")]
	require.True(t, ok)
	assert.Contains(t, string(code), "// source: types.rs")
	assert.Contains(t, string(code), "impl ::bounded_static::ToBoundedStatic for Foo<'_> {")
}

func TestMain_SkipsGeneratedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "types.rs", declSrc)

	outs, err := Main(dir, config.Default(), nil)
	require.NoError(t, err)

	// Writing the output and rerunning must not feed it back in.
	for path, code := range outs {
		require.NoError(t, os.WriteFile(path, code, 0o644))
	}
	again, err := Main(dir, config.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, outs, again)
}

func TestMain_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "types.rs", declSrc)

	outs, err := Main(dir, config.Default(), []string{"types.rs"})
	require.NoError(t, err)
	assert.Len(t, outs, 1)
}

func TestMain_NoFiles(t *testing.T) {
	_, err := Main(t.TempDir(), config.Default(), nil)
	assert.ErrorContains(t, err, "no declaration files found")
}

func TestMain_MissingPattern(t *testing.T) {
	_, err := Main(t.TempDir(), config.Default(), []string{"nope.rs"})
	assert.Error(t, err)
}

func TestMain_AllOrNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.rs", declSrc)
	writeFile(t, dir, "bad.rs", "#[derive(ToStatic)]\nstruct Bad<'a> {\n    r: &'a str,\n}\n")

	outs, err := Main(dir, config.Default(), nil)
	assert.Nil(t, outs)
	assert.ErrorContains(t, err, "non-static reference cannot be made static")
}

func TestMain_CustomSuffix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "types.rs", declSrc)

	cfg := config.Default()
	cfg.OutputSuffix = "_owned"
	outs, err := Main(dir, cfg, nil)
	require.NoError(t, err)
	_, ok := outs[filepath.Join(dir, "types_owned.rs")]
	assert.True(t, ok)
}
