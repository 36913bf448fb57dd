package staticgen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/staticgen-dev/staticgen/internal/config"
	staticgeninternal "github.com/staticgen-dev/staticgen/internal/staticgen"
)

// TestGolden runs the whole pipeline over the archives under
// testdata/golden. Each archive holds an input.rs and either the expected
// generated file (want.rs) or the expected diagnostics (want_error, one
// required fragment per line).
func TestGolden(t *testing.T) {
	ents, err := os.ReadDir(filepath.Join("testdata", "golden"))
	require.NoError(t, err)

	for _, ent := range ents {
		name, ok := strings.CutSuffix(ent.Name(), ".txtar")
		if !ok {
			continue
		}

		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(filepath.Join("testdata", "golden", ent.Name()))
			require.NoError(t, err)

			files := make(map[string][]byte)
			for _, f := range ar.Files {
				files[f.Name] = f.Data
			}

			input, ok := files["input.rs"]
			require.True(t, ok, "archive has no input.rs")

			code, err := staticgeninternal.GenerateSource("input.rs", input, config.Default())

			if wantErr, ok := files["want_error"]; ok {
				require.Error(t, err)
				assert.Nil(t, code)
				for _, line := range strings.Split(strings.TrimSpace(string(wantErr)), "\n") {
					assert.Contains(t, err.Error(), line)
				}
				return
			}

			want, ok := files["want.rs"]
			require.True(t, ok, "archive has neither want.rs nor want_error")
			require.NoError(t, err)
			assert.Equal(t, string(want), string(code))
		})
	}
}
