package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiabridge/stubgen/internal/errors"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gen.yaml")
	content := `helpers: custom_helpers.js
pairs:
  - input: idl/UIAElement.idl
    output: lib/uia_element.js
  - input: idl/UIATarget.idl
    output: lib/uia_target.js
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	manifest, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "custom_helpers.js", manifest.Helpers)
	require.Len(t, manifest.Pairs, 2)
	assert.Equal(t, "idl/UIAElement.idl", manifest.Pairs[0].Input)
	assert.Equal(t, "lib/uia_element.js", manifest.Pairs[0].Output)
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var genErr errors.GenError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, errors.ManifestErrorCode, genErr.ErrorCode())
}

func TestLoadManifest_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "pairs: [\n"},
		{"no pairs", "helpers: h.js\n"},
		{"incomplete pair", "pairs:\n  - input: a.idl\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := LoadManifest(path)
			assert.Error(t, err)
		})
	}
}

func TestParsePairArgs(t *testing.T) {
	pairs, err := ParsePairArgs([]string{"a.idl=a.js", "idl/b.idl=lib/b.js"})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, FilePair{Input: "a.idl", Output: "a.js"}, pairs[0])
	assert.Equal(t, FilePair{Input: "idl/b.idl", Output: "lib/b.js"}, pairs[1])
}

func TestParsePairArgs_Invalid(t *testing.T) {
	for _, arg := range []string{"a.idl", "=a.js", "a.idl=", ""} {
		_, err := ParsePairArgs([]string{arg})
		assert.Error(t, err, "argument %q", arg)
	}
}
