package cli

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/uiabridge/stubgen/internal/errors"
)

// FilePair maps one input description file to its output module path
type FilePair struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Config describes one driver run
type Config struct {
	Pairs       []FilePair
	HelpersPath string // optional override for the bundled helper resource
}

// Manifest is the YAML file accepted by -manifest as an alternative to
// positional input=output arguments
type Manifest struct {
	Helpers string     `yaml:"helpers,omitempty"`
	Pairs   []FilePair `yaml:"pairs"`
}

// LoadManifest reads and validates a generation manifest
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ManifestErrorCode, err, "failed to read manifest %s", path).
			WithSuggestion("Check that the manifest path is correct and readable")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrapf(errors.ManifestErrorCode, err, "failed to parse manifest %s", path).
			WithSuggestion("Check the manifest YAML syntax")
	}

	if len(manifest.Pairs) == 0 {
		return nil, errors.Newf(errors.ManifestErrorCode, "manifest %s declares no file pairs", path).
			WithSuggestion("Add at least one entry under 'pairs'")
	}
	for i, pair := range manifest.Pairs {
		if pair.Input == "" || pair.Output == "" {
			return nil, errors.Newf(errors.ManifestErrorCode,
				"manifest %s: pair %d is missing input or output", path, i+1)
		}
	}

	return &manifest, nil
}

// ParsePairArgs parses positional "input=output" arguments into file pairs
func ParsePairArgs(args []string) ([]FilePair, error) {
	pairs := make([]FilePair, 0, len(args))
	for _, arg := range args {
		input, output, found := strings.Cut(arg, "=")
		if !found || input == "" || output == "" {
			return nil, errors.Newf(errors.ManifestErrorCode,
				"invalid file pair %q, expected input=output", arg).
				WithSuggestion("Pass pairs as path/to/Class.idl=path/to/class.js")
		}
		pairs = append(pairs, FilePair{Input: input, Output: output})
	}
	return pairs, nil
}
