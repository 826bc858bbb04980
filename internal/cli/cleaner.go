package cli

import (
	"os"
	"strings"

	"github.com/uiabridge/stubgen/internal/errors"
	"github.com/uiabridge/stubgen/internal/templates"
	"github.com/uiabridge/stubgen/internal/utils"
)

// Cleaner removes previously generated output files
type Cleaner struct {
	diagnostics *utils.DiagnosticSystem
}

// NewCleaner creates a new cleaner
func NewCleaner(diagnostics *utils.DiagnosticSystem) *Cleaner {
	return &Cleaner{diagnostics: diagnostics}
}

// CleanGeneratedFiles deletes the output file of each pair, but only when it
// starts with the generated-file marker. Files without the marker were not
// written by this tool and are left alone.
func (c *Cleaner) CleanGeneratedFiles(pairs []FilePair) error {
	marker := generatedMarker()

	for _, pair := range pairs {
		data, err := os.ReadFile(pair.Output)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return errors.Wrapf(errors.FileSystemErrorCode, err, "failed to read %s", pair.Output)
		}

		if !strings.HasPrefix(string(data), marker) {
			c.diagnostics.Warn("skipping %s: not a generated file", pair.Output)
			continue
		}

		if err := os.Remove(pair.Output); err != nil {
			return errors.Wrapf(errors.FileSystemErrorCode, err, "failed to remove %s", pair.Output)
		}
		c.diagnostics.Verbose("Removed %s", pair.Output)
	}

	return nil
}

// generatedMarker is the first line of the fixed preamble
func generatedMarker() string {
	line, _, _ := strings.Cut(templates.Preamble, "\n")
	return line
}
