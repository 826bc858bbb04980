package cli

import (
	"os"
	"strings"

	"github.com/uiabridge/stubgen/internal/errors"
	"github.com/uiabridge/stubgen/internal/generator"
	"github.com/uiabridge/stubgen/internal/models"
	"github.com/uiabridge/stubgen/internal/parser"
	"github.com/uiabridge/stubgen/internal/templates"
	"github.com/uiabridge/stubgen/internal/utils"
)

// Generator coordinates the generation process: per file pair it parses the
// interface description, synthesizes the wrapper class, renders it to text
// and writes the output atomically. Pairs are processed strictly in order;
// the first fatal error aborts the run.
type Generator struct {
	parser      *parser.Parser
	synthesizer *generator.Generator
	diagnostics *utils.DiagnosticSystem
	helperText  string
	summary     models.GenerationSummary
}

// NewGenerator creates a driver with the bundled helper resource
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		parser:      parser.NewParser(),
		synthesizer: generator.New(diagnostics),
		diagnostics: diagnostics,
		helperText:  templates.HelperLibrary(),
		summary:     models.GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// SetHelperResource replaces the bundled helper library with the contents of
// an external file
func (g *Generator) SetHelperResource(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.FileSystemErrorCode, err, "failed to read helper resource %s", path).
			WithSuggestion("Check the -helpers path")
	}
	g.helperText = string(data)
	return nil
}

// GetSummary returns the generation summary for the last run
func (g *Generator) GetSummary() models.GenerationSummary {
	summary := g.summary
	summary.UnknownTypes = g.synthesizer.UnknownTypeCount()
	return summary
}

// Run executes the generation process for all file pairs in the config
func (g *Generator) Run(config Config) error {
	g.summary = models.GenerationSummary{GeneratedFiles: make([]string, 0)}

	if config.HelpersPath != "" {
		if err := g.SetHelperResource(config.HelpersPath); err != nil {
			return err
		}
	}

	for _, pair := range config.Pairs {
		g.diagnostics.StartProgress("Generating " + pair.Output)
		if _, err := g.GeneratePair(pair); err != nil {
			g.diagnostics.EndProgress(false, "")
			return err
		}
		g.diagnostics.EndProgress(true, "")
	}

	return nil
}

// GeneratePair runs the full pipeline for one (input, output) file pair and
// returns the module record that was written. Output is assembled fully in
// memory and written once: a pair that fails anywhere leaves no partial
// output file.
func (g *Generator) GeneratePair(pair FilePair) (*models.GeneratedModule, error) {
	source, err := os.ReadFile(pair.Input)
	if err != nil {
		return nil, errors.Wrapf(errors.FileSystemErrorCode, err, "failed to read input %s", pair.Input).
			WithSuggestion("Check that the input file exists and is readable")
	}

	desc, err := g.parser.Parse(pair.Input, source)
	if err != nil {
		return nil, err
	}
	g.diagnostics.Verbose("Parsed %s: class %s with %d methods", pair.Input, desc.Name, len(desc.Methods))

	class, err := g.synthesizer.SynthesizeClass(desc)
	if err != nil {
		return nil, err
	}

	module := &models.GeneratedModule{
		ClassName: class.Name,
		FilePath:  pair.Output,
		Content:   g.assembleOutput(templates.RenderModule(class)),
	}
	if err := utils.WriteFileAtomic(module.FilePath, []byte(module.Content), 0644); err != nil {
		return nil, errors.Wrapf(errors.FileSystemErrorCode, err, "failed to write output %s", pair.Output).
			WithSuggestion("Check write permissions for the target directory")
	}

	g.summary.ClassesGenerated++
	g.summary.MethodsGenerated += len(class.Methods)
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, module.FilePath)
	return module, nil
}

// assembleOutput concatenates the fixed preamble, the helper prelude and the
// rendered module in their contract order
func (g *Generator) assembleOutput(renderedModule string) string {
	var b strings.Builder
	b.WriteString(templates.Preamble)
	b.WriteString("\n")
	b.WriteString(templates.HelperPrelude(g.helperText))
	b.WriteString(renderedModule)
	return b.String()
}
