package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiabridge/stubgen/internal/utils"
)

const elementSource = `interface UIAElement {
    /// Taps the element at its center point.
    tap() -> void

    flickInsideWithDirection(direction: UIADirection) -> void

    static elementAtPoint(point: CGPoint) -> UIAElement
}
`

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerator_Run(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "UIAElement.idl", elementSource)
	output := filepath.Join(dir, "uia_element.js")

	gen := NewGenerator(utils.NewQuietDiagnostics())
	err := gen.Run(Config{Pairs: []FilePair{{Input: input, Output: output}}})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	content := string(data)

	// Preamble first, helper prelude second, module last
	assert.True(t, strings.HasPrefix(content, "// Code generated by stubgen. DO NOT EDIT."))
	assert.Contains(t, content, "function guard(")
	assert.Contains(t, content, "function normalizeDirection(")
	assert.Contains(t, content, "class UIAElement {")
	assert.Contains(t, content, "module.exports = UIAElement;")

	// The helper library's own export statement is stripped on inclusion
	assert.Equal(t, 1, strings.Count(content, "module.exports"))

	// Wrapper surface
	assert.Contains(t, content, "// Taps the element at its center point.")
	assert.Contains(t, content, "  tap() {")
	assert.Contains(t, content, "  static element_at_point(point) {")
	assert.Contains(t, content, "value: normalizeDirection(direction)")

	summary := gen.GetSummary()
	assert.Equal(t, 1, summary.ClassesGenerated)
	assert.Equal(t, 3, summary.MethodsGenerated)
	assert.Equal(t, []string{output}, summary.GeneratedFiles)
}

func TestGenerator_GeneratePair_ModuleRecord(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "UIAElement.idl", elementSource)
	output := filepath.Join(dir, "uia_element.js")

	gen := NewGenerator(utils.NewQuietDiagnostics())
	module, err := gen.GeneratePair(FilePair{Input: input, Output: output})
	require.NoError(t, err)

	// The returned record mirrors what landed on disk
	assert.Equal(t, "UIAElement", module.ClassName)
	assert.Equal(t, output, module.FilePath)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, module.Content, string(data))
	assert.True(t, strings.HasPrefix(module.Content, "// Code generated by stubgen. DO NOT EDIT."))
}

func TestGenerator_Run_Deterministic(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "UIAElement.idl", elementSource)
	first := filepath.Join(dir, "first.js")
	second := filepath.Join(dir, "second.js")

	gen := NewGenerator(utils.NewQuietDiagnostics())
	require.NoError(t, gen.Run(Config{Pairs: []FilePair{{Input: input, Output: first}}}))
	require.NoError(t, gen.Run(Config{Pairs: []FilePair{{Input: input, Output: second}}}))

	firstData, err := os.ReadFile(first)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, firstData, secondData)
}

func TestGenerator_Run_ParseFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "broken.idl", "interface {\n")
	output := filepath.Join(dir, "broken.js")

	gen := NewGenerator(utils.NewQuietDiagnostics())
	err := gen.Run(Config{Pairs: []FilePair{{Input: input, Output: output}}})
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))

	// No stray temp files either
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "broken.idl", entries[0].Name())
}

func TestGenerator_Run_MissingInputFails(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.js")

	gen := NewGenerator(utils.NewQuietDiagnostics())
	err := gen.Run(Config{Pairs: []FilePair{{Input: filepath.Join(dir, "absent.idl"), Output: output}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.idl")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerator_Run_HelperOverride(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "UIAElement.idl", elementSource)
	helpers := writeInput(t, dir, "helpers.js",
		"function guard(condition, message) { if (!condition) throw message; }\n\nmodule.exports = { guard: guard };\n")
	output := filepath.Join(dir, "uia_element.js")

	gen := NewGenerator(utils.NewQuietDiagnostics())
	err := gen.Run(Config{
		Pairs:       []FilePair{{Input: input, Output: output}},
		HelpersPath: helpers,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "throw message")
	assert.NotContains(t, string(data), "DIRECTION_CODES")
}
