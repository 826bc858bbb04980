// Package templates serializes synthesized classes to JavaScript text and
// owns the fixed pieces of every output file: the generated-file preamble and
// the shared helper library.
package templates

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/uiabridge/stubgen/internal/models"
)

// Preamble marks every output file as generated. It is fixed and carries no
// run-dependent content so identical inputs produce byte-identical output.
const Preamble = `// Code generated by stubgen. DO NOT EDIT.
//
// Each wrapper method validates its arguments and returns an invocation
// descriptor for the native automation bridge instead of performing the call.
`

//go:embed helpers.js
var helperLibrary string

// HelperLibrary returns the bundled helper resource text
func HelperLibrary() string {
	return helperLibrary
}

// HelperPrelude returns everything in a helper resource before its own
// export statement. The export line belongs to the standalone resource, not
// to the generated files it is inlined into.
func HelperPrelude(source string) string {
	if idx := strings.Index(source, "module.exports"); idx != -1 {
		return source[:idx]
	}
	return source
}

// RenderModule serializes a generated class to JavaScript: the class
// definition with its methods in input order, followed by the module export.
func RenderModule(class *models.GeneratedClass) string {
	var b strings.Builder

	fmt.Fprintf(&b, "class %s {\n", class.Name)
	for i, method := range class.Methods {
		if i > 0 {
			b.WriteString("\n")
		}
		writeMethod(&b, class.Name, method)
	}
	b.WriteString("}\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "module.exports = %s;\n", class.Name)

	return b.String()
}

// writeMethod emits one wrapper method: doc comment, signature, guards in
// synthesis order, then the single return of the descriptor literal.
func writeMethod(b *strings.Builder, className string, m models.GeneratedMethod) {
	writeComment(b, m.Comment)

	modifier := ""
	if m.Static {
		modifier = "static "
	}
	fmt.Fprintf(b, "  %s%s(%s) {\n", modifier, m.WrapperName, strings.Join(m.Params, ", "))

	for _, guard := range m.Guards {
		fmt.Fprintf(b, "    guard(%s, %q);\n", guard.Condition, guard.Message)
	}

	b.WriteString("    return {\n")
	fmt.Fprintf(b, "      target: { type: 'Class', value: '%s' },\n", className)
	fmt.Fprintf(b, "      method: '%s',\n", m.SourceName)
	if len(m.Args) == 0 {
		b.WriteString("      args: [],\n")
	} else {
		b.WriteString("      args: [\n")
		for _, arg := range m.Args {
			fmt.Fprintf(b, "        { type: '%s', value: %s },\n", arg.Type, arg.ValueExpr)
		}
		b.WriteString("      ],\n")
	}
	b.WriteString("    };\n")
	b.WriteString("  }\n")
}

// writeComment emits a method doc comment. Single-line comments use the line
// form, multi-line comments the block form; the distinction is cosmetic.
func writeComment(b *strings.Builder, comment string) {
	if comment == "" {
		return
	}
	lines := strings.Split(comment, "\n")
	if len(lines) == 1 {
		fmt.Fprintf(b, "  // %s\n", lines[0])
		return
	}
	b.WriteString("  /**\n")
	for _, line := range lines {
		if line == "" {
			b.WriteString("   *\n")
			continue
		}
		fmt.Fprintf(b, "   * %s\n", line)
	}
	b.WriteString("   */\n")
}
