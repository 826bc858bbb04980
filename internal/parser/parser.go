// Package parser reads interface-description files in the interchange
// format produced upstream from the native headers:
//
//	interface UIAElement {
//	    /// Taps the element at its center point.
//	    tapWithOptions(options: NSDictionary) -> void
//	    static elementAtPoint(point: CGPoint) -> UIAElement
//	}
//
// One interface per file. Parsing the native header syntax itself is owned
// by the upstream tooling and is out of scope here.
package parser

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	genErrors "github.com/uiabridge/stubgen/internal/errors"
	"github.com/uiabridge/stubgen/internal/models"
)

type descriptionFile struct {
	Interfaces []*interfaceDecl `parser:"@@+"`
}

type interfaceDecl struct {
	Name    string        `parser:"'interface' @Ident '{'"`
	Methods []*methodDecl `parser:"@@* '}'"`
}

type methodDecl struct {
	Doc    []string   `parser:"@DocComment*"`
	Static bool       `parser:"@'static'?"`
	Name   string     `parser:"@Ident"`
	Args   []*argDecl `parser:"'(' (@@ (',' @@)*)? ')'"`
	Return string     `parser:"'->' @Ident @'*'?"`
}

type argDecl struct {
	Name string `parser:"@Ident ':'"`
	Type string `parser:"@Ident @'*'?"`
}

// Parser parses interface-description source into the data model consumed
// by the class synthesizer
type Parser struct {
	parser *participle.Parser[descriptionFile]
}

// NewParser builds the interchange-format parser
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "DocComment", Pattern: `///[^\n]*`},
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Arrow", Pattern: `->`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[(){},:*]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	return &Parser{
		parser: participle.MustBuild[descriptionFile](
			participle.Lexer(lex),
			participle.Elide("Whitespace", "Comment"),
			participle.UseLookahead(2),
		),
	}
}

// Parse parses one interface-description file. The file must declare exactly
// one interface; anything else is a fatal parse error for the file pair.
func (p *Parser) Parse(filename string, source []byte) (*models.InterfaceDescription, error) {
	file, err := p.parser.ParseBytes(filename, source)
	if err != nil {
		loc := genErrors.SourceLocation{File: filename}
		var perr participle.Error
		if errors.As(err, &perr) {
			loc.Line = perr.Position().Line
		}
		return nil, genErrors.Wrapf(genErrors.ParseErrorCode, err, "failed to parse %s", filename).
			WithLocation(loc).
			WithSuggestion("Check the interface-description syntax against the interchange format")
	}

	if len(file.Interfaces) != 1 {
		return nil, genErrors.Newf(genErrors.ParseErrorCode,
			"%s declares %d interfaces, expected exactly one", filename, len(file.Interfaces)).
			WithLocation(genErrors.SourceLocation{File: filename}).
			WithSuggestion("Split each interface into its own description file")
	}

	return toDescription(file.Interfaces[0]), nil
}

// toDescription converts the grammar tree into the immutable data model
func toDescription(decl *interfaceDecl) *models.InterfaceDescription {
	desc := &models.InterfaceDescription{
		Name:    decl.Name,
		Methods: make([]models.MethodDescription, 0, len(decl.Methods)),
	}
	for _, m := range decl.Methods {
		method := models.MethodDescription{
			Name:       m.Name,
			ReturnType: m.Return,
			Comment:    joinDoc(m.Doc),
			Static:     m.Static,
			Args:       make([]models.ArgumentDescription, 0, len(m.Args)),
		}
		for _, a := range m.Args {
			method.Args = append(method.Args, models.ArgumentDescription{
				Name: a.Name,
				Type: a.Type,
			})
		}
		desc.Methods = append(desc.Methods, method)
	}
	return desc
}

// joinDoc strips the doc-comment markers and rejoins the lines, preserving
// line breaks so multi-line comments survive into the generated output
func joinDoc(doc []string) string {
	if len(doc) == 0 {
		return ""
	}
	lines := make([]string, len(doc))
	for i, line := range doc {
		line = strings.TrimPrefix(line, "///")
		lines[i] = strings.TrimPrefix(line, " ")
	}
	return strings.Join(lines, "\n")
}
