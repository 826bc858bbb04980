package models

// GuardStatement is one rendered argument check. Guards are emitted at the
// top of the generated method body, before any other statement; a failing
// guard throws inside the generated wrapper and aborts that invocation.
type GuardStatement struct {
	Condition string // JS boolean expression over the raw argument
	Message   string // failure message, includes class, method and argument
}

// DescriptorArg is one entry of the invocation descriptor's args array.
// Type always carries the original declared type string; ValueExpr is either
// the bare argument reference or a sanitizer call wrapping it.
type DescriptorArg struct {
	Type      string
	ValueExpr string
}

// GeneratedMethod is the synthesized form of one wrapper method, ready for
// template rendering.
type GeneratedMethod struct {
	WrapperName string   // snake_case name exposed by the generated class
	SourceName  string   // original method name, written into the descriptor
	Static      bool
	Params      []string // original argument names, original order
	Comment     string   // doc comment text, empty when absent
	Guards      []GuardStatement
	Args        []DescriptorArg
}

// GeneratedClass is the synthesized form of one interface description.
type GeneratedClass struct {
	Name    string
	Methods []GeneratedMethod
}

// GeneratedModule is a fully rendered output file ready to be written.
type GeneratedModule struct {
	ClassName string
	FilePath  string
	Content   string
}

// GenerationSummary collects statistics across one driver run.
type GenerationSummary struct {
	ClassesGenerated int
	MethodsGenerated int
	UnknownTypes     int
	GeneratedFiles   []string
}
