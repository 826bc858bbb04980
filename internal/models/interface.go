package models

// InterfaceDescription is the parsed form of one interface-description file:
// a single class and its methods, in declaration order. It is produced once
// per input file and consumed by exactly one generation pass.
type InterfaceDescription struct {
	Name    string              // class name as declared in the source
	Methods []MethodDescription // declaration order is preserved end to end
}

// MethodDescription describes one method of an interface. Method name
// uniqueness within a class is assumed from the source, not enforced here.
type MethodDescription struct {
	Name       string                // original camelCase method name
	Args       []ArgumentDescription // declaration order
	ReturnType string                // declared return type; "void" for none
	Comment    string                // doc comment text, empty when absent
	Static     bool                  // class method vs instance method
}

// ArgumentDescription is one typed parameter of a method. Type holds the
// declared source type string (e.g. "NSUInteger", "NSString*"), never the
// canonicalized form.
type ArgumentDescription struct {
	Name string
	Type string
}
