package registry

// typeAliases collapses declared type variants onto the canonical type that
// drives constraint and sanitizer lookup. The declared string itself is never
// rewritten in generated output: invocation descriptors carry the original
// type so downstream consumers can discriminate on it.
var typeAliases = map[string]string{
	"NSUInteger": "NSInteger",
	"NSString*":  "NSString",
	"int":        "NSInteger",
	"unsigned":   "NSInteger",
	"float":      "CGFloat",
	"double":     "CGFloat",
}

// CanonicalType resolves a declared type string to its canonical form.
// Types without an alias entry are already canonical.
func CanonicalType(declared string) string {
	if canonical, ok := typeAliases[declared]; ok {
		return canonical
	}
	return declared
}
