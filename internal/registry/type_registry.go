package registry

import "sort"

// ConstraintKind identifies one predicate a generated wrapper applies to an
// argument value before building the invocation descriptor.
type ConstraintKind int

const (
	// CheckNumber requires the value to be a JS number
	CheckNumber ConstraintKind = iota
	// CheckBoolean requires the value to be a JS boolean
	CheckBoolean
	// CheckString requires the value to be a JS string
	CheckString
	// CheckObject requires the value to be a non-null JS object
	CheckObject
	// CheckNumericField requires the named field of the value to be a number
	CheckNumericField
	// CheckEnumMember requires the value to be one of a fixed literal set
	CheckEnumMember
)

// ConstraintCheck is a single tagged predicate. Field is set only for
// CheckNumericField; Allowed only for CheckEnumMember.
type ConstraintCheck struct {
	Kind    ConstraintKind
	Field   string
	Allowed []string
}

// ConstraintSpec is an ordered list of checks, all of which must hold.
// A single-predicate type is a spec with one check.
type ConstraintSpec struct {
	Checks []ConstraintCheck
}

// Enumeration literal sets. DirectionTokens is also the value space of the
// normalizeDirection helper routed through the sanitizer registry.
var (
	DirectionTokens      = []string{"left", "right", "up", "down"}
	EdgeTokens           = []string{"top", "bottom", "left", "right"}
	PinchDirectionTokens = []string{"open", "close"}
)

// TypeRegistry maps canonical type names to the constraint checks a generated
// wrapper must apply. The table is built once and never mutated afterwards.
type TypeRegistry struct {
	constraints map[string]ConstraintSpec
}

// NewTypeRegistry creates a type registry with the built-in constraint table
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		constraints: map[string]ConstraintSpec{
			"NSInteger":      single(ConstraintCheck{Kind: CheckNumber}),
			"CGFloat":        single(ConstraintCheck{Kind: CheckNumber}),
			"NSTimeInterval": single(ConstraintCheck{Kind: CheckNumber}),
			"BOOL":           single(ConstraintCheck{Kind: CheckBoolean}),
			"NSString":       single(ConstraintCheck{Kind: CheckString}),
			"CGPoint": sequence(
				ConstraintCheck{Kind: CheckObject},
				ConstraintCheck{Kind: CheckNumericField, Field: "x"},
				ConstraintCheck{Kind: CheckNumericField, Field: "y"},
			),
			"UIADirection":      single(ConstraintCheck{Kind: CheckEnumMember, Allowed: DirectionTokens}),
			"UIAEdge":           single(ConstraintCheck{Kind: CheckEnumMember, Allowed: EdgeTokens}),
			"UIAPinchDirection": single(ConstraintCheck{Kind: CheckEnumMember, Allowed: PinchDirectionTokens}),
		},
	}
}

// Lookup retrieves the constraint spec for a canonical type. A false return
// means the type is unregistered; the caller emits a diagnostic and generates
// the method without validation for that argument rather than failing.
func (r *TypeRegistry) Lookup(canonicalType string) (ConstraintSpec, bool) {
	spec, ok := r.constraints[canonicalType]
	return spec, ok
}

// Has checks if a constraint spec is registered for a canonical type
func (r *TypeRegistry) Has(canonicalType string) bool {
	_, ok := r.constraints[canonicalType]
	return ok
}

// ListTypes returns all registered canonical type names, sorted
func (r *TypeRegistry) ListTypes() []string {
	types := make([]string, 0, len(r.constraints))
	for name := range r.constraints {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

func single(check ConstraintCheck) ConstraintSpec {
	return ConstraintSpec{Checks: []ConstraintCheck{check}}
}

func sequence(checks ...ConstraintCheck) ConstraintSpec {
	return ConstraintSpec{Checks: checks}
}
