package registry

// SanitizerRegistry maps canonical type names to the shared helper function
// that rewrites an argument value before it enters the invocation descriptor.
// Sanitization is orthogonal to validation: the guard checks the raw value,
// the sanitizer output is what the descriptor carries. Types without an entry
// pass their raw value through unchanged.
type SanitizerRegistry struct {
	sanitizers map[string]string
}

// NewSanitizerRegistry creates a sanitizer registry with the built-in mapping.
// Direction values are folded onto the canonical string token the native
// environment expects before they are placed into the descriptor.
func NewSanitizerRegistry() *SanitizerRegistry {
	return &SanitizerRegistry{
		sanitizers: map[string]string{
			"UIADirection": "normalizeDirection",
		},
	}
}

// Lookup retrieves the helper function name for a canonical type. A false
// return means the argument value passes through unsanitized.
func (r *SanitizerRegistry) Lookup(canonicalType string) (string, bool) {
	fn, ok := r.sanitizers[canonicalType]
	return fn, ok
}

// Has checks if a sanitizer is registered for a canonical type
func (r *SanitizerRegistry) Has(canonicalType string) bool {
	_, ok := r.sanitizers[canonicalType]
	return ok
}
