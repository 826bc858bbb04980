package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizerRegistry_Lookup(t *testing.T) {
	registry := NewSanitizerRegistry()

	fn, ok := registry.Lookup("UIADirection")
	require.True(t, ok)
	assert.Equal(t, "normalizeDirection", fn)
	assert.True(t, registry.Has("UIADirection"))
}

func TestSanitizerRegistry_Lookup_PassThroughTypes(t *testing.T) {
	registry := NewSanitizerRegistry()

	// Every other type passes its raw value into the descriptor
	for _, typeName := range []string{"NSInteger", "NSString", "CGPoint", "UIAEdge", "UIAPinchDirection", "NSDictionary"} {
		_, ok := registry.Lookup(typeName)
		assert.False(t, ok, "expected no sanitizer for %s", typeName)
	}
}
