package generator

import (
	"strings"
	"unicode"
)

// ToWrapperName converts a camelCase source method name to the snake_case
// name exposed by the generated wrapper class. The transform is pure and
// deterministic: an underscore is inserted before every uppercase rune, which
// is then lowered ("doWithBar" -> "do_with_bar", "tapXY" -> "tap_x_y").
//
// Distinct source names can in principle collapse onto one wrapper name
// ("doBar" vs "do_bar"); the class synthesizer treats that as a fatal
// collision rather than silently shadowing a method.
func ToWrapperName(sourceIdentifier string) string {
	var b strings.Builder
	b.Grow(len(sourceIdentifier) + 4)
	for i, r := range sourceIdentifier {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
