package gen

import (
	"strings"
	"unicode"
)

// SnakeCase converts a CamelCase class name to snake_case. A word
// boundary opens before an uppercase rune that follows a lowercase
// letter or a digit, so runs of capitals stay together:
// "PersonAddress" becomes "person_address" while "HTTPSConnection"
// collapses to "httpsconnection".
func SnakeCase(name string) string {
	runes := []rune(name)

	var sb strings.Builder
	sb.Grow(len(name) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// Pluralize applies simple English pluralization for URL segments.
func Pluralize(name string) string {
	if strings.HasSuffix(name, "s") || strings.HasSuffix(name, "x") || strings.HasSuffix(name, "z") {
		return name + "es"
	}

	if strings.HasSuffix(name, "y") {
		for _, vowelY := range []string{"ay", "ey", "oy", "uy"} {
			if strings.HasSuffix(name, vowelY) {
				return name + "s"
			}
		}
		return name[:len(name)-1] + "ies"
	}

	return name + "s"
}

// PathSegment derives the default URL segment for a class name:
// CamelCase to snake_case to plural.
func PathSegment(name string) string {
	return Pluralize(SnakeCase(name))
}
