package alias

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CollapseSpaces trims s and squeezes every whitespace run to one space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Lower lower-cases s without locale-specific rules.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Normalize returns the registry key form of a name.
func Normalize(name string) string {
	return Lower(CollapseSpaces(name))
}
