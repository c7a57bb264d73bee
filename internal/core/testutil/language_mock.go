package testutil

import (
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// MockLanguage is a mock implementation of the ports.Language interface.
// By default it understands "stem¦suffix" nouns, the articles "a" and "an",
// and returns keywords unchanged.
type MockLanguage struct {
	PluralFunc                 func(name string) (string, string)
	StripIndefiniteArticleFunc func(text string) (string, bool)
	KeywordFunc                func(k ports.Keyword) string
}

// Plural mocks the Plural method.
func (m *MockLanguage) Plural(name string) (string, string) {
	if m.PluralFunc != nil {
		return m.PluralFunc(name)
	}
	stem, suffix, ok := strings.Cut(name, "¦")
	if !ok {
		return name, name
	}
	return stem, stem + suffix
}

// StripIndefiniteArticle mocks the StripIndefiniteArticle method.
func (m *MockLanguage) StripIndefiniteArticle(text string) (string, bool) {
	if m.StripIndefiniteArticleFunc != nil {
		return m.StripIndefiniteArticleFunc(text)
	}
	lower := strings.ToLower(text)
	for _, article := range []string{"a ", "an "} {
		if strings.HasPrefix(lower, article) {
			return text[len(article):], true
		}
	}
	return text, false
}

// Keyword mocks the Keyword method.
func (m *MockLanguage) Keyword(k ports.Keyword) string {
	if m.KeywordFunc != nil {
		return m.KeywordFunc(k)
	}
	if k == ports.KeywordEnchantmentOf {
		return "of"
	}
	return string(k)
}

// Ensure MockLanguage implements the ports.Language interface.
var _ ports.Language = (*MockLanguage)(nil)
