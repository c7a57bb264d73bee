// Package english provides the English wording of the alias and query grammars.
package english

import (
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// NounSeparator splits a noun written as "stem¦singular-ending¦plural-ending".
const NounSeparator = "¦"

var defaultKeywords = map[ports.Keyword]string{
	ports.KeywordAny:           "any",
	ports.KeywordEvery:         "every",
	ports.KeywordOf:            "of",
	ports.KeywordAnd:           "and",
	ports.KeywordEnchantmentOf: "of",
}

// Language implements ports.Language for English.
type Language struct {
	keywords map[ports.Keyword]string
	articles []string
}

// New returns the English language. overrides replaces individual keywords.
func New(overrides map[ports.Keyword]string) ports.Language {
	kw := make(map[ports.Keyword]string, len(defaultKeywords))
	for k, v := range defaultKeywords {
		kw[k] = v
	}
	for k, v := range overrides {
		if v = strings.TrimSpace(v); v != "" {
			kw[k] = v
		}
	}
	return &Language{keywords: kw, articles: []string{"an", "a"}}
}

// Plural splits a noun in "¦" notation: "log¦s" is log/logs, "lea¦f¦ves" is
// leaf/leaves, and a word without separators is its own plural. Separators
// may appear in any word of a multi-word name.
func (l *Language) Plural(name string) (string, string) {
	if !strings.Contains(name, NounSeparator) {
		return name, name
	}
	words := strings.Split(name, " ")
	singular := make([]string, len(words))
	plural := make([]string, len(words))
	for i, w := range words {
		singular[i], plural[i] = splitWord(w)
	}
	return strings.Join(singular, " "), strings.Join(plural, " ")
}

func splitWord(w string) (string, string) {
	parts := strings.Split(w, NounSeparator)
	switch len(parts) {
	case 1:
		return w, w
	case 2:
		return parts[0], parts[0] + parts[1]
	default:
		return parts[0] + parts[1], parts[0] + parts[2]
	}
}

// StripIndefiniteArticle removes a leading "a" or "an".
func (l *Language) StripIndefiniteArticle(text string) (string, bool) {
	for _, article := range l.articles {
		if len(text) > len(article) && strings.EqualFold(text[:len(article)], article) && text[len(article)] == ' ' {
			return strings.TrimLeft(text[len(article)+1:], " "), true
		}
	}
	return text, false
}

// Keyword returns the English word for k.
func (l *Language) Keyword(k ports.Keyword) string {
	if v, ok := l.keywords[k]; ok {
		return v
	}
	return string(k)
}
