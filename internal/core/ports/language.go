package ports

// Keyword identifies a localized word used by the query grammar.
type Keyword string

const (
	KeywordAny           Keyword = "any"
	KeywordEvery         Keyword = "every"
	KeywordOf            Keyword = "of"
	KeywordAnd           Keyword = "and"
	KeywordEnchantmentOf Keyword = "enchantment of"
)

// Language supplies the localized pieces of the alias and query grammars.
type Language interface {
	// Plural splits a name written in noun notation into its singular and plural forms.
	Plural(name string) (singular, plural string)
	// StripIndefiniteArticle removes a leading article, reporting whether one was present.
	StripIndefiniteArticle(text string) (string, bool)
	// Keyword returns the localized word for k.
	Keyword(k Keyword) string
}
