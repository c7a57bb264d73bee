package ports

import (
	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
)

// SectionCount is the number of names a definition section registered.
type SectionCount struct {
	Name  string
	Count int
}

// LoadResult summarizes one load of the definition document.
type LoadResult struct {
	SnapshotID   string
	Aliases      int
	Sections     []SectionCount
	MissingNames []int
	Source       string
}

// AliasService is the entry point to the alias dictionary and the parsers built on it.
type AliasService interface {
	// Reload replaces the dictionary with the contents of the definition source.
	// On failure the previously published dictionary stays in place.
	Reload() (LoadResult, error)
	// Reset publishes an empty dictionary.
	Reset()
	// RegisterAliasDefinition expands and registers one definition and returns
	// the number of names it expanded to. Nil variations use the groups of the
	// current dictionary.
	RegisterAliasDefinition(name, value string, variations alias.Variations) int
	// ParseAliasValue parses a comma-separated alias value.
	ParseAliasValue(value string) (*itemtype.TypeSet, error)
	// ParseQuery parses free-form query text.
	ParseQuery(text string) (*itemtype.TypeSet, error)
	// Expand previews the names a template expands to against the loaded variations.
	Expand(template, value string) ([]alias.Entry, error)
	DisplayName(id, subMin, subMax int, plural bool) string
	DebugName(id, subMin, subMax int, plural bool) string
	// Describe renders t for people, using display names.
	Describe(t *itemtype.TypeSet) string
	// Aliases lists every registered name with a private copy of its type, sorted by name.
	Aliases() []alias.Entry
	SnapshotID() string
}
