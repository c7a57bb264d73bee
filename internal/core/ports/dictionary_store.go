package ports

import "github.com/AntonioJCosta/itemalias/internal/core/domain/alias"

// DictionaryStore persists the flattened name -> value dictionary.
type DictionaryStore interface {
	// Export replaces the stored dictionary with entries.
	Export(entries []alias.Entry) error
	// Read returns the stored name -> value pairs.
	Read() (map[string]string, error)
	Location() string
}
