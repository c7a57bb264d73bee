package ports

import "github.com/AntonioJCosta/itemalias/internal/core/domain/alias"

// DefinitionSource reads the alias definition document.
type DefinitionSource interface {
	Load() (alias.Document, error)
	// Location describes where the document is read from, for messages.
	Location() string
}
