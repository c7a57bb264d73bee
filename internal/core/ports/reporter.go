package ports

import "github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"

// Reporter receives non-fatal diagnostics.
type Reporter interface {
	Report(d diagnostic.Diagnostic)
}
