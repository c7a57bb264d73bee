package testutil

import (
	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// MockDefinitionSource is a mock implementation of the ports.DefinitionSource interface.
type MockDefinitionSource struct {
	LoadFunc     func() (alias.Document, error)
	LocationFunc func() string
}

// Load mocks the Load method.
func (m *MockDefinitionSource) Load() (alias.Document, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return alias.Document{Root: alias.Node{Section: true}}, nil
}

// Location mocks the Location method.
func (m *MockDefinitionSource) Location() string {
	if m.LocationFunc != nil {
		return m.LocationFunc()
	}
	return "mock"
}

// Ensure MockDefinitionSource implements the ports.DefinitionSource interface.
var _ ports.DefinitionSource = (*MockDefinitionSource)(nil)
