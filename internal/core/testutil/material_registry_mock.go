package testutil

import (
	"sort"

	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// MockMaterialRegistry is a mock implementation of the ports.MaterialRegistry interface.
// Without func overrides it answers from Names, with a MaxBlock of 255.
type MockMaterialRegistry struct {
	Names           map[int]string
	ExistsFunc      func(id int) bool
	MaxBlockIDFunc  func() int
	DefaultNameFunc func(id int) string
}

// NewMockMaterialRegistry returns a registry knowing the given ids.
func NewMockMaterialRegistry(names map[int]string) *MockMaterialRegistry {
	return &MockMaterialRegistry{Names: names}
}

// Exists mocks the Exists method.
func (m *MockMaterialRegistry) Exists(id int) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(id)
	}
	_, ok := m.Names[id]
	return ok
}

// MaxBlockID mocks the MaxBlockID method.
func (m *MockMaterialRegistry) MaxBlockID() int {
	if m.MaxBlockIDFunc != nil {
		return m.MaxBlockIDFunc()
	}
	return 255
}

// DefaultName mocks the DefaultName method.
func (m *MockMaterialRegistry) DefaultName(id int) string {
	if m.DefaultNameFunc != nil {
		return m.DefaultNameFunc(id)
	}
	return m.Names[id]
}

// IDs returns the keys of Names in ascending order.
func (m *MockMaterialRegistry) IDs() []int {
	ids := make([]int, 0, len(m.Names))
	for id := range m.Names {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Ensure MockMaterialRegistry implements the ports.MaterialRegistry interface.
var _ ports.MaterialRegistry = (*MockMaterialRegistry)(nil)
