package testutil

import (
	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// MockAliasService is a mock implementation of the ports.AliasService interface.
// Methods without a func return empty results.
type MockAliasService struct {
	ReloadFunc                  func() (ports.LoadResult, error)
	ResetFunc                   func()
	RegisterAliasDefinitionFunc func(name, value string, variations alias.Variations) int
	ParseAliasValueFunc         func(value string) (*itemtype.TypeSet, error)
	ParseQueryFunc              func(text string) (*itemtype.TypeSet, error)
	ExpandFunc                  func(template, value string) ([]alias.Entry, error)
	DisplayNameFunc             func(id, subMin, subMax int, plural bool) string
	DebugNameFunc               func(id, subMin, subMax int, plural bool) string
	DescribeFunc                func(t *itemtype.TypeSet) string
	AliasesFunc                 func() []alias.Entry
	SnapshotIDFunc              func() string

	ReloadCalls   int
	RegisterCalls int
}

func (m *MockAliasService) Reload() (ports.LoadResult, error) {
	m.ReloadCalls++
	if m.ReloadFunc != nil {
		return m.ReloadFunc()
	}
	return ports.LoadResult{}, nil
}

func (m *MockAliasService) Reset() {
	if m.ResetFunc != nil {
		m.ResetFunc()
	}
}

func (m *MockAliasService) RegisterAliasDefinition(name, value string, variations alias.Variations) int {
	m.RegisterCalls++
	if m.RegisterAliasDefinitionFunc != nil {
		return m.RegisterAliasDefinitionFunc(name, value, variations)
	}
	return 0
}

func (m *MockAliasService) ParseAliasValue(value string) (*itemtype.TypeSet, error) {
	if m.ParseAliasValueFunc != nil {
		return m.ParseAliasValueFunc(value)
	}
	return itemtype.New(), nil
}

func (m *MockAliasService) ParseQuery(text string) (*itemtype.TypeSet, error) {
	if m.ParseQueryFunc != nil {
		return m.ParseQueryFunc(text)
	}
	return itemtype.New(), nil
}

func (m *MockAliasService) Expand(template, value string) ([]alias.Entry, error) {
	if m.ExpandFunc != nil {
		return m.ExpandFunc(template, value)
	}
	return nil, nil
}

func (m *MockAliasService) DisplayName(id, subMin, subMax int, plural bool) string {
	if m.DisplayNameFunc != nil {
		return m.DisplayNameFunc(id, subMin, subMax, plural)
	}
	return ""
}

func (m *MockAliasService) DebugName(id, subMin, subMax int, plural bool) string {
	if m.DebugNameFunc != nil {
		return m.DebugNameFunc(id, subMin, subMax, plural)
	}
	return ""
}

func (m *MockAliasService) Describe(t *itemtype.TypeSet) string {
	if m.DescribeFunc != nil {
		return m.DescribeFunc(t)
	}
	return ""
}

func (m *MockAliasService) Aliases() []alias.Entry {
	if m.AliasesFunc != nil {
		return m.AliasesFunc()
	}
	return nil
}

func (m *MockAliasService) SnapshotID() string {
	if m.SnapshotIDFunc != nil {
		return m.SnapshotIDFunc()
	}
	return "snapshot"
}

// Ensure MockAliasService implements the ports.AliasService interface.
var _ ports.AliasService = (*MockAliasService)(nil)
