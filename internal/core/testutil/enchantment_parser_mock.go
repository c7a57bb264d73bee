package testutil

import (
	"strconv"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// MockEnchantmentParser is a mock implementation of the ports.EnchantmentParser interface.
// By default it accepts "<name> <level>" where name is in Known.
type MockEnchantmentParser struct {
	Known     []string
	ParseFunc func(token string) (itemtype.Enchantment, bool)
}

// Parse mocks the Parse method.
func (m *MockEnchantmentParser) Parse(token string) (itemtype.Enchantment, bool) {
	if m.ParseFunc != nil {
		return m.ParseFunc(token)
	}
	name, level := strings.TrimSpace(token), 1
	if i := strings.LastIndexByte(name, ' '); i >= 0 {
		if n, err := strconv.Atoi(name[i+1:]); err == nil {
			name, level = name[:i], n
		}
	}
	for _, k := range m.Known {
		if strings.EqualFold(k, name) {
			return itemtype.Enchantment{Kind: k, Level: level}, true
		}
	}
	return itemtype.Enchantment{}, false
}

// Ensure MockEnchantmentParser implements the ports.EnchantmentParser interface.
var _ ports.EnchantmentParser = (*MockEnchantmentParser)(nil)
