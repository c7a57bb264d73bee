package ports

import "github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"

// EnchantmentParser turns one enchantment clause into an Enchantment.
type EnchantmentParser interface {
	Parse(token string) (itemtype.Enchantment, bool)
}
