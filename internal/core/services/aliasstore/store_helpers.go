package aliasstore

import "github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"

// typeCopier copies a graph of TypeSets, mapping each original to exactly one copy.
type typeCopier struct {
	seen map[*itemtype.TypeSet]*itemtype.TypeSet
}

func newTypeCopier() *typeCopier {
	return &typeCopier{seen: make(map[*itemtype.TypeSet]*itemtype.TypeSet)}
}

func (c *typeCopier) copy(t *itemtype.TypeSet) *itemtype.TypeSet {
	if t == nil {
		return nil
	}
	if t == itemtype.Everything() {
		return t
	}
	if dup, ok := c.seen[t]; ok {
		return dup
	}
	dup := t.CloneWithoutFlavors()
	c.seen[t] = dup
	dup.SetItem(c.copy(t.Item()))
	dup.SetBlock(c.copy(t.Block()))
	return dup
}
