package alias

import "github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"

// Entry is one concrete alias name and the type it resolves to.
type Entry struct {
	Name string
	Type *itemtype.TypeSet
}

// Variant is one choice inside a variation group. A Key of DefaultVariant
// stands for "no text" at the variation's position.
type Variant struct {
	Key  string
	Type *itemtype.TypeSet
}

// DefaultVariant is the reserved key of a variation's empty choice.
const DefaultVariant = "{default}"

// Variations maps a variation group name to its ordered variants.
type Variations map[string][]Variant

// Add appends a variant to group, replacing an existing one with the same key.
func (v Variations) Add(group, key string, t *itemtype.TypeSet) {
	for i, existing := range v[group] {
		if existing.Key == key {
			v[group][i].Type = t
			return
		}
	}
	v[group] = append(v[group], Variant{Key: key, Type: t})
}
