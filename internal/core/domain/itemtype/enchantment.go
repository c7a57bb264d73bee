package itemtype

// Enchantment is one parsed enchantment clause, e.g. "sharpness 3".
type Enchantment struct {
	Kind  string
	Level int
}

// EnchantmentMap folds a list into the map form stored on a TypeSet.
func EnchantmentMap(list []Enchantment) map[string]int {
	m := make(map[string]int, len(list))
	for _, e := range list {
		m[e.Kind] = e.Level
	}
	return m
}
