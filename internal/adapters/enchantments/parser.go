// Package enchantments parses enchantment clauses such as "sharpness 5" or
// "bane of arthropods IV".
package enchantments

import (
	"strconv"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// MaxLevel bounds the level accepted in a clause.
const MaxLevel = 32767

// Known maps every accepted spelling to its canonical enchantment kind.
var Known = map[string]string{
	"protection":            "protection",
	"fire protection":       "fire protection",
	"feather falling":       "feather falling",
	"blast protection":      "blast protection",
	"projectile protection": "projectile protection",
	"respiration":           "respiration",
	"aqua affinity":         "aqua affinity",
	"thorns":                "thorns",
	"sharpness":             "sharpness",
	"smite":                 "smite",
	"bane of arthropods":    "bane of arthropods",
	"knockback":             "knockback",
	"fire aspect":           "fire aspect",
	"looting":               "looting",
	"efficiency":            "efficiency",
	"silk touch":            "silk touch",
	"unbreaking":            "unbreaking",
	"fortune":               "fortune",
	"power":                 "power",
	"punch":                 "punch",
	"flame":                 "flame",
	"infinity":              "infinity",
	"luck of the sea":       "luck of the sea",
	"lure":                  "lure",
	"depth strider":         "depth strider",
	"frost walker":          "frost walker",
	"mending":               "mending",
}

var romanDigits = map[byte]int{'i': 1, 'v': 5, 'x': 10, 'l': 50, 'c': 100}

// Parser implements ports.EnchantmentParser over a name table.
type Parser struct {
	names map[string]string
}

// NewParser returns a parser for the Known enchantments plus extra spellings.
func NewParser(extra map[string]string) ports.EnchantmentParser {
	names := make(map[string]string, len(Known)+len(extra))
	for k, v := range Known {
		names[k] = v
	}
	for k, v := range extra {
		names[alias.Normalize(k)] = alias.Normalize(v)
	}
	return &Parser{names: names}
}

// Parse reads "<name> [level]". A missing level is 1; levels may be arabic or
// roman numerals.
func (p *Parser) Parse(token string) (itemtype.Enchantment, bool) {
	text := alias.Normalize(token)
	if text == "" {
		return itemtype.Enchantment{}, false
	}
	if kind, ok := p.names[text]; ok {
		return itemtype.Enchantment{Kind: kind, Level: 1}, true
	}
	i := strings.LastIndexByte(text, ' ')
	if i < 0 {
		return itemtype.Enchantment{}, false
	}
	kind, ok := p.names[text[:i]]
	if !ok {
		return itemtype.Enchantment{}, false
	}
	level, ok := parseLevel(text[i+1:])
	if !ok {
		return itemtype.Enchantment{}, false
	}
	return itemtype.Enchantment{Kind: kind, Level: level}, true
}

func parseLevel(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 1 && n <= MaxLevel
	}
	return parseRoman(s)
}

func parseRoman(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	total := 0
	for i := 0; i < len(s); i++ {
		v, ok := romanDigits[s[i]]
		if !ok {
			return 0, false
		}
		if i+1 < len(s) && romanDigits[s[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}
	if total < 1 || toRoman(total) != s {
		return 0, false
	}
	return total, true
}

func toRoman(n int) string {
	values := []int{100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"c", "xc", "l", "xl", "x", "ix", "v", "iv", "i"}
	var b strings.Builder
	for i, v := range values {
		for n >= v {
			b.WriteString(symbols[i])
			n -= v
		}
	}
	return b.String()
}
