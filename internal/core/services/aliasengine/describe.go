package aliasengine

import (
	"slices"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/services/aliasstore"
)

// describe renders t in words, e.g. "5 of every oak log or spruce log of sharpness 3".
func describe(store *aliasstore.Store, t *itemtype.TypeSet) string {
	if t == nil {
		return ""
	}
	every := t.All && t.Len() > 0
	plural := every || t.Amount != 1

	var b strings.Builder
	switch {
	case every && t.Amount != 1:
		b.WriteString(strconv.Itoa(t.Amount) + " of every ")
	case every:
		b.WriteString("every ")
	case t.Amount != 1:
		b.WriteString(strconv.Itoa(t.Amount) + " ")
	}

	if t.Len() == 0 {
		b.WriteString(aliasstore.AnythingName)
	} else {
		names := make([]string, 0, t.Len())
		for _, r := range t.Ranges() {
			names = append(names, store.DisplayName(r.ID, r.SubMin, r.SubMax, plural))
		}
		b.WriteString(strings.Join(names, " or "))
	}

	if len(t.Enchantments) > 0 {
		kinds := make([]string, 0, len(t.Enchantments))
		for k := range t.Enchantments {
			kinds = append(kinds, k)
		}
		slices.Sort(kinds)
		for i, k := range kinds {
			kinds[i] = k + " " + strconv.Itoa(t.Enchantments[k])
		}
		b.WriteString(" of " + strings.Join(kinds, ", "))
	}
	return b.String()
}
