// Package aliasstore holds one version of the alias dictionary: the
// name -> type registry and the per-id display names derived from it.
package aliasstore

import (
	"slices"
	"strconv"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
)

// AnythingName is the display name of the "any id" placeholder.
const AnythingName = "anything"

// Store is not safe for concurrent mutation. Published stores are treated as
// read-only and changed only through Clone.
type Store struct {
	aliases    map[string]*itemtype.TypeSet
	names      map[int]*MaterialName
	item       Noun
	block      Noun
	variations alias.Variations
}

// New returns an empty store with the default item/block nouns.
func New() *Store {
	return &Store{
		aliases:    make(map[string]*itemtype.TypeSet),
		names:      make(map[int]*MaterialName),
		item:       Noun{Singular: "item", Plural: "items"},
		block:      Noun{Singular: "block", Plural: "blocks"},
		variations: alias.Variations{},
	}
}

// Lookup returns the stored type for a normalized name. The result is shared;
// callers that hand it out must clone it.
func (s *Store) Lookup(name string) (*itemtype.TypeSet, bool) {
	t, ok := s.aliases[name]
	return t, ok
}

// Put stores t under a normalized name.
func (s *Store) Put(name string, t *itemtype.TypeSet) {
	s.aliases[name] = t
}

func (s *Store) Len() int {
	return len(s.aliases)
}

// Names returns every registered name, sorted.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.aliases))
	for n := range s.aliases {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func (s *Store) ItemNoun() Noun      { return s.item }
func (s *Store) BlockNoun() Noun     { return s.block }
func (s *Store) SetItemNoun(n Noun)  { s.item = n }
func (s *Store) SetBlockNoun(n Noun) { s.block = n }

// Variations returns the variation groups loaded with this store.
func (s *Store) Variations() alias.Variations {
	return s.variations
}

// SetVariations records the variation groups used to build this store.
func (s *Store) SetVariations(v alias.Variations) {
	s.variations = v
}

// RecordName updates the display name of r.ID after an alias naming exactly
// that range was registered.
func (s *Store) RecordName(r itemtype.RangeValue, n Noun) {
	m := s.names[r.ID]
	if r.Unrestricted() {
		switch {
		case m == nil:
			s.names[r.ID] = newMaterialName(r.ID, n)
		case m.placeholder():
			m.Default = n
		default:
			m.SetOverride(-1, -1, n)
		}
		return
	}
	if m == nil {
		id := strconv.Itoa(r.ID)
		m = newMaterialName(r.ID, Noun{Singular: id, Plural: id})
		s.names[r.ID] = m
	}
	m.SetOverride(r.SubMin, r.SubMax, n)
}

// MaterialName returns the display-name entry for id.
func (s *Store) MaterialName(id int) (*MaterialName, bool) {
	m, ok := s.names[id]
	return m, ok
}

// DisplayName returns the human name of a range, or the bare id when the id
// has no entry.
func (s *Store) DisplayName(id, min, max int, plural bool) string {
	m, ok := s.names[id]
	if !ok {
		return strconv.Itoa(id)
	}
	return m.Name(min, max, plural)
}

// DebugName is DisplayName with the sub-range spelled out.
func (s *Store) DebugName(id, min, max int, plural bool, maxBlockID int) string {
	m, ok := s.names[id]
	if !ok {
		return bareDebugName(id, min, max)
	}
	return m.DebugName(min, max, plural, maxBlockID)
}

// AddMissingMaterialNames gives every id in ids that still has no entry the
// name produced by defaultName, and names the any-id placeholder. It returns
// the ids that were missing.
func (s *Store) AddMissingMaterialNames(ids []int, defaultName func(int) string) []int {
	var missing []int
	for _, id := range ids {
		if _, ok := s.names[id]; ok {
			continue
		}
		name := defaultName(id)
		if name == "" {
			name = strconv.Itoa(id)
		}
		s.names[id] = newMaterialName(id, Noun{Singular: name, Plural: name})
		missing = append(missing, id)
	}
	if _, ok := s.names[itemtype.Any]; !ok {
		s.names[itemtype.Any] = newMaterialName(itemtype.Any, Noun{Singular: AnythingName, Plural: AnythingName})
	}
	return missing
}

// Clone returns an independent copy. Names that shared one TypeSet keep
// sharing one copy, and flavor links point at the copied instances.
func (s *Store) Clone() *Store {
	c := &Store{
		aliases:    make(map[string]*itemtype.TypeSet, len(s.aliases)),
		names:      make(map[int]*MaterialName, len(s.names)),
		item:       s.item,
		block:      s.block,
		variations: make(alias.Variations, len(s.variations)),
	}
	copies := newTypeCopier()
	for name, t := range s.aliases {
		c.aliases[name] = copies.copy(t)
	}
	for id, m := range s.names {
		mc := newMaterialName(m.ID, m.Default)
		for k, v := range m.overrides {
			mc.overrides[k] = v
		}
		c.names[id] = mc
	}
	for group, variants := range s.variations {
		c.variations[group] = slices.Clone(variants)
	}
	return c
}
