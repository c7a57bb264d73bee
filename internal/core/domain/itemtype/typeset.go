package itemtype

import (
	"maps"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// TypeSet is an ordered, duplicate-free set of ranges plus the modifiers a
// query may carry. Item and block flavors are alternative TypeSets used when a
// caller wants the item or block reading of an ambiguous name.
type TypeSet struct {
	ranges *linkedhashset.Set
	item   *TypeSet
	block  *TypeSet

	Amount       int
	All          bool
	Enchantments map[string]int
}

var everything = &TypeSet{ranges: linkedhashset.New(), Amount: 1, All: true}

// Everything returns the shared universal wildcard. It must not be mutated;
// use Clone to obtain a private copy.
func Everything() *TypeSet {
	return everything
}

// New returns an empty TypeSet with an amount of one.
func New(ranges ...RangeValue) *TypeSet {
	t := &TypeSet{ranges: linkedhashset.New(), Amount: 1}
	t.Add(ranges...)
	return t
}

// IsEverything reports whether t matches every object.
func (t *TypeSet) IsEverything() bool {
	return t.All && t.ranges.Size() == 0
}

// Add appends ranges that are not already present.
func (t *TypeSet) Add(ranges ...RangeValue) {
	if t == everything {
		return
	}
	for _, r := range ranges {
		t.ranges.Add(r)
	}
}

// Ranges returns the ranges in insertion order.
func (t *TypeSet) Ranges() []RangeValue {
	values := t.ranges.Values()
	out := make([]RangeValue, 0, len(values))
	for _, v := range values {
		out = append(out, v.(RangeValue))
	}
	return out
}

func (t *TypeSet) Len() int {
	return t.ranges.Size()
}

func (t *TypeSet) Item() *TypeSet  { return t.item }
func (t *TypeSet) Block() *TypeSet { return t.block }
func (t *TypeSet) HasItem() bool   { return t.item != nil }
func (t *TypeSet) HasBlock() bool  { return t.block != nil }

// SetItem links f as the item flavor of t. Links that would make the flavor
// graph cyclic are ignored and reported as false.
func (t *TypeSet) SetItem(f *TypeSet) bool {
	if t == everything || (f != nil && f.reaches(t)) {
		return false
	}
	t.item = f
	return true
}

// SetBlock links f as the block flavor of t, with the same cycle rule as SetItem.
func (t *TypeSet) SetBlock(f *TypeSet) bool {
	if t == everything || (f != nil && f.reaches(t)) {
		return false
	}
	t.block = f
	return true
}

func (t *TypeSet) reaches(target *TypeSet) bool {
	if t == nil {
		return false
	}
	if t == target {
		return true
	}
	return t.item.reaches(target) || t.block.reaches(target)
}

// AddEnchantments merges e into the enchantment map, later levels winning.
func (t *TypeSet) AddEnchantments(e map[string]int) {
	if len(e) == 0 || t == everything {
		return
	}
	if t.Enchantments == nil {
		t.Enchantments = make(map[string]int, len(e))
	}
	maps.Copy(t.Enchantments, e)
}

// Clone returns a deep copy of t, flavors included.
func (t *TypeSet) Clone() *TypeSet {
	if t == nil {
		return nil
	}
	c := t.CloneWithoutFlavors()
	c.item = t.item.Clone()
	c.block = t.block.Clone()
	return c
}

// Intersection returns the ranges shared by t and o. The wildcard is the
// identity. ok is false when nothing overlaps.
func (t *TypeSet) Intersection(o *TypeSet) (*TypeSet, bool) {
	if t.IsEverything() {
		return o.Clone(), true
	}
	if o.IsEverything() {
		return t.Clone(), true
	}
	out := New()
	for _, a := range t.Ranges() {
		for _, b := range o.Ranges() {
			if r, ok := a.Intersect(b); ok {
				out.Add(r)
			}
		}
	}
	if out.Len() == 0 {
		return nil, false
	}
	return out, true
}

// Equal compares ranges, modifiers and flavors.
func (t *TypeSet) Equal(o *TypeSet) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Amount != o.Amount || t.All != o.All || !maps.Equal(t.Enchantments, o.Enchantments) {
		return false
	}
	a, b := t.Ranges(), o.Ranges()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return t.item.Equal(o.item) && t.block.Equal(o.block)
}

// ValueString renders the ranges in the alias value grammar so that the
// result can be parsed back into an equivalent set.
func (t *TypeSet) ValueString() string {
	if t.IsEverything() {
		return "*"
	}
	parts := make([]string, 0, t.Len())
	for _, r := range t.Ranges() {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ", ")
}

// CloneWithoutFlavors copies t's ranges and modifiers but not its flavor links.
func (t *TypeSet) CloneWithoutFlavors() *TypeSet {
	c := &TypeSet{
		ranges: linkedhashset.New(t.ranges.Values()...),
		Amount: t.Amount,
		All:    t.All,
	}
	if t.Enchantments != nil {
		c.Enchantments = maps.Clone(t.Enchantments)
	}
	return c
}
