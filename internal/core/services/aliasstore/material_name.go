package aliasstore

import "strconv"

// Noun is a singular/plural pair.
type Noun struct {
	Singular string
	Plural   string
}

func (n Noun) pick(plural bool) string {
	if plural {
		return n.Plural
	}
	return n.Singular
}

type subRange struct{ min, max int }

// MaterialName holds the display names of one id, with optional overrides
// for specific sub-value ranges.
type MaterialName struct {
	ID        int
	Default   Noun
	overrides map[subRange]Noun
}

func newMaterialName(id int, n Noun) *MaterialName {
	return &MaterialName{ID: id, Default: n, overrides: make(map[subRange]Noun)}
}

// placeholder reports whether the default name is still the bare numeric id.
func (m *MaterialName) placeholder() bool {
	id := strconv.Itoa(m.ID)
	return m.Default.Singular == id && m.Default.Plural == id
}

// SetOverride names the range [min, max] of this id. The first name given
// for a range wins.
func (m *MaterialName) SetOverride(min, max int, n Noun) {
	key := subRange{min, max}
	if _, ok := m.overrides[key]; ok {
		return
	}
	m.overrides[key] = n
}

// Override returns the name registered for exactly [min, max].
func (m *MaterialName) Override(min, max int) (Noun, bool) {
	n, ok := m.overrides[subRange{min, max}]
	return n, ok
}

// Name returns the display name for [min, max].
func (m *MaterialName) Name(min, max int, plural bool) string {
	if !(min == -1 && max == -1) {
		if n, ok := m.Override(min, max); ok {
			return n.pick(plural)
		}
	}
	if unrestrictedOrZero(min, max) {
		return m.Default.pick(plural)
	}
	if n, ok := m.Override(-1, -1); ok {
		return n.pick(plural)
	}
	return m.Default.pick(plural)
}

// DebugName returns the display name with the range spelled out when no
// override covers it. maxBlockID decides the implicit upper bound of an open range.
func (m *MaterialName) DebugName(min, max int, plural bool, maxBlockID int) string {
	if !(min == -1 && max == -1) {
		if n, ok := m.Override(min, max); ok {
			return n.pick(plural)
		}
	}
	if unrestrictedOrZero(min, max) {
		return m.Default.pick(plural)
	}
	name := m.Default.pick(plural) + ":" + strconv.Itoa(max0(min))
	if min == max {
		return name
	}
	upper := max
	if upper == -1 {
		upper = 32767
		if m.ID <= maxBlockID {
			upper = 15
		}
	}
	return name + "-" + strconv.Itoa(upper)
}

func unrestrictedOrZero(min, max int) bool {
	return (min == -1 && max == -1) || (min == 0 && max == 0)
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// bareDebugName renders an id without a table entry.
func bareDebugName(id, min, max int) string {
	s := strconv.Itoa(id)
	if min == -1 && max == -1 {
		return s
	}
	s += ":" + strconv.Itoa(max0(min))
	if min == max {
		return s
	}
	return s + "-" + strconv.Itoa(max)
}
