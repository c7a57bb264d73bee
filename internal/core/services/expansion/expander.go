package expansion

import (
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

const (
	defaultMaxDepth      = 64
	defaultMaxExpansions = 10000
	defaultMaxVisits     = 100000
)

// Expander turns an alias template using the optional, alternation and
// variation syntax into the concrete names it stands for.
type Expander struct {
	reporter      ports.Reporter
	maxDepth      int
	maxExpansions int
	maxVisits     int
}

// NewExpander creates an Expander reporting grammar problems to reporter.
// It panics if reporter is nil.
func NewExpander(reporter ports.Reporter) *Expander {
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	return &Expander{
		reporter:      reporter,
		maxDepth:      defaultMaxDepth,
		maxExpansions: defaultMaxExpansions,
		maxVisits:     defaultMaxVisits,
	}
}

// Expand returns every name template expands to, paired with its type.
// Names keep the order in which they were first produced; a later branch
// yielding the same name replaces its type in place.
func (e *Expander) Expand(template string, value *itemtype.TypeSet, variations alias.Variations) []alias.Entry {
	run := &expansionRun{
		Expander:   e,
		source:     template,
		variations: variations,
		out:        newOrderedEntries(),
		done:       make(map[visitKey][]alias.Entry),
	}
	run.expand(template, value, 0)
	return run.out.entries()
}

// visitKey identifies a partially expanded template. Two branches reaching
// the same text with the same type produce the same names.
type visitKey struct {
	tpl   string
	value *itemtype.TypeSet
}

type expansionRun struct {
	*Expander
	source     string
	variations alias.Variations
	out        *orderedEntries
	done       map[visitKey][]alias.Entry
	visits     int
	overflow   bool
}

// expand writes the names tpl produces to r.out and returns them, last type
// winning per name.
func (r *expansionRun) expand(tpl string, value *itemtype.TypeSet, depth int) []alias.Entry {
	if r.overflow {
		return nil
	}
	key := visitKey{tpl: tpl, value: value}
	if names, ok := r.done[key]; ok {
		r.out.putAll(names)
		return names
	}
	r.visits++
	if r.visits > r.maxVisits {
		r.overflow = true
		r.fail(diagnostic.SyntaxError, "'%s' is too complex to expand", r.source)
		return nil
	}
	if depth > r.maxDepth {
		r.fail(diagnostic.SyntaxError, "'%s' is nested too deeply", r.source)
		return nil
	}

	names := r.expandOnce(tpl, value, depth)
	r.done[key] = names
	return names
}

func (r *expansionRun) expandOnce(tpl string, value *itemtype.TypeSet, depth int) []alias.Entry {
	if s, ok := findSegment(tpl, '[', ']'); ok {
		sub := newOrderedEntries()
		sub.putAll(r.expand(s.replace(s.inner), value, depth+1))
		sub.putAll(r.expand(collapseDoubleSpaces(s.replace("")), value, depth+1))
		return sub.entries()
	}

	if s, ok := findSegment(tpl, '(', ')'); ok {
		alternatives := strings.Split(s.inner, "|")
		if len(alternatives) == 1 {
			r.fail(diagnostic.SyntaxError, "brackets in '%s' contain a single option; use square brackets for an optional part", r.source)
		}
		sub := newOrderedEntries()
		for _, alt := range alternatives {
			next := s.replace(alt)
			if alt == "" {
				next = collapseDoubleSpaces(next)
			}
			sub.putAll(r.expand(next, value, depth+1))
		}
		return sub.entries()
	}

	if s, ok := findVariation(tpl); ok {
		return r.expandVariation(s, value, depth)
	}

	if r.out.len() >= r.maxExpansions && !r.out.has(tpl) {
		r.overflow = true
		r.fail(diagnostic.SyntaxError, "'%s' expands to more than %d names", r.source, r.maxExpansions)
		return nil
	}
	r.out.put(tpl, value)
	return []alias.Entry{{Name: tpl, Type: value}}
}

func (r *expansionRun) expandVariation(s segment, value *itemtype.TypeSet, depth int) []alias.Entry {
	variants, ok := r.variations[s.inner]
	if !ok {
		r.fail(diagnostic.UnknownVariation, "unknown variation {%s} in '%s'", s.inner, r.source)
		return nil
	}

	sub := newOrderedEntries()
	removed := collapseDoubleSpaces(s.replace(""))
	hasDefault := false
	for _, v := range variants {
		var next string
		if strings.EqualFold(v.Key, alias.DefaultVariant) {
			hasDefault = true
			next = removed
		} else {
			next = s.replace(v.Key)
		}
		t, ok := v.Type.Intersection(value)
		if !ok {
			r.reporter.Report(diagnostic.Warning(diagnostic.EmptyAliasBranch, r.source,
				"'%s' results in an empty alias (i.e. it doesn't map to any id/data)", next))
			continue
		}
		sub.putAll(r.expand(next, t, depth+1))
	}
	if !hasDefault {
		sub.putAll(r.expand(removed, value, depth+1))
	}
	return sub.entries()
}

func (r *expansionRun) fail(kind diagnostic.Kind, format string, args ...any) {
	r.reporter.Report(diagnostic.Failure(kind, r.source, format, args...))
}

func collapseDoubleSpaces(s string) string {
	return strings.ReplaceAll(s, "  ", " ")
}
