package expansion

import (
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
)

// segment is a bracketed part of a template; end is exclusive.
type segment struct {
	tpl        string
	start, end int
	inner      string
}

func (s segment) replace(with string) string {
	return s.tpl[:s.start] + with + s.tpl[s.end:]
}

// findSegment finds the leftmost open...close pair with a non-empty body
// that contains neither delimiter, i.e. the innermost group.
func findSegment(tpl string, open, close byte) (segment, bool) {
	for i := 0; i < len(tpl); i++ {
		if tpl[i] != open {
			continue
		}
		for j := i + 1; j < len(tpl); j++ {
			if tpl[j] == open {
				break
			}
			if tpl[j] == close {
				if j > i+1 {
					return segment{tpl: tpl, start: i, end: j + 1, inner: tpl[i+1 : j]}, true
				}
				break
			}
		}
	}
	return segment{}, false
}

// findVariation finds the leftmost {key}, taking the shortest non-empty key.
func findVariation(tpl string) (segment, bool) {
	for i := 0; i < len(tpl); i++ {
		if tpl[i] != '{' {
			continue
		}
		rest := tpl[i+1:]
		if len(rest) < 2 {
			break
		}
		if rest[0] == '\n' {
			continue
		}
		if k := strings.IndexAny(rest[1:], "}\n"); k >= 0 && rest[1+k] == '}' {
			j := i + 1 + 1 + k
			return segment{tpl: tpl, start: i, end: j + 1, inner: tpl[i+1 : j]}, true
		}
	}
	return segment{}, false
}

type orderedEntries struct {
	index map[string]int
	list  []alias.Entry
}

func newOrderedEntries() *orderedEntries {
	return &orderedEntries{index: make(map[string]int)}
}

func (o *orderedEntries) put(name string, t *itemtype.TypeSet) {
	if i, ok := o.index[name]; ok {
		o.list[i].Type = t
		return
	}
	o.index[name] = len(o.list)
	o.list = append(o.list, alias.Entry{Name: name, Type: t})
}

func (o *orderedEntries) putAll(entries []alias.Entry) {
	for _, e := range entries {
		o.put(e.Name, e.Type)
	}
}

func (o *orderedEntries) has(name string) bool {
	_, ok := o.index[name]
	return ok
}

func (o *orderedEntries) len() int {
	return len(o.list)
}

func (o *orderedEntries) entries() []alias.Entry {
	return o.list
}
