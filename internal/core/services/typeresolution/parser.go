// Package typeresolution turns alias values, definitions and query text into
// TypeSets using the names held by an aliasstore.Store.
package typeresolution

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/core/services/aliasstore"
	"github.com/AntonioJCosta/itemalias/internal/core/services/expansion"
)

// Env groups the collaborators a Parser needs. It is shared by every
// snapshot of the dictionary.
type Env struct {
	Materials    ports.MaterialRegistry
	Language     ports.Language
	Enchantments ports.EnchantmentParser
	Reporter     ports.Reporter
}

// Validate panics on missing collaborators, mirroring the service constructors.
func (e Env) Validate() {
	switch {
	case e.Materials == nil:
		panic("materials cannot be nil")
	case e.Language == nil:
		panic("language cannot be nil")
	case e.Enchantments == nil:
		panic("enchantments cannot be nil")
	case e.Reporter == nil:
		panic("reporter cannot be nil")
	}
}

var (
	listSeparator = regexp.MustCompile(`\s*,\s*`)
	dataPattern   = regexp.MustCompile(`^(\d+)(?:-(\d+))?$`)
	leadingNumber = regexp.MustCompile(`^\d+ `)
)

// Parser resolves text against one store. Registration mutates the store;
// every other method only reads it.
type Parser struct {
	env      Env
	store    *aliasstore.Store
	expander *expansion.Expander
	query    queryGrammar
}

// NewParser binds env to store.
func NewParser(store *aliasstore.Store, env Env) *Parser {
	env.Validate()
	if store == nil {
		panic("store cannot be nil")
	}
	return &Parser{
		env:      env,
		store:    store,
		expander: expansion.NewExpander(env.Reporter),
		query:    newQueryGrammar(env.Language),
	}
}

// Store returns the store the parser reads.
func (p *Parser) Store() *aliasstore.Store {
	return p.store
}

// ParseAlias parses an alias value: "*" or a comma-separated list of
// tokens. Numeric ids are accepted without a discouragement warning.
func (p *Parser) ParseAlias(value string) (*itemtype.TypeSet, error) {
	if value == "" {
		return nil, diagnostic.Errorf(diagnostic.EmptyString, "empty string")
	}
	if value == "*" {
		return itemtype.Everything(), nil
	}
	t := itemtype.New()
	wildcard, err := p.resolveList(value, t, true, p.env.Reporter)
	if err != nil {
		return nil, err
	}
	if wildcard {
		return itemtype.Everything(), nil
	}
	if t.Len() == 0 {
		return nil, diagnostic.Errorf(diagnostic.InvalidItemType, "'%s' is not an item type", value)
	}
	return t, nil
}

// resolveList adds the ranges of every token in list to into. wildcard is
// true when a token names a "*" alias, which absorbs the rest of the list.
func (p *Parser) resolveList(list string, into *itemtype.TypeSet, isAlias bool, r ports.Reporter) (bool, error) {
	wildcard := false
	for _, tok := range listSeparator.Split(strings.TrimSpace(list), -1) {
		w, err := p.resolveToken(tok, into, isAlias, r)
		if err != nil {
			return false, err
		}
		wildcard = wildcard || w
	}
	return wildcard, nil
}

// resolveToken resolves one "name[:data]" or "id[:data]" token into into.
func (p *Parser) resolveToken(tok string, into *itemtype.TypeSet, isAlias bool, r ports.Reporter) (bool, error) {
	name := tok
	var data *itemtype.RangeValue
	if i := strings.IndexByte(tok, ':'); i >= 0 {
		d, err := parseData(tok[i+1:])
		if err != nil {
			return false, err
		}
		name, data = tok[:i], &d
	}
	name = strings.TrimSpace(name)

	if name == "" {
		if data == nil {
			return false, diagnostic.Errorf(diagnostic.InvalidItemType, "'%s' is not an item type", tok)
		}
		into.Add(itemtype.NewSubRange(itemtype.Any, data.SubMin, data.SubMax))
		return false, nil
	}

	if isDigits(name) {
		return false, p.resolveID(tok, name, data, into, isAlias, r)
	}

	found, ok := p.lookup(name)
	if !ok {
		return false, diagnostic.Errorf(diagnostic.InvalidItemType, "'%s' is not an item type", tok)
	}
	if found.IsEverything() {
		if data == nil {
			return true, nil
		}
		into.Add(itemtype.NewSubRange(itemtype.Any, data.SubMin, data.SubMax))
		return false, nil
	}
	for _, rv := range found.Ranges() {
		if data != nil {
			if err := p.checkBlockData(rv.ID, *data, tok); err != nil {
				return false, err
			}
			got, ok := rv.Intersect(*data)
			if !ok {
				return false, diagnostic.Errorf(diagnostic.InvalidRange, "'%s' does not match any data value of '%s'", tok, name)
			}
			rv = got
		}
		into.Add(rv)
	}
	if data == nil {
		if found.HasItem() && !into.HasItem() {
			into.SetItem(found.Item())
		}
		if found.HasBlock() && !into.HasBlock() {
			into.SetBlock(found.Block())
		}
	}
	return false, nil
}

func (p *Parser) resolveID(tok, digits string, data *itemtype.RangeValue, into *itemtype.TypeSet, isAlias bool, r ports.Reporter) error {
	id, err := strconv.Atoi(digits)
	if err != nil || !p.env.Materials.Exists(id) {
		return diagnostic.Errorf(diagnostic.InvalidID, "invalid id %s", digits)
	}
	rv := itemtype.NewRange(id)
	if data != nil {
		if err := p.checkBlockData(id, *data, tok); err != nil {
			return err
		}
		rv.SubMin, rv.SubMax = data.SubMin, data.SubMax
	}
	if !isAlias {
		r.Report(diagnostic.Warning(diagnostic.DiscouragedID, tok,
			"using an id instead of an alias is discouraged and will likely not be supported in future versions; use an alias instead (%s)", tok))
	}
	into.Add(rv)
	return nil
}

func (p *Parser) checkBlockData(id int, data itemtype.RangeValue, tok string) error {
	if id <= p.env.Materials.MaxBlockID() && (data.SubMin > 15 || data.SubMax > 15) {
		return diagnostic.Errorf(diagnostic.InvalidBlockData, "blocks only have data values from 0 to 15 (%s)", tok)
	}
	return nil
}

// lookup returns a private copy of the type registered under name, ignoring
// a leading "any".
func (p *Parser) lookup(name string) (*itemtype.TypeSet, bool) {
	key := alias.Normalize(name)
	if rest, ok := strings.CutPrefix(key, alias.Lower(p.env.Language.Keyword(ports.KeywordAny))+" "); ok {
		key = rest
	}
	t, ok := p.store.Lookup(key)
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// parseData parses "min" or "min-max". An empty string means any sub-value.
func parseData(s string) (itemtype.RangeValue, error) {
	if s == "" {
		return itemtype.NewRange(itemtype.Any), nil
	}
	m := dataPattern.FindStringSubmatch(s)
	if m == nil {
		return itemtype.RangeValue{}, diagnostic.Errorf(diagnostic.InvalidItemData, "'%s' is not a valid item data", s)
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil || lo > itemtype.MaxSubValue {
		return itemtype.RangeValue{}, diagnostic.Errorf(diagnostic.OutOfDataRange, "item data is limited to %d (%s)", itemtype.MaxSubValue, s)
	}
	hi := lo
	if m[2] != "" {
		hi, err = strconv.Atoi(m[2])
		if err != nil || hi > itemtype.MaxSubValue {
			return itemtype.RangeValue{}, diagnostic.Errorf(diagnostic.OutOfDataRange, "item data is limited to %d (%s)", itemtype.MaxSubValue, s)
		}
	}
	if lo > hi {
		return itemtype.RangeValue{}, diagnostic.Errorf(diagnostic.InvalidRange, "'%s' is not a valid range: the first value must not exceed the second", s)
	}
	return itemtype.NewSubRange(itemtype.Any, lo, hi), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
