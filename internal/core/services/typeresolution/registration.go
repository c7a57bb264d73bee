package typeresolution

import (
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/services/aliasstore"
)

// AddAliases parses value, expands the name template and registers every
// resulting singular and plural name. It returns the number of names the
// template expanded to, or 0 when value does not parse.
func (p *Parser) AddAliases(name, value string, variations alias.Variations) int {
	t, err := p.ParseAlias(value)
	if err != nil {
		p.env.Reporter.Report(diagnostic.FromError(err, name))
		return 0
	}
	if t.IsEverything() {
		t = t.Clone()
	}

	expanded := p.expander.Expand(name, t, variations)
	numberReported := false
	for _, e := range expanded {
		singular, plural := p.env.Language.Plural(alias.CollapseSpaces(e.Name))
		lcs, lcp := alias.Lower(singular), alias.Lower(plural)

		if leadingNumber.MatchString(lcs) || leadingNumber.MatchString(lcp) {
			if !numberReported {
				p.env.Reporter.Report(diagnostic.Failure(diagnostic.NameStartsWithNumber, name,
					"aliases must not start with a number, as e.g. '5 stone' would then be ambiguous (%s)", name))
				numberReported = true
			}
			continue
		}

		p.linkFlavors(lcs, lcp, e.Type)
		p.store.Put(lcs, e.Type)
		p.store.Put(lcp, e.Type)

		if e.Type.Len() == 1 {
			p.store.RecordName(e.Type.Ranges()[0], aliasstore.Noun{Singular: singular, Plural: plural})
		}
	}
	return len(expanded)
}

// linkFlavors wires item/block flavors between "<base>" and "<base> item"
// (or "block") names in whichever order they are registered.
func (p *Parser) linkFlavors(lcs, lcp string, t *itemtype.TypeSet) {
	item, block := p.store.ItemNoun(), p.store.BlockNoun()

	if base, ok := p.flavorBase(lcs, lcp, item); ok {
		if base != nil {
			base.SetItem(t)
		}
		return
	}
	if base, ok := p.flavorBase(lcs, lcp, block); ok {
		if base != nil {
			base.SetBlock(t)
		}
		return
	}
	if f, ok := p.flavorOf(lcs, item); ok {
		t.SetItem(f)
	}
	if f, ok := p.flavorOf(lcs, block); ok {
		t.SetBlock(f)
	}
}

// flavorBase reports whether the name ends in the flavor noun, returning the
// registered type of the name without it, or nil if that name is unknown.
func (p *Parser) flavorBase(lcs, lcp string, noun aliasstore.Noun) (*itemtype.TypeSet, bool) {
	if prefix, ok := strings.CutSuffix(lcs, " "+noun.Singular); ok {
		if base, ok := p.store.Lookup(prefix); ok {
			return base, true
		}
		return nil, true
	}
	if prefix, ok := strings.CutSuffix(lcp, " "+noun.Plural); ok {
		if base, ok := p.store.Lookup(prefix); ok {
			return base, true
		}
		return nil, true
	}
	return nil, false
}

func (p *Parser) flavorOf(lcs string, noun aliasstore.Noun) (*itemtype.TypeSet, bool) {
	if f, ok := p.store.Lookup(lcs + " " + noun.Singular); ok {
		return f, true
	}
	if f, ok := p.store.Lookup(lcs + " " + noun.Plural); ok {
		return f, true
	}
	return nil, false
}

// Expand previews the names template expands to without registering them.
func (p *Parser) Expand(template string, value *itemtype.TypeSet, variations alias.Variations) []alias.Entry {
	return p.expander.Expand(template, value, variations)
}
