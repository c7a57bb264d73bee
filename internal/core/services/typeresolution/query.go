package typeresolution

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
)

// queryGrammar holds the localized patterns of the query language.
type queryGrammar struct {
	amountOfEvery *regexp.Regexp
	amountOf      *regexp.Regexp
	every         *regexp.Regexp
	enchantSplit  *regexp.Regexp
	enchantOf     *regexp.Regexp
}

func newQueryGrammar(lang ports.Language) queryGrammar {
	kw := func(k ports.Keyword) string {
		return regexp.QuoteMeta(alias.Lower(lang.Keyword(k)))
	}
	return queryGrammar{
		amountOfEvery: regexp.MustCompile(`(?i)^(\d+) ` + kw(ports.KeywordOf) + ` ` + kw(ports.KeywordEvery) + ` (.+)$`),
		amountOf:      regexp.MustCompile(`(?i)^(\d+) (?:` + kw(ports.KeywordOf) + ` )?(.+)$`),
		every:         regexp.MustCompile(`(?i)^` + kw(ports.KeywordEvery) + ` (.+)$`),
		enchantSplit:  regexp.MustCompile(`(?i)\s*(?:,|\b` + kw(ports.KeywordAnd) + `\b)\s*`),
		enchantOf:     regexp.MustCompile(`(?i) ` + kw(ports.KeywordEnchantmentOf) + ` `),
	}
}

// ParseQuery parses free-form text such as "5 of every oak log" or
// "a diamond sword of sharpness 3". The result is a fresh TypeSet.
func (p *Parser) ParseQuery(text string) (*itemtype.TypeSet, error) {
	return p.ParseQueryReporting(text, p.env.Reporter)
}

// ParseQueryReporting is ParseQuery with warnings sent to r instead of the
// parser's reporter.
func (p *Parser) ParseQueryReporting(text string, r ports.Reporter) (*itemtype.TypeSet, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, diagnostic.Errorf(diagnostic.EmptyString, "empty string")
	}

	t := itemtype.New()
	rest, err := p.parseQuantifiers(text, t)
	if err != nil {
		return nil, err
	}

	if withEnchantments, ok := p.parseEnchanted(rest, t, r); ok {
		return withEnchantments, nil
	}

	wildcard, err := p.resolveList(rest, t, false, r)
	if err != nil {
		return nil, err
	}
	if wildcard {
		return everythingLike(t), nil
	}
	if t.Len() == 0 {
		return nil, diagnostic.Errorf(diagnostic.InvalidItemType, "'%s' is not an item type", text)
	}
	return t, nil
}

func (p *Parser) parseQuantifiers(text string, t *itemtype.TypeSet) (string, error) {
	if m := p.query.amountOfEvery.FindStringSubmatch(text); m != nil {
		amount, err := parseAmount(m[1])
		if err != nil {
			return "", err
		}
		t.Amount, t.All = amount, true
		return m[2], nil
	}
	if m := p.query.amountOf.FindStringSubmatch(text); m != nil {
		amount, err := parseAmount(m[1])
		if err != nil {
			return "", err
		}
		t.Amount = amount
		return m[2], nil
	}
	if m := p.query.every.FindStringSubmatch(text); m != nil {
		t.All = true
		return m[1], nil
	}
	if rest, ok := p.env.Language.StripIndefiniteArticle(text); ok {
		t.Amount = 1
		return rest, nil
	}
	return text, nil
}

// parseEnchanted tries every " of " split from left to right: the left part
// must resolve to at least one range and the right part must be a list of
// enchantments. Failed attempts report nothing.
func (p *Parser) parseEnchanted(text string, t *itemtype.TypeSet, r ports.Reporter) (*itemtype.TypeSet, bool) {
	for from := 0; from < len(text); {
		loc := p.query.enchantOf.FindStringIndex(text[from:])
		if loc == nil {
			break
		}
		c, end := from+loc[0], from+loc[1]
		from = c + 1

		attempt := t.Clone()
		wildcard, err := p.resolveList(text[:c], attempt, false, diagnostic.Discard)
		if err != nil || (!wildcard && attempt.Len() == 0) {
			continue
		}
		if wildcard {
			attempt = everythingLike(t)
		}
		enchantments, ok := p.parseEnchantmentList(text[end:])
		if !ok {
			continue
		}
		attempt.AddEnchantments(itemtype.EnchantmentMap(enchantments))
		p.reportDiscouragedIDs(text[:c], r)
		return attempt, true
	}
	return nil, false
}

func (p *Parser) parseEnchantmentList(s string) ([]itemtype.Enchantment, bool) {
	var out []itemtype.Enchantment
	for _, tok := range p.query.enchantSplit.Split(strings.TrimSpace(s), -1) {
		e, ok := p.env.Enchantments.Parse(tok)
		if !ok {
			return nil, false
		}
		out = append(out, e)
	}
	return out, len(out) > 0
}

// reportDiscouragedIDs repeats the id warnings of an accepted speculative parse.
func (p *Parser) reportDiscouragedIDs(list string, r ports.Reporter) {
	_, _ = p.resolveList(list, itemtype.New(), false, r)
}

// everythingLike returns a fresh wildcard carrying the amount parsed into t.
func everythingLike(t *itemtype.TypeSet) *itemtype.TypeSet {
	w := itemtype.Everything().Clone()
	w.Amount = t.Amount
	return w
}

func parseAmount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, diagnostic.Errorf(diagnostic.InvalidAmount, "'%s' is not a valid amount", s)
	}
	return n, nil
}
