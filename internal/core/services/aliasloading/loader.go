package aliasloading

import (
	"log/slog"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/core/services/aliasstore"
	"github.com/AntonioJCosta/itemalias/internal/core/services/typeresolution"
)

// Root entry keys of a definition document.
const (
	KeyAliases = "aliases"
	KeyItem    = "item"
	KeyBlock   = "block"
)

// Loader builds a dictionary from a definition document.
type Loader struct {
	env typeresolution.Env
}

// NewLoader creates a Loader. It panics if a collaborator in env is nil.
func NewLoader(env typeresolution.Env) *Loader {
	env.Validate()
	return &Loader{env: env}
}

// Load processes doc into a new store. Problems in individual entries are
// reported and skipped; the returned store holds everything that loaded.
func (l *Loader) Load(doc alias.Document) (*aliasstore.Store, ports.LoadResult) {
	store := aliasstore.New()
	parser := typeresolution.NewParser(store, l.env)
	result := ports.LoadResult{Source: doc.Source}

	order := l.readSettings(doc.Root, store)
	l.checkUnlistedSections(doc.Root, order)

	variations := alias.Variations{}
	for _, name := range order {
		node, ok := doc.Root.Find(name)
		if !ok {
			l.report(diagnostic.Failure(diagnostic.SectionNotFound, name, "alias section '%s' not found", name))
			continue
		}
		if !node.Section {
			l.report(diagnostic.Failure(diagnostic.NotASection, name, "'%s' is not a section", name))
			continue
		}
		count := l.loadSection(node, parser, variations)
		slog.Debug("Loaded alias section", "section", name, "aliases", count)
		result.Sections = append(result.Sections, ports.SectionCount{Name: name, Count: count})
		result.Aliases += count
	}
	store.SetVariations(variations)

	result.MissingNames = store.AddMissingMaterialNames(l.env.Materials.IDs(), l.env.Materials.DefaultName)
	if len(result.MissingNames) > 0 {
		l.report(diagnostic.Warning(diagnostic.MissingAliases, "",
			"there are aliases missing for the following %d ids: %s", len(result.MissingNames), joinInts(result.MissingNames)))
	}
	slog.Info("Loaded aliases", "aliases", result.Aliases, "sections", len(result.Sections), "source", doc.Source)
	return store, result
}

// readSettings applies the item/block nouns and returns the section order.
func (l *Loader) readSettings(root alias.Node, store *aliasstore.Store) []string {
	var order []string
	for _, n := range root.Children {
		if n.Section {
			continue
		}
		switch n.Key {
		case KeyAliases:
			order = splitSectionList(n.Value)
		case KeyItem:
			store.SetItemNoun(l.noun(n.Value))
		case KeyBlock:
			store.SetBlockNoun(l.noun(n.Value))
		default:
			l.report(diagnostic.Warning(diagnostic.UnexpectedEntry, n.Key, "unexpected entry '%s'", n.Key))
		}
	}
	return order
}

func (l *Loader) noun(value string) aliasstore.Noun {
	singular, plural := l.env.Language.Plural(alias.CollapseSpaces(value))
	return aliasstore.Noun{Singular: alias.Lower(singular), Plural: alias.Lower(plural)}
}

func (l *Loader) checkUnlistedSections(root alias.Node, order []string) {
	listed := make(map[string]bool, len(order))
	for _, name := range order {
		listed[name] = true
	}
	for _, n := range root.Children {
		if n.Section && !listed[n.Key] {
			l.report(diagnostic.Failure(diagnostic.InvalidSection, n.Key,
				"section '%s' is not listed in '%s'", n.Key, KeyAliases))
		}
	}
}

func (l *Loader) loadSection(section alias.Node, parser *typeresolution.Parser, variations alias.Variations) int {
	count := 0
	for _, n := range section.Children {
		if !n.Section {
			count += parser.AddAliases(n.Key, n.Value, variations)
			continue
		}
		if !isVariationName(n.Key) {
			l.report(diagnostic.Failure(diagnostic.UnexpectedNonVariationSection, n.Key,
				"unexpected non-variation section '%s'", n.Key))
			continue
		}
		l.loadVariation(n, parser, variations)
	}
	return count
}

func (l *Loader) loadVariation(n alias.Node, parser *typeresolution.Parser, variations alias.Variations) {
	group := n.Key[1 : len(n.Key)-1]
	if _, ok := variations[group]; !ok {
		variations[group] = nil
	}
	for _, v := range n.Children {
		if v.Section {
			l.report(diagnostic.Failure(diagnostic.UnexpectedSection, v.Key, "unexpected section '%s'", v.Key))
			continue
		}
		t, err := parser.ParseAlias(v.Value)
		if err != nil {
			l.report(diagnostic.FromError(err, v.Key))
			continue
		}
		variations.Add(group, v.Key, t)
	}
}

func (l *Loader) report(d diagnostic.Diagnostic) {
	l.env.Reporter.Report(d)
}

func isVariationName(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "{") && strings.HasSuffix(key, "}")
}
