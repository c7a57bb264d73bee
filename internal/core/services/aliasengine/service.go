package aliasengine

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/core/services/aliasloading"
	"github.com/AntonioJCosta/itemalias/internal/core/services/aliasstore"
	"github.com/AntonioJCosta/itemalias/internal/core/services/typeresolution"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultQueryCacheSize is used when NewService is given a size below one.
const DefaultQueryCacheSize = 512

// snapshot is one published, read-only version of the dictionary.
type snapshot struct {
	id      string
	store   *aliasstore.Store
	parser  *typeresolution.Parser
	queries *lru.Cache[string, *itemtype.TypeSet]
}

type service struct {
	source    ports.DefinitionSource
	env       typeresolution.Env
	loader    *aliasloading.Loader
	cacheSize int

	writeMu sync.Mutex
	current atomic.Pointer[snapshot]
}

// NewService creates the alias service with an empty dictionary; call Reload
// to read the definition source. It panics if source or a collaborator in env is nil.
func NewService(source ports.DefinitionSource, env typeresolution.Env, cacheSize int) ports.AliasService {
	if source == nil {
		panic("source cannot be nil")
	}
	env.Validate()
	if cacheSize < 1 {
		cacheSize = DefaultQueryCacheSize
	}
	s := &service{
		source:    source,
		env:       env,
		loader:    aliasloading.NewLoader(env),
		cacheSize: cacheSize,
	}
	s.publish(aliasstore.New())
	return s
}

func (s *service) publish(store *aliasstore.Store) *snapshot {
	cache, err := lru.New[string, *itemtype.TypeSet](s.cacheSize)
	if err != nil {
		// Only reachable with a non-positive size, which NewService rules out.
		panic(fmt.Sprintf("query cache: %v", err))
	}
	snap := &snapshot{
		id:      uuid.NewString(),
		store:   store,
		parser:  typeresolution.NewParser(store, s.env),
		queries: cache,
	}
	s.current.Store(snap)
	return snap
}

func (s *service) snapshot() *snapshot {
	return s.current.Load()
}

// Reload reads the definition source and publishes a freshly built dictionary.
func (s *service) Reload() (ports.LoadResult, error) {
	doc, err := s.source.Load()
	if err != nil {
		slog.Error("Failed to read alias definitions, keeping previous aliases", "source", s.source.Location(), "error", err)
		return ports.LoadResult{}, fmt.Errorf("failed to load aliases from %s: %w", s.source.Location(), err)
	}
	store, result := s.loader.Load(doc)

	s.writeMu.Lock()
	snap := s.publish(store)
	s.writeMu.Unlock()

	result.SnapshotID = snap.id
	slog.Info("Published alias snapshot", "snapshot", snap.id, "aliases", store.Len())
	return result, nil
}

func (s *service) Reset() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.publish(aliasstore.New())
}

// RegisterAliasDefinition registers into a copy of the current dictionary and
// publishes the copy, so readers never observe a partial registration. Nil
// variations mean the groups loaded with the current dictionary.
func (s *service) RegisterAliasDefinition(name, value string, variations alias.Variations) int {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.snapshot().store.Clone()
	if variations == nil {
		variations = next.Variations()
	}
	n := typeresolution.NewParser(next, s.env).AddAliases(name, value, variations)
	s.publish(next)
	return n
}

func (s *service) ParseAliasValue(value string) (*itemtype.TypeSet, error) {
	t, err := s.snapshot().parser.ParseAlias(value)
	if err != nil {
		return nil, err
	}
	return t.Clone(), nil
}

// ParseQuery parses text against the current dictionary. Results that parsed
// without warnings are cached per dictionary version, so a cache hit never
// hides a diagnostic. Callers always get a private copy.
func (s *service) ParseQuery(text string) (*itemtype.TypeSet, error) {
	snap := s.snapshot()
	if cached, ok := snap.queries.Get(text); ok {
		return cached.Clone(), nil
	}
	reporter := &trackingReporter{next: s.env.Reporter}
	t, err := snap.parser.ParseQueryReporting(text, reporter)
	if err != nil {
		return nil, err
	}
	if !reporter.reported {
		snap.queries.Add(text, t.Clone())
	}
	return t, nil
}

func (s *service) Expand(template, value string) ([]alias.Entry, error) {
	snap := s.snapshot()
	t, err := snap.parser.ParseAlias(value)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", value, err)
	}
	entries := snap.parser.Expand(template, t, snap.store.Variations())
	for i := range entries {
		entries[i].Type = entries[i].Type.Clone()
	}
	return entries, nil
}

func (s *service) DisplayName(id, subMin, subMax int, plural bool) string {
	return s.snapshot().store.DisplayName(id, subMin, subMax, plural)
}

func (s *service) DebugName(id, subMin, subMax int, plural bool) string {
	return s.snapshot().store.DebugName(id, subMin, subMax, plural, s.env.Materials.MaxBlockID())
}

func (s *service) Describe(t *itemtype.TypeSet) string {
	return describe(s.snapshot().store, t)
}

func (s *service) Aliases() []alias.Entry {
	store := s.snapshot().store
	names := store.Names()
	out := make([]alias.Entry, 0, len(names))
	for _, name := range names {
		t, _ := store.Lookup(name)
		out = append(out, alias.Entry{Name: name, Type: t.Clone()})
	}
	return out
}

func (s *service) SnapshotID() string {
	return s.snapshot().id
}
