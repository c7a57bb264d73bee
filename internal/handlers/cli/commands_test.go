package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/core/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct{ warnings, errors int }

func (f fakeCounter) Counts() (int, int) { return f.warnings, f.errors }

type fakeDictionary struct {
	path     string
	exported []alias.Entry
}

func (f *fakeDictionary) Export(entries []alias.Entry) error {
	f.exported = entries
	return nil
}
func (f *fakeDictionary) Read() (map[string]string, error) { return nil, nil }
func (f *fakeDictionary) Location() string                 { return f.path }

type nopCloser struct{ closed *bool }

func (n nopCloser) Close() error {
	*n.closed = true
	return nil
}

func execute(t *testing.T, svc ports.AliasService, opts Options, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(svc, opts)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func sampleEntries() []alias.Entry {
	return []alias.Entry{
		{Name: "oak log", Type: itemtype.New(itemtype.NewSubRange(17, 0, 0))},
		{Name: "spruce log", Type: itemtype.New(itemtype.NewSubRange(17, 1, 1))},
		{Name: "stone", Type: itemtype.New(itemtype.NewRange(1))},
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := NewRootCommand(&testutil.MockAliasService{}, Options{})
	for _, name := range []string{"check", "parse", "expand", "list", "name", "export", "watch"} {
		_, _, err := root.Find([]string{name})
		assert.NoError(t, err, name)
	}
}

func TestRootCommand_ReloadFailureStopsCommand(t *testing.T) {
	svc := &testutil.MockAliasService{
		ReloadFunc: func() (ports.LoadResult, error) { return ports.LoadResult{}, errors.New("no such file") },
	}

	_, err := execute(t, svc, Options{}, "", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
}

func TestCheckCommand(t *testing.T) {
	svc := &testutil.MockAliasService{
		ReloadFunc: func() (ports.LoadResult, error) {
			return ports.LoadResult{
				SnapshotID:   "abc",
				Aliases:      12,
				Source:       "aliases.yaml",
				Sections:     []ports.SectionCount{{Name: "blocks", Count: 8}, {Name: "tools", Count: 4}},
				MissingNames: []int{35},
			}, nil
		},
	}

	out, err := execute(t, svc, Options{Diagnostics: fakeCounter{warnings: 2}}, "", "check")

	require.NoError(t, err)
	assert.Equal(t, 1, svc.ReloadCalls)
	assert.Contains(t, out, "Loaded 12 aliases from aliases.yaml")
	assert.Contains(t, out, "blocks")
	assert.Contains(t, out, "1 material ids have no alias")
	assert.Contains(t, out, "2 warnings, 0 errors")
	assert.Contains(t, out, "abc")

	_, err = execute(t, svc, Options{Diagnostics: fakeCounter{errors: 1}}, "", "check", "--strict")
	assert.Error(t, err)
}

func TestParseCommand(t *testing.T) {
	var gotQuery, gotValue string
	svc := &testutil.MockAliasService{
		ParseQueryFunc: func(text string) (*itemtype.TypeSet, error) {
			gotQuery = text
			q := itemtype.New(itemtype.NewRange(276))
			q.Amount = 2
			q.AddEnchantments(map[string]int{"sharpness": 5})
			return q, nil
		},
		ParseAliasValueFunc: func(value string) (*itemtype.TypeSet, error) {
			gotValue = value
			return nil, errors.New("bad value")
		},
		DescribeFunc: func(t *itemtype.TypeSet) string { return "2 diamond swords of sharpness 5" },
	}

	out, err := execute(t, svc, Options{}, "", "parse", "2", "diamond", "swords", "of", "sharpness", "5")
	require.NoError(t, err)
	assert.Equal(t, "2 diamond swords of sharpness 5", gotQuery)
	assert.Contains(t, out, "2 diamond swords of sharpness 5")
	assert.Contains(t, out, "value 276")
	assert.Contains(t, out, "amount 2")
	assert.Contains(t, out, "enchantments sharpness 5")

	_, err = execute(t, svc, Options{}, "", "parse", "--alias", "1:x")
	require.Error(t, err)
	assert.Equal(t, "1:x", gotValue)
}

func TestExpandCommand(t *testing.T) {
	svc := &testutil.MockAliasService{
		ExpandFunc: func(template, value string) ([]alias.Entry, error) {
			assert.Equal(t, "{wood} log", template)
			assert.Equal(t, "17", value)
			return sampleEntries()[:2], nil
		},
	}

	out, err := execute(t, svc, Options{}, "", "expand", "{wood} log", "--value", "17")

	require.NoError(t, err)
	assert.Contains(t, out, "oak log")
	assert.Contains(t, out, "17:1")
}

func TestListCommand(t *testing.T) {
	svc := &testutil.MockAliasService{AliasesFunc: sampleEntries}

	out, err := execute(t, svc, Options{}, "", "list", "Oak")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered Aliases (1)")
	assert.Contains(t, out, "oak log")
	assert.NotContains(t, out, "spruce log")

	out, err = execute(t, svc, Options{}, "", "list", "iron")
	require.NoError(t, err)
	assert.Contains(t, out, "No aliases found.")
}

func TestNameCommand(t *testing.T) {
	svc := &testutil.MockAliasService{
		DisplayNameFunc: func(id, subMin, subMax int, plural bool) string {
			assert.Equal(t, []int{17, 1, 1}, []int{id, subMin, subMax})
			assert.True(t, plural)
			return "spruce logs"
		},
		DebugNameFunc: func(id, subMin, subMax int, plural bool) string { return "log:2-3" },
	}

	out, err := execute(t, svc, Options{}, "", "name", "17:1", "--plural")
	require.NoError(t, err)
	assert.Equal(t, "spruce logs\n", out)

	out, err = execute(t, svc, Options{}, "", "name", "17:2-3", "--debug")
	require.NoError(t, err)
	assert.Equal(t, "log:2-3\n", out)

	_, err = execute(t, svc, Options{}, "", "name", "oak")
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	svc := &testutil.MockAliasService{AliasesFunc: sampleEntries}
	dict := &fakeDictionary{}
	opts := Options{NewDictionary: func(path string) (ports.DictionaryStore, error) {
		dict.path = path
		return dict, nil
	}}

	out, err := execute(t, svc, opts, "", "export", "out.txt")

	require.NoError(t, err)
	assert.Len(t, dict.exported, 3)
	assert.Contains(t, out, "Exported 3 aliases to out.txt.")

	_, err = execute(t, svc, Options{}, "", "export", "out.txt")
	assert.Error(t, err)
}

func TestWatchCommand(t *testing.T) {
	var registered []string
	var registeredVariations []alias.Variations
	svc := &testutil.MockAliasService{
		ReloadFunc: func() (ports.LoadResult, error) {
			return ports.LoadResult{Aliases: 3, Source: "aliases.yaml"}, nil
		},
		RegisterAliasDefinitionFunc: func(name, value string, variations alias.Variations) int {
			registered = append(registered, name+"="+value)
			registeredVariations = append(registeredVariations, variations)
			return 2
		},
		ParseQueryFunc: func(text string) (*itemtype.TypeSet, error) {
			if text == "nonsense" {
				return nil, errors.New("can't understand this item: nonsense")
			}
			return itemtype.New(itemtype.NewRange(1)), nil
		},
		DescribeFunc: func(*itemtype.TypeSet) string { return "stone" },
	}
	var watchedPath string
	var watchedDebounce time.Duration
	closed := false
	opts := Options{
		DefinitionFile: "aliases.yaml",
		WatchDebounce:  time.Second,
		Watch: func(path string, debounce time.Duration, onChange func()) (io.Closer, error) {
			watchedPath, watchedDebounce = path, debounce
			onChange()
			return nopCloser{closed: &closed}, nil
		},
	}
	stdin := "stone\nnonsense\n:define (white|snow) wool = 35:0\n:reload\n:bogus\n:quit\nnever read\n"

	out, err := execute(t, svc, opts, stdin, "watch")

	require.NoError(t, err)
	assert.Equal(t, "aliases.yaml", watchedPath)
	assert.Equal(t, time.Second, watchedDebounce)
	assert.True(t, closed)
	assert.Equal(t, 3, svc.ReloadCalls)
	assert.Equal(t, []string{"(white|snow) wool=35:0"}, registered)
	require.Len(t, registeredVariations, 1)
	assert.Nil(t, registeredVariations[0], "definitions typed at the prompt use the loaded variations")
	assert.Contains(t, out, "Loaded 3 aliases from aliases.yaml.")
	assert.Contains(t, out, "stone")
	assert.Contains(t, out, "can't understand this item: nonsense")
	assert.Contains(t, out, "Registered 2 names.")
	assert.Contains(t, out, "unknown command :bogus")
}

func TestWatchCommand_ReloadFailureKeepsRunning(t *testing.T) {
	svc := &testutil.MockAliasService{
		ReloadFunc: func() (ports.LoadResult, error) { return ports.LoadResult{}, errors.New("broken yaml") },
	}

	out, err := execute(t, svc, Options{}, "", "watch")

	require.NoError(t, err)
	assert.Contains(t, out, "Reload failed, keeping previous aliases: broken yaml")
}
