package typeresolution

import (
	"testing"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/diagnostic"
	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryParser(t *testing.T) *Parser {
	t.Helper()
	p, _ := newTestParser(t)
	variations := alias.Variations{}
	variations.Add("wood", "oak", itemtype.New(sub(17, 0, 0)))
	variations.Add("wood", "spruce", itemtype.New(sub(17, 1, 1)))
	p.AddAliases("stone¦s", "1", variations)
	p.AddAliases("{wood} log¦s", "17", variations)
	p.AddAliases("diamond sword¦s", "276", variations)
	p.AddAliases("wood", "5", variations)
	p.AddAliases("wood item", "280", variations)
	return p
}

func TestParser_ParseQuery(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		wantRanges       []itemtype.RangeValue
		wantAmount       int
		wantAll          bool
		wantEnchantments map[string]int
		wantKind         diagnostic.Kind
	}{
		{name: "plain name", text: "stone", wantRanges: []itemtype.RangeValue{r(1)}, wantAmount: 1},
		{name: "plural name", text: "stones", wantRanges: []itemtype.RangeValue{r(1)}, wantAmount: 1},
		{name: "surrounding space", text: "  stone  ", wantRanges: []itemtype.RangeValue{r(1)}, wantAmount: 1},
		{name: "amount", text: "5 stones", wantRanges: []itemtype.RangeValue{r(1)}, wantAmount: 5},
		{name: "amount of", text: "12 of stone", wantRanges: []itemtype.RangeValue{r(1)}, wantAmount: 12},
		{name: "amount of every", text: "5 of every oak log", wantRanges: []itemtype.RangeValue{sub(17, 0, 0)}, wantAmount: 5, wantAll: true},
		{name: "every", text: "every log", wantRanges: []itemtype.RangeValue{r(17)}, wantAmount: 1, wantAll: true},
		{name: "article", text: "a spruce log", wantRanges: []itemtype.RangeValue{sub(17, 1, 1)}, wantAmount: 1},
		{name: "data on name", text: "log:1", wantRanges: []itemtype.RangeValue{sub(17, 1, 1)}, wantAmount: 1},
		{name: "list", text: "stone, oak log", wantRanges: []itemtype.RangeValue{r(1), sub(17, 0, 0)}, wantAmount: 1},
		{
			name:             "enchantment",
			text:             "a diamond sword of sharpness 3",
			wantRanges:       []itemtype.RangeValue{r(276)},
			wantAmount:       1,
			wantEnchantments: map[string]int{"sharpness": 3},
		},
		{
			name:             "several enchantments",
			text:             "2 diamond swords of sharpness 2, unbreaking 1 and bane of arthropods 4",
			wantRanges:       []itemtype.RangeValue{r(276)},
			wantAmount:       2,
			wantEnchantments: map[string]int{"sharpness": 2, "unbreaking": 1, "bane of arthropods": 4},
		},
		{name: "of that is not an enchantment", text: "stone of doom", wantKind: diagnostic.InvalidItemType},
		{name: "empty", text: "   ", wantKind: diagnostic.EmptyString},
		{name: "unknown", text: "5 unobtainium", wantKind: diagnostic.InvalidItemType},
		{name: "bad data", text: "stone:40", wantKind: diagnostic.InvalidBlockData},
		{name: "amount overflow", text: "99999999999999999999 stone", wantKind: diagnostic.InvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newQueryParser(t)

			got, err := p.ParseQuery(tt.text)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, diagnostic.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRanges, got.Ranges())
			assert.Equal(t, tt.wantAmount, got.Amount)
			assert.Equal(t, tt.wantAll, got.All)
			if tt.wantEnchantments == nil {
				assert.Empty(t, got.Enchantments)
			} else {
				assert.Equal(t, tt.wantEnchantments, got.Enchantments)
			}
		})
	}
}

func TestParser_ParseQueryNumericIDIsDiscouraged(t *testing.T) {
	p, reporter := newTestParser(t)

	got, err := p.ParseQuery("3 276 of sharpness 1")

	require.NoError(t, err)
	assert.Equal(t, []itemtype.RangeValue{r(276)}, got.Ranges())
	assert.Equal(t, 1, reporter.Count(diagnostic.DiscouragedID))
}

func TestParser_ParseQueryFailedEnchantmentSplitReportsNothing(t *testing.T) {
	p, reporter := newTestParser(t)
	p.AddAliases("stone", "1", alias.Variations{})
	reporter.Reset()

	_, err := p.ParseQuery("a 1 of nothing")

	require.Error(t, err)
	assert.Zero(t, reporter.Count(diagnostic.DiscouragedID))
}

func TestParser_ParseQueryCarriesFlavors(t *testing.T) {
	p := newQueryParser(t)

	got, err := p.ParseQuery("wood")

	require.NoError(t, err)
	require.True(t, got.HasItem())
	assert.Equal(t, []itemtype.RangeValue{r(280)}, got.Item().Ranges())

	withData, err := p.ParseQuery("wood:2")
	require.NoError(t, err)
	assert.False(t, withData.HasItem())
}

func TestParser_ParseQueryResultIsFresh(t *testing.T) {
	p := newQueryParser(t)

	first, err := p.ParseQuery("wood")
	require.NoError(t, err)
	first.Add(r(1))
	first.Item().Add(r(1))

	second, err := p.ParseQuery("wood")
	require.NoError(t, err)
	assert.Equal(t, []itemtype.RangeValue{r(5)}, second.Ranges())
	assert.Equal(t, []itemtype.RangeValue{r(280)}, second.Item().Ranges())
}

func TestParser_ParseQueryThroughWildcardAlias(t *testing.T) {
	p, reporter := newTestParser(t)
	require.Equal(t, 1, p.AddAliases("anything", "*", alias.Variations{}))

	tests := []struct {
		text       string
		wantAmount int
	}{
		{text: "anything", wantAmount: 1},
		{text: "every anything", wantAmount: 1},
		{text: "3 anything", wantAmount: 3},
		{text: "an anything", wantAmount: 1},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := p.ParseQuery(tt.text)
			require.NoError(t, err)
			assert.True(t, got.IsEverything())
			assert.NotSame(t, itemtype.Everything(), got)
			assert.Equal(t, tt.wantAmount, got.Amount)
		})
	}

	enchanted, err := p.ParseQuery("anything of sharpness 2")
	require.NoError(t, err)
	assert.True(t, enchanted.IsEverything())
	assert.Equal(t, map[string]int{"sharpness": 2}, enchanted.Enchantments)
	assert.Empty(t, reporter.Kinds())
}
