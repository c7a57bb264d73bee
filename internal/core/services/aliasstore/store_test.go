package aliasstore

import (
	"testing"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RecordName(t *testing.T) {
	tests := []struct {
		name      string
		record    func(s *Store)
		id        int
		min, max  int
		plural    bool
		wantName  string
		wantDebug string
	}{
		{
			name:      "no entry falls back to id",
			record:    func(*Store) {},
			id:        5,
			min:       2,
			max:       4,
			wantName:  "5",
			wantDebug: "5:2-4",
		},
		{
			name: "unrestricted range sets the default",
			record: func(s *Store) {
				s.RecordName(itemtype.NewRange(1), Noun{"stone", "stones"})
			},
			id:        1,
			min:       -1,
			max:       -1,
			plural:    true,
			wantName:  "stones",
			wantDebug: "stones",
		},
		{
			name: "first unrestricted alias keeps the default",
			record: func(s *Store) {
				s.RecordName(itemtype.NewRange(1), Noun{"stone", "stones"})
				s.RecordName(itemtype.NewRange(1), Noun{"rock", "rocks"})
			},
			id:        1,
			min:       -1,
			max:       -1,
			wantName:  "stone",
			wantDebug: "stone",
		},
		{
			name: "range override",
			record: func(s *Store) {
				s.RecordName(itemtype.NewRange(17), Noun{"log", "logs"})
				s.RecordName(itemtype.NewSubRange(17, 1, 1), Noun{"spruce log", "spruce logs"})
			},
			id:        17,
			min:       1,
			max:       1,
			wantName:  "spruce log",
			wantDebug: "spruce log",
		},
		{
			name: "override before default leaves a numeric placeholder that is later replaced",
			record: func(s *Store) {
				s.RecordName(itemtype.NewSubRange(17, 1, 1), Noun{"spruce log", "spruce logs"})
				s.RecordName(itemtype.NewRange(17), Noun{"log", "logs"})
			},
			id:        17,
			min:       -1,
			max:       -1,
			wantName:  "log",
			wantDebug: "log",
		},
		{
			name: "uncovered range uses default with range suffix in debug form",
			record: func(s *Store) {
				s.RecordName(itemtype.NewRange(17), Noun{"log", "logs"})
			},
			id:        17,
			min:       2,
			max:       3,
			wantName:  "log",
			wantDebug: "log:2-3",
		},
		{
			name: "second unrestricted alias becomes fallback for uncovered ranges",
			record: func(s *Store) {
				s.RecordName(itemtype.NewRange(35), Noun{"wool", "wools"})
				s.RecordName(itemtype.NewRange(35), Noun{"cloth", "cloths"})
			},
			id:        35,
			min:       3,
			max:       3,
			wantName:  "cloth",
			wantDebug: "wool:3",
		},
		{
			name: "zero range uses default",
			record: func(s *Store) {
				s.RecordName(itemtype.NewRange(35), Noun{"wool", "wools"})
			},
			id:        35,
			min:       0,
			max:       0,
			wantName:  "wool",
			wantDebug: "wool",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.record(s)
			assert.Equal(t, tt.wantName, s.DisplayName(tt.id, tt.min, tt.max, tt.plural))
			assert.Equal(t, tt.wantDebug, s.DebugName(tt.id, tt.min, tt.max, tt.plural, 255))
		})
	}
}

func TestMaterialName_DebugNameOpenRange(t *testing.T) {
	block := newMaterialName(35, Noun{"wool", "wool"})
	item := newMaterialName(351, Noun{"dye", "dyes"})

	assert.Equal(t, "wool:2-15", block.DebugName(2, -1, false, 255))
	assert.Equal(t, "dyes:2-32767", item.DebugName(2, -1, true, 255))
}

func TestStore_AddMissingMaterialNames(t *testing.T) {
	s := New()
	s.RecordName(itemtype.NewRange(1), Noun{"stone", "stones"})

	missing := s.AddMissingMaterialNames([]int{1, 2, 3}, func(id int) string {
		if id == 2 {
			return "grass"
		}
		return ""
	})

	assert.Equal(t, []int{2, 3}, missing)
	assert.Equal(t, "stone", s.DisplayName(1, -1, -1, false))
	assert.Equal(t, "grass", s.DisplayName(2, -1, -1, true))
	assert.Equal(t, "3", s.DisplayName(3, -1, -1, false))
	assert.Equal(t, AnythingName, s.DisplayName(itemtype.Any, -1, -1, false))
}

func TestStore_ClonePreservesSharing(t *testing.T) {
	s := New()
	wood := itemtype.New(itemtype.NewRange(5))
	woodItem := itemtype.New(itemtype.NewRange(280))
	require.True(t, wood.SetItem(woodItem))
	s.Put("wood", wood)
	s.Put("woods", wood)
	s.Put("wood item", woodItem)
	s.RecordName(itemtype.NewRange(5), Noun{"wood", "woods"})

	c := s.Clone()

	cw, _ := c.Lookup("wood")
	cws, _ := c.Lookup("woods")
	cwi, _ := c.Lookup("wood item")
	assert.Same(t, cw, cws)
	assert.Same(t, cwi, cw.Item())
	assert.NotSame(t, wood, cw)

	cw.Add(itemtype.NewRange(6))
	c.RecordName(itemtype.NewSubRange(5, 1, 1), Noun{"birch", "birches"})
	c.Put("plank", itemtype.New(itemtype.NewRange(5)))

	assert.Equal(t, 1, wood.Len())
	assert.Equal(t, "wood", s.DisplayName(5, 1, 1, false))
	_, ok := s.Lookup("plank")
	assert.False(t, ok)
}

func TestStore_Defaults(t *testing.T) {
	s := New()
	assert.Equal(t, Noun{"item", "items"}, s.ItemNoun())
	assert.Equal(t, Noun{"block", "blocks"}, s.BlockNoun())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Names())
}
