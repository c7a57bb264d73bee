package itemtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeSet_AddKeepsOrderAndDeduplicates(t *testing.T) {
	ts := New(NewRange(3), NewRange(1))
	ts.Add(NewRange(3), NewSubRange(1, 0, 2))

	assert.Equal(t, []RangeValue{NewRange(3), NewRange(1), NewSubRange(1, 0, 2)}, ts.Ranges())
	assert.Equal(t, 3, ts.Len())
	assert.Equal(t, 1, ts.Amount)
}

func TestTypeSet_CloneIsDeep(t *testing.T) {
	ts := New(NewRange(17))
	ts.Amount = 4
	ts.AddEnchantments(map[string]int{"sharpness": 2})
	require.True(t, ts.SetItem(New(NewRange(256))))

	c := ts.Clone()
	require.True(t, c.Equal(ts))

	c.Add(NewRange(18))
	c.Enchantments["sharpness"] = 5
	c.Item().Add(NewRange(257))
	c.Amount = 1

	assert.Equal(t, []RangeValue{NewRange(17)}, ts.Ranges())
	assert.Equal(t, 2, ts.Enchantments["sharpness"])
	assert.Equal(t, 1, ts.Item().Len())
	assert.Equal(t, 4, ts.Amount)
}

func TestTypeSet_Intersection(t *testing.T) {
	tests := []struct {
		name   string
		a, b   *TypeSet
		want   []RangeValue
		wantOK bool
	}{
		{
			name:   "pairwise overlap",
			a:      New(NewRange(17), NewRange(18)),
			b:      New(NewSubRange(17, 1, 1)),
			want:   []RangeValue{NewSubRange(17, 1, 1)},
			wantOK: true,
		},
		{
			name:   "no overlap",
			a:      New(NewRange(1)),
			b:      New(NewRange(2)),
			wantOK: false,
		},
		{
			name:   "wildcard on the left",
			a:      Everything(),
			b:      New(NewRange(4)),
			want:   []RangeValue{NewRange(4)},
			wantOK: true,
		},
		{
			name:   "wildcard on the right",
			a:      New(NewSubRange(35, 0, 3)),
			b:      Everything(),
			want:   []RangeValue{NewSubRange(35, 0, 3)},
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersection(tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, got)
				assert.Equal(t, tt.want, got.Ranges())
			}
		})
	}
}

func TestTypeSet_FlavorCyclesAreRefused(t *testing.T) {
	wood := New(NewRange(5))
	woodItem := New(NewRange(280))

	assert.True(t, wood.SetItem(woodItem))
	assert.False(t, woodItem.SetBlock(wood))
	assert.False(t, wood.SetItem(wood))
	assert.Nil(t, woodItem.Block())
}

func TestEverything_IsNotMutated(t *testing.T) {
	e := Everything()
	e.Add(NewRange(1))
	e.SetItem(New(NewRange(2)))
	e.AddEnchantments(map[string]int{"unbreaking": 3})

	assert.True(t, Everything().IsEverything())
	assert.Nil(t, Everything().Item())
	assert.Empty(t, Everything().Enchantments)

	c := e.Clone()
	assert.True(t, c.IsEverything())
	c.Add(NewRange(1))
	assert.False(t, c.IsEverything())
	assert.True(t, Everything().IsEverything())
}

func TestTypeSet_ValueString(t *testing.T) {
	assert.Equal(t, "*", Everything().ValueString())
	assert.Equal(t, "1, 5:2-4, :3", New(NewRange(1), NewSubRange(5, 2, 4), NewSubRange(Any, 3, 3)).ValueString())
}
