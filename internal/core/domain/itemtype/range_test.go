package itemtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeValue_Intersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   RangeValue
		want   RangeValue
		wantOK bool
	}{
		{"different ids", NewRange(1), NewRange(2), RangeValue{}, false},
		{"both unrestricted", NewRange(5), NewRange(5), NewRange(5), true},
		{"left unrestricted takes right", NewRange(5), NewSubRange(5, 2, 4), NewSubRange(5, 2, 4), true},
		{"right unrestricted takes left", NewSubRange(5, 1, 3), NewRange(5), NewSubRange(5, 1, 3), true},
		{"overlap", NewSubRange(5, 0, 3), NewSubRange(5, 2, 8), NewSubRange(5, 2, 3), true},
		{"disjoint", NewSubRange(5, 0, 1), NewSubRange(5, 2, 3), RangeValue{}, false},
		{"any id adopts other id", NewSubRange(Any, 2, 2), NewRange(17), NewSubRange(17, 2, 2), true},
		{"other any id", NewRange(17), NewSubRange(Any, 1, 4), NewSubRange(17, 1, 4), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
			back, ok2 := tt.b.Intersect(tt.a)
			assert.Equal(t, ok, ok2, "intersection must be symmetric")
			if ok {
				assert.Equal(t, got, back)
			}
		})
	}
}

func TestRangeValue_String(t *testing.T) {
	assert.Equal(t, "5", NewRange(5).String())
	assert.Equal(t, "5:2", NewSubRange(5, 2, 2).String())
	assert.Equal(t, "5:2-4", NewSubRange(5, 2, 4).String())
	assert.Equal(t, ":3", NewSubRange(Any, 3, 3).String())
	assert.Equal(t, ":", NewRange(Any).String())
	assert.Equal(t, ":0-32767", NewSubRange(Any, 0, MaxSubValue).String())
}
