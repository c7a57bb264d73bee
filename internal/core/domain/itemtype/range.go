package itemtype

import "strconv"

// Any marks an unset id or sub-value bound.
const Any = -1

// MaxSubValue is the largest sub-value (data) a range may carry.
const MaxSubValue = 32767

// RangeValue is one id together with an inclusive sub-value range.
// An ID of Any matches every id; SubMin and SubMax of Any mean "any sub-value".
type RangeValue struct {
	ID     int
	SubMin int
	SubMax int
}

// NewRange returns an unrestricted range for id.
func NewRange(id int) RangeValue {
	return RangeValue{ID: id, SubMin: Any, SubMax: Any}
}

// NewSubRange returns a range for id limited to [min, max].
func NewSubRange(id, min, max int) RangeValue {
	return RangeValue{ID: id, SubMin: min, SubMax: max}
}

// Unrestricted reports whether the range accepts any sub-value.
func (r RangeValue) Unrestricted() bool {
	return r.SubMin == Any && r.SubMax == Any
}

// Intersect returns the overlap of r and o. Ranges with different concrete
// ids never overlap; an Any id takes the other side's id.
func (r RangeValue) Intersect(o RangeValue) (RangeValue, bool) {
	out := RangeValue{ID: r.ID}
	switch {
	case r.ID == Any:
		out.ID = o.ID
	case o.ID == Any:
	case r.ID != o.ID:
		return RangeValue{}, false
	}

	switch {
	case r.Unrestricted():
		out.SubMin, out.SubMax = o.SubMin, o.SubMax
	case o.Unrestricted():
		out.SubMin, out.SubMax = r.SubMin, r.SubMax
	default:
		out.SubMin = max(r.SubMin, o.SubMin)
		out.SubMax = min(r.SubMax, o.SubMax)
		if out.SubMin > out.SubMax {
			return RangeValue{}, false
		}
	}
	return out, true
}

// String renders the range in the value grammar: "5", "5:2", "5:2-4", ":3",
// or ":" for any id with any sub-value.
func (r RangeValue) String() string {
	id := ""
	if r.ID != Any {
		id = strconv.Itoa(r.ID)
	}
	if r.Unrestricted() {
		if id == "" {
			return ":"
		}
		return id
	}
	if r.SubMin == r.SubMax {
		return id + ":" + strconv.Itoa(r.SubMin)
	}
	return id + ":" + strconv.Itoa(r.SubMin) + "-" + strconv.Itoa(r.SubMax)
}
