package rows

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects which projected field a sort orders by.
type SortKey string

const (
	SortItem  SortKey = "item"
	SortName  SortKey = "name"
	SortValue SortKey = "value"
)

// SortSpec is a sort key plus a direction.
type SortSpec struct {
	Key  SortKey
	Desc bool
}

// Text keys use a case-insensitive locale collation, so "a" sorts before
// "B". Collation state carries a scratch buffer; all sorting happens on the
// UI event loop, which keeps this safe without a lock.
var collator = collate.New(language.English, collate.IgnoreCase)

// Sort returns a new slice ordered by the spec; the input is never mutated.
//
// For the value key, a row with no parsed value compares as negative
// infinity. The sentinel does not flip with direction: absent values sit at
// the low end ascending and at the far end descending. That asymmetry is
// defined behavior, not a bug.
func Sort(in []Row, spec SortSpec) []Row {
	out := make([]Row, len(in))
	copy(out, in)

	switch spec.Key {
	case SortValue:
		sort.Slice(out, func(i, j int) bool {
			vi := sortableValue(out[i])
			vj := sortableValue(out[j])
			if spec.Desc {
				return vj < vi
			}
			return vi < vj
		})
	case SortName:
		sortText(out, Row.Name, spec.Desc)
	default:
		sortText(out, Row.Item, spec.Desc)
	}

	return out
}

func sortableValue(r Row) float64 {
	if v, ok := r.Value(); ok {
		return v
	}
	return math.Inf(-1)
}

func sortText(rs []Row, field func(Row) string, desc bool) {
	sort.Slice(rs, func(i, j int) bool {
		c := collator.CompareString(field(rs[i]), field(rs[j]))
		if desc {
			return c > 0
		}
		return c < 0
	})
}
