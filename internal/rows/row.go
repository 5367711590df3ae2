// Package rows holds the normalized row model and the pure
// filter/sort/classify pipeline applied before rendering.
package rows

import (
	"math"
	"strconv"
	"strings"
)

// Fixed projection indices into the source sheet schema.
const (
	itemCol  = 10
	nameCol  = 11
	valueCol = 12
)

// Row is one normalized spreadsheet row. Cells are trimmed, the cell count
// may vary per row, and missing trailing cells read as empty strings. Rows
// are immutable once built.
type Row struct {
	cells []string
	num   int
}

// NewRow builds a row from already-trimmed cells and its 1-based physical
// position in the sheet.
func NewRow(num int, cells []string) Row {
	return Row{cells: cells, num: num}
}

// Num returns the 1-based physical position of the row in the parsed sheet.
// It is assigned before exclusion, so visible rows keep stable numbers
// across filtering.
func (r Row) Num() int { return r.num }

// Cell returns the cell at index i, or "" when the row is too short.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// Len returns the number of cells physically present in the row.
func (r Row) Len() int { return len(r.cells) }

func (r Row) Item() string     { return r.Cell(itemCol) }
func (r Row) Name() string     { return r.Cell(nameCol) }
func (r Row) RawValue() string { return r.Cell(valueCol) }

// Value returns the numeric interpretation of the value column, if any.
func (r Row) Value() (float64, bool) {
	return ParseValue(r.RawValue())
}

// ParseValue derives an optional number from a raw value cell. Everything
// except digits, '.' and '-' is stripped before parsing; an empty or
// non-finite result means the value is absent.
func ParseValue(raw string) (float64, bool) {
	var b strings.Builder
	for _, ch := range raw {
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' {
			b.WriteRune(ch)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
