package rows

import (
	"math"
	"testing"
)

// gridRow builds a raw 13-cell row with the projected columns populated.
func gridRow(item, name, value string) []string {
	cells := make([]string, 13)
	cells[itemCol] = item
	cells[nameCol] = name
	cells[valueCol] = value
	return cells
}

func makeRow(num int, item, name, value string) Row {
	cells := gridRow(item, name, value)
	return NewRow(num, cells)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{" 73.5 ", 73.5, true},
		{"$1,234.5", 1234.5, true},
		{"-12", -12, true},
		{"98%", 98, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"..", 0, false},
	}

	for _, test := range tests {
		got, ok := ParseValue(test.raw)
		if ok != test.ok {
			t.Errorf("ParseValue(%q) ok = %v, expected %v", test.raw, ok, test.ok)
			continue
		}
		if ok && got != test.want {
			t.Errorf("ParseValue(%q) = %v, expected %v", test.raw, got, test.want)
		}
	}
}

func TestRowMissingTrailingCells(t *testing.T) {
	r := NewRow(2, []string{"a", "b"})
	if r.Item() != "" || r.Name() != "" || r.RawValue() != "" {
		t.Errorf("Expected empty projected fields for short row, got %q/%q/%q",
			r.Item(), r.Name(), r.RawValue())
	}
	if r.Cell(1) != "b" {
		t.Errorf("Expected cell 1 to be 'b', got %q", r.Cell(1))
	}
}

func TestNormalizeExcludesHeader(t *testing.T) {
	grid := [][]string{
		gridRow("Item", "Name", "Value"),
		gridRow("widget", "alpha", "50"),
	}

	visible := Normalize(grid)
	if len(visible) != 1 {
		t.Fatalf("Expected 1 visible row, got %d", len(visible))
	}
	if visible[0].Num() != 2 {
		t.Errorf("Expected row number 2, got %d", visible[0].Num())
	}
}

func TestNormalizeExcludesEmptyProjection(t *testing.T) {
	blank := gridRow("  ", "", "\t")
	blank[0] = "other cell content"

	grid := [][]string{
		gridRow("Item", "Name", "Value"),
		blank,
		gridRow("widget", "alpha", "50"),
	}

	visible := Normalize(grid)
	if len(visible) != 1 {
		t.Fatalf("Expected 1 visible row, got %d", len(visible))
	}
	if visible[0].Item() != "widget" {
		t.Errorf("Expected surviving row to be widget, got %q", visible[0].Item())
	}
	// Exclusion must not renumber the survivor.
	if visible[0].Num() != 3 {
		t.Errorf("Expected physical row number 3, got %d", visible[0].Num())
	}
}

func TestNormalizeTrimsCells(t *testing.T) {
	grid := [][]string{
		gridRow("Item", "Name", "Value"),
		gridRow("  widget  ", "\talpha\t", " 50 "),
	}

	visible := Normalize(grid)
	if len(visible) != 1 {
		t.Fatalf("Expected 1 visible row, got %d", len(visible))
	}
	r := visible[0]
	if r.Item() != "widget" || r.Name() != "alpha" || r.RawValue() != "50" {
		t.Errorf("Expected trimmed fields, got %q/%q/%q", r.Item(), r.Name(), r.RawValue())
	}
}

func TestFilterEmptyQueryReturnsInputUnchanged(t *testing.T) {
	in := []Row{
		makeRow(2, "b-item", "x", "1"),
		makeRow(3, "a-item", "y", "2"),
	}

	got := Filter(in, "   ")
	if len(got) != len(in) {
		t.Fatalf("Expected %d rows, got %d", len(in), len(got))
	}
	for i := range in {
		if got[i].Num() != in[i].Num() {
			t.Errorf("Expected original order preserved at index %d", i)
		}
	}
}

func TestFilterMatchesNameOnly(t *testing.T) {
	in := []Row{
		makeRow(2, "widget", "alpha", "1"),
		makeRow(3, "gizmo", "needle", "2"),
	}

	got := Filter(in, "NEEDLE")
	if len(got) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(got))
	}
	if got[0].Item() != "gizmo" {
		t.Errorf("Expected gizmo row, got %q", got[0].Item())
	}
}

func TestFilterDoesNotSearchOtherCells(t *testing.T) {
	cells := gridRow("widget", "alpha", "1")
	cells[0] = "needle"
	in := []Row{NewRow(2, cells)}

	got := Filter(in, "needle")
	if len(got) != 0 {
		t.Errorf("Expected no matches outside projected fields, got %d", len(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := []Row{
		makeRow(2, "widget", "alpha", "1"),
		makeRow(3, "gizmo", "beta", "2"),
	}

	_ = Filter(in, "widget")
	if in[0].Item() != "widget" || in[1].Item() != "gizmo" {
		t.Error("Filter mutated its input")
	}
}

func TestSortValueDescending(t *testing.T) {
	in := []Row{
		makeRow(2, "low", "", "10"),
		makeRow(3, "none", "", "n/a"),
		makeRow(4, "high", "", "90"),
	}

	got := Sort(in, SortSpec{Key: SortValue, Desc: true})
	order := []string{"high", "low", "none"}
	for i, want := range order {
		if got[i].Item() != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, got[i].Item())
		}
	}
}

func TestSortValueAscendingAbsentFirst(t *testing.T) {
	in := []Row{
		makeRow(2, "high", "", "90"),
		makeRow(3, "none", "", ""),
		makeRow(4, "low", "", "10"),
	}

	got := Sort(in, SortSpec{Key: SortValue, Desc: false})
	order := []string{"none", "low", "high"}
	for i, want := range order {
		if got[i].Item() != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, got[i].Item())
		}
	}
}

func TestSortItemLocaleOrdering(t *testing.T) {
	in := []Row{
		makeRow(2, "B", "", ""),
		makeRow(3, "a", "", ""),
		makeRow(4, "C", "", ""),
	}

	got := Sort(in, SortSpec{Key: SortItem})
	order := []string{"a", "B", "C"}
	for i, want := range order {
		if got[i].Item() != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, got[i].Item())
		}
	}
}

func TestSortNameDescending(t *testing.T) {
	in := []Row{
		makeRow(2, "", "alpha", ""),
		makeRow(3, "", "Charlie", ""),
		makeRow(4, "", "bravo", ""),
	}

	got := Sort(in, SortSpec{Key: SortName, Desc: true})
	order := []string{"Charlie", "bravo", "alpha"}
	for i, want := range order {
		if got[i].Name() != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, got[i].Name())
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := []Row{
		makeRow(2, "z", "", "1"),
		makeRow(3, "a", "", "2"),
	}

	_ = Sort(in, SortSpec{Key: SortItem})
	if in[0].Item() != "z" {
		t.Error("Sort mutated its input")
	}
}

func TestTierThresholds(t *testing.T) {
	tests := []struct {
		v    float64
		ok   bool
		want string
	}{
		{75, true, TierHigh},
		{100, true, TierHigh},
		{74.999, true, TierMedium},
		{50, true, TierMedium},
		{49.999, true, TierLow},
		{25, true, TierLow},
		{24.999, true, TierVeryLow},
		{0, true, TierVeryLow},
		{-5, true, TierVeryLow},
		{0, false, TierNoScore},
	}

	for _, test := range tests {
		got := Tier(test.v, test.ok)
		if got != test.want {
			t.Errorf("Tier(%v, %v) = %q, expected %q", test.v, test.ok, got, test.want)
		}
	}
}

func TestSortableValueSentinel(t *testing.T) {
	r := makeRow(2, "", "", "not a number")
	if v := sortableValue(r); !math.IsInf(v, -1) {
		t.Errorf("Expected -Inf sentinel for absent value, got %v", v)
	}
}
