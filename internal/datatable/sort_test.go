package datatable

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Fixtures
// ============================================================================

type item struct {
	ID     int
	Name   string
	Qty    *int
	Due    string
	Active bool
}

func intPtr(i int) *int { return &i }

func itemColumns() []Column[item] {
	return []Column[item]{
		{ID: "id", Header: "ID", Accessor: Field(func(r item) int { return r.ID }), Sortable: true, Align: AlignRight},
		{ID: "name", Header: "Name", Accessor: Field(func(r item) string { return r.Name }), Sortable: true},
		{ID: "qty", Header: "Qty", Accessor: Field(func(r item) *int { return r.Qty }), Sortable: true},
		{ID: "due", Header: "Due", Accessor: Field(func(r item) string { return r.Due }), Sortable: true},
		{ID: "notes", Header: "Notes", Accessor: Field(func(r item) string { return "n/a" }), Sortable: false},
	}
}

func ids(rows []item) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

// ============================================================================
// SortRows
// ============================================================================

func TestSortRows_IdentityPolicies(t *testing.T) {
	rows := []item{{ID: 3, Name: "C"}, {ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	cols := itemColumns()

	tests := []struct {
		name  string
		state SortState
	}{
		{"unsorted", Unsorted()},
		{"unknown column", SortBy("missing", Asc)},
		{"unsortable column", SortBy("notes", Desc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortRows(rows, cols, tt.state)
			assert.Equal(t, []int{3, 1, 2}, ids(got))
		})
	}
}

func TestSortRows_DoesNotModifyInput(t *testing.T) {
	rows := []item{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}}
	_ = SortRows(rows, itemColumns(), SortBy("name", Asc))
	assert.Equal(t, []int{2, 1}, ids(rows))
}

func TestSortRows_Numbers(t *testing.T) {
	rows := []item{{ID: 10}, {ID: 2}, {ID: 33}, {ID: 1}}
	cols := itemColumns()

	assert.Equal(t, []int{1, 2, 10, 33}, ids(SortRows(rows, cols, SortBy("id", Asc))))
	assert.Equal(t, []int{33, 10, 2, 1}, ids(SortRows(rows, cols, SortBy("id", Desc))))
}

func TestSortRows_ISODates(t *testing.T) {
	rows := []item{
		{ID: 1, Due: "2025-10-08"},
		{ID: 2, Due: "2025-09-28"},
		{ID: 3, Due: "2025-10-01T09:30:00Z"},
	}
	got := SortRows(rows, itemColumns(), SortBy("due", Asc))
	assert.Equal(t, []int{2, 3, 1}, ids(got))
}

func TestSortRows_LocaleAwareStrings(t *testing.T) {
	rows := []item{
		{ID: 1, Name: "banana"},
		{ID: 2, Name: "Apple"},
		{ID: 3, Name: "cherry"},
		{ID: 4, Name: "Éclair"},
	}
	got := SortRows(rows, itemColumns(), SortBy("name", Asc))
	// Case and accents do not push words out of alphabetical order.
	assert.Equal(t, []int{2, 1, 3, 4}, ids(got))
}

func TestSortRows_NilValuesSortLast(t *testing.T) {
	rows := []item{
		{ID: 1, Qty: nil},
		{ID: 2, Qty: intPtr(5)},
		{ID: 3, Qty: nil},
		{ID: 4, Qty: intPtr(1)},
	}
	cols := itemColumns()

	assert.Equal(t, []int{4, 2, 1, 3}, ids(SortRows(rows, cols, SortBy("qty", Asc))))
	assert.Equal(t, []int{2, 4, 1, 3}, ids(SortRows(rows, cols, SortBy("qty", Desc))))
}

func TestSortRows_PanickingAccessorSortsLast(t *testing.T) {
	cols := []Column[item]{{
		ID:       "boom",
		Sortable: true,
		Accessor: func(r item) any {
			if r.ID == 2 {
				panic("bad record")
			}
			return r.ID
		},
	}}
	rows := []item{{ID: 2}, {ID: 3}, {ID: 1}}

	assert.Equal(t, []int{1, 3, 2}, ids(SortRows(rows, cols, SortBy("boom", Asc))))
	assert.Equal(t, []int{3, 1, 2}, ids(SortRows(rows, cols, SortBy("boom", Desc))))
}

func TestSortRows_Stability(t *testing.T) {
	rows := []item{
		{ID: 1, Name: "B"},
		{ID: 2, Name: "A"},
		{ID: 3, Name: "B"},
		{ID: 4, Name: "A"},
		{ID: 5, Name: "C"},
		{ID: 6, Name: "B"},
	}
	cols := itemColumns()

	asc := SortRows(rows, cols, SortBy("name", Asc))
	desc := SortRows(rows, cols, SortBy("name", Desc))

	// Distinct keys reverse; equal keys keep input order in both directions.
	assert.Equal(t, []int{2, 4, 1, 3, 6, 5}, ids(asc))
	assert.Equal(t, []int{5, 1, 3, 6, 2, 4}, ids(desc))
}

func TestSortRows_Idempotent(t *testing.T) {
	rows := []item{
		{ID: 4, Name: "D"}, {ID: 1, Name: "B"}, {ID: 2, Name: "B"}, {ID: 3, Name: "A"},
	}
	cols := itemColumns()

	for _, dir := range []Direction{Asc, Desc} {
		state := SortBy("name", dir)
		once := SortRows(rows, cols, state)
		twice := SortRows(once, cols, state)
		assert.Equal(t, ids(once), ids(twice), "direction %s", dir)
	}
}

func TestSortRows_DuplicateColumnIDsFirstWins(t *testing.T) {
	cols := []Column[item]{
		{ID: "x", Sortable: true, Accessor: Field(func(r item) int { return r.ID })},
		{ID: "x", Sortable: true, Accessor: Field(func(r item) int { return -r.ID })},
	}
	rows := []item{{ID: 2}, {ID: 1}, {ID: 3}}
	assert.Equal(t, []int{1, 2, 3}, ids(SortRows(rows, cols, SortBy("x", Asc))))
}

// ============================================================================
// CompareValues
// ============================================================================

func TestCompareValues(t *testing.T) {
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 1, 2, -1},
		{"mixed numeric kinds", int64(3), 2.5, 1},
		{"uint vs int", uint8(7), 7, 0},
		{"times", now, now.Add(time.Hour), -1},
		{"iso strings", "2025-01-02", "2024-12-31", 1},
		{"time vs iso string", now, "2025-10-01", 0},
		{"strings", "alpha", "Beta", -1},
		{"nil last", nil, 1, 1},
		{"nil vs nil", nil, nil, 0},
		{"defined before nil", "x", nil, -1},
		{"number before text", 100, "abc", -1},
		{"bools", false, true, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(CompareValues(tt.a, tt.b)))
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// ============================================================================
// ToggleSort
// ============================================================================

func TestToggleSort_ThreeStateCycle(t *testing.T) {
	cols := itemColumns()
	state := Unsorted()

	state = ToggleSort(state, cols, "name")
	assert.Equal(t, SortBy("name", Asc), state)

	state = ToggleSort(state, cols, "name")
	assert.Equal(t, SortBy("name", Desc), state)

	state = ToggleSort(state, cols, "name")
	assert.False(t, state.IsSorted())
	assert.Equal(t, Asc, state.Direction)
}

func TestToggleSort_DifferentColumnStartsAscending(t *testing.T) {
	cols := itemColumns()
	state := ToggleSort(SortBy("name", Desc), cols, "id")
	assert.Equal(t, SortBy("id", Asc), state)
}

func TestToggleSort_UnsortableIsNoop(t *testing.T) {
	cols := itemColumns()
	rows := []item{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}}

	before := SortBy("name", Desc)
	after := ToggleSort(before, cols, "notes")
	require.Equal(t, before, after)

	after = ToggleSort(before, cols, "does-not-exist")
	require.Equal(t, before, after)

	assert.Equal(t, ids(SortRows(rows, cols, before)), ids(SortRows(rows, cols, after)))
}

func TestSortState_String(t *testing.T) {
	assert.Equal(t, "none", Unsorted().String())
	assert.Equal(t, "name:desc", SortBy("name", Desc).String())
	assert.Equal(t, "name:asc", SortState{ColumnID: "name"}.String())
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"asc": Asc, "DESC": Desc, " desc ": Desc, "": Asc, "sideways": Asc,
	} {
		assert.Equal(t, want, ParseDirection(in), fmt.Sprintf("input %q", in))
	}
}
