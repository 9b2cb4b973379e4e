package datatable

import (
	"fmt"
	"slices"
	"strings"
)

// Direction is the order of an active sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection converts "asc"/"desc" (any case) to a Direction.
// Anything else is treated as ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// SortState is the active sort column and direction of a table instance.
// An empty ColumnID means unsorted (input order).
type SortState struct {
	ColumnID  string    `json:"column,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Unsorted returns the state that preserves input order.
func Unsorted() SortState {
	return SortState{Direction: Asc}
}

// SortBy returns a state sorting by columnID in the given direction.
func SortBy(columnID string, dir Direction) SortState {
	if dir != Desc {
		dir = Asc
	}
	return SortState{ColumnID: columnID, Direction: dir}
}

// IsSorted reports whether a column is selected.
func (s SortState) IsSorted() bool {
	return s.ColumnID != ""
}

// String returns "column:dir", or "none" when unsorted.
func (s SortState) String() string {
	if !s.IsSorted() {
		return "none"
	}
	return fmt.Sprintf("%s:%s", s.ColumnID, s.direction())
}

func (s SortState) direction() Direction {
	if s.Direction == Desc {
		return Desc
	}
	return Asc
}

// effectiveSort resolves state against columns. ok is false when the state is
// unsorted or references an unknown or unsortable column.
func effectiveSort[T any](columns []Column[T], state SortState) (Column[T], bool) {
	if !state.IsSorted() {
		return Column[T]{}, false
	}
	col, ok := findColumn(columns, state.ColumnID)
	if !ok || !col.Sortable || col.Accessor == nil {
		return Column[T]{}, false
	}
	return col, true
}

// sortEntry pairs a record with its precomputed key.
type sortEntry[T any] struct {
	row T
	key sortKey
}

// SortRows returns rows ordered by state. The sort is stable: records with
// equal keys keep their input order in both directions. Records whose
// accessor yields nil (or panics) sort after all defined values regardless of
// direction.
//
// When state is unsorted, or references a column that does not exist or is
// not sortable, the input order is returned unchanged. The input slice is
// never modified.
func SortRows[T any](rows []T, columns []Column[T], state SortState) []T {
	out := make([]T, len(rows))
	copy(out, rows)

	col, ok := effectiveSort(columns, state)
	if !ok || len(rows) < 2 {
		return out
	}

	entries := make([]sortEntry[T], len(rows))
	for i, row := range rows {
		entries[i] = sortEntry[T]{row: row, key: makeKey(col.Value(row))}
	}

	coll := newCollator()
	desc := state.direction() == Desc
	slices.SortStableFunc(entries, func(a, b sortEntry[T]) int {
		switch {
		case !a.key.defined && !b.key.defined:
			return 0
		case !a.key.defined:
			return 1
		case !b.key.defined:
			return -1
		}
		c := compareKeys(a.key, b.key, coll)
		if desc {
			return -c
		}
		return c
	})

	for i, e := range entries {
		out[i] = e.row
	}
	return out
}

// ToggleSort applies a header click on columnID to state.
//
// The cycle is three-state: a new column starts ascending, an ascending
// column flips to descending, and a descending column returns to unsorted.
// Clicking an unknown or unsortable column leaves state unchanged.
func ToggleSort[T any](state SortState, columns []Column[T], columnID string) SortState {
	col, ok := findColumn(columns, columnID)
	if !ok || !col.Sortable {
		return state
	}
	switch {
	case state.ColumnID != columnID:
		return SortBy(columnID, Asc)
	case state.direction() == Asc:
		return SortBy(columnID, Desc)
	default:
		return Unsorted()
	}
}
