package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// SortNone is the sort parameter that explicitly disables sorting.
const SortNone = "none"

var operators = map[FilterOperator]bool{
	OpContains: true, OpEquals: true, OpStartsWith: true, OpEndsWith: true,
	OpGreaterEq: true, OpLessEq: true, OpGreater: true, OpLess: true, OpIn: true,
}

// ParseFilter reads a filter expression for column. The expression is
// "op:value", or a bare value that takes the column's default operator.
// ok is false when the value is empty.
func ParseFilter(column, expr string) (f ColumnFilter, ok bool) {
	op, value, found := strings.Cut(expr, ":")
	if !found || !operators[FilterOperator(strings.ToLower(op))] {
		op, value = "", expr
	}
	value = strings.TrimSpace(value)
	if column == "" || value == "" {
		return ColumnFilter{}, false
	}
	return ColumnFilter{
		Column:   column,
		Operator: FilterOperator(strings.ToLower(op)),
		Value:    value,
	}, true
}

// ParseSort reads sort and dir parameters. An empty column means "use the
// page default" and yields nil; SortNone yields an explicit unsorted state.
func ParseSort(column, dir string) *datatable.SortState {
	column = strings.TrimSpace(column)
	switch {
	case column == "":
		return nil
	case strings.EqualFold(column, SortNone):
		s := datatable.Unsorted()
		return &s
	default:
		s := datatable.SortBy(column, datatable.ParseDirection(dir))
		return &s
	}
}

// ParsePositive reads an optional positive integer parameter such as a page
// number. Empty yields 0. Anything else that is not a positive integer is an
// ErrInvalidQuery.
func ParsePositive(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalidQuery, name, raw)
	}
	return n, nil
}
