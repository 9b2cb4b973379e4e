package core

import (
	"testing"

	"github.com/JonMunkholm/erpgrid/internal/datatable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		column, expr string
		want         ColumnFilter
		ok           bool
	}{
		{"status", "eq:new", ColumnFilter{Column: "status", Operator: OpEquals, Value: "new"}, true},
		{"status", "IN:open, on_hold", ColumnFilter{Column: "status", Operator: OpIn, Value: "open, on_hold"}, true},
		{"name", "north", ColumnFilter{Column: "name", Value: "north"}, true},
		{"opened", "12:30", ColumnFilter{Column: "opened", Value: "12:30"}, true},
		{"balance", "gte: 100 ", ColumnFilter{Column: "balance", Operator: OpGreaterEq, Value: "100"}, true},
		{"status", "eq:", ColumnFilter{}, false},
		{"status", "", ColumnFilter{}, false},
		{"", "eq:x", ColumnFilter{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseFilter(tt.column, tt.expr)
		assert.Equal(t, tt.ok, ok, "ParseFilter(%q, %q)", tt.column, tt.expr)
		assert.Equal(t, tt.want, got, "ParseFilter(%q, %q)", tt.column, tt.expr)
	}
}

func TestParseSort(t *testing.T) {
	assert.Nil(t, ParseSort("", "desc"))

	s := ParseSort("none", "")
	require.NotNil(t, s)
	assert.False(t, s.IsSorted())

	s = ParseSort("value", "DESC")
	require.NotNil(t, s)
	assert.Equal(t, datatable.SortBy("value", datatable.Desc), *s)

	s = ParseSort("name", "sideways")
	require.NotNil(t, s)
	assert.Equal(t, datatable.Asc, s.Direction)
}

func TestParsePositive(t *testing.T) {
	n, err := ParsePositive("page", "")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = ParsePositive("page", " 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, bad := range []string{"0", "-2", "two", "1.5"} {
		_, err := ParsePositive("size", bad)
		assert.ErrorIs(t, err, ErrInvalidQuery, bad)
	}
}
