package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOperator(t *testing.T) {
	tests := []struct {
		op   FilterOperator
		ft   FieldType
		want bool
	}{
		{OpContains, FieldText, true},
		{OpStartsWith, FieldText, true},
		{OpGreater, FieldText, false},
		{OpGreater, FieldNumeric, true},
		{OpContains, FieldNumeric, false},
		{OpGreaterEq, FieldDate, true},
		{OpGreater, FieldDate, false},
		{OpEquals, FieldBool, true},
		{OpIn, FieldBool, false},
		{OpIn, FieldEnum, true},
		{OpContains, FieldEnum, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidOperator(tt.op, tt.ft), "%s on %s", tt.op, tt.ft)
	}
}

func TestMatchValue(t *testing.T) {
	ts := time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)
	amount := 99.5

	tests := []struct {
		name string
		v    any
		f    ColumnFilter
		want bool
	}{
		{"text contains case-insensitive", "Northwind Traders", ColumnFilter{Operator: OpContains, Value: "TRADERS"}, true},
		{"text equals", "abc", ColumnFilter{Operator: OpEquals, Value: "ABC"}, true},
		{"text starts", "abc", ColumnFilter{Operator: OpStartsWith, Value: "ab"}, true},
		{"text ends", "abc", ColumnFilter{Operator: OpEndsWith, Value: "ab"}, false},

		{"numeric gt", 10, ColumnFilter{Type: FieldNumeric, Operator: OpGreater, Value: "9.5"}, true},
		{"numeric lt", 10, ColumnFilter{Type: FieldNumeric, Operator: OpLess, Value: "9.5"}, false},
		{"numeric eq pointer", &amount, ColumnFilter{Type: FieldNumeric, Operator: OpEquals, Value: "99.50"}, true},
		{"numeric string value", "$1,000", ColumnFilter{Type: FieldNumeric, Operator: OpGreaterEq, Value: "1000"}, true},
		{"numeric bad filter", 10, ColumnFilter{Type: FieldNumeric, Operator: OpEquals, Value: "ten"}, false},
		{"numeric NaN never gt", math.NaN(), ColumnFilter{Type: FieldNumeric, Operator: OpGreater, Value: "1000"}, false},
		{"numeric NaN never gte", math.NaN(), ColumnFilter{Type: FieldNumeric, Operator: OpGreaterEq, Value: "0.5"}, false},
		{"numeric NaN never lt", math.NaN(), ColumnFilter{Type: FieldNumeric, Operator: OpLess, Value: "1000"}, false},
		{"numeric text value not a number", "n/a", ColumnFilter{Type: FieldNumeric, Operator: OpGreater, Value: "0"}, false},
		{"percent filter scales to ratio", 0.32, ColumnFilter{Type: FieldNumeric, Operator: OpGreaterEq, Value: "30", Percent: true}, true},
		{"percent filter accepts sign", 0.32, ColumnFilter{Type: FieldNumeric, Operator: OpLess, Value: "30%", Percent: true}, false},

		{"date eq ignores time of day", ts, ColumnFilter{Type: FieldDate, Operator: OpEquals, Value: "05/20/2024"}, true},
		{"date gte", ts, ColumnFilter{Type: FieldDate, Operator: OpGreaterEq, Value: "2024-05-21"}, false},
		{"date from string", "2024-05-20", ColumnFilter{Type: FieldDate, Operator: OpLessEq, Value: "2024-05-20"}, true},

		{"bool yes", true, ColumnFilter{Type: FieldBool, Operator: OpEquals, Value: "yes"}, true},
		{"bool false", true, ColumnFilter{Type: FieldBool, Operator: OpEquals, Value: "false"}, false},

		{"enum in", "closed", ColumnFilter{Type: FieldEnum, Operator: OpIn, Value: "open, Closed"}, true},
		{"enum eq", "open", ColumnFilter{Type: FieldEnum, Operator: OpEquals, Value: "closed"}, false},

		{"nil never matches", nil, ColumnFilter{Operator: OpContains, Value: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchValue(tt.v, tt.v != nil, tt.f))
		})
	}
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, matchesSearch("", []string{"x"}))
	assert.True(t, matchesSearch("  ", nil))
	assert.True(t, matchesSearch("ACME", []string{"foo", "Acme Corp"}))
	assert.False(t, matchesSearch("zzz", []string{"foo", "Acme Corp"}))
}

func TestFilterSet_Active(t *testing.T) {
	fs := FilterSet{Filters: []ColumnFilter{
		{Column: "status", Operator: OpEquals, Value: "open"},
		{Column: "amount", Operator: OpGreaterEq, Value: "100"},
	}}
	assert.Equal(t, map[string][]string{"status": {"eq:open"}, "amount": {"gte:100"}}, fs.Active())

	ranged := FilterSet{Filters: []ColumnFilter{
		{Column: "amount", Operator: OpGreaterEq, Value: "100"},
		{Column: "amount", Operator: OpLess, Value: "500"},
	}}
	assert.Equal(t, map[string][]string{"amount": {"gte:100", "lt:500"}}, ranged.Active())
}
