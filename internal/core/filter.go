package core

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// IsValidOperator checks if an operator is valid for a given field type.
func IsValidOperator(op FilterOperator, ft FieldType) bool {
	switch ft {
	case FieldText:
		switch op {
		case OpContains, OpEquals, OpStartsWith, OpEndsWith:
			return true
		}
	case FieldNumeric:
		switch op {
		case OpEquals, OpGreaterEq, OpLessEq, OpGreater, OpLess:
			return true
		}
	case FieldDate:
		switch op {
		case OpEquals, OpGreaterEq, OpLessEq:
			return true
		}
	case FieldBool:
		return op == OpEquals
	case FieldEnum:
		switch op {
		case OpEquals, OpIn:
			return true
		}
	}
	return false
}

// matchValue reports whether a column value satisfies f. Missing values
// never match.
func matchValue(v any, ok bool, f ColumnFilter) bool {
	if !ok {
		return false
	}
	v = datatable.Indirect(v)
	if v == nil {
		return false
	}

	switch f.Type {
	case FieldNumeric:
		want, ok := filterNumber(f)
		if !ok {
			return false
		}
		got, ok := numberOf(v)
		if !ok {
			return false
		}
		return compareOp(cmp.Compare(got, want), f.Operator)

	case FieldDate:
		want, ok := ParseDate(f.Value)
		if !ok {
			return false
		}
		got, ok := dateOf(v)
		if !ok {
			return false
		}
		return compareOp(got.Compare(want), f.Operator)

	case FieldBool:
		want, ok := ParseBool(f.Value)
		if !ok {
			return false
		}
		got, ok := v.(bool)
		if !ok {
			got, ok = ParseBool(fmt.Sprint(v))
		}
		return ok && got == want

	case FieldEnum:
		got := fmt.Sprint(v)
		if f.Operator == OpIn {
			for _, want := range strings.Split(f.Value, ",") {
				if strings.EqualFold(got, strings.TrimSpace(want)) {
					return true
				}
			}
			return false
		}
		return strings.EqualFold(got, strings.TrimSpace(f.Value))

	default:
		got := strings.ToLower(fmt.Sprint(v))
		want := strings.ToLower(f.Value)
		switch f.Operator {
		case OpEquals:
			return got == want
		case OpStartsWith:
			return strings.HasPrefix(got, want)
		case OpEndsWith:
			return strings.HasSuffix(got, want)
		default:
			return strings.Contains(got, want)
		}
	}
}

// compareOp applies a comparison operator to a three-way compare result.
func compareOp(c int, op FilterOperator) bool {
	switch op {
	case OpEquals:
		return c == 0
	case OpGreaterEq:
		return c >= 0
	case OpLessEq:
		return c <= 0
	case OpGreater:
		return c > 0
	case OpLess:
		return c < 0
	}
	return false
}

// filterNumber parses the value of a numeric filter. Percent filters are
// scaled to the ratio the column holds.
func filterNumber(f ColumnFilter) (float64, bool) {
	raw := f.Value
	if f.Percent {
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "%")
	}
	n, ok := ParseNumber(raw)
	if !ok || math.IsNaN(n) {
		return 0, false
	}
	if f.Percent {
		n /= 100
	}
	return n, true
}

// numberOf converts a numeric or numeric-looking value to float64. NaN is
// undefined and reports false.
func numberOf(v any) (float64, bool) {
	var n float64
	switch val := v.(type) {
	case string:
		parsed, ok := ParseNumber(val)
		if !ok {
			return 0, false
		}
		n = parsed
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			n = rv.Float()
		default:
			return 0, false
		}
	}
	if math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// dateOf converts a time or date string to its calendar date (UTC).
func dateOf(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return dateOnly(val), true
	case string:
		return ParseDate(val)
	}
	return time.Time{}, false
}

// matchesSearch reports whether any of fields contains term (case-insensitive).
// An empty term matches everything.
func matchesSearch(term string, fields []string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
