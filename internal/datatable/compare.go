package datatable

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// keyKind orders values of different types against each other.
// Numbers sort before dates, dates before text.
type keyKind int

const (
	kindNumber keyKind = iota
	kindTime
	kindText
)

// sortKey is the normalized form of an accessor value.
type sortKey struct {
	defined bool
	kind    keyKind
	num     float64
	t       time.Time
	s       string
}

// isoDatePattern matches strings that start like an ISO-8601 date.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// isoLayouts are tried in order when a string looks like an ISO date.
var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Collation locale for text keys.
var collationTag = language.English

// newCollator returns a collator for one sort pass.
// collate.Collator is not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(collationTag)
}

// makeKey normalizes an accessor value into a sortKey.
func makeKey(v any, ok bool) sortKey {
	if !ok {
		return sortKey{}
	}
	v = Indirect(v)
	if v == nil {
		return sortKey{}
	}

	switch val := v.(type) {
	case time.Time:
		return sortKey{defined: true, kind: kindTime, t: val}
	case string:
		if t, ok := parseISODate(val); ok {
			return sortKey{defined: true, kind: kindTime, t: t}
		}
		return sortKey{defined: true, kind: kindText, s: val}
	case bool:
		n := 0.0
		if val {
			n = 1
		}
		return sortKey{defined: true, kind: kindNumber, num: n}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sortKey{defined: true, kind: kindNumber, num: float64(rv.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sortKey{defined: true, kind: kindNumber, num: float64(rv.Uint())}
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return sortKey{}
		}
		return sortKey{defined: true, kind: kindNumber, num: f}
	case reflect.String:
		return makeKey(rv.String(), true)
	}

	if s, ok := v.(fmt.Stringer); ok {
		return sortKey{defined: true, kind: kindText, s: s.String()}
	}
	return sortKey{defined: true, kind: kindText, s: fmt.Sprint(v)}
}

// parseISODate parses date-like strings such as "2025-10-01" or RFC 3339 timestamps.
func parseISODate(s string) (time.Time, bool) {
	if !isoDatePattern.MatchString(s) {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// compareKeys compares two defined keys in ascending order.
func compareKeys(a, b sortKey, coll *collate.Collator) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case kindNumber:
		return cmp.Compare(a.num, b.num)
	case kindTime:
		return a.t.Compare(b.t)
	default:
		return coll.CompareString(a.s, b.s)
	}
}

// CompareValues compares two accessor values the way the sorting engine does
// in ascending order. Missing values compare greater than any defined value.
func CompareValues(a, b any) int {
	ka := makeKey(a, !isNil(a))
	kb := makeKey(b, !isNil(b))
	switch {
	case !ka.defined && !kb.defined:
		return 0
	case !ka.defined:
		return 1
	case !kb.defined:
		return -1
	}
	return compareKeys(ka, kb, newCollator())
}
