package datatable

import (
	"errors"
	"fmt"
	"reflect"
)

// Align controls horizontal alignment of a column's header and cells.
type Align string

const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// Column describes how one column is derived from a record of type T.
type Column[T any] struct {
	// ID identifies the column within a table. Must be unique.
	ID string

	// Header is the display label.
	Header string

	// Accessor extracts the column value from a record. The value is used for
	// sorting and is passed to Render. A nil Accessor yields no value.
	Accessor func(row T) any

	// Sortable enables header-click sorting for this column.
	Sortable bool

	// Render formats the value for display. When nil the value is printed
	// with fmt, and missing values display as "-".
	Render func(value any, row T) string

	// Align defaults to AlignLeft when empty.
	Align Align
}

// Common configuration errors reported by ValidateColumns.
var (
	ErrDuplicateColumn = errors.New("duplicate column id")
	ErrMissingAccessor = errors.New("sortable column has no accessor")
	ErrEmptyColumnID   = errors.New("column id is empty")
)

// Field adapts a typed getter into an Accessor.
//
//	datatable.Column[Lead]{ID: "name", Accessor: datatable.Field(func(l Lead) string { return l.Name })}
func Field[T, V any](get func(T) V) func(T) any {
	return func(row T) any { return get(row) }
}

// Value returns the accessor result for row. ok is false when the accessor
// is missing, panics, or yields a nil value.
func (c Column[T]) Value(row T) (v any, ok bool) {
	if c.Accessor == nil {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			v, ok = nil, false
		}
	}()
	v = c.Accessor(row)
	if isNil(v) {
		return nil, false
	}
	return v, true
}

// Cell returns the display text of this column for row.
func (c Column[T]) Cell(row T) (text string) {
	v, ok := c.Value(row)
	if c.Render != nil {
		defer func() {
			if r := recover(); r != nil {
				text = "-"
			}
		}()
		return c.Render(v, row)
	}
	if !ok {
		return "-"
	}
	return fmt.Sprint(Indirect(v))
}

// align returns the effective alignment.
func (c Column[T]) align() Align {
	switch c.Align {
	case AlignRight, AlignCenter:
		return c.Align
	default:
		return AlignLeft
	}
}

// findColumn returns the first column with the given id.
func findColumn[T any](columns []Column[T], id string) (Column[T], bool) {
	if id == "" {
		return Column[T]{}, false
	}
	for _, col := range columns {
		if col.ID == id {
			return col, true
		}
	}
	return Column[T]{}, false
}

// ValidateColumns reports configuration mistakes in a column set: empty or
// duplicate ids and sortable columns without an accessor. The rest of the
// package tolerates these (first id wins); this is for hosts and tests that
// want to fail fast.
func ValidateColumns[T any](columns []Column[T]) error {
	var errs []error
	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		if col.ID == "" {
			errs = append(errs, fmt.Errorf("column %d: %w", i, ErrEmptyColumnID))
			continue
		}
		if seen[col.ID] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.ID))
		}
		seen[col.ID] = true
		if col.Sortable && col.Accessor == nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingAccessor, col.ID))
		}
	}
	return errors.Join(errs...)
}

// isNil reports whether v is nil or a nil pointer, map, slice or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Indirect dereferences pointers until it reaches a non-pointer value. A nil
// pointer yields nil.
func Indirect(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
