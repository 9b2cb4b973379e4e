package core

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/JonMunkholm/erpgrid/internal/datatable"
	"github.com/google/uuid"
)

// NoMatchDescription is shown when search or filters narrowed a non-empty
// page down to nothing.
const NoMatchDescription = "Try adjusting your search or filters to find what you're looking for."

// rowKeySpace namespaces generated row keys.
var rowKeySpace = uuid.MustParse("6f1c3f5e-2a4b-4d8e-9c1a-7b2e5d4f8a90")

// PageDef declares a typed host page.
type PageDef[T any] struct {
	Info    PageInfo
	Columns []datatable.Column[T]
	Fields  []FieldSpec
	Source  Source[T]

	// SearchFields returns the text matched by the search box. When nil the
	// rendered text of every column is searched.
	SearchFields func(T) []string

	// Key returns a stable identifier for a record. When nil a key is derived
	// from the rendered cells.
	Key func(T) string

	DefaultSort datatable.SortState
	PageSize    int

	// DisableSorting and DisablePaging switch off the corresponding engine.
	DisableSorting bool
	DisablePaging  bool
	PagerWindow    int
}

type page[T any] struct {
	def    PageDef[T]
	fields map[string]FieldSpec
}

// NewPage adapts a typed page definition to the Page interface.
// Panics if the column set is invalid or no source is configured.
func NewPage[T any](def PageDef[T]) Page {
	if def.Info.Key == "" {
		panic("page key is required")
	}
	if def.Source == nil {
		panic(fmt.Sprintf("page %s: source is required", def.Info.Key))
	}
	if err := datatable.ValidateColumns(def.Columns); err != nil {
		panic(fmt.Sprintf("page %s: %v", def.Info.Key, err))
	}
	if def.PageSize <= 0 {
		def.PageSize = datatable.DefaultPageSize
	}

	def.Fields = slices.Clone(def.Fields)
	fields := make(map[string]FieldSpec, len(def.Fields))
	for i, f := range def.Fields {
		if f.Label == "" {
			for _, col := range def.Columns {
				if col.ID == f.Column {
					f.Label = col.Header
					break
				}
			}
			def.Fields[i] = f
		}
		fields[f.Column] = f
	}

	return &page[T]{def: def, fields: fields}
}

func (p *page[T]) Info() PageInfo { return p.def.Info }

func (p *page[T]) FieldSpecs() []FieldSpec { return p.def.Fields }

func (p *page[T]) DefaultPageSize() int { return p.def.PageSize }

func (p *page[T]) Columns() []ColumnInfo {
	cols := make([]ColumnInfo, len(p.def.Columns))
	for i, c := range p.def.Columns {
		align := c.Align
		if align == "" {
			align = datatable.AlignLeft
		}
		cols[i] = ColumnInfo{ID: c.ID, Header: c.Header, Sortable: c.Sortable && !p.def.DisableSorting, Align: align}
	}
	return cols
}

// View loads the records, narrows them by search and filters, then sorts and
// pages the narrowed set.
func (p *page[T]) View(ctx context.Context, q Query) (*TableView, error) {
	all, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	filters := p.validFilters(q.Filters)
	rows := p.narrow(all, q.Search, filters)
	filtered := strings.TrimSpace(q.Search) != "" || len(filters.Filters) > 0

	opts := p.options(q.PageSize)
	tbl := datatable.Restore(p.def.Columns, opts, rows, p.sortFor(q), q.Page)
	v := tbl.View()

	out := &TableView{
		Info:          p.def.Info,
		Headers:       v.Headers,
		Rows:          make([]ViewRow, len(v.Rows)),
		Pager:         v.Pager,
		Sort:          v.Sort,
		Search:        strings.TrimSpace(q.Search),
		ActiveFilters: filters.Active(),
		Fields:        p.def.Fields,
		TotalRecords:  len(all),
		Filtered:      filtered,
		Empty:         v.Empty,
	}
	for i, r := range v.Rows {
		out.Rows[i] = ViewRow{Key: p.rowKey(r.Record, r.Cells), Cells: r.Cells}
	}

	if v.Empty {
		if filtered && len(all) > 0 {
			out.EmptyTitle = p.noMatchMessage()
			out.EmptyDescription = NoMatchDescription
		} else {
			out.EmptyTitle = v.EmptyMessage
			out.EmptyDescription = v.EmptyDescription
		}
	}

	return out, nil
}

// Export streams the header row followed by every narrowed record in the
// active sort order. Paging is ignored.
func (p *page[T]) Export(ctx context.Context, q Query, emit func(record []string) error) error {
	all, err := p.load(ctx)
	if err != nil {
		return err
	}

	rows := p.narrow(all, q.Search, p.validFilters(q.Filters))
	sorted := rows
	if !p.def.DisableSorting {
		sorted = datatable.SortRows(rows, p.def.Columns, p.sortFor(q))
	}

	header := make([]string, len(p.def.Columns))
	for i, c := range p.def.Columns {
		header[i] = c.Header
	}
	if err := emit(header); err != nil {
		return err
	}

	for i, rec := range sorted {
		if i%500 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		record := make([]string, len(p.def.Columns))
		for j, c := range p.def.Columns {
			record[j] = c.Cell(rec)
		}
		if err := emit(record); err != nil {
			return err
		}
	}
	return nil
}

func (p *page[T]) load(ctx context.Context) ([]T, error) {
	rows, err := p.def.Source.Load(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, p.def.Info.Key, err)
	}
	return rows, nil
}

func (p *page[T]) options(size int) datatable.Options {
	if size <= 0 {
		size = p.def.PageSize
	}
	return datatable.Options{
		Pagination: datatable.PaginationOptions{
			Enabled:     !p.def.DisablePaging,
			PageSize:    size,
			DefaultPage: 1,
		},
		Sorting: datatable.SortingOptions{
			Enabled:     !p.def.DisableSorting,
			DefaultSort: p.def.DefaultSort,
		},
		EmptyMessage:     p.def.Info.EmptyMessage,
		EmptyDescription: p.def.Info.EmptyDescription,
		PagerWindow:      p.def.PagerWindow,
	}
}

// sortFor returns the query's sort, or the page default when the query
// carries none.
func (p *page[T]) sortFor(q Query) datatable.SortState {
	if q.Sort != nil {
		return *q.Sort
	}
	s := p.def.DefaultSort
	if s.IsSorted() && s.Direction == "" {
		s.Direction = datatable.Asc
	}
	return s
}

// validFilters drops filters on undeclared columns and operators the
// column's type does not support. The declared field type wins over the
// caller's.
func (p *page[T]) validFilters(fs FilterSet) FilterSet {
	var out FilterSet
	for _, f := range fs.Filters {
		spec, ok := p.fields[f.Column]
		if !ok || strings.TrimSpace(f.Value) == "" {
			continue
		}
		f.Type = spec.Type
		f.Percent = spec.Percent
		if f.Operator == "" {
			f.Operator = defaultOperator(spec.Type)
		}
		if !IsValidOperator(f.Operator, f.Type) {
			continue
		}
		out.Filters = append(out.Filters, f)
	}
	return out
}

func (p *page[T]) narrow(all []T, search string, fs FilterSet) []T {
	if strings.TrimSpace(search) == "" && len(fs.Filters) == 0 {
		return all
	}

	out := make([]T, 0, len(all))
	for _, rec := range all {
		if !matchesSearch(search, p.searchText(rec)) {
			continue
		}
		if !p.matchesFilters(rec, fs) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (p *page[T]) matchesFilters(rec T, fs FilterSet) bool {
	for _, f := range fs.Filters {
		col, ok := p.column(f.Column)
		if !ok {
			return false
		}
		v, ok := col.Value(rec)
		if !matchValue(v, ok, f) {
			return false
		}
	}
	return true
}

func (p *page[T]) searchText(rec T) []string {
	if p.def.SearchFields != nil {
		return p.def.SearchFields(rec)
	}
	out := make([]string, len(p.def.Columns))
	for i, c := range p.def.Columns {
		out[i] = c.Cell(rec)
	}
	return out
}

func (p *page[T]) column(id string) (datatable.Column[T], bool) {
	for _, c := range p.def.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return datatable.Column[T]{}, false
}

func (p *page[T]) rowKey(rec T, cells []datatable.Cell) string {
	if p.def.Key != nil {
		return p.def.Key(rec)
	}
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.Text)
		b.WriteByte(0x1f)
	}
	return uuid.NewSHA1(rowKeySpace, []byte(p.def.Info.Key+"\x1e"+b.String())).String()
}

func (p *page[T]) noMatchMessage() string {
	if p.def.Info.NoMatchMessage != "" {
		return p.def.Info.NoMatchMessage
	}
	label := p.def.Info.Label
	if label == "" {
		label = "records"
	}
	return "No " + strings.ToLower(label) + " found"
}

func defaultOperator(ft FieldType) FilterOperator {
	if ft == FieldText {
		return OpContains
	}
	return OpEquals
}
