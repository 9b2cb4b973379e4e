package core

import (
	"context"

	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// FieldType represents the data type of a filterable column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldEnum
	FieldDate
	FieldNumeric
	FieldBool
)

// String returns the lowercase name used in templates and JSON.
func (ft FieldType) String() string {
	switch ft {
	case FieldEnum:
		return "enum"
	case FieldDate:
		return "date"
	case FieldNumeric:
		return "numeric"
	case FieldBool:
		return "bool"
	default:
		return "text"
	}
}

// FieldSpec declares a column that can be filtered.
type FieldSpec struct {
	Column     string    // Column id the filter applies to
	Label      string    // Display label (defaults to the column header)
	Type       FieldType // Drives the allowed operators and comparison
	EnumValues []string  // Allowed values for FieldEnum

	// Percent marks a numeric column holding a ratio that is displayed as a
	// percentage. Filter values are entered in percent ("50" or "50%").
	Percent bool
}

// PageInfo contains display information about a page.
type PageInfo struct {
	Key         string // Unique identifier: "crm_leads"
	Group       string // ERP module: "CRM", "HR", "Inventory"
	Label       string // Display name: "Leads"
	Description string // One-line summary shown on the dashboard
	SearchHint  string // Placeholder for the search box

	// EmptyMessage and EmptyDescription are shown when the page has no
	// records at all. NoMatchMessage is shown when search or filters
	// removed every record.
	EmptyMessage     string
	EmptyDescription string
	NoMatchMessage   string
}

// ColumnInfo is the type-erased description of a table column.
type ColumnInfo struct {
	ID       string          `json:"id"`
	Header   string          `json:"header"`
	Sortable bool            `json:"sortable"`
	Align    datatable.Align `json:"align"`
}

// FilterOperator represents a comparison operator for column filters.
type FilterOperator string

const (
	OpContains   FilterOperator = "contains"
	OpEquals     FilterOperator = "eq"
	OpStartsWith FilterOperator = "starts"
	OpEndsWith   FilterOperator = "ends"
	OpGreaterEq  FilterOperator = "gte"
	OpLessEq     FilterOperator = "lte"
	OpGreater    FilterOperator = "gt"
	OpLess       FilterOperator = "lt"
	OpIn         FilterOperator = "in"
)

// ColumnFilter represents a single filter condition on a column.
type ColumnFilter struct {
	Column   string         // Column id
	Operator FilterOperator // Comparison operator
	Value    string         // Filter value (comma-separated for OpIn)
	Type     FieldType      // Column type for comparison
	Percent  bool           // Value is a percentage of a ratio column
}

// FilterSet represents all active filters (combined with AND logic).
type FilterSet struct {
	Filters []ColumnFilter
}

// Active returns the filters as column -> ["op:value", ...] for UI state.
// A column may carry several filters, such as both bounds of a range; they
// keep their query order.
func (fs FilterSet) Active() map[string][]string {
	active := make(map[string][]string, len(fs.Filters))
	for _, f := range fs.Filters {
		active[f.Column] = append(active[f.Column], string(f.Operator)+":"+f.Value)
	}
	return active
}

// Query is everything a host page needs to narrow, sort and page its records.
type Query struct {
	Search  string
	Filters FilterSet

	// Sort is nil when the caller did not choose a sort; the page default
	// applies. A non-nil unsorted state means "explicitly unsorted".
	Sort *datatable.SortState

	Page     int
	PageSize int // 0 means the page default
}

// ViewRow is one rendered row.
type ViewRow struct {
	Key   string           `json:"key"`
	Cells []datatable.Cell `json:"cells"`
}

// TableView is the type-erased derived view of a page for one query.
type TableView struct {
	Info    PageInfo               `json:"info"`
	Headers []datatable.HeaderCell `json:"headers"`
	Rows    []ViewRow              `json:"rows"`
	Pager   datatable.Pager        `json:"pager"`
	Sort    datatable.SortState    `json:"sort"`

	Search        string            `json:"search,omitempty"`
	ActiveFilters map[string][]string `json:"active_filters,omitempty"`
	Fields        []FieldSpec       `json:"fields,omitempty"`

	// TotalRecords counts records before search and filters.
	TotalRecords int  `json:"total_records"`
	Filtered     bool `json:"filtered"`

	Empty            bool   `json:"empty"`
	EmptyTitle       string `json:"empty_title,omitempty"`
	EmptyDescription string `json:"empty_description,omitempty"`
}

// Page is a registered host page. Implementations are created with NewPage.
type Page interface {
	Info() PageInfo
	Columns() []ColumnInfo
	FieldSpecs() []FieldSpec
	DefaultPageSize() int

	// View narrows, sorts and pages the records for q.
	View(ctx context.Context, q Query) (*TableView, error)

	// Export emits the header row and then every narrowed record in sort
	// order, one call per row.
	Export(ctx context.Context, q Query, emit func(record []string) error) error
}

// Source supplies a page's full record set.
type Source[T any] interface {
	Load(ctx context.Context) ([]T, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func(ctx context.Context) ([]T, error)

// Load implements Source.
func (f SourceFunc[T]) Load(ctx context.Context) ([]T, error) { return f(ctx) }
