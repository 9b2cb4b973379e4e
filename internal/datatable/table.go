package datatable

// DefaultEmptyMessage is shown when a table has no rows and the host did not
// supply a message.
const DefaultEmptyMessage = "No data available"

// DefaultPagerWindow is the number of numbered page links in a pager.
const DefaultPagerWindow = 5

// PaginationOptions configures paging. When Enabled is false all rows are
// shown on a single page.
type PaginationOptions struct {
	Enabled     bool
	PageSize    int
	DefaultPage int
}

// SortingOptions configures header sorting. When Enabled is false header
// clicks are ignored and rows keep the host's order.
type SortingOptions struct {
	Enabled     bool
	DefaultSort SortState
}

// Options is the options bag a host passes alongside rows and columns.
type Options struct {
	Pagination       PaginationOptions
	Sorting          SortingOptions
	EmptyMessage     string
	EmptyDescription string

	// PagerWindow is the number of numbered page links (DefaultPagerWindow if zero).
	PagerWindow int

	// OnSortChange and OnPageChange are invoked after the session state
	// actually changes.
	OnSortChange func(SortState)
	OnPageChange func(page int)
}

// Table is one table session. It owns the sort and pagination state for a
// single table instance; the host owns the rows.
//
// A Table is not safe for concurrent use.
type Table[T any] struct {
	columns []Column[T]
	opts    Options
	rows    []T
	sort    SortState
	page    PaginationState
}

// New creates a session with the default sort and page from opts.
func New[T any](columns []Column[T], opts Options) *Table[T] {
	t := &Table[T]{
		columns: columns,
		opts:    opts,
		sort:    Unsorted(),
		page: PaginationState{
			PageSize:    opts.Pagination.PageSize,
			CurrentPage: opts.Pagination.DefaultPage,
		}.normalized(),
	}
	if opts.Sorting.Enabled {
		t.sort = opts.Sorting.DefaultSort
		if t.sort.Direction == "" {
			t.sort.Direction = Asc
		}
	}
	return t
}

// Restore rebuilds a session from externally carried state, such as URL
// query parameters, and loads rows into it. The page is clamped to the row
// set; an invalid sort is kept but has no effect on ordering.
func Restore[T any](columns []Column[T], opts Options, rows []T, sort SortState, page int) *Table[T] {
	t := New(columns, opts)
	t.rows = rows
	if opts.Sorting.Enabled {
		t.sort = sort
	}
	if opts.Pagination.Enabled {
		t.page = GoToPage(t.page, page, len(rows))
	} else {
		t.page.CurrentPage = 1
	}
	return t
}

// Render is the one-shot form of the table contract: it builds a session
// with the default state, loads rows and returns the derived view.
func Render[T any](rows []T, columns []Column[T], opts Options) View[T] {
	t := New(columns, opts)
	t.SetRows(rows)
	return t.View()
}

// Columns returns the column descriptors.
func (t *Table[T]) Columns() []Column[T] { return t.columns }

// SortState returns the current sort state.
func (t *Table[T]) SortState() SortState { return t.sort }

// Pagination returns the current pagination state.
func (t *Table[T]) Pagination() PaginationState { return t.page }

// Len returns the number of rows currently loaded.
func (t *Table[T]) Len() int { return len(t.rows) }

// SetRows replaces the row set. If the current page is no longer valid for
// the new row count the session returns to page 1. The sort state is kept.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = rows
	if t.page.CurrentPage > TotalPages(len(rows), t.pageSize()) {
		t.setPage(1)
	}
}

// ChangeSort applies a header click on columnID. It reports whether the sort
// state changed.
func (t *Table[T]) ChangeSort(columnID string) bool {
	if !t.opts.Sorting.Enabled {
		return false
	}
	next := ToggleSort(t.sort, t.columns, columnID)
	if next == t.sort {
		return false
	}
	t.sort = next
	if t.opts.OnSortChange != nil {
		t.opts.OnSortChange(next)
	}
	return true
}

// ChangePage navigates to page, clamped to the current row set. It reports
// whether the current page changed.
func (t *Table[T]) ChangePage(page int) bool {
	if !t.opts.Pagination.Enabled {
		return false
	}
	next := GoToPage(t.page, page, len(t.rows)).CurrentPage
	if next == t.page.CurrentPage {
		return false
	}
	t.setPage(next)
	return true
}

func (t *Table[T]) setPage(page int) {
	if page == t.page.CurrentPage {
		return
	}
	t.page.CurrentPage = page
	if t.opts.OnPageChange != nil {
		t.opts.OnPageChange(page)
	}
}

// pageSize returns the effective page size. With pagination disabled every
// row fits on one page.
func (t *Table[T]) pageSize() int {
	if !t.opts.Pagination.Enabled {
		if len(t.rows) == 0 {
			return DefaultPageSize
		}
		return len(t.rows)
	}
	return t.page.PageSize
}

// Sorted returns the full row set in the current sort order.
func (t *Table[T]) Sorted() []T {
	if !t.opts.Sorting.Enabled {
		return SortRows(t.rows, t.columns, Unsorted())
	}
	return SortRows(t.rows, t.columns, t.sort)
}

// CurrentPage returns the visible window: the full set sorted first, then
// paginated.
func (t *Table[T]) CurrentPage() Page[T] {
	state := PaginationState{PageSize: t.pageSize(), CurrentPage: t.page.CurrentPage}
	return Paginate(t.Sorted(), state)
}
