package datatable

// DefaultPageSize is used when a page size is missing or not positive.
const DefaultPageSize = 10

// PaginationState is the page size and current page of a table instance.
type PaginationState struct {
	PageSize    int
	CurrentPage int
}

// normalized returns the state with PageSize > 0 and CurrentPage >= 1.
func (p PaginationState) normalized() PaginationState {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	return p
}

// Page is one window of rows produced by Paginate.
type Page[T any] struct {
	Rows        []T
	CurrentPage int // effective page used for slicing
	PageSize    int
	TotalPages  int
	TotalRows   int
}

// FirstRow returns the 1-based index of the first row on the page, or 0 for
// an empty page.
func (p Page[T]) FirstRow() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return (p.CurrentPage-1)*p.PageSize + 1
}

// LastRow returns the 1-based index of the last row on the page, or 0 for an
// empty page.
func (p Page[T]) LastRow() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return p.FirstRow() + len(p.Rows) - 1
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.CurrentPage > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.CurrentPage < p.TotalPages }

// TotalPages returns max(1, ceil(totalRows/pageSize)).
func TotalPages(totalRows, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (totalRows + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// clampPage clamps page into [1, totalPages].
func clampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the window of rows selected by state.
//
// If state.CurrentPage is beyond the last page (for example after the host
// narrowed its row set), the last page is returned; state itself is not
// modified. An empty row set yields no rows and a single page.
func Paginate[T any](rows []T, state PaginationState) Page[T] {
	state = state.normalized()
	total := len(rows)
	totalPages := TotalPages(total, state.PageSize)
	current := clampPage(state.CurrentPage, totalPages)

	start := (current - 1) * state.PageSize
	end := start + state.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	window := rows[start:end:end]
	if window == nil {
		window = []T{}
	}

	return Page[T]{
		Rows:        window,
		CurrentPage: current,
		PageSize:    state.PageSize,
		TotalPages:  totalPages,
		TotalRows:   total,
	}
}

// GoToPage returns state moved to target, clamped into [1, totalPages] for a
// row set of totalRows. Out-of-range targets clamp silently.
func GoToPage(state PaginationState, target, totalRows int) PaginationState {
	state = state.normalized()
	state.CurrentPage = clampPage(target, TotalPages(totalRows, state.PageSize))
	return state
}

// PageWindow returns up to width consecutive page numbers around current,
// for rendering numbered pager links. A width <= 0 returns every page.
func PageWindow(current, totalPages, width int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	current = clampPage(current, totalPages)
	if width <= 0 || width > totalPages {
		width = totalPages
	}

	start := current - width/2
	if start < 1 {
		start = 1
	}
	if start+width-1 > totalPages {
		start = totalPages - width + 1
	}

	pages := make([]int, width)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
