package datatable

// HeaderCell describes one column header and its sort affordance.
type HeaderCell struct {
	ID       string `json:"id"`
	Header   string `json:"header"`
	Align    Align  `json:"align"`
	Sortable bool   `json:"sortable"`

	// Active is true when this column drives the current sort.
	Active    bool      `json:"active"`
	Direction Direction `json:"direction,omitempty"`

	// AriaSort is the aria-sort attribute value: "ascending", "descending"
	// or "none".
	AriaSort string `json:"aria_sort"`

	// NextSort is the state a click on this header would produce. Stateless
	// hosts use it to build header links.
	NextSort SortState `json:"next_sort"`
}

// Cell is one rendered cell.
type Cell struct {
	ColumnID string `json:"column"`
	Text     string `json:"text"`
	Align    Align  `json:"align"`
}

// RowView is one rendered row with the record it came from.
type RowView[T any] struct {
	Record T
	// Index is the 0-based position of the record in the sorted set.
	Index int
	Cells []Cell
}

// Pager describes page navigation for the current view.
type Pager struct {
	Enabled     bool  `json:"enabled"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalRows   int   `json:"total_rows"`
	PageSize    int   `json:"page_size"`
	FirstRow    int   `json:"first_row"`
	LastRow     int   `json:"last_row"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
	Pages       []int `json:"pages"`
}

// View is the derived view of a table session: what is displayed for the
// current rows, sort and page.
type View[T any] struct {
	Headers []HeaderCell
	Rows    []RowView[T]
	Pager   Pager
	Sort    SortState

	// Empty is true when there are no rows at all. Hosts render
	// EmptyMessage and EmptyDescription instead of a grid.
	Empty            bool
	EmptyMessage     string
	EmptyDescription string
}

// View computes the derived view for the current state.
func (t *Table[T]) View() View[T] {
	page := t.CurrentPage()

	active, sorted := effectiveSort(t.columns, t.sort)
	sorted = sorted && t.opts.Sorting.Enabled

	headers := make([]HeaderCell, len(t.columns))
	for i, col := range t.columns {
		h := HeaderCell{
			ID:       col.ID,
			Header:   col.Header,
			Align:    col.align(),
			Sortable: t.opts.Sorting.Enabled && col.Sortable,
			AriaSort: "none",
		}
		// Only the first descriptor with the active id is marked.
		if sorted && col.ID == active.ID && isFirst(t.columns, i) {
			h.Active = true
			h.Direction = t.sort.direction()
			if h.Direction == Desc {
				h.AriaSort = "descending"
			} else {
				h.AriaSort = "ascending"
			}
		}
		if h.Sortable {
			h.NextSort = ToggleSort(t.sort, t.columns, col.ID)
		} else {
			h.NextSort = t.sort
		}
		headers[i] = h
	}

	offset := (page.CurrentPage - 1) * page.PageSize
	rows := make([]RowView[T], len(page.Rows))
	for i, rec := range page.Rows {
		cells := make([]Cell, len(t.columns))
		for j, col := range t.columns {
			cells[j] = Cell{ColumnID: col.ID, Text: col.Cell(rec), Align: col.align()}
		}
		rows[i] = RowView[T]{Record: rec, Index: offset + i, Cells: cells}
	}

	window := t.opts.PagerWindow
	if window == 0 {
		window = DefaultPagerWindow
	}

	emptyMsg := t.opts.EmptyMessage
	if emptyMsg == "" {
		emptyMsg = DefaultEmptyMessage
	}

	return View[T]{
		Headers: headers,
		Rows:    rows,
		Pager: Pager{
			Enabled:     t.opts.Pagination.Enabled,
			CurrentPage: page.CurrentPage,
			TotalPages:  page.TotalPages,
			TotalRows:   page.TotalRows,
			PageSize:    page.PageSize,
			FirstRow:    page.FirstRow(),
			LastRow:     page.LastRow(),
			HasPrev:     page.HasPrev(),
			HasNext:     page.HasNext(),
			Pages:       PageWindow(page.CurrentPage, page.TotalPages, window),
		},
		Sort:             t.sort,
		Empty:            page.TotalRows == 0,
		EmptyMessage:     emptyMsg,
		EmptyDescription: t.opts.EmptyDescription,
	}
}

// isFirst reports whether columns[i] is the first descriptor with its id.
func isFirst[T any](columns []Column[T], i int) bool {
	for j := 0; j < i; j++ {
		if columns[j].ID == columns[i].ID {
			return false
		}
	}
	return true
}
