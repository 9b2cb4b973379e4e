package templates

import (
	"net/url"
	"strconv"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
)

// Link rebuilds page URLs from the state of a rendered view, so header and
// pager links keep the search, filters and page size in effect.
type Link struct {
	Base    string
	Search  string
	Filters map[string][]string // column -> ["op:value", ...]
	Sort    datatable.SortState
	Size    int // 0 leaves the page default
}

// LinkFor captures the state of v. The page size is kept only when it
// differs from defaultSize.
func LinkFor(base string, v *core.TableView, defaultSize int) Link {
	l := Link{
		Base:    base,
		Search:  v.Search,
		Filters: v.ActiveFilters,
		Sort:    v.Sort,
	}
	if v.Pager.Enabled && v.Pager.PageSize != defaultSize {
		l.Size = v.Pager.PageSize
	}
	return l
}

// Page returns the URL of page n under the current sort.
func (l Link) Page(n int) string {
	return l.Base + "?" + l.Query(l.Sort, n)
}

// Sorted returns the URL for sort s. Sorting starts again from page 1.
func (l Link) Sorted(s datatable.SortState) string {
	return l.Base + "?" + l.Query(s, 1)
}

// Query encodes the state as URL query parameters. An unsorted state is
// written as sort=none so it is not replaced by the page default.
func (l Link) Query(s datatable.SortState, page int) string {
	q := url.Values{}
	if l.Search != "" {
		q.Set("search", l.Search)
	}
	for col, fs := range l.Filters {
		for _, f := range fs {
			q.Add("filter["+col+"]", f)
		}
	}
	if s.IsSorted() {
		q.Set("sort", s.ColumnID)
		q.Set("dir", string(s.Direction))
	} else {
		q.Set("sort", "none")
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if l.Size > 0 {
		q.Set("size", strconv.Itoa(l.Size))
	}
	return q.Encode()
}
