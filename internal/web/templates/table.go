package templates

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
	"github.com/a-h/templ"
)

// GridID is the element id HTMX requests swap.
const GridID = "grid"

// PageView renders a full page: layout, heading and the grid partial.
func PageView(nav Nav, v *core.TableView, link Link, exportURL string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<header class="page-header"><div><h1>`)
		h.text(v.Info.Label)
		h.raw(`</h1><p>`)
		h.text(v.Info.Description)
		h.raw(`</p></div><a class="button"`)
		h.attr("href", exportURL)
		h.raw(`>Export CSV</a></header>`)
		h.render(ctx, TablePartial(v, link))
		return h.err
	})
	return Layout(v.Info.Label, nav, body)
}

// TablePartial renders the toolbar, table or empty state, and pager.
func TablePartial(v *core.TableView, link Link) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div`)
		h.attr("id", GridID)
		h.raw(` class="grid">`)
		toolbar(h, v, link)

		if v.Empty {
			h.raw(`<div class="empty"><h3>`)
			h.text(v.EmptyTitle)
			h.raw(`</h3><p>`)
			h.text(v.EmptyDescription)
			h.raw(`</p></div></div>`)
			return h.err
		}

		table(h, v, link)
		pager(h, v.Pager, link)
		h.raw(`</div>`)
		return h.err
	})
}

func toolbar(h *html, v *core.TableView, link Link) {
	h.raw(`<form class="toolbar" method="get"`)
	h.attr("action", link.Base)
	h.raw(`><input type="search" name="search"`)
	h.attr("value", v.Search)
	h.attr("placeholder", v.Info.SearchHint)
	h.raw(`>`)

	for _, f := range v.Fields {
		if f.Type != core.FieldEnum {
			continue
		}
		name := "filter[" + f.Column + "]"
		current := v.ActiveFilters[f.Column]
		if len(current) > 1 {
			// Several filters on one column cannot be shown by a single
			// select; they travel as hidden inputs instead.
			continue
		}
		h.raw(`<select`)
		h.attr("name", name)
		h.attr("aria-label", f.Label)
		h.raw(`><option value="">All `)
		h.text(f.Label)
		h.raw(`</option>`)
		for _, val := range f.EnumValues {
			opt := string(core.OpEquals) + ":" + val
			h.raw(`<option`)
			h.attr("value", opt)
			if len(current) == 1 && strings.EqualFold(current[0], opt) {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(core.TitleCase(val))
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
	}

	// Filters without a control are carried as hidden inputs.
	for _, col := range slices.Sorted(maps.Keys(v.ActiveFilters)) {
		fs := v.ActiveFilters[col]
		if hasControl(v.Fields, col) && len(fs) <= 1 {
			continue
		}
		for _, f := range fs {
			hidden(h, "filter["+col+"]", f)
		}
	}
	if v.Sort.IsSorted() {
		hidden(h, "sort", v.Sort.ColumnID)
		hidden(h, "dir", string(v.Sort.Direction))
	} else {
		hidden(h, "sort", "none")
	}
	if link.Size > 0 {
		hidden(h, "size", strconv.Itoa(link.Size))
	}
	h.raw(`<button type="submit">Filter</button></form>`)

	if len(v.ActiveFilters) > 0 {
		h.raw(`<ul class="chips">`)
		for _, col := range slices.Sorted(maps.Keys(v.ActiveFilters)) {
			for i, f := range v.ActiveFilters[col] {
				without := link
				without.Filters = maps.Clone(link.Filters)
				without.Filters[col] = slices.Delete(slices.Clone(link.Filters[col]), i, i+1)

				h.raw(`<li>`)
				h.text(fieldLabel(v.Fields, col) + " " + describeFilter(f))
				h.raw(` <a aria-label="Remove filter" data-grid`)
				h.attr("href", without.Sorted(v.Sort))
				h.raw(`>&times;</a></li>`)
			}
		}
		h.raw(`</ul>`)
	}
}

func table(h *html, v *core.TableView, link Link) {
	h.raw(`<table><thead><tr>`)
	for _, hc := range v.Headers {
		h.raw(`<th scope="col"`)
		if c := alignClass(string(hc.Align)); c != "" {
			h.attr("class", c)
		}
		if hc.Sortable {
			h.attr("aria-sort", hc.AriaSort)
			h.raw(`><a data-grid`)
			h.attr("href", link.Sorted(hc.NextSort))
			h.raw(`>`)
			h.text(hc.Header)
			h.raw(sortIndicator(hc))
			h.raw(`</a></th>`)
			continue
		}
		h.raw(`>`)
		h.text(hc.Header)
		h.raw(`</th>`)
	}
	h.raw(`</tr></thead><tbody>`)

	for _, row := range v.Rows {
		h.raw(`<tr`)
		h.attr("data-key", row.Key)
		h.raw(`>`)
		for _, cell := range row.Cells {
			h.raw(`<td`)
			if c := alignClass(string(cell.Align)); c != "" {
				h.attr("class", c)
			}
			h.raw(`>`)
			h.text(cell.Text)
			h.raw(`</td>`)
		}
		h.raw(`</tr>`)
	}
	h.raw(`</tbody></table>`)
}

func pager(h *html, p datatable.Pager, link Link) {
	if !p.Enabled {
		return
	}
	h.raw(`<nav class="pager" aria-label="Pagination"><span>`)
	h.text(fmt.Sprintf("Showing %d to %d of %d results", p.FirstRow, p.LastRow, p.TotalRows))
	h.raw(`</span><ul>`)

	pageLink(h, link, p.CurrentPage-1, "Previous", p.HasPrev, false)
	for _, n := range p.Pages {
		pageLink(h, link, n, strconv.Itoa(n), true, n == p.CurrentPage)
	}
	pageLink(h, link, p.CurrentPage+1, "Next", p.HasNext, false)

	h.raw(`</ul></nav>`)
}

func pageLink(h *html, link Link, n int, label string, enabled, current bool) {
	switch {
	case current:
		h.raw(`<li><span aria-current="page">`)
		h.text(label)
		h.raw(`</span></li>`)
	case !enabled:
		h.raw(`<li><span class="disabled">`)
		h.text(label)
		h.raw(`</span></li>`)
	default:
		h.raw(`<li><a data-grid`)
		h.attr("href", link.Page(n))
		h.raw(`>`)
		h.text(label)
		h.raw(`</a></li>`)
	}
}

func hidden(h *html, name, value string) {
	h.raw(`<input type="hidden"`)
	h.attr("name", name)
	h.attr("value", value)
	h.raw(`>`)
}

func sortIndicator(hc datatable.HeaderCell) string {
	if !hc.Active {
		return ` <span class="sort-idle">↕</span>`
	}
	if hc.Direction == datatable.Desc {
		return ` <span class="sort-active">↓</span>`
	}
	return ` <span class="sort-active">↑</span>`
}

func hasControl(fields []core.FieldSpec, col string) bool {
	for _, f := range fields {
		if f.Column == col {
			return f.Type == core.FieldEnum
		}
	}
	return false
}

func fieldLabel(fields []core.FieldSpec, col string) string {
	for _, f := range fields {
		if f.Column == col && f.Label != "" {
			return f.Label
		}
	}
	return col
}

// describeFilter turns "gte:100" into "≥ 100".
func describeFilter(active string) string {
	op, value, _ := strings.Cut(active, ":")
	symbols := map[string]string{
		string(core.OpContains):   "contains",
		string(core.OpEquals):     "=",
		string(core.OpStartsWith): "starts with",
		string(core.OpEndsWith):   "ends with",
		string(core.OpGreaterEq):  "≥",
		string(core.OpLessEq):     "≤",
		string(core.OpGreater):    ">",
		string(core.OpLess):       "<",
		string(core.OpIn):         "in",
	}
	if s, ok := symbols[op]; ok {
		op = s
	}
	return op + " " + value
}
