// Package datatable implements the generic tabular data component shared by
// every ERP page: column descriptors, a stable sorting engine, a pagination
// engine and a table session that composes them into a renderable view.
//
// The package has no UI or transport dependencies. Records are opaque values
// of any type T; the only typed boundary is the [Column] descriptor, whose
// Accessor extracts a sortable value and whose Render turns a value into
// display text.
//
// # Composition
//
// The derived view is always computed in the same order:
//
//  1. The host narrows its record set (search, filters) and hands it over.
//  2. [SortRows] orders the full narrowed set by the active [SortState].
//  3. [Paginate] slices the visible window out of the sorted set.
//
// Sorting is never applied inside a page window only, so changing the sort
// column can move a record across page boundaries.
//
// # Degenerate input
//
// Nothing in this package returns an error at render time. Unknown or
// unsortable sort columns keep the input order, out-of-range page requests are
// clamped, empty row sets produce an empty first page, and duplicate column ids
// resolve to the first matching descriptor. [ValidateColumns] is available for
// hosts and tests that want configuration mistakes reported up front.
//
// # Sessions
//
// A [Table] owns the sort and pagination state of one table instance. Hosts
// that keep state elsewhere (for example in URL query parameters) rebuild a
// session per request with [Restore]; hosts that only need a single render use
// [Render].
package datatable
