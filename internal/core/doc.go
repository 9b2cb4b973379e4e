// Package core provides the host-page layer of the ERP front-end.
//
// This package sits between the generic datatable component and the
// frontends (HTTP handlers, CLI). It contains no UI or transport code, so
// web handlers, CLI commands and tests use it without modification.
//
// # Architecture
//
//   - Pages: registered via the registry, each page declares typed columns,
//     filterable fields, a default sort and a record source.
//   - Query: search term, column filters, sort and page requested by a client.
//   - Service: the entry point used by the frontends.
//
// # Page Registry
//
// Pages are registered at startup using [Register] (or [Registry.Register]).
// Each page is built from a typed [PageDef] with [NewPage]:
//
//	core.Register(core.NewPage(core.PageDef[Lead]{
//	    Info:    core.PageInfo{Key: "crm_leads", Group: "CRM", Label: "Leads"},
//	    Columns: leadColumns,
//	    Fields:  []core.FieldSpec{{Column: "status", Type: core.FieldEnum}},
//	    Source:  core.NewFixtureSource[Lead](fixtures, "fixtures/crm_leads.yaml"),
//	    DefaultSort: datatable.SortBy("name", datatable.Asc),
//	}))
//
// # Query Flow
//
// A page view runs in a fixed order:
//
//  1. The source loads the full record set.
//  2. Search and filters narrow it. Filters on undeclared columns and
//     operators a field type does not support are dropped.
//  3. The narrowed set is handed to the datatable session, which sorts the
//     whole set and then slices the requested page.
//
// Search matches case-insensitively against the page's search fields. Filters
// are combined with AND.
//
// # Error Handling
//
// Errors are wrapped with %w so sentinels survive. [MapError] converts any
// error into a [UserMessage] with a support code for display.
package core
