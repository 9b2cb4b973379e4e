// Package pages declares the ERP list pages and installs them into a core
// registry. Each page reads its embedded YAML fixture unless a database is
// configured, in which case it reads the table named after the page key.
package pages

import (
	"embed"
	"math"
	"time"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/datatable"
	"github.com/JonMunkholm/erpgrid/internal/store"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

// nanFloat marks a derived number that cannot be computed.
var nanFloat = math.NaN()

// Options controls how pages are installed.
type Options struct {
	// DB, when non-nil, backs every page with its PostgreSQL table.
	DB store.Querier

	// DefaultPageSize applies to pages that do not declare their own.
	DefaultPageSize int

	// PagerWindow is the number of numbered page links.
	PagerWindow int
}

// Install registers every page into reg.
func Install(reg *core.Registry, opts Options) {
	registerCrmLeads(reg, opts)
	registerHrCorporateCards(reg, opts)
	registerInventoryItems(reg, opts)
	registerItErrorLogs(reg, opts)
	registerQualityInspections(reg, opts)
	registerFinanceLedger(reg, opts)
}

// sourceFor picks the record source for a page key.
func sourceFor[T any](opts Options, key string) core.Source[T] {
	if opts.DB != nil {
		return store.NewPGSource[T](opts.DB, key)
	}
	return core.NewFixtureSource[T](fixtures, "fixtures/"+key+".yaml")
}

// pageSize returns size, or the configured default when size is zero.
func (o Options) pageSize(size int) int {
	if size > 0 {
		return size
	}
	return o.DefaultPageSize
}

// Column helpers shared by the page files.

func text[T any](id, header string, get func(T) string) datatable.Column[T] {
	return datatable.Column[T]{ID: id, Header: header, Accessor: datatable.Field(get), Sortable: true}
}

func enum[T any](id, header string, get func(T) string) datatable.Column[T] {
	return datatable.Column[T]{
		ID: id, Header: header, Accessor: datatable.Field(get), Sortable: true,
		Render: func(v any, _ T) string { return core.TitleCase(v.(string)) },
	}
}

func money[T any](id, header string, get func(T) float64, currency func(T) string) datatable.Column[T] {
	return datatable.Column[T]{
		ID: id, Header: header, Accessor: datatable.Field(get), Sortable: true, Align: datatable.AlignRight,
		Render: func(v any, row T) string {
			code := "USD"
			if currency != nil {
				code = currency(row)
			}
			return core.FormatCurrency(v.(float64), code)
		},
	}
}

func count[T any](id, header string, get func(T) int) datatable.Column[T] {
	return datatable.Column[T]{
		ID: id, Header: header, Accessor: datatable.Field(get), Sortable: true, Align: datatable.AlignRight,
		Render: func(v any, _ T) string { return core.FormatNumber(float64(v.(int)), 0) },
	}
}

func date[T any](id, header string, get func(T) time.Time) datatable.Column[T] {
	return datatable.Column[T]{
		ID: id, Header: header, Accessor: datatable.Field(get), Sortable: true,
		Render: func(v any, _ T) string { return core.FormatDate(v.(time.Time)) },
	}
}

// optionalDate reads a nullable date. Missing dates sort last.
func optionalDate[T any](id, header string, get func(T) *time.Time) datatable.Column[T] {
	return datatable.Column[T]{
		ID: id, Header: header, Sortable: true,
		Accessor: func(row T) any {
			if t := get(row); t != nil {
				return *t
			}
			return nil
		},
		Render: func(v any, _ T) string {
			if t, ok := v.(time.Time); ok {
				return core.FormatDate(t)
			}
			return core.Placeholder
		},
	}
}

func timestamp[T any](id, header string, get func(T) time.Time) datatable.Column[T] {
	return datatable.Column[T]{
		ID: id, Header: header, Accessor: datatable.Field(get), Sortable: true,
		Render: func(v any, _ T) string { return core.FormatDateTime(v.(time.Time)) },
	}
}
