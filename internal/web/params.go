package web

import (
	"net/http"
	"strings"

	"github.com/JonMunkholm/erpgrid/internal/core"
)

// parseQuery builds a page query from URL parameters:
//
//	search=north&filter[status]=eq:new&sort=value&dir=desc&page=2&size=25
//
// Filters on columns the page does not declare are ignored. sort=none
// requests input order; an absent sort uses the page default.
func parseQuery(r *http.Request, p core.Page) (core.Query, error) {
	params := r.URL.Query()

	page, err := core.ParsePositive("page", params.Get("page"))
	if err != nil {
		return core.Query{}, err
	}
	size, err := core.ParsePositive("size", params.Get("size"))
	if err != nil {
		return core.Query{}, err
	}

	return core.Query{
		Search:   strings.TrimSpace(params.Get("search")),
		Filters:  parseFilters(params, p.FieldSpecs()),
		Sort:     core.ParseSort(params.Get("sort"), params.Get("dir")),
		Page:     page,
		PageSize: size,
	}, nil
}

// parseFilters extracts filter[column]=op:value parameters in field order.
func parseFilters(params map[string][]string, fields []core.FieldSpec) core.FilterSet {
	var fs core.FilterSet
	for _, spec := range fields {
		values := params["filter["+spec.Column+"]"]
		for _, v := range values {
			if f, ok := core.ParseFilter(spec.Column, v); ok {
				fs.Filters = append(fs.Filters, f)
			}
		}
	}
	return fs
}
