package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// QueryTimeout bounds a single page view or export.
var QueryTimeout = 30 * time.Second

// Limits caps what a client may ask for.
type Limits struct {
	// MaxPageSize caps Query.PageSize. Zero means unlimited.
	MaxPageSize int
}

// Service is the entry point used by the web and CLI frontends.
type Service struct {
	registry *Registry
	limits   Limits
}

// NewService creates a Service over reg. A nil registry means the default
// registry.
func NewService(reg *Registry, limits Limits) *Service {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Service{registry: reg, limits: limits}
}

// PageSummary describes a page for listings.
type PageSummary struct {
	Key         string       `json:"key"`
	Group       string       `json:"group"`
	Label       string       `json:"label"`
	Description string       `json:"description,omitempty"`
	Columns     []ColumnInfo `json:"columns"`
	PageSize    int          `json:"page_size"`
}

func summarize(p Page) PageSummary {
	info := p.Info()
	return PageSummary{
		Key:         info.Key,
		Group:       info.Group,
		Label:       info.Label,
		Description: info.Description,
		Columns:     p.Columns(),
		PageSize:    p.DefaultPageSize(),
	}
}

// ListPages returns summaries of all registered pages.
func (s *Service) ListPages() []PageSummary {
	pages := s.registry.All()
	out := make([]PageSummary, len(pages))
	for i, p := range pages {
		out[i] = summarize(p)
	}
	return out
}

// GroupedPages is one ERP module and its pages.
type GroupedPages struct {
	Group string        `json:"group"`
	Pages []PageSummary `json:"pages"`
}

// ListPagesByGroup returns pages organized by group, groups sorted by name.
func (s *Service) ListPagesByGroup() []GroupedPages {
	groups := s.registry.Groups()
	out := make([]GroupedPages, 0, len(groups))
	for _, g := range groups {
		pages := s.registry.ByGroup(g)
		gp := GroupedPages{Group: g, Pages: make([]PageSummary, len(pages))}
		for i, p := range pages {
			gp.Pages[i] = summarize(p)
		}
		out = append(out, gp)
	}
	return out
}

// Page returns a registered page.
func (s *Service) Page(key string) (Page, error) {
	p, ok := s.registry.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, key)
	}
	return p, nil
}

// GetPageData returns the derived view of a page for q.
func (s *Service) GetPageData(ctx context.Context, key string, q Query) (*TableView, error) {
	p, err := s.Page(key)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	start := time.Now()
	view, err := p.View(ctx, s.clamp(q))
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", key, err)
	}

	slog.Debug("page view",
		"page", key,
		"sort", view.Sort.String(),
		"page_number", view.Pager.CurrentPage,
		"rows", view.Pager.TotalRows,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return view, nil
}

// ExportPage streams every record matching q in sort order through emit,
// starting with the header row.
func (s *Service) ExportPage(ctx context.Context, key string, q Query, emit func([]string) error) error {
	p, err := s.Page(key)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	if err := p.Export(ctx, q, emit); err != nil {
		return fmt.Errorf("export %s: %w", key, err)
	}
	return nil
}

func (s *Service) clamp(q Query) Query {
	if q.PageSize < 0 {
		q.PageSize = 0
	}
	if s.limits.MaxPageSize > 0 && q.PageSize > s.limits.MaxPageSize {
		q.PageSize = s.limits.MaxPageSize
	}
	return q
}
