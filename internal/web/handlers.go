package web

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/JonMunkholm/erpgrid/internal/web/templates"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

// handleHealth reports liveness and the number of registered pages.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"pages":  len(s.service.ListPages()),
	})
}

// handleDashboard renders the module overview.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, templates.Dashboard(templates.Nav{Groups: s.service.ListPagesByGroup()}))
}

// handlePageView renders a page, or only its grid for HTMX requests.
func (s *Server) handlePageView(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "pageKey")
	v, p, ok := s.loadView(w, r, key)
	if !ok {
		return
	}

	link := templates.LinkFor(templates.PageURL(key), v, p.DefaultPageSize())
	if isHTMX(r) {
		s.render(w, r, templates.TablePartial(v, link))
		return
	}

	nav := templates.Nav{Groups: s.service.ListPagesByGroup(), Active: key}
	exportURL := "/api/export/" + key + "?" + link.Query(v.Sort, 1)
	s.render(w, r, templates.PageView(nav, v, link, exportURL))
}

// handleListPages returns all pages organized by group.
func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.ListPagesByGroup())
}

// handlePageData returns the derived view of a page as JSON.
func (s *Server) handlePageData(w http.ResponseWriter, r *http.Request) {
	v, _, ok := s.loadView(w, r, chi.URLParam(r, "pageKey"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// handleExport streams every matching record as CSV in the requested sort
// order. Pagination parameters are ignored.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "pageKey")
	p, err := s.service.Page(key)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	q, err := parseQuery(r, p)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	// Headers are sent with the first record so load errors can still be
	// reported with a proper status.
	csvWriter := csv.NewWriter(w)
	rows := 0
	err = s.service.ExportPage(r.Context(), key, q, func(record []string) error {
		if rows == 0 {
			filename := fmt.Sprintf("%s_%s.csv", key, time.Now().Format("20060102_150405"))
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		}
		rows++
		return csvWriter.Write(record)
	})
	if err != nil && rows == 0 {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	csvWriter.Flush()

	logger := requestLogger(r)
	if err == nil {
		err = csvWriter.Error()
	}
	if err != nil {
		logger.Error("export interrupted", "rows", rows, "error", err)
		return
	}
	logger.Info("export complete", "rows", rows-1, "search", q.Search, "filters", len(q.Filters.Filters))
}

// loadView resolves the page and query for r and computes the view. On
// failure the error response has been written and ok is false.
func (s *Server) loadView(w http.ResponseWriter, r *http.Request, key string) (*core.TableView, core.Page, bool) {
	p, err := s.service.Page(key)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return nil, nil, false
	}
	q, err := parseQuery(r, p)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return nil, nil, false
	}
	v, err := s.service.GetPageData(r.Context(), key, q)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return nil, nil, false
	}
	return v, p, true
}

// render writes an HTML component.
func (s *Server) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		requestLogger(r).Error("render failed", "error", err)
	}
}
