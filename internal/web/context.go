package web

import (
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/erpgrid/internal/logging"
	"github.com/go-chi/chi/v5"
)

// requestLogger returns a logger carrying the request id, route, page key
// and client address. RemoteAddr has already been resolved by TrustedRealIP.
func requestLogger(r *http.Request) *slog.Logger {
	args := []any{"method", r.Method, "path", r.URL.Path, "ip", r.RemoteAddr}
	if key := chi.URLParam(r, "pageKey"); key != "" {
		args = append(args, "page", key)
	}
	return logging.WithFields(r.Context(), args...)
}
