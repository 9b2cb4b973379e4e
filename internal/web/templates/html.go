// Package templates renders the HTML views of the web UI.
//
// Components implement templ.Component so handlers render them the same way
// whether they produce a full page or an HTMX partial.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// html accumulates writes and keeps the first error.
type html struct {
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (h *html) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes escaped text.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes name="value" with the value escaped.
func (h *html) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// render writes a nested component.
func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func alignClass(a string) string {
	switch a {
	case "right":
		return "num"
	case "center":
		return "center"
	default:
		return ""
	}
}
