package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/erpgrid/internal/core"
	"github.com/a-h/templ"
)

// Nav is the sidebar state.
type Nav struct {
	Groups []core.GroupedPages
	Active string // active page key, empty on the dashboard
}

// PageURL is the path of a page view.
func PageURL(key string) string {
	return "/m/" + key
}

// Layout wraps body in the HTML document and sidebar.
func Layout(title string, nav Nav, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		h.text(title)
		h.raw(` · ERP</title>`,
			`<link rel="stylesheet" href="/static/app.css">`,
			`<script src="/static/app.js" defer></script>`,
			`</head><body><aside class="sidebar"><a class="brand" href="/">ERP</a><nav>`)

		for _, g := range nav.Groups {
			h.raw(`<div class="nav-group"><h3>`)
			h.text(g.Group)
			h.raw(`</h3><ul>`)
			for _, p := range g.Pages {
				h.raw(`<li><a`)
				h.attr("href", PageURL(p.Key))
				if p.Key == nav.Active {
					h.raw(` class="active" aria-current="page"`)
				}
				h.raw(`>`)
				h.text(p.Label)
				h.raw(`</a></li>`)
			}
			h.raw(`</ul></div>`)
		}

		h.raw(`</nav></aside><main>`)
		h.render(ctx, body)
		h.raw(`</main></body></html>`)
		return h.err
	})
}

// Dashboard lists every page grouped by module.
func Dashboard(nav Nav) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<header class="page-header"><h1>Modules</h1></header>`)
		for _, g := range nav.Groups {
			h.raw(`<section class="group"><h2>`)
			h.text(g.Group)
			h.raw(`</h2><div class="cards">`)
			for _, p := range g.Pages {
				h.raw(`<a class="card"`)
				h.attr("href", PageURL(p.Key))
				h.raw(`><strong>`)
				h.text(p.Label)
				h.raw(`</strong><p>`)
				h.text(p.Description)
				h.raw(`</p><span class="meta">`)
				h.text(strconv.Itoa(len(p.Columns)) + " columns")
				h.raw(`</span></a>`)
			}
			h.raw(`</div></section>`)
		}
		return h.err
	})
	return Layout("Dashboard", nav, body)
}

// ErrorAlert renders a user-facing error with its action and code.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div class="alert error" role="alert"><strong>`)
		h.text(message)
		h.raw(`</strong>`)
		if action != "" {
			h.raw(`<p>`)
			h.text(action)
			h.raw(`</p>`)
		}
		if code != "" {
			h.raw(`<small>Code: `)
			h.text(code)
			h.raw(`</small>`)
		}
		h.raw(`</div>`)
		return h.err
	})
}
