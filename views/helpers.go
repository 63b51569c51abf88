package views

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/Baboo7/baboo.dev/article"
)

// ArticleHref returns the site-relative link of an article.
func ArticleHref(m article.Metadata) string {
	return "/" + strings.Trim(m.Permalink, "/") + "/"
}

// PathEscape wraps url.PathEscape for use in templates.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// CategoryClass returns the CSS classes of a category pill.
func CategoryClass(active bool) string {
	base := "inline-flex items-center rounded border border-ink px-2.5 py-1 text-[11px] font-semibold uppercase tracking-[0.12em]"
	if active {
		base += " bg-ink text-white"
	}
	return base
}

// JoinCategories formats categories as a comma-separated string.
func JoinCategories(categories []string) string {
	return strings.Join(categories, ", ")
}

// absoluteURL resolves ref against base. Absolute references are returned
// unchanged.
func absoluteURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// htmlWriter writes markup and remembers the first error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s with HTML escaping. It is safe for attribute values.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

// meta writes a <meta> tag with the given key attribute.
func (h *htmlWriter) meta(attr, key, content string) {
	h.raw(`<meta ` + attr + `="`)
	h.text(key)
	h.raw(`" content="`)
	h.text(content)
	h.raw(`">`)
}

// component builds a templ.Component from a function writing markup.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}
