package views

import (
	"strconv"
	"time"

	"github.com/a-h/templ"
)

// Layout wraps body in the document shell: <head> metadata, header and
// footer.
func Layout(page Page, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		head(h, page)
		h.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
		h.raw(`<link rel="stylesheet" href="/public/styles.css">`)
		h.raw(`<link rel="alternate" type="application/rss+xml" title="`)
		h.text(page.SiteName)
		h.raw(`" href="/feed.xml">`)
		for _, doc := range page.JSONLD {
			h.raw(`<script type="application/ld+json">`)
			h.raw(doc)
			h.raw(`</script>`)
		}
		h.raw(`</head><body class="min-h-screen bg-paper text-ink">`)
		header(h, page)
		h.raw(`<main class="mx-auto max-w-3xl px-4 py-10">`)
		h.component(body)
		h.raw(`</main>`)
		footer(h, page)
		h.raw(`</body></html>`)
	})
}

func head(h *htmlWriter, page Page) {
	m := page.Meta
	h.raw(`<title>`)
	h.text(m.Title)
	h.raw(`</title>`)
	h.meta("name", "description", m.Description)
	if page.Canonical != "" {
		h.raw(`<link rel="canonical" href="`)
		h.text(page.Canonical)
		h.raw(`">`)
	}

	og := m.OpenGraph
	h.meta("property", "og:title", og.Title)
	h.meta("property", "og:description", og.Description)
	url := page.Canonical
	if url == "" {
		url = og.URL
	}
	h.meta("property", "og:url", url)
	h.meta("property", "og:site_name", og.SiteName)
	h.meta("property", "og:locale", og.Locale)
	h.meta("property", "og:type", og.Type)
	for _, img := range og.Images {
		h.meta("property", "og:image", absoluteURL(m.MetadataBase, img.URL))
		h.meta("property", "og:image:width", strconv.Itoa(img.Width))
		h.meta("property", "og:image:height", strconv.Itoa(img.Height))
	}
	h.meta("name", "twitter:card", "summary_large_image")
	h.meta("name", "twitter:title", og.Title)
	h.meta("name", "twitter:description", og.Description)
}

func header(h *htmlWriter, page Page) {
	h.raw(`<header class="border-b border-ink/10"><nav class="mx-auto flex max-w-3xl items-center justify-between px-4 py-4">`)
	h.raw(`<a href="/" class="font-semibold">`)
	h.text(page.T("metadata.owner.name"))
	h.raw(`</a><a href="`)
	h.text(page.ArticlesHref())
	h.raw(`">`)
	h.text(page.T("pages.articles.title"))
	h.raw(`</a></nav></header>`)
}

func footer(h *htmlWriter, page Page) {
	h.raw(`<footer class="mx-auto max-w-3xl px-4 py-8 text-sm text-ink/60"><p>&copy; `)
	h.text(strconv.Itoa(time.Now().Year()) + " " + page.T("metadata.owner.name") + ". " + page.T("components.footer.copyright"))
	h.raw(`</p><p><a href="/feed.xml">RSS</a></p></footer>`)
}
