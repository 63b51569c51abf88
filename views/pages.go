package views

import (
	"github.com/a-h/templ"

	"github.com/Baboo7/baboo.dev/article"
	"github.com/Baboo7/baboo.dev/markdown"
)

// Home renders the landing page: the hero section followed by the latest
// articles.
func Home(page Page, latest []article.Metadata) templ.Component {
	return Layout(page, component(func(h *htmlWriter) {
		h.raw(`<section class="hero"><h1 class="text-4xl font-bold">`)
		h.text(page.T("pages.landing.hero-section.title"))
		h.raw(`</h1><p class="mt-4 text-lg">`)
		h.text(page.T("pages.landing.hero-section.subtitle"))
		h.raw(`</p></section>`)

		h.raw(`<section class="latest mt-12"><h2 class="text-2xl font-semibold">`)
		h.text(page.T("pages.landing.latest.title"))
		h.raw(`</h2><p class="mt-2">`)
		h.text(page.T("pages.landing.latest.introduction"))
		h.raw(`</p>`)
		cards(h, page, latest)
		h.raw(`<p class="mt-6"><a href="`)
		h.text(page.ArticlesHref())
		h.raw(`">`)
		h.text(page.T("pages.articles.title"))
		h.raw(` &rarr;</a></p></section>`)
	}))
}

// ArticleList renders every article, newest first.
func ArticleList(page Page, articles []article.Metadata) templ.Component {
	return Layout(page, component(func(h *htmlWriter) {
		h.raw(`<h1 class="text-3xl font-bold">`)
		h.text(page.T("pages.articles.title"))
		h.raw(`</h1><p class="mt-2">`)
		h.text(page.T("pages.articles.description"))
		h.raw(`</p>`)
		cards(h, page, articles)
	}))
}

// Article renders one article with its markdown body.
func Article(page Page, a article.Article) templ.Component {
	return Layout(page, component(func(h *htmlWriter) {
		h.raw(`<article class="prose"><header><h1>`)
		h.text(a.Title)
		h.raw(`</h1><p class="text-sm"><time datetime="`)
		h.text(a.Date)
		h.raw(`">`)
		h.text(article.FormatDate(a.Date))
		h.raw(`</time>`)
		if a.Updated != "" {
			h.raw(` &middot; updated <time datetime="`)
			h.text(a.Updated)
			h.raw(`">`)
			h.text(article.FormatDate(a.Updated))
			h.raw(`</time>`)
		}
		h.raw(`</p>`)
		categories(h, a.Categories)
		h.raw(`</header><div class="article-body">`)
		h.component(markdown.Markdown(a.Content))
		h.raw(`</div></article>`)
	}))
}

// NotFound renders the 404 page.
func NotFound(page Page) templ.Component {
	return message(page, "pages.not-found.title", "pages.not-found.description")
}

// ServerError renders the 500 page.
func ServerError(page Page) templ.Component {
	return message(page, "pages.server-error.title", "pages.server-error.description")
}

func message(page Page, titleKey, descriptionKey string) templ.Component {
	return Layout(page, component(func(h *htmlWriter) {
		h.raw(`<section class="text-center"><h1 class="text-3xl font-bold">`)
		h.text(page.T(titleKey))
		h.raw(`</h1><p class="mt-4">`)
		h.text(page.T(descriptionKey))
		h.raw(`</p><p class="mt-6"><a href="/">`)
		h.text(page.T("metadata.owner.name"))
		h.raw(`</a></p></section>`)
	}))
}

func cards(h *htmlWriter, page Page, articles []article.Metadata) {
	h.raw(`<ul class="mt-6 space-y-6">`)
	for _, m := range articles {
		href := ArticleHref(m)
		h.raw(`<li class="card"><a href="`)
		h.text(href)
		h.raw(`"><h3 class="text-xl font-semibold">`)
		h.text(m.Title)
		h.raw(`</h3></a><p class="text-sm"><time datetime="`)
		h.text(m.Date)
		h.raw(`">`)
		h.text(article.FormatDate(m.Date))
		h.raw(`</time></p><p class="mt-2">`)
		h.text(m.Description)
		h.raw(`</p>`)
		categories(h, m.Categories)
		h.raw(`<a class="read-more" href="`)
		h.text(href)
		h.raw(`">`)
		h.text(page.T("components.card.read-more"))
		h.raw(`</a></li>`)
	}
	h.raw(`</ul>`)
}

func categories(h *htmlWriter, cats []string) {
	if len(cats) == 0 {
		return
	}
	h.raw(`<ul class="mt-2 flex gap-2" aria-label="`)
	h.text(JoinCategories(cats))
	h.raw(`">`)
	for _, c := range cats {
		h.raw(`<li class="`)
		h.text(CategoryClass(false))
		h.raw(`">`)
		h.text(c)
		h.raw(`</li>`)
	}
	h.raw(`</ul>`)
}
