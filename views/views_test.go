package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baboo7/baboo.dev/article"
	"github.com/Baboo7/baboo.dev/i18n"
	"github.com/Baboo7/baboo.dev/seo"
)

func testPage() Page {
	tr := i18n.NewTable(map[string]string{
		"metadata.owner.name":                 "Baboo",
		"metadata.owner.job-name":             "Software Engineer",
		"pages.landing.hero-section.title":    "Hi there",
		"pages.landing.hero-section.subtitle": "I build things",
		"pages.landing.latest.title":          "Latest",
		"pages.landing.latest.introduction":   "My writings",
		"components.card.read-more":           "Read more",
	})
	getenv := func(string) string { return "" }
	meta := seo.NewBuilder(tr, seo.WithGetenv(getenv)).Generate(seo.BaseMetadata{
		Title:       "Home & more",
		Description: "A <description>",
	})
	return Page{
		Meta:       meta,
		Canonical:  meta.Canonical("articles"),
		JSONLD:     []string{`{"@type":"WebSite"}`},
		SiteName:   "Baboo",
		Translator: tr,
	}
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestLayoutHead(t *testing.T) {
	out := render(t, Layout(testPage(), nil))

	assert.Contains(t, out, "<title>Home &amp; more | Baboo</title>")
	assert.Contains(t, out, `<meta name="description" content="A &lt;description&gt;">`)
	assert.Contains(t, out, `<link rel="canonical" href="http://localhost:3000/articles/">`)
	assert.Contains(t, out, `<meta property="og:site_name" content="Baboo | Software Engineer">`)
	assert.Contains(t, out, `<meta property="og:image" content="http://localhost:3000/api/og?description=A+%3Cdescription%3E&amp;title=Home+%26+more">`)
	assert.Contains(t, out, `<meta property="og:image:width" content="1200">`)
	assert.Contains(t, out, `<script type="application/ld+json">{"@type":"WebSite"}</script>`)
}

func TestHomeListsLatest(t *testing.T) {
	latest := []article.Metadata{
		{Title: "Second", Date: "2024-02-10", Permalink: "articles/second", Categories: []string{"go"}},
		{Title: "First", Date: "2024-01-05", Permalink: "articles/first"},
	}
	out := render(t, Home(testPage(), latest))

	assert.Contains(t, out, "Hi there")
	assert.Contains(t, out, "My writings")
	assert.Contains(t, out, `href="/articles/second/"`)
	assert.Contains(t, out, "February 10, 2024")
	assert.Contains(t, out, "Read more")
	assert.Less(t, strings.Index(out, "Second"), strings.Index(out, "First"))
}

func TestHomeLinksConfiguredArticlesPath(t *testing.T) {
	page := testPage()
	page.ArticlesPath = "/posts/"
	out := render(t, Home(page, nil))

	assert.Contains(t, out, `<a href="/posts/">`)
	assert.NotContains(t, out, `href="/articles/"`)
}

func TestArticleRendersMarkdown(t *testing.T) {
	a := article.Article{
		Metadata: article.Metadata{Title: "<Hello>", Date: "2024-02-10", Updated: "2024-03-01"},
		Content:  "## Section\n\nSome *text*.",
	}
	out := render(t, Article(testPage(), a))

	assert.Contains(t, out, "<h1>&lt;Hello&gt;</h1>")
	assert.Contains(t, out, `<h2 id="section">Section</h2>`)
	assert.Contains(t, out, "<em>text</em>")
	assert.Contains(t, out, "March 1, 2024")
}

func TestArticleWithoutDate(t *testing.T) {
	out := render(t, Article(testPage(), article.Article{Metadata: article.Metadata{Title: "Draft"}}))
	assert.Contains(t, out, `<time datetime="">-</time>`)
}

func TestMessagePagesFallBackToKeys(t *testing.T) {
	page := testPage()
	page.Translator = nil

	assert.Contains(t, render(t, NotFound(page)), "pages.not-found.title")
	assert.Contains(t, render(t, ServerError(page)), "pages.server-error.description")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "/articles/post/", ArticleHref(article.Metadata{Permalink: "articles/post"}))
	assert.Equal(t, "/articles/", Page{}.ArticlesHref())
	assert.Equal(t, "/posts/", Page{ArticlesPath: "/posts/"}.ArticlesHref())
	assert.Equal(t, "a%20b", PathEscape("a b"))
	assert.Equal(t, "go, web", JoinCategories([]string{"go", "web"}))
	assert.Contains(t, CategoryClass(true), "bg-ink")
	assert.NotContains(t, CategoryClass(false), "bg-ink")
	assert.Equal(t, "https://baboo.dev/api/og?x=1", absoluteURL("https://baboo.dev", "/api/og?x=1"))
	assert.Equal(t, "https://cdn.example/x.png", absoluteURL("https://baboo.dev", "https://cdn.example/x.png"))
}
