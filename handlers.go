package baboo

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Baboo7/baboo.dev/article"
	"github.com/Baboo7/baboo.dev/ogimage"
	"github.com/Baboo7/baboo.dev/seo"
	"github.com/Baboo7/baboo.dev/views"
)

// homeArticleLimit is the number of articles listed on the landing page.
const homeArticleLimit = 3

// page builds the view model shared by every template.
func (a *App) page(path string, base seo.BaseMetadata, jsonLD ...string) views.Page {
	meta := a.SEO.Generate(base)
	site := a.site()
	return views.Page{
		Meta:         meta,
		Canonical:    meta.Canonical(path),
		JSONLD:       append([]string{seo.WebsiteJSONLD(site)}, jsonLD...),
		SiteName:     site.Name,
		ArticlesPath: a.articlesPath(),
		Translator:   a.tr,
	}
}

func (a *App) site() seo.Site {
	return seo.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

// listArticles reads the sorted listing and records how long it took.
func (a *App) listArticles(limit int) ([]article.Metadata, error) {
	start := time.Now()
	articles, err := a.Articles.GetArticlesMetadata(limit)
	a.Metrics.ObserveListing(time.Since(start), err)
	return articles, err
}

func (a *App) handleHome(c echo.Context) error {
	latest, err := a.listArticles(homeArticleLimit)
	if err != nil {
		return err
	}
	page := a.page("", seo.BaseMetadata{
		Title:       "Home",
		Description: a.tr.Resolve("pages.landing.hero-section.subtitle"),
	})
	return Render(c, a.Views.Home(page, latest))
}

func (a *App) handleArticles(c echo.Context) error {
	articles, err := a.listArticles(article.NoLimit)
	if err != nil {
		return err
	}
	page := a.page(a.Config.ArticlesFolder, seo.BaseMetadata{
		Title:       a.tr.Resolve("pages.articles.title"),
		Description: a.tr.Resolve("pages.articles.description"),
	})
	return Render(c, a.Views.ArticleList(page, articles))
}

func (a *App) handleArticle(c echo.Context) error {
	art := a.Articles.GetArticleBySlug(c.Param("slug"))
	if art == nil {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.notFoundPage()))
	}
	page := a.page(art.Permalink, seo.BaseMetadata{
		Title:       art.Title,
		Description: art.Description,
	}, seo.ArticleJSONLD(a.site(), art.Metadata))
	return Render(c, a.Views.Article(page, *art))
}

func (a *App) handleOGImage(c echo.Context) error {
	if !a.ogLimiter.Allow(c.RealIP()) {
		a.Metrics.ObserveOGImage(ogResultLimited)
		return c.String(http.StatusTooManyRequests, "Too many requests. Try again later.")
	}

	var buf bytes.Buffer
	err := ogimage.Render(&buf, ogimage.Card{
		Title:       c.QueryParam("title"),
		Description: c.QueryParam("description"),
		Footer:      strings.TrimPrefix(strings.TrimPrefix(a.Config.URL, "https://"), "http://"),
	})
	if err != nil {
		a.Metrics.ObserveOGImage(ogResultError)
		return err
	}
	a.Metrics.ObserveOGImage(ogResultOK)
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (a *App) handleSitemap(c echo.Context) error {
	articles, err := a.listArticles(article.NoLimit)
	if err != nil {
		return err
	}
	return writeXML(c, "application/xml; charset=utf-8", BuildSitemap(a.Config.URL, a.Config.ArticlesFolder, articles))
}

func (a *App) handleFeed(c echo.Context) error {
	articles, err := a.listArticles(article.NoLimit)
	if err != nil {
		return err
	}
	return writeXML(c, "application/rss+xml; charset=utf-8", BuildFeed(a.site(), articles))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	sitemap := strings.TrimSuffix(a.Config.URL, "/") + "/sitemap.xml"
	return c.String(http.StatusOK, "User-agent: *\nAllow: /\n\nSitemap: "+sitemap+"\n")
}

func (a *App) notFoundPage() views.Page {
	return a.page("", seo.BaseMetadata{
		Title:       a.tr.Resolve("pages.not-found.title"),
		Description: a.tr.Resolve("pages.not-found.description"),
	})
}

func (a *App) serverErrorPage() views.Page {
	return a.page("", seo.BaseMetadata{
		Title:       a.tr.Resolve("pages.server-error.title"),
		Description: a.tr.Resolve("pages.server-error.description"),
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.notFoundPage()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.serverErrorPage()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
