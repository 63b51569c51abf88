// Package baboo serves a personal portfolio and blog built with Go, Echo
// and templ. Articles are markdown files with YAML front matter read from a
// content directory; every page carries SEO and Open Graph metadata.
//
// Templates are provided through the ViewFuncs struct; DefaultViews wires
// the components of the views package.
package baboo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Baboo7/baboo.dev/article"
	"github.com/Baboo7/baboo.dev/i18n"
	"github.com/Baboo7/baboo.dev/seo"
	"github.com/Baboo7/baboo.dev/views"
)

// ViewFuncs holds the templ components the handlers render. Replacing a
// field customizes one page without touching the handler logic.
type ViewFuncs struct {
	Home        func(page views.Page, latest []article.Metadata) templ.Component
	ArticleList func(page views.Page, articles []article.Metadata) templ.Component
	Article     func(page views.Page, a article.Article) templ.Component
	NotFound    func(page views.Page) templ.Component
	ServerError func(page views.Page) templ.Component
}

// DefaultViews returns the components of the views package.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		ArticleList: views.ArticleList,
		Article:     views.Article,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// App is the central application. It wires together the article store,
// cache, SEO builder, handlers, middleware and templates.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Service  *article.Service
	Cache    *article.Cache
	Articles article.Source
	SEO      *seo.Builder
	Metrics  *Metrics
	Views    ViewFuncs

	tr           i18n.Translator
	getenv       func(string) string
	logger       *slog.Logger
	contentFS    fs.FS
	ogLimiter    *RateLimiter
	customRoutes []func(*App)
	staticDir    string
	ready        bool
}

// New creates an App with the given configuration and views.
func New(cfg SiteConfig, v ViewFuncs, opts ...Option) *App {
	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     v,
		getenv:    os.Getenv,
		logger:    slog.Default(),
		staticDir: "public",
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.tr == nil {
		a.tr = i18n.Default()
	}
	a.Config.setDefaults(a.tr, a.getenv)
	a.Echo.HideBanner = true
	return a
}

// Setup builds the article store, metrics, middleware and routes. Start
// calls it; tests call it directly and drive a.Echo with httptest.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}

	fsys := a.contentFS
	if fsys == nil {
		info, err := os.Stat(a.Config.ContentDir)
		if err != nil {
			return fmt.Errorf("baboo: content dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("baboo: content dir %q is not a directory", a.Config.ContentDir)
		}
		fsys = os.DirFS(a.Config.ContentDir)
	}

	a.Metrics = NewMetrics(prometheus.NewRegistry())
	a.SEO = seo.NewBuilder(a.tr, seo.WithGetenv(a.getenv))
	repo := article.NewRepository(fsys, article.WithFolder(a.Config.ArticlesFolder))
	a.Service = article.NewService(repo, article.WithLogger(a.logger))
	a.Articles = a.Service
	if a.Config.CacheTTL > 0 {
		a.Cache = article.NewCache(a.Service, a.Config.CacheTTL, article.WithRecorder(a.Metrics))
		a.Articles = a.Cache
	}
	a.ogLimiter = NewRateLimiter(a.Config.OGImageLimit, a.Config.OGImageWindow)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets up the App and serves HTTP until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}
	defer a.Close()

	if a.Config.WatchContent && a.Cache != nil && a.contentFS == nil {
		dir := filepath.Join(a.Config.ContentDir, a.Config.ArticlesFolder)
		go func() {
			if err := article.Watch(ctx, dir, article.DefaultExtension, a.Cache, a.logger); err != nil {
				a.logger.Error("content watcher stopped", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/metrics", a.Metrics.Handler())
	e.GET("/api/og", a.handleOGImage)

	e.GET("/", a.handleHome)
	articles := a.articlesPath()
	e.GET(articles, a.handleArticles)
	e.GET(articles+":slug/", a.handleArticle)
}

// articlesPath is the route prefix of the article pages, e.g. "/articles/".
func (a *App) articlesPath() string {
	folder := strings.Trim(a.Config.ArticlesFolder, "/")
	if folder == "" {
		return "/"
	}
	return "/" + folder + "/"
}

// Close releases background resources. Call it when the app shuts down.
func (a *App) Close() error {
	if a.ogLimiter != nil {
		a.ogLimiter.Stop()
	}
	return nil
}
