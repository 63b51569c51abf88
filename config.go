package baboo

import (
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Baboo7/baboo.dev/i18n"
	"github.com/Baboo7/baboo.dev/seo"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string // Site name used in feeds (default: translated owner name)
	URL         string // Canonical URL for feeds and sitemap (default: seo.BaseURL)
	Description string // Site description for RSS and JSON-LD
	Author      string // Author name for JSON-LD

	Addr           string // Listen address (default ":3000")
	ContentDir     string // Content root (default "content")
	ArticlesFolder string // Articles sub-folder of ContentDir (default "articles")

	CacheTTL     time.Duration // Article listing cache TTL (zero means 5min, negative disables caching)
	WatchContent bool          // Invalidate the cache when article files change

	OGImageLimit  int           // Preview images rendered per IP per window (default 30)
	OGImageWindow time.Duration // Rate limit window (default 1min)
}

func (c *SiteConfig) setDefaults(tr i18n.Translator, getenv func(string) string) {
	if c.Name == "" {
		c.Name = tr.Resolve("metadata.owner.name")
	}
	if c.URL == "" {
		c.URL = seo.BaseURL(getenv)
	}
	if c.Author == "" {
		c.Author = tr.Resolve("metadata.owner.name")
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	c.ArticlesFolder = strings.Trim(c.ArticlesFolder, "/")
	if c.ArticlesFolder == "" {
		c.ArticlesFolder = "articles"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.OGImageLimit <= 0 {
		c.OGImageLimit = 30
	}
	if c.OGImageWindow <= 0 {
		c.OGImageWindow = time.Minute
	}
}

// ConfigFromEnv builds a SiteConfig from environment variables. Unset
// variables are left empty and receive defaults in New. CACHE_TTL=0
// disables the article cache.
func ConfigFromEnv() SiteConfig {
	cacheTTL := envDuration("CACHE_TTL", 5*time.Minute)
	if cacheTTL == 0 {
		cacheTTL = -1
	}
	return SiteConfig{
		Name:         os.Getenv("SITE_NAME"),
		URL:          os.Getenv("SITE_URL"),
		Description:  os.Getenv("SITE_DESCRIPTION"),
		Author:       os.Getenv("SITE_AUTHOR"),
		Addr:         EnvOr("ADDR", ":3000"),
		ContentDir:   EnvOr("CONTENT_DIR", "content"),
		CacheTTL:     cacheTTL,
		WatchContent: envBool("WATCH_CONTENT", false),
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContentFS reads content from fsys instead of Config.ContentDir.
// The content watcher is disabled since fsys may not be on disk.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}

// WithTranslator replaces the embedded English translations.
func WithTranslator(tr i18n.Translator) Option {
	return func(a *App) {
		a.tr = tr
	}
}

// WithGetenv replaces os.Getenv for SEO base URL resolution.
func WithGetenv(getenv func(string) string) Option {
	return func(a *App) {
		a.getenv = getenv
	}
}

// WithLogger sets the structured logger used outside request handling.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}
