package baboo

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baboo7/baboo.dev/i18n"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_NAME", "Notes")
	t.Setenv("SITE_URL", "https://example.com")
	t.Setenv("ADDR", ":8080")
	t.Setenv("CONTENT_DIR", "/srv/content")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("WATCH_CONTENT", "true")

	cfg := ConfigFromEnv()
	assert.Equal(t, "Notes", cfg.Name)
	assert.Equal(t, "https://example.com", cfg.URL)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "/srv/content", cfg.ContentDir)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.WatchContent)
}

func TestConfigFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("WATCH_CONTENT", "maybe")

	cfg := ConfigFromEnv()
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.WatchContent)
}

func TestConfigFromEnvZeroCacheTTLDisablesCache(t *testing.T) {
	t.Setenv("CACHE_TTL", "0s")

	cfg := ConfigFromEnv()
	assert.Negative(t, cfg.CacheTTL)

	a := New(cfg, DefaultViews(), WithContentFS(testContent()), WithGetenv(testEnv))
	require.NoError(t, a.Setup())
	defer a.Close()
	assert.Nil(t, a.Cache)
}

func TestSetDefaultsClampsRateLimit(t *testing.T) {
	cfg := SiteConfig{OGImageLimit: -3, OGImageWindow: -time.Second}
	cfg.setDefaults(i18n.NewTable(nil), testEnv)
	assert.Equal(t, 30, cfg.OGImageLimit)
	assert.Equal(t, time.Minute, cfg.OGImageWindow)

	a := New(SiteConfig{OGImageWindow: -time.Second}, DefaultViews(), WithContentFS(testContent()), WithGetenv(testEnv))
	require.NotPanics(t, func() { require.NoError(t, a.Setup()) })
	defer a.Close()
	assert.Equal(t, http.StatusOK, get(a, "/api/og?title=Hi").Code)
}

func TestSetDefaults(t *testing.T) {
	tr := i18n.NewTable(map[string]string{"metadata.owner.name": "Baboo"})

	var cfg SiteConfig
	cfg.setDefaults(tr, testEnv)
	assert.Equal(t, "Baboo", cfg.Name)
	assert.Equal(t, "Baboo", cfg.Author)
	assert.Equal(t, "https://baboo.dev", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "content", cfg.ContentDir)
	assert.Equal(t, "articles", cfg.ArticlesFolder)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 30, cfg.OGImageLimit)
	assert.Equal(t, time.Minute, cfg.OGImageWindow)

	cfg = SiteConfig{URL: "https://example.com", CacheTTL: -1}
	cfg.setDefaults(tr, func(string) string { return "" })
	assert.Equal(t, "https://example.com", cfg.URL)
	assert.Equal(t, time.Duration(-1), cfg.CacheTTL)
}

func TestEnvOr(t *testing.T) {
	t.Setenv("BABOO_TEST_SET", "value")
	assert.Equal(t, "value", EnvOr("BABOO_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", EnvOr("BABOO_TEST_UNSET", "fallback"))
}
