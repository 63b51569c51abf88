package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baboo7/baboo.dev/article"
	"github.com/Baboo7/baboo.dev/i18n"
)

func testTranslator() i18n.Translator {
	return i18n.NewTable(map[string]string{
		"metadata.owner.name":     "Baboo",
		"metadata.owner.job-name": "Software Engineer",
	})
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestGenerate(t *testing.T) {
	b := NewBuilder(testTranslator(), WithGetenv(env(nil)))

	m := b.Generate(BaseMetadata{Title: "T", Description: "D"})

	assert.Equal(t, "T | Baboo", m.Title)
	assert.True(t, strings.HasSuffix(m.Title, " | Baboo"))
	assert.Equal(t, "D", m.Description)
	assert.Equal(t, DevelopmentURL, m.MetadataBase)

	og := m.OpenGraph
	assert.Equal(t, "T", og.Title)
	assert.Equal(t, "D", og.Description)
	assert.Equal(t, DevelopmentURL, og.URL)
	assert.Equal(t, "Baboo | Software Engineer", og.SiteName)
	assert.Equal(t, "en-US", og.Locale)
	assert.Equal(t, "website", og.Type)
	require.Len(t, og.Images, 1)
	assert.Contains(t, og.Images[0].URL, "title=T")
	assert.Contains(t, og.Images[0].URL, "description=D")
	assert.True(t, strings.HasPrefix(og.Images[0].URL, "/api/og?"))
	assert.Equal(t, 1200, og.Images[0].Width)
	assert.Equal(t, 630, og.Images[0].Height)
}

func TestGenerateDeployedHost(t *testing.T) {
	b := NewBuilder(testTranslator(), WithGetenv(env(map[string]string{HostEnv: "baboo.dev"})))

	m := b.Generate(BaseMetadata{Title: "Home", Description: "Welcome"})
	assert.Equal(t, "https://baboo.dev", m.MetadataBase)
	assert.Equal(t, "https://baboo.dev", m.OpenGraph.URL)
	assert.Equal(t, "https://baboo.dev/articles/hello/", m.Canonical("articles/hello"))
}

func TestGenerateEncodesImageQuery(t *testing.T) {
	b := NewBuilder(testTranslator(), WithGetenv(env(nil)), WithImageEndpoint("/og"))

	m := b.Generate(BaseMetadata{Title: "Q&A: tips", Description: "50% off=yes"})
	img := m.OpenGraph.Images[0].URL
	assert.True(t, strings.HasPrefix(img, "/og?"))
	assert.NotContains(t, img, "Q&A")
	assert.Contains(t, img, "title=Q%26A%3A+tips")
	assert.Contains(t, img, "description=50%25+off%3Dyes")
}

func TestGenerateUnknownTranslations(t *testing.T) {
	b := NewBuilder(i18n.NewTable(nil), WithGetenv(env(nil)))
	m := b.Generate(BaseMetadata{Title: "T", Description: "D"})
	assert.Equal(t, "T | metadata.owner.name", m.Title)
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "https://example.com", BuildURL("https://example.com"))
	assert.Equal(t, "https://example.com/articles/a/", BuildURL("https://example.com", "articles", "a"))
	assert.Equal(t, "https://example.com/articles/a/", BuildURL("https://example.com/", "articles/a/"))
}

func TestArticleJSONLD(t *testing.T) {
	site := Site{Name: "Baboo", URL: "https://baboo.dev", Author: "Baboo"}
	meta := article.Metadata{
		Title:       "Hello",
		Description: "First",
		Date:        "2024-02-10",
		Updated:     "2024-03-01",
		Categories:  []string{"go", "web"},
		Slug:        "hello",
		Permalink:   "articles/hello",
	}

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(ArticleJSONLD(site, meta)), &got))
	assert.Equal(t, "BlogPosting", got["@type"])
	assert.Equal(t, "Hello", got["headline"])
	assert.Equal(t, "https://baboo.dev/articles/hello/", got["url"])
	assert.Equal(t, "2024-03-01", got["dateModified"])
	assert.Equal(t, "go, web", got["keywords"])
}

func TestWebsiteJSONLD(t *testing.T) {
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(WebsiteJSONLD(Site{Name: "Baboo", URL: "https://baboo.dev"})), &got))
	assert.Equal(t, "WebSite", got["@type"])
	assert.Equal(t, "https://baboo.dev", got["url"])
	assert.NotContains(t, got, "author")
}
