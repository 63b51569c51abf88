// Package views holds the templ components that render every page.
package views

import (
	"github.com/Baboo7/baboo.dev/article"
	"github.com/Baboo7/baboo.dev/i18n"
	"github.com/Baboo7/baboo.dev/seo"
)

// Page is the view model shared by every template.
type Page struct {
	Meta         seo.Metadata
	Canonical    string   // canonical link and og:url
	JSONLD       []string // structured data documents, rendered as-is
	SiteName     string
	ArticlesPath string // article index route, e.g. "/articles/"
	Translator   i18n.Translator
}

// ArticlesHref returns the link to the article index.
func (p Page) ArticlesHref() string {
	if p.ArticlesPath == "" {
		return "/" + article.DefaultFolder + "/"
	}
	return p.ArticlesPath
}

// T resolves a translation key. Without a translator the key is returned.
func (p Page) T(key string) string {
	if p.Translator == nil {
		return key
	}
	return p.Translator.Resolve(key)
}
