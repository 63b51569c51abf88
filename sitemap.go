package baboo

import (
	"encoding/xml"

	"github.com/Baboo7/baboo.dev/article"
	"github.com/Baboo7/baboo.dev/seo"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// BuildSitemap lists the landing page, the article index and every article.
// An article's lastmod is its updated date when set, else its publish date.
func BuildSitemap(base, folder string, articles []article.Metadata) any {
	urls := []sitemapURL{
		{Loc: seo.BuildURL(base)},
		{Loc: seo.BuildURL(base, folder)},
	}
	for _, m := range articles {
		lastMod := m.Updated
		if lastMod == "" {
			lastMod = m.Date
		}
		urls = append(urls, sitemapURL{
			Loc:     seo.ArticleURL(base, m),
			LastMod: lastMod,
		})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}
