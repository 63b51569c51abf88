package baboo

import (
	"encoding/xml"
	"time"

	"github.com/Baboo7/baboo.dev/article"
	"github.com/Baboo7/baboo.dev/seo"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
	Categories  []string `xml:"category"`
}

// BuildFeed returns an RSS 2.0 document listing articles in the given order.
func BuildFeed(site seo.Site, articles []article.Metadata) any {
	items := make([]rssItem, 0, len(articles))
	for _, m := range articles {
		pubDate := ""
		if t, err := time.Parse(article.DateLayout, m.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		link := seo.ArticleURL(site.URL, m)
		items = append(items, rssItem{
			Title:       m.Title,
			Link:        link,
			Description: m.Description,
			PubDate:     pubDate,
			GUID:        link,
			Categories:  m.Categories,
		})
	}
	return rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       site.Name,
			Link:        site.URL,
			Description: site.Description,
			Items:       items,
		},
	}
}
