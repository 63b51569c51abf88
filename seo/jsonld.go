package seo

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/Baboo7/baboo.dev/article"
)

// Site identifies the publisher for structured data.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// ArticleURL returns the absolute URL of an article.
func ArticleURL(base string, meta article.Metadata) string {
	return BuildURL(base, meta.Permalink)
}

// WebsiteJSONLD returns a schema.org WebSite JSON-LD document.
func WebsiteJSONLD(site Site) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      BuildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	return marshal(data)
}

// ArticleJSONLD returns a schema.org BlogPosting JSON-LD document.
func ArticleJSONLD(site Site, meta article.Metadata) string {
	articleURL := ArticleURL(site.URL, meta)
	data := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      meta.Title,
		"description":   meta.Description,
		"datePublished": meta.Date,
		"url":           articleURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   articleURL,
		},
	}
	if meta.Updated != "" {
		data["dateModified"] = meta.Updated
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	if site.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  site.Name,
		}
	}
	if len(meta.Categories) > 0 {
		data["keywords"] = strings.Join(meta.Categories, ", ")
	}
	return marshal(data)
}

func marshal(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
