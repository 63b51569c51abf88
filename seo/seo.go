// Package seo builds page metadata: document title, canonical base URL and
// the Open Graph block used by link previews.
package seo

import (
	"net/url"
	"os"

	"github.com/Baboo7/baboo.dev/i18n"
)

const (
	// HostEnv names the environment variable carrying the deployed host.
	HostEnv = "VERCEL_URL"
	// DevelopmentURL is used when HostEnv is unset.
	DevelopmentURL = "http://localhost:3000"
	// DefaultImageEndpoint renders the preview image for a page.
	DefaultImageEndpoint = "/api/og"

	ImageWidth  = 1200
	ImageHeight = 630
)

// BaseMetadata is what a page knows about itself.
type BaseMetadata struct {
	Title       string
	Description string
}

// Image is an Open Graph image reference.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// OpenGraph carries the og:* properties.
type OpenGraph struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	SiteName    string  `json:"siteName"`
	Images      []Image `json:"images"`
	Locale      string  `json:"locale"`
	Type        string  `json:"type"`
}

// Metadata is the complete set of page metadata rendered into <head>.
type Metadata struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MetadataBase string    `json:"metadataBase"`
	OpenGraph    OpenGraph `json:"openGraph"`
}

// Builder generates Metadata for pages of one site.
type Builder struct {
	tr            i18n.Translator
	getenv        func(string) string
	imageEndpoint string
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithGetenv replaces os.Getenv when resolving the base URL.
func WithGetenv(getenv func(string) string) BuilderOption {
	return func(b *Builder) {
		b.getenv = getenv
	}
}

// WithImageEndpoint sets the path of the preview image endpoint.
func WithImageEndpoint(path string) BuilderOption {
	return func(b *Builder) {
		b.imageEndpoint = path
	}
}

// NewBuilder returns a Builder resolving site strings through tr.
func NewBuilder(tr i18n.Translator, opts ...BuilderOption) *Builder {
	b := &Builder{
		tr:            tr,
		getenv:        os.Getenv,
		imageEndpoint: DefaultImageEndpoint,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BaseURL returns https://<host> from HostEnv, or DevelopmentURL.
func BaseURL(getenv func(string) string) string {
	if host := getenv(HostEnv); host != "" {
		return "https://" + host
	}
	return DevelopmentURL
}

// ImageURL returns the preview image path for a title and description.
func ImageURL(endpoint, title, description string) string {
	q := url.Values{}
	q.Set("title", title)
	q.Set("description", description)
	return endpoint + "?" + q.Encode()
}

// Generate builds the metadata of one page. It never fails.
func (b *Builder) Generate(m BaseMetadata) Metadata {
	base := BaseURL(b.getenv)
	owner := b.tr.Resolve("metadata.owner.name")

	return Metadata{
		Title:        m.Title + " | " + owner,
		Description:  m.Description,
		MetadataBase: base,
		OpenGraph: OpenGraph{
			Title:       m.Title,
			Description: m.Description,
			URL:         base,
			SiteName:    owner + " | " + b.tr.Resolve("metadata.owner.job-name"),
			Images: []Image{
				{
					URL:    ImageURL(b.imageEndpoint, m.Title, m.Description),
					Width:  ImageWidth,
					Height: ImageHeight,
				},
			},
			Locale: "en-US",
			Type:   "website",
		},
	}
}

// Canonical resolves a relative path against the metadata base.
func (m Metadata) Canonical(path string) string {
	return BuildURL(m.MetadataBase, path)
}
