package article

import (
	"time"

	"github.com/Baboo7/baboo.dev/frontmatter"
)

// Metadata describes an article for listings and page headers.
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Updated     string   `json:"updated,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Slug        string   `json:"slug"`
	Permalink   string   `json:"permalink"`
}

// Article is an article's metadata together with its markdown body.
type Article struct {
	Metadata
	Content string `json:"content"`
}

// frontMatter is the subset of front matter keys an article understands.
// Dates decode into strings so an unquoted 2024-02-10 keeps its spelling.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Updated     string   `yaml:"updated"`
	Categories  []string `yaml:"categories"`
}

// Project maps a parsed document onto Metadata. Missing keys stay empty.
func Project(slug, folder string, doc frontmatter.Document) (Metadata, error) {
	var fm frontMatter
	if err := doc.Decode(&fm); err != nil {
		return Metadata{}, err
	}
	return Metadata{
		Title:       fm.Title,
		Description: fm.Description,
		Date:        fm.Date,
		Updated:     fm.Updated,
		Categories:  fm.Categories,
		Slug:        slug,
		Permalink:   Permalink(folder, slug),
	}, nil
}

// Permalink returns the relative URL of an article.
func Permalink(folder, slug string) string {
	if folder == "" {
		return slug
	}
	return folder + "/" + slug
}

// DateLayout is the date format articles are expected to use.
const DateLayout = "2006-01-02"

// FormatDate renders an article date for display, e.g. "February 10, 2024".
// An empty date renders as "-"; an unparsable one is returned unchanged.
func FormatDate(date string) string {
	if date == "" {
		return "-"
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, date); err != nil {
			return date
		}
	}
	return t.Format("January 2, 2006")
}
