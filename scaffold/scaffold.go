// Package scaffold creates new article files from embedded templates.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/Baboo7/baboo.dev/article"
)

// Templates contains the scaffold template files. Files use Go
// text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

var (
	// ErrExists is returned when the target article file already exists.
	ErrExists = errors.New("scaffold: article already exists")

	// ErrInvalidSlug is returned for slugs that do not name a single file.
	ErrInvalidSlug = errors.New("scaffold: invalid slug")
)

var articleTmpl = template.Must(
	template.New("article.md.tmpl").
		Funcs(template.FuncMap{"quote": strconv.Quote}).
		ParseFS(Templates, "templates/article.md.tmpl"),
)

// Article holds the front matter of a new article.
type Article struct {
	Title       string
	Description string
	Date        string // defaults to today, formatted 2006-01-02
	Categories  []string
	Slug        string // defaults to Slugify(Title)
}

// Slugify converts a title to a URL-safe slug, e.g. "Hello, World!" ->
// "hello-world".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// NewArticle writes a new markdown article into dir and returns its path.
// It never overwrites an existing file.
func NewArticle(dir string, a Article) (string, error) {
	return newArticle(articleTmpl, dir, a)
}

func newArticle(tmpl *template.Template, dir string, a Article) (string, error) {
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	if a.Slug == "" {
		return "", fmt.Errorf("scaffold: cannot derive a slug from title %q", a.Title)
	}
	if !article.ValidSlug(a.Slug) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlug, a.Slug)
	}
	if a.Date == "" {
		a.Date = time.Now().Format("2006-01-02")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, a.Slug+".md")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrExists, path)
		}
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if err := tmpl.Execute(f, a); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("execute template: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
