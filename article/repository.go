// Package article loads markdown articles with front matter from a content
// directory and produces sorted metadata listings.
package article

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// DefaultFolder is the sub-folder of the content root holding articles.
	DefaultFolder = "articles"
	// DefaultExtension is the file extension of article files.
	DefaultExtension = ".md"
)

// Repository reads article files from a content filesystem. It keeps no
// state between calls; every read goes to the filesystem.
type Repository struct {
	fsys   fs.FS
	folder string
	ext    string
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithFolder sets the articles folder relative to the content root.
func WithFolder(folder string) RepositoryOption {
	return func(r *Repository) {
		r.folder = strings.Trim(folder, "/")
	}
}

// WithExtension sets the article file extension (including the dot).
func WithExtension(ext string) RepositoryOption {
	return func(r *Repository) {
		r.ext = ext
	}
}

// NewRepository returns a Repository rooted at fsys.
func NewRepository(fsys fs.FS, opts ...RepositoryOption) *Repository {
	r := &Repository{
		fsys:   fsys,
		folder: DefaultFolder,
		ext:    DefaultExtension,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Folder returns the articles folder, used as the permalink prefix.
func (r *Repository) Folder() string {
	return r.folder
}

// ValidSlug reports whether slug names a single file: not empty, no path
// separators, not a dot segment.
func ValidSlug(slug string) bool {
	return slug != "" && !strings.ContainsAny(slug, `/\`) && slug != "." && slug != ".."
}

func (r *Repository) pathFor(slug string) (string, bool) {
	if !ValidSlug(slug) {
		return "", false
	}
	p := path.Join(r.folder, slug+r.ext)
	return p, fs.ValidPath(p)
}

// ReadRaw returns the full contents of the article file for slug.
// A missing file or an invalid slug yields ErrNotFound; other failures are
// returned as *ReadError.
func (r *Repository) ReadRaw(slug string) ([]byte, error) {
	p, ok := r.pathFor(slug)
	if !ok {
		return nil, ErrNotFound
	}
	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, &ReadError{Slug: slug, Err: err}
	}
	return data, nil
}

// ModTime returns the modification time of the article file for slug.
func (r *Repository) ModTime(slug string) (time.Time, error) {
	p, ok := r.pathFor(slug)
	if !ok {
		return time.Time{}, ErrNotFound
	}
	info, err := fs.Stat(r.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, &ReadError{Slug: slug, Err: err}
	}
	return info.ModTime(), nil
}

// ListSlugs enumerates the article files of the folder and returns their
// slugs in no particular order. A missing or unreadable folder is an error.
func (r *Repository) ListSlugs() ([]string, error) {
	dir := r.folder
	if dir == "" {
		dir = "."
	}
	info, err := fs.Stat(r.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list articles in %q: %w", r.folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("list articles in %q: not a directory", r.folder)
	}

	sub, err := fs.Sub(r.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("list articles in %q: %w", r.folder, err)
	}
	matches, err := doublestar.Glob(sub, "*"+escapeMeta(r.ext), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("list articles in %q: %w", r.folder, err)
	}

	slugs := make([]string, 0, len(matches))
	for _, m := range matches {
		slugs = append(slugs, strings.TrimSuffix(path.Base(m), r.ext))
	}
	return slugs, nil
}

// escapeMeta backslash-escapes glob metacharacters so s matches literally.
func escapeMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`*?[]{}\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
