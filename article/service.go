package article

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Baboo7/baboo.dev/frontmatter"
)

// NoLimit asks GetArticlesMetadata for the complete listing.
const NoLimit = 0

// Source is what page handlers need from an article store. Both *Service
// and *Cache implement it.
type Source interface {
	GetArticleMetadata(slug string) *Metadata
	GetArticleBySlug(slug string) *Article
	GetArticlesMetadata(limit int) ([]Metadata, error)
}

// Service composes the repository, the front matter parser and the
// projector into article lookups and listings.
type Service struct {
	repo   *Repository
	logger *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used to report swallowed lookup failures.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService returns a Service reading from repo.
func NewService(repo *Repository, opts ...ServiceOption) *Service {
	s := &Service{repo: repo, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repository returns the underlying repository.
func (s *Service) Repository() *Repository {
	return s.repo
}

func (s *Service) load(slug string) (Article, error) {
	raw, err := s.repo.ReadRaw(slug)
	if err != nil {
		return Article{}, err
	}
	doc, err := frontmatter.Parse(raw)
	if err != nil {
		return Article{}, fmt.Errorf("article %q: %w", slug, err)
	}
	meta, err := Project(slug, s.repo.Folder(), doc)
	if err != nil {
		return Article{}, fmt.Errorf("article %q: %w", slug, err)
	}
	return Article{Metadata: meta, Content: doc.Content}, nil
}

// Lookup returns the metadata of one article. The error is ErrNotFound,
// a *ReadError, or wraps frontmatter.ErrMalformed.
func (s *Service) Lookup(slug string) (Metadata, error) {
	a, err := s.load(slug)
	if err != nil {
		return Metadata{}, err
	}
	return a.Metadata, nil
}

// LookupArticle is Lookup including the markdown body.
func (s *Service) LookupArticle(slug string) (Article, error) {
	return s.load(slug)
}

// GetArticleMetadata returns the metadata of one article, or nil when it
// does not exist or cannot be read.
func (s *Service) GetArticleMetadata(slug string) *Metadata {
	meta, err := s.Lookup(slug)
	if err != nil {
		s.logFailure(slug, err)
		return nil
	}
	return &meta
}

// GetArticleBySlug returns one article with its body, or nil when it does
// not exist or cannot be read.
func (s *Service) GetArticleBySlug(slug string) *Article {
	a, err := s.load(slug)
	if err != nil {
		s.logFailure(slug, err)
		return nil
	}
	return &a
}

func (s *Service) logFailure(slug string, err error) {
	if errors.Is(err, ErrNotFound) {
		return
	}
	s.logger.Warn("article lookup failed", "slug", slug, "error", err)
}

// GetArticlesMetadata lists every article sorted by date, newest first,
// truncated to limit entries when limit is positive.
//
// Dates compare as strings, so the corpus must use one zero-padded format.
// Enumeration failures and malformed articles are returned as errors.
func (s *Service) GetArticlesMetadata(limit int) ([]Metadata, error) {
	slugs, err := s.repo.ListSlugs()
	if err != nil {
		return nil, err
	}

	articles := make([]Metadata, 0, len(slugs))
	for _, slug := range slugs {
		meta, err := s.Lookup(slug)
		if err != nil {
			// Removed between listing and reading.
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		articles = append(articles, meta)
	}

	SortByDate(articles)
	return Truncate(articles, limit), nil
}

// SortByDate orders articles by date descending, then by slug.
func SortByDate(articles []Metadata) {
	sort.SliceStable(articles, func(i, j int) bool {
		if articles[i].Date != articles[j].Date {
			return articles[i].Date > articles[j].Date
		}
		return articles[i].Slug < articles[j].Slug
	})
}

// Truncate returns the first limit articles, or all of them when limit is
// not positive.
func Truncate(articles []Metadata, limit int) []Metadata {
	if limit > 0 && limit < len(articles) {
		return articles[:limit]
	}
	return articles
}
