package article

import (
	"errors"
	"slices"
	"sync"
	"time"
)

// Lookup outcomes reported to a Recorder.
const (
	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Recorder receives cache lookup outcomes.
type Recorder interface {
	ObserveLookup(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveLookup(string) {}

type cacheEntry struct {
	article Article
	modTime time.Time
}

// Cache is a read-through cache in front of a Service. Single articles are
// revalidated against their file modification time on every lookup; the
// sorted listing is kept for ttl or until Invalidate is called.
type Cache struct {
	mu       sync.RWMutex
	service  *Service
	ttl      time.Duration
	entries  map[string]cacheEntry
	listing  []Metadata
	fetched  time.Time
	recorder Recorder
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithRecorder reports lookup outcomes to r.
func WithRecorder(r Recorder) CacheOption {
	return func(c *Cache) {
		if r != nil {
			c.recorder = r
		}
	}
}

// NewCache creates a Cache backed by s.
func NewCache(s *Service, ttl time.Duration, opts ...CacheOption) *Cache {
	c := &Cache{
		service:  s,
		ttl:      ttl,
		entries:  make(map[string]cacheEntry),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invalidate drops every cached entry so the next read goes to disk.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.listing = nil
	c.mu.Unlock()
}

func (c *Cache) listingValid() bool {
	return c.listing != nil && time.Since(c.fetched) < c.ttl
}

func (c *Cache) article(slug string) (Article, error) {
	modTime, err := c.service.Repository().ModTime(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.mu.Lock()
			delete(c.entries, slug)
			c.mu.Unlock()
		}
		return Article{}, err
	}

	c.mu.RLock()
	entry, ok := c.entries[slug]
	c.mu.RUnlock()
	if ok && entry.modTime.Equal(modTime) {
		c.recorder.ObserveLookup(OutcomeHit)
		return entry.article, nil
	}

	c.recorder.ObserveLookup(OutcomeMiss)
	a, err := c.service.LookupArticle(slug)
	if err != nil {
		return Article{}, err
	}
	c.mu.Lock()
	c.entries[slug] = cacheEntry{article: a, modTime: modTime}
	c.mu.Unlock()
	return a, nil
}

func (c *Cache) lookup(slug string) *Article {
	a, err := c.article(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.recorder.ObserveLookup(OutcomeNotFound)
		} else {
			c.recorder.ObserveLookup(OutcomeError)
		}
		c.service.logFailure(slug, err)
		return nil
	}
	a.Categories = slices.Clone(a.Categories)
	return &a
}

// GetArticleMetadata returns cached metadata for slug, or nil.
func (c *Cache) GetArticleMetadata(slug string) *Metadata {
	a := c.lookup(slug)
	if a == nil {
		return nil
	}
	return &a.Metadata
}

// GetArticleBySlug returns the cached article for slug, or nil.
func (c *Cache) GetArticleBySlug(slug string) *Article {
	return c.lookup(slug)
}

// GetArticlesMetadata returns the cached listing, reloading it when stale.
// It tries a read lock first and only takes the write lock to reload.
func (c *Cache) GetArticlesMetadata(limit int) ([]Metadata, error) {
	c.mu.RLock()
	if c.listingValid() {
		out := slices.Clone(c.listing)
		c.mu.RUnlock()
		return Truncate(out, limit), nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.listingValid() {
		listing, err := c.service.GetArticlesMetadata(NoLimit)
		if err != nil {
			return nil, err
		}
		c.listing = listing
		c.fetched = time.Now()
	}
	return Truncate(slices.Clone(c.listing), limit), nil
}
