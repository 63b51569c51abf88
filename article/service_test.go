package article

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baboo7/baboo.dev/frontmatter"
)

func articleFile(title, date string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(fmt.Sprintf(
		"---\ntitle: %s\ndescription: About %s\ndate: %s\n---\n# %s\n", title, title, date, title))}
}

func threeArticles() fstest.MapFS {
	return fstest.MapFS{
		"articles/first.md":  articleFile("First", "2023-01-01"),
		"articles/second.md": articleFile("Second", "2023-06-15"),
		"articles/third.md":  articleFile("Third", "2024-02-10"),
		"articles/notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}
}

func newTestService(fsys fs.FS) *Service {
	return NewService(NewRepository(fsys))
}

func TestGetArticleMetadataPermalink(t *testing.T) {
	s := newTestService(threeArticles())

	for _, slug := range []string{"first", "second", "third"} {
		meta := s.GetArticleMetadata(slug)
		require.NotNil(t, meta, slug)
		assert.Equal(t, slug, meta.Slug)
		assert.Equal(t, "articles/"+slug, meta.Permalink)
	}
}

func TestGetArticleMetadataFields(t *testing.T) {
	fsys := fstest.MapFS{
		"articles/full.md": &fstest.MapFile{Data: []byte(
			"---\n" +
				"title: Full\n" +
				"description: Every field\n" +
				"date: 2024-02-10\n" +
				"updated: \"2024-03-01\"\n" +
				"categories: [go, web]\n" +
				"---\nbody\n")},
		"articles/sparse.md": &fstest.MapFile{Data: []byte("---\ntitle: Sparse\n---\n")},
	}
	s := newTestService(fsys)

	full := s.GetArticleMetadata("full")
	require.NotNil(t, full)
	assert.Equal(t, Metadata{
		Title:       "Full",
		Description: "Every field",
		Date:        "2024-02-10",
		Updated:     "2024-03-01",
		Categories:  []string{"go", "web"},
		Slug:        "full",
		Permalink:   "articles/full",
	}, *full)

	sparse := s.GetArticleMetadata("sparse")
	require.NotNil(t, sparse)
	assert.Equal(t, "Sparse", sparse.Title)
	assert.Empty(t, sparse.Description)
	assert.Empty(t, sparse.Date)
	assert.Nil(t, sparse.Categories)
}

func TestGetArticleMetadataAbsent(t *testing.T) {
	s := newTestService(threeArticles())

	for _, slug := range []string{"missing", "", "../first", "articles/first", "notes"} {
		assert.Nil(t, s.GetArticleMetadata(slug), "slug %q", slug)
	}

	_, err := s.Lookup("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"articles/broken.md": &fstest.MapFile{Data: []byte("---\ntitle: [oops\n---\n")},
	}
	s := newTestService(fsys)

	_, err := s.Lookup("broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, frontmatter.ErrMalformed)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Nil(t, s.GetArticleMetadata("broken"))
}

func TestGetArticleBySlug(t *testing.T) {
	s := newTestService(threeArticles())

	a := s.GetArticleBySlug("third")
	require.NotNil(t, a)
	assert.Equal(t, "Third", a.Title)
	assert.Equal(t, "# Third\n", a.Content)

	assert.Nil(t, s.GetArticleBySlug("nope"))
}

func TestGetArticlesMetadataLimit(t *testing.T) {
	s := newTestService(threeArticles())

	for limit := 1; limit <= 5; limit++ {
		got, err := s.GetArticlesMetadata(limit)
		require.NoError(t, err)
		assert.Len(t, got, min(limit, 3), "limit %d", limit)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Date, got[i].Date)
		}
	}
}

func TestGetArticlesMetadataScenario(t *testing.T) {
	s := newTestService(threeArticles())

	got, err := s.GetArticlesMetadata(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-02-10", got[0].Date)
	assert.Equal(t, "2023-06-15", got[1].Date)
}

func TestGetArticlesMetadataNoLimit(t *testing.T) {
	s := newTestService(threeArticles())

	all, err := s.GetArticlesMetadata(NoLimit)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"third", "second", "first"}, slugsOf(all))

	n, err := s.GetArticlesMetadata(len(all))
	require.NoError(t, err)
	assert.ElementsMatch(t, all, n)

	negative, err := s.GetArticlesMetadata(-1)
	require.NoError(t, err)
	assert.Equal(t, all, negative)
}

func TestGetArticlesMetadataIdempotent(t *testing.T) {
	fsys := threeArticles()
	fsys["articles/same-day-b.md"] = articleFile("B", "2023-06-15")
	fsys["articles/same-day-a.md"] = articleFile("A", "2023-06-15")
	s := newTestService(fsys)

	first, err := s.GetArticlesMetadata(NoLimit)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := s.GetArticlesMetadata(NoLimit)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []string{"third", "same-day-a", "same-day-b", "second", "first"}, slugsOf(first))
}

func TestGetArticlesMetadataEmpty(t *testing.T) {
	fsys := fstest.MapFS{
		"articles": &fstest.MapFile{Mode: fs.ModeDir},
	}
	s := newTestService(fsys)

	got, err := s.GetArticlesMetadata(3)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetArticlesMetadataMissingDirectory(t *testing.T) {
	s := NewService(NewRepository(fstest.MapFS{}))
	_, err := s.GetArticlesMetadata(NoLimit)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	dir := filepath.Join(t.TempDir(), "does-not-exist")
	s = NewService(NewRepository(os.DirFS(dir)))
	_, err = s.GetArticlesMetadata(NoLimit)
	require.Error(t, err)
}

func TestGetArticlesMetadataMalformedPropagates(t *testing.T) {
	fsys := threeArticles()
	fsys["articles/broken.md"] = &fstest.MapFile{Data: []byte("---\ntitle: unterminated\n")}
	s := newTestService(fsys)

	_, err := s.GetArticlesMetadata(NoLimit)
	require.Error(t, err)
	assert.ErrorIs(t, err, frontmatter.ErrMalformed)
}

func TestRepositoryOptions(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/hello.markdown": articleFile("Hello", "2024-01-01"),
		"posts/skip.md":        articleFile("Skip", "2024-01-02"),
	}
	s := NewService(NewRepository(fsys, WithFolder("posts"), WithExtension(".markdown")))

	got, err := s.GetArticlesMetadata(NoLimit)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "posts/hello", got[0].Permalink)
}

func TestRepositoryGlobMetacharacters(t *testing.T) {
	fsys := fstest.MapFS{
		"drafts[2024]/hello.md": articleFile("Hello", "2024-01-01"),
		"drafts[2024]/world.md": articleFile("World", "2024-01-02"),
		"drafts2/elsewhere.md":  articleFile("Elsewhere", "2024-01-03"),
		"odd/one.[md]":          articleFile("One", "2024-01-04"),
		"odd/two.m":             articleFile("Two", "2024-01-05"),
		"odd/three.d":           articleFile("Three", "2024-01-06"),
	}

	slugs, err := NewRepository(fsys, WithFolder("drafts[2024]")).ListSlugs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"hello", "world"}, slugs)

	slugs, err = NewRepository(fsys, WithFolder("odd"), WithExtension(".[md]")).ListSlugs()
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, slugs)

	got, err := NewService(NewRepository(fsys, WithFolder("drafts[2024]"))).GetArticlesMetadata(NoLimit)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "drafts[2024]/world", got[0].Permalink)
}

func TestEscapeMeta(t *testing.T) {
	assert.Equal(t, ".md", escapeMeta(".md"))
	assert.Equal(t, `\[a\]\{b\}\*\?\\`, escapeMeta(`[a]{b}*?\`))
}

func TestValidSlug(t *testing.T) {
	for _, slug := range []string{"hello", "hello-world", "2024.notes"} {
		assert.True(t, ValidSlug(slug), slug)
	}
	for _, slug := range []string{"", ".", "..", "../x", "a/b", `a\b`} {
		assert.False(t, ValidSlug(slug), slug)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "-"},
		{"2024-02-10", "February 10, 2024"},
		{"2023-01-01T10:00:00Z", "January 1, 2023"},
		{"someday", "someday"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in), tt.in)
	}
}

func slugsOf(articles []Metadata) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Slug
	}
	return out
}
