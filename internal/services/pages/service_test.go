package pages

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeswerv/internal/domain"
	"homeswerv/internal/ports"
)

type fakeRepo struct {
	pages   map[string]domain.Page
	gets    int
	listErr error
	saveErr error
}

func newFakeRepo(pages ...domain.Page) *fakeRepo {
	r := &fakeRepo{pages: map[string]domain.Page{}}
	for _, p := range pages {
		r.pages[p.Slug] = p
	}
	return r
}

func (r *fakeRepo) GetPage(ctx context.Context, slug string) (domain.Page, error) {
	r.gets++
	p, ok := r.pages[slug]
	if !ok {
		return domain.Page{}, ports.ErrNotFound
	}
	return p, nil
}

func (r *fakeRepo) ListPublished(ctx context.Context) ([]domain.Page, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Page
	for _, p := range r.pages {
		if p.Published {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) SavePage(ctx context.Context, page domain.Page) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.pages[page.Slug] = page
	return nil
}

var (
	aboutPage = domain.Page{Slug: "about", Title: "About", Published: true, UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	draftPage = domain.Page{Slug: "draft", Title: "Draft"}
)

func TestGetCachesPublishedPage(t *testing.T) {
	repo := newFakeRepo(aboutPage)
	svc := New(repo)

	p, err := svc.Get(context.Background(), "about")
	require.NoError(t, err)
	assert.Equal(t, "About", p.Title)

	_, err = svc.Get(context.Background(), "about")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.gets)
}

func TestGetHidesDraftsAndMissing(t *testing.T) {
	svc := New(newFakeRepo(draftPage))

	_, err := svc.Get(context.Background(), "draft")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := svc.GetDraft(context.Background(), "draft")
	require.NoError(t, err)
	assert.Equal(t, "Draft", p.Title)
}

func TestRefreshReplacesCache(t *testing.T) {
	repo := newFakeRepo(aboutPage, draftPage)
	svc := New(repo)

	n, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, svc.RefreshedAt().IsZero())

	published := svc.Published()
	require.Len(t, published, 1)
	assert.Equal(t, "about", published[0].Slug)

	repo.listErr = errors.New("db down")
	_, err = svc.Refresh(context.Background())
	require.Error(t, err)
	assert.Len(t, svc.Published(), 1, "failed refresh keeps previous cache")
}

func TestSaveUpdatesCache(t *testing.T) {
	repo := newFakeRepo(aboutPage)
	svc := New(repo)
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	edited := aboutPage
	edited.Title = "About us"
	require.NoError(t, svc.Save(context.Background(), edited))
	p, err := svc.Get(context.Background(), "about")
	require.NoError(t, err)
	assert.Equal(t, "About us", p.Title)

	edited.Published = false
	require.NoError(t, svc.Save(context.Background(), edited))
	_, err = svc.Get(context.Background(), "about")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveError(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("constraint")
	err := New(repo).Save(context.Background(), aboutPage)
	assert.ErrorContains(t, err, "save page about")
}

func TestSitemapXML(t *testing.T) {
	out, err := SitemapXML("https://homeswerv.com/", []domain.Page{aboutPage})
	require.NoError(t, err)

	body := string(out)
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, body, "<loc>https://homeswerv.com/pricing</loc>")
	assert.Contains(t, body, "<loc>https://homeswerv.com/p/about</loc>")
	assert.Contains(t, body, "<lastmod>2024-05-01</lastmod>")
}

func TestStaticContent(t *testing.T) {
	home := HomeContent()
	assert.Len(t, home.Steps, 4)
	assert.NotEmpty(t, home.Highlights)

	var highlighted int
	for _, p := range Plans() {
		if p.Highlighted {
			highlighted++
		}
	}
	assert.Equal(t, 1, highlighted)

	for _, group := range SiteMap() {
		for _, l := range group.Links {
			assert.True(t, strings.HasPrefix(l.Href, "/"), l.Href)
		}
	}
}
