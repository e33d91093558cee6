// Package pages serves marketing content and CMS pages. Published CMS pages
// are held in an in-memory cache that the page-sync worker refreshes.
package pages

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"homeswerv/internal/domain"
	"homeswerv/internal/metrics"
	"homeswerv/internal/ports"
)

// ErrNotFound indicates no published page exists for a slug.
var ErrNotFound = errors.New("page not found")

type Service struct {
	repo ports.PageRepository

	mu          sync.RWMutex
	cache       map[string]domain.Page
	refreshedAt time.Time
}

func New(repo ports.PageRepository) *Service {
	return &Service{repo: repo, cache: make(map[string]domain.Page)}
}

// Get returns a published page, from the cache when possible.
func (s *Service) Get(ctx context.Context, slug string) (domain.Page, error) {
	s.mu.RLock()
	page, ok := s.cache[slug]
	s.mu.RUnlock()
	if ok {
		return page.Clone(), nil
	}

	page, err := s.repo.GetPage(ctx, slug)
	if errors.Is(err, ports.ErrNotFound) {
		return domain.Page{}, ErrNotFound
	}
	if err != nil {
		return domain.Page{}, fmt.Errorf("get page %s: %w", slug, err)
	}
	if !page.Published {
		return domain.Page{}, ErrNotFound
	}

	s.mu.Lock()
	s.cache[slug] = page
	s.mu.Unlock()
	return page.Clone(), nil
}

// GetDraft loads a page for the admin editors, published or not. It always
// reads through to the repository.
func (s *Service) GetDraft(ctx context.Context, slug string) (domain.Page, error) {
	page, err := s.repo.GetPage(ctx, slug)
	if errors.Is(err, ports.ErrNotFound) {
		return domain.Page{}, ErrNotFound
	}
	if err != nil {
		return domain.Page{}, fmt.Errorf("get page %s: %w", slug, err)
	}
	return page, nil
}

// Save stores an edited page and updates the cache entry for its slug.
func (s *Service) Save(ctx context.Context, page domain.Page) error {
	if err := s.repo.SavePage(ctx, page); err != nil {
		return fmt.Errorf("save page %s: %w", page.Slug, err)
	}
	s.mu.Lock()
	if page.Published {
		s.cache[page.Slug] = page.Clone()
	} else {
		delete(s.cache, page.Slug)
	}
	s.mu.Unlock()
	log.Info().Str("slug", page.Slug).Bool("published", page.Published).Msg("Page saved")
	return nil
}

// Refresh replaces the cache with the currently published pages and returns
// how many were loaded. On error the previous cache is kept.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	published, err := s.repo.ListPublished(ctx)
	if err != nil {
		metrics.RecordPageCacheRefresh("error", 0)
		return 0, fmt.Errorf("list published pages: %w", err)
	}
	next := make(map[string]domain.Page, len(published))
	for _, p := range published {
		next[p.Slug] = p
	}

	s.mu.Lock()
	s.cache = next
	s.refreshedAt = time.Now()
	s.mu.Unlock()

	metrics.RecordPageCacheRefresh("success", len(next))
	return len(next), nil
}

// Published returns the cached published pages sorted by slug.
func (s *Service) Published() []domain.Page {
	s.mu.RLock()
	out := make([]domain.Page, 0, len(s.cache))
	for _, p := range s.cache {
		out = append(out, p.Clone())
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

func (s *Service) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}
