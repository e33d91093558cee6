package pagesync

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Refresher reloads the published page cache and reports how many pages it holds.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Run refreshes once immediately and then on every tick until ctx is done.
// Refresh errors are logged; the previous cache keeps serving.
func Run(ctx context.Context, pages Refresher, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	refresh(ctx, pages)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			refresh(ctx, pages)
		}
	}
}

func refresh(ctx context.Context, pages Refresher) {
	n, err := pages.Refresh(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Warn().Err(err).Msg("page cache refresh failed")
		return
	}
	log.Debug().Int("pages", n).Msg("page cache refreshed")
}
