package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"wedding_venues/internal/domain"
)

// Warmer pre-runs the default search for the busiest states so the first
// visitors hit the query cache instead of the database.
type Warmer struct {
	search  *SearchService
	workers int
}

func NewWarmer(s *SearchService, workers int) *Warmer {
	if workers <= 0 {
		workers = 1
	}
	return &Warmer{search: s, workers: workers}
}

// Warm searches the top states with the default budget and rating and
// returns how many searches were answered by the database.
func (w *Warmer) Warm(ctx context.Context, top int) (int, error) {
	stats := w.search.LocationStats(ctx)
	if top > 0 && len(stats) > top {
		stats = stats[:top]
	}

	sem := semaphore.NewWeighted(int64(w.workers))
	var wg sync.WaitGroup
	var fromDB atomic.Int64

	for _, st := range stats {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return int(fromDB.Load()), err
		}

		wg.Add(1)
		go func(state string) {
			defer wg.Done()
			defer sem.Release(1)

			res := w.search.Search(ctx, CriteriaQuery(domain.SearchCriteria{
				Location:  state,
				Budget:    defaultBudget,
				MinRating: defaultMinRating,
			}))
			if res.Source == domain.SourceDatabase {
				fromDB.Add(1)
			}
			log.Debug().Str("state", state).Int("hotels", len(res.Hotels)).Str("source", res.Source).Msg("cache warmed")
		}(st.State)
	}

	wg.Wait()
	return int(fromDB.Load()), nil
}
