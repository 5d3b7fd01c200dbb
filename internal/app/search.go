package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"wedding_venues/internal/adapters/observability"
	"wedding_venues/internal/catalog"
	"wedding_venues/internal/domain"
)

type SearchResult struct {
	Hotels []domain.Hotel `json:"hotels"`
	Source string         `json:"source"`
}

// SearchService answers venue searches from the database, memoizing
// database answers for cacheTTL, and falls back to the built-in catalog
// when the database errors or has nothing to say.
type SearchService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewSearchService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *SearchService {
	return &SearchService{repo: r, cache: c, cacheTTL: ttl}
}

// CriteriaQuery maps the Search page form onto a repository query.
func CriteriaQuery(c domain.SearchCriteria) domain.HotelQuery {
	return domain.HotelQuery{
		Location:  strings.TrimSpace(c.Location),
		MaxPrice:  c.Budget,
		MinRating: c.MinRating,
		Limit:     catalog.MaxRows,
	}
}

func searchKey(q domain.HotelQuery) string {
	return fmt.Sprintf("search:%s:%.2f:%.1f:%d", strings.ToLower(strings.TrimSpace(q.Location)), q.MaxPrice, q.MinRating, q.Limit)
}

func (s *SearchService) Search(ctx context.Context, q domain.HotelQuery) SearchResult {
	key := searchKey(q)
	var hs []domain.Hotel
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &hs); ok && len(hs) > 0 {
			observability.ObserveSearch(domain.SourceDatabase)
			return SearchResult{Hotels: hs, Source: domain.SourceDatabase}
		}
	}

	hs, err := s.repo.SearchHotels(ctx, q)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("location", q.Location).Msg("hotel search failed; serving sample venues")
	case len(hs) == 0:
		log.Info().Str("location", q.Location).Msg("database returned no venues; serving sample venues")
	default:
		if s.cache != nil {
			if err := s.cache.Set(ctx, key, hs, int(s.cacheTTL.Seconds())); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("cache set failed")
			}
		}
		observability.ObserveSearch(domain.SourceDatabase)
		return SearchResult{Hotels: hs, Source: domain.SourceDatabase}
	}

	// Fallback answers are never cached so a recovered database is used right away.
	hs = catalog.Search(q)
	if len(hs) == 0 {
		observability.ObserveSearch("empty")
		return SearchResult{Source: domain.SourceSample}
	}
	observability.ObserveSearch(domain.SourceSample)
	return SearchResult{Hotels: hs, Source: domain.SourceSample}
}

const locationStatsKey = "locations:stats"

// LocationStats reports hotel counts and rating ranges per state.
func (s *SearchService) LocationStats(ctx context.Context) []domain.LocationStat {
	var out []domain.LocationStat
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, locationStatsKey, &out); ok && len(out) > 0 {
			return out
		}
	}
	out, err := s.repo.LocationStats(ctx)
	if err != nil || len(out) == 0 {
		if err != nil {
			log.Warn().Err(err).Msg("location stats failed; using sample venues")
		}
		return catalog.LocationStats()
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, locationStatsKey, out, int(s.cacheTTL.Seconds()))
	}
	return out
}
