// Package catalog holds the built-in venue list used when the database cannot answer.
package catalog

import (
	"sort"
	"strings"

	"wedding_venues/internal/domain"
)

// MaxRows mirrors the LIMIT of the database query.
const MaxRows = 100

// All returns a copy of the built-in venues, tagged with their source.
func All() []domain.Hotel {
	out := make([]domain.Hotel, len(sampleHotels))
	for i, h := range sampleHotels {
		h.Source = domain.SourceSample
		if h.Description == "" {
			h.Description = DefaultDescription
		}
		out[i] = h
	}
	return out
}

const DefaultDescription = "Beautiful venue for your special day"

// Filter keeps the hotels matching q. The location term is matched
// case-insensitively as a substring of location, city or state; an empty
// term matches everything. Results are ordered like the database query
// (rating desc, star rating desc) and capped at q.Limit or MaxRows.
func Filter(hotels []domain.Hotel, q domain.HotelQuery) []domain.Hotel {
	term := strings.ToLower(strings.TrimSpace(q.Location))
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if q.MaxPrice > 0 && h.PricePerNight > q.MaxPrice {
			continue
		}
		if q.MinRating > 0 && h.Rating < q.MinRating {
			continue
		}
		if term != "" && !matchesLocation(h, term) {
			continue
		}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].StarRating > out[j].StarRating
	})
	limit := q.Limit
	if limit <= 0 || limit > MaxRows {
		limit = MaxRows
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func matchesLocation(h domain.Hotel, term string) bool {
	return strings.Contains(strings.ToLower(h.Location), term) ||
		strings.Contains(strings.ToLower(h.City), term) ||
		strings.ToLower(h.State) == term ||
		strings.Contains(strings.ToLower(h.State), term)
}

// Search filters the built-in list.
func Search(q domain.HotelQuery) []domain.Hotel {
	return Filter(All(), q)
}

// LocationStats aggregates the built-in list by state, most hotels first.
func LocationStats() []domain.LocationStat {
	byState := map[string]*domain.LocationStat{}
	var order []string
	sums := map[string]float64{}
	for _, h := range sampleHotels {
		st, ok := byState[h.State]
		if !ok {
			st = &domain.LocationStat{State: h.State, MinRating: h.Rating, MaxRating: h.Rating}
			byState[h.State] = st
			order = append(order, h.State)
		}
		st.HotelCount++
		sums[h.State] += h.Rating
		if h.Rating < st.MinRating {
			st.MinRating = h.Rating
		}
		if h.Rating > st.MaxRating {
			st.MaxRating = h.Rating
		}
	}
	out := make([]domain.LocationStat, 0, len(order))
	for _, s := range order {
		st := byState[s]
		st.AvgRating = domain.RoundCents(sums[s] / float64(st.HotelCount))
		out = append(out, *st)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].HotelCount > out[j].HotelCount })
	return out
}
