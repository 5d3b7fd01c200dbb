package app

import (
	"sort"

	"wedding_venues/internal/domain"
)

type SortKey string

const (
	SortRating    SortKey = "rating"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortRooms     SortKey = "rooms"
)

func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceAsc, SortPriceDesc, SortRooms:
		return k
	}
	return SortRating
}

// SortHotels returns a sorted copy; ties keep their original order.
func SortHotels(hotels []domain.Hotel, key SortKey) []domain.Hotel {
	out := append([]domain.Hotel(nil), hotels...)
	var less func(a, b domain.Hotel) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b domain.Hotel) bool { return a.PricePerNight < b.PricePerNight }
	case SortPriceDesc:
		less = func(a, b domain.Hotel) bool { return a.PricePerNight > b.PricePerNight }
	case SortRooms:
		less = func(a, b domain.Hotel) bool { return a.TotalRooms > b.TotalRooms }
	default:
		less = func(a, b domain.Hotel) bool { return a.Rating > b.Rating }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

var PageSizes = []int{10, 20, 50}

// PageSize snaps n to one of PageSizes, defaulting to the smallest.
func PageSize(n int) int {
	for _, s := range PageSizes {
		if n == s {
			return n
		}
	}
	return PageSizes[0]
}

const summaryWindow = 10

type Summary struct {
	Count     int     `json:"count"`
	AvgPrice  float64 `json:"avg_price"`
	AvgRating float64 `json:"avg_rating"`
}

// Summarize reports the total count and the averages over the top results.
func Summarize(hotels []domain.Hotel) Summary {
	s := Summary{Count: len(hotels)}
	top := hotels
	if len(top) > summaryWindow {
		top = top[:summaryWindow]
	}
	if len(top) == 0 {
		return s
	}
	var price, rating float64
	for _, h := range top {
		price += h.PricePerNight
		rating += h.Rating
	}
	s.AvgPrice = domain.RoundCents(price / float64(len(top)))
	s.AvgRating = domain.RoundCents(rating / float64(len(top)))
	return s
}

const (
	compareOthers  = 5
	compareNameLen = 25
)

type ComparisonRow struct {
	HotelID  int64   `json:"hotel_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Selected bool    `json:"selected"`
}

// Compare puts the selected hotel first, followed by up to five other results.
func Compare(selected domain.Hotel, results []domain.Hotel) []ComparisonRow {
	rows := []ComparisonRow{comparisonRow(selected, true)}
	for _, h := range results {
		if len(rows) > compareOthers {
			break
		}
		if h.ID == selected.ID {
			continue
		}
		rows = append(rows, comparisonRow(h, false))
	}
	return rows
}

func comparisonRow(h domain.Hotel, selected bool) ComparisonRow {
	name := []rune(h.Name)
	if len(name) > compareNameLen {
		name = name[:compareNameLen]
	}
	return ComparisonRow{HotelID: h.ID, Name: string(name), Price: h.PricePerNight, Rating: h.Rating, Selected: selected}
}
