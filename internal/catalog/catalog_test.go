package catalog_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wedding_venues/internal/catalog"
	"wedding_venues/internal/domain"
)

func names(hs []domain.Hotel) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Name
	}
	return out
}

func TestFilter_PriceAndLocation(t *testing.T) {
	got := catalog.Search(domain.HotelQuery{Location: "  Maui ", MaxPrice: 400})

	want := []string{
		"Maui Grand Resort",
		"Wailea Beach Resort",
		"Hyatt Regency Maui",
		"Maui Sunset Villas",
		"Sheraton Maui Resort",
		"Lahaina Shores Hotel",
		"Marriott Maui Ocean Club",
	}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Fatalf("maui <= 400 mismatch (-want +got):\n%s", diff)
	}
	for _, h := range got {
		if h.PricePerNight > 400 {
			t.Errorf("%s costs %.0f, above the ceiling", h.Name, h.PricePerNight)
		}
		if h.Source != domain.SourceSample {
			t.Errorf("%s source = %q", h.Name, h.Source)
		}
	}
}

func TestFilter_StateAbbreviation(t *testing.T) {
	got := catalog.Search(domain.HotelQuery{Location: "HI", MaxPrice: 10000})
	hawaii := 0
	for _, h := range got {
		if h.State == "HI" {
			hawaii++
			continue
		}
		// "hi" is also a substring of places like "Chicago, IL"
		if !strings.Contains(strings.ToLower(h.Location), "hi") {
			t.Errorf("unexpected match %s (%s)", h.Name, h.Location)
		}
	}
	if hawaii != 20 {
		t.Fatalf("expected 20 Hawaii venues, got %d", hawaii)
	}
}

func TestFilter_MinRatingAndOrder(t *testing.T) {
	got := catalog.Search(domain.HotelQuery{MinRating: 4.8})
	if len(got) == 0 {
		t.Fatal("expected some highly rated venues")
	}
	for i, h := range got {
		if h.Rating < 4.8 {
			t.Fatalf("%s rating %.1f below minimum", h.Name, h.Rating)
		}
		if i > 0 && got[i-1].Rating < h.Rating {
			t.Fatalf("not sorted by rating desc at %d", i)
		}
	}
}

func TestFilter_NoMatch(t *testing.T) {
	if got := catalog.Search(domain.HotelQuery{Location: "atlantis"}); len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestFilter_Capped(t *testing.T) {
	if got := catalog.Search(domain.HotelQuery{}); len(got) != catalog.MaxRows {
		t.Fatalf("expected %d rows, got %d", catalog.MaxRows, len(got))
	}
	if got := catalog.Search(domain.HotelQuery{Limit: 5}); len(got) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(got))
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := catalog.All()
	a[0].Name = "mutated"
	if catalog.All()[0].Name == "mutated" {
		t.Fatal("All must not expose the backing list")
	}
}

func TestLocationStats(t *testing.T) {
	stats := catalog.LocationStats()
	if len(stats) < 2 {
		t.Fatalf("expected several states, got %d", len(stats))
	}
	if stats[0].HotelCount != 20 {
		t.Fatalf("top state count = %d, want 20", stats[0].HotelCount)
	}
	for _, s := range stats {
		if s.State == "HI" {
			if s.MinRating != 4.4 || s.MaxRating != 4.9 {
				t.Fatalf("HI rating range = %.1f..%.1f", s.MinRating, s.MaxRating)
			}
		}
	}
}
