package observability_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wedding_venues/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample per family so they show up in the output
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveQuery("search_hotels", errors.New("boom"), 3*time.Millisecond)
	observability.ObserveSearch("sample")
	observability.ObserveBooking()

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, want := range []string{
		"wedding_http_requests_total",
		`wedding_db_queries_total{query="search_hotels",result="error"}`,
		`wedding_searches_total{source="sample"}`,
		"wedding_bookings_confirmed_total",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output", want)
		}
	}
}

func TestMetricsServerServesServiceRegistry(t *testing.T) {
	reg := observability.InitRegistry()
	observability.ObserveSearch("database")
	observability.ObserveBooking()

	srv := observability.NewMetricsServer("127.0.0.1:0", reg)
	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("metrics status: %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	out := string(body)
	for _, want := range []string{
		`wedding_searches_total{source="database"}`,
		"wedding_bookings_confirmed_total",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s on the metrics listener", want)
		}
	}
}
