package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wedding_venues/internal/app"
	"wedding_venues/internal/domain"
)

func newFlow(repo *fakeRepo) (*app.SessionService, *memStore) {
	store := &memStore{}
	search := app.NewSearchService(repo, &fakeCache{}, time.Hour)
	svc := app.NewSessionService(store, search, app.NewValidator()).
		WithClock(func() time.Time { return today })
	return svc, store
}

func TestStart_Defaults(t *testing.T) {
	svc, store := newFlow(&fakeRepo{})
	sess, err := svc.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.ID == "" || sess.Page != domain.PageHome || sess.Profile.Role != domain.RoleCouple {
		t.Fatalf("unexpected session %+v", sess)
	}
	c := sess.Criteria
	if c.Budget != 500 || c.MinRating != 4.0 || c.Guests != 50 {
		t.Fatalf("unexpected criteria %+v", c)
	}
	if !c.CheckIn.Equal(day(2027, 4, 14)) || !c.CheckOut.Equal(day(2027, 4, 17)) {
		t.Fatalf("dates = %s..%s", c.CheckIn, c.CheckOut)
	}
	if _, err := store.Get(context.Background(), sess.ID); err != nil {
		t.Fatalf("session not stored: %v", err)
	}
}

func TestFlow_ProfileSearchSelectBook(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFlow(&fakeRepo{hotels: dbHotels()})
	sess, _ := svc.Start(ctx)
	id := sess.ID

	if _, _, err := svc.Search(ctx, id, validCriteria()); !errors.Is(err, app.ErrProfileRequired) {
		t.Fatalf("search before profile: err = %v", err)
	}

	if _, err := svc.SaveProfile(ctx, id, domain.Profile{Name: "Ana", Email: "nope"}); err == nil {
		t.Fatal("expected profile validation error")
	}
	sess, err := svc.SaveProfile(ctx, id, domain.Profile{Name: "  Ana   Lima ", Email: " Ana@Example.COM "})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if sess.Page != domain.PageSearch || sess.Profile.Name != "Ana Lima" || sess.Profile.Email != "ana@example.com" || sess.Profile.Role != domain.RoleCouple {
		t.Fatalf("unexpected profile state %+v", sess)
	}

	sess, notice, err := svc.Search(ctx, id, validCriteria())
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if sess.Page != domain.PageResults || len(sess.Results) != 3 || sess.Source != domain.SourceDatabase {
		t.Fatalf("unexpected search state page=%s results=%d source=%s", sess.Page, len(sess.Results), sess.Source)
	}
	if notice != "Found 3 venues" {
		t.Fatalf("notice = %q", notice)
	}

	if _, err := svc.Select(ctx, id, 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("select unknown: err = %v", err)
	}
	sess, err = svc.Select(ctx, id, 1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sess.Page != domain.PageDetails || sess.Selected == nil || sess.Selected.Name != "Ocean Pearl" {
		t.Fatalf("unexpected selection %+v", sess.Selected)
	}

	// 450/night, 3 nights, default 5 rooms
	q, err := svc.Quote(ctx, id, 0)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if q.Rooms != 5 || q.Nights != 3 || q.Subtotal != 6750 || q.ServiceFee != 337.5 || q.Tax != 708.75 || q.Total != 7796.25 {
		t.Fatalf("unexpected quote %+v", q)
	}
	if _, err := svc.Quote(ctx, id, 13); err == nil {
		t.Fatal("expected error for more rooms than available")
	}

	if _, err := svc.Confirm(ctx, id, domain.BookingRequest{Rooms: 5}); fieldErrors(t, err)["agree_terms"] == "" {
		t.Fatalf("expected agree_terms error, got %v", err)
	}
	sess, err = svc.Confirm(ctx, id, domain.BookingRequest{Rooms: 5, AgreeTerms: true, SpecialRequests: "  vegan menu "})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	conf := sess.Confirmation
	if !sess.Confirmed || sess.Page != domain.PageBooking || conf == nil {
		t.Fatalf("booking not confirmed: %+v", sess)
	}
	if !strings.HasPrefix(conf.Number, "WED-ANA-") || conf.Total != 7796.25 || conf.Email != "ana@example.com" || conf.SpecialRequests != "vegan menu" {
		t.Fatalf("unexpected confirmation %+v", conf)
	}

	v := app.BuildView(&sess, "", today)
	if v.Booking == nil || v.Booking.Quote.Total != 7796.25 || v.User == nil {
		t.Fatalf("unexpected booking view %+v", v)
	}

	sess, err = svc.Reset(ctx, id)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if sess.Page != domain.PageHome || sess.Results != nil || sess.Selected != nil || sess.Confirmed || !sess.HasProfile() {
		t.Fatalf("unexpected state after reset %+v", sess)
	}
}

func TestSearch_NoVenuesStaysOnSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFlow(&fakeRepo{})
	sess, _ := svc.Start(ctx)
	if _, err := svc.SaveProfile(ctx, sess.ID, domain.Profile{Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	c := validCriteria()
	c.Location = "Atlantis"
	sess, notice, err := svc.Search(ctx, sess.ID, c)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if sess.Page != domain.PageSearch || len(sess.Results) != 0 || !strings.HasPrefix(notice, "No venues found") {
		t.Fatalf("page=%s results=%d notice=%q", sess.Page, len(sess.Results), notice)
	}
}

func TestSearch_FallsBackToSampleVenues(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFlow(&fakeRepo{})
	sess, _ := svc.Start(ctx)
	_, _ = svc.SaveProfile(ctx, sess.ID, domain.Profile{Name: "Ana", Email: "ana@example.com"})

	c := validCriteria()
	c.Location = "Maui"
	c.Budget = 400
	sess, _, err := svc.Search(ctx, sess.ID, c)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if sess.Source != domain.SourceSample || len(sess.Results) != 7 {
		t.Fatalf("source=%s results=%d", sess.Source, len(sess.Results))
	}
}

func TestNavigate_Guards(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFlow(&fakeRepo{hotels: dbHotels()})
	sess, _ := svc.Start(ctx)

	sess, notice, err := svc.Navigate(ctx, sess.ID, domain.PageBooking)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if sess.Page != domain.PageHome || notice == "" {
		t.Fatalf("page=%s notice=%q", sess.Page, notice)
	}

	if _, err := svc.Select(ctx, sess.ID, 1); !errors.Is(err, app.ErrNoResults) {
		t.Fatalf("select without results: err = %v", err)
	}
	if _, err := svc.Confirm(ctx, sess.ID, domain.BookingRequest{Rooms: 1, AgreeTerms: true}); !errors.Is(err, app.ErrProfileRequired) {
		t.Fatalf("confirm without profile: err = %v", err)
	}
	if _, _, err := svc.Navigate(ctx, "missing", domain.PageHome); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("unknown session: err = %v", err)
	}
}

func TestSearch_EmptySearchDropsPreviousResults(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{hotels: dbHotels()}
	svc, _ := newFlow(repo)
	sess, _ := svc.Start(ctx)
	id := sess.ID
	_, _ = svc.SaveProfile(ctx, id, domain.Profile{Name: "Ana", Email: "ana@example.com"})

	c := validCriteria()
	c.Location = "Miami"
	if _, _, err := svc.Search(ctx, id, c); err != nil {
		t.Fatalf("search: %v", err)
	}
	if _, err := svc.Select(ctx, id, 1); err != nil {
		t.Fatalf("select: %v", err)
	}

	repo.hotels = nil
	c.Location = "Atlantis"
	sess, _, err := svc.Search(ctx, id, c)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if len(sess.Results) != 0 || sess.Source != "" || sess.Selected != nil {
		t.Fatalf("stale state kept: results=%d source=%q selected=%v", len(sess.Results), sess.Source, sess.Selected)
	}
	if sess.Criteria.Location != "Atlantis" {
		t.Fatalf("criteria = %+v", sess.Criteria)
	}
	if page, notice := app.Resolve(&sess, domain.PageResults); page != domain.PageSearch || notice == "" {
		t.Fatalf("results page should redirect to search, got %s %q", page, notice)
	}
}
