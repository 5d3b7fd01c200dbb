package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"wedding_venues/internal/adapters/observability"
	"wedding_venues/internal/domain"
)

var (
	ErrProfileRequired = errors.New("profile required")
	ErrNoSelection     = errors.New("no hotel selected")
	ErrNoResults       = errors.New("no search results")
)

const (
	defaultBudget    = 500
	defaultMinRating = 4.0
	defaultGuests    = 50
	leadDays         = 180
	defaultNights    = 3
)

// SessionService runs the booking flow. Every call loads the session,
// applies one interaction and stores it back.
type SessionService struct {
	store     domain.SessionStore
	search    *SearchService
	validator *Validator
	now       func() time.Time
	newID     func() string
}

func NewSessionService(store domain.SessionStore, search *SearchService, v *Validator) *SessionService {
	return &SessionService{
		store:     store,
		search:    search,
		validator: v,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// WithClock overrides the time source; used by tests.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// NewSession returns a fresh session with the default search criteria:
// a three-night stay starting six months from today.
func NewSession(id string, now time.Time) domain.BookingSession {
	today := DateOnly(now)
	checkIn := today.AddDate(0, 0, leadDays)
	return domain.BookingSession{
		ID:   id,
		Page: domain.PageHome,
		Profile: domain.Profile{
			Role: domain.RoleCouple,
		},
		Criteria: domain.SearchCriteria{
			Budget:    defaultBudget,
			MinRating: defaultMinRating,
			CheckIn:   checkIn,
			CheckOut:  checkIn.AddDate(0, 0, defaultNights),
			Guests:    defaultGuests,
		},
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

func (s *SessionService) Start(ctx context.Context) (domain.BookingSession, error) {
	sess := NewSession(s.newID(), s.now())
	if err := s.store.Save(ctx, sess); err != nil {
		return domain.BookingSession{}, fmt.Errorf("start session: %w", err)
	}
	return sess, nil
}

func (s *SessionService) Load(ctx context.Context, id string) (domain.BookingSession, error) {
	if id == "" {
		return domain.BookingSession{}, domain.ErrSessionNotFound
	}
	return s.store.Get(ctx, id)
}

func (s *SessionService) save(ctx context.Context, sess *domain.BookingSession) error {
	sess.UpdatedAt = s.now().UTC()
	return s.store.Save(ctx, *sess)
}

// SaveProfile stores the Home page form and moves on to Search.
func (s *SessionService) SaveProfile(ctx context.Context, id string, p domain.Profile) (domain.BookingSession, error) {
	sess, err := s.Load(ctx, id)
	if err != nil {
		return domain.BookingSession{}, err
	}
	p = normalizeProfile(p)
	if err := s.validator.Profile(p); err != nil {
		return sess, err
	}
	sess.Profile = p
	sess.Page = domain.PageSearch
	return sess, s.save(ctx, &sess)
}

func normalizeProfile(p domain.Profile) domain.Profile {
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	if p.Role == "" {
		p.Role = domain.RoleCouple
	}
	return p
}

// Search stores the criteria and runs the venue search. With results the
// session moves to Results; without, it stays on Search with no results
// and the returned notice says so.
func (s *SessionService) Search(ctx context.Context, id string, c domain.SearchCriteria) (domain.BookingSession, string, error) {
	sess, err := s.Load(ctx, id)
	if err != nil {
		return domain.BookingSession{}, "", err
	}
	if !sess.HasProfile() {
		return sess, noticeProfileFirst, ErrProfileRequired
	}
	c.Location = strings.Join(strings.Fields(c.Location), " ")
	c.CheckIn, c.CheckOut = DateOnly(c.CheckIn), DateOnly(c.CheckOut)
	if err := s.validator.Criteria(c, s.now()); err != nil {
		return sess, "", err
	}
	sess.Criteria = c

	// results and selection always belong to the stored criteria
	res := s.search.Search(ctx, CriteriaQuery(c))
	sess.Results = res.Hotels
	sess.Source = res.Source
	sess.Selected = nil
	sess.Confirmed = false
	sess.Confirmation = nil

	var notice string
	if len(res.Hotels) == 0 {
		notice = "No venues found. Try adjusting your filters."
		sess.Source = ""
		sess.Page = domain.PageSearch
	} else {
		sess.Page = domain.PageResults
		notice = fmt.Sprintf("Found %d venues", len(res.Hotels))
	}
	log.Info().
		Str("session", sess.ID).
		Str("location", c.Location).
		Int("results", len(res.Hotels)).
		Str("source", res.Source).
		Msg("venue search")
	return sess, notice, s.save(ctx, &sess)
}

// Select picks one of the current results and opens its Details page.
func (s *SessionService) Select(ctx context.Context, id string, hotelID int64) (domain.BookingSession, error) {
	sess, err := s.Load(ctx, id)
	if err != nil {
		return domain.BookingSession{}, err
	}
	if len(sess.Results) == 0 {
		return sess, ErrNoResults
	}
	h, ok := sess.FindResult(hotelID)
	if !ok {
		return sess, domain.ErrNotFound
	}
	sess.Selected = &h
	sess.Confirmed = false
	sess.Confirmation = nil
	sess.Page = domain.PageDetails
	return sess, s.save(ctx, &sess)
}

// Navigate moves to the requested page, or to the nearest page the session qualifies for.
func (s *SessionService) Navigate(ctx context.Context, id string, want domain.Page) (domain.BookingSession, string, error) {
	sess, err := s.Load(ctx, id)
	if err != nil {
		return domain.BookingSession{}, "", err
	}
	page, notice := Resolve(&sess, want)
	sess.Page = page
	return sess, notice, s.save(ctx, &sess)
}

// Quote prices the selected hotel for the stored dates. rooms <= 0 means
// the default room count.
func (s *SessionService) Quote(ctx context.Context, id string, rooms int) (domain.Quote, error) {
	sess, err := s.Load(ctx, id)
	if err != nil {
		return domain.Quote{}, err
	}
	return quoteFor(&sess, rooms)
}

func quoteFor(sess *domain.BookingSession, rooms int) (domain.Quote, error) {
	if sess.Selected == nil {
		return domain.Quote{}, ErrNoSelection
	}
	h := sess.Selected
	if rooms <= 0 {
		rooms = DefaultRooms(h.AvailableRooms)
	}
	if rooms > h.AvailableRooms {
		return domain.Quote{}, ValidationErrors{{Field: "rooms", Message: fmt.Sprintf("rooms must be at most %d", h.AvailableRooms)}}
	}
	return NewQuote(h.PricePerNight, Nights(sess.Criteria.CheckIn, sess.Criteria.CheckOut), rooms), nil
}

// Confirm books the selected hotel and records the confirmation on the session.
func (s *SessionService) Confirm(ctx context.Context, id string, req domain.BookingRequest) (domain.BookingSession, error) {
	sess, err := s.Load(ctx, id)
	if err != nil {
		return domain.BookingSession{}, err
	}
	if !sess.HasProfile() {
		return sess, ErrProfileRequired
	}
	if sess.Selected == nil {
		return sess, ErrNoSelection
	}
	req.SpecialRequests = strings.TrimSpace(req.SpecialRequests)
	if err := s.validator.Booking(req, *sess.Selected); err != nil {
		return sess, err
	}
	q, err := quoteFor(&sess, req.Rooms)
	if err != nil {
		return sess, err
	}

	sess.Confirmation = &domain.Confirmation{
		Number:          ConfirmationNumber(sess.Profile.Name, sess.Selected.Name),
		HotelName:       sess.Selected.Name,
		CheckIn:         sess.Criteria.CheckIn,
		CheckOut:        sess.Criteria.CheckOut,
		Rooms:           q.Rooms,
		Total:           q.Total,
		Email:           sess.Profile.Email,
		SpecialRequests: req.SpecialRequests,
	}
	sess.Confirmed = true
	sess.Page = domain.PageBooking
	if err := s.save(ctx, &sess); err != nil {
		return sess, err
	}
	observability.ObserveBooking()
	log.Info().
		Str("session", sess.ID).
		Int64("hotel_id", sess.Selected.ID).
		Str("confirmation", sess.Confirmation.Number).
		Float64("total", q.Total).
		Msg("booking confirmed")
	return sess, nil
}

// Reset clears the selection and results and returns to Home. The profile
// and last criteria are kept for the next search.
func (s *SessionService) Reset(ctx context.Context, id string) (domain.BookingSession, error) {
	sess, err := s.Load(ctx, id)
	if err != nil {
		return domain.BookingSession{}, err
	}
	sess.Selected = nil
	sess.Results = nil
	sess.Source = ""
	sess.Confirmed = false
	sess.Confirmation = nil
	sess.Page = domain.PageHome
	return sess, s.save(ctx, &sess)
}

func (s *SessionService) LocationStats(ctx context.Context) []domain.LocationStat {
	return s.search.LocationStats(ctx)
}
