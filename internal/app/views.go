package app

import (
	"time"

	"wedding_venues/internal/domain"
)

// View is everything a client needs to render the session's current page.
// Only the block matching Page is populated.
type View struct {
	SessionID string        `json:"session_id"`
	Page      domain.Page   `json:"page"`
	Available []domain.Page `json:"available_pages"`
	Notice    string        `json:"notice,omitempty"`
	User      *UserBadge    `json:"user,omitempty"`

	Home    *HomeView    `json:"home,omitempty"`
	Search  *SearchView  `json:"search,omitempty"`
	Results *ResultsView `json:"results,omitempty"`
	Details *DetailsView `json:"details,omitempty"`
	Booking *BookingView `json:"booking,omitempty"`
}

type UserBadge struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type HomeView struct {
	Profile domain.Profile `json:"profile"`
	Roles   []string       `json:"roles"`
}

type SearchView struct {
	Criteria domain.SearchCriteria `json:"criteria"`
	Today    time.Time             `json:"today"`
}

type ResultsView struct {
	Criteria  domain.SearchCriteria `json:"criteria"`
	Source    string                `json:"source"`
	Summary   Summary               `json:"summary"`
	Sort      SortKey               `json:"sort"`
	PageSize  int                   `json:"page_size"`
	PageSizes []int                 `json:"page_sizes"`
	Hotels    []domain.Hotel        `json:"hotels"`
}

type DetailsView struct {
	Hotel      domain.Hotel    `json:"hotel"`
	Amenities  []string        `json:"amenities"`
	Comparison []ComparisonRow `json:"comparison"`
}

type BookingView struct {
	Hotel        domain.Hotel         `json:"hotel"`
	Profile      domain.Profile       `json:"profile"`
	Guests       int                  `json:"guests"`
	CheckIn      time.Time            `json:"check_in"`
	CheckOut     time.Time            `json:"check_out"`
	Quote        domain.Quote         `json:"quote"`
	Confirmed    bool                 `json:"confirmed"`
	Confirmation *domain.Confirmation `json:"confirmation,omitempty"`
}

// ResultsPage sorts and truncates the session results.
func ResultsPage(sess *domain.BookingSession, sort SortKey, size int) *ResultsView {
	size = PageSize(size)
	hs := SortHotels(sess.Results, sort)
	if len(hs) > size {
		hs = hs[:size]
	}
	return &ResultsView{
		Criteria:  sess.Criteria,
		Source:    sess.Source,
		Summary:   Summarize(sess.Results),
		Sort:      sort,
		PageSize:  size,
		PageSizes: PageSizes,
		Hotels:    hs,
	}
}

// BuildView renders the session's current page. The page is re-resolved
// so a session never sees a page whose prerequisites went missing.
func BuildView(sess *domain.BookingSession, notice string, now time.Time) View {
	page, redirect := Resolve(sess, sess.Page)
	if notice == "" {
		notice = redirect
	}
	v := View{
		SessionID: sess.ID,
		Page:      page,
		Available: AvailablePages(sess),
		Notice:    notice,
	}
	if sess.HasProfile() {
		v.User = &UserBadge{Name: sess.Profile.Name, Email: sess.Profile.Email, Role: sess.Profile.Role}
	}

	switch page {
	case domain.PageHome:
		v.Home = &HomeView{Profile: sess.Profile, Roles: domain.Roles}
	case domain.PageSearch:
		v.Search = &SearchView{Criteria: sess.Criteria, Today: DateOnly(now)}
	case domain.PageResults:
		v.Results = ResultsPage(sess, SortRating, PageSizes[0])
	case domain.PageDetails:
		h := *sess.Selected
		v.Details = &DetailsView{Hotel: h, Amenities: h.AmenityList(), Comparison: Compare(h, sess.Results)}
	case domain.PageBooking:
		bv := &BookingView{
			Hotel:        *sess.Selected,
			Profile:      sess.Profile,
			Guests:       sess.Criteria.Guests,
			CheckIn:      sess.Criteria.CheckIn,
			CheckOut:     sess.Criteria.CheckOut,
			Confirmed:    sess.Confirmed,
			Confirmation: sess.Confirmation,
		}
		rooms := 0
		if sess.Confirmation != nil {
			rooms = sess.Confirmation.Rooms
		}
		if q, err := quoteFor(sess, rooms); err == nil {
			bv.Quote = q
		}
		v.Booking = bv
	}
	return v
}
