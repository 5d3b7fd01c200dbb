package app

import "wedding_venues/internal/domain"

const (
	noticeProfileFirst = "Please complete your profile on the Home page first"
	noticeSearchFirst  = "No search results found. Please perform a search first."
	noticeSelectFirst  = "Please select a hotel first"
	noticeUnknownPage  = "Unknown page"
)

// Resolve returns the page a session may actually land on when it asks for
// want, together with a notice explaining any redirect. A page whose
// prerequisites are missing sends the session back to the step that
// provides them.
func Resolve(s *domain.BookingSession, want domain.Page) (domain.Page, string) {
	switch want {
	case domain.PageHome:
		return domain.PageHome, ""
	case domain.PageSearch:
		if !s.HasProfile() {
			return domain.PageHome, noticeProfileFirst
		}
		return domain.PageSearch, ""
	case domain.PageResults:
		if !s.HasProfile() {
			return domain.PageHome, noticeProfileFirst
		}
		if len(s.Results) == 0 {
			return domain.PageSearch, noticeSearchFirst
		}
		return domain.PageResults, ""
	case domain.PageDetails, domain.PageBooking:
		if s.Selected == nil {
			p, n := Resolve(s, domain.PageResults)
			if n == "" {
				n = noticeSelectFirst
			}
			return p, n
		}
		if !s.HasProfile() {
			return domain.PageHome, noticeProfileFirst
		}
		return want, ""
	}
	return domain.PageHome, noticeUnknownPage
}

// AvailablePages lists the pages the session can open right now, in flow order.
func AvailablePages(s *domain.BookingSession) []domain.Page {
	out := make([]domain.Page, 0, len(domain.Pages))
	for _, p := range domain.Pages {
		if got, _ := Resolve(s, p); got == p {
			out = append(out, p)
		}
	}
	return out
}
