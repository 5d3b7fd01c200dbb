package domain

import "time"

type Page string

const (
	PageHome    Page = "Home"
	PageSearch  Page = "Search"
	PageResults Page = "Results"
	PageDetails Page = "Details"
	PageBooking Page = "Booking"
)

// Pages lists the flow in order.
var Pages = []Page{PageHome, PageSearch, PageResults, PageDetails, PageBooking}

func (p Page) Valid() bool {
	for _, x := range Pages {
		if x == p {
			return true
		}
	}
	return false
}

const (
	RoleCouple         = "Couple"
	RoleWeddingPlanner = "Wedding Planner"
	RoleHotelAdmin     = "Hotel Admin"
	RoleEventOrganizer = "Event Organizer"
)

var Roles = []string{RoleCouple, RoleWeddingPlanner, RoleHotelAdmin, RoleEventOrganizer}

type Profile struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=254"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Role  string `json:"role" validate:"required,role"`
}

type SearchCriteria struct {
	Location  string    `json:"location" validate:"max=100"`
	Budget    float64   `json:"budget" validate:"gte=100,lte=10000"`
	MinRating float64   `json:"min_rating" validate:"gte=0,lte=5"`
	CheckIn   time.Time `json:"check_in" validate:"required"`
	CheckOut  time.Time `json:"check_out" validate:"required"`
	Guests    int       `json:"guests" validate:"gte=10,lte=500"`
}

type BookingSession struct {
	ID           string         `json:"id"`
	Page         Page           `json:"page"`
	Profile      Profile        `json:"profile"`
	Criteria     SearchCriteria `json:"criteria"`
	Results      []Hotel        `json:"results,omitempty"`
	Source       string         `json:"source,omitempty"`
	Selected     *Hotel         `json:"selected,omitempty"`
	Confirmed    bool           `json:"confirmed"`
	Confirmation *Confirmation  `json:"confirmation,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (s *BookingSession) HasProfile() bool { return s.Profile.Name != "" }

// FindResult returns the hotel with the given id among the current results.
func (s *BookingSession) FindResult(id int64) (Hotel, bool) {
	for _, h := range s.Results {
		if h.ID == id {
			return h, true
		}
	}
	return Hotel{}, false
}
