package domain

import "time"

type Quote struct {
	PricePerNight float64 `json:"price_per_night"`
	Nights        int     `json:"nights"`
	Rooms         int     `json:"rooms"`
	Subtotal      float64 `json:"subtotal"`
	ServiceFee    float64 `json:"service_fee"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

type BookingRequest struct {
	Rooms           int    `json:"rooms"`
	SpecialRequests string `json:"special_requests,omitempty" validate:"max=2000"`
	AgreeTerms      bool   `json:"agree_terms"`
}

type Confirmation struct {
	Number          string    `json:"number"`
	HotelName       string    `json:"hotel_name"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Rooms           int       `json:"rooms"`
	Total           float64   `json:"total"`
	Email           string    `json:"email"`
	SpecialRequests string    `json:"special_requests,omitempty"`
}
