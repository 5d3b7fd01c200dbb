package app

import (
	"time"

	"wedding_venues/internal/domain"
)

const (
	ServiceFeeRate = 0.05
	TaxRate        = 0.10 // applied to subtotal + service fee

	maxDefaultRooms = 5
)

// Nights counts calendar nights between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// NewQuote prices rooms × nights at rate. Each line is rounded to cents
// and the total is the sum of the rounded lines.
func NewQuote(rate float64, nights, rooms int) domain.Quote {
	subtotal := rate * float64(nights) * float64(rooms)
	fee := subtotal * ServiceFeeRate
	tax := (subtotal + fee) * TaxRate

	q := domain.Quote{
		PricePerNight: domain.RoundCents(rate),
		Nights:        nights,
		Rooms:         rooms,
		Subtotal:      domain.RoundCents(subtotal),
		ServiceFee:    domain.RoundCents(fee),
		Tax:           domain.RoundCents(tax),
	}
	q.Total = domain.RoundCents(q.Subtotal + q.ServiceFee + q.Tax)
	return q
}

// DefaultRooms is the room count preselected on the Booking page.
func DefaultRooms(available int) int {
	if available < maxDefaultRooms {
		return available
	}
	return maxDefaultRooms
}
