package app

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ConfirmationNumber formats WED-<initials>-<nnnn>, where initials are the
// first three letters of the guest name and nnnn is derived from the venue
// name, so the same guest and venue always produce the same number.
func ConfirmationNumber(guestName, hotelName string) string {
	initials := []rune(strings.ToUpper(strings.TrimSpace(guestName)))
	if len(initials) > 3 {
		initials = initials[:3]
	}
	return fmt.Sprintf("WED-%s-%04d", string(initials), xxhash.Sum64String(hotelName)%10000)
}
