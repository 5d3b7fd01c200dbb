package domain

import "strings"

const (
	SourceDatabase = "database"
	SourceSample   = "sample"
)

type Hotel struct {
	ID             int64   `json:"hotel_id"`
	Name           string  `json:"name"`
	Location       string  `json:"location"` // "City, ST"
	City           string  `json:"city"`
	State          string  `json:"state"`
	Rating         float64 `json:"rating"`
	PricePerNight  float64 `json:"price_per_night"`
	AvailableRooms int     `json:"rooms"`
	TotalRooms     int     `json:"total_rooms"`
	Amenities      string  `json:"amenities"` // comma separated, as GROUP_CONCAT returns it
	Category       string  `json:"category"`
	StarRating     int     `json:"star_rating"`
	Phone          string  `json:"phone,omitempty"`
	Email          string  `json:"email,omitempty"`
	Website        string  `json:"website,omitempty"`
	Address        string  `json:"address,omitempty"`
	Description    string  `json:"description,omitempty"`
	Source         string  `json:"source"`
}

// AmenityList splits the amenities string into its entries.
func (h Hotel) AmenityList() []string {
	var out []string
	for _, a := range strings.Split(h.Amenities, ",") {
		if t := strings.TrimSpace(a); t != "" {
			out = append(out, t)
		}
	}
	return out
}

type LocationStat struct {
	State      string  `json:"state"`
	HotelCount int     `json:"hotel_count"`
	AvgRating  float64 `json:"avg_rating"`
	MinRating  float64 `json:"min_rating"`
	MaxRating  float64 `json:"max_rating"`
}

// HotelQuery is what the repository and the fallback filter understand.
// Zero values disable the corresponding predicate.
type HotelQuery struct {
	Location  string
	MaxPrice  float64
	MinRating float64
	Limit     int
}
