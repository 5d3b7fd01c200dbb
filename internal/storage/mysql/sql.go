package mysql

import "strings"

// Rooms without an available row have no BasePrice; the venue is then
// priced at the house default so it still shows up in searches.
const defaultNightlyRate = 300

const searchSelect = `
SELECT
  h.HotelID,
  h.HotelName,
  h.City,
  h.State,
  CONCAT(h.City, ', ', h.State)                              AS location,
  h.AverageRating,
  h.PhoneNumber,
  h.Email,
  h.Website,
  h.StreetAddress,
  h.Description,
  COALESCE(AVG(r.BasePrice), 300)                            AS price_per_night,
  COUNT(DISTINCT r.RoomID)                                   AS rooms,
  GROUP_CONCAT(DISTINCT a.AmenityName SEPARATOR ', ')        AS amenities,
  h.StarRating,
  h.TotalRooms
FROM HOTEL h
LEFT JOIN ROOM r            ON h.HotelID = r.HotelID AND r.RoomStatus = 'Available'
LEFT JOIN HOTELAMENITIES ha ON h.HotelID = ha.HotelID
LEFT JOIN AMENITIES a       ON ha.AmenityID = a.AmenityID
WHERE 1=1`

const searchGroupBy = `
GROUP BY h.HotelID, h.HotelName, h.City, h.State,
         h.PhoneNumber, h.Email, h.Website, h.StreetAddress,
         h.AverageRating, h.StarRating, h.Description, h.TotalRooms
HAVING 1=1`

const searchOrder = `
ORDER BY h.AverageRating DESC, h.StarRating DESC
LIMIT ?`

const locationStatsSQL = `
SELECT
  State,
  COUNT(*)           AS hotel_count,
  AVG(AverageRating) AS avg_rating,
  MIN(AverageRating) AS min_rating,
  MAX(AverageRating) AS max_rating
FROM HOTEL
GROUP BY State
ORDER BY hotel_count DESC
`

func joinSQL(parts ...string) string { return strings.Join(parts, "") }
