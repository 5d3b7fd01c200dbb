package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"wedding_venues/internal/adapters/observability"
	"wedding_venues/internal/catalog"
	"wedding_venues/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// BuildSearchQuery returns the venue search statement and its arguments.
// Location matches a city substring or an exact state code; price is
// compared against the average available-room rate.
func BuildSearchQuery(q domain.HotelQuery) (string, []any) {
	var where, having []string
	var args []any

	if loc := strings.ToLower(strings.TrimSpace(q.Location)); loc != "" {
		where = append(where, "\n  AND (LOWER(h.City) LIKE ? OR LOWER(h.State) = ?)")
		args = append(args, "%"+loc+"%", loc)
	}
	if q.MaxPrice > 0 {
		having = append(having, "\n  AND COALESCE(AVG(r.BasePrice), 300) <= ?")
		args = append(args, q.MaxPrice)
	}
	if q.MinRating > 0 {
		having = append(having, "\n  AND h.AverageRating >= ?")
		args = append(args, q.MinRating)
	}

	limit := q.Limit
	if limit <= 0 || limit > catalog.MaxRows {
		limit = catalog.MaxRows
	}
	args = append(args, limit)

	return joinSQL(searchSelect, strings.Join(where, ""), searchGroupBy, strings.Join(having, ""), searchOrder), args
}

func (r *Repo) SearchHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	query, args := BuildSearchQuery(q)

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, args...)
	observability.ObserveQuery("search_hotels", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var (
			h                             domain.Hotel
			name, city, state, location   sql.NullString
			phone, email, website, street sql.NullString
			desc, amenities               sql.NullString
			rating, price                 sql.NullFloat64
			rooms, stars, totalRooms      sql.NullInt64
		)
		if err := rows.Scan(
			&h.ID,
			&name, &city, &state, &location,
			&rating,
			&phone, &email, &website, &street,
			&desc,
			&price,
			&rooms,
			&amenities,
			&stars,
			&totalRooms,
		); err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}

		h.Name = name.String
		h.City = city.String
		h.State = state.String
		h.Location = location.String
		h.Phone = phone.String
		h.Email = email.String
		h.Website = website.String
		h.Address = street.String

		h.Rating = 4.5
		if rating.Valid && rating.Float64 > 0 {
			h.Rating = rating.Float64
		}
		h.PricePerNight = defaultNightlyRate
		if price.Valid && price.Float64 > 0 {
			h.PricePerNight = price.Float64
		}
		h.AvailableRooms = int(rooms.Int64)
		h.TotalRooms = int(totalRooms.Int64)

		h.Amenities = "Amenities available"
		if amenities.Valid && amenities.String != "" {
			h.Amenities = amenities.String
		}
		h.Category = "Luxury Hotel"
		if stars.Valid && stars.Int64 > 0 {
			h.StarRating = int(stars.Int64)
			h.Category = fmt.Sprintf("%d-Star Hotel", h.StarRating)
		}
		h.Description = catalog.DefaultDescription
		if desc.Valid && strings.TrimSpace(desc.String) != "" {
			h.Description = desc.String
		}
		h.Source = domain.SourceDatabase

		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotels: %w", err)
	}
	return out, nil
}

func (r *Repo) LocationStats(ctx context.Context) ([]domain.LocationStat, error) {
	start := time.Now()
	rows, err := r.db.QueryContext(ctx, locationStatsSQL)
	observability.ObserveQuery("location_stats", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("location stats: %w", err)
	}
	defer rows.Close()

	var out []domain.LocationStat
	for rows.Next() {
		var (
			st          domain.LocationStat
			state       sql.NullString
			avg, lo, hi sql.NullFloat64
		)
		if err := rows.Scan(&state, &st.HotelCount, &avg, &lo, &hi); err != nil {
			return nil, fmt.Errorf("scan location stat: %w", err)
		}
		st.State = state.String
		st.AvgRating = avg.Float64
		st.MinRating = lo.Float64
		st.MaxRating = hi.Float64
		out = append(out, st)
	}
	return out, rows.Err()
}
