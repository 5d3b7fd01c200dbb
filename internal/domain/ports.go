package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrSessionNotFound = errors.New("session not found")
)

type HotelRepository interface {
	SearchHotels(ctx context.Context, q HotelQuery) ([]Hotel, error)
	LocationStats(ctx context.Context) ([]LocationStat, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type SessionStore interface {
	Get(ctx context.Context, id string) (BookingSession, error)
	Save(ctx context.Context, s BookingSession) error
	Delete(ctx context.Context, id string) error
}
