package app_test

import (
	"context"
	"encoding/json"
	"sync"

	"wedding_venues/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	mu      sync.Mutex
	hotels  []domain.Hotel
	stats   []domain.LocationStat
	err     error
	calls   int
	queries []domain.HotelQuery
}

func (f *fakeRepo) SearchHotels(ctx context.Context, q domain.HotelQuery) ([]domain.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Hotel(nil), f.hotels...), nil
}

func (f *fakeRepo) LocationStats(ctx context.Context) ([]domain.LocationStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

func (f *fakeRepo) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeCache stores JSON like the redis adapter so callers get copies back.
type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

func (c *fakeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.store)
}

type memStore struct {
	mu       sync.Mutex
	sessions map[string]domain.BookingSession
}

func (m *memStore) Get(ctx context.Context, id string) (domain.BookingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return domain.BookingSession{}, domain.ErrSessionNotFound
	}
	return s, nil
}

func (m *memStore) Save(ctx context.Context, s domain.BookingSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions == nil {
		m.sessions = map[string]domain.BookingSession{}
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func dbHotels() []domain.Hotel {
	return []domain.Hotel{
		{ID: 1, Name: "Ocean Pearl", Location: "Miami, FL", City: "Miami", State: "FL", Rating: 4.8, PricePerNight: 450, AvailableRooms: 12, TotalRooms: 200, Amenities: "Ballroom, Spa", Category: "5-Star Hotel", StarRating: 5, Source: domain.SourceDatabase},
		{ID: 2, Name: "Palm Court", Location: "Miami, FL", City: "Miami", State: "FL", Rating: 4.2, PricePerNight: 250, AvailableRooms: 3, TotalRooms: 120, Amenities: "Spa", Category: "4-Star Hotel", StarRating: 4, Source: domain.SourceDatabase},
		{ID: 3, Name: "Bayfront Grand Ballroom Hotel & Suites", Location: "Miami Beach, FL", City: "Miami Beach", State: "FL", Rating: 4.5, PricePerNight: 380, AvailableRooms: 40, TotalRooms: 310, Amenities: "Ballroom", Category: "4-Star Hotel", StarRating: 4, Source: domain.SourceDatabase},
	}
}

func ptr[T any](v T) *T { return &v }
