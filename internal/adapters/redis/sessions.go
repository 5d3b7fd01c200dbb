package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wedding_venues/internal/domain"
)

// SessionStore keeps booking sessions as JSON documents. Every Save
// pushes the expiry out again, so idle sessions age out after ttl.
type SessionStore struct {
	c   *redis.Client
	ttl time.Duration
}

func NewSessionStore(c *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{c: c, ttl: ttl}
}

func sessionKey(id string) string { return "session:" + id }

func (s *SessionStore) Get(ctx context.Context, id string) (domain.BookingSession, error) {
	b, err := s.c.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.BookingSession{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.BookingSession{}, fmt.Errorf("load session: %w", err)
	}
	var out domain.BookingSession
	if err := json.Unmarshal(b, &out); err != nil {
		return domain.BookingSession{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return out, nil
}

func (s *SessionStore) Save(ctx context.Context, sess domain.BookingSession) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.c.Set(ctx, sessionKey(sess.ID), b, s.ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.c.Del(ctx, sessionKey(id)).Err()
}
