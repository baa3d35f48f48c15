package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps the admin session flag in Redis; a record expires after ttl.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func (s *SessionStore) key(sessionID string) string { return "admin_session:" + sessionID }

// TTL is the lifetime of a new session record.
func (s *SessionStore) TTL() time.Duration { return s.ttl }

func (s *SessionStore) Create(ctx context.Context, sessionID, username string) error {
	return s.rdb.Set(ctx, s.key(sessionID), username, s.ttl).Err()
}

// Get returns the username of a live session.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	username, err := s.rdb.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", err
	}
	return username, nil
}

// Delete removes the session; deleting an absent session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, s.key(sessionID)).Err()
}
