package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store handles Redis operations for viewer sessions
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveQuery stores the search text of a session, expiring after ttl
func (s *Store) SaveQuery(ctx context.Context, id, query string, ttl time.Duration) error {
	if err := s.client.Set(ctx, SessionKey(id), query, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session query: %w", err)
	}
	return nil
}

// GetQuery retrieves the search text of a session
func (s *Store) GetQuery(ctx context.Context, id string) (string, bool, error) {
	query, err := s.client.Get(ctx, SessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil // expired or never seen
		}
		return "", false, fmt.Errorf("failed to get session query: %w", err)
	}
	return query, true, nil
}

// Count returns the number of live sessions
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0
	iter := s.client.Scan(ctx, 0, SessionPattern(), 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
