package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/scoutworks/supplierscout-backend/pkg/redis"
)

// RedisStore persists sessions in Redis so multiple instances can share them.
// The key TTL mirrors the session expiry, so Redis evicts naturally; the
// expiry check in the manager still applies for clock-skewed reads.
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore wraps the shared redis client as a session store.
func NewRedisStore(client *redisclient.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Put(ctx context.Context, sess Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}
	return s.client.Set(ctx, s.client.SessionKey(sess.Token), payload, ttl)
}

func (s *RedisStore) Get(ctx context.Context, token string) (Session, error) {
	raw, err := s.client.Get(ctx, s.client.SessionKey(token))
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return Session{}, ErrInvalidSession
		}
		return Session{}, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.client.SessionKey(token))
}
