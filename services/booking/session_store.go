package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"summitos/config"
	"summitos/models"
	"summitos/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists booking sessions for the quote-to-confirmation flow.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in the session cache under a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore() *RedisSessionStore {
	ttlHours := config.AppConfig.SessionTTLHours
	if ttlHours <= 0 {
		ttlHours = 4
	}
	return &RedisSessionStore{
		Client: utils.GetSessionCacheClient(),
		TTL:    time.Duration(ttlHours) * time.Hour,
	}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return utils.SessionCachePrefix + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, s.key(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, NewValidationError("booking session not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
