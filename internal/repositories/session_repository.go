package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"stayback/internal/models"
)

// SessionRepository keeps refresh-token sessions in redis. Each session is
// a single key mapping the token to the user id, expiring with the token.
type SessionRepository struct {
	RDB *redis.Client
}

func sessionKey(refreshToken string) string {
	return fmt.Sprintf("session:%s", refreshToken)
}

func (r *SessionRepository) SaveSession(ctx context.Context, userID int, refreshToken string, ttl time.Duration) error {
	return r.RDB.Set(ctx, sessionKey(refreshToken), userID, ttl).Err()
}

func (r *SessionRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	val, err := r.RDB.Get(ctx, sessionKey(refreshToken)).Result()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}

	userID, err := strconv.Atoi(val)
	if err != nil {
		return models.Session{}, fmt.Errorf("corrupt session value: %w", err)
	}

	ttl, err := r.RDB.TTL(ctx, sessionKey(refreshToken)).Result()
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{
		UserID:       userID,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(ttl),
	}, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	return r.RDB.Del(ctx, sessionKey(refreshToken)).Err()
}
