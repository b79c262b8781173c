package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2fit/fitstreak/pkg"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitstreak-session||"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Service keeps mobile app sessions in redis: a session token maps to the
// owner (user) it was issued for, expiring via redis TTL. The actual identity
// check (firebase / oauth sign-in) happens on the device; the backend only
// vends tokens for an already-authenticated owner id.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, ownerID string) (string, error) {
	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	if err := as.redisClient.Set(ctx, sessionKey, ownerID, as.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) error {
	sessionKey := sessionKeyPrefix + token

	removed, err := as.redisClient.Del(ctx, sessionKey).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotLoggedIn
	}

	return nil
}

// OwnerID resolves a session token to the owner it belongs to.
func (as *Service) OwnerID(ctx context.Context, token string) (string, error) {
	sessionKey := sessionKeyPrefix + token

	ownerID, err := as.redisClient.Get(ctx, sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", err
	}

	return ownerID, nil
}
