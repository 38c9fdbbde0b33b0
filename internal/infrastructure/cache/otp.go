package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrOTPNotFound = errors.New("otp not found or expired")

// OTPStore keeps password-reset one-time codes in Redis, expiring them via
// TTL rather than persisting reset state on the identity record.
type OTPStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOTPStore(rdb *redis.Client, ttl time.Duration) *OTPStore {
	return &OTPStore{rdb: rdb, ttl: ttl}
}

func otpKey(email string) string { return "otp:pwreset:" + email }

func (s *OTPStore) Set(ctx context.Context, email, otp string) error {
	return s.rdb.Set(ctx, otpKey(email), otp, s.ttl).Err()
}

func (s *OTPStore) Get(ctx context.Context, email string) (string, error) {
	v, err := s.rdb.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrOTPNotFound
	}
	return v, err
}

func (s *OTPStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, otpKey(email)).Err()
}
