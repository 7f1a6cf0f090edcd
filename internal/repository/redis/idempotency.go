package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const idemNS = "holidaze:v1:idem"

const (
	idemLockValue    = "LOCK"
	idemResultPrefix = "RES:"
)

// KeyIdemBooking scopes an Idempotency-Key to the customer sending it.
func KeyIdemBooking(customer, idemKey string) string {
	return fmt.Sprintf("%s:bookings:%s:%s", idemNS, customer, idemKey)
}

type IdemState int

const (
	// IdemAcquired means the caller owns the key and must either Save or Release.
	IdemAcquired IdemState = iota
	// IdemInProgress means another request holds the key.
	IdemInProgress
	// IdemDone means a result was stored and should be replayed.
	IdemDone
)

type IdempotencyStore struct {
	rdb     redis.Cmdable
	ttl     time.Duration
	lockTTL time.Duration
}

func NewIdempotencyStore(rdb redis.Cmdable, ttl, lockTTL time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl, lockTTL: lockTTL}
}

// Begin claims key for this request or reports what another request left there.
// The returned payload is set only for IdemDone.
func (s *IdempotencyStore) Begin(ctx context.Context, key string) (IdemState, string, error) {
	if payload, ok, err := s.result(ctx, key); err != nil || ok {
		return IdemDone, payload, err
	}

	locked, err := s.rdb.SetNX(ctx, key, idemLockValue, s.lockTTL).Result()
	if err != nil {
		return IdemInProgress, "", err
	}

	if locked {
		return IdemAcquired, "", nil
	}

	// Lost the race: the winner may have finished in between.
	if payload, ok, err := s.result(ctx, key); err != nil || ok {
		return IdemDone, payload, err
	}

	return IdemInProgress, "", nil
}

func (s *IdempotencyStore) Save(ctx context.Context, key string, jsonPayload string) error {
	return s.rdb.Set(ctx, key, idemResultPrefix+jsonPayload, s.ttl).Err()
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *IdempotencyStore) result(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	payload, ok := strings.CutPrefix(v, idemResultPrefix)

	return payload, ok, nil
}
