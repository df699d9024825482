package windowstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
)

// RedisStore backs the detector windows with a shared Redis instance, so
// every consumer in the group sees the same state.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) HGet(ctx context.Context, key, field string) (string, error) {
	val, err := s.rdb.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) HSet(ctx context.Context, key, field, value string) error {
	return s.rdb.HSet(ctx, key, field, value).Err()
}

// Push appends the event and refreshes the key TTL in one pipeline. The
// push and the subsequent Range are still two round trips, so two
// near-simultaneous events on one key may each observe a sub-threshold
// window (see the duplicate-rule contention note in the detectors).
func (s *RedisStore) Push(ctx context.Context, key string, event models.PaymentEvent, ttl time.Duration) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Range(ctx context.Context, key string) ([]models.PaymentEvent, error) {
	raw, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	events := make([]models.PaymentEvent, 0, len(raw))
	for _, item := range raw {
		var event models.PaymentEvent
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			logrus.Warnf("Skipping undecodable window entry on %s: %s", key, err.Error())
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
