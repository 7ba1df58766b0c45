package infrastructure

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore keeps sessions in Redis so they survive restarts and
// can be shared by multiple workers. The TTL doubles as session expiry.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(redisURL string, ttl time.Duration) (*RedisSessionStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisSessionStore{client: client, ttl: ttl}, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, sessionID string, userID uint) error {
	return s.client.Set(ctx, "session:"+sessionID, strconv.FormatUint(uint64(userID), 10), s.ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (uint, bool, error) {
	value, err := s.client.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(userID), true, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, "session:"+sessionID).Err()
}

func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
