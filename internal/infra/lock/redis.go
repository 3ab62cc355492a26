package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
)

const retryEvery = 25 * time.Millisecond

// releaseScript deletes the key only while it still holds our token, so an
// expired holder never frees a lock that someone else has since taken.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisLocker is a SlotLocker shared by every instance pointing at the same Redis.
type RedisLocker struct {
	client *redis.Client
	wait   time.Duration
	log    *zap.Logger
}

func NewRedisLocker(client *redis.Client, wait time.Duration, log *zap.Logger) *RedisLocker {
	return &RedisLocker{client: client, wait: wait, log: log}
}

// Connect parses url and checks the server answers before returning a client.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	ticker := time.NewTicker(retryEvery)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: lock %s: %v", domain.ErrTransient, key, err)
		}
		if ok {
			return func() { l.unlock(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: lock %s: %v", domain.ErrTransient, key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) unlock(key, token string) {
	// the caller's context may already be gone; release on a short one of our own
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		l.log.Warn("slot lock release failed", zap.String("key", key), zap.Error(err))
	}
}

// Close releases the underlying client's connections.
func (l *RedisLocker) Close() error {
	return l.client.Close()
}

var _ domain.SlotLocker = (*RedisLocker)(nil)
