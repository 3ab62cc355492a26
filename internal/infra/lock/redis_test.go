package lock

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
)

// newRedisLocker needs a reachable server in REDIS_URL, e.g.
// REDIS_URL=redis://localhost:6379/15 go test ./internal/infra/lock/
func newRedisLocker(t *testing.T, wait time.Duration) (*RedisLocker, string) {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	client, err := Connect(context.Background(), url)
	require.NoError(t, err)

	l := NewRedisLocker(client, wait, zap.NewNop())
	key := "test:slot:" + uuid.NewString()
	t.Cleanup(func() {
		client.Del(context.Background(), key)
		l.Close()
	})
	return l, key
}

func TestRedisLocker_MutualExclusion(t *testing.T) {
	l, key := newRedisLocker(t, 5*time.Second)

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), key, 5*time.Second)
			if !assert.NoError(t, err) {
				return
			}

			n := inside.Add(1)
			for {
				m := maxInside.Load()
				if n <= m || maxInside.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
}

func TestRedisLocker_TimesOutAsTransient(t *testing.T) {
	l, key := newRedisLocker(t, 100*time.Millisecond)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, key, 5*time.Second)
	require.NoError(t, err)
	defer unlock()

	_, err = l.Lock(ctx, key, 5*time.Second)
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestRedisLocker_StaleReleaseKeepsNewHolder(t *testing.T) {
	l, key := newRedisLocker(t, 100*time.Millisecond)
	ctx := context.Background()

	staleUnlock, err := l.Lock(ctx, key, 50*time.Millisecond)
	require.NoError(t, err)

	// first holder's TTL runs out and someone else takes the slot
	time.Sleep(120 * time.Millisecond)
	unlock, err := l.Lock(ctx, key, 5*time.Second)
	require.NoError(t, err)
	defer unlock()

	staleUnlock()

	n, err := l.client.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = l.Lock(ctx, key, 5*time.Second)
	assert.ErrorIs(t, err, domain.ErrTransient)
}
