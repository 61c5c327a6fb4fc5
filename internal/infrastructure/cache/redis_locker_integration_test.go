//go:build integration

package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(connStr)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisLocker_Integration(t *testing.T) {
	client := newRedisClient(t)
	ctx := context.Background()

	t.Run("serializes holders across lockers", func(t *testing.T) {
		a := NewRedisLocker(client, 5*time.Second, 5*time.Second, zaptest.NewLogger(t))
		b := NewRedisLocker(client, 5*time.Second, 5*time.Second, zaptest.NewLogger(t))

		var mu sync.Mutex
		var order []string
		unlock, err := a.Lock(ctx, "sequence:vendor")
		require.NoError(t, err)

		done := make(chan struct{})
		go func() {
			defer close(done)
			unlockB, err := b.Lock(ctx, "sequence:vendor")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			order = append(order, "b")
			mu.Unlock()
			unlockB()
		}()

		time.Sleep(100 * time.Millisecond)
		mu.Lock()
		order = append(order, "a")
		mu.Unlock()
		unlock()
		<-done

		assert.Equal(t, []string{"a", "b"}, order)
	})

	t.Run("gives up after the wait", func(t *testing.T) {
		locker := NewRedisLocker(client, 5*time.Second, 100*time.Millisecond, zaptest.NewLogger(t))

		unlock, err := locker.Lock(ctx, "k")
		require.NoError(t, err)
		defer unlock()

		_, err = locker.Lock(ctx, "k")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("expired lock is not released by its old holder", func(t *testing.T) {
		locker := NewRedisLocker(client, 50*time.Millisecond, time.Second, zaptest.NewLogger(t))

		stale, err := locker.Lock(ctx, "ttl")
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)

		fresh, err := locker.Lock(ctx, "ttl")
		require.NoError(t, err)
		stale()

		exists, err := client.Exists(ctx, defaultLockPrefix+"ttl").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists)
		fresh()
	})
}
