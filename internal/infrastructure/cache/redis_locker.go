package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/backoffice/internal/application/crud"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultLockPrefix = "backoffice:lock:"
	lockRetryInterval = 25 * time.Millisecond
)

// releaseScript deletes the lock only while it still holds our token, so an
// expired lock taken over by another instance is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker serializes callers across instances sharing one Redis
type RedisLocker struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	wait      time.Duration
	logger    *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisLocker creates a locker on an existing client. ttl is the lock
// expiry, wait bounds how long Lock retries a held key.
func NewRedisLocker(client *redis.Client, ttl, wait time.Duration, logger *zap.Logger) *RedisLocker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisLocker{
		client:    client,
		keyPrefix: defaultLockPrefix,
		ttl:       ttl,
		wait:      wait,
		logger:    logger,
	}
}

// Lock acquires key with SET NX, retrying until the wait elapses
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := l.keyPrefix + key
	token := uuid.NewString()

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %q: %w", key, err)
		}
		if ok {
			break
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to acquire lock %q: %w", key, ctx.Err())
		}
	}

	return func() {
		// release on a fresh context; the caller's may already be done
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
			l.logger.Warn("Failed to release lock",
				zap.String("key", redisKey),
				zap.Error(err),
			)
		}
	}, nil
}

// Close closes the Redis client
func (l *RedisLocker) Close() error {
	return l.client.Close()
}

var _ crud.Locker = (*RedisLocker)(nil)
