package cache

import (
	"fmt"

	"github.com/erp/backoffice/internal/application/crud"
	"github.com/erp/backoffice/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewSequenceLocker builds the locker guarding code sequences from configuration.
// The returned close function releases the Redis client when one was opened.
func NewSequenceLocker(seq config.SequenceConfig, redisCfg config.RedisConfig, logger *zap.Logger) (crud.Locker, func() error, error) {
	switch seq.LockBackend {
	case config.LockBackendRedis:
		client, err := NewRedisClient(RedisConfig{
			Addr:     redisCfg.Addr(),
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Redis sequence locker: %w", err)
		}
		logger.Info("Using Redis sequence locker", zap.String("addr", redisCfg.Addr()))
		locker := NewRedisLocker(client, seq.LockTTL, seq.LockWait, logger)
		return locker, locker.Close, nil
	case config.LockBackendLocal, "":
		logger.Info("Using in-process sequence locker")
		return NewLocalLocker(seq.LockWait), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown sequence lock backend %q", seq.LockBackend)
	}
}
