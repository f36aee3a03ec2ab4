package repository

import (
	"context"
	"encoding/json"
	"time"

	"lariat/internal/config"
	"lariat/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes per target kind
	LinkCacheKeyPrefix = "ln:"
	QRCacheKeyPrefix   = "qr:"
	// TargetCacheTTL bounds staleness of the resolve cache
	TargetCacheTTL = 24 * time.Hour
)

// RedisRepository caches resolved targets for the visitor redirect path
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveTargetCache caches a resolved target under its lookup key
func (r *RedisRepository) SaveTargetCache(ctx context.Context, kind model.TargetKind, key string, target *model.CachedTarget, ttl time.Duration) error {
	payload, err := json.Marshal(target)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.cacheKey(kind, key), payload, ttl).Err()
}

// GetTargetCache retrieves a cached resolved target
func (r *RedisRepository) GetTargetCache(ctx context.Context, kind model.TargetKind, key string) (*model.CachedTarget, error) {
	payload, err := r.client.Get(ctx, r.cacheKey(kind, key)).Bytes()
	if err != nil {
		return nil, err
	}

	var target model.CachedTarget
	if err := json.Unmarshal(payload, &target); err != nil {
		return nil, err
	}
	return &target, nil
}

// DeleteTargetCache drops a cached target. Called on update and delete so the
// redirect path never serves a stale destination past the write.
func (r *RedisRepository) DeleteTargetCache(ctx context.Context, kind model.TargetKind, key string) error {
	return r.client.Del(ctx, r.cacheKey(kind, key)).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) cacheKey(kind model.TargetKind, key string) string {
	if kind == model.TargetQRCode {
		return QRCacheKeyPrefix + key
	}
	return LinkCacheKeyPrefix + key
}
