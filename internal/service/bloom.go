package service

import (
	"context"
	"time"

	"lariat/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// BloomService keeps a Redis-backed Bloom Filter of allocated short codes.
// The allocator consults it before hitting MySQL; a negative answer is
// authoritative, a positive one may be a false positive.
type BloomService struct {
	client    RedisClient
	capacity  int64
	errorRate float64
}

// RedisClient defines the interface for Redis client operations
type RedisClient interface {
	Do(ctx context.Context, args ...interface{}) *redis.Cmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

const bloomFilterKey = "lariat:codes:bloom"

// NewBloomService creates a new Bloom Service
func NewBloomService(client RedisClient, cfg *config.BloomConfig) *BloomService {
	bs := &BloomService{
		client:    client,
		capacity:  cfg.Capacity,
		errorRate: cfg.ErrorRate,
	}

	bs.initBloomFilter(context.Background())

	return bs
}

// initBloomFilter reserves the filter if the RedisBloom module is present
func (bs *BloomService) initBloomFilter(ctx context.Context) {
	exists, err := bs.client.Exists(ctx, bloomFilterKey).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to check Bloom Filter existence")
		return
	}
	if exists > 0 {
		return
	}

	cmd := bs.client.Do(ctx, "BF.RESERVE", bloomFilterKey, bs.errorRate, bs.capacity)
	if err := cmd.Err(); err != nil {
		log.Warn().Err(err).Msg("BF.RESERVE not available, falling back to plain keys")
		return
	}
	log.Info().Msgf("Bloom Filter created with capacity=%d, error_rate=%f", bs.capacity, bs.errorRate)
}

// Add marks a short code as allocated
func (bs *BloomService) Add(ctx context.Context, shortCode string) error {
	cmd := bs.client.Do(ctx, "BF.ADD", bloomFilterKey, shortCode)
	if err := cmd.Err(); err != nil {
		// RedisBloom not loaded; a plain key carries the same signal.
		return bs.client.Set(ctx, bs.fallbackKey(shortCode), 1, 0).Err()
	}
	return nil
}

// Exists reports whether a short code might already be allocated
func (bs *BloomService) Exists(ctx context.Context, shortCode string) (bool, error) {
	cmd := bs.client.Do(ctx, "BF.EXISTS", bloomFilterKey, shortCode)
	result, err := cmd.Int()
	if err == nil {
		return result == 1, nil
	}

	_, err = bs.client.Get(ctx, bs.fallbackKey(shortCode)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (bs *BloomService) fallbackKey(shortCode string) string {
	return bloomFilterKey + ":" + shortCode
}
