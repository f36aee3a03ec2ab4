package service

import (
	"context"
	"testing"

	"lariat/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBloomService(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	assert.NotNil(t, svc)
	assert.Equal(t, int64(1000000), svc.capacity)
	assert.Equal(t, 0.01, svc.errorRate)
}

func TestBloomService_AddAndExists(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	// miniredis carries no RedisBloom module, so Add/Exists take the
	// plain-key fallback path.
	err := svc.Add(context.Background(), "abc123")
	require.NoError(t, err)

	exists, err := svc.Exists(context.Background(), "abc123")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.Exists(context.Background(), "zzzzzz")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestBloomService_AddMultiple(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	codes := []string{"aaaaaa", "bbbbbb", "cccccc"}
	for _, code := range codes {
		require.NoError(t, svc.Add(context.Background(), code))
	}
	for _, code := range codes {
		exists, err := svc.Exists(context.Background(), code)
		assert.NoError(t, err)
		assert.True(t, exists)
	}
}

func TestBloomService_Concurrent(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(i int) {
			svc.Add(context.Background(), string(rune('a'+i)))
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestBloomService_fallbackKey(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	assert.Equal(t, "lariat:codes:bloom:abc123", svc.fallbackKey("abc123"))
}

func TestBloomService_ContextCancellation(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	svc := NewBloomService(client, &config.BloomConfig{
		Capacity:  1000000,
		ErrorRate: 0.01,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Add(ctx, "abc123")
	assert.Error(t, err)

	_, err = svc.Exists(ctx, "abc123")
	assert.Error(t, err)
}
