// Package repository holds the persistence adapters behind the service
// layer. The marketplace keeps its domain state in memory; the only
// durable store is the display-preference cache.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/educonnect/educonnect-api/pkg/errors"
)

// PreferenceRepository abstracts durable storage for small per-session
// payloads. Get returns ErrCacheMiss when the key is absent.
type PreferenceRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// RedisPreferenceRepository stores preferences in Redis.
type RedisPreferenceRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisPreferenceRepository constructs a Redis-backed repository.
func NewRedisPreferenceRepository(client *redis.Client, logger *zap.Logger) *RedisPreferenceRepository {
	return &RedisPreferenceRepository{client: client, logger: logger}
}

// Get retrieves and unmarshals the stored value into dest.
func (r *RedisPreferenceRepository) Get(ctx context.Context, key string, dest interface{}) error {
	if r.client == nil {
		return appErrors.ErrCacheMiss
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return appErrors.ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal value for %s: %w", key, err)
	}

	return nil
}

// Set marshals the provided value and stores it with the given TTL. A
// zero TTL keeps the key indefinitely.
func (r *RedisPreferenceRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

// MemoryPreferenceRepository is the fallback when Redis is not
// configured. Values survive for the process lifetime only.
type MemoryPreferenceRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryPreferenceRepository builds an empty in-memory repository.
func NewMemoryPreferenceRepository() *MemoryPreferenceRepository {
	return &MemoryPreferenceRepository{values: make(map[string][]byte)}
}

// Get implements PreferenceRepository.
func (r *MemoryPreferenceRepository) Get(ctx context.Context, key string, dest interface{}) error {
	r.mu.RLock()
	raw, ok := r.values[key]
	r.mu.RUnlock()
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

// Set implements PreferenceRepository. TTLs are ignored in memory.
func (r *MemoryPreferenceRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.values[key] = payload
	r.mu.Unlock()
	return nil
}
