package snapshots

import (
	"context"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/sim-catalog/internal/errors"
	redisclient "github.com/KirkDiggler/sim-catalog/internal/redis"
	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
)

const (
	defaultCacheKeyPrefix = "sim-catalog:snapshot"

	cacheFieldData     = "data"
	cacheFieldEncoding = "encoding"
	cacheFieldSource   = "source"
)

// RedisCacheConfig configures the read-through redis cache in front of
// another source
type RedisCacheConfig struct {
	Client   redisclient.Client
	Upstream Repository
	// KeyPrefix defaults to "sim-catalog:snapshot"; the preferred encoding is
	// appended
	KeyPrefix string
	// TTL of cached payloads; 0 keeps them until evicted
	TTL time.Duration
}

// Validate validates the RedisCacheConfig
func (cfg *RedisCacheConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Upstream == nil {
		return errors.InvalidArgument("upstream cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisCache struct {
	client    redisclient.Client
	upstream  Repository
	keyPrefix string
	ttl       time.Duration
}

// NewRedisCache wraps upstream with a redis read-through cache. Cache read and
// write failures are logged and fall through to upstream.
func NewRedisCache(cfg *RedisCacheConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultCacheKeyPrefix
	}

	return &redisCache{
		client:    cfg.Client,
		upstream:  cfg.Upstream,
		keyPrefix: prefix,
		ttl:       cfg.TTL,
	}, nil
}

func (r *redisCache) Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error) {
	key := r.key(preferredEncoding(input))

	if out, ok := r.read(ctx, key); ok {
		return out, nil
	}

	out, err := r.upstream.Fetch(ctx, input)
	if err != nil {
		return nil, err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			cacheFieldData, out.Data,
			cacheFieldEncoding, string(out.Encoding),
			cacheFieldSource, out.Source,
		)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		slog.Warn("Failed to cache snapshot",
			"key", key,
			"error", err)
	}

	return out, nil
}

func (r *redisCache) read(ctx context.Context, key string) (*FetchOutput, bool) {
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Failed to read snapshot cache",
				"key", key,
				"error", err)
		}
		return nil, false
	}

	data, ok := fields[cacheFieldData]
	if !ok {
		return nil, false
	}
	enc := snapshot.Encoding(fields[cacheFieldEncoding])
	if !enc.Valid() {
		slog.Warn("Ignoring cached snapshot with unknown encoding",
			"key", key,
			"encoding", enc)
		return nil, false
	}

	return &FetchOutput{
		Data:     []byte(data),
		Encoding: enc,
		Source:   "redis " + key + " (" + fields[cacheFieldSource] + ")",
		Cached:   true,
	}, true
}

func (r *redisCache) key(enc snapshot.Encoding) string {
	return r.keyPrefix + ":" + string(enc)
}

// CacheKey returns the redis key a snapshot in the given encoding is cached
// under with the default prefix. Exposed for testing purposes.
func CacheKey(enc snapshot.Encoding) string {
	return defaultCacheKeyPrefix + ":" + string(enc)
}
