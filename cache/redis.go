package cache

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/Pen-Clock/BodiaStore/metrics"
)

const redisKeyPrefix = "bodiastore:query:"
const redisTagPrefix = "bodiastore:tag:"

// Redis backs the tagged cache with a Redis server so multiple instances
// share one read cache. Each value lives under its key; each tag keeps a
// SET of the keys carrying it. Redis being unreachable degrades to a miss:
// reads always fall back to the compute function.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &Redis{client: client}
}

func (r *Redis) GetOrCompute(ctx context.Context, key string, tags []string, dest interface{}, compute ComputeFunc) error {
	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == nil {
		metrics.CacheHits.WithLabelValues("redis").Inc()
		return json.Unmarshal(data, dest)
	}
	if err != redis.Nil {
		log.Printf("cache: redis get failed, computing: %v", err)
	}
	metrics.CacheMisses.WithLabelValues("redis").Inc()

	value, err := compute()
	if err != nil {
		return err
	}
	data, err = json.Marshal(value)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+key, data, 0)
	for _, tag := range tags {
		pipe.SAdd(ctx, redisTagPrefix+tag, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("cache: redis store failed: %v", err)
	}

	return json.Unmarshal(data, dest)
}

func (r *Redis) Invalidate(ctx context.Context, tags ...string) {
	for _, tag := range tags {
		keys, err := r.client.SMembers(ctx, redisTagPrefix+tag).Result()
		if err != nil {
			log.Printf("cache: redis invalidate %q failed: %v", tag, err)
			continue
		}
		prefixed := make([]string, 0, len(keys)+1)
		for _, key := range keys {
			prefixed = append(prefixed, redisKeyPrefix+key)
		}
		prefixed = append(prefixed, redisTagPrefix+tag)
		if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
			log.Printf("cache: redis invalidate %q failed: %v", tag, err)
		}
	}
}
