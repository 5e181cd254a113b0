package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "paycheck:ratelimit:"

// fixedWindowScript counts a request and arms the window expiry in one atomic
// step. A key that somehow lost its TTL gets it back on the next request.
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RedisRateLimiter is a fixed-window limiter shared by every instance that
// points at the same Redis. It fails open when Redis cannot be reached.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *zap.Logger
}

func NewRedisRateLimiter(addr string, limit int, window time.Duration, logger *zap.Logger) *RedisRateLimiter {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
		ReadTimeout: time.Second,
	})
	return &RedisRateLimiter{
		client: rdb,
		limit:  int64(limit),
		window: window,
		logger: logger,
	}
}

func (r *RedisRateLimiter) Allow(ctx context.Context, key string) bool {
	count, err := fixedWindowScript.Run(ctx, r.client, []string{redisKeyPrefix + key}, r.window.Milliseconds()).Int64()
	if err != nil {
		r.logger.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
		return true
	}

	return count <= r.limit
}

// Close releases the Redis connection pool.
func (r *RedisRateLimiter) Close() error {
	return r.client.Close()
}
