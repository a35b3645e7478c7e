package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Archan-07/E-Commerce-Backend/utils"
)

// Counter is a fixed-window attempt counter keyed by client.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter counts attempts with INCR and lets the key expire after the
// window, so the count resets on its own.
type RedisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		r.rdb.Expire(ctx, key, window)
	}
	return count, nil
}

// LoginRateLimiter caps login attempts per client IP, independent of
// credential correctness. If the counter backend errors the request passes
// through rather than blocking all logins.
func LoginRateLimiter(counter Counter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "login:" + c.ClientIP()
		count, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			c.Next()
			return
		}
		if count > int64(limit) {
			utils.Fail(c, http.StatusTooManyRequests,
				"Too many login attempts from this IP. Please try again later.")
			return
		}
		c.Next()
	}
}
