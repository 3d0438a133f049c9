package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-landing-backend/internal/delivery/http/response"
	"go-landing-backend/internal/domain"
	"go-landing-backend/pkg/logger"
	"go-landing-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
	// Store used when Redis is not configured or fails open; nil means a private store
	Store *MemoryStore
	// Client returns the Redis client; nil means redis.Client
	Client func() *goredis.Client
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// MemoryStore is the in-process fallback counter store.
//
// It is used when Redis is not configured, or when Redis fails and the
// limiter fails open. Counts live in this process only, so with several
// replicas each one enforces the limit on its own. Expired entries stay
// until Sweep removes them; StartCleanup runs Sweep on a ticker.
type MemoryStore struct {
	entries sync.Map
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// Hit increments key and returns the count in the current window
func (s *MemoryStore) Hit(key string, window time.Duration, now time.Time) (int, time.Time) {
	entryI, _ := s.entries.LoadOrStore(key, &rateLimitEntry{
		resetAt: now.Add(window),
	})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// Reset if window expired
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++

	return entry.count, entry.resetAt
}

// Sweep deletes expired entries and returns how many were removed
func (s *MemoryStore) Sweep(now time.Time) int {
	removed := 0
	s.entries.Range(func(key, value any) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			s.entries.Delete(key)
			removed++
		}
		entry.mu.Unlock()
		return true
	})
	return removed
}

// StartCleanup sweeps the store until ctx is done
func (s *MemoryStore) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := s.Sweep(now); n > 0 {
					logger.Log.Debug("rate limit entries swept", "count", n)
				}
			}
		}
	}()
}

func clientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// GlobalRateLimitConfig applies to every route
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:ip:",
		FailClosed: false, // Fail open by default for availability
		KeyFunc:    clientIPKey,
	}
}

// SubmitRateLimitConfig is the stricter budget for inquiry submissions
func SubmitRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:submit:",
		FailClosed: false,
		KeyFunc:    clientIPKey,
	}
}

// RateLimitMiddleware creates a fixed-window rate limiting middleware.
//
// How it works:
//  1. The bucket key is KeyPrefix plus KeyFunc (the client IP by default)
//  2. With Redis configured, the Lua script increments the key atomically and
//     sets its TTL on the first hit of the window
//  3. Without Redis, or when Redis errors and FailClosed is false, the
//     MemoryStore counts instead
//  4. Over the limit the request is rejected with 429 and Retry-After
//
// SECURITY: FailClosed turns a Redis outage into 503 instead of unlimited
// traffic. Both budgets built here fail open.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = clientIPKey
	}
	if config.Store == nil {
		config.Store = NewMemoryStore()
	}
	if config.Client == nil {
		config.Client = redis.Client
	}

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time
		var err error

		// Try Redis first, so replicas share one counter
		if redisClient := config.Client(); redisClient != nil {
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), redisClient, fullKey, config)
			if err != nil {
				logRateLimitError(c, err)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = config.Store.Hit(fullKey, config.Window, now)
			}
		} else {
			count, resetAt = config.Store.Hit(fullKey, config.Window, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(resetAt.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logRateLimitTriggered(c, config.KeyPrefix)

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

func logRateLimitTriggered(c *gin.Context, bucket string) {
	logger.Log.Warn("rate limit triggered",
		"bucket", bucket,
		"ip", c.ClientIP(),
		"path", c.FullPath(),
		"user_agent", c.GetHeader("User-Agent"),
		"request_id", c.GetString(string(domain.KeyRequestID)),
	)
}

func logRateLimitError(c *gin.Context, err error) {
	logger.Log.Error("rate limit store error",
		"ip", c.ClientIP(),
		"error", err,
	)
}
