package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"solarsite/internal/cache"
)

// RateLimiter provides per-IP rate limiting using a token bucket algorithm.
// When a shared cache backend is configured the limiter switches to a
// per-second fixed window there, so counters survive across instances.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	rate    float64 // tokens per second
	burst   int     // max tokens

	store cache.Client
}

type tokenBucket struct {
	tokens   float64
	lastTime time.Time
}

// NewRateLimiter creates a rate limiter allowing rate requests/sec with the
// given burst size per IP. store may be nil for in-memory operation.
func NewRateLimiter(rate float64, burst int, store cache.Client) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		rate:    rate,
		burst:   burst,
		store:   store,
	}
	// Periodically evict stale entries to prevent memory growth.
	go rl.cleanup()
	return rl
}

// Allow returns true if the request from ip is within the rate limit.
func (rl *RateLimiter) Allow(ctx context.Context, ip string) bool {
	if rl.store != nil {
		return rl.allowShared(ctx, ip)
	}
	return rl.allowLocal(ip)
}

func (rl *RateLimiter) allowShared(ctx context.Context, ip string) bool {
	window := time.Now().Unix()
	key := "ratelimit:" + ip + ":" + strconv.FormatInt(window, 10)

	n, err := rl.store.IncrWithTTL(ctx, key, 2*time.Second)
	if err != nil {
		// A broken cache backend must not take the API down.
		log.Printf("ratelimit: cache backend unavailable, falling back to local buckets: %v", err)
		return rl.allowLocal(ip)
	}
	return n <= int64(rl.rate)+int64(rl.burst)
}

func (rl *RateLimiter) allowLocal(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[ip]
	if !ok {
		b = &tokenBucket{tokens: float64(rl.burst), lastTime: now}
		rl.buckets[ip] = b
	}

	elapsed := now.Sub(b.lastTime).Seconds()
	b.tokens += elapsed * rl.rate
	if b.tokens > float64(rl.burst) {
		b.tokens = float64(rl.burst)
	}
	b.lastTime = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-10 * time.Minute)
		for ip, b := range rl.buckets {
			if b.lastTime.Before(cutoff) {
				delete(rl.buckets, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit rejects requests exceeding the configured rate with
// 429 Too Many Requests.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"ok":    false,
				"error": "Too many requests",
			})
			return
		}
		c.Next()
	}
}
