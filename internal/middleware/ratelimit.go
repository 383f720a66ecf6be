package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// InMemoryRateLimiter limits requests per key (e.g. IP) over a sliding window.
type InMemoryRateLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	limit   int
	window  time.Duration
}

func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	l := &InMemoryRateLimiter{
		history: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}
	go l.cleanup()
	return l
}

func (l *InMemoryRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	recent := l.prune(l.history[key], now.Add(-l.window))
	if len(recent) >= l.limit {
		l.history[key] = recent
		return false
	}
	l.history[key] = append(recent, now)
	return true
}

func (l *InMemoryRateLimiter) prune(times []time.Time, cutoff time.Time) []time.Time {
	var recent []time.Time
	for _, t := range times {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	return recent
}

func (l *InMemoryRateLimiter) cleanup() {
	tick := time.NewTicker(time.Minute)
	for range tick.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.window)
		for k, times := range l.history {
			recent := l.prune(times, cutoff)
			if len(recent) == 0 {
				delete(l.history, k)
			} else {
				l.history[k] = recent
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit returns a middleware that limits by client IP.
func RateLimit(limiter *InMemoryRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
