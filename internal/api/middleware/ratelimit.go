package middleware

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter implements a simple in-memory fixed-window rate limiter keyed
// by client IP. Enough for a single-instance personal site; a distributed
// deployment would want this backed by shared state instead.
type RateLimiter struct {
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	mu       sync.Mutex
}

type visitor struct {
	windowEnd time.Time
	count     int
}

// NewRateLimiter creates a rate limiter allowing limit requests per window
// per client and starts its cleanup goroutine.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.evictExpired()

	return rl
}

// Middleware rejects clients over their limit with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()

	v, ok := rl.visitors[ip]
	if !ok || now.After(v.windowEnd) {
		rl.visitors[ip] = &visitor{count: 1, windowEnd: now.Add(rl.window)}
		return true
	}

	if v.count < rl.limit {
		v.count++
		return true
	}
	return false
}

// evictExpired drops stale visitor entries once per window.
func (rl *RateLimiter) evictExpired() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for ip, v := range rl.visitors {
			if now.After(v.windowEnd) {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP extracts the client address, honoring proxy headers when present.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
