package middleware

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ============ Keyed Limiter ============

// KeyedLimiter applies a token bucket per key and evicts idle buckets
type KeyedLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu    sync.Mutex
	byKey map[string]*bucket
	hits  uint64
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// evictEvery is the number of Allow calls between idle sweeps
const evictEvery = 512

// NewKeyedLimiter creates a limiter. It returns nil for a non-positive rate
// or burst; a nil limiter allows everything.
func NewKeyedLimiter(rps float64, burst int, idleTTL time.Duration) *KeyedLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &KeyedLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		byKey:   make(map[string]*bucket),
	}
}

// Allow consumes one token for key at now. The returned duration is the wait
// until a token is available when the call is refused.
func (l *KeyedLimiter) Allow(key string, now time.Time) (bool, time.Duration) {
	if l == nil {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byKey[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byKey[key] = b
	}
	b.lastSeen = now

	l.hits++
	if l.hits%evictEvery == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.byKey {
			if v.lastSeen.Before(cutoff) {
				delete(l.byKey, k)
			}
		}
	}

	if b.limiter.AllowN(now, 1) {
		return true, 0
	}
	r := b.limiter.ReserveN(now, 1)
	wait := r.DelayFrom(now)
	r.CancelAt(now)
	return false, wait
}

// Len returns the number of tracked keys
func (l *KeyedLimiter) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byKey)
}

// Limit returns the burst size, reported in X-RateLimit-Limit
func (l *KeyedLimiter) Limit() int {
	if l == nil {
		return 0
	}
	return l.burst
}

// ============ HTTP Middleware ============

// RateLimitConfig bounds requests per client IP
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	// POST requests also pass the tx limiter
	TxPerSecond float64
	TxBurst     int
	IdleTTL     time.Duration
}

// HitRecorder counts refused requests by limit type
type HitRecorder interface {
	RecordRateLimitHit(limitType string)
}

// RateLimiter holds the general and tx limiters
type RateLimiter struct {
	ip       *KeyedLimiter
	tx       *KeyedLimiter
	recorder HitRecorder
	now      func() time.Time
}

// NewRateLimiter creates the limiters from config. recorder may be nil.
func NewRateLimiter(config RateLimitConfig, recorder HitRecorder) *RateLimiter {
	return &RateLimiter{
		ip:       NewKeyedLimiter(config.RequestsPerSecond, config.Burst, config.IdleTTL),
		tx:       NewKeyedLimiter(config.TxPerSecond, config.TxBurst, config.IdleTTL),
		recorder: recorder,
		now:      time.Now,
	}
}

// Middleware refuses requests over the limit with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIP(r)
		now := rl.now()

		if ok, wait := rl.ip.Allow(ip, now); !ok {
			rl.refuse(w, "ip", rl.ip.Limit(), wait)
			return
		}
		if r.Method == http.MethodPost {
			if ok, wait := rl.tx.Allow(ip, now); !ok {
				rl.refuse(w, "tx", rl.tx.Limit(), wait)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) refuse(w http.ResponseWriter, limitType string, limit int, wait time.Duration) {
	if rl.recorder != nil {
		rl.recorder.RecordRateLimitHit(limitType)
	}

	retryAfter := int(math.Ceil(wait.Seconds()))
	if retryAfter < 1 {
		retryAfter = 1
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
	w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error":       "rate_limit_exceeded",
		"message":     "Too many requests, please slow down",
		"limit_type":  limitType,
		"retry_after": retryAfter,
	})
}

// ClientIP extracts the client IP from the request
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	if i := strings.LastIndexByte(ip, ':'); i >= 0 {
		return ip[:i]
	}
	return ip
}
