/*
ratelimit.go - Per-IP rate limiting middleware

PURPOSE:
  Shields the calculation endpoint from request floods with one token
  bucket per client IP (golang.org/x/time/rate). Stale buckets are swept
  periodically so the map does not grow without bound.

  The calculators themselves are pure and cheap; the limiter exists so a
  single client cannot monopolize the request-logging and JSON paths.

SEE ALSO:
  - server.go: Installs this on the /api route group
*/
package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	sweepInterval = 5 * time.Minute
	bucketMaxIdle = 10 * time.Minute
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter stores per-IP limiters with periodic cleanup.
type ipLimiter struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket
	rate    rate.Limit
	burst   int
}

func newIPLimiter(r rate.Limit, burst int) *ipLimiter {
	l := &ipLimiter{
		buckets: make(map[string]*clientBucket),
		rate:    r,
		burst:   burst,
	}
	go l.sweep()
	return l
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = time.Now()
	return b.limiter
}

func (l *ipLimiter) sweep() {
	for {
		time.Sleep(sweepInterval)
		l.mu.Lock()
		for ip, b := range l.buckets {
			if time.Since(b.lastSeen) > bucketMaxIdle {
				delete(l.buckets, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit returns middleware allowing r requests per second per client IP
// with the given burst.
func RateLimit(r rate.Limit, burst int) func(http.Handler) http.Handler {
	limiters := newIPLimiter(r, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !limiters.get(clientIP(req)).Allow() {
				w.Header().Set("Retry-After", "60")
				writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// clientIP returns the original client address, honoring X-Forwarded-For
// when set by a reverse proxy.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found {
			return strings.TrimSpace(first)
		}
		return xff
	}
	return r.RemoteAddr
}
