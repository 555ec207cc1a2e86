package api

import (
	"context"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gouravlamba/eminent-news/internal/logx"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	limiterBurst          = 5
	limiterIdleTTL        = 5 * time.Minute
	limiterSweepPeriod    = time.Minute
	defaultLoginPerMinute = 10
)

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	visitors sync.Map
	rps      rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func NewIPRateLimiter(perMinute int) *IPRateLimiter {
	if perMinute <= 0 {
		perMinute = defaultLoginPerMinute
	}
	return &IPRateLimiter{
		rps:   rate.Limit(float64(perMinute) / 60.0),
		burst: limiterBurst,
	}
}

func (l *IPRateLimiter) getLimiter(ip string, now time.Time) *rate.Limiter {
	if v, ok := l.visitors.Load(ip); ok {
		vi := v.(*visitor)
		vi.lastSeen.Store(now.UnixNano())
		return vi.limiter
	}

	vi := &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
	vi.lastSeen.Store(now.UnixNano())
	actual, _ := l.visitors.LoadOrStore(ip, vi)
	return actual.(*visitor).limiter
}

func (l *IPRateLimiter) Allow(ip string) bool {
	return l.getLimiter(ip, time.Now()).Allow()
}

// Cleanup forgets idle visitors until ctx is done. It is meant to run as a
// supervised goroutine.
func (l *IPRateLimiter) Cleanup(ctx context.Context) error {
	ticker := time.NewTicker(limiterSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			l.sweep(now)
		}
	}
}

func (l *IPRateLimiter) sweep(now time.Time) int {
	cutoff := now.Add(-limiterIdleTTL).UnixNano()
	removed := 0
	l.visitors.Range(func(k, v any) bool {
		if v.(*visitor).lastSeen.Load() < cutoff {
			l.visitors.Delete(k)
			removed++
		}
		return true
	})
	return removed
}

func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		ip := clientIP(r)
		if !l.Allow(ip) {
			logx.FromContext(r.Context()).Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", r.URL.Path))
			return ErrTooManyRequests
		}
		next.ServeHTTP(w, r)
		return nil
	})
}

// clientIP relies on chi's RealIP middleware having rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	ip := r.RemoteAddr
	if ip == "" {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(ip)
	if err == nil {
		return host
	}
	return ip
}
