package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/FichasBot_Go/internal/logger"
)

// ClientTracker counts requests and failed logins per client IP over a
// fixed window.
type ClientTracker struct {
	mu          sync.Mutex
	limit       int
	authWarn    int
	window      time.Duration
	windowStart time.Time
	requests    map[string]int
	failedAuth  map[string]int
	now         func() time.Time
}

// NewClientTracker creates a tracker allowing limit requests per window
func NewClientTracker(limit int, window time.Duration) *ClientTracker {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &ClientTracker{
		limit:       limit,
		authWarn:    DefaultFailedAuthWarn,
		window:      window,
		windowStart: time.Now(),
		requests:    make(map[string]int),
		failedAuth:  make(map[string]int),
		now:         time.Now,
	}
}

// Allow records a request and reports whether ip is still under the limit
func (t *ClientTracker) Allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollWindow()
	t.requests[ip]++
	n := t.requests[ip]
	if n <= t.limit {
		return true
	}
	if (n-t.limit)%100 == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", n, "window", t.window)
	}
	return false
}

// FailedAuth records a rejected API key
func (t *ClientTracker) FailedAuth(ip string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rollWindow()
	t.failedAuth[ip]++
	if t.failedAuth[ip] >= t.authWarn {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", t.failedAuth[ip])
	}
}

// caller holds mu
func (t *ClientTracker) rollWindow() {
	if now := t.now(); now.Sub(t.windowStart) > t.window {
		clear(t.requests)
		clear(t.failedAuth)
		t.windowStart = now
	}
}

// AuthMiddleware requires X-API-Key on everything except PublicPaths
func AuthMiddleware(apiKey string, trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				tracker.FailedAuth(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", ip)
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects clients over the tracker's limit
func RateLimitMiddleware(trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tracker.Allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware sets the standard hardening headers. API
// responses carry balances, so nothing is cached.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			h.Set(HeaderCacheControl, HeaderValueNoStore)
			next.ServeHTTP(w, r)
		})
	}
}

func isPublic(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// clientIP honours X-Forwarded-For only from a trusted proxy, taking the
// rightmost hop
func clientIP(r *http.Request, trustedProxies []string) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, remote) {
		return remote
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}
