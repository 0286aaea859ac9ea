package rest

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
)

type ctxKey string

const usernameKey ctxKey = "username"

type tokenParser interface {
	ParseToken(token string) (string, error)
}

type requestMetrics interface {
	RequestStarted()
	RequestFinished(method, route string, status int, duration time.Duration)
}

func withUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// usernameFrom - the authenticated user, set by requireAuth.
func usernameFrom(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// requireAuth - accepts the token either raw or as "Bearer <token>" in the Authorization header.
func requireAuth(logger *slog.Logger, auth tokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get("Authorization"))
			token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))

			if token == "" {
				writeError(logger, w, apperror.ErrMissingToken)
				return
			}

			username, err := auth.ParseToken(token)
			if err != nil {
				writeError(logger, w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUsername(r.Context(), username)))
		})
	}
}

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter - a token bucket per client address. Buckets idle for longer than limiterIdleTTL are dropped.
type rateLimiter struct {
	logger *slog.Logger

	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiter(logger *slog.Logger, rps float64, burst int) *rateLimiter {
	return &rateLimiter{
		logger:    logger,
		limiters:  make(map[string]*clientLimiter),
		limit:     rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (that *rateLimiter) limiter(key string) *rate.Limiter {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now()
	if now.Sub(that.lastSweep) >= limiterSweepInterval {
		that.sweep(now)
	}

	entry, ok := that.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(that.limit, that.burst)}
		that.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// sweep - must be called with mu held.
func (that *rateLimiter) sweep(now time.Time) {
	for key, entry := range that.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(that.limiters, key)
		}
	}
	that.lastSweep = now
}

func (that *rateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientAddr(r)

		if !that.limiter(key).Allow() {
			that.logger.Warn("rate limit exceeded", "client", key, "path", r.URL.Path)
			writeError(that.logger, w, errRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// accessLog - logs every request once it is served.
func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", statusOf(ww),
				"duration", time.Since(start),
				"requestID", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// instrument - labels requests by route pattern, so game ids do not end up in label values.
func instrument(metrics requestMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			metrics.RequestStarted()

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			metrics.RequestFinished(r.Method, route, statusOf(ww), time.Since(start))
		})
	}
}

// statusOf - handlers that never call WriteHeader answer 200.
func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
