package rest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rest/internal/config"
	"github.com/rocketscienceinc/tictactoe-rest/testing/suite"
)

const wrongLogin = `{"username":"alice","password":"wrong"}`

func loginFrom(f *apiFixture, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(wrongLogin))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	return rec.Code
}

func TestRateLimiter_ForwardedHeaders(t *testing.T) {
	t.Run("Rotating X-Forwarded-For does not reset the bucket", func(t *testing.T) {
		// Given: proxy headers are not trusted and the burst is 2
		f := newAPIFixtureWithConfig(t, &config.Config{
			RateLimit: config.RateLimit{RPS: 0.01, Burst: 2},
		})

		f.user.EXPECT().Login(mock.Anything, "alice", "wrong").Return("", apperror.ErrInvalidCredentials).Twice()

		// When: one connection sends many logins, each claiming another address
		limited := 0
		for i := range 50 {
			if loginFrom(f, fmt.Sprintf("10.0.0.%d", i)) == http.StatusTooManyRequests {
				limited++
			}
		}

		// Then: only the burst reaches Login
		assert.Equal(t, 48, limited)
	})

	t.Run("Trusted proxy headers key the bucket per forwarded client", func(t *testing.T) {
		f := newAPIFixtureWithConfig(t, &config.Config{
			RateLimit: config.RateLimit{RPS: 0.01, Burst: 1, TrustProxyHeaders: true},
		})

		f.user.EXPECT().Login(mock.Anything, "alice", "wrong").Return("", apperror.ErrInvalidCredentials).Times(3)

		assert.Equal(t, http.StatusUnauthorized, loginFrom(f, "10.0.0.1"))
		assert.Equal(t, http.StatusUnauthorized, loginFrom(f, "10.0.0.2"))
		assert.Equal(t, http.StatusUnauthorized, loginFrom(f, "10.0.0.3"))
		assert.Equal(t, http.StatusTooManyRequests, loginFrom(f, "10.0.0.1"))
	})
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	// Given: a limiter with a controlled clock and two known clients
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	limiter := newRateLimiter(suite.NewLogger(), 1, 1)
	limiter.now = func() time.Time { return now }
	limiter.lastSweep = now

	limiter.limiter("10.0.0.1")
	limiter.limiter("10.0.0.2")
	assert.Len(t, limiter.limiters, 2)

	// When: a new client shows up after both went idle
	now = now.Add(limiterIdleTTL + limiterSweepInterval)
	limiter.limiter("10.0.0.3")

	// Then: only the active client is kept
	assert.Len(t, limiter.limiters, 1)
	assert.Contains(t, limiter.limiters, "10.0.0.3")
}

func TestRateLimiter_KeepsRecentClients(t *testing.T) {
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	limiter := newRateLimiter(suite.NewLogger(), 1, 1)
	limiter.now = func() time.Time { return now }
	limiter.lastSweep = now

	// a bucket used within the idle ttl survives the sweep
	first := limiter.limiter("10.0.0.1")

	now = now.Add(limiterSweepInterval)
	limiter.limiter("10.0.0.2")

	assert.Len(t, limiter.limiters, 2)
	assert.Same(t, first, limiter.limiter("10.0.0.1"))
}
