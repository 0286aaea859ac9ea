//go:build !windows

package application

import (
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rest/internal/config"
	"github.com/rocketscienceinc/tictactoe-rest/testing/suite"
)

func testConfig(t *testing.T, redisHost, redisPort, httpPort string) *config.Config {
	t.Helper()

	return &config.Config{
		LogLevel:          "info",
		HTTPPort:          httpPort,
		Redis:             config.Redis{Host: redisHost, Port: redisPort},
		SQLiteStoragePath: filepath.Join(t.TempDir(), "tictactoe.db"),
		JWTSecretKey:      "test-secret",
		TokenTTL:          time.Hour,
		BcryptCost:        4,
		RateLimit:         config.RateLimit{RPS: 5, Burst: 10},
	}
}

func freePort(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	return strconv.Itoa(port)
}

func TestRunApp_UnreachableRedis(t *testing.T) {
	// Given: nothing listens on the redis port
	conf := testConfig(t, "127.0.0.1", freePort(t), freePort(t))

	// When: the application starts
	err := RunApp(suite.NewLogger(), conf)

	// Then: it returns instead of serving
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not connect to redis storage")
}

func TestRunApp_StopsOnSignal(t *testing.T) {
	// Given: a running application backed by a throwaway redis
	_, s := suite.New(t)

	redisHost, redisPort, err := net.SplitHostPort(s.Storage.Options().Addr)
	require.NoError(t, err)

	httpPort := freePort(t)
	conf := testConfig(t, redisHost, redisPort, httpPort)

	done := make(chan error, 1)
	go func() {
		done <- RunApp(s.Logger, conf)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + httpPort + "/ping")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond)

	// When: the process receives SIGTERM
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	// Then: the application shuts down cleanly
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("application did not stop after SIGTERM")
	}
}
