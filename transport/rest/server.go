package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rocketscienceinc/tictactoe-rest/internal/config"
)

const shutdownTimeout = 10 * time.Second

type serverMetrics interface {
	requestMetrics
	Handler() http.Handler
}

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

func NewServer(logger *slog.Logger, conf *config.Config, metrics serverMetrics, auth tokenParser, user userUseCase, game gameUseCase) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		srv: &http.Server{
			Addr:         ":" + conf.HTTPPort,
			Handler:      NewRouter(logger, conf, metrics, auth, user, game),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// NewRouter - builds the HTTP API. Account listings are public, game routes need a token.
func NewRouter(logger *slog.Logger, conf *config.Config, metrics serverMetrics, auth tokenParser, user userUseCase, game gameUseCase) http.Handler {
	users := newUserHandler(logger, user)
	games := newGameHandler(logger, game)
	limiter := newRateLimiter(logger, conf.RateLimit.RPS, conf.RateLimit.Burst)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if conf.RateLimit.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(accessLog(logger.With("component", "http")))
	r.Use(middleware.Recoverer)
	r.Use(instrument(metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: conf.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/ping", PingHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(limiter.Handler)
			r.Post("/register", users.Register)
			r.Post("/login", users.Login)
		})

		r.Get("/users", users.List)
		r.Get("/users/leaderboard", users.Leaderboard)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(logger, auth))

			r.Delete("/delete", users.DeleteAccount)

			r.Post("/start-game", games.Start)
			r.Post("/make-move/{gameId}", games.MakeMove)
			r.Post("/restart-game/{gameId}", games.Restart)
			r.Delete("/delete-game/{gameId}", games.Delete)
			r.Get("/games", games.List)
			r.Get("/games/{gameId}", games.Get)
		})
	})

	return r
}

// Start - serves HTTP until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		that.logger.Info("Starting HTTP server", "addr", that.srv.Addr)
		if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := that.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	that.logger.Info("HTTP server stopped")

	return nil
}
