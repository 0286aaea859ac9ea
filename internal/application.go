package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-rest/internal/config"
	"github.com/rocketscienceinc/tictactoe-rest/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-rest/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rest/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-rest/internal/service"
	"github.com/rocketscienceinc/tictactoe-rest/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-rest/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	// the signal registration is released on every return path
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
		Addr:     redisAddrString,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	authService, err := service.NewAuthService(conf.JWTSecretKey, conf.TokenTTL, conf.BcryptCost)
	if err != nil {
		return fmt.Errorf("could not create auth service: %w", err)
	}

	appMetrics := metrics.New()

	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	userRepo := repository.NewUserRepository(sqliteStorage.Connection)

	gameUseCase := usecase.NewGameUseCase(logger, appMetrics, gameRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(logger, userRepo, authService)

	server := rest.NewServer(logger, conf, appMetrics, authService, userUseCase, gameUseCase)

	if err = server.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Received signal, shutting down")

	return nil
}
