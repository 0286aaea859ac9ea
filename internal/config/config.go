package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrEmptyJWTSecret = errors.New("jwt secret key is empty")

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string        `yaml:"http-port" env:"HTTP_PORT" env-default:"3000"`
	Redis             Redis         `yaml:"redis"`
	SQLiteStoragePath string        `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./tictactoe.db"`
	JWTSecretKey      string        `yaml:"jwt-secret-key" env:"JWT_SECRET_KEY"`
	TokenTTL          time.Duration `yaml:"token-ttl" env:"TOKEN_TTL" env-default:"12h"`
	BcryptCost        int           `yaml:"bcrypt-cost" env:"BCRYPT_COST" env-default:"10"`
	RateLimit         RateLimit     `yaml:"rate-limit"`
	CORS              CORS          `yaml:"cors"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// RateLimit - limits for the unauthenticated register and login endpoints, per client address.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"5"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"10"`
	// TrustProxyHeaders - take the client address from X-Forwarded-For / X-Real-IP.
	// Only enable behind a proxy that overwrites these headers.
	TrustProxyHeaders bool `yaml:"trust-proxy-headers" env:"RATE_LIMIT_TRUST_PROXY_HEADERS" env-default:"false"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed-origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

// MustLoadEnv - load configuration from environment variables only.
func MustLoadEnv() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read environment: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	if that.JWTSecretKey == "" {
		return ErrEmptyJWTSecret
	}

	if that.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", that.TokenTTL)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
