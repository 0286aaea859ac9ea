package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
)

var ErrEmptySecret = errors.New("secret key is empty")

type AuthService interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error

	GenerateToken(username string) (string, error)
	ParseToken(token string) (string, error)
}

// Claims - the payload of an issued token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type authServiceImpl struct {
	secretKey  []byte
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(secretKey string, tokenTTL time.Duration, bcryptCost int) (AuthService, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &authServiceImpl{
		secretKey:  []byte(secretKey),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}, nil
}

func (that *authServiceImpl) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), that.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword - returns apperror.ErrInvalidCredentials when password does not match hash.
func (that *authServiceImpl) ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidCredentials, err)
	}

	return nil
}

func (that *authServiceImpl) GenerateToken(username string) (string, error) {
	now := that.now()

	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(that.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(that.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken - verifies the signature and expiry of token and returns the username it was issued to.
func (that *authServiceImpl) ParseToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return that.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(that.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Username == "" {
		return "", apperror.ErrInvalidToken
	}

	return claims.Username, nil
}
