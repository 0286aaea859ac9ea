package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-rest/internal/entity"
)

type userUseCase interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	DeleteAccount(ctx context.Context, authenticated, requested string) error

	ListUsers(ctx context.Context) ([]*entity.User, error)
	Leaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type deleteAccountRequest struct {
	Username string `json:"username"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type userHandler struct {
	logger *slog.Logger
	user   userUseCase
}

func newUserHandler(logger *slog.Logger, user userUseCase) *userHandler {
	return &userHandler{
		logger: logger.With("component", "userHandler"),
		user:   user,
	}
}

func (that *userHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	if _, err := that.user.Register(r.Context(), req.Username, req.Password); err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusCreated, messageResponse{Message: "User registered successfully."})
}

func (that *userHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	token, err := that.user.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		that.logger.Warn("failed login attempt", "username", req.Username, "error", err)
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, tokenResponse{Token: token})
}

func (that *userHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req deleteAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	if err := that.user.DeleteAccount(r.Context(), usernameFrom(r.Context()), req.Username); err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, messageResponse{Message: "User deleted successfully."})
}

func (that *userHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := that.user.ListUsers(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, users)
}

func (that *userHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := that.user.Leaderboard(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, entries)
}
