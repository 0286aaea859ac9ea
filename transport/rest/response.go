package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
)

var errRateLimited = errors.New("too many requests, try again later")

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}

// writeError - maps err to a status code. Server-side failures are logged and hidden from the client.
func writeError(logger *slog.Logger, w http.ResponseWriter, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		message = "internal server error"
	}

	writeJSON(logger, w, status, errorResponse{Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, apperror.ErrMissingToken), errors.Is(err, apperror.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrInvalidToken),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNotParticipant),
		errors.Is(err, apperror.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrUserAlreadyExists):
		return http.StatusConflict
	case apperror.IsNotFound(err):
		return http.StatusNotFound
	case apperror.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", apperror.ErrInvalidInput)
	}

	return nil
}
