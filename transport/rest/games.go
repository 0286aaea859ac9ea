package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rest/internal/entity"
)

type gameUseCase interface {
	StartGame(ctx context.Context, initiator, opponent string) (*entity.Game, error)
	MakeMove(ctx context.Context, gameID, player string, row, col int) (*entity.Game, entity.Outcome, error)
	RestartGame(ctx context.Context, gameID, player string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID, player string) error

	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	ListGames(ctx context.Context) ([]*entity.Game, error)
}

type startGameRequest struct {
	Player2 string `json:"player2"`
}

type startGameResponse struct {
	Message string `json:"message"`
	GameID  string `json:"gameId"`
}

// moveRequest - pointers tell a missing coordinate apart from zero.
type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type moveResponse struct {
	Message          string       `json:"message"`
	Winner           *string      `json:"winner"`
	UpdatedGameState *entity.Game `json:"updatedGameState"`
}

type restartResponse struct {
	Message          string       `json:"message"`
	UpdatedGameState *entity.Game `json:"updatedGameState"`
}

type gameHandler struct {
	logger *slog.Logger
	game   gameUseCase
}

func newGameHandler(logger *slog.Logger, game gameUseCase) *gameHandler {
	return &gameHandler{
		logger: logger.With("component", "gameHandler"),
		game:   game,
	}
}

func (that *gameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	game, err := that.game.StartGame(r.Context(), usernameFrom(r.Context()), req.Player2)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusCreated, startGameResponse{
		Message: "Game started successfully.",
		GameID:  game.ID,
	})
}

func (that *gameHandler) MakeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	if req.Row == nil || req.Col == nil {
		writeError(that.logger, w, fmt.Errorf("%w: row and col are required", apperror.ErrInvalidInput))
		return
	}

	game, outcome, err := that.game.MakeMove(r.Context(), chi.URLParam(r, "gameId"), usernameFrom(r.Context()), *req.Row, *req.Col)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	resp := moveResponse{
		Message:          "Move successful.",
		UpdatedGameState: game,
	}

	switch outcome.Kind {
	case entity.OutcomeWin:
		resp.Message = fmt.Sprintf("Player %s wins!", outcome.Winner)
		resp.Winner = &outcome.Winner
	case entity.OutcomeDraw:
		resp.Message = "It's a draw!"
	case entity.OutcomeNone:
	}

	writeJSON(that.logger, w, http.StatusOK, resp)
}

func (that *gameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.RestartGame(r.Context(), chi.URLParam(r, "gameId"), usernameFrom(r.Context()))
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, restartResponse{
		Message:          "Game restarted successfully.",
		UpdatedGameState: game,
	})
}

func (that *gameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := that.game.DeleteGame(r.Context(), chi.URLParam(r, "gameId"), usernameFrom(r.Context())); err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, messageResponse{Message: "Game deleted successfully."})
}

func (that *gameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := that.game.ListGames(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, games)
}

func (that *gameHandler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := that.game.GetGame(r.Context(), chi.URLParam(r, "gameId"))
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, game)
}
