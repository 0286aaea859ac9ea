package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rest/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rest/internal/pkg"
)

type GameUseCase interface {
	StartGame(ctx context.Context, initiator, opponent string) (*entity.Game, error)
	MakeMove(ctx context.Context, gameID, player string, row, col int) (*entity.Game, entity.Outcome, error)
	RestartGame(ctx context.Context, gameID, player string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID, player string) error

	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	ListGames(ctx context.Context) ([]*entity.Game, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Game, error)
}

type userRepo interface {
	Create(ctx context.Context, username, passwordHash string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	IncrementStat(ctx context.Context, stat entity.Stat, usernames ...string) error
	SetCurrentGame(ctx context.Context, gameID string, usernames ...string) error
	DeleteByUsername(ctx context.Context, username string) error
	List(ctx context.Context) ([]*entity.User, error)
	Leaderboard(ctx context.Context) ([]*entity.LeaderboardEntry, error)
}

type gameMetrics interface {
	GameStarted()
	GameFinished(outcome string)
	MoveRecorded(result string)
}

type gameUseCase struct {
	logger  *slog.Logger
	metrics gameMetrics

	gameRepo gameRepo
	userRepo userRepo

	// mutations of one game are serialized; the turn check and the save must not interleave
	locks *pkg.KeyedMutex
	now   func() time.Time
}

func NewGameUseCase(logger *slog.Logger, metrics gameMetrics, gameRepo gameRepo, userRepo userRepo) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "game"),
		metrics:  metrics,
		gameRepo: gameRepo,
		userRepo: userRepo,
		locks:    pkg.NewKeyedMutex(),
		now:      time.Now,
	}
}

// StartGame - creates a fresh game where initiator plays X and moves first.
// Starting a game never checks for other active games between the same players.
func (that *gameUseCase) StartGame(ctx context.Context, initiator, opponent string) (*entity.Game, error) {
	opponent = strings.TrimSpace(opponent)
	if opponent == "" {
		return nil, fmt.Errorf("%w: opponent is required", apperror.ErrInvalidInput)
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, initiator, opponent, that.now().UTC())

	for _, username := range game.DistinctPlayers() {
		if _, err = that.userRepo.FindByUsername(ctx, username); err != nil {
			return nil, fmt.Errorf("failed to get player %s: %w", username, err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	// the game is stored at this point, so the request must not fail
	if err = that.userRepo.SetCurrentGame(ctx, game.ID, game.DistinctPlayers()...); err != nil {
		that.logger.Error("failed to set current game of players", "gameID", game.ID, "error", err)
	}

	that.metrics.GameStarted()
	that.logger.Info("game started", "gameID", game.ID, "playerX", game.Players[0], "playerO", game.Players[1])

	return game, nil
}

// MakeMove - applies a move and, when it ends the game, records the result on the players' accounts.
// The returned outcome is terminal exactly once per game: a finished game rejects further moves.
func (that *gameUseCase) MakeMove(ctx context.Context, gameID, player string, row, col int) (*entity.Game, entity.Outcome, error) {
	log := that.logger.With("method", "MakeMove", "gameID", gameID, "player", player)

	unlock := that.locks.Lock(gameID)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, entity.Outcome{}, fmt.Errorf("failed to get game: %w", err)
	}

	outcome, err := game.ApplyMove(player, row, col)
	if err != nil {
		that.metrics.MoveRecorded(rejectionReason(err))
		return nil, entity.Outcome{}, fmt.Errorf("failed to make move: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, entity.Outcome{}, fmt.Errorf("failed to update game: %w", err)
	}

	that.metrics.MoveRecorded("accepted")
	log.Debug("move accepted", "row", row, "col", col)

	if !outcome.IsTerminal() {
		return game, outcome, nil
	}

	// the move is stored at this point, so the request must not fail
	if err = that.recordOutcome(ctx, game, outcome); err != nil {
		log.Error("failed to record game result", "error", err)
	}

	that.metrics.GameFinished(string(outcome.Kind))
	log.Info("game finished", "outcome", outcome.Kind, "winner", outcome.Winner)

	return game, outcome, nil
}

// recordOutcome - a win counts for the winner and the loser, a win without a loser (self-play) counts for nobody.
func (that *gameUseCase) recordOutcome(ctx context.Context, game *entity.Game, outcome entity.Outcome) error {
	switch outcome.Kind {
	case entity.OutcomeWin:
		if outcome.Loser == "" {
			return nil
		}

		if err := that.userRepo.IncrementStat(ctx, entity.StatWins, outcome.Winner); err != nil {
			return fmt.Errorf("failed to add win: %w", err)
		}

		if err := that.userRepo.IncrementStat(ctx, entity.StatLosses, outcome.Loser); err != nil {
			return fmt.Errorf("failed to add loss: %w", err)
		}
	case entity.OutcomeDraw:
		if err := that.userRepo.IncrementStat(ctx, entity.StatDraws, game.DistinctPlayers()...); err != nil {
			return fmt.Errorf("failed to add draws: %w", err)
		}
	case entity.OutcomeNone:
	}

	return nil
}

// RestartGame - clears the board of a game, keeping its players and their order. Stats are not touched.
func (that *gameUseCase) RestartGame(ctx context.Context, gameID, player string) (*entity.Game, error) {
	unlock := that.locks.Lock(gameID)
	defer unlock()

	game, err := that.participantGame(ctx, gameID, player)
	if err != nil {
		return nil, err
	}

	game.Reset()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game restarted", "gameID", gameID, "player", player)

	return game, nil
}

func (that *gameUseCase) DeleteGame(ctx context.Context, gameID, player string) error {
	unlock := that.locks.Lock(gameID)
	defer unlock()

	if _, err := that.participantGame(ctx, gameID, player); err != nil {
		return err
	}

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", gameID, "player", player)

	return nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) ListGames(ctx context.Context) ([]*entity.Game, error) {
	games, err := that.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return games, nil
}

func (that *gameUseCase) participantGame(ctx context.Context, gameID, player string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if !game.HasPlayer(player) {
		return nil, apperror.ErrNotParticipant
	}

	return game, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		return "game_finished"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "cell_occupied"
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return "invalid_coordinate"
	default:
		return "rejected"
	}
}
