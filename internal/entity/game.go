package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rest/internal/tictactoe"
)

type OutcomeKind string

const (
	OutcomeNone OutcomeKind = ""
	OutcomeWin  OutcomeKind = "win"
	OutcomeDraw OutcomeKind = "draw"
)

// Outcome - the terminal result of a game. Loser is empty when a player wins against themselves.
type Outcome struct {
	Kind   OutcomeKind `json:"kind,omitempty"`
	Winner string      `json:"winner,omitempty"`
	Loser  string      `json:"loser,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Kind != OutcomeNone
}

// Game - one session between two players. Players[0] plays X, Players[1] plays O.
type Game struct {
	ID            string          `json:"id"`
	Players       [2]string       `json:"players"`
	Board         tictactoe.Board `json:"board"`
	CurrentPlayer string          `json:"currentPlayer"`
	Active        bool            `json:"active"`
	Winner        string          `json:"winner,omitempty"`
	StartTime     time.Time       `json:"startTime"`
}

func NewGame(id, playerX, playerO string, startTime time.Time) *Game {
	return &Game{
		ID:            id,
		Players:       [2]string{playerX, playerO},
		Board:         tictactoe.NewBoard(),
		CurrentPlayer: playerX,
		Active:        true,
		StartTime:     startTime,
	}
}

// ApplyMove - validates and applies a move by player at row, col.
// On error the game is left untouched. When the move ends the game the
// turn is not switched, so CurrentPlayer still names the mover.
func (that *Game) ApplyMove(player string, row, col int) (Outcome, error) {
	if !that.Active {
		return Outcome{}, apperror.ErrGameFinished
	}

	if player != that.CurrentPlayer {
		return Outcome{}, apperror.ErrNotYourTurn
	}

	placed, err := tictactoe.PlaceMark(&that.Board, row, col, tictactoe.NextMark(&that.Board))
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to place mark: %w", err)
	}

	if !placed {
		return Outcome{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	if !tictactoe.IsGameOver(&that.Board) {
		that.CurrentPlayer = tictactoe.SwitchPlayer(that.CurrentPlayer, that.Players[0], that.Players[1])
		return Outcome{}, nil
	}

	that.Active = false

	return that.outcome(), nil
}

// outcome - classifies a finished board. The winner is the player who made the last move.
func (that *Game) outcome() Outcome {
	if !tictactoe.CheckWin(&that.Board) {
		return Outcome{Kind: OutcomeDraw}
	}

	that.Winner = that.CurrentPlayer

	return Outcome{
		Kind:   OutcomeWin,
		Winner: that.CurrentPlayer,
		Loser:  that.Opponent(that.CurrentPlayer),
	}
}

// Reset - clears the board and starts over with the same players in the same order.
func (that *Game) Reset() {
	that.Board = tictactoe.NewBoard()
	that.CurrentPlayer = that.Players[0]
	that.Active = true
	that.Winner = ""
}

func (that *Game) HasPlayer(username string) bool {
	return that.Players[0] == username || that.Players[1] == username
}

// Opponent - the other player of the game, or "" for self-play and strangers.
func (that *Game) Opponent(username string) string {
	switch {
	case that.Players[0] == that.Players[1]:
		return ""
	case that.Players[0] == username:
		return that.Players[1]
	case that.Players[1] == username:
		return that.Players[0]
	default:
		return ""
	}
}

// DistinctPlayers - the players of the game without duplicates.
func (that *Game) DistinctPlayers() []string {
	if that.Players[0] == that.Players[1] {
		return []string{that.Players[0]}
	}
	return []string{that.Players[0], that.Players[1]}
}
