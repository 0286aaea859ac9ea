package entity

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rest/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startTime = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123", "alice", "bob", startTime)

	// Then: the board is empty and the initiator moves first
	expectedGame := &Game{
		ID:            "123",
		Players:       [2]string{"alice", "bob"},
		Board:         tictactoe.NewBoard(),
		CurrentPlayer: "alice",
		Active:        true,
		StartTime:     startTime,
	}

	require.Equal(t, expectedGame, game)
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Successful move switches the turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", "alice", "bob", startTime)

		// When: alice plays the center
		outcome, err := game.ApplyMove("alice", 1, 1)
		require.NoError(t, err)

		// Then: the mark is placed and it is bob's turn
		assert.False(t, outcome.IsTerminal())
		assert.Equal(t, tictactoe.X, game.Board[1][1])
		assert.Equal(t, "bob", game.CurrentPlayer)
		assert.True(t, game.Active)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where it's alice's turn
		game := NewGame("123", "alice", "bob", startTime)

		// When: bob tries to move
		_, err := game.ApplyMove("bob", 0, 0)

		// Then: ErrNotYourTurn is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, NewGame("123", "alice", "bob", startTime), game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: alice has played the corner
		game := NewGame("123", "alice", "bob", startTime)
		_, err := game.ApplyMove("alice", 0, 0)
		require.NoError(t, err)
		snapshot := *game

		// When: bob plays the same corner
		_, err = game.ApplyMove("bob", 0, 0)

		// Then: ErrCellOccupied is returned, board and turn unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, snapshot, *game)
	})

	t.Run("Error on invalid coordinate", func(t *testing.T) {
		game := NewGame("123", "alice", "bob", startTime)

		_, err := game.ApplyMove("alice", 3, 3)

		require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		require.Equal(t, "alice", game.CurrentPlayer)
	})

	t.Run("Top row win by X", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", "alice", "bob", startTime)

		// When: X plays (0,0),(0,1),(0,2) while O plays (1,0),(1,1)
		moves := []struct {
			player   string
			row, col int
		}{
			{"alice", 0, 0},
			{"bob", 1, 0},
			{"alice", 0, 1},
			{"bob", 1, 1},
		}
		for _, move := range moves {
			outcome, err := game.ApplyMove(move.player, move.row, move.col)
			require.NoError(t, err)
			require.False(t, outcome.IsTerminal())
		}

		outcome, err := game.ApplyMove("alice", 0, 2)
		require.NoError(t, err)

		// Then: alice wins, bob loses, and the game is no longer active
		assert.Equal(t, Outcome{Kind: OutcomeWin, Winner: "alice", Loser: "bob"}, outcome)
		assert.True(t, tictactoe.CheckWin(&game.Board))
		assert.False(t, game.Active)
		assert.Equal(t, "alice", game.Winner)
		assert.Equal(t, "alice", game.CurrentPlayer, "the turn is not switched after the winning move")
	})

	t.Run("Draw on a full board", func(t *testing.T) {
		// Given: a game heading to X,O,X / X,O,O / O,X,X
		game := NewGame("123", "alice", "bob", startTime)
		moves := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}}
		for _, move := range moves {
			outcome, err := game.ApplyMove(game.CurrentPlayer, move[0], move[1])
			require.NoError(t, err)
			require.False(t, outcome.IsTerminal())
		}

		// When: X fills the last cell
		outcome, err := game.ApplyMove("alice", 2, 2)
		require.NoError(t, err)

		// Then: the game ends in a draw
		expectedBoard := tictactoe.Board{
			{tictactoe.X, tictactoe.O, tictactoe.X},
			{tictactoe.X, tictactoe.O, tictactoe.O},
			{tictactoe.O, tictactoe.X, tictactoe.X},
		}
		assert.Equal(t, expectedBoard, game.Board)
		assert.Equal(t, Outcome{Kind: OutcomeDraw}, outcome)
		assert.False(t, game.Active)
		assert.Empty(t, game.Winner)
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a finished game
		game := NewGame("123", "alice", "bob", startTime)
		game.Active = false

		// When: the current player tries to move
		_, err := game.ApplyMove("alice", 2, 2)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, tictactoe.NewBoard(), game.Board)
	})

	t.Run("Self-play win has no loser", func(t *testing.T) {
		// Given: alice playing against herself
		game := NewGame("123", "alice", "alice", startTime)

		// When: she completes the left column with X
		for _, move := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
			_, err := game.ApplyMove("alice", move[0], move[1])
			require.NoError(t, err)
		}
		outcome, err := game.ApplyMove("alice", 2, 0)
		require.NoError(t, err)

		// Then: alice wins and nobody loses
		assert.Equal(t, Outcome{Kind: OutcomeWin, Winner: "alice"}, outcome)
		assert.False(t, game.Active)
	})

	t.Run("Turn always moves to the other registered player", func(t *testing.T) {
		game := NewGame("123", "alice", "bob", startTime)

		for _, move := range [][2]int{{0, 0}, {2, 2}, {0, 2}, {2, 0}} {
			before := game.CurrentPlayer

			outcome, err := game.ApplyMove(before, move[0], move[1])
			require.NoError(t, err)
			require.False(t, outcome.IsTerminal())

			assert.NotEqual(t, before, game.CurrentPlayer)
			assert.True(t, game.HasPlayer(game.CurrentPlayer))
		}
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	game := NewGame("123", "alice", "bob", startTime)
	game.Board[0] = [3]tictactoe.Cell{tictactoe.X, tictactoe.X, tictactoe.X}
	game.CurrentPlayer = "alice"
	game.Winner = "alice"
	game.Active = false

	// When: the game is reset
	game.Reset()

	// Then: the board is cleared and the first player moves, identity and order preserved
	require.Equal(t, NewGame("123", "alice", "bob", startTime), game)
}

func TestGame_Players(t *testing.T) {
	game := NewGame("123", "alice", "bob", startTime)

	assert.True(t, game.HasPlayer("alice"))
	assert.True(t, game.HasPlayer("bob"))
	assert.False(t, game.HasPlayer("carol"))

	assert.Equal(t, "bob", game.Opponent("alice"))
	assert.Equal(t, "alice", game.Opponent("bob"))
	assert.Empty(t, game.Opponent("carol"))
	assert.Equal(t, []string{"alice", "bob"}, game.DistinctPlayers())

	selfPlay := NewGame("456", "alice", "alice", startTime)
	assert.Empty(t, selfPlay.Opponent("alice"))
	assert.Equal(t, []string{"alice"}, selfPlay.DistinctPlayers())
}

func TestStat_Valid(t *testing.T) {
	assert.True(t, StatWins.Valid())
	assert.True(t, StatLosses.Valid())
	assert.True(t, StatDraws.Valid())
	assert.False(t, Stat("password").Valid())
}
