package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rest/internal/config"
	"github.com/rocketscienceinc/tictactoe-rest/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rest/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-rest/internal/service"
	"github.com/rocketscienceinc/tictactoe-rest/internal/tictactoe"
	mockedRest "github.com/rocketscienceinc/tictactoe-rest/mocks/rest"
	"github.com/rocketscienceinc/tictactoe-rest/testing/suite"
)

type apiFixture struct {
	handler http.Handler
	auth    service.AuthService
	game    *mockedRest.MockgameUseCase
	user    *mockedRest.MockuserUseCase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	return newAPIFixtureWithConfig(t, &config.Config{
		RateLimit: config.RateLimit{RPS: 1, Burst: 2},
		CORS:      config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	})
}

func newAPIFixtureWithConfig(t *testing.T, conf *config.Config) *apiFixture {
	t.Helper()

	auth, err := service.NewAuthService("test-secret", time.Hour, bcrypt.MinCost)
	require.NoError(t, err)

	game := mockedRest.NewMockgameUseCase(t)
	user := mockedRest.NewMockuserUseCase(t)

	return &apiFixture{
		handler: NewRouter(suite.NewLogger(), conf, metrics.New(), auth, user, game),
		auth:    auth,
		game:    game,
		user:    user,
	}
}

func (that *apiFixture) tokenFor(t *testing.T, username string) string {
	t.Helper()

	token, err := that.auth.GenerateToken(username)
	require.NoError(t, err)

	return token
}

func (that *apiFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	that.handler.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestPing(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/ping", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	f.do(http.MethodGet, "/ping", "", "")
	rec := f.do(http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tictactoe_http_requests_total{method="GET",route="/ping",status="200"} 1`)
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Missing token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/games", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apperror.ErrMissingToken.Error(), decodeBody(t, rec)["error"])
	})

	t.Run("Invalid token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/games", "", "not-a-token")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Raw and Bearer tokens are accepted", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.tokenFor(t, "alice")

		f.game.EXPECT().ListGames(mock.Anything).Return([]*entity.Game{}, nil).Twice()

		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/games", "", token).Code)
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/games", "", "Bearer "+token).Code)
	})
}

func TestRegisterAndLogin(t *testing.T) {
	t.Run("Register", func(t *testing.T) {
		f := newAPIFixture(t)

		f.user.EXPECT().Register(mock.Anything, "alice", "secret").Return(&entity.User{Username: "alice"}, nil).Once()

		rec := f.do(http.MethodPost, "/api/register", `{"username":"alice","password":"secret"}`, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "User registered successfully.", decodeBody(t, rec)["message"])
	})

	t.Run("Duplicate username", func(t *testing.T) {
		f := newAPIFixture(t)

		f.user.EXPECT().Register(mock.Anything, "alice", "secret").
			Return(nil, fmt.Errorf("failed to save user into storage: %w", apperror.ErrUserAlreadyExists)).Once()

		rec := f.do(http.MethodPost, "/api/register", `{"username":"alice","password":"secret"}`, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/register", `{`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Login returns a token", func(t *testing.T) {
		f := newAPIFixture(t)

		f.user.EXPECT().Login(mock.Anything, "alice", "secret").Return("token", nil).Once()

		rec := f.do(http.MethodPost, "/api/login", `{"username":"alice","password":"secret"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "token", decodeBody(t, rec)["token"])
	})

	t.Run("Bad credentials", func(t *testing.T) {
		f := newAPIFixture(t)

		f.user.EXPECT().Login(mock.Anything, "alice", "wrong").Return("", apperror.ErrInvalidCredentials).Once()

		rec := f.do(http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Login is rate limited", func(t *testing.T) {
		f := newAPIFixture(t)

		f.user.EXPECT().Login(mock.Anything, "alice", "wrong").Return("", apperror.ErrInvalidCredentials).Twice()

		codes := make([]int, 0, 3)
		for range 3 {
			codes = append(codes, f.do(http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`, "").Code)
		}

		assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
	})
}

func TestDeleteAccount(t *testing.T) {
	f := newAPIFixture(t)
	token := f.tokenFor(t, "alice")

	f.user.EXPECT().DeleteAccount(mock.Anything, "alice", "alice").Return(nil).Once()
	f.user.EXPECT().DeleteAccount(mock.Anything, "alice", "bob").Return(apperror.ErrPermissionDenied).Once()

	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/delete", `{"username":"alice"}`, token).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodDelete, "/api/delete", `{"username":"bob"}`, token).Code)
}

func TestPublicListings(t *testing.T) {
	f := newAPIFixture(t)

	f.user.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{{Username: "alice", PasswordHash: "hash", Wins: 1}}, nil).Once()
	f.user.EXPECT().Leaderboard(mock.Anything).Return([]*entity.LeaderboardEntry{{Username: "alice", Wins: 1}}, nil).Once()

	rec := f.do(http.MethodGet, "/api/users", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")

	rec = f.do(http.MethodGet, "/api/users/leaderboard", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"username":"alice","wins":1,"losses":0,"draws":0}]`, rec.Body.String())
}

func TestStartGame(t *testing.T) {
	t.Run("Initiator comes from the token", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.tokenFor(t, "alice")

		f.game.EXPECT().StartGame(mock.Anything, "alice", "bob").
			Return(entity.NewGame("g1", "alice", "bob", time.Now()), nil).Once()

		rec := f.do(http.MethodPost, "/api/start-game", `{"player2":"bob"}`, token)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "g1", decodeBody(t, rec)["gameId"])
	})

	t.Run("Unknown opponent", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.tokenFor(t, "alice")

		f.game.EXPECT().StartGame(mock.Anything, "alice", "ghost").Return(nil, apperror.ErrUserNotFound).Once()

		rec := f.do(http.MethodPost, "/api/start-game", `{"player2":"ghost"}`, token)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMakeMove(t *testing.T) {
	t.Run("Ordinary move", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.tokenFor(t, "alice")
		game := entity.NewGame("g1", "alice", "bob", time.Now())

		f.game.EXPECT().MakeMove(mock.Anything, "g1", "alice", 0, 0).Return(game, entity.Outcome{}, nil).Once()

		rec := f.do(http.MethodPost, "/api/make-move/g1", `{"row":0,"col":0}`, token)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Move successful.", body["message"])
		assert.Nil(t, body["winner"])
		assert.NotNil(t, body["updatedGameState"])
	})

	t.Run("Winning move", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.tokenFor(t, "alice")
		game := entity.NewGame("g1", "alice", "bob", time.Now())
		game.Active = false
		game.Winner = "alice"

		f.game.EXPECT().MakeMove(mock.Anything, "g1", "alice", 0, 2).
			Return(game, entity.Outcome{Kind: entity.OutcomeWin, Winner: "alice", Loser: "bob"}, nil).Once()

		rec := f.do(http.MethodPost, "/api/make-move/g1", `{"row":0,"col":2}`, token)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Player alice wins!", body["message"])
		assert.Equal(t, "alice", body["winner"])
	})

	t.Run("Draw", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.tokenFor(t, "alice")
		game := entity.NewGame("g1", "alice", "bob", time.Now())
		game.Board = tictactoe.Board{
			{tictactoe.X, tictactoe.O, tictactoe.X},
			{tictactoe.X, tictactoe.O, tictactoe.O},
			{tictactoe.O, tictactoe.X, tictactoe.X},
		}
		game.Active = false

		f.game.EXPECT().MakeMove(mock.Anything, "g1", "alice", 2, 2).Return(game, entity.Outcome{Kind: entity.OutcomeDraw}, nil).Once()

		rec := f.do(http.MethodPost, "/api/make-move/g1", `{"row":2,"col":2}`, token)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "It's a draw!", decodeBody(t, rec)["message"])
	})

	t.Run("Rejections map to status codes", func(t *testing.T) {
		for _, tc := range []struct {
			err    error
			status int
		}{
			{err: apperror.ErrNotYourTurn, status: http.StatusForbidden},
			{err: apperror.ErrCellOccupied, status: http.StatusBadRequest},
			{err: apperror.ErrGameFinished, status: http.StatusBadRequest},
			{err: apperror.ErrInvalidCoordinate, status: http.StatusBadRequest},
			{err: apperror.ErrGameNotFound, status: http.StatusNotFound},
		} {
			t.Run(tc.err.Error(), func(t *testing.T) {
				f := newAPIFixture(t)
				token := f.tokenFor(t, "bob")

				f.game.EXPECT().MakeMove(mock.Anything, "g1", "bob", 1, 1).
					Return(nil, entity.Outcome{}, fmt.Errorf("failed to make move: %w", tc.err)).Once()

				rec := f.do(http.MethodPost, "/api/make-move/g1", `{"row":1,"col":1}`, token)

				assert.Equal(t, tc.status, rec.Code)
				assert.Contains(t, decodeBody(t, rec)["error"], tc.err.Error())
			})
		}
	})

	t.Run("Missing coordinates", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.tokenFor(t, "alice")

		rec := f.do(http.MethodPost, "/api/make-move/g1", `{"row":1}`, token)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Storage failures are hidden", func(t *testing.T) {
		f := newAPIFixture(t)
		token := f.tokenFor(t, "alice")

		f.game.EXPECT().MakeMove(mock.Anything, "g1", "alice", 0, 0).
			Return(nil, entity.Outcome{}, fmt.Errorf("failed to update game: %w", assert.AnError)).Once()

		rec := f.do(http.MethodPost, "/api/make-move/g1", `{"row":0,"col":0}`, token)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", decodeBody(t, rec)["error"])
	})
}

func TestRestartAndDeleteGame(t *testing.T) {
	f := newAPIFixture(t)
	token := f.tokenFor(t, "carol")

	f.game.EXPECT().RestartGame(mock.Anything, "g1", "carol").Return(nil, apperror.ErrNotParticipant).Once()
	f.game.EXPECT().DeleteGame(mock.Anything, "g1", "carol").Return(apperror.ErrNotParticipant).Once()
	f.game.EXPECT().DeleteGame(mock.Anything, "g2", "carol").Return(nil).Once()
	f.game.EXPECT().GetGame(mock.Anything, "g2").Return(entity.NewGame("g2", "carol", "dave", time.Now()), nil).Once()

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/restart-game/g1", "", token).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodDelete, "/api/delete-game/g1", "", token).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/games/g2", "", token).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/delete-game/g2", "", token).Code)
}
