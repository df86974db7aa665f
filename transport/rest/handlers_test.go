package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	mockedRest "github.com/rocketscienceinc/tictactoe-solver/mocks/rest"
)

func newTestHandler(t *testing.T) (http.Handler, *mockedRest.MockgameUseCase) {
	t.Helper()

	games := mockedRest.NewMockgameUseCase(t)

	return NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), games), games
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, target, reader))

	return rec
}

func newGame(t *testing.T) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("game1", tictactoe.DefaultSize, tictactoe.X)
	require.NoError(t, err)

	return game
}

func TestPing(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := serve(handler, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandlers_CreateGame(t *testing.T) {
	t.Run("Creates a game with the requested mark", func(t *testing.T) {
		// Given: the use case creates a game for X
		handler, games := newTestHandler(t)
		games.EXPECT().CreateGame(mock.Anything, tictactoe.X).Return(newGame(t), nil).Once()

		// When: posting a new game
		rec := serve(handler, http.MethodPost, "/games", `{"mark":"X"}`)

		// Then: the game is returned
		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "game1", body["id"])
		assert.Equal(t, "X", body["human_mark"])
		assert.Equal(t, "ongoing", body["status"])
	})

	t.Run("Empty body picks a random mark", func(t *testing.T) {
		handler, games := newTestHandler(t)
		games.EXPECT().CreateGame(mock.Anything, tictactoe.Empty).Return(newGame(t), nil).Once()

		rec := serve(handler, http.MethodPost, "/games", "")

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Unknown mark is rejected", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := serve(handler, http.MethodPost, "/games", `{"mark":"Z"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlers_MakeTurn(t *testing.T) {
	t.Run("Plays the move", func(t *testing.T) {
		// Given: the use case accepts the move
		handler, games := newTestHandler(t)
		move := tictactoe.Move{Row: 1, Col: 1}
		games.EXPECT().MakeTurn(mock.Anything, "game1", move).Return(newGame(t), nil).Once()

		// When: posting a move
		rec := serve(handler, http.MethodPost, "/games/game1/moves", `{"row":1,"col":1}`)

		// Then: the updated game is returned
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	errorCases := []struct {
		name   string
		err    error
		status int
	}{
		{"Invalid move", fmt.Errorf("failed to make turn: %w", tictactoe.ErrInvalidMove), http.StatusBadRequest},
		{"Game finished", apperror.ErrGameFinished, http.StatusConflict},
		{"Game not found", apperror.ErrGameNotFound, http.StatusNotFound},
		{"Storage failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, games := newTestHandler(t)
			games.EXPECT().MakeTurn(mock.Anything, "game1", mock.Anything).Return(nil, tc.err).Once()

			rec := serve(handler, http.MethodPost, "/games/game1/moves", `{"row":0,"col":0}`)

			assert.Equal(t, tc.status, rec.Code)
		})
	}

	t.Run("Malformed body", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := serve(handler, http.MethodPost, "/games/game1/moves", `{"row":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlers_Hint(t *testing.T) {
	// Given: the use case suggests the centre
	handler, games := newTestHandler(t)
	games.EXPECT().Hint(mock.Anything, "game1").
		Return(search.Result{Move: tictactoe.Move{Row: 1, Col: 1}, Value: 0, Visited: 42}, nil).
		Once()

	// When: asking for a hint
	rec := serve(handler, http.MethodGet, "/games/game1/hint", "")

	// Then: the move and value are returned
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"move":{"row":1,"col":1},"value":0,"visited":42}`, rec.Body.String())
}

func TestHandlers_GetAndDelete(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		handler, games := newTestHandler(t)
		games.EXPECT().GetGame(mock.Anything, "game1").Return(newGame(t), nil).Once()

		rec := serve(handler, http.MethodGet, "/games/game1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		handler, games := newTestHandler(t)
		games.EXPECT().DeleteGame(mock.Anything, "game1").Return(nil).Once()

		rec := serve(handler, http.MethodDelete, "/games/game1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
