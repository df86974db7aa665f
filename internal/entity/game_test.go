package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

func TestNewGame(t *testing.T) {
	t.Run("Human plays X", func(t *testing.T) {
		// When: a new game is created for an X player
		game, err := NewGame("123", tictactoe.DefaultSize, tictactoe.X)
		require.NoError(t, err)

		// Then: the bot takes O and the human moves first
		assert.Equal(t, "123", game.ID)
		assert.Equal(t, tictactoe.O, game.BotMark)
		assert.Equal(t, tictactoe.X, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, tictactoe.InProgress, game.Outcome)
		assert.False(t, game.IsBotTurn())
	})

	t.Run("Human plays O", func(t *testing.T) {
		game, err := NewGame("123", tictactoe.DefaultSize, tictactoe.O)
		require.NoError(t, err)

		assert.Equal(t, tictactoe.X, game.BotMark)
		assert.True(t, game.IsBotTurn())
	})

	t.Run("Rejects an empty mark", func(t *testing.T) {
		_, err := NewGame("123", tictactoe.DefaultSize, tictactoe.Empty)
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game
		game, err := NewGame("123", tictactoe.DefaultSize, tictactoe.X)
		require.NoError(t, err)

		// When: X plays the centre
		err = game.MakeTurn(tictactoe.X, tictactoe.Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the mark is placed and the turn passes to O
		assert.Equal(t, tictactoe.X, game.Board.At(1, 1))
		assert.Equal(t, tictactoe.O, game.Turn)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		game, err := NewGame("123", tictactoe.DefaultSize, tictactoe.X)
		require.NoError(t, err)

		// When: O tries to move first
		err = game.MakeTurn(tictactoe.O, tictactoe.Move{Row: 0, Col: 0})

		// Then: ErrNotYourTurn is returned and the board stays empty
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, 0, game.Board.MovesPlayed())
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		game, err := NewGame("123", tictactoe.DefaultSize, tictactoe.X)
		require.NoError(t, err)
		require.NoError(t, game.MakeTurn(tictactoe.X, tictactoe.Move{Row: 0, Col: 0}))

		// When: O plays the same cell
		err = game.MakeTurn(tictactoe.O, tictactoe.Move{Row: 0, Col: 0})

		// Then: ErrInvalidMove is returned and O is still to move
		require.ErrorIs(t, err, tictactoe.ErrInvalidMove)
		assert.Equal(t, tictactoe.O, game.Turn)
	})

	t.Run("Error on Invalid Cell", func(t *testing.T) {
		game, err := NewGame("123", tictactoe.DefaultSize, tictactoe.X)
		require.NoError(t, err)

		err = game.MakeTurn(tictactoe.X, tictactoe.Move{Row: -1, Col: 0})
		require.ErrorIs(t, err, tictactoe.ErrInvalidMove)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move away from the top row
		game, err := NewGame("123", tictactoe.DefaultSize, tictactoe.X)
		require.NoError(t, err)
		for _, move := range []tictactoe.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}} {
			require.NoError(t, game.MakeTurn(game.Turn, move))
		}

		// When: X completes the row
		require.NoError(t, game.MakeTurn(tictactoe.X, tictactoe.Move{Row: 0, Col: 2}))

		// Then: the game is finished with X as the winner
		assert.True(t, game.IsFinished())
		assert.Equal(t, tictactoe.X, game.Winner)
		assert.Equal(t, tictactoe.XWins, game.Outcome)
		assert.Equal(t, tictactoe.Empty, game.Turn)

		// Then: no more moves are accepted
		err = game.MakeTurn(tictactoe.O, tictactoe.Move{Row: 2, Col: 2})
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_JSON(t *testing.T) {
	// Given: a game with one move played
	game, err := NewGame("123", tictactoe.DefaultSize, tictactoe.O)
	require.NoError(t, err)
	require.NoError(t, game.MakeTurn(tictactoe.X, tictactoe.Move{Row: 2, Col: 2}))

	// When: it round-trips through JSON
	data, err := json.Marshal(game)
	require.NoError(t, err)

	var decoded Game
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: the state is preserved
	assert.Equal(t, game.Board.Rows(), decoded.Board.Rows())
	assert.Equal(t, tictactoe.O, decoded.HumanMark)
	assert.Equal(t, tictactoe.O, decoded.Turn)
	assert.Equal(t, StatusOngoing, decoded.Status)
}

func TestRandomMark(t *testing.T) {
	for range 20 {
		mark := RandomMark()
		assert.Contains(t, []tictactoe.Cell{tictactoe.X, tictactoe.O}, mark)
	}
}
