package entity

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is a human versus engine session. Board is the only source of truth; the
// remaining fields are derived from it by UpdateGameState.
type Game struct {
	ID        string            `json:"id"`
	Board     tictactoe.Board   `json:"board"`
	HumanMark tictactoe.Cell    `json:"human_mark"`
	BotMark   tictactoe.Cell    `json:"bot_mark"`
	Turn      tictactoe.Cell    `json:"player_turn"`
	Winner    tictactoe.Cell    `json:"winner"`
	Outcome   tictactoe.Outcome `json:"outcome"`
	Status    string            `json:"status"`
}

func NewGame(id string, size int, humanMark tictactoe.Cell) (*Game, error) {
	if humanMark != tictactoe.X && humanMark != tictactoe.O {
		return nil, fmt.Errorf("%w: got %q", apperror.ErrInvalidMark, humanMark)
	}

	game := &Game{
		ID:        id,
		Board:     tictactoe.NewBoard(size),
		HumanMark: humanMark,
		BotMark:   humanMark.Opponent(),
	}
	game.UpdateGameState()

	return game, nil
}

func (that *Game) UpdateGameState() {
	that.Winner = that.Board.Winner()
	that.Outcome = that.Board.Outcome()

	// the game continues until a line is complete or the board is full
	if that.Outcome == tictactoe.InProgress {
		that.Status = StatusOngoing
		that.Turn = that.Board.WhoseTurn()

		return
	}

	that.Status = StatusFinished
	that.Turn = tictactoe.Empty
}

func (that *Game) MakeTurn(mark tictactoe.Cell, move tictactoe.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Board.WhoseTurn() != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.ApplyMove(move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

// RandomMark picks X or O with equal probability.
func RandomMark() tictactoe.Cell {
	if frand.Intn(2) == 0 {
		return tictactoe.X
	}
	return tictactoe.O
}
