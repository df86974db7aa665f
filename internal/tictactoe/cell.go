package tictactoe

import (
	"encoding/json"
	"fmt"
)

type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

const (
	markX     = "X"
	markO     = "O"
	emptyCell = ""
)

type Outcome string

const (
	InProgress Outcome = "in_progress"
	XWins      Outcome = "x_wins"
	OWins      Outcome = "o_wins"
	Draw       Outcome = "draw"
)

// Opponent returns the other mark; Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case X:
		return markX
	case O:
		return markO
	default:
		return emptyCell
	}
}

// ParseCell accepts "X", "O" and "" (empty).
func ParseCell(s string) (Cell, error) {
	switch s {
	case markX:
		return X, nil
	case markO:
		return O, nil
	case emptyCell:
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: unknown mark %q", ErrInvalidBoard, s)
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	cell, err := ParseCell(string(text))
	if err != nil {
		return err
	}

	*that = cell

	return nil
}

func (that Cell) valid() bool {
	return that == Empty || that == X || that == O
}

func (that Cell) symbol() string {
	if that == Empty {
		return "."
	}

	return that.String()
}

// MarshalJSON encodes the board as an array of rows of marks.
func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Rows())
}

// UnmarshalJSON decodes and validates an array of rows of marks.
func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Cell
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	board, err := NewBoardFromRows(rows)
	if err != nil {
		return err
	}

	*that = board

	return nil
}
