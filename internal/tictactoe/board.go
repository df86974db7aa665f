package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSize is the side length of the classic board.
const DefaultSize = 3

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidBoard = errors.New("invalid board")
)

// Move addresses a single cell of the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is an immutable N×N position. Every method that produces a new position
// returns a fresh value, so a Board can be shared between search branches freely.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard returns the all-empty starting position.
func NewBoard(size int) Board {
	if size < 1 {
		size = DefaultSize
	}

	return Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// NewBoardFromRows builds a position from explicit rows. The grid must be square and
// the marks must respect alternating play (X count minus O count is 0 or 1).
func NewBoardFromRows(rows [][]Cell) (Board, error) {
	size := len(rows)
	if size == 0 {
		return Board{}, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}

	cells := make([]Cell, 0, size*size)
	for i, row := range rows {
		if len(row) != size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, i, len(row), size)
		}

		for _, cell := range row {
			if !cell.valid() {
				return Board{}, fmt.Errorf("%w: unknown cell value %d", ErrInvalidBoard, uint8(cell))
			}
		}

		cells = append(cells, row...)
	}

	board := Board{size: size, cells: cells}

	xCount, oCount := board.countMarks()
	if diff := xCount - oCount; diff != 0 && diff != 1 {
		return Board{}, fmt.Errorf("%w: %d X marks against %d O marks", ErrInvalidBoard, xCount, oCount)
	}

	return board, nil
}

func (that Board) Size() int {
	return that.size
}

// At returns the cell at (row, col); coordinates outside the grid read as Empty.
func (that Board) At(row, col int) Cell {
	if !that.inBounds(row, col) {
		return Empty
	}

	return that.cells[row*that.size+col]
}

// Rows returns a copy of the grid.
func (that Board) Rows() [][]Cell {
	rows := make([][]Cell, that.size)
	for row := range rows {
		rows[row] = append([]Cell(nil), that.cells[row*that.size:(row+1)*that.size]...)
	}

	return rows
}

// MovesPlayed is the number of marks on the board.
func (that Board) MovesPlayed() int {
	xCount, oCount := that.countMarks()

	return xCount + oCount
}

// WhoseTurn returns X when both sides have placed the same number of marks, O otherwise.
func (that Board) WhoseTurn() Cell {
	xCount, oCount := that.countMarks()
	if xCount == oCount {
		return X
	}

	return O
}

// LegalMoves lists every empty cell in row-major order.
func (that Board) LegalMoves() []Move {
	moves := make([]Move, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == Empty {
			moves = append(moves, Move{Row: i / that.size, Col: i % that.size})
		}
	}

	return moves
}

// ApplyMove returns a new board with the mark of the side to move placed at move.
// The receiver is left untouched.
func (that Board) ApplyMove(move Move) (Board, error) {
	if !that.inBounds(move.Row, move.Col) {
		return Board{}, fmt.Errorf("%w: cell %s is outside the %dx%d grid", ErrInvalidMove, move, that.size, that.size)
	}

	idx := move.Row*that.size + move.Col
	if that.cells[idx] != Empty {
		return Board{}, fmt.Errorf("%w: cell %s is already occupied", ErrInvalidMove, move)
	}

	cells := make([]Cell, len(that.cells))
	copy(cells, that.cells)
	cells[idx] = that.WhoseTurn()

	return Board{size: that.size, cells: cells}, nil
}

// Winner returns the mark that fills a whole line, or Empty if there is none.
// Lines are scanned rows first, then columns, the main diagonal and the anti-diagonal.
func (that Board) Winner() Cell {
	n := that.size
	if n == 0 {
		return Empty
	}

	for row := 0; row < n; row++ {
		if mark := that.uniformLine(row*n, 1); mark != Empty {
			return mark
		}
	}

	for col := 0; col < n; col++ {
		if mark := that.uniformLine(col, n); mark != Empty {
			return mark
		}
	}

	if mark := that.uniformLine(0, n+1); mark != Empty {
		return mark
	}

	return that.uniformLine(n-1, n-1)
}

// IsTerminal reports whether somebody has won or no empty cell remains.
func (that Board) IsTerminal() bool {
	if that.Winner() != Empty {
		return true
	}

	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Utility scores a finished position from X's point of view: 1, -1 or 0.
func (that Board) Utility() int {
	switch that.Winner() {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

// Outcome derives the game result from the current position.
func (that Board) Outcome() Outcome {
	switch that.Winner() {
	case X:
		return XWins
	case O:
		return OWins
	}

	if that.IsTerminal() {
		return Draw
	}

	return InProgress
}

func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < that.size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}

		for col := 0; col < that.size; col++ {
			sb.WriteString(that.cells[row*that.size+col].symbol())
		}
	}

	return sb.String()
}

func (that Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that Board) countMarks() (int, int) {
	var xCount, oCount int

	for _, cell := range that.cells {
		switch cell {
		case X:
			xCount++
		case O:
			oCount++
		}
	}

	return xCount, oCount
}

// uniformLine walks size cells from start with the given stride and returns the
// shared mark, or Empty when the line is mixed or has a gap.
func (that Board) uniformLine(start, stride int) Cell {
	first := that.cells[start]
	if first == Empty {
		return Empty
	}

	for i := 1; i < that.size; i++ {
		if that.cells[start+i*stride] != first {
			return Empty
		}
	}

	return first
}
