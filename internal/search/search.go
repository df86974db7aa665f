// Package search picks optimal moves by exhaustive minimax with alpha-beta pruning.
// Values are always from X's point of view: X maximizes, O minimizes.
package search

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// Result is the outcome of a root search.
type Result struct {
	Move    tictactoe.Move `json:"move"`
	Value   float64        `json:"value"`
	Visited int            `json:"visited"`
}

// BestMove returns the optimal move for the side to move, or false when the board is terminal.
func BestMove(board tictactoe.Board) (tictactoe.Move, bool) {
	result, ok := Analyze(board)

	return result.Move, ok
}

// Analyze runs the search and also reports the game value under optimal play and the
// number of positions visited. Among equally valued moves the first one in LegalMoves
// order is kept.
func Analyze(board tictactoe.Board) (Result, bool) {
	if board.IsTerminal() {
		return Result{}, false
	}

	var s searcher
	s.visited++

	alpha, beta := math.Inf(-1), math.Inf(1)

	var result Result
	if board.WhoseTurn() == tictactoe.X {
		result.Value = math.Inf(-1)
		for _, move := range board.LegalMoves() {
			value := s.minValue(child(board, move), alpha, beta)
			if value > result.Value {
				result.Value, result.Move = value, move
			}
			alpha = math.Max(alpha, result.Value)
		}
	} else {
		result.Value = math.Inf(1)
		for _, move := range board.LegalMoves() {
			value := s.maxValue(child(board, move), alpha, beta)
			if value < result.Value {
				result.Value, result.Move = value, move
			}
			beta = math.Min(beta, result.Value)
		}
	}

	result.Visited = s.visited

	return result, true
}

// searcher carries per-call statistics; the alpha-beta window is passed explicitly.
type searcher struct {
	visited int
}

func (that *searcher) maxValue(board tictactoe.Board, alpha, beta float64) float64 {
	that.visited++

	if board.IsTerminal() {
		return float64(board.Utility())
	}

	best := math.Inf(-1)
	for _, move := range board.LegalMoves() {
		best = math.Max(best, that.minValue(child(board, move), alpha, beta))
		if best >= beta {
			return best
		}
		alpha = math.Max(alpha, best)
	}

	return best
}

func (that *searcher) minValue(board tictactoe.Board, alpha, beta float64) float64 {
	that.visited++

	if board.IsTerminal() {
		return float64(board.Utility())
	}

	best := math.Inf(1)
	for _, move := range board.LegalMoves() {
		best = math.Min(best, that.maxValue(child(board, move), alpha, beta))
		if best <= alpha {
			return best
		}
		beta = math.Min(beta, best)
	}

	return best
}

// child plays a move taken from board.LegalMoves, which cannot fail.
func child(board tictactoe.Board, move tictactoe.Move) tictactoe.Board {
	next, err := board.ApplyMove(move)
	if err != nil {
		panic(err)
	}

	return next
}
