package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrGameNotFound    = errors.New("game not found")
	ErrInvalidMark     = errors.New("mark must be X or O")
	ErrNoAvailableMove = errors.New("no available moves")
)
