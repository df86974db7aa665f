package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) error
	Suggest(board tictactoe.Board) (search.Result, error)
}

type botService struct {
	logger *slog.Logger
}

// NewBotService returns a bot that always plays the optimal move.
func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	result, err := that.Suggest(game.Board)
	if err != nil {
		return err
	}

	if err = game.MakeTurn(game.BotMark, result.Move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot moved",
		"gameID", game.ID,
		"move", result.Move.String(),
		"value", result.Value,
		"visited", result.Visited,
	)

	return nil
}

func (that *botService) Suggest(board tictactoe.Board) (search.Result, error) {
	result, ok := search.Analyze(board)
	if !ok {
		return search.Result{}, apperror.ErrNoAvailableMove
	}

	return result, nil
}
