package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) error
	Suggest(board tictactoe.Board) (search.Result, error)
}

type GameManager struct {
	logger    *slog.Logger
	boardSize int

	gameRepo gameRepo
	bot      botService
}

func NewGameManager(logger *slog.Logger, boardSize int, gameRepo gameRepo, bot botService) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		boardSize: boardSize,

		gameRepo: gameRepo,
		bot:      bot,
	}
}

// CreateGame starts a game against the bot. An Empty mark lets the server pick one at
// random; when the bot plays X it opens before the game is returned.
func (that *GameManager) CreateGame(ctx context.Context, humanMark tictactoe.Cell) (*entity.Game, error) {
	if humanMark == tictactoe.Empty {
		humanMark = entity.RandomMark()
	}

	game, err := entity.NewGame(pkg.GenerateGameID(), that.boardSize, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "humanMark", game.HumanMark.String())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn plays the human move and, unless that ended the game, the bot's reply.
// A rejected move returns the unchanged game together with the error.
func (that *GameManager) MakeTurn(ctx context.Context, id string, move tictactoe.Move) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(game.HumanMark, move); err != nil {
		if errors.Is(err, tictactoe.ErrInvalidMove) {
			log.Debug("rejected move", "move", move.String(), "error", err)
		}

		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "outcome", string(game.Outcome))
	}

	return game, nil
}

// Hint returns the optimal move for whoever is to move, with its value from X's point of view.
func (that *GameManager) Hint(ctx context.Context, id string) (search.Result, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return search.Result{}, err
	}

	if game.IsFinished() {
		return search.Result{}, apperror.ErrGameFinished
	}

	result, err := that.bot.Suggest(game.Board)
	if err != nil {
		return search.Result{}, fmt.Errorf("failed to suggest move: %w", err)
	}

	return result, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}
