package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type gameUseCase interface {
	CreateGame(ctx context.Context, humanMark tictactoe.Cell) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, move tictactoe.Move) (*entity.Game, error)
	Hint(ctx context.Context, id string) (search.Result, error)
	DeleteGame(ctx context.Context, id string) error
}

type createGameRequest struct {
	Mark tictactoe.Cell `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	games  gameUseCase
}

// NewHandler routes the ping endpoint and the game API.
func NewHandler(logger *slog.Logger, games gameUseCase) http.Handler {
	that := &handlers{
		logger: logger.With("component", "rest"),
		games:  games,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)
	mux.HandleFunc("POST /games", that.createGame)
	mux.HandleFunc("GET /games/{id}", that.getGame)
	mux.HandleFunc("DELETE /games/{id}", that.deleteGame)
	mux.HandleFunc("POST /games/{id}/moves", that.makeTurn)
	mux.HandleFunc("GET /games/{id}/hint", that.hint)

	return mux
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	// an empty body lets the server pick the mark
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.games.CreateGame(r.Context(), req.Mark)
	if err != nil {
		that.writeError(w, "createGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var move tictactoe.Move
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.games.MakeTurn(r.Context(), r.PathValue("id"), move)
	if err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) hint(w http.ResponseWriter, r *http.Request) {
	result, err := that.games.Hint(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "hint", err)
		return
	}

	that.writeJSON(w, http.StatusOK, result)
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, "deleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, tictactoe.ErrInvalidMove), errors.Is(err, apperror.ErrInvalidMark):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrNotYourTurn):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: "Internal Server Error"})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
