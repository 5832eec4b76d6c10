package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

const defaultArchiveLimit = 20

type moveChooser interface {
	ChooseCell(board engine.Board, mark, strategyName string) (int, error)
	Strategies() []string
}

type archiveRepo interface {
	ListRecent(ctx context.Context, limit int) ([]repository.GameRecord, error)
}

type handlers struct {
	logger  *slog.Logger
	engine  moveChooser
	archive archiveRepo
}

// NewRouter builds the HTTP API around the engine facade.
func NewRouter(logger *slog.Logger, eng moveChooser, archive archiveRepo) http.Handler {
	that := &handlers{
		logger:  logger.With("component", "rest"),
		engine:  eng,
		archive: archive,
	}

	router := chi.NewRouter()
	router.Get("/ping", that.handlePing)
	router.Route("/api", func(router chi.Router) {
		router.Get("/strategies", that.handleStrategies)
		router.Post("/move", that.handleMove)
		router.Get("/archive", that.handleArchive)
	})

	return router
}

type moveRequest struct {
	Board    engine.Board `json:"board"`
	Player   string       `json:"player"`
	Strategy string       `json:"strategy"`
}

type moveResponse struct {
	Cell int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) handlePing(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
	if _, err := writer.Write([]byte("pong")); err != nil {
		http.Error(writer, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) handleStrategies(writer http.ResponseWriter, _ *http.Request) {
	that.writeJSON(writer, http.StatusOK, map[string][]string{"strategies": that.engine.Strategies()})
}

// handleMove is the engine boundary: a board snapshot and a mark go in, a
// chosen cell comes out. No state is kept between calls.
func (that *handlers) handleMove(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handleMove")

	var moveReq moveRequest
	if err := json.NewDecoder(req.Body).Decode(&moveReq); err != nil {
		that.writeJSON(writer, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if moveReq.Player != engine.PlayerX && moveReq.Player != engine.PlayerO {
		that.writeJSON(writer, http.StatusBadRequest, errorResponse{Error: "player must be X or O"})
		return
	}

	cell, err := that.engine.ChooseCell(moveReq.Board, moveReq.Player, moveReq.Strategy)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrUnknownStrategy):
			that.writeJSON(writer, http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrNoLegalMoves):
			that.writeJSON(writer, http.StatusConflict, errorResponse{Error: err.Error()})
		default:
			log.Error("failed to choose a cell", "error", err)
			that.writeJSON(writer, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
		return
	}

	that.writeJSON(writer, http.StatusOK, moveResponse{Cell: cell})
}

func (that *handlers) handleArchive(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handleArchive")

	limit := defaultArchiveLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			that.writeJSON(writer, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	records, err := that.archive.ListRecent(req.Context(), limit)
	if err != nil {
		log.Error("failed to list archive", "error", err)
		that.writeJSON(writer, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	that.writeJSON(writer, http.StatusOK, map[string][]repository.GameRecord{"games": records})
}

func (that *handlers) writeJSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if err := json.NewEncoder(writer).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
