package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gridplay/tictactoe-engine/internal/apperror"
	"github.com/gridplay/tictactoe-engine/internal/engine"
)

type createGameRequest struct {
	PlayerID string `json:"player_id,omitempty"`
	Size     int    `json:"size,omitempty"`
}

type turnRequest struct {
	PlayerID string `json:"player_id"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleCreateGame")

	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := that.gamePlay.CreateGameWithBot(r.Context(), req.PlayerID, req.Size)
	if err != nil {
		log.Error("failed to create game", "error", err)
		that.writeErrorFrom(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleGetGame")

	game, err := that.gamePlay.GameState(r.Context(), r.PathValue("id"))
	if err != nil {
		log.Error("failed to get game", "error", err)
		that.writeErrorFrom(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleMakeTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleMakeTurn")

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.PlayerID == "" {
		that.writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}

	game, err := that.gamePlay.MakeTurn(r.Context(), req.PlayerID, engine.Move{Row: req.Row, Col: req.Col})
	if err != nil {
		log.Error("failed to make turn", "error", err, "player_id", req.PlayerID)
		that.writeErrorFrom(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

// writeErrorFrom maps service errors onto HTTP statuses.
func (that *Server) writeErrorFrom(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound), errors.Is(err, apperror.ErrPlayerNotFound):
		that.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperror.ErrInvalidCell):
		that.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotStarted):
		that.writeError(w, http.StatusConflict, err.Error())
	default:
		that.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (that *Server) writeError(w http.ResponseWriter, status int, message string) {
	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
