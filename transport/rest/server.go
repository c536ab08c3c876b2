package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gridplay/tictactoe-engine/internal/engine"
	"github.com/gridplay/tictactoe-engine/internal/entity"
)

// gamePlay is the slice of the gameplay service the transport needs.
type gamePlay interface {
	CreateGameWithBot(ctx context.Context, playerID string, size int) (*entity.Game, error)
	GameState(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, move engine.Move) (*entity.Game, error)
}

type Server struct {
	logger   *slog.Logger
	gamePlay gamePlay
}

func New(logger *slog.Logger, gamePlay gamePlay) *Server {
	return &Server{
		logger:   logger,
		gamePlay: gamePlay,
	}
}

// Handler builds the route table. Split from Start so tests can drive it
// through httptest.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.handlePing)
	mux.HandleFunc("POST /api/games", that.handleCreateGame)
	mux.HandleFunc("GET /api/games/{id}", that.handleGetGame)
	mux.HandleFunc("POST /api/games/{id}/turn", that.handleMakeTurn)

	return mux
}

// Start - starts the HTTP server.
func (that *Server) Start(port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
