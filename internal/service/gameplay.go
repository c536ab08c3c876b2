package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gridplay/tictactoe-engine/internal/engine"
	"github.com/gridplay/tictactoe-engine/internal/entity"
)

type GamePlayService interface {
	CreateGameWithBot(ctx context.Context, playerID string, size int) (*entity.Game, error)
	GameState(ctx context.Context, gameID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, move engine.Move) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService

	defaultBoardSize int
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService, defaultBoardSize int) GamePlayService {
	if defaultBoardSize < 1 {
		defaultBoardSize = entity.DefaultBoardSize
	}

	return &gamePlayService{
		logger:           logger,
		playerService:    playerService,
		gameService:      gameService,
		botService:       botService,
		defaultBoardSize: defaultBoardSize,
	}
}

// CreateGameWithBot starts a game between playerID and the computer. The
// human plays X and moves first. An empty playerID creates a new player; a
// player already bound to a game gets that game back instead of a new one.
func (that *gamePlayService) CreateGameWithBot(ctx context.Context, playerID string, size int) (*entity.Game, error) {
	player, err := that.getOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID != "" {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to get current game: %w", err)
		}

		return game, nil
	}

	if size < 1 {
		size = that.defaultBoardSize
	}

	game, err := that.gameService.CreateGame(ctx, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	player.GameID = game.ID
	player.Marker = entity.PlayerX
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	botPlayer := &entity.Player{
		ID:     "bot-" + uuid.NewString()[:8],
		Marker: entity.PlayerO,
		GameID: game.ID,
		Bot:    true,
	}

	game.Players = []*entity.Player{player, botPlayer}
	game.Status = entity.StatusOngoing
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GameState(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn applies the human move and, while the game stays open, answers
// with the bot's move in the same call. A finished game is cleaned up and
// returned in its final state.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, move engine.Move) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if err = game.MakeTurn(player.Marker, move); err != nil {
		return nil, err
	}

	if game.IsOngoing() && game.BotPlayer() != nil && game.Turn == game.BotPlayer().Marker {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.cleanupGame(ctx, game)
	}

	return game, nil
}

// cleanupGame removes a finished game and unbinds its human players.
func (that *gamePlayService) cleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame")

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.Marker = entity.EmptyCell
		player.GameID = ""

		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update player", "error", err)
		}
	}

	log.Info("game cleaned up", "game_id", game.ID, "winner", game.Winner)
}

func (that *gamePlayService) getOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player, err := that.playerService.CreatePlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}
