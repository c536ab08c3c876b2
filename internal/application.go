package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridplay/tictactoe-engine/internal/config"
	"github.com/gridplay/tictactoe-engine/internal/console"
	"github.com/gridplay/tictactoe-engine/internal/repository"
	"github.com/gridplay/tictactoe-engine/internal/repository/storage"
	"github.com/gridplay/tictactoe-engine/internal/service"
	"github.com/gridplay/tictactoe-engine/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application. By default it plays one console game
// against the computer; with server.enabled it serves the REST API backed
// by Redis instead.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if !conf.Server.Enabled {
		return runConsoleGame(ctx, conf)
	}

	return runServer(ctx, logger, conf)
}

// runConsoleGame plays a single human-versus-computer game on the terminal.
func runConsoleGame(ctx context.Context, conf *config.Config) error {
	controller := console.New(os.Stdin, os.Stdout, conf.Game.BoardSize)

	if err := controller.Run(ctx); err != nil {
		return fmt.Errorf("console game failed: %w", err)
	}

	return nil
}

func runServer(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage.Client)
	gameRepo := repository.NewGameRepository(redisStorage.Client)

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService()
	gamePlayService := service.NewGamePlayService(logger, playerService, gameService, botService, conf.Game.BoardSize)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.Server.HTTPPort)
		restServer := rest.New(logger, gamePlayService)
		if httpErr := restServer.Start(conf.Server.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
