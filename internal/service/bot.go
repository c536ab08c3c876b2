package service

import (
	"errors"
	"fmt"

	"github.com/gridplay/tictactoe-engine/internal/engine"
	"github.com/gridplay/tictactoe-engine/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn plays the bot's side: block the opponent's threat, complete an
// own threat, otherwise take the first empty cell.
func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	board, err := game.Grid()
	if err != nil {
		return fmt.Errorf("bot failed to read board: %w", err)
	}

	move, ok := engine.SelectMove(board, botPlayer.Marker, entity.OpponentOf(botPlayer.Marker))
	if !ok {
		return ErrNoAvailableMoves
	}

	if err = game.MakeTurn(botPlayer.Marker, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
