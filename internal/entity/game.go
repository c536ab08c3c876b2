package entity

import (
	"errors"
	"fmt"

	"github.com/gridplay/tictactoe-engine/internal/apperror"
	"github.com/gridplay/tictactoe-engine/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	// Cell values. EmptyCell is the sentinel for an unplayed cell, PlayerX
	// and PlayerO are the two marker values. PlayerTie only ever appears in
	// the Winner field.
	EmptyCell = 0
	PlayerX   = 1
	PlayerO   = 2
	PlayerTie = -1

	DefaultBoardSize = 3
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string    `json:"id"`
	Size    int       `json:"size"`
	Board   []int     `json:"board"`
	Winner  int       `json:"winner,omitempty"`
	Status  string    `json:"status"`
	Turn    int       `json:"player_turn,omitempty"`
	Players []*Player `json:"players,omitempty"`
}

func NewGame(id string, size int) *Game {
	if size < 1 {
		size = DefaultBoardSize
	}

	return &Game{
		ID:     id,
		Size:   size,
		Board:  make([]int, size*size),
		Turn:   PlayerX,
		Status: StatusWaiting,
	}
}

// Grid rebuilds the engine board from the stored snapshot.
func (that *Game) Grid() (*engine.Board, error) {
	board, err := engine.FromCells(that.Size, EmptyCell, that.Board)
	if err != nil {
		return nil, fmt.Errorf("malformed board snapshot: %w", err)
	}

	return board, nil
}

// DetermineGameResult returns the winning marker, PlayerTie when the board
// is full with no winner, or EmptyCell while the game continues.
func (that *Game) DetermineGameResult() int {
	board, err := that.Grid()
	if err != nil {
		return EmptyCell
	}

	for _, marker := range []int{PlayerX, PlayerO} {
		if engine.DetectWin(board, marker).WonBy(marker) {
			return marker
		}
	}

	// the game will continue until all the cells are full
	if !board.Full() {
		return EmptyCell
	}

	return PlayerTie
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(marker int, move engine.Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != marker {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Grid()
	if err != nil {
		return err
	}

	if err = board.Apply(move, marker); err != nil {
		switch {
		case errors.Is(err, engine.ErrCellOccupied):
			return apperror.ErrCellOccupied
		case errors.Is(err, engine.ErrOutOfRange):
			return fmt.Errorf("%w: %d,%d", apperror.ErrInvalidCell, move.Row, move.Col)
		default:
			return fmt.Errorf("apply move: %w", err)
		}
	}

	that.Board = board.Cells()
	that.Turn = OpponentOf(marker)
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// BotPlayer returns the bot side of the game, if any.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

// OpponentOf returns the other player's marker.
func OpponentOf(marker int) int {
	if marker == PlayerX {
		return PlayerO
	}

	return PlayerX
}
