package entity

import (
	"testing"

	"github.com/gridplay/tictactoe-engine/internal/apperror"
	"github.com/gridplay/tictactoe-engine/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it should report finished
		assert.True(t, game.IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.True(t, game.IsOngoing())
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.True(t, game.IsWaiting())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestGame_DetermineGameResult(t *testing.T) {
	t.Run("Returns PlayerX when player X completes a row", func(t *testing.T) {
		// Given: a game where player X holds row 0
		game := NewGame("123", 3)
		game.Board = []int{
			PlayerX, PlayerX, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
			PlayerO, EmptyCell, EmptyCell,
		}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerX
		assert.Equal(t, PlayerX, result)
	})

	t.Run("Returns PlayerO when player O completes a diagonal", func(t *testing.T) {
		game := NewGame("123", 3)
		game.Board = []int{
			PlayerO, PlayerX, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
			PlayerX, EmptyCell, PlayerO,
		}

		assert.Equal(t, PlayerO, game.DetermineGameResult())
	})

	t.Run("Returns PlayerTie when the board fills with no winner", func(t *testing.T) {
		game := NewGame("123", 3)
		game.Board = []int{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		assert.Equal(t, PlayerTie, game.DetermineGameResult())
	})

	t.Run("Returns EmptyCell while the game is ongoing", func(t *testing.T) {
		game := NewGame("123", 3)
		game.Board = []int{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		}

		assert.Equal(t, EmptyCell, game.DetermineGameResult())
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Finishes the game when player X wins", func(t *testing.T) {
		game := NewGame("123", 3)
		game.Status = StatusOngoing
		game.Turn = PlayerO
		game.Board = []int{
			PlayerX, PlayerX, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
			PlayerO, EmptyCell, EmptyCell,
		}

		game.UpdateGameState()

		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Finishes the game with a tie", func(t *testing.T) {
		game := NewGame("123", 3)
		game.Status = StatusOngoing
		game.Turn = PlayerX
		game.Board = []int{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		game.UpdateGameState()

		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
	})

	t.Run("Keeps the game ongoing when no line is complete", func(t *testing.T) {
		game := NewGame("123", 3)
		game.Status = StatusOngoing
		game.Turn = PlayerO
		game.Board = []int{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		game.UpdateGameState()

		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, EmptyCell, game.Winner)
		assert.Equal(t, PlayerO, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful turn switches the player", func(t *testing.T) {
		// Given: a fresh ongoing game
		game := NewGame("123", 3)
		game.Status = StatusOngoing

		// When: player X takes (0,0)
		err := game.MakeTurn(PlayerX, engine.Move{Row: 0, Col: 0})

		// Then: the cell is marked and the turn passes to O
		require.NoError(t, err)
		assert.Equal(t, PlayerX, game.Board[0])
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Rejects a turn out of order", func(t *testing.T) {
		game := NewGame("123", 3)
		game.Status = StatusOngoing

		err := game.MakeTurn(PlayerO, engine.Move{Row: 0, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		game := NewGame("123", 3)
		game.Status = StatusOngoing
		require.NoError(t, game.MakeTurn(PlayerX, engine.Move{Row: 1, Col: 1}))

		err := game.MakeTurn(PlayerO, engine.Move{Row: 1, Col: 1})

		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Rejects a cell off the board", func(t *testing.T) {
		game := NewGame("123", 3)
		game.Status = StatusOngoing

		err := game.MakeTurn(PlayerX, engine.Move{Row: 3, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Rejects a turn after the game finished", func(t *testing.T) {
		game := NewGame("123", 3)
		game.Status = StatusFinished

		err := game.MakeTurn(PlayerX, engine.Move{Row: 0, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("A winning turn finishes the game", func(t *testing.T) {
		// Given: player X one move from completing column 0
		game := NewGame("123", 3)
		game.Status = StatusOngoing
		game.Board = []int{
			PlayerX, PlayerO, EmptyCell,
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: player X completes the column
		err := game.MakeTurn(PlayerX, engine.Move{Row: 2, Col: 0})

		// Then: the game finishes with X as winner
		require.NoError(t, err)
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})
}

func TestOpponentOf(t *testing.T) {
	assert.Equal(t, PlayerO, OpponentOf(PlayerX))
	assert.Equal(t, PlayerX, OpponentOf(PlayerO))
}
