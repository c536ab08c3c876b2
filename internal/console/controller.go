// Package console runs a single human-versus-computer game on a terminal.
// It owns the board for the lifetime of the game and is the only place a
// move is applied; the engine detectors only ever read it.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gridplay/tictactoe-engine/internal/engine"
)

const (
	emptyCell      = 0
	computerMarker = 1
	humanMarker    = 2
)

var (
	ErrInputClosed = errors.New("input closed before the game ended")
	ErrNoMovesLeft = errors.New("no moves left on an unfinished board")
)

// Controller alternates computer and human turns until a win or a full
// board. The computer plays marker 1 and moves first.
type Controller struct {
	in   *bufio.Scanner
	out  io.Writer
	size int
}

func New(in io.Reader, out io.Writer, size int) *Controller {
	if size < 1 {
		size = 3
	}

	return &Controller{
		in:   bufio.NewScanner(in),
		out:  out,
		size: size,
	}
}

// Run plays one full game and announces the outcome. It returns an error
// only when the input ends mid-game or the context is canceled.
func (that *Controller) Run(ctx context.Context) error {
	board := engine.NewBoard(that.size, emptyCell)

	that.printBoard(board)

	winner := emptyCell

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		over, result, err := that.computerTurn(board)
		if err != nil {
			return err
		}
		if over {
			winner = result
			break
		}

		over, result, err = that.humanTurn(board)
		if err != nil {
			return err
		}
		if over {
			winner = result
			break
		}
	}

	if winner != emptyCell {
		fmt.Fprintf(that.out, "Player %d has won!\n", winner)
	} else {
		fmt.Fprintln(that.out, "Tie!")
	}

	return nil
}

func (that *Controller) computerTurn(board *engine.Board) (bool, int, error) {
	fmt.Fprintf(that.out, "Computer (player %d) makes a move:\n", computerMarker)

	move, ok := engine.SelectMove(board, computerMarker, humanMarker)
	if !ok {
		return false, emptyCell, ErrNoMovesLeft
	}

	if err := board.Apply(move, computerMarker); err != nil {
		return false, emptyCell, fmt.Errorf("computer move: %w", err)
	}

	that.printBoard(board)

	over, result := gameOver(board, computerMarker)

	return over, result, nil
}

func (that *Controller) humanTurn(board *engine.Board) (bool, int, error) {
	move, err := that.readMove(board)
	if err != nil {
		return false, emptyCell, err
	}

	if err = board.Apply(move, humanMarker); err != nil {
		return false, emptyCell, fmt.Errorf("human move: %w", err)
	}

	that.printBoard(board)

	over, result := gameOver(board, humanMarker)

	return over, result, nil
}

// readMove prompts until the human supplies a "row,col" pair naming an
// empty cell on the board. There is no bound on retries.
func (that *Controller) readMove(board *engine.Board) (engine.Move, error) {
	for {
		fmt.Fprintf(that.out, "player %d, enter position (row,col): ", humanMarker)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return engine.Move{}, fmt.Errorf("read move: %w", err)
			}

			return engine.Move{}, ErrInputClosed
		}

		move, err := parseMove(that.in.Text())
		if err != nil {
			fmt.Fprintln(that.out, "Invalid input, expected two comma-separated numbers.")
			continue
		}

		if !board.Contains(move) {
			fmt.Fprintln(that.out, "Invalid input given, position is off the board.")
			continue
		}

		if !board.CellEmpty(move) {
			fmt.Fprintln(that.out, "Invalid input given, position already taken.")
			continue
		}

		return move, nil
	}
}

func parseMove(input string) (engine.Move, error) {
	parts := strings.SplitN(input, ",", 2)
	if len(parts) != 2 {
		return engine.Move{}, fmt.Errorf("expected row,col, got %q", input)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return engine.Move{}, fmt.Errorf("bad row: %w", err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return engine.Move{}, fmt.Errorf("bad col: %w", err)
	}

	return engine.Move{Row: row, Col: col}, nil
}

// gameOver checks the board after marker moved: the marker may have won,
// or the board may have filled into a tie.
func gameOver(board *engine.Board, marker int) (bool, int) {
	if engine.DetectWin(board, marker).WonBy(marker) {
		return true, marker
	}

	if board.Full() {
		return true, emptyCell
	}

	return false, emptyCell
}

func (that *Controller) printBoard(board *engine.Board) {
	fmt.Fprintln(that.out, board.String())
}
