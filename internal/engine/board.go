// Package engine holds the tic-tac-toe rules: the board model, win
// detection, threat detection and the heuristic move selector. It knows
// nothing about players, storage or transports and never mutates a board
// outside of Board.Apply.
package engine

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrOutOfRange    = errors.New("cell out of range")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrEmptyMarker   = errors.New("marker equals the empty sentinel")
	ErrBadDimensions = errors.New("cell count does not match board size")
)

// Move is a (row, col) coordinate on a board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a square grid of integer cells. Every cell holds either the
// empty sentinel or a player marker. A cell transitions empty to marker
// exactly once and never reverts.
type Board struct {
	size  int
	empty int
	cells []int
}

// NewBoard returns a size x size board with every cell set to the empty
// sentinel. It panics if size is not positive.
func NewBoard(size, empty int) *Board {
	if size < 1 {
		panic("engine: board size must be positive")
	}

	cells := make([]int, size*size)
	for i := range cells {
		cells[i] = empty
	}

	return &Board{size: size, empty: empty, cells: cells}
}

// FromCells builds a board from a row-major snapshot of cell values.
func FromCells(size, empty int, cells []int) (*Board, error) {
	if size < 1 || len(cells) != size*size {
		return nil, ErrBadDimensions
	}

	board := &Board{size: size, empty: empty, cells: make([]int, len(cells))}
	copy(board.cells, cells)

	return board, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Empty() int {
	return that.empty
}

// At returns the value of the cell at (row, col).
func (that *Board) At(row, col int) int {
	return that.cells[row*that.size+col]
}

// Cells returns a row-major copy of the grid.
func (that *Board) Cells() []int {
	snapshot := make([]int, len(that.cells))
	copy(snapshot, that.cells)

	return snapshot
}

// Contains reports whether the move refers to a cell on the board.
func (that *Board) Contains(move Move) bool {
	return move.Row >= 0 && move.Row < that.size && move.Col >= 0 && move.Col < that.size
}

// CellEmpty reports whether the cell at move holds the empty sentinel.
func (that *Board) CellEmpty(move Move) bool {
	return that.At(move.Row, move.Col) == that.empty
}

// Apply writes marker into the cell at move. It is the only mutation the
// board supports.
func (that *Board) Apply(move Move, marker int) error {
	if marker == that.empty {
		return ErrEmptyMarker
	}

	if !that.Contains(move) {
		return ErrOutOfRange
	}

	if !that.CellEmpty(move) {
		return ErrCellOccupied
	}

	that.cells[move.Row*that.size+move.Col] = marker

	return nil
}

// FirstEmpty returns the first empty cell in row-major order.
func (that *Board) FirstEmpty() (Move, bool) {
	for i, cell := range that.cells {
		if cell == that.empty {
			return Move{Row: i / that.size, Col: i % that.size}, true
		}
	}

	return Move{}, false
}

// Full reports whether no empty cells remain.
func (that *Board) Full() bool {
	_, ok := that.FirstEmpty()
	return !ok
}

// Values returns the cell values along a line, in the line's cell order.
func (that *Board) Values(line Line) []int {
	cells := line.Cells(that.size)

	values := make([]int, 0, len(cells))
	for _, move := range cells {
		values = append(values, that.At(move.Row, move.Col))
	}

	return values
}

// String renders the board one row per line, for console output.
func (that *Board) String() string {
	var sb strings.Builder

	for row := 0; row < that.size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < that.size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(that.At(row, col)))
		}
	}

	return sb.String()
}
