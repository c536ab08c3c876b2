package engine

import "strconv"

// LineKind identifies one of the four line categories on a square board.
type LineKind int

const (
	LineRow LineKind = iota
	LineColumn
	LineMainDiag
	LineAntiDiag
)

func (that LineKind) String() string {
	switch that {
	case LineRow:
		return "row"
	case LineColumn:
		return "column"
	case LineMainDiag:
		return "main diagonal"
	case LineAntiDiag:
		return "anti diagonal"
	default:
		return "unknown"
	}
}

// Line is a winnable cell sequence: a row or column with its index, or one
// of the two diagonals. Index is meaningful only for rows and columns.
type Line struct {
	Kind  LineKind
	Index int
}

func (that Line) String() string {
	switch that.Kind {
	case LineRow, LineColumn:
		return that.Kind.String() + " " + strconv.Itoa(that.Index)
	default:
		return that.Kind.String()
	}
}

// Cells returns the line's coordinates on a size x size board. The
// anti-diagonal runs (size-1, 0), ..., (0, size-1).
func (that Line) Cells(size int) []Move {
	cells := make([]Move, 0, size)

	for i := 0; i < size; i++ {
		switch that.Kind {
		case LineRow:
			cells = append(cells, Move{Row: that.Index, Col: i})
		case LineColumn:
			cells = append(cells, Move{Row: i, Col: that.Index})
		case LineMainDiag:
			cells = append(cells, Move{Row: i, Col: i})
		case LineAntiDiag:
			cells = append(cells, Move{Row: size - 1 - i, Col: i})
		}
	}

	return cells
}

// Lines enumerates every line of a size x size board: rows 0..size-1,
// columns 0..size-1, the main diagonal, the anti-diagonal. That is 2*size+2
// lines, and the fixed order is the tie-break order for first-match threat
// detection.
func Lines(size int) []Line {
	lines := make([]Line, 0, 2*size+2)

	for i := 0; i < size; i++ {
		lines = append(lines, Line{Kind: LineRow, Index: i})
	}
	for i := 0; i < size; i++ {
		lines = append(lines, Line{Kind: LineColumn, Index: i})
	}

	lines = append(lines, Line{Kind: LineMainDiag}, Line{Kind: LineAntiDiag})

	return lines
}
