package engine

// Threat is a line that marker completes with a single move: size-1 cells
// hold the marker and exactly one cell is empty. Cell is that empty cell.
type Threat struct {
	Line Line
	Cell Move
}

// Threats returns every threat marker has on the board, in Lines order.
// The board is never mutated.
func Threats(board *Board, marker int) []Threat {
	var threats []Threat

	for _, line := range Lines(board.Size()) {
		if cell, ok := completingCell(board, line, marker); ok {
			threats = append(threats, Threat{Line: line, Cell: cell})
		}
	}

	return threats
}

// DetectThreat reports whether marker is one move from completing a line
// and returns that completing cell. When several threats exist the first
// one in Lines order wins; callers needing every threat use Threats. The
// returned move is meaningful only when the boolean is true.
func DetectThreat(board *Board, marker int) (Move, bool) {
	for _, line := range Lines(board.Size()) {
		if cell, ok := completingCell(board, line, marker); ok {
			return cell, true
		}
	}

	return Move{}, false
}

// completingCell counts marker and empty cells along the line and, when the
// line is one marker short of complete, returns its single empty cell.
func completingCell(board *Board, line Line, marker int) (Move, bool) {
	var empty Move
	emptyCount, markerCount := 0, 0

	for _, move := range line.Cells(board.Size()) {
		switch board.At(move.Row, move.Col) {
		case board.Empty():
			empty = move
			emptyCount++
		case marker:
			markerCount++
		}
	}

	if markerCount == board.Size()-1 && emptyCount == 1 {
		return empty, true
	}

	return Move{}, false
}
