package engine

// SelectMove picks the next move for own against opponent: block an
// opponent threat first, complete an own threat second, otherwise take the
// first empty cell in row-major order. It is a greedy one-ply heuristic and
// does not see forks or double threats. The boolean is false only when the
// board is full.
func SelectMove(board *Board, own, opponent int) (Move, bool) {
	if move, ok := DetectThreat(board, opponent); ok {
		return move, true
	}

	if move, ok := DetectThreat(board, own); ok {
		return move, true
	}

	return board.FirstEmpty()
}
