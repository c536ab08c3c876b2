package engine

// WinResult reports the outcome of a win scan for one marker. Winners is a
// set of marker values holding a completed line; on a well-formed board it
// has at most one element. Line describes the last completed line found, in
// the scan order of DetectWin, and is meaningful only when HasWinner.
type WinResult struct {
	Winners []int
	Line    Line
}

func (that WinResult) HasWinner() bool {
	return len(that.Winners) > 0
}

// WonBy reports whether marker is in the winning set.
func (that WinResult) WonBy(marker int) bool {
	for _, winner := range that.Winners {
		if winner == marker {
			return true
		}
	}

	return false
}

// DetectWin reports whether marker holds a completed line on the board.
// For each index it checks the row then the column, then the main diagonal,
// then the anti-diagonal. A board may complete several lines at once; all
// winners fold into one set and the last line checked wins the descriptor.
// The board is never mutated.
func DetectWin(board *Board, marker int) WinResult {
	var result WinResult

	for idx := 0; idx < board.Size(); idx++ {
		if uniform(board.Values(Line{Kind: LineRow, Index: idx}), marker) {
			result.record(marker, Line{Kind: LineRow, Index: idx})
		}
		if uniform(board.Values(Line{Kind: LineColumn, Index: idx}), marker) {
			result.record(marker, Line{Kind: LineColumn, Index: idx})
		}
	}

	if uniform(board.Values(Line{Kind: LineMainDiag}), marker) {
		result.record(marker, Line{Kind: LineMainDiag})
	}

	if uniform(board.Values(Line{Kind: LineAntiDiag}), marker) {
		result.record(marker, Line{Kind: LineAntiDiag})
	}

	return result
}

func (that *WinResult) record(marker int, line Line) {
	if !that.WonBy(marker) {
		that.Winners = append(that.Winners, marker)
	}

	that.Line = line
}

// uniform reports whether every value equals marker, i.e. the distinct
// value set of the line is exactly {marker}.
func uniform(values []int, marker int) bool {
	for _, value := range values {
		if value != marker {
			return false
		}
	}

	return len(values) > 0
}
