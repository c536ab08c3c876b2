package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectWin(t *testing.T) {
	t.Run("Detects a row win with its index", func(t *testing.T) {
		// Given: a board where marker 1 completes row 1
		board := boardOf(t, [][]int{
			{2, 2, 0},
			{1, 1, 1},
			{0, 0, 2},
		})

		// When: scanning for marker 1
		result := DetectWin(board, 1)

		// Then: marker 1 is the sole winner on row 1
		require.True(t, result.HasWinner())
		assert.Equal(t, []int{1}, result.Winners)
		assert.Equal(t, Line{Kind: LineRow, Index: 1}, result.Line)
	})

	t.Run("Detects a column win with its index", func(t *testing.T) {
		board := boardOf(t, [][]int{
			{1, 2, 0},
			{1, 2, 0},
			{0, 2, 1},
		})

		result := DetectWin(board, 2)

		require.True(t, result.HasWinner())
		assert.Equal(t, []int{2}, result.Winners)
		assert.Equal(t, Line{Kind: LineColumn, Index: 1}, result.Line)
	})

	t.Run("Detects a main diagonal win", func(t *testing.T) {
		// Given: marker 1 holds (0,0), (1,1), (2,2)
		board := boardOf(t, [][]int{
			{1, 2, 2},
			{2, 1, 2},
			{2, 2, 1},
		})

		result := DetectWin(board, 1)

		require.True(t, result.HasWinner())
		assert.Equal(t, []int{1}, result.Winners)
		assert.Equal(t, Line{Kind: LineMainDiag}, result.Line)
		assert.True(t, result.WonBy(1))
	})

	t.Run("Detects an anti diagonal win", func(t *testing.T) {
		board := boardOf(t, [][]int{
			{2, 1, 1},
			{2, 1, 2},
			{1, 2, 0},
		})

		result := DetectWin(board, 1)

		require.True(t, result.HasWinner())
		assert.Equal(t, Line{Kind: LineAntiDiag}, result.Line)
	})

	t.Run("Returns an empty winning set when no line is complete", func(t *testing.T) {
		// Given: a full board of alternating markers with no complete line
		board := boardOf(t, [][]int{
			{1, 2, 1},
			{1, 2, 2},
			{2, 1, 1},
		})

		// Then: neither marker wins
		assert.False(t, DetectWin(board, 1).HasWinner())
		assert.False(t, DetectWin(board, 2).HasWinner())
	})

	t.Run("Ignores a completed line of the other marker", func(t *testing.T) {
		board := boardOf(t, [][]int{
			{2, 2, 2},
			{1, 1, 0},
			{0, 0, 0},
		})

		result := DetectWin(board, 1)

		assert.False(t, result.HasWinner())
		assert.False(t, result.WonBy(1))
	})

	t.Run("Folds simultaneous wins into one set with the last line descriptor", func(t *testing.T) {
		// Given: marker 1 completes row 0 and the main diagonal at once
		board := boardOf(t, [][]int{
			{1, 1, 1},
			{2, 1, 2},
			{2, 0, 1},
		})

		result := DetectWin(board, 1)

		// Then: the winning set still has one element and the diagonal, being
		// checked after rows and columns, supplies the descriptor
		require.Equal(t, []int{1}, result.Winners)
		assert.Equal(t, Line{Kind: LineMainDiag}, result.Line)
	})

	t.Run("Reports a win only when the marker fills a whole line", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(3, 0)

		// Then: an all-sentinel line is not a win for any marker
		assert.False(t, DetectWin(board, 1).HasWinner())
	})
}
