package entity

import (
	"slices"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoordinates(t *testing.T, row, col int) Coordinates {
	t.Helper()

	c, err := NewCoordinates(row, col)
	require.NoError(t, err)

	return c
}

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: all nine cells are empty
	cells := slices.Collect(board.AllCells())
	require.Len(t, cells, CellsCount)
	for _, cell := range cells {
		assert.Equal(t, Empty, cell)
	}
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places mark into an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()
		target := mustCoordinates(t, 1, 2)

		// When: X is placed at (1, 2)
		err := board.Place(target, PlayerX)

		// Then: only that cell changes
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board.CellAt(target))
		assert.Equal(t, [BoardSize][BoardSize]Mark{
			{Empty, Empty, Empty},
			{Empty, Empty, PlayerX},
			{Empty, Empty, Empty},
		}, board.Rows())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		for _, first := range Marks {
			for _, second := range Marks {
				// Given: a board with one occupied cell
				board := NewBoard()
				target := mustCoordinates(t, 0, 0)
				require.NoError(t, board.Place(target, first))
				before := board.Rows()

				// When: any mark is placed on the same cell
				err := board.Place(target, second)

				// Then: ErrCellOccupied is returned and the board is unchanged
				require.ErrorIs(t, err, apperror.ErrCellOccupied)
				assert.Equal(t, before, board.Rows())
			}
		}
	})
}

func TestBoard_PlaceRejectsNonPlayerMarks(t *testing.T) {
	for _, mark := range []Mark{Empty, Mark(7)} {
		// Given: an empty board
		board := NewBoard()
		target := mustCoordinates(t, 2, 0)

		// When: a non-player mark is placed
		err := board.Place(target, mark)

		// Then: ErrInvalidMark is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Equal(t, NewBoard().Rows(), board.Rows())
	}

	t.Run("Rejected empty mark keeps an occupied cell", func(t *testing.T) {
		board := NewBoard()
		target := mustCoordinates(t, 1, 1)
		require.NoError(t, board.Place(target, PlayerO))

		err := board.Place(target, Empty)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Equal(t, PlayerO, board.CellAt(target))
	})
}

func TestBoard_AllCells(t *testing.T) {
	t.Run("Yields cells in row-major order", func(t *testing.T) {
		// Given: a board with marks in the first and last cells
		board := NewBoard()
		require.NoError(t, board.Place(mustCoordinates(t, 0, 0), PlayerX))
		require.NoError(t, board.Place(mustCoordinates(t, 2, 2), PlayerO))

		// When: the cells are collected
		cells := slices.Collect(board.AllCells())

		// Then: they follow row-major order
		assert.Equal(t, []Mark{PlayerX, Empty, Empty, Empty, Empty, Empty, Empty, Empty, PlayerO}, cells)
	})

	t.Run("Sequence is restartable", func(t *testing.T) {
		// Given: a board and one sequence over it
		board := NewBoard()
		require.NoError(t, board.Place(mustCoordinates(t, 1, 1), PlayerX))
		seq := board.AllCells()

		// When: the sequence is consumed twice, the first time partially
		for range seq {
			break
		}
		cells := slices.Collect(seq)

		// Then: the second pass sees all nine cells
		assert.Len(t, cells, CellsCount)
		assert.Equal(t, PlayerX, cells[4])
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses marks and empty cells", func(t *testing.T) {
		// When: a cells string is parsed
		board, err := ParseBoard("XO_ X O_X")

		// Then: the grid matches the string in row-major order
		require.NoError(t, err)
		assert.Equal(t, [BoardSize][BoardSize]Mark{
			{PlayerX, PlayerO, Empty},
			{Empty, PlayerX, Empty},
			{PlayerO, Empty, PlayerX},
		}, board.Rows())
	})

	t.Run("Error on wrong length", func(t *testing.T) {
		_, err := ParseBoard("XOX")

		require.ErrorIs(t, err, apperror.ErrInvalidCells)
	})

	t.Run("Error on unknown cell", func(t *testing.T) {
		_, err := ParseBoard("XOXOXOXOZ")

		require.ErrorIs(t, err, apperror.ErrInvalidCells)
	})
}

func TestBoardLines(t *testing.T) {
	board, err := ParseBoard("XO__X___O")
	require.NoError(t, err)

	assert.Equal(t, [BoardSize]string{"XO_", "_X_", "__O"}, BoardLines(board))
}
