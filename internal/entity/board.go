package entity

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const CellsCount = BoardSize * BoardSize

// Board is the 3x3 grid. It is the only mutable part of a game.
type Board struct {
	cells [BoardSize][BoardSize]Mark
}

// NewBoard - creates a board with all cells empty.
func NewBoard() *Board {
	return &Board{}
}

// ParseBoard - builds a board from a row-major string of nine cells,
// where 'X' and 'O' are marks and '_' or ' ' is an empty cell.
func ParseBoard(cells string) (*Board, error) {
	if utf8.RuneCountInString(cells) != CellsCount {
		return nil, fmt.Errorf("%w: expected %d cells, got %q", apperror.ErrInvalidCells, CellsCount, cells)
	}

	board := NewBoard()

	i := 0
	for _, r := range cells {
		mark, err := parseMark(r)
		if err != nil {
			return nil, err
		}

		board.cells[i/BoardSize][i%BoardSize] = mark
		i++
	}

	return board, nil
}

func parseMark(r rune) (Mark, error) {
	switch r {
	case 'X':
		return PlayerX, nil
	case 'O':
		return PlayerO, nil
	case '_', ' ':
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: unexpected cell %q", apperror.ErrInvalidCells, r)
	}
}

// Place - puts a player mark into an empty cell. The board is left untouched on error.
func (that *Board) Place(c Coordinates, mark Mark) error {
	if mark != PlayerX && mark != PlayerO {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, uint8(mark))
	}

	if that.cells[c.row][c.col] != Empty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, c.row+1, c.col+1)
	}

	that.cells[c.row][c.col] = mark

	return nil
}

func (that *Board) CellAt(c Coordinates) Mark {
	return that.cells[c.row][c.col]
}

// AllCells - yields the nine cells in row-major order.
func (that *Board) AllCells() iter.Seq[Mark] {
	return func(yield func(Mark) bool) {
		for _, row := range that.cells {
			for _, cell := range row {
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// Rows - returns a copy of the grid.
func (that *Board) Rows() [BoardSize][BoardSize]Mark {
	return that.cells
}
