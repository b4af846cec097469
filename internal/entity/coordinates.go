package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const BoardSize = 3

// Coordinates addresses one cell of the board. The zero value is (0, 0).
type Coordinates struct {
	row int
	col int
}

// NewCoordinates - validates a 0-based row and column.
func NewCoordinates(row, col int) (Coordinates, error) {
	if !inBounds(row) || !inBounds(col) {
		return Coordinates{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return Coordinates{row: row, col: col}, nil
}

// CoordinatesFromInput - translates 1-based operator input into Coordinates.
func CoordinatesFromInput(row, col int) (Coordinates, error) {
	return NewCoordinates(row-1, col-1)
}

func (that Coordinates) Row() int {
	return that.row
}

func (that Coordinates) Col() int {
	return that.col
}

func inBounds(v int) bool {
	return v >= 0 && v < BoardSize
}
