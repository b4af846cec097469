// Package tictactoe classifies boards. Every function here is pure and total:
// any 3x3 board, including one that no legal game could produce, gets a status.
package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const LinesCount = 2*entity.BoardSize + 2

type Line [entity.BoardSize]entity.Mark

// Lines - returns the three rows, the three columns, then the left and right diagonals.
func Lines(board *entity.Board) [LinesCount]Line {
	var lines [LinesCount]Line

	rows := board.Rows()
	last := entity.BoardSize - 1

	for i := range entity.BoardSize {
		lines[i] = rows[i]
		for j := range entity.BoardSize {
			lines[entity.BoardSize+i][j] = rows[j][i]
		}
		lines[2*entity.BoardSize][i] = rows[i][i]
		lines[2*entity.BoardSize+1][i] = rows[i][last-i]
	}

	return lines
}

func isLineOf(mark entity.Mark, line Line) bool {
	return line == Line{mark, mark, mark}
}

// IsWin - reports whether mark fills at least one line. Empty never wins.
func IsWin(board *entity.Board, mark entity.Mark) bool {
	if mark == entity.Empty {
		return false
	}

	for _, line := range Lines(board) {
		if isLineOf(mark, line) {
			return true
		}
	}

	return false
}

// Winner - returns the first player mark that has a line, or entity.Empty.
func Winner(board *entity.Board) entity.Mark {
	for _, mark := range entity.Marks {
		if IsWin(board, mark) {
			return mark
		}
	}

	return entity.Empty
}

func CountMarks(board *entity.Board, mark entity.Mark) int {
	count := 0
	for cell := range board.AllCells() {
		if cell == mark {
			count++
		}
	}

	return count
}

// IsWrongMovesNumber - players alternate, so their move counts differ by at most one.
func IsWrongMovesNumber(board *entity.Board) bool {
	diff := CountMarks(board, entity.PlayerX) - CountMarks(board, entity.PlayerO)

	return diff > 1 || diff < -1
}

func isNoWinner(board *entity.Board) bool {
	for _, mark := range entity.Marks {
		if IsWin(board, mark) {
			return false
		}
	}

	return true
}

func isMoveAvailable(board *entity.Board) bool {
	for cell := range board.AllCells() {
		if cell == entity.Empty {
			return true
		}
	}

	return false
}

func IsImpossible(board *entity.Board) bool {
	return IsWin(board, entity.PlayerX) && IsWin(board, entity.PlayerO) || IsWrongMovesNumber(board)
}

func IsDraw(board *entity.Board) bool {
	return isNoWinner(board) && !isMoveAvailable(board)
}

func IsOngoing(board *entity.Board) bool {
	return isNoWinner(board) && isMoveAvailable(board)
}

// Classify - returns the board status. Checks run in a fixed order and the
// first match wins: Impossible, Draw, X wins, O wins, then Ongoing.
func Classify(board *entity.Board) entity.GameStatus {
	switch {
	case IsImpossible(board):
		return entity.Impossible
	case IsDraw(board):
		return entity.Draw
	case IsWin(board, entity.PlayerX):
		return entity.WinX
	case IsWin(board, entity.PlayerO):
		return entity.WinO
	default:
		return entity.Ongoing
	}
}
