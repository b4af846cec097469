package entity

import "time"

// GameResult describes a finished game as it is announced to listeners.
type GameResult struct {
	ID         string            `json:"id"`
	Status     GameStatus        `json:"status"`
	Winner     string            `json:"winner,omitempty"`
	Moves      int               `json:"moves"`
	Board      [BoardSize]string `json:"board"`
	FinishedAt time.Time         `json:"finished_at"`
}

// BoardLines - renders each row as three characters, '_' for empty cells.
func BoardLines(board *Board) [BoardSize]string {
	var lines [BoardSize]string

	for i, row := range board.Rows() {
		line := make([]byte, 0, BoardSize)
		for _, cell := range row {
			if cell == Empty {
				line = append(line, '_')
				continue
			}
			line = append(line, cell.String()...)
		}
		lines[i] = string(line)
	}

	return lines
}
