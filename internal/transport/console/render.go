package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const border = "---------"

// RenderBoard - writes the board framed by dashes, one "| a b c |" line per row.
func RenderBoard(w io.Writer, board *entity.Board) error {
	var sb strings.Builder

	sb.WriteString(border + "\n")
	for _, row := range board.Rows() {
		sb.WriteString("| ")
		for _, cell := range row {
			sb.WriteString(cell.String() + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border + "\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}
