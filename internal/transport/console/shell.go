package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	ModePlay    = "play"
	ModeAnalyze = "analyze"
)

const (
	promptCoordinates = "Enter the coordinates:"
	promptCells       = "Enter cells:"

	msgNotNumbers = "You should enter numbers!"
	msgOutOfBound = "Coordinates should be from 1 to 3!"
	msgOccupied   = "This cell is occupied! Choose another one!"
)

// Session is the game the shell plays. It is satisfied by *usecase.GameSession.
type Session interface {
	MakeTurn(ctx context.Context, c entity.Coordinates) (entity.GameStatus, error)
	Board() *entity.Board
}

// Shell talks to the operator through the given reader and writer.
type Shell struct {
	logger  *slog.Logger
	scanner *bufio.Scanner
	out     io.Writer
}

func NewShell(logger *slog.Logger, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		logger:  logger.With("component", "console"),
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run - dispatches to the loop for the configured mode.
func (that *Shell) Run(ctx context.Context, mode string, newSession func() Session) (entity.GameStatus, error) {
	switch mode {
	case ModePlay, "":
		return that.Play(ctx, newSession())
	case ModeAnalyze:
		return that.Analyze(ctx)
	default:
		return entity.Ongoing, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}
}

// Play - runs turns until the session reports a finished status, then prints it.
func (that *Shell) Play(ctx context.Context, session Session) (entity.GameStatus, error) {
	if err := RenderBoard(that.out, session.Board()); err != nil {
		return entity.Ongoing, err
	}

	for {
		status, err := that.playTurn(ctx, session)
		if err != nil {
			return status, err
		}

		if err = RenderBoard(that.out, session.Board()); err != nil {
			return status, err
		}

		if status.IsFinished() {
			return status, that.println(status.String())
		}
	}
}

// playTurn - reprompts until one mark is placed.
func (that *Shell) playTurn(ctx context.Context, session Session) (entity.GameStatus, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Ongoing, err
		}

		if err := that.println(promptCoordinates); err != nil {
			return entity.Ongoing, err
		}

		line, err := that.readLine()
		if err != nil {
			return entity.Ongoing, err
		}

		status, err := that.applyMove(ctx, session, line)

		switch {
		case err == nil:
			return status, nil
		case errors.Is(err, apperror.ErrNotNumbers):
			err = that.println(msgNotNumbers)
		case errors.Is(err, apperror.ErrOutOfBounds):
			err = that.println(msgOutOfBound)
		case errors.Is(err, apperror.ErrCellOccupied):
			err = that.println(msgOccupied)
		default:
			return status, err
		}

		that.logger.Debug("move rejected", "input", line)

		if err != nil {
			return entity.Ongoing, err
		}
	}
}

func (that *Shell) applyMove(ctx context.Context, session Session, line string) (entity.GameStatus, error) {
	row, col, err := ParseCoordinates(line)
	if err != nil {
		return entity.Ongoing, err
	}

	c, err := entity.CoordinatesFromInput(row, col)
	if err != nil {
		return entity.Ongoing, err
	}

	return session.MakeTurn(ctx, c)
}

// Analyze - reads one board as a cells string and prints its status.
func (that *Shell) Analyze(ctx context.Context) (entity.GameStatus, error) {
	if err := ctx.Err(); err != nil {
		return entity.Ongoing, err
	}

	if err := that.print(promptCells + " "); err != nil {
		return entity.Ongoing, err
	}

	line, err := that.readLine()
	if err != nil {
		return entity.Ongoing, err
	}

	board, err := entity.ParseBoard(line)
	if err != nil {
		return entity.Ongoing, fmt.Errorf("failed to parse board: %w", err)
	}

	if err = RenderBoard(that.out, board); err != nil {
		return entity.Ongoing, err
	}

	status := tictactoe.Classify(board)

	return status, that.println(status.String())
}

// ParseCoordinates - reads two integers separated by whitespace.
func ParseCoordinates(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrNotNumbers, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrNotNumbers, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrNotNumbers, fields[1])
	}

	return row, col, nil
}

func (that *Shell) readLine() (string, error) {
	if that.scanner.Scan() {
		return strings.TrimRight(that.scanner.Text(), "\r"), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", apperror.ErrInputClosed
}

func (that *Shell) println(s string) error {
	return that.print(s + "\n")
}

func (that *Shell) print(s string) error {
	if _, err := io.WriteString(that.out, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
