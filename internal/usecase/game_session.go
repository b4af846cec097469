package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type resultNotifier interface {
	Notify(ctx context.Context, result *entity.GameResult) error
}

// GameSession runs one game on a single board. It is not safe for concurrent use.
type GameSession struct {
	logger   *slog.Logger
	notifier resultNotifier

	id    string
	board *entity.Board
	turn  entity.Mark
	moves int
}

func NewGameSession(logger *slog.Logger, notifier resultNotifier) *GameSession {
	id := uuid.NewString()

	return &GameSession{
		logger:   logger.With("component", "game_session", "game_id", id),
		notifier: notifier,

		id:    id,
		board: entity.NewBoard(),
		turn:  entity.PlayerX,
	}
}

// MakeTurn - places the current player's mark and returns the new board status.
// The turn passes to the other player only if the mark was placed.
func (that *GameSession) MakeTurn(ctx context.Context, c entity.Coordinates) (entity.GameStatus, error) {
	if status := that.Status(); status.IsFinished() {
		return status, apperror.ErrGameFinished
	}

	if err := that.board.Place(c, that.turn); err != nil {
		return entity.Ongoing, fmt.Errorf("failed make turn: %w", err)
	}

	that.logger.Debug("turn made", "mark", that.turn.String(), "row", c.Row()+1, "col", c.Col()+1)

	that.moves++
	that.turn = that.turn.Opponent()
	status := that.Status()
	if status.IsFinished() {
		that.finish(ctx, status)
	}

	return status, nil
}

func (that *GameSession) finish(ctx context.Context, status entity.GameStatus) {
	log := that.logger.With("method", "finish")

	result := &entity.GameResult{
		ID:         that.id,
		Status:     status,
		Moves:      that.moves,
		Board:      entity.BoardLines(that.board),
		FinishedAt: time.Now().UTC(),
	}

	if winner := tictactoe.Winner(that.board); winner != entity.Empty && status != entity.Impossible {
		result.Winner = winner.String()
	}

	if err := that.notifier.Notify(ctx, result); err != nil {
		log.Error("failed to notify game result", "error", err)
		return
	}

	log.Info("game finished", "status", status.String(), "moves", that.moves)
}

func (that *GameSession) ID() string {
	return that.id
}

func (that *GameSession) Board() *entity.Board {
	return that.board
}

func (that *GameSession) Turn() entity.Mark {
	return that.turn
}

func (that *GameSession) Moves() int {
	return that.moves
}

// Status - classifies the current board; it is never cached.
func (that *GameSession) Status() entity.GameStatus {
	return tictactoe.Classify(that.board)
}
