package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/notifier"
	"github.com/rocketscienceinc/tictactoe-console/internal/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis host is empty")

type resultNotifier interface {
	Notify(ctx context.Context, result *entity.GameResult) error
}

// RunApp - runs the application on the process console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one game (or analyzes one board) over the given input and output.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	var resultsFeed resultNotifier = notifier.Nop{}

	if conf.Redis.Enabled && conf.Mode != console.ModeAnalyze {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}
		redisAddrString := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.NewRedis(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		resultsFeed = notifier.NewRedisNotifier(redisStorage.Connection, conf.Redis.Channel)
		log.Info("Publishing game results", "addr", redisAddrString, "channel", conf.Redis.Channel)
	}

	shell := console.NewShell(logger, in, out)
	newSession := func() console.Session {
		return usecase.NewGameSession(logger, resultsFeed)
	}

	status, err := shell.Run(ctx, conf.Mode, newSession)
	switch {
	case errors.Is(err, apperror.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Info("Console closed before the game finished", "reason", err)
		return nil
	case err != nil:
		return fmt.Errorf("console error: %w", err)
	}

	log.Debug("Game over", "status", status.String())

	return nil
}
