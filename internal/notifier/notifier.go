// Package notifier announces finished games to whoever listens.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const DefaultChannel = "tictactoe:results"

// RedisNotifier publishes results on a pub/sub channel. Nothing is stored:
// a result sent while nobody is subscribed is lost.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}

	return &RedisNotifier{
		client:  client,
		channel: channel,
	}
}

func (that *RedisNotifier) Notify(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal game result: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish game result: %w", err)
	}

	return nil
}

// Nop drops every result. It is used when Redis is disabled.
type Nop struct{}

func (Nop) Notify(context.Context, *entity.GameResult) error {
	return nil
}
