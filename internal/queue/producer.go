package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ActivityMessage is the compact event published for each committed activity
// record. Downstream consumers (notifications, indexing) read it from the
// stream; the Postgres row remains the source of truth.
type ActivityMessage struct {
	ActivityID   int64
	WorkspaceID  int64
	ActivityType string
}

type Producer interface {
	Enqueue(ctx context.Context, msg ActivityMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, msg ActivityMessage) error {
	fields := map[string]any{
		"activity_id":   msg.ActivityID,
		"workspace_id":  msg.WorkspaceID,
		"activity_type": msg.ActivityType,
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue activity: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued activity", "activity_id", msg.ActivityID, "workspace_id", msg.WorkspaceID, "activity_type", msg.ActivityType)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
