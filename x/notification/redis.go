package notification

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/campuschat/server/core"
)

// RedisNotifier publishes message events to the room's pubsub channel,
// where connected sockets pick them up.
type RedisNotifier struct {
	rdb *redis.Client
}

func NewRedisNotifier(rdb *redis.Client) *RedisNotifier {
	return &RedisNotifier{rdb}
}

func (n *RedisNotifier) Notify(ctx context.Context, message core.Message) error {
	ctx, span := tracer.Start(ctx, "Notification.Redis.Notify")
	defer span.End()

	event := core.Event{
		RoomID: message.ChatRoomID,
		Action: "create",
		Body:   message,
	}

	jsonstr, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to marshal event")
	}

	err = n.rdb.Publish(ctx, core.RoomChannel(message.ChatRoomID), jsonstr).Err()
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to publish event")
	}

	return nil
}
