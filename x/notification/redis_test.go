package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"

	"github.com/campuschat/server/core"
	"github.com/campuschat/server/internal/testutil"
)

func TestRedisNotify(t *testing.T) {

	var ctx = context.Background()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	roomID := xid.New().String()

	sub := rdb.Subscribe(ctx, core.RoomChannel(roomID))
	defer sub.Close()

	// wait until the subscription is established before publishing
	_, err := sub.Receive(ctx)
	assert.NoError(t, err)

	notifier := NewRedisNotifier(rdb)

	message := core.Message{
		ID:         xid.New().String(),
		Text:       "hello",
		Valid:      true,
		MemberID:   1,
		ChatRoomID: roomID,
	}

	err = notifier.Notify(ctx, message)
	assert.NoError(t, err)

	received, err := sub.ReceiveTimeout(ctx, time.Second*5)
	assert.NoError(t, err)

	payload, ok := received.(*redis.Message)
	if assert.True(t, ok) {
		var event core.Event
		err = json.Unmarshal([]byte(payload.Payload), &event)
		if assert.NoError(t, err) {
			assert.Equal(t, roomID, event.RoomID)
			assert.Equal(t, "create", event.Action)
			assert.Equal(t, message.ID, event.Body.ID)
			assert.Equal(t, "hello", event.Body.Text)
			assert.True(t, event.Body.Valid)
		}
	}
}
