package notification

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/campuschat/server/core"
)

type recordingNotifier struct {
	delivered []core.Message
	fail      bool
}

func (n *recordingNotifier) Notify(ctx context.Context, message core.Message) error {
	if n.fail {
		return errors.New("transport down")
	}
	n.delivered = append(n.delivered, message)
	return nil
}

func TestDispatch(t *testing.T) {
	first := &recordingNotifier{}
	second := &recordingNotifier{}

	service := NewService(first, second)

	message := core.Message{ID: "m1", Text: "hello"}
	service.Dispatch(context.Background(), message)

	assert.Len(t, first.delivered, 1)
	assert.Len(t, second.delivered, 1)
	assert.Equal(t, "m1", first.delivered[0].ID)
}

func TestDispatchContinuesPastFailures(t *testing.T) {
	broken := &recordingNotifier{fail: true}
	working := &recordingNotifier{}

	service := NewService(broken, working)

	service.Dispatch(context.Background(), core.Message{ID: "m1"})

	assert.Len(t, working.delivered, 1)
}

func TestDispatchNoNotifiers(t *testing.T) {
	service := NewService()
	service.Dispatch(context.Background(), core.Message{ID: "m1"})
}
