package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/campuschat/server/core"
	mock_core "github.com/campuschat/server/core/mock"
	"github.com/campuschat/server/internal/testutil"
)

func TestService(t *testing.T) {

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessage := mock_core.NewMockMessageService(ctrl)

	repo := NewRepository(db)
	service := NewService(repo, mockMessage)

	member := core.Member{ID: 1, LrzID: "ab12cde"}

	// Test1. create and list
	created, err := service.Create(ctx, "general")
	if assert.NoError(t, err) {
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "general", created.Name)
	}

	rooms, err := service.List(ctx)
	if assert.NoError(t, err) {
		assert.Len(t, rooms, 1)
	}

	_, err = service.Get(ctx, "nosuchroom")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)

	// Test2. joining adds the member and announces it
	mockMessage.EXPECT().
		PostSystemMessage(gomock.Any(), created.ID, "ab12cde joined the room").
		Return(core.Message{}, nil)

	room, err := service.Join(ctx, created.ID, member)
	if assert.NoError(t, err) {
		assert.Len(t, room.Members, 1)
		assert.Equal(t, "ab12cde", room.Members[0].LrzID)
	}

	// Test3. joining an unknown room fails before any announcement
	_, err = service.Join(ctx, "nosuchroom", member)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)

	// Test4. leaving removes the member and announces it
	mockMessage.EXPECT().
		PostSystemMessage(gomock.Any(), created.ID, "ab12cde left the room").
		Return(core.Message{}, nil)

	room, err = service.Leave(ctx, created.ID, member)
	if assert.NoError(t, err) {
		assert.Len(t, room.Members, 0)
	}

	// Test5. leaving again is a no-op apart from the announcement
	mockMessage.EXPECT().
		PostSystemMessage(gomock.Any(), created.ID, "ab12cde left the room").
		Return(core.Message{}, nil)

	room, err = service.Leave(ctx, created.ID, member)
	if assert.NoError(t, err) {
		assert.Len(t, room.Members, 0)
	}
}
