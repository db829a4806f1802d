package room

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/campuschat/server/core"
)

type service struct {
	repository Repository
	message    core.MessageService
}

// NewService creates a new room service
func NewService(repository Repository, message core.MessageService) core.RoomService {
	return &service{repository, message}
}

func (s *service) Create(ctx context.Context, name string) (core.ChatRoom, error) {
	ctx, span := tracer.Start(ctx, "Room.Service.Create")
	defer span.End()

	return s.repository.Create(ctx, core.ChatRoom{
		ID:   xid.New().String(),
		Name: name,
	})
}

func (s *service) Get(ctx context.Context, id string) (core.ChatRoom, error) {
	ctx, span := tracer.Start(ctx, "Room.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]core.ChatRoom, error) {
	ctx, span := tracer.Start(ctx, "Room.Service.List")
	defer span.End()

	return s.repository.List(ctx)
}

// Join adds the member to the room and records a bot-authored system
// message about it. The caller is expected to have authorized the
// action already.
func (s *service) Join(ctx context.Context, roomID string, member core.Member) (core.ChatRoom, error) {
	ctx, span := tracer.Start(ctx, "Room.Service.Join")
	defer span.End()

	_, err := s.repository.Get(ctx, roomID)
	if err != nil {
		span.RecordError(err)
		return core.ChatRoom{}, err
	}

	err = s.repository.AddMember(ctx, roomID, member)
	if err != nil {
		span.RecordError(err)
		return core.ChatRoom{}, err
	}

	_, err = s.message.PostSystemMessage(ctx, roomID, fmt.Sprintf("%s joined the room", member.LrzID))
	if err != nil {
		span.RecordError(err)
		return core.ChatRoom{}, err
	}

	return s.repository.Get(ctx, roomID)
}

// Leave removes the member from the room. Leaving a room the member is
// not part of is a no-op apart from the system message.
func (s *service) Leave(ctx context.Context, roomID string, member core.Member) (core.ChatRoom, error) {
	ctx, span := tracer.Start(ctx, "Room.Service.Leave")
	defer span.End()

	_, err := s.repository.Get(ctx, roomID)
	if err != nil {
		span.RecordError(err)
		return core.ChatRoom{}, err
	}

	err = s.repository.RemoveMember(ctx, roomID, member)
	if err != nil {
		span.RecordError(err)
		return core.ChatRoom{}, err
	}

	_, err = s.message.PostSystemMessage(ctx, roomID, fmt.Sprintf("%s left the room", member.LrzID))
	if err != nil {
		span.RecordError(err)
		return core.ChatRoom{}, err
	}

	return s.repository.Get(ctx, roomID)
}
