package message

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rs/xid"

	"github.com/campuschat/server/core"
)

type service struct {
	repository   Repository
	member       core.MemberService
	auth         core.AuthService
	notification core.NotificationService
}

// NewService creates a new message service
func NewService(repository Repository, member core.MemberService, auth core.AuthService, notification core.NotificationService) core.MessageService {
	return &service{repository, member, auth, notification}
}

// Post stores a new message and runs signature validation over it. The
// message row is kept either way; an unverifiable signature only leaves
// the valid flag unset. Notifications go out when the message validates.
func (s *service) Post(ctx context.Context, roomID string, member core.Member, text string, signature string) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Post")
	defer span.End()

	created, err := s.repository.Create(ctx, core.Message{
		ID:         xid.New().String(),
		Text:       text,
		Signature:  signature,
		MemberID:   member.ID,
		Member:     member,
		ChatRoomID: roomID,
	})
	if err != nil {
		span.RecordError(err)
		return core.Message{}, err
	}

	valid, err := s.Validate(ctx, &created)
	if err != nil {
		span.RecordError(err)
		return core.Message{}, err
	}

	if valid {
		s.notification.Dispatch(ctx, created)
	}

	return created, nil
}

// PostSystemMessage records a message authored by the bot member. It is
// valid by fiat, not through validation.
func (s *service) PostSystemMessage(ctx context.Context, roomID string, text string) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.PostSystemMessage")
	defer span.End()

	bot, err := s.member.GetOrCreateBot(ctx)
	if err != nil {
		span.RecordError(err)
		return core.Message{}, err
	}

	created, err := s.repository.Create(ctx, core.Message{
		ID:         xid.New().String(),
		Text:       text,
		Signature:  "",
		Valid:      true,
		MemberID:   bot.ID,
		Member:     bot,
		ChatRoomID: roomID,
	})
	if err != nil {
		span.RecordError(err)
		return core.Message{}, err
	}

	s.notification.Dispatch(ctx, created)

	return created, nil
}

// Validate recomputes the message's valid flag from its text, its
// signature and the author's active keys. The flag is only persisted
// when it actually changes, so re-validating is idempotent.
func (s *service) Validate(ctx context.Context, message *core.Message) (bool, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Validate")
	defer span.End()

	valid, err := s.auth.Authorized(ctx, message.MemberID, message.Text, message.Signature)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	if valid != message.Valid {
		err = s.repository.UpdateValid(ctx, message.ID, valid)
		if err != nil {
			span.RecordError(err)
			return false, err
		}
		message.Valid = valid
	}

	return valid, nil
}

func (s *service) Get(ctx context.Context, id string) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) GetByRoom(ctx context.Context, roomID string) ([]core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.GetByRoom")
	defer span.End()

	return s.repository.GetByRoom(ctx, roomID)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

// CleanExpired removes messages created at or before the cutoff.
func (s *service) CleanExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.CleanExpired")
	defer span.End()

	count, err := s.repository.DeleteOlderThan(ctx, olderThan)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	slog.InfoContext(ctx, fmt.Sprintf("deleted %d expired messages", count), slog.String("module", "message"))

	return count, nil
}
