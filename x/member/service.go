package member

import (
	"context"

	"github.com/campuschat/server/core"
	"github.com/campuschat/server/x/util"
)

type service struct {
	repository Repository
	config     util.Config
}

// NewService creates a new member service
func NewService(repository Repository, config util.Config) core.MemberService {
	return &service{repository, config}
}

func (s *service) Register(ctx context.Context, member core.Member) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Service.Register")
	defer span.End()

	return s.repository.Create(ctx, member)
}

func (s *service) Get(ctx context.Context, id uint) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) GetByLrzID(ctx context.Context, lrzID string) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Service.GetByLrzID")
	defer span.End()

	return s.repository.GetByLrzID(ctx, lrzID)
}

func (s *service) List(ctx context.Context) ([]core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Service.List")
	defer span.End()

	return s.repository.List(ctx)
}

// GetOrCreateBot resolves the distinguished bot member, creating it on
// first use.
func (s *service) GetOrCreateBot(ctx context.Context) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Service.GetOrCreateBot")
	defer span.End()

	return s.repository.GetOrCreate(ctx, s.config.Chat.BotID)
}

func (s *service) AddRegistrationID(ctx context.Context, id uint, registrationID string) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Service.AddRegistrationID")
	defer span.End()

	return s.repository.AddRegistrationID(ctx, id, registrationID)
}

func (s *service) RemoveRegistrationID(ctx context.Context, id uint, registrationID string) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Service.RemoveRegistrationID")
	defer span.End()

	return s.repository.RemoveRegistrationID(ctx, id, registrationID)
}
