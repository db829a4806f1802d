package room

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuschat/server/core"
)

type Repository interface {
	Create(ctx context.Context, room core.ChatRoom) (core.ChatRoom, error)
	Get(ctx context.Context, id string) (core.ChatRoom, error)
	List(ctx context.Context) ([]core.ChatRoom, error)
	AddMember(ctx context.Context, roomID string, member core.Member) error
	RemoveMember(ctx context.Context, roomID string, member core.Member) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, room core.ChatRoom) (core.ChatRoom, error) {
	ctx, span := tracer.Start(ctx, "Room.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&room).Error
	if err != nil {
		span.RecordError(err)
		return core.ChatRoom{}, err
	}

	return room, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.ChatRoom, error) {
	ctx, span := tracer.Start(ctx, "Room.Repository.Get")
	defer span.End()

	var room core.ChatRoom
	err := r.db.WithContext(ctx).Preload("Members").First(&room, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		if err == gorm.ErrRecordNotFound {
			return core.ChatRoom{}, core.NewErrorNotFound()
		}
		return core.ChatRoom{}, err
	}

	return room, nil
}

func (r *repository) List(ctx context.Context) ([]core.ChatRoom, error) {
	ctx, span := tracer.Start(ctx, "Room.Repository.List")
	defer span.End()

	var rooms []core.ChatRoom
	err := r.db.WithContext(ctx).Order("c_date").Find(&rooms).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return rooms, nil
}

func (r *repository) AddMember(ctx context.Context, roomID string, member core.Member) error {
	ctx, span := tracer.Start(ctx, "Room.Repository.AddMember")
	defer span.End()

	err := r.db.WithContext(ctx).Model(&core.ChatRoom{ID: roomID}).Association("Members").Append(&member)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (r *repository) RemoveMember(ctx context.Context, roomID string, member core.Member) error {
	ctx, span := tracer.Start(ctx, "Room.Repository.RemoveMember")
	defer span.End()

	err := r.db.WithContext(ctx).Model(&core.ChatRoom{ID: roomID}).Association("Members").Delete(&member)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
