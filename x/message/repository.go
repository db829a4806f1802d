package message

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campuschat/server/core"
)

type Repository interface {
	Create(ctx context.Context, message core.Message) (core.Message, error)
	Get(ctx context.Context, id string) (core.Message, error)
	GetByRoom(ctx context.Context, roomID string) ([]core.Message, error)
	UpdateValid(ctx context.Context, id string, valid bool) error
	Count(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, message core.Message) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&message).Error
	if err != nil {
		span.RecordError(err)
		return core.Message{}, err
	}

	return message, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.Get")
	defer span.End()

	var message core.Message
	err := r.db.WithContext(ctx).Preload("Member").First(&message, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		if err == gorm.ErrRecordNotFound {
			return core.Message{}, core.NewErrorNotFound()
		}
		return core.Message{}, err
	}

	return message, nil
}

func (r *repository) GetByRoom(ctx context.Context, roomID string) ([]core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.GetByRoom")
	defer span.End()

	var messages []core.Message
	err := r.db.WithContext(ctx).Preload("Member").Where("chat_room_id = ?", roomID).Order("c_date").Find(&messages).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return messages, nil
}

func (r *repository) UpdateValid(ctx context.Context, id string, valid bool) error {
	ctx, span := tracer.Start(ctx, "Message.Repository.UpdateValid")
	defer span.End()

	err := r.db.WithContext(ctx).Model(&core.Message{}).Where("id = ?", id).Update("valid", valid).Error
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.Message{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}

func (r *repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.DeleteOlderThan")
	defer span.End()

	result := r.db.WithContext(ctx).Where("c_date <= ?", cutoff).Delete(&core.Message{})
	if result.Error != nil {
		span.RecordError(result.Error)
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
