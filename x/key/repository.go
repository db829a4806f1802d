package key

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/campuschat/server/core"
)

type Repository interface {
	Create(ctx context.Context, key core.PublicKey) (core.PublicKey, error)
	Activate(ctx context.Context, keyID uint) (core.PublicKey, error)
	GetActiveByMember(ctx context.Context, memberID uint) ([]core.PublicKey, error)
	GetByMember(ctx context.Context, memberID uint) ([]core.PublicKey, error)
	CreateConfirmation(ctx context.Context, confirmation core.PublicKeyConfirmation) (core.PublicKeyConfirmation, error)
	GetConfirmation(ctx context.Context, token string) (core.PublicKeyConfirmation, error)
	DeleteConfirmation(ctx context.Context, token string) error
	ConsumeConfirmation(ctx context.Context, token string) (core.PublicKey, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func activeKeysCacheKey(memberID uint) string {
	return fmt.Sprintf("member-active-keys:%d", memberID)
}

func (r *repository) Create(ctx context.Context, key core.PublicKey) (core.PublicKey, error) {
	ctx, span := tracer.Start(ctx, "Key.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&key).Error
	if err != nil {
		span.RecordError(err)
		return core.PublicKey{}, err
	}

	return key, nil
}

func (r *repository) Activate(ctx context.Context, keyID uint) (core.PublicKey, error) {
	ctx, span := tracer.Start(ctx, "Key.Repository.Activate")
	defer span.End()

	err := r.db.WithContext(ctx).Model(&core.PublicKey{}).Where("id = ?", keyID).Update("active", true).Error
	if err != nil {
		span.RecordError(err)
		return core.PublicKey{}, err
	}

	var key core.PublicKey
	err = r.db.WithContext(ctx).First(&key, "id = ?", keyID).Error
	if err != nil {
		span.RecordError(err)
		return core.PublicKey{}, err
	}

	r.mc.Delete(activeKeysCacheKey(key.MemberID))

	return key, nil
}

func (r *repository) GetActiveByMember(ctx context.Context, memberID uint) ([]core.PublicKey, error) {
	ctx, span := tracer.Start(ctx, "Key.Repository.GetActiveByMember")
	defer span.End()

	item, err := r.mc.Get(activeKeysCacheKey(memberID))
	if err == nil {
		var cached []core.PublicKey
		err = json.Unmarshal(item.Value, &cached)
		if err == nil {
			return cached, nil
		}
	}

	var keys []core.PublicKey
	err = r.db.WithContext(ctx).Where("member_id = ? AND active = ?", memberID, true).Order("id").Find(&keys).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	cache, err := json.Marshal(keys)
	if err == nil {
		// TTL 5 minutes
		r.mc.Set(&memcache.Item{Key: activeKeysCacheKey(memberID), Value: cache, Expiration: 300})
	}

	return keys, nil
}

func (r *repository) GetByMember(ctx context.Context, memberID uint) ([]core.PublicKey, error) {
	ctx, span := tracer.Start(ctx, "Key.Repository.GetByMember")
	defer span.End()

	var keys []core.PublicKey
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Order("id").Find(&keys).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return keys, nil
}

func (r *repository) CreateConfirmation(ctx context.Context, confirmation core.PublicKeyConfirmation) (core.PublicKeyConfirmation, error) {
	ctx, span := tracer.Start(ctx, "Key.Repository.CreateConfirmation")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&confirmation).Error
	if err != nil {
		span.RecordError(err)
		if strings.Contains(err.Error(), "duplicate key") {
			return core.PublicKeyConfirmation{}, core.NewErrorAlreadyExists()
		}
		return core.PublicKeyConfirmation{}, err
	}

	return confirmation, nil
}

func (r *repository) GetConfirmation(ctx context.Context, token string) (core.PublicKeyConfirmation, error) {
	ctx, span := tracer.Start(ctx, "Key.Repository.GetConfirmation")
	defer span.End()

	var confirmation core.PublicKeyConfirmation
	err := r.db.WithContext(ctx).First(&confirmation, "token = ?", token).Error
	if err != nil {
		span.RecordError(err)
		if err == gorm.ErrRecordNotFound {
			return core.PublicKeyConfirmation{}, core.NewErrorNotFound()
		}
		return core.PublicKeyConfirmation{}, err
	}

	return confirmation, nil
}

func (r *repository) DeleteConfirmation(ctx context.Context, token string) error {
	ctx, span := tracer.Start(ctx, "Key.Repository.DeleteConfirmation")
	defer span.End()

	err := r.db.WithContext(ctx).Delete(&core.PublicKeyConfirmation{}, "token = ?", token).Error
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// ConsumeConfirmation activates the confirmation's key and removes the
// confirmation in one transaction. The delete is the mutual-exclusion
// point: of two concurrent attempts on the same token exactly one sees
// a deleted row, the other gets NotFound.
func (r *repository) ConsumeConfirmation(ctx context.Context, token string) (core.PublicKey, error) {
	ctx, span := tracer.Start(ctx, "Key.Repository.ConsumeConfirmation")
	defer span.End()

	var key core.PublicKey
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var confirmation core.PublicKeyConfirmation
		err := tx.First(&confirmation, "token = ?", token).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return core.NewErrorNotFound()
			}
			return err
		}

		result := tx.Delete(&core.PublicKeyConfirmation{}, "token = ?", token)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return core.NewErrorNotFound()
		}

		err = tx.Model(&core.PublicKey{}).Where("id = ?", confirmation.PublicKeyID).Update("active", true).Error
		if err != nil {
			return err
		}

		return tx.First(&key, "id = ?", confirmation.PublicKeyID).Error
	})
	if err != nil {
		span.RecordError(err)
		return core.PublicKey{}, err
	}

	r.mc.Delete(activeKeysCacheKey(key.MemberID))

	return key, nil
}
