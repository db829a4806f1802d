package member

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campuschat/server/core"
)

type Repository interface {
	Create(ctx context.Context, member core.Member) (core.Member, error)
	Get(ctx context.Context, id uint) (core.Member, error)
	GetByLrzID(ctx context.Context, lrzID string) (core.Member, error)
	List(ctx context.Context) ([]core.Member, error)
	GetOrCreate(ctx context.Context, lrzID string) (core.Member, error)
	AddRegistrationID(ctx context.Context, id uint, registrationID string) (core.Member, error)
	RemoveRegistrationID(ctx context.Context, id uint, registrationID string) (core.Member, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, member core.Member) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&member).Error
	if err != nil {
		span.RecordError(err)
		return core.Member{}, err
	}

	return member, nil
}

func (r *repository) Get(ctx context.Context, id uint) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Repository.Get")
	defer span.End()

	var member core.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		span.RecordError(err)
		if err == gorm.ErrRecordNotFound {
			return core.Member{}, core.NewErrorNotFound()
		}
		return core.Member{}, err
	}

	return member, nil
}

func (r *repository) GetByLrzID(ctx context.Context, lrzID string) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Repository.GetByLrzID")
	defer span.End()

	var member core.Member
	err := r.db.WithContext(ctx).First(&member, "lrz_id = ?", lrzID).Error
	if err != nil {
		span.RecordError(err)
		if err == gorm.ErrRecordNotFound {
			return core.Member{}, core.NewErrorNotFound()
		}
		return core.Member{}, err
	}

	return member, nil
}

func (r *repository) List(ctx context.Context) ([]core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Repository.List")
	defer span.End()

	var members []core.Member
	err := r.db.WithContext(ctx).Order("id").Find(&members).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return members, nil
}

// GetOrCreate is an idempotent unique-key upsert. Concurrent first use
// of the same lrz id yields exactly one row.
func (r *repository) GetOrCreate(ctx context.Context, lrzID string) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Repository.GetOrCreate")
	defer span.End()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "lrz_id"}}, DoNothing: true}).
		Create(&core.Member{LrzID: lrzID}).Error
	if err != nil {
		span.RecordError(err)
		return core.Member{}, err
	}

	return r.GetByLrzID(ctx, lrzID)
}

func (r *repository) AddRegistrationID(ctx context.Context, id uint, registrationID string) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Repository.AddRegistrationID")
	defer span.End()

	var member core.Member
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&member, "id = ?", id).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return core.NewErrorNotFound()
			}
			return err
		}

		member.RegistrationIDs = append(member.RegistrationIDs, registrationID)
		return tx.Model(&member).Update("registration_ids", member.RegistrationIDs).Error
	})
	if err != nil {
		span.RecordError(err)
		return core.Member{}, err
	}

	return member, nil
}

// RemoveRegistrationID drops the first matching occurrence. A missing
// registration id is a no-op.
func (r *repository) RemoveRegistrationID(ctx context.Context, id uint, registrationID string) (core.Member, error) {
	ctx, span := tracer.Start(ctx, "Member.Repository.RemoveRegistrationID")
	defer span.End()

	var member core.Member
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&member, "id = ?", id).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return core.NewErrorNotFound()
			}
			return err
		}

		for i, existing := range member.RegistrationIDs {
			if existing == registrationID {
				member.RegistrationIDs = append(member.RegistrationIDs[:i], member.RegistrationIDs[i+1:]...)
				return tx.Model(&member).Update("registration_ids", member.RegistrationIDs).Error
			}
		}

		return nil
	})
	if err != nil {
		span.RecordError(err)
		return core.Member{}, err
	}

	return member, nil
}
