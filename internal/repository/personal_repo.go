package repository

import (
	"context"

	"github.com/davidzaratecamp/crm-backend-obama/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonalRepository interface {
	Create(ctx context.Context, p *model.Personal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Personal, error)
	// FindByEmailActivo only matches active staff; used by the login path.
	FindByEmailActivo(ctx context.Context, email string) (*model.Personal, error)
	List(ctx context.Context) ([]model.Personal, error)
	Update(ctx context.Context, p *model.Personal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type personalRepo struct{ db *gorm.DB }

func NewPersonalRepository(db *gorm.DB) PersonalRepository { return &personalRepo{db: db} }

func (r *personalRepo) Create(ctx context.Context, p *model.Personal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *personalRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Personal, error) {
	var p model.Personal
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *personalRepo) FindByEmailActivo(ctx context.Context, email string) (*model.Personal, error) {
	var p model.Personal
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND activo = true", email).
		First(&p).Error
	return &p, err
}

func (r *personalRepo) List(ctx context.Context) ([]model.Personal, error) {
	var personal []model.Personal
	err := r.db.WithContext(ctx).Order("apellido, nombre").Find(&personal).Error
	return personal, err
}

func (r *personalRepo) Update(ctx context.Context, p *model.Personal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *personalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Personal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
