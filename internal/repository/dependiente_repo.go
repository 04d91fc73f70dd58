package repository

import (
	"context"

	"github.com/davidzaratecamp/crm-backend-obama/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DependienteRepository interface {
	Create(ctx context.Context, d *model.Dependiente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Dependiente, error)
	ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Dependiente, error)
	ListByUsuarioYParentesco(ctx context.Context, usuarioID uuid.UUID, parentesco string) ([]model.Dependiente, error)
	ListByUsuarioSinConyuge(ctx context.Context, usuarioID uuid.UUID) ([]model.Dependiente, error)
	Update(ctx context.Context, d *model.Dependiente) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type dependienteRepo struct{ db *gorm.DB }

func NewDependienteRepository(db *gorm.DB) DependienteRepository { return &dependienteRepo{db: db} }

func (r *dependienteRepo) Create(ctx context.Context, d *model.Dependiente) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *dependienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Dependiente, error) {
	var d model.Dependiente
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *dependienteRepo) ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Dependiente, error) {
	var deps []model.Dependiente
	err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).Find(&deps).Error
	return deps, err
}

func (r *dependienteRepo) ListByUsuarioYParentesco(ctx context.Context, usuarioID uuid.UUID, parentesco string) ([]model.Dependiente, error) {
	var deps []model.Dependiente
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND parentesco = ?", usuarioID, parentesco).
		Find(&deps).Error
	return deps, err
}

func (r *dependienteRepo) ListByUsuarioSinConyuge(ctx context.Context, usuarioID uuid.UUID) ([]model.Dependiente, error) {
	var deps []model.Dependiente
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND parentesco <> ?", usuarioID, model.ParentescoConyuge).
		Find(&deps).Error
	return deps, err
}

func (r *dependienteRepo) Update(ctx context.Context, d *model.Dependiente) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *dependienteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Dependiente{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
