package repository

import (
	"context"

	"github.com/davidzaratecamp/crm-backend-obama/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IngresoRepository interface {
	Create(ctx context.Context, i *model.Ingreso) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ingreso, error)
	ListByEntidad(ctx context.Context, tipoEntidad string, entidadID uuid.UUID) ([]model.Ingreso, error)
	// ListByEntidadIDs batches one IN query over a non-empty id set; callers
	// must skip the call when the set is empty.
	ListByEntidadIDs(ctx context.Context, ids []uuid.UUID) ([]model.Ingreso, error)
	Update(ctx context.Context, i *model.Ingreso) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ingresoRepo struct{ db *gorm.DB }

func NewIngresoRepository(db *gorm.DB) IngresoRepository { return &ingresoRepo{db: db} }

func (r *ingresoRepo) Create(ctx context.Context, i *model.Ingreso) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *ingresoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Ingreso, error) {
	var i model.Ingreso
	err := r.db.WithContext(ctx).First(&i, id).Error
	return &i, err
}

func (r *ingresoRepo) ListByEntidad(ctx context.Context, tipoEntidad string, entidadID uuid.UUID) ([]model.Ingreso, error) {
	var ingresos []model.Ingreso
	err := r.db.WithContext(ctx).
		Where("tipo_entidad = ? AND entidad_id = ?", tipoEntidad, entidadID).
		Find(&ingresos).Error
	return ingresos, err
}

func (r *ingresoRepo) ListByEntidadIDs(ctx context.Context, ids []uuid.UUID) ([]model.Ingreso, error) {
	var ingresos []model.Ingreso
	err := r.db.WithContext(ctx).Where("entidad_id IN ?", ids).Find(&ingresos).Error
	return ingresos, err
}

func (r *ingresoRepo) Update(ctx context.Context, i *model.Ingreso) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *ingresoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Ingreso{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
