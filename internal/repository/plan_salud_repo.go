package repository

import (
	"context"

	"github.com/davidzaratecamp/crm-backend-obama/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanSaludRepository interface {
	Create(ctx context.Context, p *model.PlanSalud) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PlanSalud, error)
	// FindByUsuario returns gorm.ErrRecordNotFound when the user has no plan;
	// the upsert path branches on that.
	FindByUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.PlanSalud, error)
	ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.PlanSalud, error)
	Update(ctx context.Context, p *model.PlanSalud) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type planSaludRepo struct{ db *gorm.DB }

func NewPlanSaludRepository(db *gorm.DB) PlanSaludRepository { return &planSaludRepo{db: db} }

func (r *planSaludRepo) Create(ctx context.Context, p *model.PlanSalud) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *planSaludRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PlanSalud, error) {
	var p model.PlanSalud
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *planSaludRepo) FindByUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.PlanSalud, error) {
	var p model.PlanSalud
	err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).First(&p).Error
	return &p, err
}

func (r *planSaludRepo) ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.PlanSalud, error) {
	var planes []model.PlanSalud
	err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).Find(&planes).Error
	return planes, err
}

func (r *planSaludRepo) Update(ctx context.Context, p *model.PlanSalud) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *planSaludRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.PlanSalud{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
