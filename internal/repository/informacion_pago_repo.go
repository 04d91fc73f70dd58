package repository

import (
	"context"

	"github.com/davidzaratecamp/crm-backend-obama/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InformacionPagoRepository interface {
	Create(ctx context.Context, p *model.InformacionPago) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InformacionPago, error)
	FindByUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.InformacionPago, error)
	Update(ctx context.Context, p *model.InformacionPago) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type informacionPagoRepo struct{ db *gorm.DB }

func NewInformacionPagoRepository(db *gorm.DB) InformacionPagoRepository {
	return &informacionPagoRepo{db: db}
}

func (r *informacionPagoRepo) Create(ctx context.Context, p *model.InformacionPago) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *informacionPagoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InformacionPago, error) {
	var p model.InformacionPago
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *informacionPagoRepo) FindByUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.InformacionPago, error) {
	var p model.InformacionPago
	err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).First(&p).Error
	return &p, err
}

func (r *informacionPagoRepo) Update(ctx context.Context, p *model.InformacionPago) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *informacionPagoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.InformacionPago{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
