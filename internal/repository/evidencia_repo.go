package repository

import (
	"context"

	"github.com/davidzaratecamp/crm-backend-obama/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvidenciaRepository interface {
	CreateTx(tx *gorm.DB, e *model.Evidencia) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Evidencia, error)
	ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Evidencia, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type evidenciaRepo struct{ db *gorm.DB }

func NewEvidenciaRepository(db *gorm.DB) EvidenciaRepository { return &evidenciaRepo{db: db} }

func (r *evidenciaRepo) DB() *gorm.DB { return r.db }

func (r *evidenciaRepo) CreateTx(tx *gorm.DB, e *model.Evidencia) error {
	return tx.Create(e).Error
}

func (r *evidenciaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Evidencia, error) {
	var e model.Evidencia
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *evidenciaRepo) ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Evidencia, error) {
	var evidencias []model.Evidencia
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Find(&evidencias).Error
	return evidencias, err
}

func (r *evidenciaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	res := tx.Delete(&model.Evidencia{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
