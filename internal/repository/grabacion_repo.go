package repository

import (
	"context"
	"time"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GrabacionRepository interface {
	Create(ctx context.Context, g *model.Grabacion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Grabacion, error)
	ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Grabacion, error)
	ListPendientes(ctx context.Context) ([]dto.AuditoriaListItem, error)
	ListRechazadas(ctx context.Context) ([]dto.AuditoriaListItem, error)
	ListRechazadasPorAgente(ctx context.Context, agenteID uuid.UUID) ([]dto.AuditoriaListItem, error)
	// FindUltimaRechazadaPorUsuario picks the most recently audited rejection;
	// ties on fecha_auditoria break by created_at.
	FindUltimaRechazadaPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Grabacion, error)
	ActualizarAuditoriaTx(tx *gorm.DB, id uuid.UUID, estado string, observaciones *string, auditorID *uuid.UUID, fecha time.Time) error
	ReiniciarAuditoriaTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type grabacionRepo struct{ db *gorm.DB }

func NewGrabacionRepository(db *gorm.DB) GrabacionRepository { return &grabacionRepo{db: db} }

func (r *grabacionRepo) DB() *gorm.DB { return r.db }

func (r *grabacionRepo) Create(ctx context.Context, g *model.Grabacion) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *grabacionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Grabacion, error) {
	var g model.Grabacion
	err := r.db.WithContext(ctx).First(&g, id).Error
	return &g, err
}

func (r *grabacionRepo) ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Grabacion, error) {
	var grabaciones []model.Grabacion
	err := r.db.WithContext(ctx).
		Where("id_usuario = ?", usuarioID).
		Order("fecha_grabacion DESC").
		Find(&grabaciones).Error
	return grabaciones, err
}

const auditoriaListSelect = `g.id AS id_grabacion, g.id_usuario, g.etiquetas,
g.fecha_grabacion, g.estado_auditoria, g.observaciones_auditor,
u.nombres AS nombre_cliente, u.apellidos AS apellido_cliente,
p.nombre AS nombre_agente, p.apellido AS apellido_agente`

func (r *grabacionRepo) listItems(ctx context.Context, cond string, args ...interface{}) ([]dto.AuditoriaListItem, error) {
	var items []dto.AuditoriaListItem
	err := r.db.WithContext(ctx).
		Table("grabaciones g").
		Select(auditoriaListSelect).
		Joins("JOIN usuarios u ON u.id = g.id_usuario").
		Joins("JOIN personal p ON p.id = g.id_agente").
		Where(cond, args...).
		Order("g.fecha_grabacion DESC").
		Scan(&items).Error
	return items, err
}

func (r *grabacionRepo) ListPendientes(ctx context.Context) ([]dto.AuditoriaListItem, error) {
	return r.listItems(ctx, "g.estado_auditoria = ?", model.AuditoriaPendiente)
}

func (r *grabacionRepo) ListRechazadas(ctx context.Context) ([]dto.AuditoriaListItem, error) {
	return r.listItems(ctx, "g.estado_auditoria = ?", model.AuditoriaRechazado)
}

func (r *grabacionRepo) ListRechazadasPorAgente(ctx context.Context, agenteID uuid.UUID) ([]dto.AuditoriaListItem, error) {
	return r.listItems(ctx, "g.estado_auditoria = ? AND g.id_agente = ?", model.AuditoriaRechazado, agenteID)
}

func (r *grabacionRepo) FindUltimaRechazadaPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Grabacion, error) {
	var g model.Grabacion
	err := r.db.WithContext(ctx).
		Where("id_usuario = ? AND estado_auditoria = ?", usuarioID, model.AuditoriaRechazado).
		Order("fecha_auditoria DESC, created_at DESC").
		First(&g).Error
	return &g, err
}

func (r *grabacionRepo) ActualizarAuditoriaTx(tx *gorm.DB, id uuid.UUID, estado string, observaciones *string, auditorID *uuid.UUID, fecha time.Time) error {
	res := tx.Model(&model.Grabacion{}).Where("id = ?", id).Updates(map[string]interface{}{
		"estado_auditoria":      estado,
		"observaciones_auditor": observaciones,
		"id_auditor":            auditorID,
		"fecha_auditoria":       fecha,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *grabacionRepo) ReiniciarAuditoriaTx(tx *gorm.DB, id uuid.UUID) error {
	res := tx.Model(&model.Grabacion{}).Where("id = ?", id).Updates(map[string]interface{}{
		"estado_auditoria":      model.AuditoriaPendiente,
		"observaciones_auditor": nil,
		"id_auditor":            nil,
		"fecha_auditoria":       nil,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
