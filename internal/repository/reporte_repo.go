package repository

import (
	"context"
	"fmt"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReporteRepository interface {
	// ContarPorRango counts rows of tabla whose campo falls inside [desde, hasta].
	// tabla and campo are interpolated into SQL: callers must pass only
	// allow-listed identifiers, never request input.
	ContarPorRango(ctx context.Context, tabla, campo, desde, hasta string) (int64, error)
	VentasPorAsesor(ctx context.Context, desde, hasta string) ([]dto.VentasPorAsesorItem, error)
	ContarVentasAgente(ctx context.Context, asesorID uuid.UUID, desde, hasta string) (int64, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) ContarPorRango(ctx context.Context, tabla, campo, desde, hasta string) (int64, error) {
	var total int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE DATE(%s) BETWEEN ? AND ?", tabla, campo)
	err := r.db.WithContext(ctx).Raw(query, desde, hasta).Scan(&total).Error
	return total, err
}

func (r *reporteRepo) VentasPorAsesor(ctx context.Context, desde, hasta string) ([]dto.VentasPorAsesorItem, error) {
	var items []dto.VentasPorAsesorItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.asesor_id, p.nombre, p.apellido, COUNT(*) AS total_ventas
		FROM usuarios u
		JOIN personal p ON p.id = u.asesor_id
		WHERE u.asesor_id IS NOT NULL AND DATE(u.created_at) BETWEEN ? AND ?
		GROUP BY u.asesor_id, p.nombre, p.apellido
		ORDER BY total_ventas DESC`, desde, hasta).Scan(&items).Error
	return items, err
}

func (r *reporteRepo) ContarVentasAgente(ctx context.Context, asesorID uuid.UUID, desde, hasta string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM usuarios
		WHERE asesor_id = ? AND DATE(created_at) BETWEEN ? AND ?`,
		asesorID, desde, hasta).Scan(&total).Error
	return total, err
}
