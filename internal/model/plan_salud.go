package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanSalud is the health plan selected for a Usuario. One row per user,
// enforced by the unique index; the service layer upserts against it.
type PlanSalud struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	Aseguradora      string           `gorm:"not null"`
	NombrePlan       string           `gorm:"not null"`
	TipoPlan         string           `gorm:"type:varchar(30);not null"`
	Deducible        *decimal.Decimal `gorm:"type:decimal(12,2)"`
	GastoMaxBolsillo *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ValorPrima       decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PlanSalud) TableName() string { return "planes_salud" }
