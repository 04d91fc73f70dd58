package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Valid values for Ingreso.TipoEntidad, a manual discriminated foreign key
// over usuarios/dependientes.
const (
	EntidadUsuario     = "Usuario"
	EntidadDependiente = "Dependiente"
)

// Ingreso is an income declaration for a Usuario or a Dependiente.
// IngresosAnuales is always derived server-side as semanales × 52; clients
// never supply it.
type Ingreso struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TipoEntidad       string          `gorm:"type:varchar(15);not null;uniqueIndex:idx_ingresos_entidad"`
	EntidadID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_ingresos_entidad"`
	TipoDeclaracion   string          `gorm:"type:varchar(30);not null"`
	IngresosSemanales decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IngresosAnuales   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
