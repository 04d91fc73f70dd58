package model

import (
	"time"

	"github.com/google/uuid"
)

// ParentescoConyuge is the distinguished relationship value used by the audit
// case file to separate the spouse from the rest of the dependents. At most
// one dependent per user should carry it; not enforced by the schema.
const ParentescoConyuge = "Cónyuge"

// Dependiente is a person covered under a Usuario's enrollment.
type Dependiente struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Parentesco        string    `gorm:"type:varchar(30);not null"`
	SolicitaCobertura bool      `gorm:"not null;default:true"`
	Nombres           string    `gorm:"not null"`
	Apellidos         string    `gorm:"not null"`
	Sexo              string    `gorm:"type:varchar(1);not null"`
	FechaNacimiento   string    `gorm:"type:date;not null"`
	Social            *string
	EstatusMigratorio *string
	MedicareMedicaid  *string
	Estado            *string
	Condado           *string
	Ciudad            *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
