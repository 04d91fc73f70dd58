package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de auditoría de una Grabacion.
const (
	AuditoriaPendiente = "pendiente"
	AuditoriaAprobado  = "aprobado"
	AuditoriaRechazado = "rechazado"
)

// Grabacion is a recorded enrollment call, the subject of the audit workflow.
// Estado: pendiente → aprobado | rechazado; a rejected recording can be
// resubmitted, which resets it to pendiente and clears the audit metadata.
type Grabacion struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDUsuario      uuid.UUID `gorm:"column:id_usuario;type:uuid;not null;index"`
	IDAgente       uuid.UUID `gorm:"column:id_agente;type:uuid;not null;index"`
	Etiquetas      *string
	RutaAudio      *string
	FechaGrabacion time.Time `gorm:"not null"`
	EstadoAuditoria string   `gorm:"type:varchar(15);not null;default:'pendiente';index"`
	// Audit metadata, set on review and nulled on resubmission
	ObservacionesAuditor *string
	IDAuditor            *uuid.UUID `gorm:"column:id_auditor;type:uuid"`
	FechaAuditoria       *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Grabacion) TableName() string { return "grabaciones" }
