package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de registro de un Usuario. The audit workflow is the only writer
// after intake: aprobado_auditor / rechazado_auditor / en_revision come from
// a review, pendiente_auditoria from a resubmission.
const (
	RegistroPendiente          = "pendiente"
	RegistroCompletado         = "completado"
	RegistroPendienteAuditoria = "pendiente_auditoria"
	RegistroEnRevision         = "en_revision"
	RegistroAprobadoAuditor    = "aprobado_auditor"
	RegistroRechazadoAuditor   = "rechazado_auditor"
)

// Usuario is the client/applicant record captured during enrollment intake.
// RespuestaSeguridad stores a bcrypt hash, never the plain answer.
type Usuario struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SolicitaCobertura  bool      `gorm:"not null;default:true"`
	Nombres            string    `gorm:"not null"`
	Apellidos          string    `gorm:"not null"`
	Sexo               string    `gorm:"type:varchar(1);not null"`
	FechaNacimiento    string    `gorm:"type:date;not null"`
	EstadoCobertura    *string
	Social             *string `gorm:"uniqueIndex"`
	EstatusMigratorio  *string
	TipoVivienda       *string
	Direccion          *string
	Ciudad             *string
	Estado             *string
	CodigoPostal       *string
	Condado            *string
	CorreoElectronico  *string `gorm:"uniqueIndex"`
	Phone1             string  `gorm:"column:phone_1;not null"`
	Phone2             *string `gorm:"column:phone_2"`
	OrigenVenta        *string
	Referido           *string
	Base               *string
	PreguntaSeguridad  string `gorm:"not null"`
	RespuestaSeguridad string `gorm:"not null"`
	EstadoRegistro     string `gorm:"type:varchar(30);not null;default:'pendiente';index"`
	// AsesorID is the sales agent (Personal with rol Agente) who captured the sale
	AsesorID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Dependientes []Dependiente `gorm:"foreignKey:UsuarioID"`
	Evidencias   []Evidencia   `gorm:"foreignKey:UsuarioID"`
}
