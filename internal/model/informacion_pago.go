package model

import (
	"time"

	"github.com/google/uuid"
)

// InformacionPago stores the tokenized payment method for a Usuario.
// Only the last four card digits are kept; TokenPago is the opaque gateway
// token and is never serialized back to clients.
type InformacionPago struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Ultimos4DigitosTarjeta string    `gorm:"column:ultimos_4_digitos_tarjeta;type:varchar(4);not null"`
	TokenPago              string    `gorm:"not null" json:"-"`
	FechaExpiracionMes     int       `gorm:"not null"`
	FechaExpiracionAno     int       `gorm:"not null"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (InformacionPago) TableName() string { return "informacion_pago" }
