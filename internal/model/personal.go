package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles del personal.
const (
	RolAdministrador = "Administrador"
	RolAgente        = "Agente"
	RolAuditor       = "Auditor"
)

// Personal stores staff members with role-based access.
// MetaMensual is the monthly sales goal; only meaningful for rol Agente.
type Personal struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"not null"`
	Apellido     string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null"`
	MetaMensual  int       `gorm:"not null;default:0"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Personal) TableName() string { return "personal" }
