package model

import (
	"time"

	"github.com/google/uuid"
)

// Evidencia is the metadata row for an uploaded supporting document.
// RutaArchivo is the relative path under the uploads directory; the file
// itself lives on disk, outside the database.
type Evidencia struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID     uuid.UUID `gorm:"type:uuid;not null;index"`
	NombreArchivo string    `gorm:"not null"`
	RutaArchivo   string    `gorm:"not null"`
	TipoArchivo   string    `gorm:"type:varchar(60);not null"`
	TamanoArchivo int64     `gorm:"not null"`
	Descripcion   string
	CreatedAt     time.Time
}
