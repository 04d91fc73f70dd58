package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	maxArchivosEvidencia = 5
	maxTamanoArchivo     = 5 << 20 // 5MB
)

// Allowed upload types mapped to the extension the stored file gets. The
// extension comes from the declared MIME type, never from the client name.
var tiposEvidenciaPermitidos = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

type EvidenciaService interface {
	Subir(ctx context.Context, usuarioID uuid.UUID, descripcion string, archivos []dto.ArchivoSubido) ([]dto.EvidenciaResponse, error)
	ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.EvidenciaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type evidenciaService struct {
	evidencias repository.EvidenciaRepository
	usuarios   repository.UsuarioRepository
	baseDir    string
}

func NewEvidenciaService(evidencias repository.EvidenciaRepository, usuarios repository.UsuarioRepository, baseDir string) EvidenciaService {
	return &evidenciaService{evidencias: evidencias, usuarios: usuarios, baseDir: baseDir}
}

// Subir validates every file before touching disk, then writes the files and
// inserts the metadata rows in one transaction. If the transaction fails the
// written files are removed so no orphan ends up in the uploads directory.
func (s *evidenciaService) Subir(ctx context.Context, usuarioID uuid.UUID, descripcion string, archivos []dto.ArchivoSubido) ([]dto.EvidenciaResponse, error) {
	if len(archivos) == 0 {
		return nil, fmt.Errorf("no se recibieron archivos: %w", apierror.ErrValidation)
	}
	if len(archivos) > maxArchivosEvidencia {
		return nil, fmt.Errorf("maximo %d archivos por carga: %w", maxArchivosEvidencia, apierror.ErrValidation)
	}
	for _, a := range archivos {
		if _, ok := tiposEvidenciaPermitidos[a.TipoMIME]; !ok {
			return nil, fmt.Errorf("tipo de archivo no permitido %q: %w", a.TipoMIME, apierror.ErrValidation)
		}
		if a.Tamano > maxTamanoArchivo {
			return nil, fmt.Errorf("archivo %q excede 5MB: %w", a.NombreOriginal, apierror.ErrValidation)
		}
	}

	if _, err := s.usuarios.FindByID(ctx, usuarioID); err != nil {
		return nil, mapDBErr(err)
	}

	dir := filepath.Join(s.baseDir, usuarioID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de evidencias: %w", err)
	}

	escritos := make([]string, 0, len(archivos))
	evidencias := make([]*model.Evidencia, 0, len(archivos))
	for _, a := range archivos {
		nombre := uuid.NewString() + tiposEvidenciaPermitidos[a.TipoMIME]
		abs := filepath.Join(dir, nombre)
		if err := os.WriteFile(abs, a.Contenido, 0o644); err != nil {
			limpiarArchivos(escritos)
			return nil, fmt.Errorf("escribir evidencia: %w", err)
		}
		escritos = append(escritos, abs)
		evidencias = append(evidencias, &model.Evidencia{
			UsuarioID:     usuarioID,
			NombreArchivo: a.NombreOriginal,
			RutaArchivo:   filepath.ToSlash(filepath.Join(usuarioID.String(), nombre)),
			TipoArchivo:   a.TipoMIME,
			TamanoArchivo: a.Tamano,
			Descripcion:   descripcion,
		})
	}

	err := runTx(ctx, s.evidencias.DB(), func(tx *gorm.DB) error {
		for _, e := range evidencias {
			if err := s.evidencias.CreateTx(tx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		limpiarArchivos(escritos)
		return nil, mapDBErr(err)
	}

	out := make([]dto.EvidenciaResponse, 0, len(evidencias))
	for _, e := range evidencias {
		out = append(out, evidenciaToResponse(e))
	}
	return out, nil
}

func (s *evidenciaService) ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.EvidenciaResponse, error) {
	evidencias, err := s.evidencias.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EvidenciaResponse, 0, len(evidencias))
	for i := range evidencias {
		out = append(out, evidenciaToResponse(&evidencias[i]))
	}
	return out, nil
}

// Eliminar removes the metadata row first; only after the commit is the file
// unlinked, best effort.
func (s *evidenciaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	e, err := s.evidencias.FindByID(ctx, id)
	if err != nil {
		return mapDBErr(err)
	}

	err = runTx(ctx, s.evidencias.DB(), func(tx *gorm.DB) error {
		return s.evidencias.DeleteTx(tx, id)
	})
	if err != nil {
		return mapDBErr(err)
	}

	abs := filepath.Join(s.baseDir, filepath.FromSlash(e.RutaArchivo))
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("ruta", abs).Msg("no se pudo borrar el archivo de evidencia")
	}
	return nil
}

func limpiarArchivos(rutas []string) {
	for _, r := range rutas {
		if err := os.Remove(r); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("ruta", r).Msg("no se pudo limpiar el archivo")
		}
	}
}

func evidenciaToResponse(e *model.Evidencia) dto.EvidenciaResponse {
	return dto.EvidenciaResponse{
		ID:            e.ID.String(),
		UsuarioID:     e.UsuarioID.String(),
		NombreArchivo: e.NombreArchivo,
		RutaArchivo:   e.RutaArchivo,
		TipoArchivo:   e.TipoArchivo,
		TamanoArchivo: e.TamanoArchivo,
		Descripcion:   e.Descripcion,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}
