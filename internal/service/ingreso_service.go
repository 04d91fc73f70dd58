package service

import (
	"context"
	"fmt"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var semanasPorAno = decimal.NewFromInt(52)

type IngresoService interface {
	Crear(ctx context.Context, req dto.CrearIngresoRequest) (*dto.IngresoResponse, error)
	ListarPorEntidad(ctx context.Context, tipoEntidad string, entidadID uuid.UUID) ([]dto.IngresoResponse, error)
	CompletoPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*dto.IngresosPorTitular, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarIngresoRequest) (*dto.IngresoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ingresoService struct {
	ingresos     repository.IngresoRepository
	usuarios     repository.UsuarioRepository
	dependientes repository.DependienteRepository
}

func NewIngresoService(ingresos repository.IngresoRepository, usuarios repository.UsuarioRepository, dependientes repository.DependienteRepository) IngresoService {
	return &ingresoService{ingresos: ingresos, usuarios: usuarios, dependientes: dependientes}
}

func (s *ingresoService) Crear(ctx context.Context, req dto.CrearIngresoRequest) (*dto.IngresoResponse, error) {
	entidadID, err := parseUUID(req.EntidadID)
	if err != nil {
		return nil, fmt.Errorf("entidad_id: %w", err)
	}

	// The discriminated foreign key has no database-level constraint, so the
	// referenced row is checked here.
	switch req.TipoEntidad {
	case model.EntidadUsuario:
		if _, err := s.usuarios.FindByID(ctx, entidadID); err != nil {
			return nil, mapDBErr(err)
		}
	case model.EntidadDependiente:
		if _, err := s.dependientes.FindByID(ctx, entidadID); err != nil {
			return nil, mapDBErr(err)
		}
	default:
		return nil, fmt.Errorf("tipo_entidad %q: %w", req.TipoEntidad, apierror.ErrValidation)
	}

	i := &model.Ingreso{
		TipoEntidad:       req.TipoEntidad,
		EntidadID:         entidadID,
		TipoDeclaracion:   req.TipoDeclaracion,
		IngresosSemanales: req.IngresosSemanales,
		IngresosAnuales:   req.IngresosSemanales.Mul(semanasPorAno),
	}
	if err := s.ingresos.Create(ctx, i); err != nil {
		return nil, mapDBErr(err)
	}
	resp := ingresoToResponse(i)
	return &resp, nil
}

func (s *ingresoService) ListarPorEntidad(ctx context.Context, tipoEntidad string, entidadID uuid.UUID) ([]dto.IngresoResponse, error) {
	if tipoEntidad != model.EntidadUsuario && tipoEntidad != model.EntidadDependiente {
		return nil, fmt.Errorf("tipo_entidad %q: %w", tipoEntidad, apierror.ErrValidation)
	}
	ingresos, err := s.ingresos.ListByEntidad(ctx, tipoEntidad, entidadID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngresoResponse, 0, len(ingresos))
	for i := range ingresos {
		out = append(out, ingresoToResponse(&ingresos[i]))
	}
	return out, nil
}

func (s *ingresoService) CompletoPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*dto.IngresosPorTitular, error) {
	if _, err := s.usuarios.FindByID(ctx, usuarioID); err != nil {
		return nil, mapDBErr(err)
	}
	deps, err := s.dependientes.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return cargarIngresosPorTitular(ctx, s.ingresos, usuarioID, deps)
}

func (s *ingresoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarIngresoRequest) (*dto.IngresoResponse, error) {
	i, err := s.ingresos.FindByID(ctx, id)
	if err != nil {
		return nil, mapDBErr(err)
	}

	i.TipoDeclaracion = req.TipoDeclaracion
	i.IngresosSemanales = req.IngresosSemanales
	i.IngresosAnuales = req.IngresosSemanales.Mul(semanasPorAno)

	if err := s.ingresos.Update(ctx, i); err != nil {
		return nil, mapDBErr(err)
	}
	resp := ingresoToResponse(i)
	return &resp, nil
}

func (s *ingresoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return mapDBErr(s.ingresos.Delete(ctx, id))
}

// cargarIngresosPorTitular fetches every income for a user and their
// dependents in a single IN query over {usuario} ∪ {dependientes} and
// partitions the rows by discriminator. The id set always contains the user,
// so the query never runs over an empty set.
func cargarIngresosPorTitular(ctx context.Context, repo repository.IngresoRepository, usuarioID uuid.UUID, deps []model.Dependiente) (*dto.IngresosPorTitular, error) {
	ids := make([]uuid.UUID, 0, len(deps)+1)
	ids = append(ids, usuarioID)
	for i := range deps {
		ids = append(ids, deps[i].ID)
	}

	ingresos, err := repo.ListByEntidadIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := &dto.IngresosPorTitular{Dependientes: []dto.IngresoResponse{}}
	for i := range ingresos {
		r := ingresoToResponse(&ingresos[i])
		if ingresos[i].TipoEntidad == model.EntidadUsuario {
			u := r
			out.Usuario = &u
			continue
		}
		out.Dependientes = append(out.Dependientes, r)
	}
	return out, nil
}

func ingresoToResponse(i *model.Ingreso) dto.IngresoResponse {
	return dto.IngresoResponse{
		ID:                i.ID.String(),
		TipoEntidad:       i.TipoEntidad,
		EntidadID:         i.EntidadID.String(),
		TipoDeclaracion:   i.TipoDeclaracion,
		IngresosSemanales: i.IngresosSemanales,
		IngresosAnuales:   i.IngresosAnuales,
	}
}
