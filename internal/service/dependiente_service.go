package service

import (
	"context"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"

	"github.com/google/uuid"
)

type DependienteService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearDependienteRequest) (*dto.DependienteResponse, error)
	ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.DependienteResponse, error)
	ListarPorParentesco(ctx context.Context, usuarioID uuid.UUID, parentesco string) ([]dto.DependienteResponse, error)
	ListarSinConyuge(ctx context.Context, usuarioID uuid.UUID) ([]dto.DependienteResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.DependienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarDependienteRequest) (*dto.DependienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type dependienteService struct {
	dependientes repository.DependienteRepository
	usuarios     repository.UsuarioRepository
}

func NewDependienteService(dependientes repository.DependienteRepository, usuarios repository.UsuarioRepository) DependienteService {
	return &dependienteService{dependientes: dependientes, usuarios: usuarios}
}

func (s *dependienteService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearDependienteRequest) (*dto.DependienteResponse, error) {
	if _, err := s.usuarios.FindByID(ctx, usuarioID); err != nil {
		return nil, mapDBErr(err)
	}

	d := &model.Dependiente{
		UsuarioID:         usuarioID,
		Parentesco:        req.Parentesco,
		SolicitaCobertura: req.SolicitaCobertura,
		Nombres:           req.Nombres,
		Apellidos:         req.Apellidos,
		Sexo:              req.Sexo,
		FechaNacimiento:   req.FechaNacimiento,
		Social:            req.Social,
		EstatusMigratorio: req.EstatusMigratorio,
		MedicareMedicaid:  req.MedicareMedicaid,
		Estado:            req.Estado,
		Condado:           req.Condado,
		Ciudad:            req.Ciudad,
	}
	if err := s.dependientes.Create(ctx, d); err != nil {
		return nil, mapDBErr(err)
	}
	resp := dependienteToResponse(d)
	return &resp, nil
}

func (s *dependienteService) ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.DependienteResponse, error) {
	deps, err := s.dependientes.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return dependientesToResponses(deps), nil
}

func (s *dependienteService) ListarPorParentesco(ctx context.Context, usuarioID uuid.UUID, parentesco string) ([]dto.DependienteResponse, error) {
	deps, err := s.dependientes.ListByUsuarioYParentesco(ctx, usuarioID, parentesco)
	if err != nil {
		return nil, err
	}
	return dependientesToResponses(deps), nil
}

func (s *dependienteService) ListarSinConyuge(ctx context.Context, usuarioID uuid.UUID) ([]dto.DependienteResponse, error) {
	deps, err := s.dependientes.ListByUsuarioSinConyuge(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return dependientesToResponses(deps), nil
}

func (s *dependienteService) Obtener(ctx context.Context, id uuid.UUID) (*dto.DependienteResponse, error) {
	d, err := s.dependientes.FindByID(ctx, id)
	if err != nil {
		return nil, mapDBErr(err)
	}
	resp := dependienteToResponse(d)
	return &resp, nil
}

func (s *dependienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarDependienteRequest) (*dto.DependienteResponse, error) {
	d, err := s.dependientes.FindByID(ctx, id)
	if err != nil {
		return nil, mapDBErr(err)
	}

	if req.Parentesco != nil {
		d.Parentesco = *req.Parentesco
	}
	if req.SolicitaCobertura != nil {
		d.SolicitaCobertura = *req.SolicitaCobertura
	}
	if req.Nombres != nil {
		d.Nombres = *req.Nombres
	}
	if req.Apellidos != nil {
		d.Apellidos = *req.Apellidos
	}
	if req.Sexo != nil {
		d.Sexo = *req.Sexo
	}
	if req.FechaNacimiento != nil {
		d.FechaNacimiento = *req.FechaNacimiento
	}
	if req.Social != nil {
		d.Social = req.Social
	}
	if req.EstatusMigratorio != nil {
		d.EstatusMigratorio = req.EstatusMigratorio
	}
	if req.MedicareMedicaid != nil {
		d.MedicareMedicaid = req.MedicareMedicaid
	}
	if req.Estado != nil {
		d.Estado = req.Estado
	}
	if req.Condado != nil {
		d.Condado = req.Condado
	}
	if req.Ciudad != nil {
		d.Ciudad = req.Ciudad
	}

	if err := s.dependientes.Update(ctx, d); err != nil {
		return nil, mapDBErr(err)
	}
	resp := dependienteToResponse(d)
	return &resp, nil
}

func (s *dependienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return mapDBErr(s.dependientes.Delete(ctx, id))
}

func dependienteToResponse(d *model.Dependiente) dto.DependienteResponse {
	return dto.DependienteResponse{
		ID:                d.ID.String(),
		UsuarioID:         d.UsuarioID.String(),
		Parentesco:        d.Parentesco,
		SolicitaCobertura: d.SolicitaCobertura,
		Nombres:           d.Nombres,
		Apellidos:         d.Apellidos,
		Sexo:              d.Sexo,
		FechaNacimiento:   d.FechaNacimiento,
		Social:            d.Social,
		EstatusMigratorio: d.EstatusMigratorio,
		MedicareMedicaid:  d.MedicareMedicaid,
		Estado:            d.Estado,
		Condado:           d.Condado,
		Ciudad:            d.Ciudad,
	}
}

func dependientesToResponses(deps []model.Dependiente) []dto.DependienteResponse {
	out := make([]dto.DependienteResponse, 0, len(deps))
	for i := range deps {
		out = append(out, dependienteToResponse(&deps[i]))
	}
	return out
}
