package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanSaludService interface {
	// Guardar upserts the plan keyed by usuario_id. Created reports whether a
	// new row was inserted so the handler can answer 201 vs 200.
	Guardar(ctx context.Context, req dto.GuardarPlanSaludRequest) (*dto.GuardarResult, error)
	ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.PlanSaludResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PlanSaludResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPlanSaludRequest) (*dto.PlanSaludResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type planSaludService struct {
	planes   repository.PlanSaludRepository
	usuarios repository.UsuarioRepository
}

func NewPlanSaludService(planes repository.PlanSaludRepository, usuarios repository.UsuarioRepository) PlanSaludService {
	return &planSaludService{planes: planes, usuarios: usuarios}
}

func (s *planSaludService) Guardar(ctx context.Context, req dto.GuardarPlanSaludRequest) (*dto.GuardarResult, error) {
	usuarioID, err := parseUUID(req.UsuarioID)
	if err != nil {
		return nil, fmt.Errorf("usuario_id: %w", err)
	}
	if _, err := s.usuarios.FindByID(ctx, usuarioID); err != nil {
		return nil, mapDBErr(err)
	}

	existente, err := s.planes.FindByUsuario(ctx, usuarioID)
	switch {
	case err == nil:
		existente.Aseguradora = req.Aseguradora
		existente.NombrePlan = req.NombrePlan
		existente.TipoPlan = req.TipoPlan
		existente.Deducible = req.Deducible
		existente.GastoMaxBolsillo = req.GastoMaxBolsillo
		existente.ValorPrima = req.ValorPrima
		if err := s.planes.Update(ctx, existente); err != nil {
			return nil, mapDBErr(err)
		}
		return &dto.GuardarResult{ID: existente.ID.String(), Created: false}, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		p := &model.PlanSalud{
			UsuarioID:        usuarioID,
			Aseguradora:      req.Aseguradora,
			NombrePlan:       req.NombrePlan,
			TipoPlan:         req.TipoPlan,
			Deducible:        req.Deducible,
			GastoMaxBolsillo: req.GastoMaxBolsillo,
			ValorPrima:       req.ValorPrima,
		}
		if err := s.planes.Create(ctx, p); err != nil {
			return nil, mapDBErr(err)
		}
		return &dto.GuardarResult{ID: p.ID.String(), Created: true}, nil

	default:
		return nil, err
	}
}

func (s *planSaludService) ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.PlanSaludResponse, error) {
	planes, err := s.planes.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanSaludResponse, 0, len(planes))
	for i := range planes {
		out = append(out, planSaludToResponse(&planes[i]))
	}
	return out, nil
}

func (s *planSaludService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PlanSaludResponse, error) {
	p, err := s.planes.FindByID(ctx, id)
	if err != nil {
		return nil, mapDBErr(err)
	}
	resp := planSaludToResponse(p)
	return &resp, nil
}

func (s *planSaludService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPlanSaludRequest) (*dto.PlanSaludResponse, error) {
	p, err := s.planes.FindByID(ctx, id)
	if err != nil {
		return nil, mapDBErr(err)
	}

	p.Aseguradora = req.Aseguradora
	p.NombrePlan = req.NombrePlan
	p.TipoPlan = req.TipoPlan
	p.Deducible = req.Deducible
	p.GastoMaxBolsillo = req.GastoMaxBolsillo
	p.ValorPrima = req.ValorPrima

	if err := s.planes.Update(ctx, p); err != nil {
		return nil, mapDBErr(err)
	}
	resp := planSaludToResponse(p)
	return &resp, nil
}

func (s *planSaludService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return mapDBErr(s.planes.Delete(ctx, id))
}

func planSaludToResponse(p *model.PlanSalud) dto.PlanSaludResponse {
	return dto.PlanSaludResponse{
		ID:               p.ID.String(),
		UsuarioID:        p.UsuarioID.String(),
		Aseguradora:      p.Aseguradora,
		NombrePlan:       p.NombrePlan,
		TipoPlan:         p.TipoPlan,
		Deducible:        p.Deducible,
		GastoMaxBolsillo: p.GastoMaxBolsillo,
		ValorPrima:       p.ValorPrima,
	}
}
