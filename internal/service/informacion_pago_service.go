package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InformacionPagoService interface {
	Guardar(ctx context.Context, req dto.GuardarInformacionPagoRequest) (*dto.GuardarResult, error)
	ObtenerPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*dto.InformacionPagoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarInformacionPagoRequest) (*dto.InformacionPagoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type informacionPagoService struct {
	pagos    repository.InformacionPagoRepository
	usuarios repository.UsuarioRepository
	ahora    func() time.Time
}

func NewInformacionPagoService(pagos repository.InformacionPagoRepository, usuarios repository.UsuarioRepository) InformacionPagoService {
	return &informacionPagoService{pagos: pagos, usuarios: usuarios, ahora: time.Now}
}

// validarExpiracion rejects cards already expired or with an implausible
// expiry year (beyond ten years out).
func (s *informacionPagoService) validarExpiracion(mes, ano int) error {
	now := s.ahora()
	if ano < now.Year() || ano > now.Year()+10 {
		return fmt.Errorf("fecha de expiracion fuera de rango: %w", apierror.ErrValidation)
	}
	if ano == now.Year() && mes < int(now.Month()) {
		return fmt.Errorf("la tarjeta ya expiro: %w", apierror.ErrValidation)
	}
	return nil
}

func (s *informacionPagoService) Guardar(ctx context.Context, req dto.GuardarInformacionPagoRequest) (*dto.GuardarResult, error) {
	usuarioID, err := parseUUID(req.UsuarioID)
	if err != nil {
		return nil, fmt.Errorf("usuario_id: %w", err)
	}
	if err := s.validarExpiracion(req.FechaExpiracionMes, req.FechaExpiracionAno); err != nil {
		return nil, err
	}
	if _, err := s.usuarios.FindByID(ctx, usuarioID); err != nil {
		return nil, mapDBErr(err)
	}

	existente, err := s.pagos.FindByUsuario(ctx, usuarioID)
	switch {
	case err == nil:
		existente.Ultimos4DigitosTarjeta = req.Ultimos4DigitosTarjeta
		existente.TokenPago = req.TokenPago
		existente.FechaExpiracionMes = req.FechaExpiracionMes
		existente.FechaExpiracionAno = req.FechaExpiracionAno
		if err := s.pagos.Update(ctx, existente); err != nil {
			return nil, mapDBErr(err)
		}
		return &dto.GuardarResult{ID: existente.ID.String(), Created: false}, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		p := &model.InformacionPago{
			UsuarioID:              usuarioID,
			Ultimos4DigitosTarjeta: req.Ultimos4DigitosTarjeta,
			TokenPago:              req.TokenPago,
			FechaExpiracionMes:     req.FechaExpiracionMes,
			FechaExpiracionAno:     req.FechaExpiracionAno,
		}
		if err := s.pagos.Create(ctx, p); err != nil {
			return nil, mapDBErr(err)
		}
		return &dto.GuardarResult{ID: p.ID.String(), Created: true}, nil

	default:
		return nil, err
	}
}

func (s *informacionPagoService) ObtenerPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*dto.InformacionPagoResponse, error) {
	p, err := s.pagos.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapDBErr(err)
	}
	resp := informacionPagoToResponse(p)
	return &resp, nil
}

func (s *informacionPagoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarInformacionPagoRequest) (*dto.InformacionPagoResponse, error) {
	if err := s.validarExpiracion(req.FechaExpiracionMes, req.FechaExpiracionAno); err != nil {
		return nil, err
	}
	p, err := s.pagos.FindByID(ctx, id)
	if err != nil {
		return nil, mapDBErr(err)
	}

	p.Ultimos4DigitosTarjeta = req.Ultimos4DigitosTarjeta
	p.TokenPago = req.TokenPago
	p.FechaExpiracionMes = req.FechaExpiracionMes
	p.FechaExpiracionAno = req.FechaExpiracionAno

	if err := s.pagos.Update(ctx, p); err != nil {
		return nil, mapDBErr(err)
	}
	resp := informacionPagoToResponse(p)
	return &resp, nil
}

func (s *informacionPagoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return mapDBErr(s.pagos.Delete(ctx, id))
}

// informacionPagoToResponse never copies the payment token.
func informacionPagoToResponse(p *model.InformacionPago) dto.InformacionPagoResponse {
	return dto.InformacionPagoResponse{
		ID:                     p.ID.String(),
		UsuarioID:              p.UsuarioID.String(),
		Ultimos4DigitosTarjeta: p.Ultimos4DigitosTarjeta,
		FechaExpiracionMes:     p.FechaExpiracionMes,
		FechaExpiracionAno:     p.FechaExpiracionAno,
	}
}
