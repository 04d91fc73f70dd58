package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Identifier allow-lists for the generic sales counter. Anything outside
// these sets is rejected before the SQL is built; dates always travel as
// bind parameters.
var (
	tablasReporte = map[string]struct{}{
		"usuarios": {},
		"ventas":   {},
		"clientes": {},
	}
	camposFechaReporte = map[string]struct{}{
		"created_at": {},
		"fecha":      {},
		"updated_at": {},
	}
)

const resumenCacheTTL = 60 * time.Second

type ReporteService interface {
	ContadorVentas(ctx context.Context, tabla, campo, desde, hasta string) (*dto.ContadorResponse, error)
	VentasPorAsesor(ctx context.Context, desde, hasta string) ([]dto.VentasPorAsesorItem, error)
	ResumenAgente(ctx context.Context, asesorID uuid.UUID, desde, hasta string) (*dto.ResumenAgenteResponse, error)
}

type reporteService struct {
	reportes repository.ReporteRepository
	personal repository.PersonalRepository
	rdb      *redis.Client // nil deshabilita el cache
}

func NewReporteService(reportes repository.ReporteRepository, personal repository.PersonalRepository, rdb *redis.Client) ReporteService {
	return &reporteService{reportes: reportes, personal: personal, rdb: rdb}
}

func validarFechaReporte(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("fecha %q: %w", s, apierror.ErrValidation)
	}
	return nil
}

func (s *reporteService) ContadorVentas(ctx context.Context, tabla, campo, desde, hasta string) (*dto.ContadorResponse, error) {
	if _, ok := tablasReporte[tabla]; !ok {
		return nil, fmt.Errorf("tabla %q no permitida: %w", tabla, apierror.ErrValidation)
	}
	if _, ok := camposFechaReporte[campo]; !ok {
		return nil, fmt.Errorf("campo %q no permitido: %w", campo, apierror.ErrValidation)
	}
	if err := validarFechaReporte(desde); err != nil {
		return nil, err
	}
	if err := validarFechaReporte(hasta); err != nil {
		return nil, err
	}

	total, err := s.reportes.ContarPorRango(ctx, tabla, campo, desde, hasta)
	if err != nil {
		return nil, err
	}
	return &dto.ContadorResponse{Total: total}, nil
}

func (s *reporteService) VentasPorAsesor(ctx context.Context, desde, hasta string) ([]dto.VentasPorAsesorItem, error) {
	if err := validarFechaReporte(desde); err != nil {
		return nil, err
	}
	if err := validarFechaReporte(hasta); err != nil {
		return nil, err
	}
	return s.reportes.VentasPorAsesor(ctx, desde, hasta)
}

// ResumenAgente sirve el dashboard del agente con un cache read-through de
// 60 segundos; un Redis caido degrada a consultas directas.
func (s *reporteService) ResumenAgente(ctx context.Context, asesorID uuid.UUID, desde, hasta string) (*dto.ResumenAgenteResponse, error) {
	if err := validarFechaReporte(desde); err != nil {
		return nil, err
	}
	if err := validarFechaReporte(hasta); err != nil {
		return nil, err
	}

	clave := fmt.Sprintf("dashboard:resumen:%s:%s:%s", asesorID, desde, hasta)
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, clave).Result(); err == nil {
			var cached dto.ResumenAgenteResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	agente, err := s.personal.FindByID(ctx, asesorID)
	if err != nil {
		return nil, mapDBErr(err)
	}
	total, err := s.reportes.ContarVentasAgente(ctx, asesorID, desde, hasta)
	if err != nil {
		return nil, err
	}

	resumen := &dto.ResumenAgenteResponse{VentasActuales: total, MetaMensual: agente.MetaMensual}
	if s.rdb != nil {
		raw, _ := json.Marshal(resumen)
		if err := s.rdb.Set(ctx, clave, raw, resumenCacheTTL).Err(); err != nil {
			log.Debug().Err(err).Str("clave", clave).Msg("no se pudo cachear el resumen")
		}
	}
	return resumen, nil
}
