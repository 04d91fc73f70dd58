package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/infra"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"
	"github.com/davidzaratecamp/crm-backend-obama/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// JobEnqueuer pushes background jobs; *worker.Dispatcher satisfies it. A nil
// enqueuer disables notifications (unit tests, degraded mode without Redis).
type JobEnqueuer interface {
	Encolar(ctx context.Context, tipo string, payload interface{}) error
}

// cascadaEstadoUsuario maps each audit verdict to the estado_registro the
// client record must take.
var cascadaEstadoUsuario = map[string]string{
	model.AuditoriaAprobado:  model.RegistroAprobadoAuditor,
	model.AuditoriaRechazado: model.RegistroRechazadoAuditor,
	model.AuditoriaPendiente: model.RegistroEnRevision,
}

type AuditoriaService interface {
	ListarPendientes(ctx context.Context) ([]dto.AuditoriaListItem, error)
	ListarRechazadas(ctx context.Context) ([]dto.AuditoriaListItem, error)
	RechazadasPorAgente(ctx context.Context, agenteID uuid.UUID) ([]dto.AuditoriaListItem, error)
	Detalle(ctx context.Context, idGrabacion uuid.UUID) (*dto.AuditoriaDetalleResponse, error)
	ActualizarEstado(ctx context.Context, idGrabacion uuid.UUID, req dto.ActualizarAuditoriaRequest) error
	Reenviar(ctx context.Context, usuarioID uuid.UUID) error
	// DetallePDF writes the case file to disk and returns its path.
	DetallePDF(ctx context.Context, idGrabacion uuid.UUID) (string, error)
}

// AuditoriaDeps agrupa las dependencias del servicio de auditoria.
type AuditoriaDeps struct {
	Grabaciones  repository.GrabacionRepository
	Usuarios     repository.UsuarioRepository
	Dependientes repository.DependienteRepository
	Ingresos     repository.IngresoRepository
	Planes       repository.PlanSaludRepository
	Pagos        repository.InformacionPagoRepository
	Personal     repository.PersonalRepository
	Jobs         JobEnqueuer
	PDFDir       string
}

type auditoriaService struct {
	deps  AuditoriaDeps
	ahora func() time.Time
}

func NewAuditoriaService(deps AuditoriaDeps) AuditoriaService {
	return &auditoriaService{deps: deps, ahora: time.Now}
}

func (s *auditoriaService) ListarPendientes(ctx context.Context) ([]dto.AuditoriaListItem, error) {
	return s.deps.Grabaciones.ListPendientes(ctx)
}

func (s *auditoriaService) ListarRechazadas(ctx context.Context) ([]dto.AuditoriaListItem, error) {
	return s.deps.Grabaciones.ListRechazadas(ctx)
}

func (s *auditoriaService) RechazadasPorAgente(ctx context.Context, agenteID uuid.UUID) ([]dto.AuditoriaListItem, error) {
	return s.deps.Grabaciones.ListRechazadasPorAgente(ctx, agenteID)
}

// Detalle arma el expediente completo de una grabacion: cliente, conyuge
// separado del resto de dependientes, ingresos particionados, plan y pago.
func (s *auditoriaService) Detalle(ctx context.Context, idGrabacion uuid.UUID) (*dto.AuditoriaDetalleResponse, error) {
	g, err := s.deps.Grabaciones.FindByID(ctx, idGrabacion)
	if err != nil {
		return nil, mapDBErr(err)
	}
	u, err := s.deps.Usuarios.FindByID(ctx, g.IDUsuario)
	if err != nil {
		return nil, mapDBErr(err)
	}

	deps, err := s.deps.Dependientes.ListByUsuario(ctx, g.IDUsuario)
	if err != nil {
		return nil, err
	}

	out := &dto.AuditoriaDetalleResponse{
		Grabacion:    grabacionToResponse(g),
		Cliente:      usuarioToResponse(u),
		Dependientes: []dto.DependienteResponse{},
	}
	// El conyuge sale de la lista de dependientes y sus ingresos quedan
	// fuera del expediente; solo el primer conyuge se reporta.
	otros := make([]model.Dependiente, 0, len(deps))
	for i := range deps {
		if deps[i].Parentesco == model.ParentescoConyuge {
			if out.Conyuge == nil {
				r := dependienteToResponse(&deps[i])
				out.Conyuge = &r
			}
			continue
		}
		otros = append(otros, deps[i])
		out.Dependientes = append(out.Dependientes, dependienteToResponse(&deps[i]))
	}

	ingresos, err := cargarIngresosPorTitular(ctx, s.deps.Ingresos, g.IDUsuario, otros)
	if err != nil {
		return nil, err
	}
	out.Ingresos = *ingresos

	planes, err := s.deps.Planes.ListByUsuario(ctx, g.IDUsuario)
	if err != nil {
		return nil, err
	}
	out.PlanesSalud = make([]dto.PlanSaludResponse, 0, len(planes))
	for i := range planes {
		out.PlanesSalud = append(out.PlanesSalud, planSaludToResponse(&planes[i]))
	}

	pago, err := s.deps.Pagos.FindByUsuario(ctx, g.IDUsuario)
	switch {
	case err == nil:
		r := informacionPagoToResponse(pago)
		out.InformacionPago = &r
	case errors.Is(err, gorm.ErrRecordNotFound):
		// sin informacion de pago todavia
	default:
		return nil, err
	}

	return out, nil
}

// ActualizarEstado aplica el veredicto del auditor: actualiza la grabacion y
// cascadea el estado_registro del cliente en una sola transaccion. En
// rechazos encola la notificacion al agente despues del commit.
func (s *auditoriaService) ActualizarEstado(ctx context.Context, idGrabacion uuid.UUID, req dto.ActualizarAuditoriaRequest) error {
	estadoUsuario, ok := cascadaEstadoUsuario[req.EstadoAuditoria]
	if !ok {
		return fmt.Errorf("estado_auditoria %q: %w", req.EstadoAuditoria, apierror.ErrValidation)
	}

	var auditorID *uuid.UUID
	if req.IDAuditor != nil {
		id, err := parseUUID(*req.IDAuditor)
		if err != nil {
			return fmt.Errorf("id_auditor: %w", err)
		}
		auditorID = &id
	}

	g, err := s.deps.Grabaciones.FindByID(ctx, idGrabacion)
	if err != nil {
		return mapDBErr(err)
	}

	err = runTx(ctx, s.deps.Grabaciones.DB(), func(tx *gorm.DB) error {
		if err := s.deps.Grabaciones.ActualizarAuditoriaTx(tx, idGrabacion, req.EstadoAuditoria, req.ObservacionesAuditor, auditorID, s.ahora()); err != nil {
			return err
		}
		return s.deps.Usuarios.UpdateEstadoTx(tx, g.IDUsuario, estadoUsuario)
	})
	if err != nil {
		return mapDBErr(err)
	}

	if req.EstadoAuditoria == model.AuditoriaRechazado {
		s.notificarRechazo(ctx, g, req.ObservacionesAuditor)
	}
	return nil
}

// notificarRechazo es best effort: un fallo aqui nunca revierte la auditoria.
func (s *auditoriaService) notificarRechazo(ctx context.Context, g *model.Grabacion, observaciones *string) {
	if s.deps.Jobs == nil {
		return
	}
	agente, err := s.deps.Personal.FindByID(ctx, g.IDAgente)
	if err != nil {
		log.Warn().Err(err).Str("agente", g.IDAgente.String()).Msg("no se pudo cargar el agente para notificar")
		return
	}
	cliente, err := s.deps.Usuarios.FindByID(ctx, g.IDUsuario)
	if err != nil {
		log.Warn().Err(err).Str("usuario", g.IDUsuario.String()).Msg("no se pudo cargar el cliente para notificar")
		return
	}

	obs := ""
	if observaciones != nil {
		obs = *observaciones
	}
	payload := worker.EmailRechazoPayload{
		AgenteEmail:   agente.Email,
		AgenteNombre:  agente.Nombre,
		ClienteNombre: cliente.Nombres + " " + cliente.Apellidos,
		Observaciones: obs,
	}
	if err := s.deps.Jobs.Encolar(ctx, worker.JobEmailRechazo, payload); err != nil {
		log.Warn().Err(err).Msg("no se pudo encolar la notificacion de rechazo")
	}
}

// Reenviar toma la ultima grabacion rechazada del cliente, la regresa a
// pendiente limpiando los metadatos de auditoria y marca al cliente como
// pendiente_auditoria, todo en una transaccion.
func (s *auditoriaService) Reenviar(ctx context.Context, usuarioID uuid.UUID) error {
	g, err := s.deps.Grabaciones.FindUltimaRechazadaPorUsuario(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("el usuario no tiene grabaciones rechazadas: %w", apierror.ErrNotFound)
		}
		return err
	}

	err = runTx(ctx, s.deps.Grabaciones.DB(), func(tx *gorm.DB) error {
		if err := s.deps.Grabaciones.ReiniciarAuditoriaTx(tx, g.ID); err != nil {
			return err
		}
		return s.deps.Usuarios.UpdateEstadoTx(tx, usuarioID, model.RegistroPendienteAuditoria)
	})
	return mapDBErr(err)
}

func (s *auditoriaService) DetallePDF(ctx context.Context, idGrabacion uuid.UUID) (string, error) {
	detalle, err := s.Detalle(ctx, idGrabacion)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.deps.PDFDir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de PDFs: %w", err)
	}
	ruta := filepath.Join(s.deps.PDFDir, "auditoria_"+idGrabacion.String()+".pdf")
	if err := infra.GenerarPDFAuditoria(detalle, ruta); err != nil {
		return "", fmt.Errorf("generar PDF: %w", err)
	}
	return ruta, nil
}

func grabacionToResponse(g *model.Grabacion) dto.GrabacionResponse {
	resp := dto.GrabacionResponse{
		ID:                   g.ID.String(),
		IDUsuario:            g.IDUsuario.String(),
		IDAgente:             g.IDAgente.String(),
		Etiquetas:            g.Etiquetas,
		RutaAudio:            g.RutaAudio,
		FechaGrabacion:       g.FechaGrabacion.Format(time.RFC3339),
		EstadoAuditoria:      g.EstadoAuditoria,
		ObservacionesAuditor: g.ObservacionesAuditor,
		IDAuditor:            uuidPtrToString(g.IDAuditor),
	}
	if g.FechaAuditoria != nil {
		f := g.FechaAuditoria.Format(time.RFC3339)
		resp.FechaAuditoria = &f
	}
	return resp
}
