package handler

import (
	"net/http"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/service"

	"github.com/gin-gonic/gin"
)

type AuditoriasHandler struct{ svc service.AuditoriaService }

func NewAuditoriasHandler(svc service.AuditoriaService) *AuditoriasHandler {
	return &AuditoriasHandler{svc: svc}
}

func (h *AuditoriasHandler) Pendientes(c *gin.Context) {
	resp, err := h.svc.ListarPendientes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuditoriasHandler) Rechazadas(c *gin.Context) {
	resp, err := h.svc.ListarRechazadas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuditoriasHandler) RechazadasPorAgente(c *gin.Context) {
	agenteID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.RechazadasPorAgente(c.Request.Context(), agenteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuditoriasHandler) Detalle(c *gin.Context) {
	id, ok := pathUUID(c, "idGrabacion")
	if !ok {
		return
	}
	resp, err := h.svc.Detalle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuditoriasHandler) ActualizarEstado(c *gin.Context) {
	id, ok := pathUUID(c, "idGrabacion")
	if !ok {
		return
	}
	var req dto.ActualizarAuditoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarEstado(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutacionResponse{Message: "Auditoria actualizada correctamente"})
}

func (h *AuditoriasHandler) Reenviar(c *gin.Context) {
	usuarioID, ok := pathUUID(c, "id_usuario")
	if !ok {
		return
	}
	if err := h.svc.Reenviar(c.Request.Context(), usuarioID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutacionResponse{Message: "Registro reenviado a auditoria"})
}

// PDF streams the generated case file as a download.
func (h *AuditoriasHandler) PDF(c *gin.Context) {
	id, ok := pathUUID(c, "idGrabacion")
	if !ok {
		return
	}
	ruta, err := h.svc.DetallePDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(ruta, "auditoria_"+id.String()+".pdf")
}
