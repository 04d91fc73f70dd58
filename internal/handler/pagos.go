package handler

import (
	"net/http"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/service"

	"github.com/gin-gonic/gin"
)

type PagosHandler struct{ svc service.InformacionPagoService }

func NewPagosHandler(svc service.InformacionPagoService) *PagosHandler {
	return &PagosHandler{svc: svc}
}

func (h *PagosHandler) Guardar(c *gin.Context) {
	var req dto.GuardarInformacionPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	res, err := h.svc.Guardar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	mensaje := "Informacion de pago actualizada correctamente"
	if res.Created {
		status = http.StatusCreated
		mensaje = "Informacion de pago guardada correctamente"
	}
	c.JSON(status, dto.MutacionResponse{Message: mensaje, ID: res.ID})
}

func (h *PagosHandler) PorUsuario(c *gin.Context) {
	usuarioID, ok := pathUUID(c, "usuarioId")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PagosHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarInformacionPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PagosHandler) Eliminar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutacionResponse{Message: "Informacion de pago eliminada correctamente"})
}
