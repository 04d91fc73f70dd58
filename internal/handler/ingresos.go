package handler

import (
	"net/http"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/service"

	"github.com/gin-gonic/gin"
)

type IngresosHandler struct{ svc service.IngresoService }

func NewIngresosHandler(svc service.IngresoService) *IngresosHandler {
	return &IngresosHandler{svc: svc}
}

func (h *IngresosHandler) Crear(c *gin.Context) {
	var req dto.CrearIngresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *IngresosHandler) PorEntidad(c *gin.Context) {
	entidadID, ok := pathUUID(c, "entidadId")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorEntidad(c.Request.Context(), c.Param("tipoEntidad"), entidadID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *IngresosHandler) CompletoPorUsuario(c *gin.Context) {
	usuarioID, ok := pathUUID(c, "usuarioId")
	if !ok {
		return
	}
	resp, err := h.svc.CompletoPorUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *IngresosHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarIngresoRequest
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

func (h *IngresosHandler) Eliminar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutacionResponse{Message: "Ingreso eliminado correctamente"})
}
