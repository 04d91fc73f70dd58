package handler

import (
	"net/http"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/service"

	"github.com/gin-gonic/gin"
)

type DependientesHandler struct{ svc service.DependienteService }

func NewDependientesHandler(svc service.DependienteService) *DependientesHandler {
	return &DependientesHandler{svc: svc}
}

func (h *DependientesHandler) Crear(c *gin.Context) {
	usuarioID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.CrearDependienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DependientesHandler) ListarPorUsuario(c *gin.Context) {
	usuarioID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DependientesHandler) PorParentesco(c *gin.Context) {
	usuarioID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorParentesco(c.Request.Context(), usuarioID, c.Param("parentesco"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DependientesHandler) SinConyuge(c *gin.Context) {
	usuarioID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarSinConyuge(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DependientesHandler) Obtener(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DependientesHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarDependienteRequest
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

func (h *DependientesHandler) Eliminar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutacionResponse{Message: "Dependiente eliminado correctamente"})
}
