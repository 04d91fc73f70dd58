package handler

import (
	"net/http"

	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanesSaludHandler struct{ svc service.PlanSaludService }

func NewPlanesSaludHandler(svc service.PlanSaludService) *PlanesSaludHandler {
	return &PlanesSaludHandler{svc: svc}
}

// Guardar upserts the user's plan: 201 when a row was created, 200 when the
// existing one was replaced.
func (h *PlanesSaludHandler) Guardar(c *gin.Context) {
	var req dto.GuardarPlanSaludRequest
	if !bindAndValidate(c, &req) {
		return
	}
	res, err := h.svc.Guardar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	mensaje := "Plan de salud actualizado correctamente"
	if res.Created {
		status = http.StatusCreated
		mensaje = "Plan de salud guardado correctamente"
	}
	c.JSON(status, dto.MutacionResponse{Message: mensaje, ID: res.ID})
}

func (h *PlanesSaludHandler) PorUsuario(c *gin.Context) {
	usuarioID, ok := pathUUID(c, "usuarioId")
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

func (h *PlanesSaludHandler) Obtener(c *gin.Context) {
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

func (h *PlanesSaludHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarPlanSaludRequest
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

func (h *PlanesSaludHandler) Eliminar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutacionResponse{Message: "Plan de salud eliminado correctamente"})
}
