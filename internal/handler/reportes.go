package handler

import (
	"net/http"
	"time"

	"github.com/davidzaratecamp/crm-backend-obama/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Contador answers a generic row count over an allow-listed table and date
// column: GET /api/reportes/contador?tabla=usuarios&campo=created_at&desde=...&hasta=...
func (h *ReportesHandler) Contador(c *gin.Context) {
	resp, err := h.svc.ContadorVentas(
		c.Request.Context(),
		c.Query("tabla"),
		c.Query("campo"),
		c.Query("desde"),
		c.Query("hasta"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) VentasPorAsesor(c *gin.Context) {
	resp, err := h.svc.VentasPorAsesor(c.Request.Context(), c.Param("fechaInicio"), c.Param("fechaFin"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VentasDelMes is the agent dashboard: sales captured during the current
// calendar month against their monthly goal.
func (h *ReportesHandler) VentasDelMes(c *gin.Context) {
	asesorID, ok := pathUUID(c, "asesorId")
	if !ok {
		return
	}

	hoy := time.Now()
	desde := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, hoy.Location()).Format("2006-01-02")
	hasta := hoy.Format("2006-01-02")

	resp, err := h.svc.ResumenAgente(c.Request.Context(), asesorID, desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
