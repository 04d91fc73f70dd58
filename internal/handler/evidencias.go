package handler

import (
	"io"
	"net/http"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/service"

	"github.com/gin-gonic/gin"
)

type EvidenciasHandler struct{ svc service.EvidenciaService }

func NewEvidenciasHandler(svc service.EvidenciaService) *EvidenciasHandler {
	return &EvidenciasHandler{svc: svc}
}

// Subir accepts a multipart form with an "archivos" file field (up to 5
// files) and an optional "descripcion" text field.
func (h *EvidenciasHandler) Subir(c *gin.Context) {
	usuarioID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario multipart invalido"))
		return
	}

	archivos := make([]dto.ArchivoSubido, 0, len(form.File["archivos"]))
	for _, fh := range form.File["archivos"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo "+fh.Filename))
			return
		}
		contenido, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo "+fh.Filename))
			return
		}
		archivos = append(archivos, dto.ArchivoSubido{
			NombreOriginal: fh.Filename,
			TipoMIME:       fh.Header.Get("Content-Type"),
			Tamano:         fh.Size,
			Contenido:      contenido,
		})
	}

	resp, err := h.svc.Subir(c.Request.Context(), usuarioID, c.PostForm("descripcion"), archivos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EvidenciasHandler) ListarPorUsuario(c *gin.Context) {
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

func (h *EvidenciasHandler) Eliminar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutacionResponse{Message: "Evidencia eliminada correctamente"})
}
