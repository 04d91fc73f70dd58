package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlanSaludService drives the handler without storage. The first Guardar
// reports an insert, every later one an update, mirroring the upsert.
type fakePlanSaludService struct {
	guardados int
	planID    string
}

func (s *fakePlanSaludService) Guardar(_ context.Context, _ dto.GuardarPlanSaludRequest) (*dto.GuardarResult, error) {
	s.guardados++
	return &dto.GuardarResult{ID: s.planID, Created: s.guardados == 1}, nil
}

func (s *fakePlanSaludService) ListarPorUsuario(_ context.Context, _ uuid.UUID) ([]dto.PlanSaludResponse, error) {
	return []dto.PlanSaludResponse{}, nil
}

func (s *fakePlanSaludService) Obtener(_ context.Context, _ uuid.UUID) (*dto.PlanSaludResponse, error) {
	return nil, apierror.ErrNotFound
}

func (s *fakePlanSaludService) Actualizar(_ context.Context, _ uuid.UUID, _ dto.ActualizarPlanSaludRequest) (*dto.PlanSaludResponse, error) {
	return nil, apierror.ErrNotFound
}

func (s *fakePlanSaludService) Eliminar(_ context.Context, _ uuid.UUID) error {
	return apierror.ErrNotFound
}

var _ service.PlanSaludService = (*fakePlanSaludService)(nil)

func routerPlanes(svc service.PlanSaludService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPlanesSaludHandler(svc)
	r := gin.New()
	r.POST("/api/planes_salud", h.Guardar)
	r.GET("/api/planes_salud/:id", h.Obtener)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func reqGuardarPlan() map[string]interface{} {
	return map[string]interface{}{
		"usuario_id":  uuid.NewString(),
		"aseguradora": "Ambetter",
		"nombre_plan": "Balanced Care 29",
		"tipo_plan":   "Bronze",
		"valor_prima": 45.50,
	}
}

func TestGuardarPlanRespondeCreatedYLuegoOK(t *testing.T) {
	svc := &fakePlanSaludService{planID: uuid.NewString()}
	r := routerPlanes(svc)

	primero := postJSON(t, r, "/api/planes_salud", reqGuardarPlan())
	assert.Equal(t, http.StatusCreated, primero.Code)

	var resp dto.MutacionResponse
	require.NoError(t, json.Unmarshal(primero.Body.Bytes(), &resp))
	assert.Equal(t, svc.planID, resp.ID)

	segundo := postJSON(t, r, "/api/planes_salud", reqGuardarPlan())
	assert.Equal(t, http.StatusOK, segundo.Code)
}

func TestGuardarPlanRechazaCuerpoInvalido(t *testing.T) {
	svc := &fakePlanSaludService{planID: uuid.NewString()}
	r := routerPlanes(svc)

	cuerpo := reqGuardarPlan()
	delete(cuerpo, "aseguradora")

	w := postJSON(t, r, "/api/planes_salud", cuerpo)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.guardados)
}

func TestGuardarPlanRechazaJSONRoto(t *testing.T) {
	r := routerPlanes(&fakePlanSaludService{})

	req := httptest.NewRequest(http.MethodPost, "/api/planes_salud", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestObtenerPlanConIDBasura(t *testing.T) {
	r := routerPlanes(&fakePlanSaludService{})

	req := httptest.NewRequest(http.MethodGet, "/api/planes_salud/no-es-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestObtenerPlanInexistente(t *testing.T) {
	r := routerPlanes(&fakePlanSaludService{})

	req := httptest.NewRequest(http.MethodGet, "/api/planes_salud/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
