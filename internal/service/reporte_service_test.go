package service

import (
	"context"
	"testing"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReporteRepo records what reaches the SQL layer; the services' allow
// lists must stop anything suspicious before that.
type fakeReporteRepo struct {
	contarLlamadas []string // "tabla/campo" per ContarPorRango call
	total          int64
	porAsesor      []dto.VentasPorAsesorItem
	ventasAgente   int64
}

func (r *fakeReporteRepo) ContarPorRango(_ context.Context, tabla, campo, _, _ string) (int64, error) {
	r.contarLlamadas = append(r.contarLlamadas, tabla+"/"+campo)
	return r.total, nil
}

func (r *fakeReporteRepo) VentasPorAsesor(_ context.Context, _, _ string) ([]dto.VentasPorAsesorItem, error) {
	return r.porAsesor, nil
}

func (r *fakeReporteRepo) ContarVentasAgente(_ context.Context, _ uuid.UUID, _, _ string) (int64, error) {
	return r.ventasAgente, nil
}

var _ repository.ReporteRepository = (*fakeReporteRepo)(nil)

func TestContadorVentas(t *testing.T) {
	reportes := &fakeReporteRepo{total: 17}
	svc := NewReporteService(reportes, newFakePersonalRepo(), nil)

	resp, err := svc.ContadorVentas(context.Background(), "usuarios", "created_at", "2026-08-01", "2026-08-31")

	require.NoError(t, err)
	assert.Equal(t, int64(17), resp.Total)
	assert.Equal(t, []string{"usuarios/created_at"}, reportes.contarLlamadas)
}

func TestContadorRechazaTablaFueraDeLista(t *testing.T) {
	reportes := &fakeReporteRepo{}
	svc := NewReporteService(reportes, newFakePersonalRepo(), nil)

	casos := []string{"personal", "usuarios; DROP TABLE personal--", "pg_catalog.pg_tables"}
	for _, tabla := range casos {
		_, err := svc.ContadorVentas(context.Background(), tabla, "created_at", "2026-08-01", "2026-08-31")
		assert.ErrorIs(t, err, apierror.ErrValidation, "tabla %q", tabla)
	}
	// Nothing reached the SQL layer
	assert.Empty(t, reportes.contarLlamadas)
}

func TestContadorRechazaCampoFueraDeLista(t *testing.T) {
	reportes := &fakeReporteRepo{}
	svc := NewReporteService(reportes, newFakePersonalRepo(), nil)

	_, err := svc.ContadorVentas(context.Background(), "usuarios", "respuesta_seguridad", "2026-08-01", "2026-08-31")

	assert.ErrorIs(t, err, apierror.ErrValidation)
	assert.Empty(t, reportes.contarLlamadas)
}

func TestContadorRechazaFechaMalformada(t *testing.T) {
	reportes := &fakeReporteRepo{}
	svc := NewReporteService(reportes, newFakePersonalRepo(), nil)

	casos := [][2]string{
		{"01-08-2026", "2026-08-31"},
		{"2026-08-01", "ayer"},
		{"2026-8-1", "2026-08-31"},
	}
	for _, c := range casos {
		_, err := svc.ContadorVentas(context.Background(), "usuarios", "created_at", c[0], c[1])
		assert.ErrorIs(t, err, apierror.ErrValidation, "rango %v", c)
	}
	assert.Empty(t, reportes.contarLlamadas)
}

func TestVentasPorAsesorValidaFechas(t *testing.T) {
	svc := NewReporteService(&fakeReporteRepo{}, newFakePersonalRepo(), nil)

	_, err := svc.VentasPorAsesor(context.Background(), "hoy", "2026-08-31")

	assert.ErrorIs(t, err, apierror.ErrValidation)
}

func TestVentasPorAsesor(t *testing.T) {
	reportes := &fakeReporteRepo{porAsesor: []dto.VentasPorAsesorItem{
		{AsesorID: uuid.NewString(), Nombre: "Carlos", Apellido: "Mendez", TotalVentas: 12},
	}}
	svc := NewReporteService(reportes, newFakePersonalRepo(), nil)

	items, err := svc.VentasPorAsesor(context.Background(), "2026-08-01", "2026-08-31")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(12), items[0].TotalVentas)
}

func TestResumenAgenteSinRedis(t *testing.T) {
	// A nil Redis client degrades to direct queries
	personal := newFakePersonalRepo()
	agente := seedAgente(personal)
	reportes := &fakeReporteRepo{ventasAgente: 9}
	svc := NewReporteService(reportes, personal, nil)

	resumen, err := svc.ResumenAgente(context.Background(), agente.ID, "2026-08-01", "2026-08-31")

	require.NoError(t, err)
	assert.Equal(t, int64(9), resumen.VentasActuales)
	assert.Equal(t, agente.MetaMensual, resumen.MetaMensual)
}

func TestResumenAgenteInexistente(t *testing.T) {
	svc := NewReporteService(&fakeReporteRepo{}, newFakePersonalRepo(), nil)

	_, err := svc.ResumenAgente(context.Background(), uuid.New(), "2026-08-01", "2026-08-31")

	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
