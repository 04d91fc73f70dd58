package service

import (
	"context"
	"testing"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"
	"github.com/davidzaratecamp/crm-backend-obama/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIngresoFixture() (*fakeIngresoRepo, *fakeUsuarioRepo, *fakeDependienteRepo, IngresoService) {
	ingresos := newFakeIngresoRepo()
	usuarios := newFakeUsuarioRepo()
	dependientes := newFakeDependienteRepo()
	svc := NewIngresoService(ingresos, usuarios, dependientes)
	return ingresos, usuarios, dependientes, svc
}

func TestCrearIngresoDerivaElAnual(t *testing.T) {
	_, usuarios, _, svc := newIngresoFixture()
	u := seedUsuario(usuarios)

	resp, err := svc.Crear(context.Background(), dto.CrearIngresoRequest{
		TipoEntidad:       model.EntidadUsuario,
		EntidadID:         u.ID.String(),
		TipoDeclaracion:   "W2",
		IngresosSemanales: decimal.NewFromInt(500),
	})

	require.NoError(t, err)
	assert.Equal(t, "26000", resp.IngresosAnuales.String())
	assert.Equal(t, "500", resp.IngresosSemanales.String())
}

func TestCrearIngresoIgnoraAnualDelCliente(t *testing.T) {
	// The request DTO has no annual field at all; what reaches storage is
	// always semanales × 52.
	ingresos, usuarios, _, svc := newIngresoFixture()
	u := seedUsuario(usuarios)

	resp, err := svc.Crear(context.Background(), dto.CrearIngresoRequest{
		TipoEntidad:       model.EntidadUsuario,
		EntidadID:         u.ID.String(),
		TipoDeclaracion:   "W2",
		IngresosSemanales: decimal.NewFromFloat(123.45),
	})
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	guardado := ingresos.ingresos[id]
	require.NotNil(t, guardado)
	assert.Equal(t, "6419.4", guardado.IngresosAnuales.String())
}

func TestCrearIngresoEntidadInexistente(t *testing.T) {
	_, _, _, svc := newIngresoFixture()

	_, err := svc.Crear(context.Background(), dto.CrearIngresoRequest{
		TipoEntidad:       model.EntidadUsuario,
		EntidadID:         uuid.NewString(),
		TipoDeclaracion:   "W2",
		IngresosSemanales: decimal.NewFromInt(300),
	})

	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestCrearIngresoTipoEntidadInvalido(t *testing.T) {
	_, usuarios, _, svc := newIngresoFixture()
	u := seedUsuario(usuarios)

	_, err := svc.Crear(context.Background(), dto.CrearIngresoRequest{
		TipoEntidad:       "Empresa",
		EntidadID:         u.ID.String(),
		TipoDeclaracion:   "W2",
		IngresosSemanales: decimal.NewFromInt(300),
	})

	assert.ErrorIs(t, err, apierror.ErrValidation)
}

func TestCrearIngresoDuplicadoPorEntidad(t *testing.T) {
	_, usuarios, _, svc := newIngresoFixture()
	u := seedUsuario(usuarios)

	req := dto.CrearIngresoRequest{
		TipoEntidad:       model.EntidadUsuario,
		EntidadID:         u.ID.String(),
		TipoDeclaracion:   "W2",
		IngresosSemanales: decimal.NewFromInt(300),
	}
	_, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), req)
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestActualizarIngresoRecalculaElAnual(t *testing.T) {
	ingresos, usuarios, _, svc := newIngresoFixture()
	u := seedUsuario(usuarios)

	resp, err := svc.Crear(context.Background(), dto.CrearIngresoRequest{
		TipoEntidad:       model.EntidadUsuario,
		EntidadID:         u.ID.String(),
		TipoDeclaracion:   "W2",
		IngresosSemanales: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	actualizado, err := svc.Actualizar(context.Background(), id, dto.ActualizarIngresoRequest{
		TipoDeclaracion:   "1099",
		IngresosSemanales: decimal.NewFromInt(750),
	})
	require.NoError(t, err)

	assert.Equal(t, "39000", actualizado.IngresosAnuales.String())
	assert.Equal(t, "39000", ingresos.ingresos[id].IngresosAnuales.String())
	assert.Equal(t, "1099", ingresos.ingresos[id].TipoDeclaracion)
}

func TestCompletoPorUsuarioParticionaPorTitular(t *testing.T) {
	ingresos, usuarios, dependientes, svc := newIngresoFixture()
	u := seedUsuario(usuarios)

	dep := &model.Dependiente{ID: uuid.New(), UsuarioID: u.ID, Parentesco: "Hijo", Nombres: "Luis", Apellidos: "Lopez", Sexo: "M", FechaNacimiento: "2010-03-03"}
	dependientes.deps[dep.ID] = dep

	propio := &model.Ingreso{ID: uuid.New(), TipoEntidad: model.EntidadUsuario, EntidadID: u.ID, TipoDeclaracion: "W2", IngresosSemanales: decimal.NewFromInt(600), IngresosAnuales: decimal.NewFromInt(31200)}
	delHijo := &model.Ingreso{ID: uuid.New(), TipoEntidad: model.EntidadDependiente, EntidadID: dep.ID, TipoDeclaracion: "W2", IngresosSemanales: decimal.NewFromInt(200), IngresosAnuales: decimal.NewFromInt(10400)}
	ingresos.ingresos[propio.ID] = propio
	ingresos.ingresos[delHijo.ID] = delHijo

	out, err := svc.CompletoPorUsuario(context.Background(), u.ID)
	require.NoError(t, err)

	require.NotNil(t, out.Usuario)
	assert.Equal(t, u.ID.String(), out.Usuario.EntidadID)
	require.Len(t, out.Dependientes, 1)
	assert.Equal(t, dep.ID.String(), out.Dependientes[0].EntidadID)
}

func TestCompletoPorUsuarioSinDependientesNiIngresos(t *testing.T) {
	_, usuarios, _, svc := newIngresoFixture()
	u := seedUsuario(usuarios)

	out, err := svc.CompletoPorUsuario(context.Background(), u.ID)
	require.NoError(t, err)

	assert.Nil(t, out.Usuario)
	assert.Empty(t, out.Dependientes)
}

func TestListarPorEntidadRechazaTipoInvalido(t *testing.T) {
	_, _, _, svc := newIngresoFixture()

	_, err := svc.ListarPorEntidad(context.Background(), "Mascota", uuid.New())

	assert.ErrorIs(t, err, apierror.ErrValidation)
}
