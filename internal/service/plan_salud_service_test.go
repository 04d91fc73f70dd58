package service

import (
	"context"
	"testing"

	"github.com/davidzaratecamp/crm-backend-obama/internal/apierror"
	"github.com/davidzaratecamp/crm-backend-obama/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardarPlanInsertaYLuegoActualiza(t *testing.T) {
	planes := newFakePlanSaludRepo()
	usuarios := newFakeUsuarioRepo()
	svc := NewPlanSaludService(planes, usuarios)
	u := seedUsuario(usuarios)

	req := dto.GuardarPlanSaludRequest{
		UsuarioID:   u.ID.String(),
		Aseguradora: "Ambetter",
		NombrePlan:  "Balanced Care 29",
		TipoPlan:    "Bronze",
		ValorPrima:  decimal.NewFromInt(0),
	}

	primero, err := svc.Guardar(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, primero.Created)

	req.NombrePlan = "Balanced Care 32"
	req.TipoPlan = "Silver"
	req.ValorPrima = decimal.NewFromFloat(45.50)

	segundo, err := svc.Guardar(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, segundo.Created)
	assert.Equal(t, primero.ID, segundo.ID)

	// Still a single row, with the updated plan
	require.Len(t, planes.planes, 1)
	guardado := planes.planes[uuid.MustParse(segundo.ID)]
	assert.Equal(t, "Balanced Care 32", guardado.NombrePlan)
	assert.Equal(t, "Silver", guardado.TipoPlan)
}

func TestGuardarPlanUsuarioInexistente(t *testing.T) {
	svc := NewPlanSaludService(newFakePlanSaludRepo(), newFakeUsuarioRepo())

	_, err := svc.Guardar(context.Background(), dto.GuardarPlanSaludRequest{
		UsuarioID:   uuid.NewString(),
		Aseguradora: "Ambetter",
		NombrePlan:  "Balanced Care 29",
		TipoPlan:    "Bronze",
		ValorPrima:  decimal.NewFromInt(0),
	})

	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestGuardarPlanUsuarioIDInvalido(t *testing.T) {
	svc := NewPlanSaludService(newFakePlanSaludRepo(), newFakeUsuarioRepo())

	_, err := svc.Guardar(context.Background(), dto.GuardarPlanSaludRequest{
		UsuarioID:   "no-es-uuid",
		Aseguradora: "Ambetter",
		NombrePlan:  "Balanced Care 29",
		TipoPlan:    "Bronze",
		ValorPrima:  decimal.NewFromInt(0),
	})

	assert.ErrorIs(t, err, apierror.ErrValidation)
}

func TestActualizarPlanPorID(t *testing.T) {
	planes := newFakePlanSaludRepo()
	usuarios := newFakeUsuarioRepo()
	svc := NewPlanSaludService(planes, usuarios)
	u := seedUsuario(usuarios)

	creado, err := svc.Guardar(context.Background(), dto.GuardarPlanSaludRequest{
		UsuarioID:   u.ID.String(),
		Aseguradora: "Oscar",
		NombrePlan:  "Simple Bronze",
		TipoPlan:    "Bronze",
		ValorPrima:  decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	deducible := decimal.NewFromInt(7500)
	resp, err := svc.Actualizar(context.Background(), uuid.MustParse(creado.ID), dto.ActualizarPlanSaludRequest{
		Aseguradora: "Oscar",
		NombrePlan:  "Simple Silver",
		TipoPlan:    "Silver",
		Deducible:   &deducible,
		ValorPrima:  decimal.NewFromInt(85),
	})
	require.NoError(t, err)

	assert.Equal(t, "Simple Silver", resp.NombrePlan)
	require.NotNil(t, resp.Deducible)
	assert.Equal(t, "7500", resp.Deducible.String())
}

func TestEliminarPlanInexistente(t *testing.T) {
	svc := NewPlanSaludService(newFakePlanSaludRepo(), newFakeUsuarioRepo())

	err := svc.Eliminar(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
