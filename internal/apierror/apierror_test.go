package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	casos := []struct {
		err  error
		want int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusConflict},
		{errors.New("panico en la base"), http.StatusInternalServerError},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, StatusCode(c.err), "err %v", c.err)
	}
}

func TestStatusCodeConErroresEnvueltos(t *testing.T) {
	// Services wrap the sentinels with context; the status must survive
	err := fmt.Errorf("usuario %s: %w", "abc", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))

	err = fmt.Errorf("capa extra: %w", fmt.Errorf("entidad_id: %w", ErrValidation))
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
}

func TestNewValidation(t *testing.T) {
	e := NewValidation(map[string]string{"email": "formato invalido"})
	assert.Equal(t, "Error de validacion", e.Detail)
	assert.Equal(t, "formato invalido", e.Fields["email"])
}
