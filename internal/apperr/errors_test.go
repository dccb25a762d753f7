package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		typ    Type
		status int
	}{
		{"validation", Validation("weak password"), TypeValidation, http.StatusBadRequest},
		{"auth", Auth("invalid session"), TypeAuth, http.StatusUnauthorized},
		{"forbidden", Forbidden("not your profile"), TypeForbidden, http.StatusForbidden},
		{"not found", NotFound("recipient not found"), TypeNotFound, http.StatusNotFound},
		{"conflict", Conflict("email already registered"), TypeConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Equal(t, tt.status, tt.err.HTTPStatus())
			assert.Contains(t, tt.err.Error(), tt.err.Message)
			assert.Nil(t, tt.err.Cause)
		})
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := fmt.Errorf("store unavailable")
	err := Internal("something went wrong", cause)

	assert.Equal(t, TypeInternal, err.Type)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.ErrorIs(t, err, cause)
}

func TestFromPassesThroughTypedErrors(t *testing.T) {
	original := Conflict("email already registered")

	converted := From(fmt.Errorf("register: %w", original))

	require.NotNil(t, converted)
	assert.Equal(t, TypeConflict, converted.Type)
	assert.Equal(t, "email already registered", converted.Message)
}

func TestFromHidesUnknownErrors(t *testing.T) {
	converted := From(errors.New("pq: connection refused"))

	assert.Equal(t, TypeInternal, converted.Type)
	assert.Equal(t, "internal server error", converted.Message)
	assert.NotContains(t, converted.Message, "pq")
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Auth("session expired"))

	assert.True(t, IsType(err, TypeAuth))
	assert.False(t, IsType(err, TypeForbidden))
	assert.False(t, IsType(errors.New("plain"), TypeAuth))
}
