package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/FinancePro-api/internal/domain"
)

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := fmt.Errorf("rejeitar: %w", domain.NewValidationError("motivo", "obrigatório"))

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "motivo", ve.Fields[0].Field)
	assert.Contains(t, err.Error(), "motivo: obrigatório")
}

func TestValidationError_OrNil(t *testing.T) {
	ve := &domain.ValidationError{}
	assert.NoError(t, ve.OrNil())

	ve.Add("ano", "fora do intervalo")
	assert.Error(t, ve.OrNil())
}

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{domain.NewValidationError("x", "y"), domain.CodeValidation},
		{fmt.Errorf("editar: %w", domain.ErrImmutableState), domain.CodeImmutableState},
		{fmt.Errorf("%w: rascunho → aprovado", domain.ErrInvalidTransition), domain.CodeInvalidTransition},
		{domain.ErrNotFound, domain.CodeNotFound},
		{domain.ErrConflict, domain.CodeConflict},
		{domain.ErrEmailAlreadyExists, domain.CodeDuplicate},
		{domain.ErrUnauthorized, domain.CodeUnauthorized},
		{domain.ErrForbidden, domain.CodeForbidden},
		{errors.New("boom"), domain.CodeInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.Code(tc.err), "%v", tc.err)
	}
}
