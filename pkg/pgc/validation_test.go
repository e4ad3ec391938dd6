package pgc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/FinancePro-api/pkg/pgc"
)

func TestValidateCode(t *testing.T) {
	cases := []struct {
		code string
		ok   bool
	}{
		{"6311", true},
		{"71", true},
		{"12345678", true},
		{"1", false},
		{"123456789", false},
		{"9100", false},
		{"0100", false},
		{"63A1", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			err := pgc.ValidateCode(tc.code)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_Pontuacao(t *testing.T) {
	ok := pgc.Validate("6210", "Fornecimentos e serviços externos")
	assert.Equal(t, 100, ok.Conformidade)
	assert.Equal(t, pgc.StatusValidada, ok.Status)
	assert.Equal(t, pgc.ClassCustos, ok.Classe)
	assert.Empty(t, ok.Problemas)

	semNome := pgc.Validate("6210", " ")
	assert.Equal(t, 75, semNome.Conformidade)
	assert.Equal(t, pgc.StatusRevisao, semNome.Status)

	classeInvalida := pgc.Validate("9999", "Conta fantasma")
	assert.Equal(t, 75, classeInvalida.Conformidade)
	assert.Equal(t, pgc.StatusErro, classeInvalida.Status)

	lixo := pgc.Validate("abc", "")
	assert.Equal(t, pgc.StatusErro, lixo.Status)
	assert.Len(t, lixo.Problemas, 3)
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, pgc.HasPrefix(" 6311", pgc.PrefixPessoal))
	assert.False(t, pgc.HasPrefix("6210", pgc.PrefixPessoal))
}
