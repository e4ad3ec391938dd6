package search_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/FinancePro-api/pkg/search"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "orcamento anual", search.Fold("  Orçamento   ANUAL "))
	assert.Equal(t, "plano de tesouraria", search.Fold("Plano de Tesouraria"))
	assert.Equal(t, "execucao orcamental", search.Fold("Execução Orçamental"))
	assert.Equal(t, "", search.Fold("   "))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%credito%", search.LikePattern("Crédito"))
	assert.Equal(t, `%50\% margem\_a%`, search.LikePattern("50% margem_a"))
	assert.Equal(t, "", search.LikePattern(""))
}

func TestAccentTablesAlinhadas(t *testing.T) {
	assert.Equal(t, utf8.RuneCountInString(search.AccentFrom), utf8.RuneCountInString(search.AccentTo))
}
