package finance_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/finance"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msg ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "esperado %s, obtido %s %v", want, got.String(), msg)
}

func TestComputeBudgetTotals_Exemplo(t *testing.T) {
	revenues := []entity.Revenue{{Total: d("100")}, {Total: d("50")}}
	costs := []entity.Cost{{Total: d("30")}}

	got := finance.ComputeBudgetTotals(revenues, costs, nil)

	assertDec(t, "150", got.TotalReceita)
	assertDec(t, "30", got.TotalCusto)
	assertDec(t, "0", got.TotalAtivos)
	assertDec(t, "120", got.ResultadoLiquido)
	assertDec(t, "80", got.Margem)
}

func TestComputeBudgetTotals_SemReceitaMargemZero(t *testing.T) {
	got := finance.ComputeBudgetTotals(nil, []entity.Cost{{Total: d("30")}}, nil)
	assertDec(t, "-30", got.ResultadoLiquido)
	assertDec(t, "0", got.Margem)
}

func TestComputeBudgetTotals_Idempotente(t *testing.T) {
	revenues := []entity.Revenue{{Total: d("1234.56")}, {Total: d("0.44")}}
	costs := []entity.Cost{{Total: d("999.99")}}
	assets := []entity.Asset{{Total: d("10")}}

	a := finance.ComputeBudgetTotals(revenues, costs, assets)
	b := finance.ComputeBudgetTotals(revenues, costs, assets)

	assert.Equal(t, a, b)
	assertDec(t, "1234.56", revenues[0].Total, "entradas não são alteradas")
}

func TestComputeTreasuryTotals_NecessidadeFinanciamento(t *testing.T) {
	inflows := []entity.Inflow{{Valor: d("100")}}
	outflows := []entity.Outflow{{Valor: d("200")}, {Valor: d("50")}}

	semSaldo := finance.ComputeTreasuryTotals(decimal.Zero, inflows, outflows, nil)
	assertDec(t, "150", semSaldo.NecessidadeFinanciamento)
	assertDec(t, "-150", semSaldo.NetFlow)
	assertDec(t, "-150", semSaldo.FinalBalance)

	comSaldo := finance.ComputeTreasuryTotals(d("200"), inflows, outflows, nil)
	assertDec(t, "0", comSaldo.NecessidadeFinanciamento, "nunca negativa")
	assertDec(t, "50", comSaldo.FinalBalance)
}

func TestComputeTreasuryTotals_FinanciamentoEntraNoFluxo(t *testing.T) {
	got := finance.ComputeTreasuryTotals(d("10"),
		[]entity.Inflow{{Valor: d("100")}},
		[]entity.Outflow{{Valor: d("250")}},
		[]entity.Financing{{Valor: d("150")}},
	)
	assertDec(t, "0", got.NetFlow)
	assertDec(t, "10", got.FinalBalance)
	assertDec(t, "140", got.NecessidadeFinanciamento)
}

func TestSumLineItems_Coercao(t *testing.T) {
	items := []map[string]any{
		{"total": 100.5},
		{"total": "49.5"},
		{"total": "abc"},
		{"total": nil},
		{"outro": 7},
		{"total": json.Number("10")},
		{"total": math.NaN()},
		{"total": true},
		nil,
	}
	assertDec(t, "160", finance.SumLineItems(items, "total"))
	assertDec(t, "0", finance.SumLineItems(nil, "total"))
}

func TestComputeSeasonalAllocation_Uniforme(t *testing.T) {
	var pct [12]decimal.Decimal
	for i := range pct {
		pct[i] = d("8.33")
	}
	months := finance.ComputeSeasonalAllocation(d("1200"), pct)

	sum := decimal.Zero
	for _, m := range months {
		assertDec(t, "99.96", m)
		sum = sum.Add(m)
	}
	f, _ := sum.Float64()
	assert.InDelta(t, 1200, f, 1.2, "dentro da tolerância de 0.1%%")
}

func TestComputeSeasonalAllocation_SomaExata(t *testing.T) {
	pct := [12]decimal.Decimal{d("8.37"), d("8.33"), d("8.33"), d("8.33"), d("8.33"), d("8.33"), d("8.33"), d("8.33"), d("8.33"), d("8.33"), d("8.33"), d("8.33")}
	months := finance.ComputeSeasonalAllocation(d("1200"), pct)
	total := decimal.Zero
	for _, m := range months {
		total = total.Add(m)
	}
	assertDec(t, "1200", total)
}

func TestValidateSeasonality(t *testing.T) {
	doze := func(v string) []decimal.Decimal {
		out := make([]decimal.Decimal, 12)
		for i := range out {
			out[i] = d(v)
		}
		return out
	}
	assert.NoError(t, finance.ValidateSeasonality(doze("8.33")), "99.96 está dentro da tolerância")
	assert.ErrorIs(t, finance.ValidateSeasonality(doze("8")), domain.ErrInvalidInput)
	assert.ErrorIs(t, finance.ValidateSeasonality(doze("8.33")[:11]), domain.ErrInvalidInput)

	neg := doze("8.33")
	neg[0] = d("-1")
	assert.ErrorIs(t, finance.ValidateSeasonality(neg), domain.ErrInvalidInput)

	months, err := finance.ToMonths(doze("8.34"))
	require.NoError(t, err)
	assertDec(t, "8.34", months[11])
}
