// Package finance agrega linhas de orçamento e tesouraria em totais.
// Todas as funções são puras: mesmas entradas, mesmo resultado, sem estado escondido.
package finance

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// BudgetTotals totais de um orçamento.
type BudgetTotals struct {
	TotalReceita     decimal.Decimal
	TotalCusto       decimal.Decimal
	TotalAtivos      decimal.Decimal
	ResultadoLiquido decimal.Decimal
	Margem           decimal.Decimal // % sobre a receita, 2 casas
}

// TreasuryTotals totais de um plano de tesouraria.
type TreasuryTotals struct {
	SaldoInicial             decimal.Decimal
	TotalInflows             decimal.Decimal
	TotalOutflows            decimal.Decimal
	TotalFinancing           decimal.Decimal
	NetFlow                  decimal.Decimal
	FinalBalance             decimal.Decimal
	NecessidadeFinanciamento decimal.Decimal
}

// CoerceAmount converte um valor solto (JSON, formulário) em decimal. Nunca falha:
// nulo, texto não numérico, NaN ou infinito valem 0.
func CoerceAmount(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case float32:
		return CoerceAmount(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	default:
		return decimal.Zero
	}
}

// SumLineItems soma o campo indicado de cada linha; campos ausentes ou inválidos contam 0.
func SumLineItems(items []map[string]any, field string) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it == nil {
			continue
		}
		total = total.Add(CoerceAmount(it[field]))
	}
	return total
}

// Sum soma value(item) para cada item.
func Sum[T any](items []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(value(it))
	}
	return total
}

// BudgetTotalsFrom deriva resultado e margem a partir dos três totais.
func BudgetTotalsFrom(totalReceita, totalCusto, totalAtivos decimal.Decimal) BudgetTotals {
	resultado := totalReceita.Sub(totalCusto)
	margem := decimal.Zero
	if totalReceita.IsPositive() {
		margem = resultado.Div(totalReceita).Mul(hundred).Round(2)
	}
	return BudgetTotals{
		TotalReceita:     totalReceita,
		TotalCusto:       totalCusto,
		TotalAtivos:      totalAtivos,
		ResultadoLiquido: resultado,
		Margem:           margem,
	}
}

// ComputeBudgetTotals totaliza receitas, custos e ativos de um orçamento.
func ComputeBudgetTotals(revenues []entity.Revenue, costs []entity.Cost, assets []entity.Asset) BudgetTotals {
	return BudgetTotalsFrom(
		Sum(revenues, func(r entity.Revenue) decimal.Decimal { return r.Total }),
		Sum(costs, func(c entity.Cost) decimal.Decimal { return c.Total }),
		Sum(assets, func(a entity.Asset) decimal.Decimal { return a.Total }),
	)
}

// TreasuryTotalsFrom deriva fluxo líquido, saldo final e necessidade de financiamento.
// A necessidade nunca é negativa: max(0, saídas - (entradas + saldo inicial)).
func TreasuryTotalsFrom(saldoInicial, totalIn, totalOut, totalFin decimal.Decimal) TreasuryTotals {
	net := totalIn.Add(totalFin).Sub(totalOut)
	need := totalOut.Sub(totalIn.Add(saldoInicial))
	if need.IsNegative() {
		need = decimal.Zero
	}
	return TreasuryTotals{
		SaldoInicial:             saldoInicial,
		TotalInflows:             totalIn,
		TotalOutflows:            totalOut,
		TotalFinancing:           totalFin,
		NetFlow:                  net,
		FinalBalance:             saldoInicial.Add(net),
		NecessidadeFinanciamento: need,
	}
}

// ComputeTreasuryTotals totaliza as linhas de um plano de tesouraria.
func ComputeTreasuryTotals(saldoInicial decimal.Decimal, inflows []entity.Inflow, outflows []entity.Outflow, financings []entity.Financing) TreasuryTotals {
	return TreasuryTotalsFrom(
		saldoInicial,
		Sum(inflows, func(i entity.Inflow) decimal.Decimal { return i.Valor }),
		Sum(outflows, func(o entity.Outflow) decimal.Decimal { return o.Valor }),
		Sum(financings, func(f entity.Financing) decimal.Decimal { return f.Valor }),
	)
}
