package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain/finance"
)

// FinanceUseCase calculadora para o formulário: totais sobre linhas ainda não gravadas.
// Valores em falta ou ilegíveis contam como 0.
type FinanceUseCase struct{}

// NewFinanceUseCase constrói a calculadora.
func NewFinanceUseCase() *FinanceUseCase {
	return &FinanceUseCase{}
}

// BudgetTotals soma receitas, custos e ativos pelo campo indicado (por defeito "total").
func (uc *FinanceUseCase) BudgetTotals(in dto.BudgetTotalsRequest) dto.BudgetTotalsResponse {
	field := fieldOr(in.Campo, "total")
	t := finance.BudgetTotalsFrom(
		finance.SumLineItems(in.Receitas, field),
		finance.SumLineItems(in.Custos, field),
		finance.SumLineItems(in.Ativos, field),
	)
	return dto.BudgetTotalsResponse{
		TotalReceita:     t.TotalReceita,
		TotalCusto:       t.TotalCusto,
		TotalAtivos:      t.TotalAtivos,
		ResultadoLiquido: t.ResultadoLiquido,
		Margem:           t.Margem,
	}
}

// TreasuryTotals soma entradas, saídas e financiamentos (campo por defeito "valor").
func (uc *FinanceUseCase) TreasuryTotals(in dto.TreasuryTotalsRequest) dto.TreasuryTotalsResponse {
	field := fieldOr(in.Campo, "valor")
	t := finance.TreasuryTotalsFrom(
		finance.CoerceAmount(in.SaldoInicial),
		finance.SumLineItems(in.Entradas, field),
		finance.SumLineItems(in.Saidas, field),
		finance.SumLineItems(in.Financiamentos, field),
	)
	return dto.TreasuryTotalsResponse{
		SaldoInicial:             t.SaldoInicial,
		TotalEntradas:            t.TotalInflows,
		TotalSaidas:              t.TotalOutflows,
		TotalFinanciamento:       t.TotalFinancing,
		FluxoLiquido:             t.NetFlow,
		SaldoFinal:               t.FinalBalance,
		NecessidadeFinanciamento: t.NecessidadeFinanciamento,
	}
}

// Seasonality valida as 12 percentagens e reparte o total por mês (arredondado a 2 casas).
func (uc *FinanceUseCase) Seasonality(in dto.SeasonalityRequest) (*dto.SeasonalityResponse, error) {
	months, err := finance.ToMonths(in.Percentagens)
	if err != nil {
		return nil, err
	}
	alloc := finance.ComputeSeasonalAllocation(in.Total, months)
	out := &dto.SeasonalityResponse{Total: in.Total, Mensal: make([]decimal.Decimal, 12), SomaPct: decimal.Zero}
	for i, v := range alloc {
		out.Mensal[i] = v.Round(2)
		out.SomaPct = out.SomaPct.Add(months[i])
	}
	return out, nil
}

func fieldOr(field, def string) string {
	if f := strings.TrimSpace(field); f != "" {
		return f
	}
	return def
}
