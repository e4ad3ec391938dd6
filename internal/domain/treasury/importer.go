// Package treasury deriva linhas de tesouraria a partir de um orçamento aprovado.
package treasury

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/finance"
	"github.com/jhoicas/FinancePro-api/pkg/pgc"
)

const (
	InflowDay         = 15
	OutflowDay        = 10
	InflowProbability = 90
)

var twelve = decimal.NewFromInt(12)

// ImportResult linhas derivadas para um mês. Todas marcadas FromBudget.
type ImportResult struct {
	Inflows  []entity.Inflow
	Outflows []entity.Outflow
}

// DeterminePriority prioridade de pagamento pelo prefixo PGC: pessoal (63) = 1,
// fornecimentos e serviços externos (62) = 2, resto = 3.
func DeterminePriority(contaPGC string) int {
	switch {
	case pgc.HasPrefix(contaPGC, pgc.PrefixPessoal):
		return entity.OutflowPriorityCritical
	case pgc.HasPrefix(contaPGC, pgc.PrefixServicosExternos):
		return entity.OutflowPriorityHigh
	default:
		return entity.OutflowPriorityNormal
	}
}

// MonthlyAmount parte mensal de uma linha anual.
//   - mensal: o valor já é mensal.
//   - com sazonalidade válida: total × pct[mês] / 100.
//   - caso contrário: total / 12.
//
// Arredondado a 2 casas.
func MonthlyAmount(total decimal.Decimal, periodicidade string, sazonalidade []decimal.Decimal, month int) decimal.Decimal {
	if periodicidade == entity.PeriodicidadeMensal {
		return total.Round(2)
	}
	if len(sazonalidade) > 0 {
		if months, err := finance.ToMonths(sazonalidade); err == nil {
			return finance.ComputeSeasonalAllocation(total, months)[month-1].Round(2)
		}
	}
	return total.Div(twelve).Round(2)
}

// ImportFromBudget gera entradas (receitas) e saídas (custos) do mês/ano indicado.
// Não toca nas linhas manuais do plano: quem chama substitui apenas as linhas FromBudget.
func ImportFromBudget(b *entity.Budget, month, year int) (ImportResult, error) {
	var res ImportResult
	if b == nil {
		return res, fmt.Errorf("%w: orçamento nulo", domain.ErrInvalidInput)
	}
	verr := &domain.ValidationError{}
	if month < 1 || month > 12 {
		verr.Add("mes", "deve estar entre 1 e 12")
	}
	if year < 1900 || year > 9999 {
		verr.Add("ano", "ano inválido")
	}
	if err := verr.OrNil(); err != nil {
		return res, err
	}

	inflowDate := time.Date(year, time.Month(month), InflowDay, 0, 0, 0, 0, time.UTC)
	outflowDate := time.Date(year, time.Month(month), OutflowDay, 0, 0, 0, 0, time.UTC)

	for _, r := range b.Revenues {
		amount := MonthlyAmount(r.Total, r.Periodicidade, r.Sazonalidade, month)
		if amount.IsZero() {
			continue
		}
		res.Inflows = append(res.Inflows, entity.Inflow{
			Descricao:     r.Descricao,
			ContaPGC:      r.ContaPGC,
			Valor:         amount,
			DataPrevista:  inflowDate,
			Probabilidade: InflowProbability,
			FromBudget:    true,
		})
	}
	for _, c := range b.Costs {
		amount := MonthlyAmount(c.Total, c.Periodicidade, c.Sazonalidade, month)
		if amount.IsZero() {
			continue
		}
		res.Outflows = append(res.Outflows, entity.Outflow{
			Descricao:      c.Descricao,
			ContaPGC:       c.ContaPGC,
			Valor:          amount,
			DataProgramada: outflowDate,
			Prioridade:     DeterminePriority(c.ContaPGC),
			FromBudget:     true,
		})
	}
	return res, nil
}

// Merge junta as linhas manuais do plano com um novo conjunto importado,
// descartando importações anteriores.
func Merge(p *entity.TreasuryPlan, imported ImportResult) {
	p.Inflows = append(p.ManualInflows(), imported.Inflows...)
	p.Outflows = append(p.ManualOutflows(), imported.Outflows...)
}
