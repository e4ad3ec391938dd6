package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// Tipos de execução.
const (
	ExecutionKindOrcamental = "execucao_orcamental" // execução de um orçamento aprovado
	ExecutionKindPlano      = "plano_execucao"      // execução de um plano de tesouraria aprovado
)

// Execution registo mensal de execução (realizado vs. previsto) sujeito a aprovação.
type Execution struct {
	ID             string
	CompanyID      string
	Tipo           string
	ReferenciaID   string // orçamento ou plano de origem
	Nome           string
	Descricao      string
	Mes            int
	Ano            int
	ValorPrevisto  decimal.Decimal
	ValorExecutado decimal.Decimal
	Departamento   string
	Prioridade     string
	Tags           []string
	Anexos         []string
	Ativo          bool
	Excluido       bool
	workflow.State
}

// Desvio devolve ValorExecutado - ValorPrevisto.
func (e *Execution) Desvio() decimal.Decimal {
	return e.ValorExecutado.Sub(e.ValorPrevisto)
}

// TaxaExecucao percentagem executada (0 quando não há previsto).
func (e *Execution) TaxaExecucao() decimal.Decimal {
	if !e.ValorPrevisto.IsPositive() {
		return decimal.Zero
	}
	return e.ValorExecutado.Div(e.ValorPrevisto).Mul(decimal.NewFromInt(100)).Round(2)
}
