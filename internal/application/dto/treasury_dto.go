package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InflowLine entrada prevista.
type InflowLine struct {
	ID            string          `json:"id,omitempty"`
	Descricao     string          `json:"descricao"`
	ContaPGC      string          `json:"conta_pgc"`
	Valor         decimal.Decimal `json:"valor"`
	DataPrevista  time.Time       `json:"data_prevista"`
	Probabilidade int             `json:"probabilidade"`
	FromBudget    bool            `json:"from_budget"`
}

// OutflowLine saída programada.
type OutflowLine struct {
	ID             string          `json:"id,omitempty"`
	Descricao      string          `json:"descricao"`
	ContaPGC       string          `json:"conta_pgc"`
	Valor          decimal.Decimal `json:"valor"`
	DataProgramada time.Time       `json:"data_programada"`
	Prioridade     int             `json:"prioridade"`
	FromBudget     bool            `json:"from_budget"`
}

// FinancingLine financiamento.
type FinancingLine struct {
	ID           string          `json:"id,omitempty"`
	Descricao    string          `json:"descricao"`
	Fonte        string          `json:"fonte"`
	Valor        decimal.Decimal `json:"valor"`
	TaxaJuro     decimal.Decimal `json:"taxa_juro"`
	DataPrevista time.Time       `json:"data_prevista"`
}

// TreasuryPlanRequest criação ou atualização de um plano.
// Na atualização só as linhas manuais são substituídas; as importadas mantêm-se.
// Importar=true na criação importa de imediato o orçamento OrcamentoID.
type TreasuryPlanRequest struct {
	Nome           string          `json:"nome" validate:"required"`
	Mes            int             `json:"mes" validate:"min=1,max=12"`
	Ano            int             `json:"ano" validate:"required"`
	SaldoInicial   decimal.Decimal `json:"saldo_inicial"`
	OrcamentoID    string          `json:"orcamento_id"`
	Departamento   string          `json:"departamento"`
	Prioridade     string          `json:"prioridade"`
	Tags           []string        `json:"tags"`
	Anexos         []string        `json:"anexos"`
	Observacoes    string          `json:"observacoes"`
	Entradas       []InflowLine    `json:"entradas"`
	Saidas         []OutflowLine   `json:"saidas"`
	Financiamentos []FinancingLine `json:"financiamentos"`
	Importar       bool            `json:"importar"`
	Version        *int            `json:"version,omitempty"`
}

// TreasuryTotalsResponse totais calculados do plano.
type TreasuryTotalsResponse struct {
	SaldoInicial             decimal.Decimal `json:"saldo_inicial"`
	TotalEntradas            decimal.Decimal `json:"total_entradas"`
	TotalSaidas              decimal.Decimal `json:"total_saidas"`
	TotalFinanciamento       decimal.Decimal `json:"total_financiamento"`
	FluxoLiquido             decimal.Decimal `json:"fluxo_liquido"`
	SaldoFinal               decimal.Decimal `json:"saldo_final"`
	NecessidadeFinanciamento decimal.Decimal `json:"necessidade_financiamento"`
}

// TreasuryPlanResponse plano com linhas e totais.
type TreasuryPlanResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	Nome         string          `json:"nome"`
	Mes          int             `json:"mes"`
	Ano          int             `json:"ano"`
	SaldoInicial decimal.Decimal `json:"saldo_inicial"`
	OrcamentoID  string          `json:"orcamento_id,omitempty"`
	Departamento string          `json:"departamento"`
	Prioridade   string          `json:"prioridade"`
	Tags         []string        `json:"tags"`
	Anexos       []string        `json:"anexos"`
	WorkflowFields
	Entradas       []InflowLine           `json:"entradas"`
	Saidas         []OutflowLine          `json:"saidas"`
	Financiamentos []FinancingLine        `json:"financiamentos"`
	Totais         TreasuryTotalsResponse `json:"totais"`
}

// TreasuryPlanListRequest filtros de GET /tesouraria/planos.
type TreasuryPlanListRequest struct {
	PageRequest
	Status      string `query:"status"`
	Mes         int    `query:"mes"`
	Ano         int    `query:"ano"`
	OrcamentoID string `query:"orcamento_id"`
	Busca       string `query:"busca"`
}

// TreasuryPlanListResponse página de planos (sem linhas).
type TreasuryPlanListResponse struct {
	Data       []TreasuryPlanResponse `json:"data"`
	Pagination Pagination             `json:"pagination"`
}

// ImportBudgetRequest corpo de POST /tesouraria/planos/:id/importar-orcamento.
// Sem orcamento_id usa o orçamento já associado ao plano.
type ImportBudgetRequest struct {
	OrcamentoID string `json:"orcamento_id"`
	Version     *int   `json:"version,omitempty"`
}

// ImportBudgetResponse plano atualizado e contagem das linhas importadas.
type ImportBudgetResponse struct {
	Plano           TreasuryPlanResponse `json:"plano"`
	EntradasGeradas int                  `json:"entradas_geradas"`
	SaidasGeradas   int                  `json:"saidas_geradas"`
	LinhasManuais   int                  `json:"linhas_manuais"`
}
