package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// Prioridades de pagamento de uma saída (1 = crítica).
const (
	OutflowPriorityCritical = 1
	OutflowPriorityHigh     = 2
	OutflowPriorityNormal   = 3
	OutflowPriorityLow      = 4
)

// TreasuryPlan (Plano de Tesouraria) mensal. OrcamentoID é uma referência fraca ao orçamento de origem.
type TreasuryPlan struct {
	ID                       string
	CompanyID                string
	Nome                     string
	Mes                      int
	Ano                      int
	SaldoInicial             decimal.Decimal
	OrcamentoID              string
	Departamento             string
	Prioridade               string
	Tags                     []string
	Anexos                   []string
	TotalEntradas            decimal.Decimal
	TotalSaidas              decimal.Decimal
	TotalFinanciamento       decimal.Decimal
	NecessidadeFinanciamento decimal.Decimal
	Ativo                    bool
	Excluido                 bool
	workflow.State

	Inflows    []Inflow
	Outflows   []Outflow
	Financings []Financing
}

// Inflow (Entrada) recebimento previsto.
type Inflow struct {
	ID            string
	PlanID        string
	Descricao     string
	ContaPGC      string
	Valor         decimal.Decimal
	DataPrevista  time.Time
	Probabilidade int // 0..100
	FromBudget    bool
}

// Outflow (Saída) pagamento programado.
type Outflow struct {
	ID             string
	PlanID         string
	Descricao      string
	ContaPGC       string
	Valor          decimal.Decimal
	DataProgramada time.Time
	Prioridade     int // 1..4
	FromBudget     bool
}

// Financing (Financiamento) fonte externa de financiamento.
type Financing struct {
	ID           string
	PlanID       string
	Descricao    string
	Fonte        string
	Valor        decimal.Decimal
	TaxaJuro     decimal.Decimal
	DataPrevista time.Time
}

// ManualInflows devolve as entradas introduzidas manualmente.
func (p *TreasuryPlan) ManualInflows() []Inflow {
	var out []Inflow
	for _, in := range p.Inflows {
		if !in.FromBudget {
			out = append(out, in)
		}
	}
	return out
}

// ManualOutflows devolve as saídas introduzidas manualmente.
func (p *TreasuryPlan) ManualOutflows() []Outflow {
	var out []Outflow
	for _, o := range p.Outflows {
		if !o.FromBudget {
			out = append(out, o)
		}
	}
	return out
}
