package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// Periodicidade de uma linha de receita/custo.
const (
	PeriodicidadeMensal     = "mensal"
	PeriodicidadeTrimestral = "trimestral"
	PeriodicidadeAnual      = "anual"
)

// ValidPeriodicidades valores aceites.
var ValidPeriodicidades = map[string]bool{
	PeriodicidadeMensal:     true,
	PeriodicidadeTrimestral: true,
	PeriodicidadeAnual:      true,
}

// Tipos de custo.
const (
	CostTypeMateriais = "materiais"
	CostTypeServicos  = "servicos"
	CostTypePessoal   = "pessoal"
	CostTypeFixos     = "fixos"
)

// ValidCostTypes valores aceites para Cost.Tipo.
var ValidCostTypes = map[string]bool{
	CostTypeMateriais: true,
	CostTypeServicos:  true,
	CostTypePessoal:   true,
	CostTypeFixos:     true,
}

// Prioridades de um item em aprovação.
const (
	PriorityAlta  = "alta"
	PriorityMedia = "media"
	PriorityBaixa = "baixa"
)

// ValidPriorities valores aceites.
var ValidPriorities = map[string]bool{PriorityAlta: true, PriorityMedia: true, PriorityBaixa: true}

// Budget (Orçamento) de um exercício. Só muda por atualização explícita ou transição de estado;
// aprovado/arquivado bloqueiam edição.
type Budget struct {
	ID           string
	CompanyID    string
	Nome         string
	Descricao    string
	Ano          int
	Departamento string
	Prioridade   string
	Tags         []string
	Anexos       []string
	Ativo        bool
	Excluido     bool
	workflow.State

	// Totais gravados no cabeçalho para listagens e fila de aprovação.
	TotalReceita decimal.Decimal
	TotalCusto   decimal.Decimal
	TotalAtivos  decimal.Decimal

	Revenues []Revenue
	Costs    []Cost
	Assets   []Asset
}

// Revenue (Receita) linha de receita: Total = Quantidade × PrecoUnitario.
type Revenue struct {
	ID            string
	BudgetID      string
	Descricao     string
	ContaPGC      string
	Quantidade    decimal.Decimal
	PrecoUnitario decimal.Decimal
	Total         decimal.Decimal
	Periodicidade string
	Sazonalidade  []decimal.Decimal // vazio ou 12 percentagens
}

// ComputeTotal recalcula Total.
func (r *Revenue) ComputeTotal() { r.Total = r.Quantidade.Mul(r.PrecoUnitario).Round(2) }

// Cost (Custo) linha de custo: Total = Quantidade × ValorUnitario.
type Cost struct {
	ID            string
	BudgetID      string
	Descricao     string
	ContaPGC      string
	Tipo          string
	Quantidade    decimal.Decimal
	ValorUnitario decimal.Decimal
	Total         decimal.Decimal
	Periodicidade string
	Sazonalidade  []decimal.Decimal
}

// ComputeTotal recalcula Total.
func (c *Cost) ComputeTotal() { c.Total = c.Quantidade.Mul(c.ValorUnitario).Round(2) }

// Asset (Ativo) investimento previsto: Total = Quantidade × Valor.
type Asset struct {
	ID           string
	BudgetID     string
	Descricao    string
	ContaPGC     string
	Quantidade   decimal.Decimal
	Valor        decimal.Decimal
	Total        decimal.Decimal
	VidaUtilAnos int
}

// ComputeTotal recalcula Total.
func (a *Asset) ComputeTotal() { a.Total = a.Quantidade.Mul(a.Valor).Round(2) }

// ComputeLineTotals recalcula o total de todas as linhas.
func (b *Budget) ComputeLineTotals() {
	for i := range b.Revenues {
		b.Revenues[i].ComputeTotal()
	}
	for i := range b.Costs {
		b.Costs[i].ComputeTotal()
	}
	for i := range b.Assets {
		b.Assets[i].ComputeTotal()
	}
}
