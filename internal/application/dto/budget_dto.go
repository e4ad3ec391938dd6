package dto

import "github.com/shopspring/decimal"

// RevenueLine linha de receita (Total é calculado, ignorado na entrada).
type RevenueLine struct {
	ID            string            `json:"id,omitempty"`
	Descricao     string            `json:"descricao"`
	ContaPGC      string            `json:"conta_pgc"`
	Quantidade    decimal.Decimal   `json:"quantidade"`
	PrecoUnitario decimal.Decimal   `json:"preco_unitario"`
	Total         decimal.Decimal   `json:"total"`
	Periodicidade string            `json:"periodicidade"`
	Sazonalidade  []decimal.Decimal `json:"sazonalidade,omitempty"`
}

// CostLine linha de custo.
type CostLine struct {
	ID            string            `json:"id,omitempty"`
	Descricao     string            `json:"descricao"`
	ContaPGC      string            `json:"conta_pgc"`
	Tipo          string            `json:"tipo"`
	Quantidade    decimal.Decimal   `json:"quantidade"`
	ValorUnitario decimal.Decimal   `json:"valor_unitario"`
	Total         decimal.Decimal   `json:"total"`
	Periodicidade string            `json:"periodicidade"`
	Sazonalidade  []decimal.Decimal `json:"sazonalidade,omitempty"`
}

// AssetLine linha de ativo.
type AssetLine struct {
	ID           string          `json:"id,omitempty"`
	Descricao    string          `json:"descricao"`
	ContaPGC     string          `json:"conta_pgc"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	Valor        decimal.Decimal `json:"valor"`
	Total        decimal.Decimal `json:"total"`
	VidaUtilAnos int             `json:"vida_util_anos"`
}

// BudgetRequest criação ou substituição completa de um orçamento.
type BudgetRequest struct {
	Nome         string        `json:"nome" validate:"required,max=200"`
	Descricao    string        `json:"descricao"`
	Ano          int           `json:"ano" validate:"required"`
	Departamento string        `json:"departamento"`
	Prioridade   string        `json:"prioridade" validate:"omitempty,oneof=alta media baixa"`
	Tags         []string      `json:"tags"`
	Anexos       []string      `json:"anexos"`
	Observacoes  string        `json:"observacoes"`
	Receitas     []RevenueLine `json:"receitas"`
	Custos       []CostLine    `json:"custos"`
	Ativos       []AssetLine   `json:"ativos"`
	Version      *int          `json:"version,omitempty"`
}

// BudgetTotalsResponse totais calculados.
type BudgetTotalsResponse struct {
	TotalReceita     decimal.Decimal `json:"total_receita"`
	TotalCusto       decimal.Decimal `json:"total_custo"`
	TotalAtivos      decimal.Decimal `json:"total_ativos"`
	ResultadoLiquido decimal.Decimal `json:"resultado_liquido"`
	Margem           decimal.Decimal `json:"margem"`
}

// BudgetResponse orçamento com linhas e totais.
type BudgetResponse struct {
	ID           string   `json:"id"`
	CompanyID    string   `json:"company_id"`
	Nome         string   `json:"nome"`
	Descricao    string   `json:"descricao"`
	Ano          int      `json:"ano"`
	Departamento string   `json:"departamento"`
	Prioridade   string   `json:"prioridade"`
	Tags         []string `json:"tags"`
	Anexos       []string `json:"anexos"`
	WorkflowFields
	Receitas []RevenueLine        `json:"receitas"`
	Custos   []CostLine           `json:"custos"`
	Ativos   []AssetLine          `json:"ativos"`
	Totais   BudgetTotalsResponse `json:"totais"`
}

// BudgetListRequest filtros de GET /orcamentos.
type BudgetListRequest struct {
	PageRequest
	Status       string `query:"status"`
	Ano          int    `query:"ano"`
	Departamento string `query:"departamento"`
	Busca        string `query:"busca"`
}

// BudgetListResponse página de orçamentos (sem linhas).
type BudgetListResponse struct {
	Data       []BudgetResponse `json:"data"`
	Pagination Pagination       `json:"pagination"`
}
