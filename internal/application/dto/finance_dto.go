package dto

import "github.com/shopspring/decimal"

// BudgetTotalsRequest linhas soltas (valores podem vir como texto); Campo por defeito "total".
type BudgetTotalsRequest struct {
	Receitas []map[string]any `json:"receitas"`
	Custos   []map[string]any `json:"custos"`
	Ativos   []map[string]any `json:"ativos"`
	Campo    string           `json:"campo"`
}

// TreasuryTotalsRequest linhas soltas de um plano; Campo por defeito "valor".
type TreasuryTotalsRequest struct {
	SaldoInicial   any              `json:"saldo_inicial"`
	Entradas       []map[string]any `json:"entradas"`
	Saidas         []map[string]any `json:"saidas"`
	Financiamentos []map[string]any `json:"financiamentos"`
	Campo          string           `json:"campo"`
}

// SeasonalityRequest total anual e 12 percentagens mensais.
type SeasonalityRequest struct {
	Total        decimal.Decimal   `json:"total"`
	Percentagens []decimal.Decimal `json:"percentagens"`
}

// SeasonalityResponse valores mensais calculados.
type SeasonalityResponse struct {
	Total   decimal.Decimal   `json:"total"`
	Mensal  []decimal.Decimal `json:"mensal"`
	SomaPct decimal.Decimal   `json:"soma_percentagens"`
}
