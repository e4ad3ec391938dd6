package dto

import "github.com/shopspring/decimal"

// ExecutionRequest criação ou atualização de uma execução.
type ExecutionRequest struct {
	Tipo           string          `json:"tipo" validate:"required,oneof=execucao_orcamental plano_execucao"`
	ReferenciaID   string          `json:"referencia_id" validate:"required"`
	Nome           string          `json:"nome" validate:"required"`
	Descricao      string          `json:"descricao"`
	Mes            int             `json:"mes"`
	Ano            int             `json:"ano"`
	ValorPrevisto  decimal.Decimal `json:"valor_previsto"`
	ValorExecutado decimal.Decimal `json:"valor_executado"`
	Departamento   string          `json:"departamento"`
	Prioridade     string          `json:"prioridade"`
	Tags           []string        `json:"tags"`
	Anexos         []string        `json:"anexos"`
	Version        *int            `json:"version,omitempty"`
}

// ExecutionResponse execução com desvio calculado.
type ExecutionResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	Tipo           string          `json:"tipo"`
	ReferenciaID   string          `json:"referencia_id"`
	Nome           string          `json:"nome"`
	Descricao      string          `json:"descricao"`
	Mes            int             `json:"mes"`
	Ano            int             `json:"ano"`
	ValorPrevisto  decimal.Decimal `json:"valor_previsto"`
	ValorExecutado decimal.Decimal `json:"valor_executado"`
	Desvio         decimal.Decimal `json:"desvio"`
	TaxaExecucao   decimal.Decimal `json:"taxa_execucao"`
	Departamento   string          `json:"departamento"`
	Prioridade     string          `json:"prioridade"`
	Tags           []string        `json:"tags"`
	Anexos         []string        `json:"anexos"`
	WorkflowFields
}

// ExecutionListRequest filtros de GET /execucoes.
type ExecutionListRequest struct {
	PageRequest
	Tipo         string `query:"tipo"`
	Status       string `query:"status"`
	ReferenciaID string `query:"referencia_id"`
	Mes          int    `query:"mes"`
	Ano          int    `query:"ano"`
}

// ExecutionListResponse página de execuções.
type ExecutionListResponse struct {
	Data       []ExecutionResponse `json:"data"`
	Pagination Pagination          `json:"pagination"`
}
