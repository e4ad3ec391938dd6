package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingListRequest query de GET /aprovacao/pendentes.
type PendingListRequest struct {
	PageRequest
	Tipo         string `query:"tipo"`
	Status       string `query:"status"`
	Departamento string `query:"departamento"`
	DataInicio   string `query:"dataInicio"`
	DataFim      string `query:"dataFim"`
	Busca        string `query:"busca"`
}

// PendingItemResponse item da fila de aprovação; tipo é o discriminante.
type PendingItemResponse struct {
	ID           string          `json:"id"`
	Tipo         string          `json:"tipo"`
	Nome         string          `json:"nome"`
	Descricao    string          `json:"descricao"`
	Status       string          `json:"status"`
	Valor        decimal.Decimal `json:"valor"`
	Prioridade   string          `json:"prioridade"`
	Solicitante  string          `json:"solicitante"`
	Departamento string          `json:"departamento"`
	DataEnvio    *time.Time      `json:"data_envio"`
	Tags         []string        `json:"tags"`
	Anexos       []string        `json:"anexos"`
}

// PendingListResponse página da fila de aprovação.
type PendingListResponse struct {
	Data       []PendingItemResponse `json:"data"`
	Pagination Pagination            `json:"pagination"`
}

// PendingSummaryResponse contagem de pendentes por tipo.
type PendingSummaryResponse struct {
	Total   int            `json:"total"`
	PorTipo map[string]int `json:"por_tipo"`
}

// ApproveRequest corpo de PATCH /aprovacao/:tipo/:id/aprovar.
type ApproveRequest struct {
	Observacoes string `json:"observacoes"`
}

// RejectRequest corpo de PATCH /aprovacao/:tipo/:id/rejeitar.
type RejectRequest struct {
	Motivo string `json:"motivo" validate:"required"`
}

// DecisionResponse estado do item depois de aprovar ou rejeitar.
type DecisionResponse struct {
	ID             string     `json:"id"`
	Tipo           string     `json:"tipo"`
	Status         string     `json:"status"`
	Observacoes    string     `json:"observacoes,omitempty"`
	MotivoRejeicao string     `json:"motivo_rejeicao,omitempty"`
	DecidedBy      string     `json:"decided_by"`
	DecidedAt      *time.Time `json:"decided_at"`
	Version        int        `json:"version"`
}

// BatchItem referência a um item do lote.
type BatchItem struct {
	ID   string `json:"id"`
	Tipo string `json:"tipo"`
}

// BatchApproveRequest corpo de POST /aprovacao/lote/aprovar.
type BatchApproveRequest struct {
	Itens       []BatchItem `json:"itens"`
	Observacoes string      `json:"observacoes"`
}

// BatchItemResult resultado individual; Codigo segue os códigos de ErrorResponse.
type BatchItemResult struct {
	ID      string `json:"id"`
	Tipo    string `json:"tipo"`
	Sucesso bool   `json:"sucesso"`
	Erro    string `json:"erro,omitempty"`
	Codigo  string `json:"codigo,omitempty"`
}

// BatchApproveResponse resumo do lote: não é atómico, cada item tem o seu resultado.
type BatchApproveResponse struct {
	Total      int               `json:"total"`
	Aprovados  int               `json:"aprovados"`
	Falhas     int               `json:"falhas"`
	Resultados []BatchItemResult `json:"resultados"`
}
