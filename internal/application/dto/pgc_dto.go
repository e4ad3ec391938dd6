package dto

import "time"

// PGCAccountRequest entrada para criar uma conta PGC.
type PGCAccountRequest struct {
	Codigo      string `json:"codigo" validate:"required"`
	Nome        string `json:"nome" validate:"required"`
	Observacoes string `json:"observacoes"`
}

// PGCAccountResponse conta PGC com o resultado da validação.
type PGCAccountResponse struct {
	ID           string    `json:"id"`
	Codigo       string    `json:"codigo"`
	Nome         string    `json:"nome"`
	Classe       int       `json:"classe"`
	ClasseNome   string    `json:"classe_nome"`
	Conformidade int       `json:"conformidade"`
	Status       string    `json:"status"`
	Observacoes  string    `json:"observacoes"`
	Problemas    []string  `json:"problemas,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PGCAccountListRequest filtros de GET /contas-pgc.
type PGCAccountListRequest struct {
	PageRequest
	Classe int    `query:"classe"`
	Status string `query:"status"`
	Busca  string `query:"busca"`
}

// PGCAccountListResponse página de contas.
type PGCAccountListResponse struct {
	Data       []PGCAccountResponse `json:"data"`
	Pagination Pagination           `json:"pagination"`
}
