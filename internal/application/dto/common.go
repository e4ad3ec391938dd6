package dto

import "github.com/jhoicas/FinancePro-api/internal/domain"

// Limites de paginação.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageRequest paginação por página (1..n) e limite.
type PageRequest struct {
	Pagina int `query:"pagina"`
	Limite int `query:"limite"`
}

// Normalize aplica valores por defeito e limita Limite a MaxLimit.
func (p *PageRequest) Normalize() {
	if p.Pagina < 1 {
		p.Pagina = 1
	}
	if p.Limite <= 0 {
		p.Limite = DefaultLimit
	}
	if p.Limite > MaxLimit {
		p.Limite = MaxLimit
	}
}

// Offset deslocamento SQL correspondente à página.
func (p PageRequest) Offset() int {
	if p.Pagina < 1 {
		return 0
	}
	return (p.Pagina - 1) * p.Limite
}

// Pagination metadados de página nas respostas.
type Pagination struct {
	Pagina       int `json:"pagina"`
	Limite       int `json:"limite"`
	Total        int `json:"total"`
	TotalPaginas int `json:"total_paginas"`
}

// NewPagination calcula o número de páginas.
func NewPagination(p PageRequest, total int) Pagination {
	pages := 0
	if p.Limite > 0 {
		pages = (total + p.Limite - 1) / p.Limite
	}
	return Pagination{Pagina: p.Pagina, Limite: p.Limite, Total: total, TotalPaginas: pages}
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// TransitionRequest corpo de PATCH .../aprovar|rejeitar|submeter|...
// Version, quando enviada, tem de coincidir com a versão gravada.
type TransitionRequest struct {
	Observacoes string `json:"observacoes"`
	Motivo      string `json:"motivo"`
	Version     *int   `json:"version,omitempty"`
}
