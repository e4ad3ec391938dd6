package repository

import (
	"context"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
)

// BudgetFilter filtros de listagem de orçamentos.
type BudgetFilter struct {
	Status       string
	Ano          int
	Departamento string
	Busca        string
	Limit        int
	Offset       int
}

// BudgetRepository porta de persistência de Budget com as suas linhas.
//
// Update, UpdateState e SoftDelete fazem compare-and-swap sobre Version:
// quando a versão gravada difere de b.Version devolvem domain.ErrConflict.
// Em sucesso avançam b.Version.
type BudgetRepository interface {
	// Create grava cabeçalho e linhas.
	Create(ctx context.Context, b *entity.Budget) error
	// GetByID devolve o orçamento com linhas, ou (nil, nil) se não existir na empresa.
	GetByID(ctx context.Context, companyID, id string) (*entity.Budget, error)
	// List devolve apenas cabeçalhos e o total sem paginação.
	List(ctx context.Context, companyID string, f BudgetFilter) ([]*entity.Budget, int, error)
	// GetLatestApproved orçamento aprovado mais recente do ano, ou (nil, nil).
	GetLatestApproved(ctx context.Context, companyID string, ano int) (*entity.Budget, error)
	// Update substitui campos de negócio e todas as linhas.
	Update(ctx context.Context, b *entity.Budget) error
	// UpdateState grava apenas os campos de workflow.State.
	UpdateState(ctx context.Context, b *entity.Budget) error
	SoftDelete(ctx context.Context, b *entity.Budget) error
}
