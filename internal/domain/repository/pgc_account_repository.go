package repository

import (
	"context"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
)

// PGCAccountFilter filtros do plano de contas.
type PGCAccountFilter struct {
	Classe int
	Status string
	Busca  string
	Limit  int
	Offset int
}

// PGCAccountRepository porta de persistência das contas PGC de uma empresa.
type PGCAccountRepository interface {
	Create(ctx context.Context, a *entity.PGCAccount) error
	GetByCodigo(ctx context.Context, companyID, codigo string) (*entity.PGCAccount, error)
	List(ctx context.Context, companyID string, f PGCAccountFilter) ([]*entity.PGCAccount, int, error)
	Update(ctx context.Context, a *entity.PGCAccount) error
}
