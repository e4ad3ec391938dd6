package repository

import (
	"context"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
)

// CompanyRepository porta de persistência de Company.
// A implementação vive em infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByNIF(ctx context.Context, nif string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, int, error)
	// CountDependents conta utilizadores ativos e orçamentos não excluídos da empresa.
	CountDependents(ctx context.Context, id string) (users, budgets int, err error)
	SoftDelete(ctx context.Context, id, actor string) error
}
