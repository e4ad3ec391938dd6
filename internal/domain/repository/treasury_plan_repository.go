package repository

import (
	"context"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
)

// TreasuryPlanFilter filtros de listagem de planos.
type TreasuryPlanFilter struct {
	Status      string
	Mes         int
	Ano         int
	OrcamentoID string
	Busca       string
	Limit       int
	Offset      int
}

// TreasuryPlanRepository porta de persistência de TreasuryPlan com as suas linhas.
// Mesma semântica de versão que BudgetRepository.
type TreasuryPlanRepository interface {
	Create(ctx context.Context, p *entity.TreasuryPlan) error
	GetByID(ctx context.Context, companyID, id string) (*entity.TreasuryPlan, error)
	List(ctx context.Context, companyID string, f TreasuryPlanFilter) ([]*entity.TreasuryPlan, int, error)
	// Update substitui cabeçalho e todas as linhas (manuais e importadas).
	Update(ctx context.Context, p *entity.TreasuryPlan) error
	UpdateState(ctx context.Context, p *entity.TreasuryPlan) error
	SoftDelete(ctx context.Context, p *entity.TreasuryPlan) error
}
