package repository

import (
	"context"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
)

// ExecutionFilter filtros de listagem de execuções.
type ExecutionFilter struct {
	Tipo         string
	Status       string
	ReferenciaID string
	Mes          int
	Ano          int
	Limit        int
	Offset       int
}

// ExecutionRepository porta de persistência de Execution.
type ExecutionRepository interface {
	Create(ctx context.Context, e *entity.Execution) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Execution, error)
	List(ctx context.Context, companyID string, f ExecutionFilter) ([]*entity.Execution, int, error)
	Update(ctx context.Context, e *entity.Execution) error
	UpdateState(ctx context.Context, e *entity.Execution) error
}
