package approval

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

import (
	"context"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// PendingRepository consulta unificada sobre orçamentos, planos e execuções.
type PendingRepository interface {
	// ListPending devolve a página pedida e o total de itens que cumprem o filtro.
	ListPending(ctx context.Context, companyID string, f repository.PendingFilter) ([]entity.PendingItem, int, error)
	// CountPending número de itens em análise por tipo.
	CountPending(ctx context.Context, companyID string) (map[entity.PendingTipo]int, error)
}

// Transitioner aplica uma decisão (aprovado ou rejeitado) a um tipo concreto de item.
type Transitioner interface {
	Decide(ctx context.Context, companyID, actor, id string, target workflow.Status, note string) (workflow.State, error)
}
