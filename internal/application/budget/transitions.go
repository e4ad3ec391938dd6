package budget

import (
	"context"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// Transition muda o estado do orçamento. Para rejeitado a nota é o motivo; nos restantes, a observação.
func (uc *UseCase) Transition(ctx context.Context, companyID, actor, id string, target workflow.Status, in dto.TransitionRequest) (*dto.BudgetResponse, error) {
	note := in.Observacoes
	if target == workflow.StatusRejeitado {
		note = in.Motivo
	}
	b, err := uc.transition(ctx, companyID, actor, id, target, note, in.Version)
	if err != nil {
		return nil, err
	}
	return toResponse(b), nil
}

// Decide aplica aprovação ou rejeição vinda da fila de aprovação.
func (uc *UseCase) Decide(ctx context.Context, companyID, actor, id string, target workflow.Status, note string) (workflow.State, error) {
	b, err := uc.transition(ctx, companyID, actor, id, target, note, nil)
	if err != nil {
		return workflow.State{}, err
	}
	return b.State, nil
}

func (uc *UseCase) transition(ctx context.Context, companyID, actor, id string, target workflow.Status, note string, version *int) (*entity.Budget, error) {
	b, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := b.ExpectVersion(version); err != nil {
		return nil, err
	}
	if err := workflow.Transition(&b.State, target, actor, note, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateState(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
