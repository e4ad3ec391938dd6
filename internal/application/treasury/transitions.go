package treasury

import (
	"context"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// Transition muda o estado do plano.
func (uc *UseCase) Transition(ctx context.Context, companyID, actor, id string, target workflow.Status, in dto.TransitionRequest) (*dto.TreasuryPlanResponse, error) {
	note := in.Observacoes
	if target == workflow.StatusRejeitado {
		note = in.Motivo
	}
	p, err := uc.transition(ctx, companyID, actor, id, target, note, in.Version)
	if err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// Decide aplica aprovação ou rejeição vinda da fila de aprovação.
func (uc *UseCase) Decide(ctx context.Context, companyID, actor, id string, target workflow.Status, note string) (workflow.State, error) {
	p, err := uc.transition(ctx, companyID, actor, id, target, note, nil)
	if err != nil {
		return workflow.State{}, err
	}
	return p.State, nil
}

func (uc *UseCase) transition(ctx context.Context, companyID, actor, id string, target workflow.Status, note string, version *int) (*entity.TreasuryPlan, error) {
	p, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := p.ExpectVersion(version); err != nil {
		return nil, err
	}
	if err := workflow.Transition(&p.State, target, actor, note, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.plans.UpdateState(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
