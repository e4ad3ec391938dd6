package treasury

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	domaintreasury "github.com/jhoicas/FinancePro-api/internal/domain/treasury"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// ImportFromBudget substitui as linhas importadas do plano pelas derivadas do orçamento para o mês do plano.
// Linhas manuais não são tocadas; repetir a importação dá o mesmo resultado.
// Sem orcamentoID usa o orçamento já associado ao plano.
func (uc *UseCase) ImportFromBudget(ctx context.Context, companyID, actor, planID string, in dto.ImportBudgetRequest) (*dto.ImportBudgetResponse, error) {
	p, err := uc.load(ctx, companyID, planID)
	if err != nil {
		return nil, err
	}
	if err := workflow.EnsureEditable(p.Status); err != nil {
		return nil, err
	}
	if err := p.ExpectVersion(in.Version); err != nil {
		return nil, err
	}
	budgetID := strings.TrimSpace(in.OrcamentoID)
	if budgetID == "" {
		budgetID = p.OrcamentoID
	}
	if budgetID == "" {
		return nil, domain.NewValidationError("orcamento_id", "o plano não tem orçamento associado")
	}

	res, err := uc.importInto(ctx, p, budgetID)
	if err != nil {
		return nil, err
	}
	assignIDs(p)
	refreshTotals(p)
	p.Touch(actor, uc.now())
	if err := uc.plans.Update(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ImportBudgetResponse{
		Plano:           *toResponse(p),
		EntradasGeradas: len(res.Inflows),
		SaidasGeradas:   len(res.Outflows),
		LinhasManuais:   len(p.ManualInflows()) + len(p.ManualOutflows()),
	}, nil
}

// importInto carrega o orçamento aprovado e funde as linhas derivadas no plano (em memória).
func (uc *UseCase) importInto(ctx context.Context, p *entity.TreasuryPlan, budgetID string) (domaintreasury.ImportResult, error) {
	b, err := uc.budgets.GetByID(ctx, p.CompanyID, budgetID)
	if err != nil {
		return domaintreasury.ImportResult{}, err
	}
	if b == nil || b.Excluido {
		return domaintreasury.ImportResult{}, fmt.Errorf("%w: orçamento %s", domain.ErrNotFound, budgetID)
	}
	if b.Status != workflow.StatusAprovado {
		return domaintreasury.ImportResult{}, domain.NewValidationError("orcamento_id",
			fmt.Sprintf("só orçamentos aprovados podem ser importados (estado %s)", b.Status))
	}
	res, err := domaintreasury.ImportFromBudget(b, p.Mes, p.Ano)
	if err != nil {
		return domaintreasury.ImportResult{}, err
	}
	domaintreasury.Merge(p, res)
	p.OrcamentoID = b.ID
	return res, nil
}
