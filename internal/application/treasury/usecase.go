// Package treasury contém os casos de uso de planos de tesouraria, incluindo a importação de orçamentos.
package treasury

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/finance"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
	domaintreasury "github.com/jhoicas/FinancePro-api/internal/domain/treasury"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// UseCase aplica as regras de negócio de planos de tesouraria.
type UseCase struct {
	plans   repository.TreasuryPlanRepository
	budgets repository.BudgetRepository
	now     func() time.Time
}

// NewUseCase constrói o caso de uso. budgets é só lido (importação).
func NewUseCase(plans repository.TreasuryPlanRepository, budgets repository.BudgetRepository) *UseCase {
	return &UseCase{plans: plans, budgets: budgets, now: func() time.Time { return time.Now().UTC() }}
}

// Create cria um plano em rascunho. Com Importar e OrcamentoID importa logo as linhas do orçamento.
func (uc *UseCase) Create(ctx context.Context, companyID, actor string, in dto.TreasuryPlanRequest) (*dto.TreasuryPlanResponse, error) {
	p := &entity.TreasuryPlan{}
	if err := applyRequest(p, in); err != nil {
		return nil, err
	}
	p.Inflows = manualInflows(in.Entradas)
	p.Outflows = manualOutflows(in.Saidas)

	now := uc.now()
	p.ID = uuid.New().String()
	p.CompanyID = companyID
	p.Ativo = true
	p.State = workflow.State{
		Status:      workflow.StatusRascunho,
		Observacoes: strings.TrimSpace(in.Observacoes),
		CreatedBy:   actor,
		UpdatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}

	if in.Importar {
		if p.OrcamentoID == "" {
			return nil, domain.NewValidationError("orcamento_id", "obrigatório para importar")
		}
		if _, err := uc.importInto(ctx, p, p.OrcamentoID); err != nil {
			return nil, err
		}
	}
	assignIDs(p)
	refreshTotals(p)
	if err := uc.plans.Create(ctx, p); err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// GetByID devolve o plano com linhas e totais.
func (uc *UseCase) GetByID(ctx context.Context, companyID, id string) (*dto.TreasuryPlanResponse, error) {
	p, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// List devolve uma página de planos (sem linhas).
func (uc *UseCase) List(ctx context.Context, companyID string, in dto.TreasuryPlanListRequest) (*dto.TreasuryPlanListResponse, error) {
	in.Normalize()
	if in.Status != "" {
		if _, err := workflow.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}
	list, total, err := uc.plans.List(ctx, companyID, repository.TreasuryPlanFilter{
		Status:      in.Status,
		Mes:         in.Mes,
		Ano:         in.Ano,
		OrcamentoID: in.OrcamentoID,
		Busca:       in.Busca,
		Limit:       in.Limite,
		Offset:      in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.TreasuryPlanResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toResponse(p))
	}
	return &dto.TreasuryPlanListResponse{Data: items, Pagination: dto.NewPagination(in.PageRequest, total)}, nil
}

// ListByBudget planos derivados de um orçamento.
func (uc *UseCase) ListByBudget(ctx context.Context, companyID, orcamentoID string) (*dto.TreasuryPlanListResponse, error) {
	if strings.TrimSpace(orcamentoID) == "" {
		return nil, domain.NewValidationError("orcamento_id", "obrigatório")
	}
	return uc.List(ctx, companyID, dto.TreasuryPlanListRequest{
		PageRequest: dto.PageRequest{Pagina: 1, Limite: dto.MaxLimit},
		OrcamentoID: orcamentoID,
	})
}

// Update substitui cabeçalho, linhas manuais e financiamentos; as linhas importadas mantêm-se,
// exceto quando mes/ano muda: aí são recalculadas a partir do orçamento de origem.
func (uc *UseCase) Update(ctx context.Context, companyID, actor, id string, in dto.TreasuryPlanRequest) (*dto.TreasuryPlanResponse, error) {
	p, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := workflow.EnsureEditable(p.Status); err != nil {
		return nil, err
	}
	if err := p.ExpectVersion(in.Version); err != nil {
		return nil, err
	}
	imported := importedOf(p)
	mes, ano, source := p.Mes, p.Ano, p.OrcamentoID
	if err := applyRequest(p, in); err != nil {
		return nil, err
	}
	p.Inflows = append(manualInflows(in.Entradas), imported.Inflows...)
	p.Outflows = append(manualOutflows(in.Saidas), imported.Outflows...)
	// linhas importadas seguem o mês do plano
	if (p.Mes != mes || p.Ano != ano) && source != "" && len(imported.Inflows)+len(imported.Outflows) > 0 {
		if _, err := uc.importInto(ctx, p, source); err != nil {
			return nil, err
		}
	}
	p.Observacoes = strings.TrimSpace(in.Observacoes)
	assignIDs(p)
	refreshTotals(p)
	p.Touch(actor, uc.now())
	if err := uc.plans.Update(ctx, p); err != nil {
		return nil, err
	}
	return toResponse(p), nil
}

// Delete remove logicamente. Planos aprovados ou arquivados não podem ser removidos.
func (uc *UseCase) Delete(ctx context.Context, companyID, actor, id string) error {
	p, err := uc.load(ctx, companyID, id)
	if err != nil {
		return err
	}
	if !p.Status.Editable() {
		return fmt.Errorf("%w: plano %s não pode ser removido", domain.ErrImmutableState, p.Status)
	}
	p.Touch(actor, uc.now())
	return uc.plans.SoftDelete(ctx, p)
}

func (uc *UseCase) load(ctx context.Context, companyID, id string) (*entity.TreasuryPlan, error) {
	p, err := uc.plans.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.Excluido {
		return nil, fmt.Errorf("%w: plano %s", domain.ErrNotFound, id)
	}
	return p, nil
}

func assignIDs(p *entity.TreasuryPlan) {
	for i := range p.Inflows {
		if p.Inflows[i].ID == "" {
			p.Inflows[i].ID = uuid.New().String()
		}
		p.Inflows[i].PlanID = p.ID
	}
	for i := range p.Outflows {
		if p.Outflows[i].ID == "" {
			p.Outflows[i].ID = uuid.New().String()
		}
		p.Outflows[i].PlanID = p.ID
	}
	for i := range p.Financings {
		if p.Financings[i].ID == "" {
			p.Financings[i].ID = uuid.New().String()
		}
		p.Financings[i].PlanID = p.ID
	}
}

func refreshTotals(p *entity.TreasuryPlan) {
	t := finance.ComputeTreasuryTotals(p.SaldoInicial, p.Inflows, p.Outflows, p.Financings)
	p.TotalEntradas = t.TotalInflows
	p.TotalSaidas = t.TotalOutflows
	p.TotalFinanciamento = t.TotalFinancing
	p.NecessidadeFinanciamento = t.NecessidadeFinanciamento
}

func importedOf(p *entity.TreasuryPlan) domaintreasury.ImportResult {
	var res domaintreasury.ImportResult
	for _, in := range p.Inflows {
		if in.FromBudget {
			res.Inflows = append(res.Inflows, in)
		}
	}
	for _, o := range p.Outflows {
		if o.FromBudget {
			res.Outflows = append(res.Outflows, o)
		}
	}
	return res
}
