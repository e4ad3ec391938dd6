// Package execution gere execuções orçamentais e planos de execução (realizado vs. previsto).
package execution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// UseCase casos de uso de execuções. A referência tem de estar aprovada:
// um orçamento para execucao_orcamental, um plano de tesouraria para plano_execucao.
type UseCase struct {
	repo    repository.ExecutionRepository
	budgets repository.BudgetRepository
	plans   repository.TreasuryPlanRepository
	now     func() time.Time
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.ExecutionRepository, budgets repository.BudgetRepository, plans repository.TreasuryPlanRepository) *UseCase {
	return &UseCase{repo: repo, budgets: budgets, plans: plans, now: func() time.Time { return time.Now().UTC() }}
}

// Create regista uma execução em rascunho.
func (uc *UseCase) Create(ctx context.Context, companyID, actor string, in dto.ExecutionRequest) (*dto.ExecutionResponse, error) {
	e := &entity.Execution{}
	if err := applyRequest(e, in); err != nil {
		return nil, err
	}
	if err := uc.checkReference(ctx, companyID, e.Tipo, e.ReferenciaID); err != nil {
		return nil, err
	}
	now := uc.now()
	e.ID = uuid.New().String()
	e.CompanyID = companyID
	e.Ativo = true
	e.State = workflow.State{
		Status:    workflow.StatusRascunho,
		CreatedBy: actor,
		UpdatedBy: actor,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

// GetByID devolve a execução.
func (uc *UseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ExecutionResponse, error) {
	e, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

// List devolve uma página de execuções.
func (uc *UseCase) List(ctx context.Context, companyID string, in dto.ExecutionListRequest) (*dto.ExecutionListResponse, error) {
	in.Normalize()
	if in.Tipo != "" && in.Tipo != entity.ExecutionKindOrcamental && in.Tipo != entity.ExecutionKindPlano {
		return nil, domain.NewValidationError("tipo", "deve ser execucao_orcamental ou plano_execucao")
	}
	list, total, err := uc.repo.List(ctx, companyID, repository.ExecutionFilter{
		Tipo:         in.Tipo,
		Status:       in.Status,
		ReferenciaID: in.ReferenciaID,
		Mes:          in.Mes,
		Ano:          in.Ano,
		Limit:        in.Limite,
		Offset:       in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExecutionResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toResponse(e))
	}
	return &dto.ExecutionListResponse{Data: items, Pagination: dto.NewPagination(in.PageRequest, total)}, nil
}

// Update altera os valores da execução; tipo e referência não mudam.
func (uc *UseCase) Update(ctx context.Context, companyID, actor, id string, in dto.ExecutionRequest) (*dto.ExecutionResponse, error) {
	e, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := workflow.EnsureEditable(e.Status); err != nil {
		return nil, err
	}
	if err := e.ExpectVersion(in.Version); err != nil {
		return nil, err
	}
	in.Tipo = e.Tipo
	in.ReferenciaID = e.ReferenciaID
	if err := applyRequest(e, in); err != nil {
		return nil, err
	}
	e.Touch(actor, uc.now())
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

// Transition muda o estado da execução.
func (uc *UseCase) Transition(ctx context.Context, companyID, actor, id string, target workflow.Status, in dto.TransitionRequest) (*dto.ExecutionResponse, error) {
	note := in.Observacoes
	if target == workflow.StatusRejeitado {
		note = in.Motivo
	}
	e, err := uc.transition(ctx, companyID, actor, id, "", target, note, in.Version)
	if err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

// ForKind devolve o adaptador de decisão da fila de aprovação para um tipo de execução.
func (uc *UseCase) ForKind(kind string) *KindDecider {
	return &KindDecider{uc: uc, kind: kind}
}

// KindDecider aprova ou rejeita apenas execuções do seu tipo; as restantes são NotFound.
type KindDecider struct {
	uc   *UseCase
	kind string
}

// Decide aplica aprovação ou rejeição.
func (k *KindDecider) Decide(ctx context.Context, companyID, actor, id string, target workflow.Status, note string) (workflow.State, error) {
	e, err := k.uc.transition(ctx, companyID, actor, id, k.kind, target, note, nil)
	if err != nil {
		return workflow.State{}, err
	}
	return e.State, nil
}

func (uc *UseCase) transition(ctx context.Context, companyID, actor, id, kind string, target workflow.Status, note string, version *int) (*entity.Execution, error) {
	e, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if kind != "" && e.Tipo != kind {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrNotFound, kind, id)
	}
	if err := e.ExpectVersion(version); err != nil {
		return nil, err
	}
	if err := workflow.Transition(&e.State, target, actor, note, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateState(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *UseCase) load(ctx context.Context, companyID, id string) (*entity.Execution, error) {
	e, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.Excluido {
		return nil, fmt.Errorf("%w: execução %s", domain.ErrNotFound, id)
	}
	return e, nil
}

func (uc *UseCase) checkReference(ctx context.Context, companyID, kind, refID string) error {
	var status workflow.Status
	switch kind {
	case entity.ExecutionKindOrcamental:
		b, err := uc.budgets.GetByID(ctx, companyID, refID)
		if err != nil {
			return err
		}
		if b == nil || b.Excluido {
			return fmt.Errorf("%w: orçamento %s", domain.ErrNotFound, refID)
		}
		status = b.Status
	case entity.ExecutionKindPlano:
		p, err := uc.plans.GetByID(ctx, companyID, refID)
		if err != nil {
			return err
		}
		if p == nil || p.Excluido {
			return fmt.Errorf("%w: plano %s", domain.ErrNotFound, refID)
		}
		status = p.Status
	}
	if status != workflow.StatusAprovado {
		return domain.NewValidationError("referencia_id", fmt.Sprintf("a referência tem de estar aprovada (estado %s)", status))
	}
	return nil
}

func applyRequest(e *entity.Execution, in dto.ExecutionRequest) error {
	verr := &domain.ValidationError{}
	if in.Tipo != entity.ExecutionKindOrcamental && in.Tipo != entity.ExecutionKindPlano {
		verr.Add("tipo", "deve ser execucao_orcamental ou plano_execucao")
	}
	if strings.TrimSpace(in.ReferenciaID) == "" {
		verr.Add("referencia_id", "obrigatória")
	}
	if strings.TrimSpace(in.Nome) == "" {
		verr.Add("nome", "obrigatório")
	}
	if in.Mes < 1 || in.Mes > 12 {
		verr.Add("mes", "deve estar entre 1 e 12")
	}
	if in.Ano < 1900 || in.Ano > 9999 {
		verr.Add("ano", "ano inválido")
	}
	if in.ValorPrevisto.IsNegative() {
		verr.Add("valor_previsto", "não pode ser negativo")
	}
	if in.ValorExecutado.IsNegative() {
		verr.Add("valor_executado", "não pode ser negativo")
	}
	if in.Prioridade != "" && !entity.ValidPriorities[in.Prioridade] {
		verr.Add("prioridade", "deve ser alta, media ou baixa")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}
	e.Tipo = in.Tipo
	e.ReferenciaID = strings.TrimSpace(in.ReferenciaID)
	e.Nome = strings.TrimSpace(in.Nome)
	e.Descricao = strings.TrimSpace(in.Descricao)
	e.Mes = in.Mes
	e.Ano = in.Ano
	e.ValorPrevisto = in.ValorPrevisto
	e.ValorExecutado = in.ValorExecutado
	e.Departamento = strings.TrimSpace(in.Departamento)
	e.Prioridade = in.Prioridade
	if e.Prioridade == "" {
		e.Prioridade = entity.PriorityMedia
	}
	e.Tags = in.Tags
	e.Anexos = in.Anexos
	return nil
}

func toResponse(e *entity.Execution) *dto.ExecutionResponse {
	tags, anexos := e.Tags, e.Anexos
	if tags == nil {
		tags = []string{}
	}
	if anexos == nil {
		anexos = []string{}
	}
	return &dto.ExecutionResponse{
		ID:             e.ID,
		CompanyID:      e.CompanyID,
		Tipo:           e.Tipo,
		ReferenciaID:   e.ReferenciaID,
		Nome:           e.Nome,
		Descricao:      e.Descricao,
		Mes:            e.Mes,
		Ano:            e.Ano,
		ValorPrevisto:  e.ValorPrevisto,
		ValorExecutado: e.ValorExecutado,
		Desvio:         e.Desvio(),
		TaxaExecucao:   e.TaxaExecucao(),
		Departamento:   e.Departamento,
		Prioridade:     e.Prioridade,
		Tags:           tags,
		Anexos:         anexos,
		WorkflowFields: dto.NewWorkflowFields(e.State),
	}
}
