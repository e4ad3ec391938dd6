// Package budget contém os casos de uso de orçamentos: CRUD, transições de estado e totais.
package budget

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
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// UseCase aplica as regras de negócio de orçamentos.
type UseCase struct {
	repo repository.BudgetRepository
	now  func() time.Time
}

// NewUseCase constrói o caso de uso com a porta de persistência.
func NewUseCase(repo repository.BudgetRepository) *UseCase {
	return &UseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Create cria um orçamento em rascunho com linhas e totais calculados.
func (uc *UseCase) Create(ctx context.Context, companyID, actor string, in dto.BudgetRequest) (*dto.BudgetResponse, error) {
	b := &entity.Budget{}
	if err := applyRequest(b, in); err != nil {
		return nil, err
	}
	now := uc.now()
	b.ID = uuid.New().String()
	b.CompanyID = companyID
	b.Ativo = true
	b.State = workflow.State{
		Status:      workflow.StatusRascunho,
		Observacoes: strings.TrimSpace(in.Observacoes),
		CreatedBy:   actor,
		UpdatedBy:   actor,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}
	for i := range b.Revenues {
		b.Revenues[i].ID = uuid.New().String()
		b.Revenues[i].BudgetID = b.ID
	}
	for i := range b.Costs {
		b.Costs[i].ID = uuid.New().String()
		b.Costs[i].BudgetID = b.ID
	}
	for i := range b.Assets {
		b.Assets[i].ID = uuid.New().String()
		b.Assets[i].BudgetID = b.ID
	}
	refreshTotals(b)
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toResponse(b), nil
}

// GetByID devolve o orçamento com linhas; domain.ErrNotFound se não existir.
func (uc *UseCase) GetByID(ctx context.Context, companyID, id string) (*dto.BudgetResponse, error) {
	b, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toResponse(b), nil
}

// Load devolve a entidade; usado pela importação para tesouraria.
func (uc *UseCase) Load(ctx context.Context, companyID, id string) (*entity.Budget, error) {
	return uc.load(ctx, companyID, id)
}

// List devolve uma página de orçamentos (sem linhas).
func (uc *UseCase) List(ctx context.Context, companyID string, in dto.BudgetListRequest) (*dto.BudgetListResponse, error) {
	in.Normalize()
	if in.Status != "" {
		if _, err := workflow.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}
	list, total, err := uc.repo.List(ctx, companyID, repository.BudgetFilter{
		Status:       in.Status,
		Ano:          in.Ano,
		Departamento: in.Departamento,
		Busca:        in.Busca,
		Limit:        in.Limite,
		Offset:       in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.BudgetResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toResponse(b))
	}
	return &dto.BudgetListResponse{Data: items, Pagination: dto.NewPagination(in.PageRequest, total)}, nil
}

// GetApproved devolve o orçamento aprovado mais recente do ano.
func (uc *UseCase) GetApproved(ctx context.Context, companyID string, ano int) (*dto.BudgetResponse, error) {
	if ano < 1900 || ano > 9999 {
		return nil, domain.NewValidationError("ano", "ano inválido")
	}
	b, err := uc.repo.GetLatestApproved(ctx, companyID, ano)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: nenhum orçamento aprovado para %d", domain.ErrNotFound, ano)
	}
	return toResponse(b), nil
}

// Update substitui campos e linhas. Falha com ErrImmutableState em aprovado/arquivado.
func (uc *UseCase) Update(ctx context.Context, companyID, actor, id string, in dto.BudgetRequest) (*dto.BudgetResponse, error) {
	b, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := workflow.EnsureEditable(b.Status); err != nil {
		return nil, err
	}
	if err := b.ExpectVersion(in.Version); err != nil {
		return nil, err
	}
	if err := applyRequest(b, in); err != nil {
		return nil, err
	}
	for i := range b.Revenues {
		b.Revenues[i].ID = uuid.New().String()
		b.Revenues[i].BudgetID = b.ID
	}
	for i := range b.Costs {
		b.Costs[i].ID = uuid.New().String()
		b.Costs[i].BudgetID = b.ID
	}
	for i := range b.Assets {
		b.Assets[i].ID = uuid.New().String()
		b.Assets[i].BudgetID = b.ID
	}
	b.Observacoes = strings.TrimSpace(in.Observacoes)
	refreshTotals(b)
	b.Touch(actor, uc.now())
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return toResponse(b), nil
}

// Delete remove logicamente. Orçamentos aprovados ou arquivados não podem ser removidos.
func (uc *UseCase) Delete(ctx context.Context, companyID, actor, id string) error {
	b, err := uc.load(ctx, companyID, id)
	if err != nil {
		return err
	}
	if !b.Status.Editable() {
		return fmt.Errorf("%w: orçamento %s não pode ser removido", domain.ErrImmutableState, b.Status)
	}
	b.Touch(actor, uc.now())
	return uc.repo.SoftDelete(ctx, b)
}

func (uc *UseCase) load(ctx context.Context, companyID, id string) (*entity.Budget, error) {
	b, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if b == nil || b.Excluido {
		return nil, fmt.Errorf("%w: orçamento %s", domain.ErrNotFound, id)
	}
	return b, nil
}

func refreshTotals(b *entity.Budget) {
	t := finance.ComputeBudgetTotals(b.Revenues, b.Costs, b.Assets)
	b.TotalReceita = t.TotalReceita
	b.TotalCusto = t.TotalCusto
	b.TotalAtivos = t.TotalAtivos
}
