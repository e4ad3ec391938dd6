package usecase

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
	"github.com/jhoicas/FinancePro-api/pkg/pgc"
	"github.com/jhoicas/FinancePro-api/pkg/search"
)

// PGCAccountUseCase plano de contas PGC-AO da empresa, com pontuação de conformidade.
type PGCAccountUseCase struct {
	repo repository.PGCAccountRepository
}

// NewPGCAccountUseCase constrói o caso de uso.
func NewPGCAccountUseCase(repo repository.PGCAccountRepository) *PGCAccountUseCase {
	return &PGCAccountUseCase{repo: repo}
}

// Create regista a conta com o resultado da validação; uma conta fora do PGC fica em "erro", não é recusada.
func (uc *PGCAccountUseCase) Create(ctx context.Context, companyID string, in dto.PGCAccountRequest) (*dto.PGCAccountResponse, error) {
	codigo := strings.TrimSpace(in.Codigo)
	if codigo == "" {
		return nil, domain.NewValidationError("codigo", "obrigatório")
	}
	existing, err := uc.repo.GetByCodigo(ctx, companyID, codigo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: conta %s", domain.ErrDuplicate, codigo)
	}
	now := time.Now().UTC()
	a := &entity.PGCAccount{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Codigo:      codigo,
		Nome:        strings.TrimSpace(in.Nome),
		Observacoes: strings.TrimSpace(in.Observacoes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res := score(a)
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toPGCResponse(a, res.Problemas), nil
}

// GetByCodigo devolve a conta com os problemas atuais.
func (uc *PGCAccountUseCase) GetByCodigo(ctx context.Context, companyID, codigo string) (*dto.PGCAccountResponse, error) {
	a, err := uc.load(ctx, companyID, codigo)
	if err != nil {
		return nil, err
	}
	return toPGCResponse(a, pgc.Validate(a.Codigo, a.Nome).Problemas), nil
}

// List filtra por classe, estado e texto (código ou nome).
func (uc *PGCAccountUseCase) List(ctx context.Context, companyID string, in dto.PGCAccountListRequest) (*dto.PGCAccountListResponse, error) {
	in.Normalize()
	verr := &domain.ValidationError{}
	if in.Classe != 0 && (in.Classe < pgc.ClassMeiosFixos || in.Classe > pgc.ClassResultados) {
		verr.Add("classe", "deve estar entre 1 e 8")
	}
	if in.Status != "" && !pgc.ValidStatuses[in.Status] {
		verr.Add("status", "deve ser validada, pendente, erro ou revisao")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, companyID, repository.PGCAccountFilter{
		Classe: in.Classe,
		Status: in.Status,
		Busca:  search.Fold(in.Busca),
		Limit:  in.Limite,
		Offset: in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PGCAccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toPGCResponse(a, nil))
	}
	return &dto.PGCAccountListResponse{Data: items, Pagination: dto.NewPagination(in.PageRequest, total)}, nil
}

// Revalidate volta a pontuar a conta e grava o novo estado.
func (uc *PGCAccountUseCase) Revalidate(ctx context.Context, companyID, codigo string) (*dto.PGCAccountResponse, error) {
	a, err := uc.load(ctx, companyID, codigo)
	if err != nil {
		return nil, err
	}
	res := score(a)
	a.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toPGCResponse(a, res.Problemas), nil
}

func (uc *PGCAccountUseCase) load(ctx context.Context, companyID, codigo string) (*entity.PGCAccount, error) {
	a, err := uc.repo.GetByCodigo(ctx, companyID, strings.TrimSpace(codigo))
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: conta %s", domain.ErrNotFound, codigo)
	}
	return a, nil
}

func score(a *entity.PGCAccount) pgc.Result {
	res := pgc.Validate(a.Codigo, a.Nome)
	a.Classe = res.Classe
	a.Conformidade = res.Conformidade
	a.Status = res.Status
	return res
}

func toPGCResponse(a *entity.PGCAccount, problemas []string) *dto.PGCAccountResponse {
	return &dto.PGCAccountResponse{
		ID:           a.ID,
		Codigo:       a.Codigo,
		Nome:         a.Nome,
		Classe:       a.Classe,
		ClasseNome:   pgc.ClassNames[a.Classe],
		Conformidade: a.Conformidade,
		Status:       a.Status,
		Observacoes:  a.Observacoes,
		Problemas:    problemas,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
