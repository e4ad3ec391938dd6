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
)

// CompanyUseCase aplica as regras de negócio de empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
	tx   repository.TxRunner
}

// NewCompanyUseCase constrói o caso de uso. tx é usado pela remoção lógica.
func NewCompanyUseCase(repo repository.CompanyRepository, tx repository.TxRunner) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, tx: tx}
}

// Create cria uma empresa. Devolve domain.ErrDuplicate se o NIF já existir.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	verr := &domain.ValidationError{}
	name := strings.TrimSpace(in.Name)
	nif := strings.TrimSpace(in.NIF)
	if name == "" {
		verr.Add("name", "obrigatório")
	}
	if nif == "" {
		verr.Add("nif", "obrigatório")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByNIF(ctx, nif)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: NIF %s", domain.ErrDuplicate, nif)
	}
	now := time.Now().UTC()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      name,
		NIF:       nif,
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Sector:    strings.TrimSpace(in.Sector),
		Status:    entity.CompanyStatusActive,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtém uma empresa; domain.ErrNotFound se não existir ou estiver excluída.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Excluido {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, id)
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas com paginação.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.List(ctx, page.Limite, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Data: items, Pagination: dto.NewPagination(page, total)}, nil
}

// Delete remove logicamente a empresa. Com utilizadores ativos ou orçamentos devolve domain.ErrConflict.
// A contagem e a remoção correm na mesma transação.
func (uc *CompanyUseCase) Delete(ctx context.Context, id, actor string) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		company, err := repos.Companies.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if company == nil || company.Excluido {
			return fmt.Errorf("%w: empresa %s", domain.ErrNotFound, id)
		}
		users, budgets, err := repos.Companies.CountDependents(ctx, id)
		if err != nil {
			return err
		}
		if users > 0 || budgets > 0 {
			return fmt.Errorf("%w: a empresa tem %d utilizadores ativos e %d orçamentos", domain.ErrConflict, users, budgets)
		}
		return repos.Companies.SoftDelete(ctx, id, actor)
	})
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		NIF:       c.NIF,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Sector:    c.Sector,
		Status:    c.Status,
		Ativo:     c.Ativo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
