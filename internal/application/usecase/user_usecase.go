package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/FinancePro-api/internal/application/auth"
	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
)

// UserUseCase aplica regras de negócio para utilizadores.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso com a porta de persistência.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtém um utilizador da empresa.
func (uc *UserUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, fmt.Errorf("%w: utilizador %s", domain.ErrUserNotFound, id)
	}
	return auth.ToUserResponse(user), nil
}

// ListByCompany lista os utilizadores da empresa.
func (uc *UserUseCase) ListByCompany(ctx context.Context, companyID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.ListByCompany(ctx, companyID, page.Limite, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Data: items, Pagination: dto.NewPagination(page, total)}, nil
}
