package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/application/usecase"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
	"github.com/jhoicas/FinancePro-api/pkg/pgc"
)

type memAccounts struct {
	rows   map[string]*entity.PGCAccount
	filter repository.PGCAccountFilter
}

func (m *memAccounts) Create(_ context.Context, a *entity.PGCAccount) error {
	m.rows[a.CompanyID+"/"+a.Codigo] = a
	return nil
}

func (m *memAccounts) GetByCodigo(_ context.Context, companyID, codigo string) (*entity.PGCAccount, error) {
	return m.rows[companyID+"/"+codigo], nil
}

func (m *memAccounts) List(_ context.Context, companyID string, f repository.PGCAccountFilter) ([]*entity.PGCAccount, int, error) {
	m.filter = f
	var out []*entity.PGCAccount
	for k, a := range m.rows {
		if strings.HasPrefix(k, companyID+"/") && (f.Classe == 0 || a.Classe == f.Classe) {
			out = append(out, a)
		}
	}
	return out, len(out), nil
}

func (m *memAccounts) Update(_ context.Context, a *entity.PGCAccount) error {
	m.rows[a.CompanyID+"/"+a.Codigo] = a
	return nil
}

func TestPGCAccount_CreatePontua(t *testing.T) {
	ctx := context.Background()
	repo := &memAccounts{rows: map[string]*entity.PGCAccount{}}
	uc := usecase.NewPGCAccountUseCase(repo)

	ok, err := uc.Create(ctx, "emp-1", dto.PGCAccountRequest{Codigo: "6311", Nome: "Remunerações"})
	require.NoError(t, err)
	assert.Equal(t, pgc.StatusValidada, ok.Status)
	assert.Equal(t, 100, ok.Conformidade)
	assert.Equal(t, 6, ok.Classe)
	assert.Equal(t, "Custos e perdas", ok.ClasseNome)

	bad, err := uc.Create(ctx, "emp-1", dto.PGCAccountRequest{Codigo: "9X1", Nome: "?"})
	require.NoError(t, err)
	assert.Equal(t, pgc.StatusErro, bad.Status)
	assert.NotEmpty(t, bad.Problemas)

	_, err = uc.Create(ctx, "emp-1", dto.PGCAccountRequest{Codigo: "6311", Nome: "Outra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, "emp-1", dto.PGCAccountRequest{Codigo: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPGCAccount_Revalidate(t *testing.T) {
	ctx := context.Background()
	repo := &memAccounts{rows: map[string]*entity.PGCAccount{}}
	uc := usecase.NewPGCAccountUseCase(repo)

	_, err := uc.Create(ctx, "emp-1", dto.PGCAccountRequest{Codigo: "71", Nome: ""})
	require.NoError(t, err)
	assert.Equal(t, pgc.StatusRevisao, repo.rows["emp-1/71"].Status)

	repo.rows["emp-1/71"].Nome = "Vendas"
	got, err := uc.Revalidate(ctx, "emp-1", "71")
	require.NoError(t, err)
	assert.Equal(t, pgc.StatusValidada, got.Status)

	_, err = uc.Revalidate(ctx, "emp-2", "71")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPGCAccount_ListFiltros(t *testing.T) {
	ctx := context.Background()
	repo := &memAccounts{rows: map[string]*entity.PGCAccount{}}
	uc := usecase.NewPGCAccountUseCase(repo)

	_, err := uc.List(ctx, "emp-1", dto.PGCAccountListRequest{Busca: " Remunerações "})
	require.NoError(t, err)
	assert.Equal(t, "remuneracoes", repo.filter.Busca)
	assert.Equal(t, dto.DefaultLimit, repo.filter.Limit)

	_, err = uc.List(ctx, "emp-1", dto.PGCAccountListRequest{Classe: 9})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(ctx, "emp-1", dto.PGCAccountListRequest{Status: "ok"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
