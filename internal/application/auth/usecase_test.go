package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FinancePro-api/internal/application/auth"
	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
	"github.com/jhoicas/FinancePro-api/pkg/jwt"
)

const secret = "segredo-de-teste"

type memUsers struct {
	byEmail map[string]*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}

func (m *memUsers) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.User, int, error) {
	var out []*entity.User
	for _, u := range m.byEmail {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, len(out), nil
}

type memCompanies struct {
	repository.CompanyRepository
	rows map[string]*entity.Company
}

func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return m.rows[id], nil
}

func setup() (*auth.AuthUseCase, *memUsers) {
	users := &memUsers{byEmail: map[string]*entity.User{}}
	companies := &memCompanies{rows: map[string]*entity.Company{
		"emp-1": {ID: "emp-1", Ativo: true},
		"emp-2": {ID: "emp-2", Ativo: true},
	}}
	return auth.NewAuthUseCase(users, companies, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "financepro"}), users
}

func TestRegisterELogin(t *testing.T) {
	ctx := context.Background()
	uc, users := setup()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: " Ana@Agro.ao ", Password: "segura123", CompanyID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@agro.ao", u.Email)
	assert.Equal(t, entity.RoleAnalista, u.Role)
	assert.NotEqual(t, "segura123", users.byEmail["ana@agro.ao"].PasswordHash)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ana@agro.ao", Password: "outra1234", CompanyID: "emp-1"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ANA@agro.ao", Password: "segura123"})
	require.NoError(t, err)
	id, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.Identity{UserID: u.ID, CompanyID: "emp-1", Role: entity.RoleAnalista}, id)
}

func TestLogin_CredenciaisInvalidas(t *testing.T) {
	ctx := context.Background()
	uc, users := setup()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "g@agro.ao", Password: "segura123", CompanyID: "emp-1", Role: entity.RoleGestor})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "g@agro.ao", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ninguem@agro.ao", Password: "segura123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	users.byEmail["g@agro.ao"].Status = "inactive"
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "g@agro.ao", Password: "segura123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_Validacao(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "x@agro.ao", Password: "segura123", CompanyID: "emp-1", Role: "vendedor"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "x@agro.ao", Password: "curta", CompanyID: "emp-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "x@agro.ao", Password: "segura123", CompanyID: "emp-9"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_PapelElevadoSoNoPrimeiroUtilizador(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup()

	first, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "dono@agro.ao", Password: "segura123", CompanyID: "emp-1", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, first.Role)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "intruso@agro.ao", Password: "segura123", CompanyID: "emp-1", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "intruso@agro.ao", Password: "segura123", CompanyID: "emp-1", Role: entity.RoleGestor})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	analista, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "novo@agro.ao", Password: "segura123", CompanyID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAnalista, analista.Role)
}

func TestCreateUser_AdminAtribuiPapelNaPropriaEmpresa(t *testing.T) {
	ctx := context.Background()
	uc, users := setup()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "dono@agro.ao", Password: "segura123", CompanyID: "emp-1", Role: entity.RoleAdmin})
	require.NoError(t, err)

	got, err := uc.CreateUser(ctx, "emp-1", dto.RegisterRequest{Email: "gestor@agro.ao", Password: "segura123", CompanyID: "emp-2", Role: entity.RoleGestor})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGestor, got.Role)
	assert.Equal(t, "emp-1", users.byEmail["gestor@agro.ao"].CompanyID)
}
