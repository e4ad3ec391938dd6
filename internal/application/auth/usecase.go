package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
	"github.com/jhoicas/FinancePro-api/pkg/jwt"
)

const minPasswordLength = 8

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registo e login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// RegisterUser registo público: cria um analista. Só o primeiro utilizador de uma empresa
// pode pedir outro papel; depois disso o papel é atribuído por um admin (CreateUser).
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.create(ctx, in, false)
}

// CreateUser um admin cria um utilizador com qualquer papel na sua própria empresa.
func (uc *AuthUseCase) CreateUser(ctx context.Context, companyID string, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.CompanyID = companyID
	return uc.create(ctx, in, true)
}

func (uc *AuthUseCase) create(ctx context.Context, in dto.RegisterRequest, byAdmin bool) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	verr := &domain.ValidationError{}
	if email == "" || !strings.Contains(email, "@") {
		verr.Add("email", "email inválido")
	}
	if len(in.Password) < minPasswordLength {
		verr.Add("password", "mínimo de 8 caracteres")
	}
	if strings.TrimSpace(in.CompanyID) == "" {
		verr.Add("company_id", "obrigatório")
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAnalista
	}
	if !entity.ValidRoles[role] {
		verr.Add("role", "deve ser admin, gestor ou analista")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Excluido {
		return nil, domain.ErrNotFound // empresa não existe
	}
	if role != entity.RoleAnalista && !byAdmin {
		_, total, err := uc.userRepo.ListByCompany(ctx, in.CompanyID, 1, 0)
		if err != nil {
			return nil, err
		}
		if total > 0 {
			return nil, fmt.Errorf("%w: papel %s só pode ser atribuído por um admin", domain.ErrForbidden, role)
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    in.CompanyID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Department:   strings.TrimSpace(in.Department),
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, gera o JWT e devolve token + utilizador.
// Email desconhecido e password errada dão o mesmo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Role:      user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse converte a entidade (sem hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		CompanyID:  u.CompanyID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
