package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
)

// Garante que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementação da porta CompanyRepository sobre PostgreSQL (pool ou tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository constrói o adaptador de persistência de empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, nif, address, phone, email, sector, status, ativo, excluido, created_at, updated_at`

// Create persiste uma nova empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, nif, address, phone, email, sector, status, ativo, excluido, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.NIF, company.Address,
		company.Phone, company.Email, company.Sector, company.Status,
		company.Ativo, company.Excluido, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: NIF %s", domain.ErrDuplicate, company.NIF)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID (incluindo excluídas).
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByNIF obtém uma empresa não excluída pelo NIF.
func (r *CompanyRepo) GetByNIF(ctx context.Context, nif string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE nif = $1 AND excluido = false`, nif))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by NIF: %w", err)
	}
	return c, nil
}

// Update atualiza uma empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, nif = $3, address = $4, phone = $5, email = $6, sector = $7,
		       status = $8, updated_at = $9
		 WHERE id = $1 AND excluido = false`
	cmd, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.NIF, company.Address,
		company.Phone, company.Email, company.Sector, company.Status, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: empresa %s", domain.ErrNotFound, company.ID)
	}
	return nil
}

// List devolve empresas não excluídas com paginação e o total.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM companies WHERE excluido = false`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}
	query := `SELECT ` + companyColumns + ` FROM companies WHERE excluido = false ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// CountDependents conta utilizadores ativos e orçamentos não excluídos.
func (r *CompanyRepo) CountDependents(ctx context.Context, id string) (int, int, error) {
	const query = `
		SELECT (SELECT COUNT(*) FROM users   WHERE company_id = $1 AND status = 'active'),
		       (SELECT COUNT(*) FROM budgets WHERE company_id = $1 AND excluido = false)`
	var users, budgets int
	if err := r.q.QueryRow(ctx, query, id).Scan(&users, &budgets); err != nil {
		return 0, 0, fmt.Errorf("count company dependents: %w", err)
	}
	return users, budgets, nil
}

// SoftDelete marca a empresa como excluída; a linha nunca é apagada.
func (r *CompanyRepo) SoftDelete(ctx context.Context, id, actor string) error {
	const query = `
		UPDATE companies SET excluido = true, ativo = false, status = 'inactive', deleted_by = $2, updated_at = now()
		 WHERE id = $1 AND excluido = false`
	cmd, err := r.q.Exec(ctx, query, id, actor)
	if err != nil {
		return fmt.Errorf("soft delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: empresa %s", domain.ErrNotFound, id)
	}
	return nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.NIF, &c.Address, &c.Phone, &c.Email, &c.Sector, &c.Status,
		&c.Ativo, &c.Excluido, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
