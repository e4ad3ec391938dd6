package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
)

var _ repository.PGCAccountRepository = (*PGCAccountRepo)(nil)

// PGCAccountRepo plano de contas por empresa; (company_id, codigo) é único.
type PGCAccountRepo struct {
	q Querier
}

// NewPGCAccountRepository constrói o adaptador.
func NewPGCAccountRepository(q Querier) *PGCAccountRepo {
	return &PGCAccountRepo{q: q}
}

const pgcColumns = `id, company_id, codigo, nome, classe, conformidade, status, observacoes, created_at, updated_at`

// Create persiste a conta; código repetido na empresa devolve domain.ErrDuplicate.
func (r *PGCAccountRepo) Create(ctx context.Context, acc *entity.PGCAccount) error {
	query := `
		INSERT INTO pgc_accounts (` + pgcColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		acc.ID, acc.CompanyID, acc.Codigo, acc.Nome, acc.Classe, acc.Conformidade,
		acc.Status, acc.Observacoes, acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: conta %s", domain.ErrDuplicate, acc.Codigo)
		}
		return fmt.Errorf("insert pgc account: %w", err)
	}
	return nil
}

// GetByCodigo devolve a conta ou (nil, nil).
func (r *PGCAccountRepo) GetByCodigo(ctx context.Context, companyID, codigo string) (*entity.PGCAccount, error) {
	acc, err := scanPGCAccount(r.q.QueryRow(ctx,
		`SELECT `+pgcColumns+` FROM pgc_accounts WHERE company_id = $1 AND codigo = $2`, companyID, codigo))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pgc account: %w", err)
	}
	return acc, nil
}

// List filtra por classe, estado e texto em código ou nome, ordenado por código.
func (r *PGCAccountRepo) List(ctx context.Context, companyID string, f repository.PGCAccountFilter) ([]*entity.PGCAccount, int, error) {
	var a args
	where := []string{"company_id = " + a.add(companyID)}
	if f.Classe != 0 {
		where = append(where, "classe = "+a.add(f.Classe))
	}
	if f.Status != "" {
		where = append(where, "status = "+a.add(f.Status))
	}
	if c := a.foldedLike("codigo || ' ' || nome", f.Busca); c != "" {
		where = append(where, c)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM pgc_accounts WHERE `+cond, a...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pgc accounts: %w", err)
	}
	query := fmt.Sprintf(`SELECT %s FROM pgc_accounts WHERE %s ORDER BY codigo LIMIT %s OFFSET %s`,
		pgcColumns, cond, a.add(f.Limit), a.add(f.Offset))
	rows, err := r.q.Query(ctx, query, a...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pgc accounts: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.PGCAccount, error) {
		return scanPGCAccount(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("scan pgc account: %w", err)
	}
	return list, total, nil
}

// Update grava nome, pontuação e estado.
func (r *PGCAccountRepo) Update(ctx context.Context, acc *entity.PGCAccount) error {
	query := `
		UPDATE pgc_accounts SET nome = $3, classe = $4, conformidade = $5, status = $6, observacoes = $7, updated_at = $8
		 WHERE company_id = $1 AND codigo = $2`
	cmd, err := r.q.Exec(ctx, query,
		acc.CompanyID, acc.Codigo, acc.Nome, acc.Classe, acc.Conformidade, acc.Status, acc.Observacoes, acc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update pgc account: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: conta %s", domain.ErrNotFound, acc.Codigo)
	}
	return nil
}

func scanPGCAccount(row pgx.Row) (*entity.PGCAccount, error) {
	var acc entity.PGCAccount
	err := row.Scan(&acc.ID, &acc.CompanyID, &acc.Codigo, &acc.Nome, &acc.Classe, &acc.Conformidade,
		&acc.Status, &acc.Observacoes, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
