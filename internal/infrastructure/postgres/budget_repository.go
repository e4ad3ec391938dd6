package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
)

var _ repository.BudgetRepository = (*BudgetRepo)(nil)

// BudgetRepo orçamentos e as suas linhas (budget_revenues, budget_costs, budget_assets).
type BudgetRepo struct {
	q Querier
}

// NewBudgetRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewBudgetRepository(q Querier) *BudgetRepo {
	return &BudgetRepo{q: q}
}

const budgetColumns = `id, company_id, nome, descricao, ano, departamento, prioridade,
	COALESCE(tags, '{}'), COALESCE(anexos, '{}'), total_receita, total_custo, total_ativos, ativo, excluido, ` + stateColumns

// Create grava cabeçalho e linhas na mesma transação.
func (r *BudgetRepo) Create(ctx context.Context, b *entity.Budget) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			INSERT INTO budgets (id, company_id, nome, descricao, ano, departamento, prioridade, tags, anexos,
			       total_receita, total_custo, total_ativos, ativo, excluido, ` + stateColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			       $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`
		params := append([]any{
			b.ID, b.CompanyID, b.Nome, b.Descricao, b.Ano, b.Departamento, b.Prioridade, b.Tags, b.Anexos,
			b.TotalReceita, b.TotalCusto, b.TotalAtivos, b.Ativo, b.Excluido,
		}, stateArgs(&b.State)...)
		if _, err := tx.Exec(ctx, query, params...); err != nil {
			return fmt.Errorf("insert budget: %w", err)
		}
		return r.insertLines(ctx, tx, b)
	})
}

// GetByID devolve o orçamento com linhas; (nil, nil) se não existir na empresa.
func (r *BudgetRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Budget, error) {
	b, err := scanBudget(r.q.QueryRow(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE id = $1 AND company_id = $2`, id, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get budget: %w", err)
	}
	if err := r.loadLines(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// List devolve cabeçalhos (sem linhas) e o total que cumpre o filtro.
func (r *BudgetRepo) List(ctx context.Context, companyID string, f repository.BudgetFilter) ([]*entity.Budget, int, error) {
	var a args
	where := []string{"company_id = " + a.add(companyID), "excluido = false"}
	if f.Status != "" {
		where = append(where, "status = "+a.add(f.Status))
	}
	if f.Ano != 0 {
		where = append(where, "ano = "+a.add(f.Ano))
	}
	if f.Departamento != "" {
		where = append(where, "departamento = "+a.add(f.Departamento))
	}
	if c := a.foldedLike("nome || ' ' || descricao", f.Busca); c != "" {
		where = append(where, c)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM budgets WHERE `+cond, a...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count budgets: %w", err)
	}
	query := fmt.Sprintf(`SELECT %s FROM budgets WHERE %s ORDER BY ano DESC, updated_at DESC LIMIT %s OFFSET %s`,
		budgetColumns, cond, a.add(f.Limit), a.add(f.Offset))
	rows, err := r.q.Query(ctx, query, a...)
	if err != nil {
		return nil, 0, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan budget: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

// GetLatestApproved orçamento aprovado mais recente do ano, com linhas.
func (r *BudgetRepo) GetLatestApproved(ctx context.Context, companyID string, ano int) (*entity.Budget, error) {
	const query = `
		SELECT id FROM budgets
		 WHERE company_id = $1 AND ano = $2 AND status = 'aprovado' AND excluido = false
		 ORDER BY decided_at DESC NULLS LAST, updated_at DESC
		 LIMIT 1`
	var id string
	if err := r.q.QueryRow(ctx, query, companyID, ano).Scan(&id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get approved budget: %w", err)
	}
	return r.GetByID(ctx, companyID, id)
}

// Update substitui campos de negócio e todas as linhas (compare-and-swap sobre version).
func (r *BudgetRepo) Update(ctx context.Context, b *entity.Budget) error {
	err := inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			UPDATE budgets SET nome = $3, descricao = $4, ano = $5, departamento = $6, prioridade = $7,
			       tags = $8, anexos = $9, total_receita = $10, total_custo = $11, total_ativos = $12,
			       observacoes = $13, updated_by = $14, updated_at = $15, version = version + 1
			 WHERE id = $1 AND company_id = $2 AND version = $16 AND excluido = false`
		tag, err := tx.Exec(ctx, query,
			b.ID, b.CompanyID, b.Nome, b.Descricao, b.Ano, b.Departamento, b.Prioridade,
			b.Tags, b.Anexos, b.TotalReceita, b.TotalCusto, b.TotalAtivos,
			b.Observacoes, b.UpdatedBy, b.UpdatedAt, b.Version,
		)
		if err != nil {
			return fmt.Errorf("update budget: %w", err)
		}
		if err := casResult(tag, "orçamento", b.ID); err != nil {
			return err
		}
		batch := &pgx.Batch{}
		batch.Queue(`DELETE FROM budget_revenues WHERE budget_id = $1`, b.ID)
		batch.Queue(`DELETE FROM budget_costs WHERE budget_id = $1`, b.ID)
		batch.Queue(`DELETE FROM budget_assets WHERE budget_id = $1`, b.ID)
		if err := sendBatch(ctx, tx, batch); err != nil {
			return fmt.Errorf("delete budget lines: %w", err)
		}
		return r.insertLines(ctx, tx, b)
	})
	if err != nil {
		return err
	}
	b.Version++
	return nil
}

// UpdateState grava apenas os campos de estado.
func (r *BudgetRepo) UpdateState(ctx context.Context, b *entity.Budget) error {
	return updateState(ctx, r.q, "budgets", "orçamento", b.CompanyID, b.ID, &b.State)
}

// SoftDelete marca o orçamento como excluído.
func (r *BudgetRepo) SoftDelete(ctx context.Context, b *entity.Budget) error {
	if err := softDelete(ctx, r.q, "budgets", "orçamento", b.CompanyID, b.ID, &b.State); err != nil {
		return err
	}
	b.Excluido = true
	b.Ativo = false
	return nil
}

func (r *BudgetRepo) insertLines(ctx context.Context, tx pgx.Tx, b *entity.Budget) error {
	batch := &pgx.Batch{}
	for i, l := range b.Revenues {
		pct, err := encodePct(l.Sazonalidade)
		if err != nil {
			return err
		}
		batch.Queue(`
			INSERT INTO budget_revenues (id, budget_id, posicao, descricao, conta_pgc, quantidade, preco_unitario,
			       total, periodicidade, sazonalidade)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			l.ID, b.ID, i, l.Descricao, l.ContaPGC, l.Quantidade, l.PrecoUnitario, l.Total, l.Periodicidade, pct)
	}
	for i, l := range b.Costs {
		pct, err := encodePct(l.Sazonalidade)
		if err != nil {
			return err
		}
		batch.Queue(`
			INSERT INTO budget_costs (id, budget_id, posicao, descricao, conta_pgc, tipo, quantidade, valor_unitario,
			       total, periodicidade, sazonalidade)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			l.ID, b.ID, i, l.Descricao, l.ContaPGC, l.Tipo, l.Quantidade, l.ValorUnitario, l.Total, l.Periodicidade, pct)
	}
	for i, l := range b.Assets {
		batch.Queue(`
			INSERT INTO budget_assets (id, budget_id, posicao, descricao, conta_pgc, quantidade, valor, total, vida_util_anos)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			l.ID, b.ID, i, l.Descricao, l.ContaPGC, l.Quantidade, l.Valor, l.Total, l.VidaUtilAnos)
	}
	if err := sendBatch(ctx, tx, batch); err != nil {
		return fmt.Errorf("insert budget lines: %w", err)
	}
	return nil
}

func (r *BudgetRepo) loadLines(ctx context.Context, b *entity.Budget) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, descricao, conta_pgc, quantidade, preco_unitario, total, periodicidade, sazonalidade
		  FROM budget_revenues WHERE budget_id = $1 ORDER BY posicao`, b.ID)
	if err != nil {
		return fmt.Errorf("list budget revenues: %w", err)
	}
	b.Revenues, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Revenue, error) {
		l := entity.Revenue{BudgetID: b.ID}
		var pct []byte
		if err := row.Scan(&l.ID, &l.Descricao, &l.ContaPGC, &l.Quantidade, &l.PrecoUnitario, &l.Total, &l.Periodicidade, &pct); err != nil {
			return l, err
		}
		var derr error
		l.Sazonalidade, derr = decodePct(pct)
		return l, derr
	})
	if err != nil {
		return fmt.Errorf("scan budget revenue: %w", err)
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, descricao, conta_pgc, tipo, quantidade, valor_unitario, total, periodicidade, sazonalidade
		  FROM budget_costs WHERE budget_id = $1 ORDER BY posicao`, b.ID)
	if err != nil {
		return fmt.Errorf("list budget costs: %w", err)
	}
	b.Costs, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Cost, error) {
		l := entity.Cost{BudgetID: b.ID}
		var pct []byte
		if err := row.Scan(&l.ID, &l.Descricao, &l.ContaPGC, &l.Tipo, &l.Quantidade, &l.ValorUnitario, &l.Total, &l.Periodicidade, &pct); err != nil {
			return l, err
		}
		var derr error
		l.Sazonalidade, derr = decodePct(pct)
		return l, derr
	})
	if err != nil {
		return fmt.Errorf("scan budget cost: %w", err)
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, descricao, conta_pgc, quantidade, valor, total, vida_util_anos
		  FROM budget_assets WHERE budget_id = $1 ORDER BY posicao`, b.ID)
	if err != nil {
		return fmt.Errorf("list budget assets: %w", err)
	}
	b.Assets, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Asset, error) {
		l := entity.Asset{BudgetID: b.ID}
		err := row.Scan(&l.ID, &l.Descricao, &l.ContaPGC, &l.Quantidade, &l.Valor, &l.Total, &l.VidaUtilAnos)
		return l, err
	})
	if err != nil {
		return fmt.Errorf("scan budget asset: %w", err)
	}
	return nil
}

func scanBudget(row pgx.Row) (*entity.Budget, error) {
	var b entity.Budget
	st := newStateScan(&b.State)
	dest := append([]any{
		&b.ID, &b.CompanyID, &b.Nome, &b.Descricao, &b.Ano, &b.Departamento, &b.Prioridade,
		&b.Tags, &b.Anexos, &b.TotalReceita, &b.TotalCusto, &b.TotalAtivos, &b.Ativo, &b.Excluido,
	}, st.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	st.apply()
	return &b, nil
}
