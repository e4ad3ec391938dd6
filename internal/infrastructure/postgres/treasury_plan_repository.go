package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
)

var _ repository.TreasuryPlanRepository = (*TreasuryPlanRepo)(nil)

// TreasuryPlanRepo planos de tesouraria com entradas, saídas e financiamentos.
type TreasuryPlanRepo struct {
	q Querier
}

// NewTreasuryPlanRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTreasuryPlanRepository(q Querier) *TreasuryPlanRepo {
	return &TreasuryPlanRepo{q: q}
}

const planColumns = `id, company_id, nome, mes, ano, saldo_inicial, orcamento_id, departamento, prioridade,
	COALESCE(tags, '{}'), COALESCE(anexos, '{}'), total_entradas, total_saidas, total_financiamento,
	necessidade_financiamento, ativo, excluido, ` + stateColumns

// Create grava cabeçalho e linhas na mesma transação.
func (r *TreasuryPlanRepo) Create(ctx context.Context, p *entity.TreasuryPlan) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			INSERT INTO treasury_plans (id, company_id, nome, mes, ano, saldo_inicial, orcamento_id, departamento,
			       prioridade, tags, anexos, total_entradas, total_saidas, total_financiamento,
			       necessidade_financiamento, ativo, excluido, ` + stateColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			       $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`
		params := append([]any{
			p.ID, p.CompanyID, p.Nome, p.Mes, p.Ano, p.SaldoInicial, p.OrcamentoID, p.Departamento,
			p.Prioridade, p.Tags, p.Anexos, p.TotalEntradas, p.TotalSaidas, p.TotalFinanciamento,
			p.NecessidadeFinanciamento, p.Ativo, p.Excluido,
		}, stateArgs(&p.State)...)
		if _, err := tx.Exec(ctx, query, params...); err != nil {
			return fmt.Errorf("insert treasury plan: %w", err)
		}
		return r.insertLines(ctx, tx, p)
	})
}

// GetByID devolve o plano com linhas; (nil, nil) se não existir na empresa.
func (r *TreasuryPlanRepo) GetByID(ctx context.Context, companyID, id string) (*entity.TreasuryPlan, error) {
	p, err := scanPlan(r.q.QueryRow(ctx,
		`SELECT `+planColumns+` FROM treasury_plans WHERE id = $1 AND company_id = $2`, id, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get treasury plan: %w", err)
	}
	if err := r.loadLines(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List devolve cabeçalhos e o total que cumpre o filtro.
func (r *TreasuryPlanRepo) List(ctx context.Context, companyID string, f repository.TreasuryPlanFilter) ([]*entity.TreasuryPlan, int, error) {
	var a args
	where := []string{"company_id = " + a.add(companyID), "excluido = false"}
	if f.Status != "" {
		where = append(where, "status = "+a.add(f.Status))
	}
	if f.Mes != 0 {
		where = append(where, "mes = "+a.add(f.Mes))
	}
	if f.Ano != 0 {
		where = append(where, "ano = "+a.add(f.Ano))
	}
	if f.OrcamentoID != "" {
		where = append(where, "orcamento_id = "+a.add(f.OrcamentoID))
	}
	if c := a.foldedLike("nome", f.Busca); c != "" {
		where = append(where, c)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM treasury_plans WHERE `+cond, a...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count treasury plans: %w", err)
	}
	query := fmt.Sprintf(`SELECT %s FROM treasury_plans WHERE %s ORDER BY ano DESC, mes DESC, updated_at DESC LIMIT %s OFFSET %s`,
		planColumns, cond, a.add(f.Limit), a.add(f.Offset))
	rows, err := r.q.Query(ctx, query, a...)
	if err != nil {
		return nil, 0, fmt.Errorf("list treasury plans: %w", err)
	}
	defer rows.Close()

	var list []*entity.TreasuryPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan treasury plan: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update substitui cabeçalho e todas as linhas, manuais e importadas.
func (r *TreasuryPlanRepo) Update(ctx context.Context, p *entity.TreasuryPlan) error {
	err := inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			UPDATE treasury_plans SET nome = $3, mes = $4, ano = $5, saldo_inicial = $6, orcamento_id = $7,
			       departamento = $8, prioridade = $9, tags = $10, anexos = $11, total_entradas = $12,
			       total_saidas = $13, total_financiamento = $14, necessidade_financiamento = $15,
			       observacoes = $16, updated_by = $17, updated_at = $18, version = version + 1
			 WHERE id = $1 AND company_id = $2 AND version = $19 AND excluido = false`
		tag, err := tx.Exec(ctx, query,
			p.ID, p.CompanyID, p.Nome, p.Mes, p.Ano, p.SaldoInicial, p.OrcamentoID,
			p.Departamento, p.Prioridade, p.Tags, p.Anexos, p.TotalEntradas,
			p.TotalSaidas, p.TotalFinanciamento, p.NecessidadeFinanciamento,
			p.Observacoes, p.UpdatedBy, p.UpdatedAt, p.Version,
		)
		if err != nil {
			return fmt.Errorf("update treasury plan: %w", err)
		}
		if err := casResult(tag, "plano", p.ID); err != nil {
			return err
		}
		batch := &pgx.Batch{}
		batch.Queue(`DELETE FROM treasury_inflows WHERE plan_id = $1`, p.ID)
		batch.Queue(`DELETE FROM treasury_outflows WHERE plan_id = $1`, p.ID)
		batch.Queue(`DELETE FROM treasury_financings WHERE plan_id = $1`, p.ID)
		if err := sendBatch(ctx, tx, batch); err != nil {
			return fmt.Errorf("delete treasury plan lines: %w", err)
		}
		return r.insertLines(ctx, tx, p)
	})
	if err != nil {
		return err
	}
	p.Version++
	return nil
}

// UpdateState grava apenas os campos de estado.
func (r *TreasuryPlanRepo) UpdateState(ctx context.Context, p *entity.TreasuryPlan) error {
	return updateState(ctx, r.q, "treasury_plans", "plano", p.CompanyID, p.ID, &p.State)
}

// SoftDelete marca o plano como excluído.
func (r *TreasuryPlanRepo) SoftDelete(ctx context.Context, p *entity.TreasuryPlan) error {
	if err := softDelete(ctx, r.q, "treasury_plans", "plano", p.CompanyID, p.ID, &p.State); err != nil {
		return err
	}
	p.Excluido = true
	p.Ativo = false
	return nil
}

func (r *TreasuryPlanRepo) insertLines(ctx context.Context, tx pgx.Tx, p *entity.TreasuryPlan) error {
	batch := &pgx.Batch{}
	for i, l := range p.Inflows {
		batch.Queue(`
			INSERT INTO treasury_inflows (id, plan_id, posicao, descricao, conta_pgc, valor, data_prevista, probabilidade, from_budget)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			l.ID, p.ID, i, l.Descricao, l.ContaPGC, l.Valor, l.DataPrevista, l.Probabilidade, l.FromBudget)
	}
	for i, l := range p.Outflows {
		batch.Queue(`
			INSERT INTO treasury_outflows (id, plan_id, posicao, descricao, conta_pgc, valor, data_programada, prioridade, from_budget)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			l.ID, p.ID, i, l.Descricao, l.ContaPGC, l.Valor, l.DataProgramada, l.Prioridade, l.FromBudget)
	}
	for i, l := range p.Financings {
		batch.Queue(`
			INSERT INTO treasury_financings (id, plan_id, posicao, descricao, fonte, valor, taxa_juro, data_prevista)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.ID, p.ID, i, l.Descricao, l.Fonte, l.Valor, l.TaxaJuro, l.DataPrevista)
	}
	if err := sendBatch(ctx, tx, batch); err != nil {
		return fmt.Errorf("insert treasury plan lines: %w", err)
	}
	return nil
}

func (r *TreasuryPlanRepo) loadLines(ctx context.Context, p *entity.TreasuryPlan) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, descricao, conta_pgc, valor, data_prevista, probabilidade, from_budget
		  FROM treasury_inflows WHERE plan_id = $1 ORDER BY posicao`, p.ID)
	if err != nil {
		return fmt.Errorf("list treasury inflows: %w", err)
	}
	p.Inflows, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Inflow, error) {
		l := entity.Inflow{PlanID: p.ID}
		err := row.Scan(&l.ID, &l.Descricao, &l.ContaPGC, &l.Valor, &l.DataPrevista, &l.Probabilidade, &l.FromBudget)
		return l, err
	})
	if err != nil {
		return fmt.Errorf("scan treasury inflow: %w", err)
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, descricao, conta_pgc, valor, data_programada, prioridade, from_budget
		  FROM treasury_outflows WHERE plan_id = $1 ORDER BY posicao`, p.ID)
	if err != nil {
		return fmt.Errorf("list treasury outflows: %w", err)
	}
	p.Outflows, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Outflow, error) {
		l := entity.Outflow{PlanID: p.ID}
		err := row.Scan(&l.ID, &l.Descricao, &l.ContaPGC, &l.Valor, &l.DataProgramada, &l.Prioridade, &l.FromBudget)
		return l, err
	})
	if err != nil {
		return fmt.Errorf("scan treasury outflow: %w", err)
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, descricao, fonte, valor, taxa_juro, data_prevista
		  FROM treasury_financings WHERE plan_id = $1 ORDER BY posicao`, p.ID)
	if err != nil {
		return fmt.Errorf("list treasury financings: %w", err)
	}
	p.Financings, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Financing, error) {
		l := entity.Financing{PlanID: p.ID}
		err := row.Scan(&l.ID, &l.Descricao, &l.Fonte, &l.Valor, &l.TaxaJuro, &l.DataPrevista)
		return l, err
	})
	if err != nil {
		return fmt.Errorf("scan treasury financing: %w", err)
	}
	return nil
}

func scanPlan(row pgx.Row) (*entity.TreasuryPlan, error) {
	var p entity.TreasuryPlan
	st := newStateScan(&p.State)
	dest := append([]any{
		&p.ID, &p.CompanyID, &p.Nome, &p.Mes, &p.Ano, &p.SaldoInicial, &p.OrcamentoID, &p.Departamento,
		&p.Prioridade, &p.Tags, &p.Anexos, &p.TotalEntradas, &p.TotalSaidas, &p.TotalFinanciamento,
		&p.NecessidadeFinanciamento, &p.Ativo, &p.Excluido,
	}, st.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	st.apply()
	return &p, nil
}
