package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
)

var _ repository.ExecutionRepository = (*ExecutionRepo)(nil)

// ExecutionRepo execuções orçamentais e planos de execução.
type ExecutionRepo struct {
	q Querier
}

// NewExecutionRepository constrói o adaptador.
func NewExecutionRepository(q Querier) *ExecutionRepo {
	return &ExecutionRepo{q: q}
}

const executionColumns = `id, company_id, tipo, referencia_id, nome, descricao, mes, ano, valor_previsto, valor_executado,
	departamento, prioridade, COALESCE(tags, '{}'), COALESCE(anexos, '{}'), ativo, excluido, ` + stateColumns

// Create persiste uma execução.
func (r *ExecutionRepo) Create(ctx context.Context, e *entity.Execution) error {
	query := `
		INSERT INTO executions (id, company_id, tipo, referencia_id, nome, descricao, mes, ano, valor_previsto,
		       valor_executado, departamento, prioridade, tags, anexos, ativo, excluido, ` + stateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		       $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`
	params := append([]any{
		e.ID, e.CompanyID, e.Tipo, e.ReferenciaID, e.Nome, e.Descricao, e.Mes, e.Ano, e.ValorPrevisto,
		e.ValorExecutado, e.Departamento, e.Prioridade, e.Tags, e.Anexos, e.Ativo, e.Excluido,
	}, stateArgs(&e.State)...)
	if _, err := r.q.Exec(ctx, query, params...); err != nil {
		return fmt.Errorf("insert execution: %w", err)
	}
	return nil
}

// GetByID devolve a execução ou (nil, nil).
func (r *ExecutionRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Execution, error) {
	e, err := scanExecution(r.q.QueryRow(ctx,
		`SELECT `+executionColumns+` FROM executions WHERE id = $1 AND company_id = $2`, id, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get execution: %w", err)
	}
	return e, nil
}

// List devolve uma página de execuções e o total.
func (r *ExecutionRepo) List(ctx context.Context, companyID string, f repository.ExecutionFilter) ([]*entity.Execution, int, error) {
	var a args
	where := []string{"company_id = " + a.add(companyID), "excluido = false"}
	if f.Tipo != "" {
		where = append(where, "tipo = "+a.add(f.Tipo))
	}
	if f.Status != "" {
		where = append(where, "status = "+a.add(f.Status))
	}
	if f.ReferenciaID != "" {
		where = append(where, "referencia_id = "+a.add(f.ReferenciaID))
	}
	if f.Mes != 0 {
		where = append(where, "mes = "+a.add(f.Mes))
	}
	if f.Ano != 0 {
		where = append(where, "ano = "+a.add(f.Ano))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM executions WHERE `+cond, a...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count executions: %w", err)
	}
	query := fmt.Sprintf(`SELECT %s FROM executions WHERE %s ORDER BY ano DESC, mes DESC, updated_at DESC LIMIT %s OFFSET %s`,
		executionColumns, cond, a.add(f.Limit), a.add(f.Offset))
	rows, err := r.q.Query(ctx, query, a...)
	if err != nil {
		return nil, 0, fmt.Errorf("list executions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Execution
	for rows.Next() {
		e, err := scanExecution(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan execution: %w", err)
		}
		list = append(list, e)
	}
	return list, total, rows.Err()
}

// Update grava os valores da execução (compare-and-swap sobre version).
func (r *ExecutionRepo) Update(ctx context.Context, e *entity.Execution) error {
	query := `
		UPDATE executions SET nome = $3, descricao = $4, mes = $5, ano = $6, valor_previsto = $7,
		       valor_executado = $8, departamento = $9, prioridade = $10, tags = $11, anexos = $12,
		       updated_by = $13, updated_at = $14, version = version + 1
		 WHERE id = $1 AND company_id = $2 AND version = $15 AND excluido = false`
	tag, err := r.q.Exec(ctx, query,
		e.ID, e.CompanyID, e.Nome, e.Descricao, e.Mes, e.Ano, e.ValorPrevisto,
		e.ValorExecutado, e.Departamento, e.Prioridade, e.Tags, e.Anexos,
		e.UpdatedBy, e.UpdatedAt, e.Version,
	)
	if err != nil {
		return fmt.Errorf("update execution: %w", err)
	}
	if err := casResult(tag, "execução", e.ID); err != nil {
		return err
	}
	e.Version++
	return nil
}

// UpdateState grava apenas os campos de estado.
func (r *ExecutionRepo) UpdateState(ctx context.Context, e *entity.Execution) error {
	return updateState(ctx, r.q, "executions", "execução", e.CompanyID, e.ID, &e.State)
}

func scanExecution(row pgx.Row) (*entity.Execution, error) {
	var e entity.Execution
	st := newStateScan(&e.State)
	dest := append([]any{
		&e.ID, &e.CompanyID, &e.Tipo, &e.ReferenciaID, &e.Nome, &e.Descricao, &e.Mes, &e.Ano, &e.ValorPrevisto,
		&e.ValorExecutado, &e.Departamento, &e.Prioridade, &e.Tags, &e.Anexos, &e.Ativo, &e.Excluido,
	}, st.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	st.apply()
	return &e, nil
}
