package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FinancePro-api/internal/application/approval"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
)

var _ approval.PendingRepository = (*PendingRepo)(nil)

// PendingRepo fila de aprovação: uma vista UNION ALL sobre orçamentos, planos e execuções.
type PendingRepo struct {
	q Querier
}

// NewPendingRepository constrói o adaptador.
func NewPendingRepository(q Querier) *PendingRepo {
	return &PendingRepo{q: q}
}

// pendingSource valor: orçamento → total de receitas; plano → total de saídas; execução → valor executado.
const pendingSource = `
	SELECT b.id, 'orcamento' AS tipo, b.nome, b.descricao, b.status, b.total_receita AS valor, b.prioridade,
	       b.created_by, b.departamento, b.submitted_at, b.tags, b.anexos, b.updated_at
	  FROM budgets b WHERE b.company_id = $1 AND b.excluido = false
	UNION ALL
	SELECT p.id, 'plano_tesouraria', p.nome, '', p.status, p.total_saidas, p.prioridade,
	       p.created_by, p.departamento, p.submitted_at, p.tags, p.anexos, p.updated_at
	  FROM treasury_plans p WHERE p.company_id = $1 AND p.excluido = false
	UNION ALL
	SELECT e.id, e.tipo, e.nome, e.descricao, e.status, e.valor_executado, e.prioridade,
	       e.created_by, e.departamento, e.submitted_at, e.tags, e.anexos, e.updated_at
	  FROM executions e WHERE e.company_id = $1 AND e.excluido = false`

// ListPending devolve a página pedida e o total. DataFim é exclusiva.
func (r *PendingRepo) ListPending(ctx context.Context, companyID string, f repository.PendingFilter) ([]entity.PendingItem, int, error) {
	var a args
	a.add(companyID)
	where := []string{"x.status = " + a.add(f.Status)}
	if f.Tipo != "" {
		where = append(where, "x.tipo = "+a.add(string(f.Tipo)))
	}
	if f.Departamento != "" {
		where = append(where, "x.departamento = "+a.add(f.Departamento))
	}
	if f.DataInicio != nil {
		where = append(where, "x.submitted_at >= "+a.add(*f.DataInicio))
	}
	if f.DataFim != nil {
		where = append(where, "x.submitted_at < "+a.add(*f.DataFim))
	}
	if c := a.foldedLike("x.nome || ' ' || x.descricao || ' ' || COALESCE(u.name, '')", f.Busca); c != "" {
		where = append(where, c)
	}
	from := `FROM (` + pendingSource + `) x LEFT JOIN users u ON u.id::text = x.created_by
		WHERE ` + strings.Join(where, " AND ")

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) `+from, a...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pending: %w", err)
	}
	query := fmt.Sprintf(`
		SELECT x.id, x.tipo, x.nome, x.descricao, x.status, x.valor, x.prioridade, COALESCE(u.name, ''),
		       x.departamento, x.submitted_at, COALESCE(x.tags, '{}'), COALESCE(x.anexos, '{}')
		%s
		ORDER BY x.submitted_at DESC NULLS LAST, x.updated_at DESC, x.id
		LIMIT %s OFFSET %s`, from, a.add(f.Limit), a.add(f.Offset))
	rows, err := r.q.Query(ctx, query, a...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pending: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.PendingItem, error) {
		var it entity.PendingItem
		var tipo string
		err := row.Scan(&it.ID, &tipo, &it.Nome, &it.Descricao, &it.Status, &it.Valor, &it.Prioridade,
			&it.Solicitante, &it.Departamento, &it.DataEnvio, &it.Tags, &it.Anexos)
		it.Tipo = entity.PendingTipo(tipo)
		return it, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("scan pending: %w", err)
	}
	return items, total, nil
}

// CountPending itens em análise por tipo.
func (r *PendingRepo) CountPending(ctx context.Context, companyID string) (map[entity.PendingTipo]int, error) {
	query := `SELECT x.tipo, COUNT(*) FROM (` + pendingSource + `) x WHERE x.status = 'em_analise' GROUP BY x.tipo`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("count pending: %w", err)
	}
	defer rows.Close()

	out := make(map[entity.PendingTipo]int, len(entity.PendingTipos))
	for rows.Next() {
		var tipo string
		var n int
		if err := rows.Scan(&tipo, &n); err != nil {
			return nil, fmt.Errorf("scan pending count: %w", err)
		}
		out[entity.PendingTipo(tipo)] = n
	}
	return out, rows.Err()
}
