package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// Colunas de workflow.State, comuns a budgets, treasury_plans e executions.
const stateColumns = `status, observacoes, motivo_rejeicao, submitted_at, decided_by, decided_at, created_by, updated_by, created_at, updated_at, version`

// stateScan destinos de Scan para stateColumns; chamar apply depois do Scan.
type stateScan struct {
	st     *workflow.State
	status string
}

func newStateScan(st *workflow.State) *stateScan {
	return &stateScan{st: st}
}

func (s *stateScan) dest() []any {
	return []any{
		&s.status, &s.st.Observacoes, &s.st.MotivoRejeicao, &s.st.SubmittedAt, &s.st.DecidedBy,
		&s.st.DecidedAt, &s.st.CreatedBy, &s.st.UpdatedBy, &s.st.CreatedAt, &s.st.UpdatedAt, &s.st.Version,
	}
}

func (s *stateScan) apply() {
	s.st.Status = workflow.Status(s.status)
}

func stateArgs(st *workflow.State) []any {
	return []any{
		string(st.Status), st.Observacoes, st.MotivoRejeicao, st.SubmittedAt, st.DecidedBy,
		st.DecidedAt, st.CreatedBy, st.UpdatedBy, st.CreatedAt, st.UpdatedAt, st.Version,
	}
}

// updateState grava apenas o estado com compare-and-swap sobre version e avança st.Version.
func updateState(ctx context.Context, q Querier, table, what, companyID, id string, st *workflow.State) error {
	query := fmt.Sprintf(`
		UPDATE %s SET status = $3, observacoes = $4, motivo_rejeicao = $5, submitted_at = $6,
		       decided_by = $7, decided_at = $8, updated_by = $9, updated_at = $10, version = version + 1
		 WHERE id = $1 AND company_id = $2 AND version = $11 AND excluido = false`, table)
	tag, err := q.Exec(ctx, query,
		id, companyID, string(st.Status), st.Observacoes, st.MotivoRejeicao, st.SubmittedAt,
		st.DecidedBy, st.DecidedAt, st.UpdatedBy, st.UpdatedAt, st.Version,
	)
	if err != nil {
		return fmt.Errorf("update %s state: %w", what, err)
	}
	if err := casResult(tag, what, id); err != nil {
		return err
	}
	st.Version++
	return nil
}

// softDelete marca a linha como excluída com compare-and-swap sobre version.
func softDelete(ctx context.Context, q Querier, table, what, companyID, id string, st *workflow.State) error {
	query := fmt.Sprintf(`
		UPDATE %s SET excluido = true, ativo = false, updated_by = $3, updated_at = $4, version = version + 1
		 WHERE id = $1 AND company_id = $2 AND version = $5 AND excluido = false`, table)
	tag, err := q.Exec(ctx, query, id, companyID, st.UpdatedBy, st.UpdatedAt, st.Version)
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", what, err)
	}
	if err := casResult(tag, what, id); err != nil {
		return err
	}
	st.Version++
	return nil
}
