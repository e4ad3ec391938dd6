package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/pkg/search"
)

// Querier é satisfeito por *pgxpool.Pool e por pgx.Tx. Begin dentro de uma tx abre um savepoint.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// inTx corre fn numa transação (ou savepoint) e faz Commit; erro de fn faz Rollback.
func inTx(ctx context.Context, q Querier, fn func(tx pgx.Tx) error) error {
	tx, err := q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// sendBatch executa as instruções em fila e devolve o primeiro erro.
func sendBatch(ctx context.Context, tx pgx.Tx, b *pgx.Batch) error {
	if b.Len() == 0 {
		return nil
	}
	return tx.SendBatch(ctx, b).Close()
}

// casResult traduz o RowsAffected de um UPDATE ... WHERE version = $n.
func casResult(tag pgconn.CommandTag, what, id string) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s foi alterado por outro utilizador", domain.ErrConflict, what, id)
	}
	return nil
}

// isUniqueViolation verifica se um erro é uma violação de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isNoRows linha inexistente. Um id que não é UUID (22P02) também não corresponde a nenhuma linha.
func isNoRows(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02" // invalid_text_representation
}

// foldedLike condição "expr sem acentos LIKE padrão", compatível com search.Fold.
// Devolve "" quando o termo é vazio.
func (a *args) foldedLike(expr, term string) string {
	p := search.LikePattern(term)
	if p == "" {
		return ""
	}
	like := a.add(p)
	from, to := a.add(search.AccentFrom), a.add(search.AccentTo)
	return fmt.Sprintf("translate(lower(%s), %s, %s) LIKE %s", expr, from, to, like)
}

// encodePct serializa a sazonalidade para JSONB; vazia fica NULL.
func encodePct(pct []decimal.Decimal) ([]byte, error) {
	if len(pct) == 0 {
		return nil, nil
	}
	return json.Marshal(pct)
}

func decodePct(raw []byte) ([]decimal.Decimal, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []decimal.Decimal
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode sazonalidade: %w", err)
	}
	return out, nil
}

// args acumula parâmetros posicionais ao construir WHERE dinâmicos.
type args []any

func (a *args) add(v any) string {
	*a = append(*a, v)
	return fmt.Sprintf("$%d", len(*a))
}
