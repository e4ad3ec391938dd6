// Package approval unifica a fila de aprovação de orçamentos, planos de tesouraria e execuções.
//
// Cada item da fila tem um tipo (orcamento, plano_tesouraria, execucao_orcamental, plano_execucao);
// o Coordinator encaminha aprovar/rejeitar para o Transitioner registado para esse tipo.
// O cliente volta a pedir a lista depois de cada decisão; não há notificações.
package approval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
	"github.com/jhoicas/FinancePro-api/pkg/logger"
	"github.com/jhoicas/FinancePro-api/pkg/search"
)

// DefaultMaxBatchSize limite de itens por lote quando não configurado.
const DefaultMaxBatchSize = 50

const dateLayout = "2006-01-02"

// Coordinator fila de aprovação e decisões.
type Coordinator struct {
	pending  PendingRepository
	handlers map[entity.PendingTipo]Transitioner
	maxBatch int
	log      *logger.Logger
}

// NewCoordinator constrói o coordenador. handlers associa cada tipo ao caso de uso que decide.
func NewCoordinator(pending PendingRepository, handlers map[entity.PendingTipo]Transitioner, maxBatch int, log *logger.Logger) *Coordinator {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatchSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Coordinator{pending: pending, handlers: handlers, maxBatch: maxBatch, log: log.Component("approval")}
}

// ListPending devolve a fila paginada no servidor. Status por defeito em_analise.
func (c *Coordinator) ListPending(ctx context.Context, companyID string, in dto.PendingListRequest) (*dto.PendingListResponse, error) {
	in.Normalize()
	f, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	items, total, err := c.pending.ListPending(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PendingItemResponse, 0, len(items))
	for _, it := range items {
		data = append(data, toPendingResponse(it))
	}
	return &dto.PendingListResponse{Data: data, Pagination: dto.NewPagination(in.PageRequest, total)}, nil
}

// Summary número de itens em análise por tipo.
func (c *Coordinator) Summary(ctx context.Context, companyID string) (*dto.PendingSummaryResponse, error) {
	counts, err := c.pending.CountPending(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := &dto.PendingSummaryResponse{PorTipo: make(map[string]int, len(entity.PendingTipos))}
	for _, t := range entity.PendingTipos {
		n := counts[t]
		resp.PorTipo[string(t)] = n
		resp.Total += n
	}
	return resp, nil
}

// Approve aprova o item; observacoes é opcional.
func (c *Coordinator) Approve(ctx context.Context, companyID, actor, tipo, id, observacoes string) (*dto.DecisionResponse, error) {
	h, err := c.handler(tipo)
	if err != nil {
		return nil, err
	}
	st, err := h.Decide(ctx, companyID, actor, id, workflow.StatusAprovado, strings.TrimSpace(observacoes))
	if err != nil {
		return nil, err
	}
	return toDecision(id, tipo, st), nil
}

// Reject rejeita o item. Motivo em branco falha antes de qualquer leitura.
func (c *Coordinator) Reject(ctx context.Context, companyID, actor, tipo, id, motivo string) (*dto.DecisionResponse, error) {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return nil, domain.NewValidationError("motivo", "o motivo da rejeição é obrigatório")
	}
	h, err := c.handler(tipo)
	if err != nil {
		return nil, err
	}
	st, err := h.Decide(ctx, companyID, actor, id, workflow.StatusRejeitado, motivo)
	if err != nil {
		return nil, err
	}
	return toDecision(id, tipo, st), nil
}

// BatchApprove aprova os itens em sequência. Não é atómico: uma falha fica registada no
// resultado desse item e o lote continua.
func (c *Coordinator) BatchApprove(ctx context.Context, companyID, actor string, in dto.BatchApproveRequest) (*dto.BatchApproveResponse, error) {
	if len(in.Itens) == 0 {
		return nil, domain.NewValidationError("itens", "o lote está vazio")
	}
	if len(in.Itens) > c.maxBatch {
		return nil, domain.NewValidationError("itens", fmt.Sprintf("máximo de %d itens por lote", c.maxBatch))
	}

	resp := &dto.BatchApproveResponse{Total: len(in.Itens), Resultados: make([]dto.BatchItemResult, 0, len(in.Itens))}
	for _, it := range in.Itens {
		res := dto.BatchItemResult{ID: it.ID, Tipo: it.Tipo}
		if err := ctx.Err(); err != nil {
			res.Erro = err.Error()
			res.Codigo = domain.CodeInternal
			resp.Falhas++
			resp.Resultados = append(resp.Resultados, res)
			continue
		}
		if _, err := c.Approve(ctx, companyID, actor, it.Tipo, it.ID, in.Observacoes); err != nil {
			res.Erro = err.Error()
			res.Codigo = domain.Code(err)
			resp.Falhas++
			c.log.Warn().
				Err(err).
				Str("company_id", companyID).
				Str("actor", actor).
				Str("tipo", it.Tipo).
				Str("id", it.ID).
				Msg("aprovação em lote: item falhou")
		} else {
			res.Sucesso = true
			resp.Aprovados++
		}
		resp.Resultados = append(resp.Resultados, res)
	}
	c.log.Info().
		Str("company_id", companyID).
		Str("actor", actor).
		Int("total", resp.Total).
		Int("aprovados", resp.Aprovados).
		Int("falhas", resp.Falhas).
		Msg("aprovação em lote concluída")
	return resp, nil
}

func (c *Coordinator) handler(tipo string) (Transitioner, error) {
	h, ok := c.handlers[entity.PendingTipo(tipo)]
	if !ok || h == nil {
		return nil, domain.NewValidationError("tipo", fmt.Sprintf("tipo desconhecido %q", tipo))
	}
	return h, nil
}

func buildFilter(in dto.PendingListRequest) (repository.PendingFilter, error) {
	verr := &domain.ValidationError{}
	f := repository.PendingFilter{
		Departamento: strings.TrimSpace(in.Departamento),
		Busca:        search.Fold(in.Busca),
		Limit:        in.Limite,
		Offset:       in.Offset(),
	}
	if in.Tipo != "" {
		t := entity.PendingTipo(strings.TrimSpace(in.Tipo))
		if !t.Valid() {
			verr.Add("tipo", fmt.Sprintf("tipo desconhecido %q", in.Tipo))
		}
		f.Tipo = t
	}
	status := workflow.StatusEmAnalise
	if in.Status != "" {
		st, err := workflow.ParseStatus(in.Status)
		if err != nil {
			verr.Add("status", fmt.Sprintf("estado desconhecido %q", in.Status))
		}
		status = st
	}
	f.Status = string(status)

	if in.DataInicio != "" {
		t, err := parseDate(in.DataInicio)
		if err != nil {
			verr.Add("dataInicio", "data inválida (AAAA-MM-DD)")
		} else {
			f.DataInicio = &t
		}
	}
	if in.DataFim != "" {
		t, err := parseDate(in.DataFim)
		if err != nil {
			verr.Add("dataFim", "data inválida (AAAA-MM-DD)")
		} else {
			// dia inteiro incluído: o repositório compara com < DataFim
			end := t.AddDate(0, 0, 1)
			f.DataFim = &end
		}
	}
	if f.DataInicio != nil && f.DataFim != nil && !f.DataInicio.Before(*f.DataFim) {
		verr.Add("dataFim", "anterior a dataInicio")
	}
	if err := verr.OrNil(); err != nil {
		return repository.PendingFilter{}, err
	}
	return f, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func toPendingResponse(it entity.PendingItem) dto.PendingItemResponse {
	tags, anexos := it.Tags, it.Anexos
	if tags == nil {
		tags = []string{}
	}
	if anexos == nil {
		anexos = []string{}
	}
	return dto.PendingItemResponse{
		ID:           it.ID,
		Tipo:         string(it.Tipo),
		Nome:         it.Nome,
		Descricao:    it.Descricao,
		Status:       it.Status,
		Valor:        it.Valor,
		Prioridade:   it.Prioridade,
		Solicitante:  it.Solicitante,
		Departamento: it.Departamento,
		DataEnvio:    it.DataEnvio,
		Tags:         tags,
		Anexos:       anexos,
	}
}

func toDecision(id, tipo string, st workflow.State) *dto.DecisionResponse {
	return &dto.DecisionResponse{
		ID:             id,
		Tipo:           tipo,
		Status:         string(st.Status),
		Observacoes:    st.Observacoes,
		MotivoRejeicao: st.MotivoRejeicao,
		DecidedBy:      st.DecidedBy,
		DecidedAt:      st.DecidedAt,
		Version:        st.Version,
	}
}
