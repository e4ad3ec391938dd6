package approval_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/FinancePro-api/internal/application/approval"
	"github.com/jhoicas/FinancePro-api/internal/application/approval/mocks"
	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
	"github.com/jhoicas/FinancePro-api/pkg/logger"
)

const empresa = "emp-1"

type fixture struct {
	pending   *mocks.MockPendingRepository
	budgets   *mocks.MockTransitioner
	plans     *mocks.MockTransitioner
	execOrc   *mocks.MockTransitioner
	execPlano *mocks.MockTransitioner
	coord     *approval.Coordinator
}

func newFixture(t *testing.T, maxBatch int) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		pending:   mocks.NewMockPendingRepository(ctrl),
		budgets:   mocks.NewMockTransitioner(ctrl),
		plans:     mocks.NewMockTransitioner(ctrl),
		execOrc:   mocks.NewMockTransitioner(ctrl),
		execPlano: mocks.NewMockTransitioner(ctrl),
	}
	f.coord = approval.NewCoordinator(f.pending, map[entity.PendingTipo]approval.Transitioner{
		entity.TipoOrcamento:          f.budgets,
		entity.TipoPlanoTesouraria:    f.plans,
		entity.TipoExecucaoOrcamental: f.execOrc,
		entity.TipoPlanoExecucao:      f.execPlano,
	}, maxBatch, logger.Nop())
	return f
}

func aprovado(actor string) workflow.State {
	now := time.Now()
	return workflow.State{Status: workflow.StatusAprovado, DecidedBy: actor, DecidedAt: &now, Version: 3}
}

func TestApprove_EncaminhaPeloTipo(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	f.plans.EXPECT().
		Decide(gomock.Any(), empresa, "g1", "pl-1", workflow.StatusAprovado, "ok").
		Return(aprovado("g1"), nil)

	got, err := f.coord.Approve(ctx, empresa, "g1", "plano_tesouraria", "pl-1", "  ok ")
	require.NoError(t, err)
	assert.Equal(t, "aprovado", got.Status)
	assert.Equal(t, "plano_tesouraria", got.Tipo)
	assert.Equal(t, "g1", got.DecidedBy)
	assert.Equal(t, 3, got.Version)
}

func TestApprove_TipoDesconhecido(t *testing.T) {
	f := newFixture(t, 0)
	_, err := f.coord.Approve(context.Background(), empresa, "g1", "fatura", "x", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReject_MotivoEmBrancoFalhaSemConsulta(t *testing.T) {
	f := newFixture(t, 0)
	// nenhum EXPECT: qualquer chamada a Decide falha o teste
	for _, motivo := range []string{"", "   "} {
		_, err := f.coord.Reject(context.Background(), empresa, "g1", "orcamento", "orc-1", motivo)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "motivo", ve.Fields[0].Field)
	}
}

func TestReject_RegistaMotivo(t *testing.T) {
	f := newFixture(t, 0)
	f.budgets.EXPECT().
		Decide(gomock.Any(), empresa, "g1", "orc-1", workflow.StatusRejeitado, "custos sem suporte").
		Return(workflow.State{Status: workflow.StatusRejeitado, MotivoRejeicao: "custos sem suporte"}, nil)

	got, err := f.coord.Reject(context.Background(), empresa, "g1", "orcamento", "orc-1", "custos sem suporte")
	require.NoError(t, err)
	assert.Equal(t, "rejeitado", got.Status)
	assert.Equal(t, "custos sem suporte", got.MotivoRejeicao)
}

func TestBatchApprove_ContinuaAposFalhas(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	gomock.InOrder(
		f.budgets.EXPECT().Decide(gomock.Any(), empresa, "g1", "orc-1", workflow.StatusAprovado, "lote").
			Return(aprovado("g1"), nil),
		f.plans.EXPECT().Decide(gomock.Any(), empresa, "g1", "pl-1", workflow.StatusAprovado, "lote").
			Return(workflow.State{}, fmt.Errorf("%w: rascunho → aprovado", domain.ErrInvalidTransition)),
		f.execOrc.EXPECT().Decide(gomock.Any(), empresa, "g1", "ex-1", workflow.StatusAprovado, "lote").
			Return(workflow.State{}, domain.ErrConflict),
		f.execPlano.EXPECT().Decide(gomock.Any(), empresa, "g1", "ex-2", workflow.StatusAprovado, "lote").
			Return(aprovado("g1"), nil),
	)

	got, err := f.coord.BatchApprove(ctx, empresa, "g1", dto.BatchApproveRequest{
		Observacoes: "lote",
		Itens: []dto.BatchItem{
			{ID: "orc-1", Tipo: "orcamento"},
			{ID: "pl-1", Tipo: "plano_tesouraria"},
			{ID: "ex-1", Tipo: "execucao_orcamental"},
			{ID: "x", Tipo: "desconhecido"},
			{ID: "ex-2", Tipo: "plano_execucao"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 2, got.Aprovados)
	assert.Equal(t, 3, got.Falhas)
	require.Len(t, got.Resultados, 5)
	assert.True(t, got.Resultados[0].Sucesso)
	assert.Equal(t, domain.CodeInvalidTransition, got.Resultados[1].Codigo)
	assert.Equal(t, domain.CodeConflict, got.Resultados[2].Codigo)
	assert.Equal(t, domain.CodeValidation, got.Resultados[3].Codigo)
	assert.True(t, got.Resultados[4].Sucesso)
	assert.Empty(t, got.Resultados[4].Erro)
}

func TestBatchApprove_Limites(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	_, err := f.coord.BatchApprove(ctx, empresa, "g1", dto.BatchApproveRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.coord.BatchApprove(ctx, empresa, "g1", dto.BatchApproveRequest{Itens: []dto.BatchItem{
		{ID: "1", Tipo: "orcamento"}, {ID: "2", Tipo: "orcamento"}, {ID: "3", Tipo: "orcamento"},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBatchApprove_ContextoCancelado(t *testing.T) {
	f := newFixture(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := f.coord.BatchApprove(ctx, empresa, "g1", dto.BatchApproveRequest{Itens: []dto.BatchItem{{ID: "1", Tipo: "orcamento"}}})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Falhas)
	assert.False(t, got.Resultados[0].Sucesso)
}

func TestListPending_FiltroNormalizado(t *testing.T) {
	f := newFixture(t, 0)
	envio := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	f.pending.EXPECT().
		ListPending(gomock.Any(), empresa, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, flt repository.PendingFilter) ([]entity.PendingItem, int, error) {
			assert.Equal(t, "em_analise", flt.Status)
			assert.Equal(t, entity.TipoOrcamento, flt.Tipo)
			assert.Equal(t, "orcamento agricola", flt.Busca)
			assert.Equal(t, 20, flt.Limit)
			assert.Equal(t, 20, flt.Offset)
			require.NotNil(t, flt.DataInicio)
			require.NotNil(t, flt.DataFim)
			assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *flt.DataInicio)
			assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *flt.DataFim)
			return []entity.PendingItem{{
				ID: "orc-1", Tipo: entity.TipoOrcamento, Nome: "Orçamento Agrícola",
				Status: "em_analise", Valor: decimal.NewFromInt(1500), DataEnvio: &envio,
			}}, 41, nil
		})

	got, err := f.coord.ListPending(context.Background(), empresa, dto.PendingListRequest{
		PageRequest: dto.PageRequest{Pagina: 2},
		Tipo:        "orcamento",
		DataInicio:  "2025-03-01",
		DataFim:     "2025-03-31",
		Busca:       "  ORÇAMENTO   Agrícola ",
	})
	require.NoError(t, err)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "orcamento", got.Data[0].Tipo)
	assert.Equal(t, []string{}, got.Data[0].Tags)
	assert.Equal(t, dto.Pagination{Pagina: 2, Limite: 20, Total: 41, TotalPaginas: 3}, got.Pagination)
}

func TestListPending_FiltroInvalido(t *testing.T) {
	f := newFixture(t, 0)
	cases := []dto.PendingListRequest{
		{Tipo: "fatura"},
		{Status: "pendente"},
		{DataInicio: "01/03/2025"},
		{DataInicio: "2025-03-10", DataFim: "2025-03-01"},
	}
	for _, in := range cases {
		_, err := f.coord.ListPending(context.Background(), empresa, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestListPending_ErroDoRepositorio(t *testing.T) {
	f := newFixture(t, 0)
	boom := errors.New("db")
	f.pending.EXPECT().ListPending(gomock.Any(), empresa, gomock.Any()).Return(nil, 0, boom)

	_, err := f.coord.ListPending(context.Background(), empresa, dto.PendingListRequest{})
	assert.ErrorIs(t, err, boom)
}

func TestSummary(t *testing.T) {
	f := newFixture(t, 0)
	f.pending.EXPECT().CountPending(gomock.Any(), empresa).Return(map[entity.PendingTipo]int{
		entity.TipoOrcamento:       3,
		entity.TipoPlanoTesouraria: 1,
	}, nil)

	got, err := f.coord.Summary(context.Background(), empresa)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 0, got.PorTipo["plano_execucao"])
	assert.Len(t, got.PorTipo, 4)
}
