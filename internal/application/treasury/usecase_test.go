package treasury_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/application/treasury"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

const empresa = "emp-1"

type memPlans struct {
	mu   sync.Mutex
	rows map[string]entity.TreasuryPlan
}

func (m *memPlans) Create(_ context.Context, p *entity.TreasuryPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[p.ID] = *p
	return nil
}

func (m *memPlans) GetByID(_ context.Context, companyID, id string) (*entity.TreasuryPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	return &p, nil
}

func (m *memPlans) List(_ context.Context, companyID string, f repository.TreasuryPlanFilter) ([]*entity.TreasuryPlan, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.TreasuryPlan
	for _, p := range m.rows {
		p := p
		if p.CompanyID == companyID && !p.Excluido && (f.OrcamentoID == "" || p.OrcamentoID == f.OrcamentoID) {
			out = append(out, &p)
		}
	}
	return out, len(out), nil
}

func (m *memPlans) cas(p *entity.TreasuryPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if cur.Version != p.Version {
		return domain.ErrConflict
	}
	p.Version++
	m.rows[p.ID] = *p
	return nil
}

func (m *memPlans) Update(_ context.Context, p *entity.TreasuryPlan) error      { return m.cas(p) }
func (m *memPlans) UpdateState(_ context.Context, p *entity.TreasuryPlan) error { return m.cas(p) }
func (m *memPlans) SoftDelete(_ context.Context, p *entity.TreasuryPlan) error {
	p.Excluido = true
	return m.cas(p)
}

// memBudgets só serve GetByID; o resto não é usado pela tesouraria.
type memBudgets struct {
	repository.BudgetRepository
	rows map[string]*entity.Budget
}

func (m *memBudgets) GetByID(_ context.Context, companyID, id string) (*entity.Budget, error) {
	b, ok := m.rows[id]
	if !ok || b.CompanyID != companyID {
		return nil, nil
	}
	return b, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup() (*treasury.UseCase, *memBudgets) {
	budgets := &memBudgets{rows: map[string]*entity.Budget{
		"orc-aprovado": {
			ID: "orc-aprovado", CompanyID: empresa, Ano: 2025,
			State: workflow.State{Status: workflow.StatusAprovado},
			Revenues: []entity.Revenue{
				{Descricao: "Venda de milho", ContaPGC: "7111", Total: d("1200"), Periodicidade: entity.PeriodicidadeAnual},
			},
			Costs: []entity.Cost{
				{Descricao: "Salários", ContaPGC: "6311", Total: d("2400"), Periodicidade: entity.PeriodicidadeAnual},
				{Descricao: "Transporte", ContaPGC: "6210", Total: d("50"), Periodicidade: entity.PeriodicidadeMensal},
			},
		},
		"orc-rascunho": {
			ID: "orc-rascunho", CompanyID: empresa, Ano: 2025,
			State: workflow.State{Status: workflow.StatusRascunho},
		},
	}}
	plans := &memPlans{rows: map[string]entity.TreasuryPlan{}}
	return treasury.NewUseCase(plans, budgets), budgets
}

func planoManual() dto.TreasuryPlanRequest {
	return dto.TreasuryPlanRequest{
		Nome: "Março 2025",
		Mes:  3,
		Ano:  2025,
		Entradas: []dto.InflowLine{
			{Descricao: "Subsídio", Valor: d("40"), DataPrevista: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), Probabilidade: 50},
		},
		Saidas: []dto.OutflowLine{
			{Descricao: "Renda", ContaPGC: "6261", Valor: d("10"), Prioridade: 2},
		},
	}
}

func TestImportFromBudget_PreservaManuaisEIdempotente(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup()
	plan, err := uc.Create(ctx, empresa, "u1", planoManual())
	require.NoError(t, err)

	first, err := uc.ImportFromBudget(ctx, empresa, "u1", plan.ID, dto.ImportBudgetRequest{OrcamentoID: "orc-aprovado"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.EntradasGeradas)
	assert.Equal(t, 2, first.SaidasGeradas)
	assert.Equal(t, 2, first.LinhasManuais)
	assert.Equal(t, "orc-aprovado", first.Plano.OrcamentoID)
	require.Len(t, first.Plano.Entradas, 2)
	require.Len(t, first.Plano.Saidas, 3)

	second, err := uc.ImportFromBudget(ctx, empresa, "u1", plan.ID, dto.ImportBudgetRequest{})
	require.NoError(t, err)
	assert.Len(t, second.Plano.Entradas, 2)
	assert.Len(t, second.Plano.Saidas, 3)
	assert.True(t, first.Plano.Totais.TotalSaidas.Equal(second.Plano.Totais.TotalSaidas))

	var imported []dto.InflowLine
	for _, l := range second.Plano.Entradas {
		if l.FromBudget {
			imported = append(imported, l)
		}
	}
	require.Len(t, imported, 1)
	assert.True(t, d("100").Equal(imported[0].Valor), "1200 anual → 100 por mês")
	assert.Equal(t, 90, imported[0].Probabilidade)
	assert.Equal(t, 15, imported[0].DataPrevista.Day())

	// entradas 40 + 100 = 140; saídas 10 + 200 + 50 = 260
	assert.True(t, d("140").Equal(second.Plano.Totais.TotalEntradas))
	assert.True(t, d("260").Equal(second.Plano.Totais.TotalSaidas))
	assert.True(t, d("120").Equal(second.Plano.Totais.NecessidadeFinanciamento))
}

func TestImportFromBudget_OrcamentoNaoAprovado(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup()
	plan, err := uc.Create(ctx, empresa, "u1", planoManual())
	require.NoError(t, err)

	_, err = uc.ImportFromBudget(ctx, empresa, "u1", plan.ID, dto.ImportBudgetRequest{OrcamentoID: "orc-rascunho"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ImportFromBudget(ctx, empresa, "u1", plan.ID, dto.ImportBudgetRequest{OrcamentoID: "nao-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.ImportFromBudget(ctx, empresa, "u1", plan.ID, dto.ImportBudgetRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sem orçamento associado")
}

func TestImportFromBudget_PlanoAprovadoImutavel(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup()
	plan, err := uc.Create(ctx, empresa, "u1", planoManual())
	require.NoError(t, err)
	_, err = uc.Transition(ctx, empresa, "u1", plan.ID, workflow.StatusEmAnalise, dto.TransitionRequest{})
	require.NoError(t, err)
	_, err = uc.Decide(ctx, empresa, "g1", plan.ID, workflow.StatusAprovado, "")
	require.NoError(t, err)

	_, err = uc.ImportFromBudget(ctx, empresa, "u1", plan.ID, dto.ImportBudgetRequest{OrcamentoID: "orc-aprovado"})
	assert.ErrorIs(t, err, domain.ErrImmutableState)

	_, err = uc.Update(ctx, empresa, "u1", plan.ID, planoManual())
	assert.ErrorIs(t, err, domain.ErrImmutableState)
}

func TestCreate_ComImportacaoImediata(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup()
	in := planoManual()
	in.OrcamentoID = "orc-aprovado"
	in.Importar = true

	plan, err := uc.Create(ctx, empresa, "u1", in)
	require.NoError(t, err)
	assert.Len(t, plan.Entradas, 2)
	assert.Len(t, plan.Saidas, 3)

	byBudget, err := uc.ListByBudget(ctx, empresa, "orc-aprovado")
	require.NoError(t, err)
	require.Len(t, byBudget.Data, 1)
	assert.Equal(t, plan.ID, byBudget.Data[0].ID)
}

func TestUpdate_MantemLinhasImportadas(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup()
	in := planoManual()
	in.OrcamentoID = "orc-aprovado"
	in.Importar = true
	plan, err := uc.Create(ctx, empresa, "u1", in)
	require.NoError(t, err)

	upd := planoManual()
	upd.Entradas = nil
	upd.Saidas = []dto.OutflowLine{{Descricao: "Combustível", Valor: d("5"), FromBudget: true}}
	got, err := uc.Update(ctx, empresa, "u2", plan.ID, upd)
	require.NoError(t, err)

	assert.Len(t, got.Entradas, 1, "apenas a entrada importada")
	require.Len(t, got.Saidas, 3)
	manual := 0
	for _, s := range got.Saidas {
		if !s.FromBudget {
			manual++
			assert.Equal(t, "Combustível", s.Descricao)
			assert.Equal(t, entity.OutflowPriorityNormal, s.Prioridade)
		}
	}
	assert.Equal(t, 1, manual, "from_budget enviado pelo cliente é ignorado")
	assert.Equal(t, "u2", got.UpdatedBy)
}

func TestCreate_MesInvalido(t *testing.T) {
	uc, _ := setup()
	in := planoManual()
	in.Mes = 13
	_, err := uc.Create(context.Background(), empresa, "u1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_AprovadoOuArquivadoBloqueado(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup()
	plan, err := uc.Create(ctx, empresa, "u1", planoManual())
	require.NoError(t, err)

	for _, target := range []workflow.Status{workflow.StatusEmAnalise, workflow.StatusAprovado, workflow.StatusArquivado} {
		_, err = uc.Decide(ctx, empresa, "g1", plan.ID, target, "")
		require.NoError(t, err, target)
		if target != workflow.StatusEmAnalise {
			assert.ErrorIs(t, uc.Delete(ctx, empresa, "u1", plan.ID), domain.ErrImmutableState, target)
		}
	}

	got, err := uc.GetByID(ctx, empresa, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, string(workflow.StatusArquivado), got.Status)
}

func TestUpdate_MudancaDeMesReimporta(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup()
	in := planoManual()
	in.OrcamentoID = "orc-aprovado"
	in.Importar = true
	plan, err := uc.Create(ctx, empresa, "u1", in)
	require.NoError(t, err)

	upd := planoManual()
	upd.Mes = 7
	got, err := uc.Update(ctx, empresa, "u1", plan.ID, upd)
	require.NoError(t, err)

	var importadas int
	for _, e := range got.Entradas {
		if e.FromBudget {
			importadas++
			assert.Equal(t, time.July, e.DataPrevista.Month())
			assert.True(t, d("100").Equal(e.Valor), "1200/12")
		}
	}
	assert.Equal(t, 1, importadas)
	for _, s := range got.Saidas {
		if s.FromBudget {
			assert.Equal(t, time.July, s.DataProgramada.Month())
		}
	}
	assert.Len(t, got.Saidas, 3, "sem duplicar linhas importadas")
}
