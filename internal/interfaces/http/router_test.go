package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/FinancePro-api/internal/application/approval"
	"github.com/jhoicas/FinancePro-api/internal/application/approval/mocks"
	"github.com/jhoicas/FinancePro-api/internal/application/auth"
	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/application/usecase"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/repository"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
	apphttp "github.com/jhoicas/FinancePro-api/internal/interfaces/http"
	"github.com/jhoicas/FinancePro-api/pkg/logger"
)

type routerFixture struct {
	app     *fiber.App
	pending *mocks.MockPendingRepository
	budgets *mocks.MockTransitioner
	plans   *mocks.MockTransitioner
	users   *memUsers
}

// memUsers utilizadores em memória para o registo.
type memUsers struct {
	repository.UserRepository
	rows []*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.rows = append(m.rows, u)
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.rows {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.User, int, error) {
	var out []*entity.User
	for _, u := range m.rows {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, len(out), nil
}

type oneCompany struct {
	repository.CompanyRepository
}

func (oneCompany) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if id != testCompanyID {
		return nil, nil
	}
	return &entity.Company{ID: id, Ativo: true}, nil
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		pending: mocks.NewMockPendingRepository(ctrl),
		budgets: mocks.NewMockTransitioner(ctrl),
		plans:   mocks.NewMockTransitioner(ctrl),
		users:   &memUsers{rows: []*entity.User{{ID: testUserID, CompanyID: testCompanyID, Email: "admin@agro.ao", Role: entity.RoleAdmin}}},
	}
	coord := approval.NewCoordinator(f.pending, map[entity.PendingTipo]approval.Transitioner{
		entity.TipoOrcamento:       f.budgets,
		entity.TipoPlanoTesouraria: f.plans,
	}, 10, logger.Nop())

	f.app = fiber.New()
	f.app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(f.app, apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(f.users, oneCompany{}, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		Approval:  coord,
		FinanceUC: usecase.NewFinanceUseCase(),
		JWTSecret: testJWTSecret,
	})
	return f
}

func (f *routerFixture) do(t *testing.T, method, path, role, body string) (*http.Response, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestRouter_SemTokenDevolve401(t *testing.T) {
	f := newRouterFixture(t)
	resp, out := f.do(t, http.MethodGet, "/api/aprovacao/resumo", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", out["code"])
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRouter_ListPendingPassaFiltros(t *testing.T) {
	f := newRouterFixture(t)
	f.pending.EXPECT().
		ListPending(gomock.Any(), testCompanyID, gomock.Any()).
		Return([]entity.PendingItem{{ID: "orc-1", Tipo: entity.TipoOrcamento, Nome: "Orçamento 2025", Status: "em_analise"}}, 21, nil)

	resp, out := f.do(t, http.MethodGet, "/api/aprovacao/pendentes?tipo=orcamento&dataInicio=2025-03-01&pagina=2&limite=10", "analista", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := out["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "orcamento", data[0].(map[string]any)["tipo"])
	pag := out["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pag["pagina"])
	assert.Equal(t, float64(3), pag["total_paginas"])
}

func TestRouter_ListPendingDataInvalida(t *testing.T) {
	f := newRouterFixture(t)
	resp, out := f.do(t, http.MethodGet, "/api/aprovacao/pendentes?dataInicio=ontem", "gestor", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, domain.CodeValidation, out["code"])
}

func TestRouter_AnalistaNaoAprova(t *testing.T) {
	f := newRouterFixture(t)
	// sem EXPECT: o coordenador não pode ser chamado
	resp, out := f.do(t, http.MethodPatch, "/api/aprovacao/orcamento/orc-1/aprovar", "analista", `{}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, domain.CodeForbidden, out["code"])
}

func TestRouter_AprovarDevolveDecisao(t *testing.T) {
	f := newRouterFixture(t)
	now := time.Now()
	f.plans.EXPECT().
		Decide(gomock.Any(), testCompanyID, testUserID, "pl-1", workflow.StatusAprovado, "conforme").
		Return(workflow.State{Status: workflow.StatusAprovado, Observacoes: "conforme", DecidedBy: testUserID, DecidedAt: &now, Version: 2}, nil)

	resp, out := f.do(t, http.MethodPatch, "/api/aprovacao/plano_tesouraria/pl-1/aprovar", "gestor", `{"observacoes":"conforme"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "aprovado", out["status"])
	assert.Equal(t, "plano_tesouraria", out["tipo"])
	assert.Equal(t, float64(2), out["version"])
}

func TestRouter_AprovarTransicaoInvalida(t *testing.T) {
	f := newRouterFixture(t)
	f.budgets.EXPECT().
		Decide(gomock.Any(), testCompanyID, testUserID, "orc-1", workflow.StatusAprovado, "").
		Return(workflow.State{}, fmt.Errorf("%w: rascunho → aprovado", domain.ErrInvalidTransition))

	resp, out := f.do(t, http.MethodPatch, "/api/aprovacao/orcamento/orc-1/aprovar", "admin", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, domain.CodeInvalidTransition, out["code"])
}

func TestRouter_RejeitarSemMotivo(t *testing.T) {
	f := newRouterFixture(t)
	resp, out := f.do(t, http.MethodPatch, "/api/aprovacao/orcamento/orc-1/rejeitar", "gestor", `{"motivo":"  "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, domain.CodeValidation, out["code"])
	fields := out["fields"].([]any)
	require.Len(t, fields, 1)
	assert.Equal(t, "motivo", fields[0].(map[string]any)["field"])
}

func TestRouter_TipoDesconhecido(t *testing.T) {
	f := newRouterFixture(t)
	resp, _ := f.do(t, http.MethodPatch, "/api/aprovacao/fatura/x/aprovar", "gestor", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_LoteParcial(t *testing.T) {
	f := newRouterFixture(t)
	f.budgets.EXPECT().
		Decide(gomock.Any(), testCompanyID, testUserID, "orc-1", workflow.StatusAprovado, "").
		Return(workflow.State{Status: workflow.StatusAprovado}, nil)
	f.plans.EXPECT().
		Decide(gomock.Any(), testCompanyID, testUserID, "pl-9", workflow.StatusAprovado, "").
		Return(workflow.State{}, domain.ErrNotFound)

	body := `{"itens":[{"id":"orc-1","tipo":"orcamento"},{"id":"pl-9","tipo":"plano_tesouraria"}]}`
	resp, out := f.do(t, http.MethodPost, "/api/aprovacao/lote/aprovar", "admin", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), out["aprovados"])
	assert.Equal(t, float64(1), out["falhas"])
	res := out["resultados"].([]any)
	assert.Equal(t, domain.CodeNotFound, res[1].(map[string]any)["codigo"])
}

func TestRouter_LoteVazio(t *testing.T) {
	f := newRouterFixture(t)
	resp, _ := f.do(t, http.MethodPost, "/api/aprovacao/lote/aprovar", "admin", `{"itens":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_ResumoPorTipo(t *testing.T) {
	f := newRouterFixture(t)
	f.pending.EXPECT().CountPending(gomock.Any(), testCompanyID).
		Return(map[entity.PendingTipo]int{entity.TipoOrcamento: 2}, nil)

	resp, out := f.do(t, http.MethodGet, "/api/aprovacao/resumo", "analista", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), out["total"])
}

func TestRouter_CalculadoraDeOrcamento(t *testing.T) {
	f := newRouterFixture(t)
	body := `{"receitas":[{"total":"100"},{"total":"abc"}],"custos":[{"total":40}]}`
	resp, out := f.do(t, http.MethodPost, "/api/financeiro/orcamento/totais", "analista", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.BudgetTotalsResponse
	raw, _ := json.Marshal(out)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "100", got.TotalReceita.String())
	assert.Equal(t, "60", got.ResultadoLiquido.String())
}

func TestRouter_RegistoPublicoNaoAtribuiAdmin(t *testing.T) {
	f := newRouterFixture(t)
	body := fmt.Sprintf(`{"email":"intruso@agro.ao","password":"segura123","company_id":%q,"role":"admin"}`, testCompanyID)

	resp, out := f.do(t, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, domain.CodeForbidden, out["code"])

	body = fmt.Sprintf(`{"email":"novo@agro.ao","password":"segura123","company_id":%q}`, testCompanyID)
	resp, out = f.do(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, entity.RoleAnalista, out["role"])
}

func TestRouter_CriarUtilizadorSoAdmin(t *testing.T) {
	f := newRouterFixture(t)
	body := `{"email":"gestor@agro.ao","password":"segura123","company_id":"outra-empresa","role":"gestor"}`

	resp, _ := f.do(t, http.MethodPost, "/api/usuarios", "gestor", body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, out := f.do(t, http.MethodPost, "/api/usuarios", "admin", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, entity.RoleGestor, out["role"])
	assert.Equal(t, testCompanyID, out["company_id"])
}

func TestRouter_EmpresaDeOutroTenant404(t *testing.T) {
	f := newRouterFixture(t)
	outra := "00000000-0000-0000-0000-0000000000ff"

	resp, out := f.do(t, http.MethodGet, "/api/empresas/"+outra, "admin", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, domain.CodeNotFound, out["code"])

	resp, _ = f.do(t, http.MethodDelete, "/api/empresas/"+outra, "admin", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_AprovarIDMalformado404(t *testing.T) {
	f := newRouterFixture(t)
	f.budgets.EXPECT().
		Decide(gomock.Any(), testCompanyID, testUserID, "abc", workflow.StatusAprovado, "").
		Return(workflow.State{}, fmt.Errorf("%w: orçamento abc", domain.ErrNotFound))

	resp, out := f.do(t, http.MethodPatch, "/api/aprovacao/orcamento/abc/aprovar", "gestor", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, domain.CodeNotFound, out["code"])
}
