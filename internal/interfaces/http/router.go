package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FinancePro-api/internal/application/auth"
	"github.com/jhoicas/FinancePro-api/internal/application/budget"
	"github.com/jhoicas/FinancePro-api/internal/application/draft"
	"github.com/jhoicas/FinancePro-api/internal/application/execution"
	"github.com/jhoicas/FinancePro-api/internal/application/treasury"
	"github.com/jhoicas/FinancePro-api/internal/application/usecase"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// RouterDeps dependências para registar as rotas.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	BudgetUC    *budget.UseCase
	TreasuryUC  *treasury.UseCase
	ExecutionUC *execution.UseCase
	Approval    ApprovalService
	PGCUC       *usecase.PGCAccountUseCase
	FinanceUC   *usecase.FinanceUseCase
	DraftUC     *draft.UseCase
	JWTSecret   string
}

// Papéis que podem decidir (aprovar, rejeitar, arquivar).
var deciders = []string{entity.RoleAdmin, entity.RoleGestor}

type transitionRoute struct {
	action string
	target workflow.Status
	decide bool
}

// Ações PATCH /:id/<ação> comuns a orçamentos, planos e execuções.
var transitionRoutes = []transitionRoute{
	{action: "submeter", target: workflow.StatusEmAnalise},
	{action: "retirar", target: workflow.StatusRascunho},
	{action: "reabrir", target: workflow.StatusRascunho},
	{action: "aprovar", target: workflow.StatusAprovado, decide: true},
	{action: "rejeitar", target: workflow.StatusRejeitado, decide: true},
	{action: "arquivar", target: workflow.StatusArquivado, decide: true},
}

func registerTransitions(r fiber.Router, handler func(workflow.Status) fiber.Handler) {
	for _, t := range transitionRoutes {
		if t.decide {
			r.Patch("/:id/"+t.action, RequireRole(deciders...), handler(t.target))
			continue
		}
		r.Patch("/:id/"+t.action, handler(t.target))
	}
}

// Router regista as rotas em app. /api/auth/* é público; o resto exige Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	empresas := protected.Group("/empresas")
	empresas.Post("/", RequireRole(entity.RoleAdmin), companyHandler.Create)
	empresas.Get("/", companyHandler.List)
	empresas.Get("/:id", companyHandler.GetByID)
	empresas.Delete("/:id", RequireRole(entity.RoleAdmin), companyHandler.Delete)

	userHandler := NewUserHandler(deps.UserUC)
	protected.Post("/usuarios", RequireRole(entity.RoleAdmin), authHandler.CreateUser)
	protected.Get("/usuarios", userHandler.List)
	protected.Get("/usuarios/:id", userHandler.GetByID)

	budgetHandler := NewBudgetHandler(deps.BudgetUC)
	orcamentos := protected.Group("/orcamentos")
	orcamentos.Get("/", budgetHandler.List)
	orcamentos.Get("/aprovado", budgetHandler.GetApproved)
	orcamentos.Post("/novo-orcamento", budgetHandler.Create)
	orcamentos.Get("/:id", budgetHandler.GetByID)
	orcamentos.Put("/:id", budgetHandler.Update)
	orcamentos.Delete("/:id", budgetHandler.Delete)
	registerTransitions(orcamentos, budgetHandler.Transition)

	treasuryHandler := NewTreasuryHandler(deps.TreasuryUC)
	tesouraria := protected.Group("/tesouraria")
	tesouraria.Get("/planos-por-orcamento", treasuryHandler.ListByBudget)
	planos := tesouraria.Group("/planos")
	planos.Post("/", treasuryHandler.Create)
	planos.Get("/", treasuryHandler.List)
	planos.Get("/:id", treasuryHandler.GetByID)
	planos.Put("/:id", treasuryHandler.Update)
	planos.Delete("/:id", treasuryHandler.Delete)
	planos.Post("/:id/importar-orcamento", treasuryHandler.ImportBudget)
	registerTransitions(planos, treasuryHandler.Transition)

	executionHandler := NewExecutionHandler(deps.ExecutionUC)
	execucoes := protected.Group("/execucoes")
	execucoes.Post("/", executionHandler.Create)
	execucoes.Get("/", executionHandler.List)
	execucoes.Get("/:id", executionHandler.GetByID)
	execucoes.Put("/:id", executionHandler.Update)
	registerTransitions(execucoes, executionHandler.Transition)

	approvalHandler := NewApprovalHandler(deps.Approval)
	aprovacao := protected.Group("/aprovacao")
	aprovacao.Get("/pendentes", approvalHandler.ListPending)
	aprovacao.Get("/resumo", approvalHandler.Summary)
	aprovacao.Post("/lote/aprovar", RequireRole(deciders...), approvalHandler.BatchApprove)
	aprovacao.Patch("/:tipo/:id/aprovar", RequireRole(deciders...), approvalHandler.Approve)
	aprovacao.Patch("/:tipo/:id/rejeitar", RequireRole(deciders...), approvalHandler.Reject)

	pgcHandler := NewPGCHandler(deps.PGCUC)
	contas := protected.Group("/contas-pgc")
	contas.Post("/", pgcHandler.Create)
	contas.Get("/", pgcHandler.List)
	contas.Get("/:codigo", pgcHandler.GetByCodigo)
	contas.Post("/:codigo/validar", pgcHandler.Revalidate)

	financeHandler := NewFinanceHandler(deps.FinanceUC)
	financeiro := protected.Group("/financeiro")
	financeiro.Post("/orcamento/totais", financeHandler.BudgetTotals)
	financeiro.Post("/tesouraria/totais", financeHandler.TreasuryTotals)
	financeiro.Post("/sazonalidade", financeHandler.Seasonality)

	draftHandler := NewDraftHandler(deps.DraftUC)
	rascunhos := protected.Group("/rascunhos")
	rascunhos.Put("/:formId", draftHandler.Save)
	rascunhos.Get("/:formId", draftHandler.Load)
	rascunhos.Delete("/:formId", draftHandler.Delete)
}
