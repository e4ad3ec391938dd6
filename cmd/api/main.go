package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/FinancePro-api/internal/application/approval"
	"github.com/jhoicas/FinancePro-api/internal/application/auth"
	"github.com/jhoicas/FinancePro-api/internal/application/budget"
	"github.com/jhoicas/FinancePro-api/internal/application/draft"
	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/application/execution"
	"github.com/jhoicas/FinancePro-api/internal/application/treasury"
	"github.com/jhoicas/FinancePro-api/internal/application/usecase"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/FinancePro-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/FinancePro-api/internal/interfaces/http"
	"github.com/jhoicas/FinancePro-api/pkg/config"
	"github.com/jhoicas/FinancePro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("a iniciar aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("ligação ao PostgreSQL")
	}
	defer pool.Close()

	rdb := infraredis.NewClient(cfg.Redis)
	defer rdb.Close()
	pingCtx, cancelPing := context.WithTimeout(ctx, 3*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		// os rascunhos falham com 500 até o Redis responder; o resto da API funciona
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis indisponível")
	}
	cancelPing()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	budgetRepo := postgres.NewBudgetRepository(pool)
	planRepo := postgres.NewTreasuryPlanRepository(pool)
	execRepo := postgres.NewExecutionRepository(pool)
	pgcRepo := postgres.NewPGCAccountRepository(pool)
	pendingRepo := postgres.NewPendingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	budgetUC := budget.NewUseCase(budgetRepo)
	treasuryUC := treasury.NewUseCase(planRepo, budgetRepo)
	execUC := execution.NewUseCase(execRepo, budgetRepo, planRepo)
	coordinator := approval.NewCoordinator(pendingRepo, map[entity.PendingTipo]approval.Transitioner{
		entity.TipoOrcamento:          budgetUC,
		entity.TipoPlanoTesouraria:    treasuryUC,
		entity.TipoExecucaoOrcamental: execUC.ForKind(entity.ExecutionKindOrcamental),
		entity.TipoPlanoExecucao:      execUC.ForKind(entity.ExecutionKindPlano),
	}, cfg.Approval.MaxBatchSize, log)

	draftTTL := time.Duration(cfg.Redis.DraftTTLHours) * time.Hour
	draftUC := draft.NewUseCase(infraredis.NewDraftStore(rdb, draftTTL))

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FinancePro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   usecase.NewCompanyUseCase(companyRepo, txRunner),
		UserUC:      usecase.NewUserUseCase(userRepo),
		BudgetUC:    budgetUC,
		TreasuryUC:  treasuryUC,
		ExecutionUC: execUC,
		Approval:    coordinator,
		PGCUC:       usecase.NewPGCAccountUseCase(pgcRepo),
		FinanceUC:   usecase.NewFinanceUseCase(),
		DraftUC:     draftUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP terminado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de paragem recebido, a fechar o servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("paragem do servidor")
	}

	log.Info().Msg("aplicação parada")
}
