package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/application/usecase"
)

// FinanceHandler calculadora de totais usada pelos formulários antes de gravar.
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler constrói o handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// BudgetTotals godoc
// @Summary      Totais de um orçamento
// @Tags         financeiro
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BudgetTotalsRequest  true  "linhas"
// @Success      200   {object}  dto.BudgetTotalsResponse
// @Router       /api/financeiro/orcamento/totais [post]
func (h *FinanceHandler) BudgetTotals(c *fiber.Ctx) error {
	var in dto.BudgetTotalsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.BudgetTotals(in))
}

// TreasuryTotals godoc
// @Summary      Totais de um plano de tesouraria
// @Tags         financeiro
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TreasuryTotalsRequest  true  "linhas"
// @Success      200   {object}  dto.TreasuryTotalsResponse
// @Router       /api/financeiro/tesouraria/totais [post]
func (h *FinanceHandler) TreasuryTotals(c *fiber.Ctx) error {
	var in dto.TreasuryTotalsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.TreasuryTotals(in))
}

// Seasonality godoc
// @Summary      Distribuição mensal de um total anual
// @Tags         financeiro
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SeasonalityRequest  true  "total e 12 percentagens"
// @Success      200   {object}  dto.SeasonalityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financeiro/sazonalidade [post]
func (h *FinanceHandler) Seasonality(c *fiber.Ctx) error {
	var in dto.SeasonalityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Seasonality(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
