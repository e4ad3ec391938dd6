package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/application/treasury"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// TreasuryHandler planos de tesouraria mensais.
type TreasuryHandler struct {
	uc *treasury.UseCase
}

// NewTreasuryHandler constrói o handler.
func NewTreasuryHandler(uc *treasury.UseCase) *TreasuryHandler {
	return &TreasuryHandler{uc: uc}
}

// Create godoc
// @Summary      Criar plano de tesouraria
// @Description  Com importar=true e orcamento_id, as linhas do orçamento aprovado são geradas logo na criação.
// @Tags         tesouraria
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TreasuryPlanRequest  true  "plano"
// @Success      201   {object}  dto.TreasuryPlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tesouraria/planos [post]
func (h *TreasuryHandler) Create(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.TreasuryPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), companyID, userID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter plano de tesouraria
// @Tags         tesouraria
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "ID do plano"
// @Success      200  {object}  dto.TreasuryPlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tesouraria/planos/{id} [get]
func (h *TreasuryHandler) GetByID(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar planos de tesouraria
// @Tags         tesouraria
// @Security     BearerAuth
// @Produce      json
// @Param        status        query  string  false  "estado"
// @Param        mes           query  int     false  "mês"
// @Param        ano           query  int     false  "ano"
// @Param        orcamento_id  query  string  false  "orçamento de origem"
// @Param        busca         query  string  false  "texto"
// @Param        pagina        query  int     false  "página"
// @Param        limite        query  int     false  "itens por página"
// @Success      200  {object}  dto.TreasuryPlanListResponse
// @Router       /api/tesouraria/planos [get]
func (h *TreasuryHandler) List(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.TreasuryPlanListRequest
	if err := c.QueryParser(&in); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), companyID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListByBudget godoc
// @Summary      Planos gerados a partir de um orçamento
// @Tags         tesouraria
// @Security     BearerAuth
// @Produce      json
// @Param        orcamento_id  query  string  true  "ID do orçamento"
// @Success      200  {object}  dto.TreasuryPlanListResponse
// @Router       /api/tesouraria/planos-por-orcamento [get]
func (h *TreasuryHandler) ListByBudget(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.ListByBudget(c.UserContext(), companyID, c.Query("orcamento_id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar plano de tesouraria
// @Description  Substitui apenas as linhas manuais; as importadas do orçamento mantêm-se.
// @Tags         tesouraria
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID do plano"
// @Param        body  body  dto.TreasuryPlanRequest  true  "plano"
// @Success      200   {object}  dto.TreasuryPlanResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tesouraria/planos/{id} [put]
func (h *TreasuryHandler) Update(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.TreasuryPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir plano de tesouraria (lógica)
// @Tags         tesouraria
// @Security     BearerAuth
// @Param        id   path  string  true  "ID do plano"
// @Success      204
// @Router       /api/tesouraria/planos/{id} [delete]
func (h *TreasuryHandler) Delete(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.uc.Delete(c.UserContext(), companyID, userID, c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ImportBudget godoc
// @Summary      Importar orçamento aprovado para o plano
// @Description  Regenera as linhas from_budget (idempotente); as linhas manuais ficam intactas.
// @Tags         tesouraria
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true   "ID do plano"
// @Param        body  body  dto.ImportBudgetRequest  false  "orçamento (por defeito o já associado)"
// @Success      200   {object}  dto.ImportBudgetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tesouraria/planos/{id}/importar-orcamento [post]
func (h *TreasuryHandler) ImportBudget(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.ImportBudgetRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.ImportFromBudget(c.UserContext(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Transition devolve o handler de PATCH /api/tesouraria/planos/:id/<ação>.
func (h *TreasuryHandler) Transition(target workflow.Status) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID, userID, ok := identity(c)
		if !ok {
			return unauthorized(c)
		}
		var in dto.TransitionRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return badBody(c)
			}
		}
		out, err := h.uc.Transition(c.UserContext(), companyID, userID, c.Params("id"), target, in)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	}
}
