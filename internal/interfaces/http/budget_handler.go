package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FinancePro-api/internal/application/budget"
	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// BudgetHandler orçamentos anuais.
type BudgetHandler struct {
	uc *budget.UseCase
}

// NewBudgetHandler constrói o handler.
func NewBudgetHandler(uc *budget.UseCase) *BudgetHandler {
	return &BudgetHandler{uc: uc}
}

// Create godoc
// @Summary      Criar orçamento
// @Description  O orçamento nasce em rascunho; os totais são recalculados no servidor.
// @Tags         orcamentos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BudgetRequest  true  "orçamento com receitas, custos e ativos"
// @Success      201   {object}  dto.BudgetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orcamentos/novo-orcamento [post]
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.BudgetRequest
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
// @Summary      Obter orçamento
// @Tags         orcamentos
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "ID do orçamento"
// @Success      200  {object}  dto.BudgetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orcamentos/{id} [get]
func (h *BudgetHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar orçamentos
// @Tags         orcamentos
// @Security     BearerAuth
// @Produce      json
// @Param        status        query  string  false  "estado"
// @Param        ano           query  int     false  "ano"
// @Param        departamento  query  string  false  "departamento"
// @Param        busca         query  string  false  "texto (sem acentos, sem maiúsculas)"
// @Param        pagina        query  int     false  "página"
// @Param        limite        query  int     false  "itens por página"
// @Success      200  {object}  dto.BudgetListResponse
// @Router       /api/orcamentos [get]
func (h *BudgetHandler) List(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.BudgetListRequest
	if err := c.QueryParser(&in); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), companyID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetApproved godoc
// @Summary      Orçamento aprovado do ano
// @Description  Devolve o aprovado mais recente do ano; 404 se não houver.
// @Tags         orcamentos
// @Security     BearerAuth
// @Produce      json
// @Param        ano  query  int  true  "ano"
// @Success      200  {object}  dto.BudgetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orcamentos/aprovado [get]
func (h *BudgetHandler) GetApproved(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.GetApproved(c.UserContext(), companyID, c.QueryInt("ano", 0))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar orçamento
// @Description  Só em rascunho ou rejeitado. Aprovado e arquivado devolvem 409 IMMUTABLE_STATE.
// @Tags         orcamentos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID do orçamento"
// @Param        body  body  dto.BudgetRequest  true  "orçamento"
// @Success      200   {object}  dto.BudgetResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orcamentos/{id} [put]
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.BudgetRequest
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
// @Summary      Excluir orçamento (lógica)
// @Tags         orcamentos
// @Security     BearerAuth
// @Param        id   path  string  true  "ID do orçamento"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orcamentos/{id} [delete]
func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.uc.Delete(c.UserContext(), companyID, userID, c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transition devolve o handler de PATCH /api/orcamentos/:id/<ação> para o estado alvo.
func (h *BudgetHandler) Transition(target workflow.Status) fiber.Handler {
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
