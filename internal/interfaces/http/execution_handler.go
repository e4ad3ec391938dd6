package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/application/execution"
	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// ExecutionHandler execuções orçamentais e planos de execução.
type ExecutionHandler struct {
	uc *execution.UseCase
}

// NewExecutionHandler constrói o handler.
func NewExecutionHandler(uc *execution.UseCase) *ExecutionHandler {
	return &ExecutionHandler{uc: uc}
}

// Create godoc
// @Summary      Registar execução
// @Description  A referência (orçamento ou plano) tem de estar aprovada.
// @Tags         execucoes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExecutionRequest  true  "execução"
// @Success      201   {object}  dto.ExecutionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/execucoes [post]
func (h *ExecutionHandler) Create(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.ExecutionRequest
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
// @Summary      Obter execução
// @Tags         execucoes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "ID da execução"
// @Success      200  {object}  dto.ExecutionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/execucoes/{id} [get]
func (h *ExecutionHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar execuções
// @Tags         execucoes
// @Security     BearerAuth
// @Produce      json
// @Param        tipo           query  string  false  "execucao_orcamental | plano_execucao"
// @Param        status         query  string  false  "estado"
// @Param        referencia_id  query  string  false  "orçamento ou plano"
// @Param        mes            query  int     false  "mês"
// @Param        ano            query  int     false  "ano"
// @Param        pagina         query  int     false  "página"
// @Param        limite         query  int     false  "itens por página"
// @Success      200  {object}  dto.ExecutionListResponse
// @Router       /api/execucoes [get]
func (h *ExecutionHandler) List(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.ExecutionListRequest
	if err := c.QueryParser(&in); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), companyID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update altera valores de uma execução em rascunho ou rejeitada.
// PUT /api/execucoes/:id
func (h *ExecutionHandler) Update(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.ExecutionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Transition devolve o handler de PATCH /api/execucoes/:id/<ação>.
func (h *ExecutionHandler) Transition(target workflow.Status) fiber.Handler {
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
