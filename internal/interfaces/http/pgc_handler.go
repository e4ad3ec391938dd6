package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/application/usecase"
)

// PGCHandler contas do Plano Geral de Contabilidade.
type PGCHandler struct {
	uc *usecase.PGCAccountUseCase
}

// NewPGCHandler constrói o handler.
func NewPGCHandler(uc *usecase.PGCAccountUseCase) *PGCHandler {
	return &PGCHandler{uc: uc}
}

// Create godoc
// @Summary      Criar conta PGC
// @Description  A conta é gravada mesmo com erros de validação; o resultado vem em status e problemas.
// @Tags         contas-pgc
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PGCAccountRequest  true  "código e nome"
// @Success      201   {object}  dto.PGCAccountResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contas-pgc [post]
func (h *PGCHandler) Create(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.PGCAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), companyID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByCodigo godoc
// @Summary      Obter conta PGC
// @Tags         contas-pgc
// @Security     BearerAuth
// @Produce      json
// @Param        codigo  path  string  true  "código da conta"
// @Success      200  {object}  dto.PGCAccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contas-pgc/{codigo} [get]
func (h *PGCHandler) GetByCodigo(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.GetByCodigo(c.UserContext(), companyID, c.Params("codigo"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contas PGC
// @Tags         contas-pgc
// @Security     BearerAuth
// @Produce      json
// @Param        classe  query  int     false  "classe 1..8"
// @Param        status  query  string  false  "validada | pendente | erro | revisao"
// @Param        busca   query  string  false  "código ou nome"
// @Param        pagina  query  int     false  "página"
// @Param        limite  query  int     false  "itens por página"
// @Success      200  {object}  dto.PGCAccountListResponse
// @Router       /api/contas-pgc [get]
func (h *PGCHandler) List(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.PGCAccountListRequest
	if err := c.QueryParser(&in); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), companyID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Revalidate volta a pontuar a conta com as regras atuais.
// POST /api/contas-pgc/:codigo/validar
func (h *PGCHandler) Revalidate(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.Revalidate(c.UserContext(), companyID, c.Params("codigo"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
