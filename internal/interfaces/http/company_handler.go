package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/application/usecase"
	"github.com/jhoicas/FinancePro-api/internal/domain"
)

// CompanyHandler gestão de empresas (apenas admin).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler constrói o handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Criar empresa
// @Tags         empresas
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "nome e NIF"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresas [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter empresa
// @Tags         empresas
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "ID da empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := ownCompany(c)
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Security     BearerAuth
// @Produce      json
// @Param        pagina  query  int  false  "página (1..n)"
// @Param        limite  query  int  false  "itens por página (máx. 100)"
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/empresas [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir empresa (lógica)
// @Description  Falha com 409 enquanto houver utilizadores ou orçamentos associados.
// @Tags         empresas
// @Security     BearerAuth
// @Param        id   path  string  true  "ID da empresa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := ownCompany(c)
	if err != nil {
		return handleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id, GetUserID(c)); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ownCompany o :id tem de ser a empresa do token; outras empresas não existem para o chamador.
func ownCompany(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if id == "" || id != GetCompanyID(c) {
		return "", fmt.Errorf("%w: empresa %s", domain.ErrNotFound, id)
	}
	return id, nil
}

// UserHandler consulta de utilizadores da empresa do token.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler constrói o handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar utilizadores da empresa
// @Tags         usuarios
// @Security     BearerAuth
// @Produce      json
// @Param        pagina  query  int  false  "página"
// @Param        limite  query  int  false  "itens por página"
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.ListByCompany(c.UserContext(), companyID, page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID devolve um utilizador da empresa.
// GET /api/usuarios/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
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
