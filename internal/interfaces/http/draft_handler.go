package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FinancePro-api/internal/application/draft"
)

// DraftHandler rascunhos de formulários por utilizador.
type DraftHandler struct {
	uc *draft.UseCase
}

// NewDraftHandler constrói o handler.
func NewDraftHandler(uc *draft.UseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Save godoc
// @Summary      Gravar rascunho
// @Description  O corpo é o estado do formulário (objeto JSON). Expira ao fim do TTL configurado.
// @Tags         rascunhos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        formId  path  string  true  "identificador do formulário"
// @Success      200  {object}  dto.DraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/rascunhos/{formId} [put]
func (h *DraftHandler) Save(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	// o buffer do fasthttp é reutilizado depois do pedido
	body := append([]byte(nil), c.Body()...)
	out, err := h.uc.Save(c.UserContext(), companyID, userID, c.Params("formId"), body)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Load godoc
// @Summary      Obter rascunho
// @Tags         rascunhos
// @Security     BearerAuth
// @Produce      json
// @Param        formId  path  string  true  "identificador do formulário"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rascunhos/{formId} [get]
func (h *DraftHandler) Load(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.Load(c.UserContext(), companyID, userID, c.Params("formId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete descarta o rascunho. DELETE /api/rascunhos/:formId
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.uc.Delete(c.UserContext(), companyID, userID, c.Params("formId")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
