package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
)

const localError = "error"

var statusByCode = map[string]int{
	domain.CodeValidation:        fiber.StatusBadRequest,
	domain.CodeImmutableState:    fiber.StatusConflict,
	domain.CodeInvalidTransition: fiber.StatusConflict,
	domain.CodeNotFound:          fiber.StatusNotFound,
	domain.CodeConflict:          fiber.StatusConflict,
	domain.CodeDuplicate:         fiber.StatusConflict,
	domain.CodeUnauthorized:      fiber.StatusUnauthorized,
	domain.CodeForbidden:         fiber.StatusForbidden,
	domain.CodeInternal:          fiber.StatusInternalServerError,
}

// handleError traduz o erro do caso de uso para ErrorResponse com o estado HTTP correspondente.
func handleError(c *fiber.Ctx, err error) error {
	code := domain.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		status = fiber.StatusInternalServerError
	}
	resp := dto.ErrorResponse{Code: code, Message: err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	if status == fiber.StatusInternalServerError {
		// a mensagem original só vai para o log do pedido
		c.Locals(localError, err.Error())
		resp.Message = "erro interno"
	}
	return c.Status(status).JSON(resp)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
}

func badQuery(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: domain.CodeUnauthorized, Message: "token inválido"})
}

// identity devolve empresa e utilizador do token; ok é false quando algum falta.
func identity(c *fiber.Ctx) (companyID, userID string, ok bool) {
	companyID, userID = GetCompanyID(c), GetUserID(c)
	return companyID, userID, companyID != "" && userID != ""
}
