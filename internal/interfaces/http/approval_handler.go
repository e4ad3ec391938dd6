package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
)

// ApprovalService operações da fila de aprovação usadas pelo handler.
type ApprovalService interface {
	ListPending(ctx context.Context, companyID string, in dto.PendingListRequest) (*dto.PendingListResponse, error)
	Summary(ctx context.Context, companyID string) (*dto.PendingSummaryResponse, error)
	Approve(ctx context.Context, companyID, actor, tipo, id, observacoes string) (*dto.DecisionResponse, error)
	Reject(ctx context.Context, companyID, actor, tipo, id, motivo string) (*dto.DecisionResponse, error)
	BatchApprove(ctx context.Context, companyID, actor string, in dto.BatchApproveRequest) (*dto.BatchApproveResponse, error)
}

// ApprovalHandler fila unificada de aprovação.
type ApprovalHandler struct {
	svc ApprovalService
}

// NewApprovalHandler constrói o handler.
func NewApprovalHandler(svc ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{svc: svc}
}

// ListPending godoc
// @Summary      Itens pendentes de aprovação
// @Description  Orçamentos, planos de tesouraria e execuções num só formato, paginados no servidor.
// @Tags         aprovacao
// @Security     BearerAuth
// @Produce      json
// @Param        tipo          query  string  false  "orcamento | plano_tesouraria | execucao_orcamental | plano_execucao"
// @Param        status        query  string  false  "por defeito em_analise"
// @Param        departamento  query  string  false  "departamento"
// @Param        dataInicio    query  string  false  "AAAA-MM-DD"
// @Param        dataFim       query  string  false  "AAAA-MM-DD (inclusive)"
// @Param        busca         query  string  false  "texto em nome ou descrição"
// @Param        pagina        query  int     false  "página"
// @Param        limite        query  int     false  "itens por página"
// @Success      200  {object}  dto.PendingListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/aprovacao/pendentes [get]
func (h *ApprovalHandler) ListPending(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.PendingListRequest
	if err := c.QueryParser(&in); err != nil {
		return badQuery(c)
	}
	out, err := h.svc.ListPending(c.UserContext(), companyID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Contagem de pendentes por tipo
// @Tags         aprovacao
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.PendingSummaryResponse
// @Router       /api/aprovacao/resumo [get]
func (h *ApprovalHandler) Summary(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.svc.Summary(c.UserContext(), companyID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprovar item
// @Tags         aprovacao
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        tipo  path  string              true   "tipo do item"
// @Param        id    path  string              true   "ID do item"
// @Param        body  body  dto.ApproveRequest  false  "observações"
// @Success      200   {object}  dto.DecisionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/aprovacao/{tipo}/{id}/aprovar [patch]
func (h *ApprovalHandler) Approve(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.ApproveRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.svc.Approve(c.UserContext(), companyID, userID, c.Params("tipo"), c.Params("id"), in.Observacoes)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rejeitar item
// @Description  O motivo é obrigatório.
// @Tags         aprovacao
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        tipo  path  string             true  "tipo do item"
// @Param        id    path  string             true  "ID do item"
// @Param        body  body  dto.RejectRequest  true  "motivo"
// @Success      200   {object}  dto.DecisionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/aprovacao/{tipo}/{id}/rejeitar [patch]
func (h *ApprovalHandler) Reject(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.RejectRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.svc.Reject(c.UserContext(), companyID, userID, c.Params("tipo"), c.Params("id"), in.Motivo)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// BatchApprove godoc
// @Summary      Aprovar vários itens
// @Description  Não é atómico: cada item tem o seu resultado e as falhas não interrompem o lote.
// @Tags         aprovacao
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchApproveRequest  true  "itens e observações"
// @Success      200   {object}  dto.BatchApproveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/aprovacao/lote/aprovar [post]
func (h *ApprovalHandler) BatchApprove(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.BatchApproveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.BatchApprove(c.UserContext(), companyID, userID, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
