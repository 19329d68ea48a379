package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pix-checkout-api/internal/application/checkout"
	"github.com/jhoicas/pix-checkout-api/internal/application/dto"
	"github.com/jhoicas/pix-checkout-api/internal/domain"
)

// PaymentHandler maneja GET /api/payment/check/:pixId.
type PaymentHandler struct {
	uc *checkout.PaymentStatusUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *checkout.PaymentStatusUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CheckStatus GET /api/payment/check/:pixId
func (h *PaymentHandler) CheckStatus(c *fiber.Ctx) error {
	pixID := c.Params("pixId")

	res, err := h.uc.Execute(c.Context(), pixID)
	if err != nil {
		var gerr *domain.GatewayError
		switch {
		case errors.Is(err, domain.ErrGatewayNotConfigured):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   "Serviço de pagamento indisponível",
				Details: "API key não configurada",
			})
		case errors.As(err, &gerr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   "Erro ao verificar pagamento",
				Details: gerr.Detail,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   "Erro interno do servidor",
				Details: err.Error(),
			})
		}
	}
	return c.JSON(res)
}
