package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pix-checkout-api/internal/application/checkout"
	"github.com/jhoicas/pix-checkout-api/internal/application/dto"
	"github.com/jhoicas/pix-checkout-api/internal/domain"
)

// CheckoutHandler maneja POST /api/checkout.
type CheckoutHandler struct {
	uc *checkout.CheckoutUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Checkout POST /api/checkout
// Respuestas de error con los mensajes públicos en portugués (contrato estable).
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "Dados inválidos",
			Details: "corpo da requisição inválido",
		})
	}

	res, err := h.uc.Execute(c.Context(), in)
	if err != nil {
		var verr *domain.ValidationError
		var gerr *domain.GatewayError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   "Dados inválidos",
				Details: verr.Fields,
			})
		case errors.Is(err, domain.ErrGatewayNotConfigured):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   "Pagamento temporariamente indisponível",
				Details: "API key não configurada",
			})
		case errors.As(err, &gerr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   "Erro ao criar PIX",
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

// ListCustomers GET /api/customers — stub de depuración.
func (h *CheckoutHandler) ListCustomers(c *fiber.Ctx) error {
	return c.JSON(dto.CustomersDebugResponse{
		Message: "Customers endpoint available",
		Count:   h.uc.CustomerCount(),
	})
}
