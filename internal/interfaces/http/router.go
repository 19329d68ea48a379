package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pix-checkout-api/internal/application/checkout"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CheckoutUC *checkout.CheckoutUseCase
	StatusUC   *checkout.PaymentStatusUseCase
	AppEnv     string
}

// Router registra las rutas de la API. El handler de 404 se registra al final
// para capturar cualquier ruta no declarada.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.AppEnv))

	api := app.Group("/api")

	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	api.Post("/checkout", checkoutHandler.Checkout)
	api.Get("/customers", checkoutHandler.ListCustomers)

	paymentHandler := NewPaymentHandler(deps.StatusUC)
	api.Get("/payment/check/:pixId", paymentHandler.CheckStatus)

	app.Use(notFoundHandler)
}

func healthHandler(env string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"timestamp":   time.Now().Format(time.RFC3339),
			"environment": env,
		})
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":     "Route not found",
		"path":      c.OriginalURL(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// NewErrorHandler maneja errores no capturados (incluye panics recuperados).
// En development expone el mensaje real; en otros entornos uno genérico.
func NewErrorHandler(env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var ferr *fiber.Error
		if e, ok := err.(*fiber.Error); ok {
			ferr = e
			code = e.Code
		}
		if code == fiber.StatusNotFound {
			return notFoundHandler(c)
		}
		message := "Something went wrong"
		if env == "development" {
			if ferr != nil {
				message = ferr.Message
			} else {
				message = err.Error()
			}
		}
		return c.Status(code).JSON(fiber.Map{
			"error":     "Internal server error",
			"message":   message,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
