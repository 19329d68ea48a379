package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pix-checkout-api/internal/application/checkout"
	"github.com/jhoicas/pix-checkout-api/internal/infrastructure/abacatepay"
	"github.com/jhoicas/pix-checkout-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/pix-checkout-api/internal/interfaces/http"
	"github.com/jhoicas/pix-checkout-api/pkg/config"
	"github.com/jhoicas/pix-checkout-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("abacatepay_configured", cfg.AbacatePay.APIKey != "").
		Msg("iniciando aplicación")

	customerRepo := memory.NewCustomerRepository()
	billingRepo := memory.NewBillingRepository()

	// El cliente se construye siempre; sin credencial falla rápido con un
	// error de configuración en cada llamada.
	gateway := abacatepay.NewClient(cfg.AbacatePay.APIKey, cfg.AbacatePay.BaseURL)

	checkoutUC := checkout.NewCheckoutUseCase(
		customerRepo, billingRepo, gateway, gateway,
		checkout.SaleConfig{
			Amount:      cfg.Checkout.Amount,
			Description: cfg.Checkout.Description,
			ExpiresIn:   cfg.Checkout.ExpiresIn,
		},
		log,
	)
	statusUC := checkout.NewPaymentStatusUseCase(billingRepo, gateway, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.NewErrorHandler(cfg.App.Env),
	})
	app.Use(recover.New())
	app.Use(httpRouter.NewCORS(cfg.CORS.FrontendURL))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CheckoutUC: checkoutUC,
		StatusUC:   statusUC,
		AppEnv:     cfg.App.Env,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
