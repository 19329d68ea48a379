package checkout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pix-checkout-api/internal/application/dto"
	"github.com/jhoicas/pix-checkout-api/internal/domain"
	"github.com/jhoicas/pix-checkout-api/internal/domain/entity"
	"github.com/jhoicas/pix-checkout-api/internal/domain/repository"
	"github.com/jhoicas/pix-checkout-api/pkg/logger"
	"github.com/jhoicas/pix-checkout-api/pkg/validation"
)

// SaleConfig parámetros fijos de la venta: un único precio por transacción.
type SaleConfig struct {
	Amount      decimal.Decimal
	Description string
	ExpiresIn   int // segundos de validez del PIX
}

// CheckoutUseCase orquesta el flujo de checkout: validación → Customer →
// Billing PENDING → registro best-effort del cliente en la pasarela →
// creación del cobro PIX → reconciliación del Billing → respuesta.
type CheckoutUseCase struct {
	customers repository.CustomerRepository
	billings  repository.BillingRepository
	gateway   PaymentGateway
	registry  CustomerRegistry
	sale      SaleConfig
	log       *logger.Logger
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	customers repository.CustomerRepository,
	billings repository.BillingRepository,
	gateway PaymentGateway,
	registry CustomerRegistry,
	sale SaleConfig,
	log *logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		customers: customers,
		billings:  billings,
		gateway:   gateway,
		registry:  registry,
		sale:      sale,
		log:       log,
	}
}

// Execute procesa un checkout completo. Si la pasarela rechaza el cobro o la
// credencial falta, el Billing local queda PENDING sin referencia externa
// (huérfano asumido; no hay compensación).
func (uc *CheckoutUseCase) Execute(ctx context.Context, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if fields := validation.Struct(in); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}

	customer, err := uc.customers.Create(&entity.Customer{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		TaxID: in.TaxID,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("customer_id", customer.ID).Msg("cliente creado")

	billing, err := uc.billings.Create(&entity.Billing{
		CustomerID:    customer.ID,
		Amount:        uc.sale.Amount,
		Status:        entity.BillingStatusPending,
		PaymentMethod: entity.PaymentMethodPix,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("billing_id", billing.ID).Msg("cobro creado en estado PENDING")

	details := CustomerDetails{
		Name:      in.Name,
		Cellphone: in.Phone,
		Email:     in.Email,
		TaxID:     in.TaxID,
	}

	// Registro best-effort: un fallo aquí no aborta el checkout, el cliente
	// simplemente queda sin abacatePayId.
	if gatewayID, regErr := uc.registry.RegisterCustomer(ctx, details); regErr != nil {
		uc.log.Warn().Err(regErr).Str("customer_id", customer.ID).
			Msg("registro del cliente en la pasarela falló; se continúa sin abacatePayId")
	} else {
		if updated, upErr := uc.customers.Update(customer.ID, repository.CustomerPatch{AbacatePayID: &gatewayID}); upErr == nil {
			customer = updated
		}
	}

	charge, err := uc.gateway.CreateCharge(ctx, ChargeRequest{
		AmountCents: toCents(uc.sale.Amount),
		ExpiresIn:   uc.sale.ExpiresIn,
		Description: uc.sale.Description,
		Customer:    details,
		ExternalRef: billing.ID,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("billing_id", billing.ID).Msg("creación del PIX falló; el cobro queda PENDING")
		return nil, err
	}

	billing, err = uc.billings.Update(billing.ID, repository.BillingPatch{
		AbacatePayID: &charge.ID,
		PixCode:      &charge.BRCode,
		QRCodeURL:    &charge.BRCodeBase64,
		Status:       &charge.Status, // tal cual lo reporta la pasarela
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("billing_id", billing.ID).Str("pix_id", charge.ID).Msg("checkout completado")

	return &dto.CheckoutResponse{
		Billing:   toBillingDTO(billing),
		Customer:  toCustomerDTO(customer),
		PixID:     charge.ID,
		PixCode:   charge.BRCode,
		QRCodeURL: charge.BRCodeBase64,
		Amount:    charge.AmountCents,
		ExpiresAt: charge.ExpiresAt,
	}, nil
}

// CustomerCount expone el total de clientes para el stub de depuración.
func (uc *CheckoutUseCase) CustomerCount() int {
	return uc.customers.Count()
}

func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}

func toCustomerDTO(c *entity.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		TaxID:        c.TaxID,
		AbacatePayID: c.AbacatePayID,
		CreatedAt:    c.CreatedAt,
	}
}

func toBillingDTO(b *entity.Billing) dto.BillingDTO {
	return dto.BillingDTO{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		Amount:        b.Amount,
		Status:        b.Status,
		PaymentMethod: b.PaymentMethod,
		AbacatePayID:  b.AbacatePayID,
		PixCode:       b.PixCode,
		QRCodeURL:     b.QRCodeURL,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
