package checkout

import "context"

// CustomerDetails datos del comprador tal como los espera la pasarela.
type CustomerDetails struct {
	Name      string
	Cellphone string
	Email     string
	TaxID     string
}

// ChargeRequest intención de cobro PIX.
// ExternalRef es el ID del Billing local; viaja como metadata.externalId
// para poder correlacionar en la pasarela.
type ChargeRequest struct {
	AmountCents int64
	ExpiresIn   int // segundos
	Description string
	Customer    CustomerDetails
	ExternalRef string
}

// Charge resultado de crear un cobro PIX en la pasarela.
type Charge struct {
	ID           string
	BRCode       string // código PIX copia-y-pega
	BRCodeBase64 string // imagen QR en base64
	Status       string
	AmountCents  int64
	ExpiresAt    string // se conserva tal cual lo entrega la pasarela
}

// ChargeStatus estado actual de un cobro en la pasarela.
type ChargeStatus struct {
	Status      string
	ExpiresAt   string
	AmountCents int64
}

// PaymentGateway puerto de la pasarela de pagos.
// Toda implementación falla rápido con domain.ErrGatewayNotConfigured si no
// hay credencial, y reporta rechazos del proveedor como *domain.GatewayError.
type PaymentGateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
	CheckCharge(ctx context.Context, chargeID string) (*ChargeStatus, error)
}

// CustomerRegistry registro del comprador en la pasarela. El checkout lo usa
// best-effort: un fallo aquí no aborta la venta.
type CustomerRegistry interface {
	RegisterCustomer(ctx context.Context, c CustomerDetails) (string, error)
}
