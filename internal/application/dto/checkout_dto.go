package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest body para POST /api/checkout.
// Las reglas replican el esquema público: name ≥2, email válido,
// phone ≥10 dígitos, taxId (CPF) ≥11 dígitos.
type CheckoutRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10"`
	TaxID string `json:"taxId" validate:"required,min=11"`
}

// CustomerDTO cliente en respuestas.
type CustomerDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	TaxID        string    `json:"taxId"`
	AbacatePayID string    `json:"abacatePayId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BillingDTO cobro en respuestas.
type BillingDTO struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	AbacatePayID  string          `json:"abacatePayId,omitempty"`
	PixCode       string          `json:"pixCode,omitempty"`
	QRCodeURL     string          `json:"qrCodeUrl,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CheckoutResponse respuesta de POST /api/checkout.
// Amount es el monto en centavos tal como lo confirmó la pasarela;
// ExpiresAt viaja tal cual lo entrega la pasarela (RFC 3339).
type CheckoutResponse struct {
	Billing   BillingDTO  `json:"billing"`
	Customer  CustomerDTO `json:"customer"`
	PixID     string      `json:"pixId"`
	PixCode   string      `json:"pixCode"`
	QRCodeURL string      `json:"qrCodeUrl"`
	Amount    int64       `json:"amount"`
	ExpiresAt string      `json:"expiresAt"`
}

// PaymentStatusResponse respuesta de GET /api/payment/check/:pixId.
// IsPaid es derivado (status == PAID), nunca se almacena.
type PaymentStatusResponse struct {
	Status    string `json:"status"`
	ExpiresAt string `json:"expiresAt"`
	IsPaid    bool   `json:"isPaid"`
}

// CustomersDebugResponse respuesta del stub de listado GET /api/customers.
type CustomersDebugResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ErrorResponse cuerpo de error HTTP. Details lleva el detalle del proveedor
// o el mapa campo → mensaje de validación.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
