package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados conocidos de un cobro. La pasarela puede reportar otros valores;
// se guardan tal cual llegan.
const (
	BillingStatusPending = "PENDING"
	BillingStatusPaid    = "PAID"
	BillingStatusExpired = "EXPIRED"
)

// PaymentMethodPix único método de pago soportado.
const PaymentMethodPix = "PIX"

// Billing registro local de un intento de pago, ligado a exactamente un Customer.
// AbacatePayID, una vez asignado, es la llave de reconciliación con la pasarela.
type Billing struct {
	ID            string
	CustomerID    string
	Amount        decimal.Decimal
	Status        string
	PaymentMethod string
	AbacatePayID  string
	PixCode       string // código copia-y-pega del PIX (brCode)
	QRCodeURL     string // imagen del QR en base64 (brCodeBase64)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
