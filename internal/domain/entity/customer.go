package entity

import "time"

// Customer comprador registrado durante el checkout.
type Customer struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	TaxID        string // CPF (Brasil), mínimo 11 dígitos
	AbacatePayID string // ID del cliente en la pasarela; vacío si el registro falló o no se intentó
	CreatedAt    time.Time
}
