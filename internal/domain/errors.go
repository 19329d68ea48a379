package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrGatewayNotConfigured falta la credencial de la pasarela de pagos.
	// Es un error de configuración del servidor, no culpa del cliente.
	ErrGatewayNotConfigured = errors.New("pasarela de pago no configurada: falta ABACATEPAY_API_KEY")
)

// ValidationError agrupa todas las violaciones de entrada de una petición.
// Se reportan todos los campos inválidos a la vez, no solo el primero.
type ValidationError struct {
	Fields map[string]string // campo → mensaje
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "entrada inválida: " + strings.Join(parts, "; ")
}

// GatewayError error reportado por la pasarela de pagos. Detail conserva el
// detalle del proveedor tal cual llegó (string u objeto JSON ya decodificado).
type GatewayError struct {
	Op     string // "createCharge", "checkCharge" o "registerCustomer"
	Detail interface{}
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("abacatepay %s: %v", e.Op, e.Detail)
}
