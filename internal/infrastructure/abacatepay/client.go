package abacatepay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/pix-checkout-api/internal/application/checkout"
	"github.com/jhoicas/pix-checkout-api/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ checkout.PaymentGateway   = (*Client)(nil)
	_ checkout.CustomerRegistry = (*Client)(nil)
)

const defaultBaseURL = "https://api.abacatepay.com/v1"

// Client adaptador REST de la pasarela AbacatePay.
// No guarda estado local: solo I/O de red. Sin credencial, cada llamada falla
// rápido con domain.ErrGatewayNotConfigured antes de tocar la red.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. baseURL vacío usa el endpoint de producción.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			// La pasarela responde en pocos segundos; un timeout explícito
			// evita que una petición colgada retenga el request del cliente.
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras del protocolo AbacatePay ──────────────────────────────────────

type wireCustomer struct {
	Name      string `json:"name"`
	Cellphone string `json:"cellphone"`
	Email     string `json:"email"`
	TaxID     string `json:"taxId"`
}

type wireMetadata struct {
	ExternalID string `json:"externalId"`
}

type pixCreateRequest struct {
	Amount      int64         `json:"amount"` // centavos
	ExpiresIn   int           `json:"expiresIn"`
	Description string        `json:"description"`
	Customer    wireCustomer  `json:"customer"`
	Metadata    *wireMetadata `json:"metadata,omitempty"`
}

type pixCreateResponse struct {
	Error interface{} `json:"error"`
	Data  *struct {
		ID           string `json:"id"`
		BRCode       string `json:"brCode"`
		BRCodeBase64 string `json:"brCodeBase64"`
		Status       string `json:"status"`
		Amount       int64  `json:"amount"`
		ExpiresAt    string `json:"expiresAt"`
	} `json:"data"`
}

type pixCheckResponse struct {
	Error interface{} `json:"error"`
	Data  *struct {
		Status    string `json:"status"`
		ExpiresAt string `json:"expiresAt"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

type customerCreateRequest struct {
	Name      string `json:"name"`
	Cellphone string `json:"cellphone"`
	Email     string `json:"email"`
	TaxID     string `json:"taxId"`
}

type customerCreateResponse struct {
	Error interface{} `json:"error"`
	Data  *struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ── Implementación de los puertos ─────────────────────────────────────────────

// CreateCharge crea un cobro PIX (QR Code) en la pasarela.
func (c *Client) CreateCharge(ctx context.Context, req checkout.ChargeRequest) (*checkout.Charge, error) {
	payload := pixCreateRequest{
		Amount:      req.AmountCents,
		ExpiresIn:   req.ExpiresIn,
		Description: req.Description,
		Customer: wireCustomer{
			Name:      req.Customer.Name,
			Cellphone: req.Customer.Cellphone,
			Email:     req.Customer.Email,
			TaxID:     req.Customer.TaxID,
		},
	}
	if req.ExternalRef != "" {
		payload.Metadata = &wireMetadata{ExternalID: req.ExternalRef}
	}

	var out pixCreateResponse
	if err := c.do(ctx, http.MethodPost, "/pixQrCode/create", payload, &out, "createCharge"); err != nil {
		return nil, err
	}
	if out.Error != nil {
		return nil, &domain.GatewayError{Op: "createCharge", Detail: out.Error}
	}
	if out.Data == nil {
		return nil, &domain.GatewayError{Op: "createCharge", Detail: "resposta sem campo data"}
	}
	return &checkout.Charge{
		ID:           out.Data.ID,
		BRCode:       out.Data.BRCode,
		BRCodeBase64: out.Data.BRCodeBase64,
		Status:       out.Data.Status,
		AmountCents:  out.Data.Amount,
		ExpiresAt:    out.Data.ExpiresAt,
	}, nil
}

// CheckCharge consulta el estado actual de un cobro PIX.
func (c *Client) CheckCharge(ctx context.Context, chargeID string) (*checkout.ChargeStatus, error) {
	path := "/pixQrCode/check?" + url.Values{"id": {chargeID}}.Encode()

	var out pixCheckResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "checkCharge"); err != nil {
		return nil, err
	}
	if out.Error != nil {
		return nil, &domain.GatewayError{Op: "checkCharge", Detail: out.Error}
	}
	if out.Data == nil {
		return nil, &domain.GatewayError{Op: "checkCharge", Detail: "resposta sem campo data"}
	}
	return &checkout.ChargeStatus{
		Status:      out.Data.Status,
		ExpiresAt:   out.Data.ExpiresAt,
		AmountCents: out.Data.Amount,
	}, nil
}

// RegisterCustomer registra al comprador en la pasarela y devuelve su ID.
func (c *Client) RegisterCustomer(ctx context.Context, cu checkout.CustomerDetails) (string, error) {
	payload := customerCreateRequest{
		Name:      cu.Name,
		Cellphone: cu.Cellphone,
		Email:     cu.Email,
		TaxID:     cu.TaxID,
	}

	var out customerCreateResponse
	if err := c.do(ctx, http.MethodPost, "/customer/create", payload, &out, "registerCustomer"); err != nil {
		return "", err
	}
	if out.Error != nil {
		return "", &domain.GatewayError{Op: "registerCustomer", Detail: out.Error}
	}
	if out.Data == nil || out.Data.ID == "" {
		return "", &domain.GatewayError{Op: "registerCustomer", Detail: "resposta sem id de cliente"}
	}
	return out.Data.ID, nil
}

// do ejecuta una llamada autenticada y decodifica la respuesta en out.
// Errores de transporte se devuelven envueltos (error interno); los rechazos
// del proveedor los clasifica cada operación a partir del campo error.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}, op string) error {
	if c.apiKey == "" {
		return domain.ErrGatewayNotConfigured
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("abacatepay: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("abacatepay: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("abacatepay: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("abacatepay: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("abacatepay: leer respuesta: %w", err)
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		// Cuerpo no decodificable: en un no-2xx es un rechazo del proveedor,
		// en un 2xx es una respuesta corrupta (error interno).
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &domain.GatewayError{Op: op, Detail: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(rawBody))}
		}
		return fmt.Errorf("abacatepay: deserializar respuesta: %w", err)
	}
	return nil
}
