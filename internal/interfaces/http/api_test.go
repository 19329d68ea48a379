package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pix-checkout-api/internal/application/checkout"
	"github.com/jhoicas/pix-checkout-api/internal/infrastructure/abacatepay"
	"github.com/jhoicas/pix-checkout-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/pix-checkout-api/internal/interfaces/http"
	"github.com/jhoicas/pix-checkout-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testAPIKey = "abc_test_key"

// stubGatewayServer servidor HTTP que simula la API de AbacatePay.
func stubGatewayServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/pixQrCode/create", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"pix_1","brCode":"000201...","brCodeBase64":"data:...","status":"PENDING","amount":990,"expiresAt":"2024-01-02T00:00:00Z"}}`))
	})
	mux.HandleFunc("/pixQrCode/check", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"status":"PAID","expiresAt":"2024-01-02T00:00:00Z","amount":990}}`))
	})
	mux.HandleFunc("/customer/create", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"cust_gw_1"}}`))
	})
	return httptest.NewServer(mux)
}

type testEnv struct {
	app      *fiber.App
	billings *memory.BillingRepo
}

// buildTestApp arma la aplicación completa (repos en memoria + cliente real
// apuntando al stub de la pasarela) tal como lo hace cmd/api.
func buildTestApp(t *testing.T, apiKey, gatewayURL string) *testEnv {
	t.Helper()
	customers := memory.NewCustomerRepository()
	billings := memory.NewBillingRepository()
	gateway := abacatepay.NewClient(apiKey, gatewayURL)

	checkoutUC := checkout.NewCheckoutUseCase(customers, billings, gateway, gateway, checkout.SaleConfig{
		Amount:      decimal.RequireFromString("9.90"),
		Description: "Confeitaria Lucrativa - Curso Completo",
		ExpiresIn:   86400,
	}, logger.Nop())
	statusUC := checkout.NewPaymentStatusUseCase(billings, gateway, logger.Nop())

	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.NewErrorHandler("test"),
	})
	app.Use(recover.New())
	apphttp.Router(app, apphttp.RouterDeps{
		CheckoutUC: checkoutUC,
		StatusUC:   statusUC,
		AppEnv:     "test",
	})
	return &testEnv{app: app, billings: billings}
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

const checkoutBody = `{"name":"Maria Silva","email":"maria@example.com","phone":"11999999999","taxId":"12345678901"}`

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios end-to-end
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CheckoutCompleto(t *testing.T) {
	srv := stubGatewayServer(t)
	defer srv.Close()
	env := buildTestApp(t, testAPIKey, srv.URL)

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/checkout", checkoutBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pix_1", body["pixId"])
	assert.Equal(t, "000201...", body["pixCode"])
	assert.Equal(t, float64(990), body["amount"])
	assert.Equal(t, "2024-01-02T00:00:00Z", body["expiresAt"])

	billing := body["billing"].(map[string]interface{})
	assert.Equal(t, "PENDING", billing["status"])
	assert.Equal(t, "pix_1", billing["abacatePayId"])

	customer := body["customer"].(map[string]interface{})
	assert.Equal(t, "Maria Silva", customer["name"])
	assert.NotEmpty(t, customer["id"])
	assert.Equal(t, "cust_gw_1", customer["abacatePayId"])
}

func TestAPI_CheckPaymentActualizaBillingLocal(t *testing.T) {
	srv := stubGatewayServer(t)
	defer srv.Close()
	env := buildTestApp(t, testAPIKey, srv.URL)

	// Primero un checkout para tener el Billing ligado a pix_1
	resp, _ := doJSON(t, env.app, http.MethodPost, "/api/checkout", checkoutBody)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/payment/check/pix_1", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "PAID", body["status"])
	assert.Equal(t, true, body["isPaid"])

	// El Billing local por llave inversa quedó en PAID
	stored, err := env.billings.GetByAbacatePayID("pix_1")
	require.NoError(t, err)
	assert.Equal(t, "PAID", stored.Status)
}

func TestAPI_ValidacionEnumeraCampos(t *testing.T) {
	srv := stubGatewayServer(t)
	defer srv.Close()
	env := buildTestApp(t, testAPIKey, srv.URL)

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/checkout",
		`{"name":"M","email":"invalido","phone":"123"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Dados inválidos", body["error"])
	details := body["details"].(map[string]interface{})
	assert.Len(t, details, 4)
	assert.Contains(t, details, "taxId")
}

func TestAPI_SinCredencialRespondeError500(t *testing.T) {
	srv := stubGatewayServer(t)
	defer srv.Close()
	env := buildTestApp(t, "", srv.URL)

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/checkout", checkoutBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Pagamento temporariamente indisponível", body["error"])
	assert.Equal(t, "API key não configurada", body["details"])

	resp, body = doJSON(t, env.app, http.MethodGet, "/api/payment/check/pix_1", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Serviço de pagamento indisponível", body["error"])
}

func TestAPI_RechazoDelProveedorResponde400(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/pixQrCode/create", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"taxId rejeitado"}`))
	})
	mux.HandleFunc("/customer/create", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"cust_gw_1"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	env := buildTestApp(t, testAPIKey, srv.URL)

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/checkout", checkoutBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Erro ao criar PIX", body["error"])
	assert.Equal(t, "taxId rejeitado", body["details"])
}

func TestAPI_Health(t *testing.T) {
	srv := stubGatewayServer(t)
	defer srv.Close()
	env := buildTestApp(t, testAPIKey, srv.URL)

	resp, body := doJSON(t, env.app, http.MethodGet, "/health", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["environment"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestAPI_RutaDesconocidaResponde404(t *testing.T) {
	srv := stubGatewayServer(t)
	defer srv.Close()
	env := buildTestApp(t, testAPIKey, srv.URL)

	resp, body := doJSON(t, env.app, http.MethodGet, "/nope", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route not found", body["error"])
	assert.Equal(t, "/nope", body["path"])
}

func TestAPI_CustomersDebugStub(t *testing.T) {
	srv := stubGatewayServer(t)
	defer srv.Close()
	env := buildTestApp(t, testAPIKey, srv.URL)

	resp, _ := doJSON(t, env.app, http.MethodPost, "/api/checkout", checkoutBody)
	resp.Body.Close()

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/customers", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Customers endpoint available", body["message"])
	assert.Equal(t, float64(1), body["count"])
}
