package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	AbacatePay AbacatePayConfig
	Checkout   CheckoutConfig
	CORS       CORSConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AbacatePayConfig credencial y endpoint de la pasarela de pagos.
type AbacatePayConfig struct {
	APIKey  string // vacío = pasarela no configurada; las llamadas fallan rápido
	BaseURL string // sobreescribible en tests/sandbox
}

// CheckoutConfig parámetros fijos de la venta (precio único por transacción).
type CheckoutConfig struct {
	Amount      decimal.Decimal // precio en reales, ej. 9.90
	Description string
	ExpiresIn   int // segundos de validez del cobro PIX
}

// CORSConfig orígenes permitidos para el frontend.
type CORSConfig struct {
	FrontendURL string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, ABACATEPAY_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	amount, err := decimal.NewFromString(getString(v, "CHECKOUT_AMOUNT", "9.90"))
	if err != nil {
		return nil, fmt.Errorf("CHECKOUT_AMOUNT inválido: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "pix-checkout-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		AbacatePay: AbacatePayConfig{
			APIKey:  getString(v, "ABACATEPAY_API_KEY", ""),
			BaseURL: getString(v, "ABACATEPAY_BASE_URL", "https://api.abacatepay.com/v1"),
		},
		Checkout: CheckoutConfig{
			Amount:      amount,
			Description: getString(v, "CHECKOUT_DESCRIPTION", "Confeitaria Lucrativa - Curso Completo"),
			ExpiresIn:   getInt(v, "CHECKOUT_EXPIRES_IN", 86400),
		},
		CORS: CORSConfig{
			FrontendURL: getString(v, "FRONTEND_URL", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
