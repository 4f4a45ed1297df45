// Package config reads the console backend settings from the environment.
//
// A .env file, when present, is loaded by godotenv/autoload in cmd/api before
// Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort             = 8080
	defaultRentalAPIURL     = "https://api.rentyourpc.com/api"
	defaultRentalAPITimeout = 15 * time.Second
	defaultSessionTTL       = 12 * time.Hour
	defaultSessionsTable    = "console_sessions"
	defaultRegion           = "us-east-1"
	defaultOrderDeposit     = "line_items"
	defaultTimezone         = "Asia/Kolkata"
	defaultLogLevel         = "info"

	SessionStoreMemory   = "memory"
	SessionStoreDynamoDB = "dynamodb"
)

type Config struct {
	Port int

	RentalAPIBaseURL string
	RentalAPITimeout time.Duration

	SessionStore  string
	SessionsTable string
	SessionTTL    time.Duration

	AWSRegion        string
	DynamoDBEndpoint string

	CORSAllowedOrigins []string

	GSTRates     []float64
	OrderDeposit string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	DocumentBucket     string
	GCSCredentialsJSON string

	Location *time.Location
	LogLevel string
}

// Load builds a Config from the environment, applying defaults for anything
// unset. Malformed values are reported instead of silently replaced.
func Load() (Config, error) {
	cfg := Config{
		RentalAPIBaseURL:       strings.TrimRight(getenvDefault("RENTAL_API_BASE_URL", defaultRentalAPIURL), "/"),
		SessionStore:           strings.ToLower(getenvDefault("SESSION_STORE", SessionStoreMemory)),
		SessionsTable:          getenvDefault("SESSIONS_TABLE", defaultSessionsTable),
		AWSRegion:              getenvDefault("AWS_REGION", defaultRegion),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		CORSAllowedOrigins:     splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		OrderDeposit:           getenvDefault("PRICING_ORDER_DEPOSIT", defaultOrderDeposit),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		DocumentBucket:         strings.TrimSpace(os.Getenv("DOCUMENT_BUCKET")),
		GCSCredentialsJSON:     os.Getenv("GCS_CREDENTIALS_JSON"),
		LogLevel:               getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	var err error
	if cfg.Port, err = intEnv("PORT", defaultPort); err != nil {
		return Config{}, err
	}
	if cfg.RentalAPITimeout, err = durationEnv("RENTAL_API_TIMEOUT", defaultRentalAPITimeout); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", defaultSessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.GSTRates, err = floatListEnv("PRICING_GST_RATES"); err != nil {
		return Config{}, err
	}

	switch cfg.SessionStore {
	case SessionStoreMemory, SessionStoreDynamoDB:
	default:
		return Config{}, fmt.Errorf("SESSION_STORE: unknown store %q", cfg.SessionStore)
	}

	tz := getenvDefault("BUSINESS_TIMEZONE", defaultTimezone)
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return Config{}, fmt.Errorf("BUSINESS_TIMEZONE: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive", key)
	}
	return d, nil
}

// floatListEnv returns nil when the variable is unset so callers fall back to
// their own defaults.
func floatListEnv(key string) ([]float64, error) {
	parts := splitList(os.Getenv(key))
	if len(parts) == 0 {
		return nil, nil
	}
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, f)
	}
	return out, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
