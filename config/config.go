// Package config reads the service settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	AdminAPIKey string
	JWTSecret   string
	SessionTTL  time.Duration

	StripeSecretKey     string
	StripeWebhookSecret string
	ShippingCountries   []string
	PublicBaseURL       string
	Currency            string

	ResendAPIKey string
	EmailFrom    string
	AdminEmail   string
	StoreName    string

	PricingFile string
	CORSOrigins []string
}

func (c Config) Production() bool {
	return c.Env == "production"
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Port:                get("PORT", "8080"),
		Env:                 strings.ToLower(get("APP_ENV", "development")),
		DatabaseURL:         get("DATABASE_URL", ""),
		AdminAPIKey:         get("ADMIN_API_KEY", ""),
		JWTSecret:           get("JWT_SECRET", ""),
		StripeSecretKey:     get("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: get("STRIPE_WEBHOOK_SECRET", ""),
		ShippingCountries:   splitList(get("SHIPPING_COUNTRIES", "US")),
		PublicBaseURL:       strings.TrimRight(get("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		Currency:            strings.ToLower(get("CURRENCY", "usd")),
		ResendAPIKey:        get("RESEND_API_KEY", ""),
		EmailFrom:           get("EMAIL_FROM", "orders@localhost"),
		AdminEmail:          get("ADMIN_EMAIL", ""),
		StoreName:           get("STORE_NAME", "Nursery"),
		PricingFile:         get("PRICING_FILE", ""),
		CORSOrigins:         splitList(get("CORS_ORIGINS", "*")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			get("DB_HOST", "localhost"), get("DB_USER", "postgres"), get("DB_PASSWORD", ""),
			get("DB_NAME", "nursery"), get("DB_PORT", "5432"),
		)
	}

	ttl, err := time.ParseDuration(get("SESSION_TTL", "720h"))
	if err != nil {
		return Config{}, fmt.Errorf("SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is not set"))
	}
	if c.AdminAPIKey == "" {
		errs = append(errs, errors.New("ADMIN_API_KEY is not set"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if len(c.Currency) != 3 {
		errs = append(errs, fmt.Errorf("CURRENCY %q is not a 3-letter code", c.Currency))
	}
	if c.Production() {
		if c.StripeSecretKey == "" || c.StripeWebhookSecret == "" {
			errs = append(errs, errors.New("STRIPE_SECRET_KEY and STRIPE_WEBHOOK_SECRET are required in production"))
		}
		if c.ResendAPIKey == "" {
			errs = append(errs, errors.New("RESEND_API_KEY is required in production"))
		}
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
