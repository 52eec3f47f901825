package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/nursery-store/models"
	"github.com/junaidrashid-git/nursery-store/pricing"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"JWT_SECRET":    "secret",
		"ADMIN_API_KEY": "admin",
		"DB_HOST":       "db",
		"DB_PASSWORD":   "pw",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Production())
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "usd", cfg.Currency)
	assert.Equal(t, []string{"US"}, cfg.ShippingCountries)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "host=db user=postgres password=pw dbname=nursery port=5432 sslmode=disable", cfg.DatabaseURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"JWT_SECRET":         "secret",
		"ADMIN_API_KEY":      "admin",
		"DATABASE_URL":       "postgres://u:p@h/db",
		"PUBLIC_BASE_URL":    "https://shop.test/",
		"CURRENCY":           "EUR",
		"SESSION_TTL":        "2h",
		"SHIPPING_COUNTRIES": "US, CA",
	}))
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h/db", cfg.DatabaseURL)
	assert.Equal(t, "https://shop.test", cfg.PublicBaseURL)
	assert.Equal(t, "eur", cfg.Currency)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"US", "CA"}, cfg.ShippingCountries)
}

func TestFromEnv_Validation(t *testing.T) {
	_, err := FromEnv(envOf(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "ADMIN_API_KEY")

	_, err = FromEnv(envOf(map[string]string{
		"JWT_SECRET": "s", "ADMIN_API_KEY": "a", "APP_ENV": "production",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")

	_, err = FromEnv(envOf(map[string]string{
		"JWT_SECRET": "s", "ADMIN_API_KEY": "a", "SESSION_TTL": "soon",
	}))
	assert.Error(t, err)
}

func TestLoadRates(t *testing.T) {
	rates, err := LoadRates("")
	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultRates().FreeShippingThreshold, rates.FreeShippingThreshold)

	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
free_shipping_threshold: 150
scale_by_size: false
default_base_price: "19.99"
category_rates:
  Cacti: 50
  seeds: 5
`), 0o600))

	rates, err = LoadRates(path)
	require.NoError(t, err)
	assert.Equal(t, int64(150), rates.FreeShippingThreshold)
	assert.False(t, rates.ScaleBySize)
	assert.True(t, rates.DefaultBasePrice.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, int64(50), rates.RateFor(models.CategoryCacti))
	assert.Equal(t, int64(5), rates.RateFor(models.CategorySeeds))
	assert.Equal(t, int64(40), rates.RateFor(models.CategoryAgaves), "unlisted categories keep their default")

	assert.Equal(t, int64(45), pricing.DefaultRates().RateFor(models.CategoryCacti), "defaults are not mutated")
}

func TestParseRates_Errors(t *testing.T) {
	base := pricing.DefaultRates()
	for name, doc := range map[string]string{
		"unknown category": "category_rates:\n  ferns: 10\n",
		"negative rate":    "category_rates:\n  cacti: -1\n",
		"bad price":        "default_base_price: free\n",
		"bad yaml":         "free_shipping_threshold: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRates([]byte(doc), base)
			assert.Error(t, err)
		})
	}
}
