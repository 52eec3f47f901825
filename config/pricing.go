package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/junaidrashid-git/nursery-store/models"
	"github.com/junaidrashid-git/nursery-store/pricing"
)

// pricingFile overrides parts of the built-in rate table. Omitted keys keep
// their defaults.
type pricingFile struct {
	FreeShippingThreshold *int64           `yaml:"free_shipping_threshold"`
	ScaleBySize           *bool            `yaml:"scale_by_size"`
	DefaultRate           *int64           `yaml:"default_rate"`
	DefaultBasePrice      string           `yaml:"default_base_price"`
	CategoryRates         map[string]int64 `yaml:"category_rates"`
}

// LoadRates returns the default rates, overlaid with the YAML file at path
// when path is not empty.
func LoadRates(path string) (pricing.Rates, error) {
	rates := pricing.DefaultRates()
	if path == "" {
		return rates, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return pricing.Rates{}, fmt.Errorf("read pricing file: %w", err)
	}
	return ParseRates(raw, rates)
}

// ParseRates applies a YAML document to base.
func ParseRates(raw []byte, base pricing.Rates) (pricing.Rates, error) {
	var f pricingFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return pricing.Rates{}, fmt.Errorf("parse pricing file: %w", err)
	}

	rates := base
	rates.CategoryRates = make(map[models.Category]int64, len(base.CategoryRates))
	for k, v := range base.CategoryRates {
		rates.CategoryRates[k] = v
	}

	if f.FreeShippingThreshold != nil {
		if *f.FreeShippingThreshold < 0 {
			return pricing.Rates{}, fmt.Errorf("free_shipping_threshold must not be negative")
		}
		rates.FreeShippingThreshold = *f.FreeShippingThreshold
	}
	if f.ScaleBySize != nil {
		rates.ScaleBySize = *f.ScaleBySize
	}
	if f.DefaultRate != nil {
		rates.DefaultRate = *f.DefaultRate
	}
	if f.DefaultBasePrice != "" {
		price, err := decimal.NewFromString(f.DefaultBasePrice)
		if err != nil || !price.IsPositive() {
			return pricing.Rates{}, fmt.Errorf("default_base_price %q must be a positive number", f.DefaultBasePrice)
		}
		rates.DefaultBasePrice = price
	}
	for name, rate := range f.CategoryRates {
		category, ok := models.ParseCategory(name)
		if !ok {
			return pricing.Rates{}, fmt.Errorf("category_rates: unknown category %q", name)
		}
		if rate < 0 {
			return pricing.Rates{}, fmt.Errorf("category_rates.%s must not be negative", name)
		}
		rates.CategoryRates[category] = rate
	}
	return rates, nil
}
