package cardfield

import (
	"fmt"
	"time"

	"github.com/alovak/cardfield/internal/expiry"
	"github.com/alovak/cardfield/validation"
	"github.com/go-playground/validator/v10"
)

// Config tunes a card field model.
type Config struct {
	// ExpiryTZ is an IANA timezone name used to decide whether an expiration
	// month is already over (e.g., "Australia/Sydney"). Empty means UTC.
	ExpiryTZ string `mapstructure:"expiry_tz" validate:"omitempty,timezone"`
	// PostalMaxLength bounds postal codes that have no country rule.
	PostalMaxLength int `mapstructure:"postal_max_length" validate:"gte=1,lte=32"`
	// Country is the default ISO 3166 alpha-2 billing country.
	Country string `mapstructure:"country" validate:"omitempty,iso3166_1_alpha2"`
}

func DefaultConfig() *Config {
	return &Config{
		PostalMaxLength: validation.DefaultPostalMaxLength,
	}
}

// Validate reports the first misconfigured field.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid card field config: %w", err)
	}
	return nil
}

// Location resolves ExpiryTZ, falling back to the expiry default.
func (c *Config) Location() (*time.Location, error) {
	if c.ExpiryTZ == "" {
		return expiry.DefaultLocation(), nil
	}
	loc, err := time.LoadLocation(c.ExpiryTZ)
	if err != nil {
		return expiry.DefaultLocation(), fmt.Errorf("loading expiry timezone %q: %w", c.ExpiryTZ, err)
	}
	return loc, nil
}
