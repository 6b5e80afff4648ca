package cardfield

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := []struct {
		name string
		mut  func(*Config)
		ok   bool
	}{
		{"timezone", func(c *Config) { c.ExpiryTZ = "Europe/Berlin" }, true},
		{"bad timezone", func(c *Config) { c.ExpiryTZ = "Mars/Olympus" }, false},
		{"country", func(c *Config) { c.Country = "US" }, true},
		{"bad country", func(c *Config) { c.Country = "USA" }, false},
		{"zero postal length", func(c *Config) { c.PostalMaxLength = 0 }, false},
		{"huge postal length", func(c *Config) { c.PostalMaxLength = 100 }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mut(cfg)
			err := cfg.Validate()
			if c.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestConfig_Location(t *testing.T) {
	loc, err := DefaultConfig().Location()
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)

	cfg := &Config{ExpiryTZ: "Europe/Berlin"}
	loc, err = cfg.Location()
	require.NoError(t, err)
	require.Equal(t, "Europe/Berlin", loc.String())

	cfg.ExpiryTZ = "nope"
	loc, err = cfg.Location()
	require.Error(t, err)
	require.Equal(t, time.UTC, loc)
}
