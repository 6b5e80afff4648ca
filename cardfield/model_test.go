package cardfield_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/alovak/cardfield/brand"
	"github.com/alovak/cardfield/cardfield"
	"github.com/alovak/cardfield/icons"
	"github.com/alovak/cardfield/validation"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
}

func newModel(t *testing.T, opts ...cardfield.Option) *cardfield.Model {
	t.Helper()
	return cardfield.New(nil, append([]cardfield.Option{cardfield.WithClock(fixedClock)}, opts...)...)
}

func TestModel_Scenarios(t *testing.T) {
	t.Run("valid visa", func(t *testing.T) {
		m := newModel(t)
		m.SetCardNumber("4242424242424242")
		require.Equal(t, brand.Visa, m.Brand())
		require.Equal(t, validation.Valid, m.ValidationState(cardfield.Number))
	})

	t.Run("short visa", func(t *testing.T) {
		m := newModel(t)
		m.SetCardNumber("424242424242")
		require.Equal(t, brand.Visa, m.Brand())
		require.Equal(t, validation.Incomplete, m.ValidationState(cardfield.Number))
	})

	t.Run("failing checksum", func(t *testing.T) {
		m := newModel(t)
		m.SetCardNumber("4242424242424241")
		require.Equal(t, validation.Invalid, m.ValidationState(cardfield.Number))
	})

	t.Run("month 13", func(t *testing.T) {
		m := newModel(t)
		m.SetRawExpiration("13/29")
		require.Equal(t, validation.Invalid, m.ValidationState(cardfield.Expiration))
	})

	t.Run("amex cvc", func(t *testing.T) {
		m := newModel(t)
		m.SetCardNumber("378282246310005")
		m.SetCVC("123")
		require.Equal(t, validation.Incomplete, m.ValidationState(cardfield.CVC))
		m.SetCVC("1234")
		require.Equal(t, validation.Valid, m.ValidationState(cardfield.CVC))
	})

	t.Run("amex masking", func(t *testing.T) {
		m := newModel(t)
		m.SetCardNumber("378282246310005")
		require.Equal(t, brand.Amex, m.Brand())
		require.Equal(t, "***********0005", m.NumberWithoutLastDigits())
	})
}

func TestModel_CVCFollowsBrand(t *testing.T) {
	m := newModel(t)
	m.SetCVC("1234")
	require.Equal(t, validation.Invalid, m.ValidationState(cardfield.CVC))
	m.SetCardNumber("37")
	require.Equal(t, validation.Valid, m.ValidationState(cardfield.CVC))
	m.SetCardNumber("4")
	require.Equal(t, validation.Invalid, m.ValidationState(cardfield.CVC))
}

func TestModel_Expiration(t *testing.T) {
	m := newModel(t)
	require.Equal(t, "", m.ExpirationMonth())
	require.Equal(t, validation.Incomplete, m.ValidationState(cardfield.Expiration))

	m.SetRawExpiration("12/")
	require.Equal(t, "", m.ExpirationMonth())
	require.Equal(t, "", m.ExpirationYear())
	require.Equal(t, validation.Incomplete, m.ValidationState(cardfield.Expiration))

	m.SetRawExpiration("12/29")
	require.Equal(t, "12", m.ExpirationMonth())
	require.Equal(t, "29", m.ExpirationYear())
	require.Equal(t, "12/29", m.RawExpiration())
	require.Equal(t, validation.Valid, m.ValidationState(cardfield.Expiration))

	m.SetRawExpiration("01/20")
	require.Equal(t, validation.Invalid, m.ValidationState(cardfield.Expiration))
}

func TestModel_ExpiryTZ(t *testing.T) {
	// 1 Nov 2026 01:00 in Sydney is still 31 Oct in UTC.
	clock := func() time.Time { return time.Date(2026, time.October, 31, 14, 0, 0, 0, time.UTC) }

	utc := cardfield.New(nil, cardfield.WithClock(clock))
	utc.SetRawExpiration("10/26")
	require.Equal(t, validation.Valid, utc.ValidationState(cardfield.Expiration))

	cfg := cardfield.DefaultConfig()
	cfg.ExpiryTZ = "Australia/Sydney"
	syd := cardfield.New(cfg, cardfield.WithClock(clock))
	syd.SetRawExpiration("10/26")
	require.Equal(t, validation.Invalid, syd.ValidationState(cardfield.Expiration))
}

func TestModel_BadTZFallsBack(t *testing.T) {
	var buf bytes.Buffer
	cfg := cardfield.DefaultConfig()
	cfg.ExpiryTZ = "Mars/Olympus"
	m := cardfield.New(cfg, cardfield.WithClock(fixedClock), cardfield.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))
	m.SetRawExpiration("10/26")
	require.Equal(t, validation.Valid, m.ValidationState(cardfield.Expiration))
	require.Contains(t, buf.String(), "Mars/Olympus")
}

func TestModel_PostalCode(t *testing.T) {
	m := newModel(t)
	require.Equal(t, validation.Incomplete, m.ValidationState(cardfield.PostalCode))
	m.SetPostalCode("90210")
	require.Equal(t, validation.Valid, m.ValidationState(cardfield.PostalCode))
	m.SetPostalCode("12345678901")
	require.Equal(t, validation.Invalid, m.ValidationState(cardfield.PostalCode))

	m.SetPostalCode("9021")
	m.SetCountry("US")
	require.Equal(t, validation.Incomplete, m.ValidationState(cardfield.PostalCode))

	m.SetPostalCode("")
	m.SetCountry("AE")
	require.Equal(t, validation.Valid, m.ValidationState(cardfield.PostalCode))

	cfg := cardfield.DefaultConfig()
	cfg.Country = "CA"
	ca := cardfield.New(cfg)
	require.Equal(t, "CA", ca.Country())
	ca.SetPostalCode("K1A 0B1")
	require.Equal(t, validation.Valid, ca.ValidationState(cardfield.PostalCode))
}

func TestModel_IsValid(t *testing.T) {
	m := newModel(t)
	require.False(t, m.IsValid())

	m.SetCardNumber("4242 4242 4242 4242")
	m.SetRawExpiration("04/31")
	m.SetCVC("123")
	require.False(t, m.IsValid())

	m.SetPostalCode("10115")
	require.True(t, m.IsValid())

	m.SetCVC("12")
	require.False(t, m.IsValid())
}

func TestModel_IsValidIsConjunction(t *testing.T) {
	numbers := []string{"", "4242", "4242424242424242", "4242424242424241", "378282246310005", "x"}
	exps := []string{"", "1", "12/29", "13/29", "01/20"}
	cvcs := []string{"", "12", "123", "1234", "abc"}
	postals := []string{"", "12345", "12345678901"}

	m := newModel(t)
	for _, n := range numbers {
		for _, e := range exps {
			for _, c := range cvcs {
				for _, p := range postals {
					m.SetCardNumber(n)
					m.SetRawExpiration(e)
					m.SetCVC(c)
					m.SetPostalCode(p)
					all := true
					for _, k := range cardfield.Kinds() {
						all = all && m.ValidationState(k) == validation.Valid
					}
					require.Equal(t, all, m.IsValid(), "%q %q %q %q", n, e, c, p)
					require.Equal(t, all, m.Snapshot().Valid)
				}
			}
		}
	}
}

func TestModel_UnknownKind(t *testing.T) {
	m := newModel(t)
	require.Equal(t, validation.Invalid, m.ValidationState(cardfield.Kind(9)))
	require.Equal(t, "unknown", cardfield.Kind(9).String())
}

func TestModel_ArbitraryInputNeverPanics(t *testing.T) {
	m := newModel(t)
	for _, s := range []string{"", " ", "/", "////", "ÿ", "４２４２", "\x00", "-1", "9999999999999999999999999"} {
		require.NotPanics(t, func() {
			m.SetCardNumber(s)
			m.SetRawExpiration(s)
			m.SetCVC(s)
			m.SetPostalCode(s)
			m.Snapshot()
			m.FormattedNumber()
		}, "input %q", s)
	}
}

func TestModel_Masking(t *testing.T) {
	m := newModel(t)
	require.Equal(t, "", m.NumberWithoutLastDigits())
	m.SetCardNumber("424")
	require.Equal(t, "", m.NumberWithoutLastDigits())
	m.SetCardNumber("4242")
	require.Equal(t, "4242", m.NumberWithoutLastDigits())
	m.SetCardNumber("4242424242424242")
	require.Equal(t, "************4242", m.NumberWithoutLastDigits())
}

func TestModel_Placeholder(t *testing.T) {
	m := newModel(t)
	require.Equal(t, "1234 5678 9012 3456", m.Placeholder())
	m.SetCardNumber("4")
	require.Equal(t, "4242 4242 4242 4242", m.Placeholder())
	m.SetCardNumber("37")
	require.Equal(t, "3782 822463 10005", m.Placeholder())
}

func TestModel_FormattedNumber(t *testing.T) {
	m := newModel(t)
	m.SetCardNumber("378282246310005")
	require.Equal(t, "3782 822463 10005", m.FormattedNumber())
	m.SetCardNumber("4242-4242-42")
	require.Equal(t, "4242 4242 42", m.FormattedNumber())
	m.SetCardNumber("42a")
	require.Equal(t, "42a", m.FormattedNumber())
}

func TestModel_Icons(t *testing.T) {
	m := newModel(t)
	require.Equal(t, icons.IconRef("card_unknown"), m.BrandImage())
	require.Equal(t, icons.CVC, m.CVCImage())

	m.SetCardNumber("37")
	require.Equal(t, icons.IconRef("card_amex"), m.BrandImage())
	require.Equal(t, icons.CVC, m.CVCImage())

	m.SetCardNumber("378282246310005")
	require.Equal(t, icons.CVCAmex, m.CVCImage())

	m.SetCardNumber("378282246310006")
	require.Equal(t, icons.Error, m.BrandImage())

	type call struct {
		b             brand.Brand
		forCVC, valid bool
	}
	var calls []call
	p := icons.ProviderFunc(func(b brand.Brand, forCVC, valid bool) icons.IconRef {
		calls = append(calls, call{b, forCVC, valid})
		return "x"
	})
	custom := newModel(t, cardfield.WithIconProvider(p))
	custom.SetCardNumber("4242424242424242")
	custom.BrandImage()
	custom.CVCImage()
	require.Equal(t, []call{{brand.Visa, false, true}, {brand.Visa, true, true}}, calls)
}

func TestModel_LogsNeverCarrySecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := newModel(t, cardfield.WithLogger(logger))
	m.SetCardNumber("4242424242424242")
	m.SetCVC("987")

	dec := json.NewDecoder(&buf)
	var masked []any
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		require.Equal(t, m.Session().String(), rec["session"])
		for k, v := range rec {
			require.NotEqual(t, "4242424242424242", v, k)
			require.NotEqual(t, "987", v, k)
		}
		if v, ok := rec["masked"]; ok {
			masked = append(masked, v)
		}
	}
	require.Equal(t, []any{"************4242"}, masked)
}

func TestModel_SnapshotJSON(t *testing.T) {
	m := newModel(t)
	m.SetCardNumber("4242424242424242")
	m.SetRawExpiration("12/29")
	m.SetCVC("123")

	raw, err := json.Marshal(m.Snapshot())
	require.NoError(t, err)
	require.NotContains(t, string(raw), "4242424242424242")

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, "visa", got["brand"])
	require.Equal(t, "12", got["expiration_month"])
	states := got["states"].(map[string]any)
	require.Equal(t, "valid", states["number"])
	require.Equal(t, "incomplete", states["postal_code"])
	require.Equal(t, false, got["valid"])

	require.Equal(t, validation.Valid, m.Snapshot().States.Get(cardfield.CVC))
}

func TestModel_SessionsDiffer(t *testing.T) {
	require.NotEqual(t, newModel(t).Session(), newModel(t).Session())
}
