// Package cardfield is the state model behind an interactive payment card
// entry field. A Model holds the raw text of the number, expiration, CVC
// and postal code sub-fields and derives brand, per-field validation state
// and display helpers from it on every query.
//
// A Model is not safe for concurrent use. It is meant to be owned by the
// goroutine that handles input events for one form.
package cardfield

import (
	"io"
	"time"

	"github.com/alovak/cardfield/brand"
	"github.com/alovak/cardfield/icons"
	"github.com/alovak/cardfield/internal/cardgen"
	"github.com/alovak/cardfield/internal/expiry"
	"github.com/alovak/cardfield/validation"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// visibleDigits is how many trailing digits NumberWithoutLastDigits keeps.
const visibleDigits = 4

// Model is the card entry field state for one input session. Only the raw
// text is stored; everything else is computed from it when asked.
type Model struct {
	cardNumber    string
	rawExpiration string
	cvc           string
	postalCode    string
	country       string

	config  *Config
	loc     *time.Location
	now     func() time.Time
	icons   icons.Provider
	logger  *slog.Logger
	session uuid.UUID
}

// Option customizes a Model.
type Option func(*Model)

// WithLogger sets the logger used for debug output on edits. Card numbers
// are only ever logged masked and CVCs never.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock replaces time.Now for expiration checks.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIconProvider sets the provider behind BrandImage and CVCImage.
func WithIconProvider(p icons.Provider) Option {
	return func(m *Model) {
		if p != nil {
			m.icons = p
		}
	}
}

// New creates an empty model. A nil config means DefaultConfig(). An
// unloadable ExpiryTZ is logged and replaced by the expiry default.
func New(config *Config, opts ...Option) *Model {
	if config == nil {
		config = DefaultConfig()
	}
	m := &Model{
		config:  config,
		country: config.Country,
		now:     time.Now,
		icons:   icons.Assets{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		session: uuid.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(slog.String("session", m.session.String()))

	loc, err := config.Location()
	if err != nil {
		m.logger.Info("invalid ExpiryTZ; using default", slog.String("tz", config.ExpiryTZ), slog.Any("err", err))
	}
	m.loc = loc
	return m
}

// Session identifies this input session in logs.
func (m *Model) Session() uuid.UUID {
	return m.session
}

func (m *Model) SetCardNumber(number string) {
	m.cardNumber = number
	m.logger.Debug("card number changed",
		slog.String("brand", m.Brand().String()),
		slog.String("masked", m.NumberWithoutLastDigits()),
		slog.String("state", m.ValidationState(Number).String()),
	)
}

func (m *Model) CardNumber() string {
	return m.cardNumber
}

func (m *Model) SetRawExpiration(raw string) {
	m.rawExpiration = raw
	m.logChange(Expiration)
}

func (m *Model) RawExpiration() string {
	return m.rawExpiration
}

// ExpirationMonth is the two digit month part of the raw expiration, or ""
// when the raw text does not split into a month and a year.
func (m *Model) ExpirationMonth() string {
	month, _ := expiry.Split(m.rawExpiration)
	return month
}

// ExpirationYear is the year part of the raw expiration, or "" when the raw
// text does not split into a month and a year.
func (m *Model) ExpirationYear() string {
	_, year := expiry.Split(m.rawExpiration)
	return year
}

func (m *Model) SetCVC(cvc string) {
	m.cvc = cvc
	m.logChange(CVC)
}

func (m *Model) CVC() string {
	return m.cvc
}

func (m *Model) SetPostalCode(code string) {
	m.postalCode = code
	m.logChange(PostalCode)
}

func (m *Model) PostalCode() string {
	return m.postalCode
}

// SetCountry selects the billing country whose postal code rules apply.
// Empty means generic rules.
func (m *Model) SetCountry(country string) {
	m.country = country
	m.logChange(PostalCode)
}

func (m *Model) Country() string {
	return m.country
}

// Brand is derived from the card number's IIN prefix.
func (m *Model) Brand() brand.Brand {
	return brand.ForNumber(m.cardNumber)
}

// ValidationState reports how complete the given sub-field is. Unknown
// kinds are Invalid.
func (m *Model) ValidationState(kind Kind) validation.State {
	switch kind {
	case Number:
		return validation.Number(m.cardNumber)
	case Expiration:
		return validation.Expiration(m.rawExpiration, m.now(), m.loc)
	case CVC:
		return validation.CVC(m.cvc, m.Brand())
	case PostalCode:
		return validation.PostalCode(m.postalCode, m.country, m.config.PostalMaxLength)
	default:
		return validation.Invalid
	}
}

// IsValid holds when every sub-field is Valid.
func (m *Model) IsValid() bool {
	for _, k := range Kinds() {
		if m.ValidationState(k) != validation.Valid {
			return false
		}
	}
	return true
}

// NumberWithoutLastDigits masks every digit of the card number except the
// last four, one mask character per hidden digit. It is "" while fewer
// than four digits are typed.
func (m *Model) NumberWithoutLastDigits() string {
	return cardgen.MaskDigits(m.cardNumber, visibleDigits)
}

// Placeholder is an example number shaped like the current brand.
func (m *Model) Placeholder() string {
	return brand.Placeholder(m.Brand())
}

// FormattedNumber groups the typed digits the way the current brand prints
// them. Text with characters other than digits and separators is returned
// unchanged.
func (m *Model) FormattedNumber() string {
	d, ok := brand.Digits(m.cardNumber)
	if !ok {
		return m.cardNumber
	}
	return brand.Format(d, m.Brand())
}

// BrandImage is the brand mark, or the provider's error artwork once the
// number is Invalid.
func (m *Model) BrandImage() icons.IconRef {
	return m.icons.IconFor(m.Brand(), false, m.ValidationState(Number) != validation.Invalid)
}

// CVCImage is the CVC hint artwork. Providers may show a brand specific
// hint once the number is Valid.
func (m *Model) CVCImage() icons.IconRef {
	return m.icons.IconFor(m.Brand(), true, m.ValidationState(Number) == validation.Valid)
}

func (m *Model) logChange(kind Kind) {
	m.logger.Debug(kind.String()+" changed", slog.String("state", m.ValidationState(kind).String()))
}
