package cardfield

import (
	"github.com/alovak/cardfield/icons"
	"github.com/alovak/cardfield/validation"
)

// Snapshot is a read-only view of a Model for adapters and reports. It never
// carries the full card number or the CVC.
type Snapshot struct {
	Session         string        `json:"session"`
	Brand           string        `json:"brand"`
	MaskedNumber    string        `json:"masked_number,omitempty"`
	ExpirationMonth string        `json:"expiration_month,omitempty"`
	ExpirationYear  string        `json:"expiration_year,omitempty"`
	Placeholder     string        `json:"placeholder"`
	States          States        `json:"states"`
	Valid           bool          `json:"valid"`
	BrandImage      icons.IconRef `json:"brand_image"`
	CVCImage        icons.IconRef `json:"cvc_image"`
}

// States holds the validation state of each sub-field.
type States struct {
	Number     validation.State `json:"number"`
	Expiration validation.State `json:"expiration"`
	CVC        validation.State `json:"cvc"`
	PostalCode validation.State `json:"postal_code"`
}

// Get returns the state for kind, Invalid for unknown kinds.
func (s States) Get(kind Kind) validation.State {
	switch kind {
	case Number:
		return s.Number
	case Expiration:
		return s.Expiration
	case CVC:
		return s.CVC
	case PostalCode:
		return s.PostalCode
	default:
		return validation.Invalid
	}
}

func (m *Model) Snapshot() Snapshot {
	states := States{
		Number:     m.ValidationState(Number),
		Expiration: m.ValidationState(Expiration),
		CVC:        m.ValidationState(CVC),
		PostalCode: m.ValidationState(PostalCode),
	}
	return Snapshot{
		Session:         m.session.String(),
		Brand:           m.Brand().String(),
		MaskedNumber:    m.NumberWithoutLastDigits(),
		ExpirationMonth: m.ExpirationMonth(),
		ExpirationYear:  m.ExpirationYear(),
		Placeholder:     m.Placeholder(),
		States:          states,
		Valid: states.Number == validation.Valid &&
			states.Expiration == validation.Valid &&
			states.CVC == validation.Valid &&
			states.PostalCode == validation.Valid,
		BrandImage: m.BrandImage(),
		CVCImage:   m.CVCImage(),
	}
}
