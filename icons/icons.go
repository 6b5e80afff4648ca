// Package icons resolves the artwork shown next to the card entry field.
// References are opaque to the card field model; hosts map them to images.
package icons

import "github.com/alovak/cardfield/brand"

// IconRef names an icon asset.
type IconRef string

// Provider returns the icon for a brand. forCVC asks for the CVC hint
// artwork instead of the brand mark, and valid tells whether the card
// number currently supports the brand shown.
type Provider interface {
	IconFor(b brand.Brand, forCVC, valid bool) IconRef
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(b brand.Brand, forCVC, valid bool) IconRef

func (f ProviderFunc) IconFor(b brand.Brand, forCVC, valid bool) IconRef {
	return f(b, forCVC, valid)
}

const (
	Error   IconRef = "card_error"
	CVC     IconRef = "card_cvc"
	CVCAmex IconRef = "card_cvc_amex"
)

// Assets is the default provider: asset names of the form "card_<brand>".
// Unknown brands use "card_unknown", rejected numbers "card_error". Amex
// prints its CVC on the front, so a valid Amex number gets its own CVC hint.
type Assets struct {
	// Prefix is prepended to every name, e.g. "icons/".
	Prefix string
}

func (a Assets) IconFor(b brand.Brand, forCVC, valid bool) IconRef {
	var ref IconRef
	switch {
	case forCVC && b == brand.Amex && valid:
		ref = CVCAmex
	case forCVC:
		ref = CVC
	case !valid:
		ref = Error
	default:
		ref = IconRef("card_" + b.String())
	}
	return IconRef(a.Prefix) + ref
}
