// Package brand classifies card numbers by their Issuer Identification
// Number (IIN) prefix and holds the per-brand length, CVC and display tables.
package brand

import "strings"

// Brand is a card network. The zero value is Unknown.
type Brand int

const (
	Unknown Brand = iota
	Visa
	Mastercard
	Amex
	Discover
	DinersClub
	JCB
	UnionPay
)

var names = map[Brand]string{
	Unknown:    "unknown",
	Visa:       "visa",
	Mastercard: "mastercard",
	Amex:       "amex",
	Discover:   "discover",
	DinersClub: "diners",
	JCB:        "jcb",
	UnionPay:   "unionpay",
}

// All returns every known brand, Unknown excluded.
func All() []Brand {
	return []Brand{Visa, Mastercard, Amex, Discover, DinersClub, JCB, UnionPay}
}

func (b Brand) String() string {
	if n, ok := names[b]; ok {
		return n
	}
	return names[Unknown]
}

// Parse maps a brand name as returned by String back to a Brand. It also
// accepts a few common spellings ("american express", "diners club").
func Parse(s string) (Brand, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "american express", "americanexpress", "american_express":
		return Amex, true
	case "diners club", "dinersclub", "diners_club":
		return DinersClub, true
	case "master card", "master_card":
		return Mastercard, true
	case "union pay", "union_pay":
		return UnionPay, true
	}
	for b, n := range names {
		if n == s {
			return b, true
		}
	}
	return Unknown, false
}

// CVCLength is the number of digits a complete CVC has for b.
func CVCLength(b Brand) int {
	if b == Amex {
		return 4
	}
	return 3
}
