package validation

import (
	"strings"
	"time"

	"github.com/alovak/cardfield/brand"
	"github.com/alovak/cardfield/internal/cardgen"
	"github.com/alovak/cardfield/internal/expiry"
	"golang.org/x/exp/slices"
)

// Number validates a card number. Spaces, tabs and dashes are ignored.
//
// A number is Valid when its length is one the matched brand allows and the
// Luhn checksum passes. It stays Incomplete while some brand consistent with
// its prefix allows a longer length, and is Invalid once no brand can match
// or no allowed length is left.
func Number(number string) State {
	d, ok := brand.Digits(number)
	if !ok {
		return Invalid
	}
	if d == "" {
		return Incomplete
	}
	cands := brand.Candidates(d)
	if len(cands) == 0 {
		return Invalid
	}

	n := len(d)
	if r, ok := brand.Match(d); ok && slices.Contains(r.Lengths, n) && cardgen.LuhnValid(d) {
		return Valid
	}
	for _, r := range cands {
		for _, l := range r.Lengths {
			if l > n {
				return Incomplete
			}
		}
	}
	return Invalid
}

// Expiration validates "MM/YY" text typed so far against the month that
// now falls in at loc (nil means the expiry package default).
//
// Spaces are ignored and the slash is optional, but when present it must
// directly follow the two month digits. A month outside 01..12 or an
// expiration before the current month is Invalid.
func Expiration(raw string, now time.Time, loc *time.Location) State {
	s := strings.ReplaceAll(raw, " ", "")
	if s == "" {
		return Incomplete
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		if i != 2 || strings.Count(s, "/") > 1 {
			return Invalid
		}
		s = s[:2] + s[3:]
	}
	if !cardgen.IsDigits(s) || len(s) > 4 {
		return Invalid
	}
	if s[0] > '1' {
		return Invalid
	}
	if len(s) < 2 {
		return Incomplete
	}
	mm := int(s[0]-'0')*10 + int(s[1]-'0')
	if mm < 1 || mm > 12 {
		return Invalid
	}

	if loc == nil {
		loc = expiry.DefaultLocation()
	}
	now = now.In(loc)

	switch len(s) {
	case 2:
		return Incomplete
	case 3:
		// The last year this decade digit can still reach.
		last := int(s[2]-'0')*10 + 9
		cy := now.Year() % 100
		if last < cy || (last == cy && mm < int(now.Month())) {
			return Invalid
		}
		return Incomplete
	}

	yymm, err := expiry.YYMM(s[:2], s[2:])
	if err != nil {
		return Invalid
	}
	expired, err := expiry.IsExpired(yymm, now, loc)
	if err != nil || expired {
		return Invalid
	}
	return Valid
}

// CVC validates a card verification code for brand b: 4 digits for Amex,
// 3 for every other brand.
func CVC(cvc string, b brand.Brand) State {
	if cvc == "" {
		return Incomplete
	}
	if !cardgen.IsDigits(cvc) {
		return Invalid
	}
	want := brand.CVCLength(b)
	switch {
	case len(cvc) < want:
		return Incomplete
	case len(cvc) > want:
		return Invalid
	default:
		return Valid
	}
}
