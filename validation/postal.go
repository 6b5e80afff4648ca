package validation

import (
	"strings"
	"unicode/utf8"
)

// DefaultPostalMaxLength bounds postal codes when no country rule applies.
const DefaultPostalMaxLength = 10

// noPostalCodes lists ISO 3166 alpha-2 countries that do not use postal
// codes for card billing addresses.
var noPostalCodes = map[string]bool{
	"AE": true, "AG": true, "AO": true, "AW": true, "BF": true, "BI": true,
	"BJ": true, "BO": true, "BS": true, "BW": true, "BZ": true, "CD": true,
	"CF": true, "CG": true, "CI": true, "CK": true, "CM": true, "DJ": true,
	"DM": true, "ER": true, "FJ": true, "GD": true, "GH": true, "GM": true,
	"GN": true, "GQ": true, "GY": true, "HK": true, "JM": true, "KE": true,
	"KI": true, "KM": true, "KN": true, "KP": true, "LC": true, "ML": true,
	"MO": true, "MR": true, "MS": true, "MU": true, "MW": true, "NR": true,
	"NU": true, "PA": true, "QA": true, "RW": true, "SB": true, "SC": true,
	"SL": true, "SO": true, "SR": true, "ST": true, "SY": true, "TF": true,
	"TK": true, "TL": true, "TO": true, "TT": true, "TV": true, "TZ": true,
	"UG": true, "VU": true, "YE": true, "ZW": true,
}

// shapes describe complete postal codes per country: '9' is a digit, 'A'
// a letter, anything else must match literally.
var shapes = map[string][]string{
	"US": {"99999", "99999-9999", "999999999"},
	"CA": {"A9A9A9"},
}

// CountryUsesPostalCode reports whether billing addresses in country carry
// a postal code. Unknown or empty countries are assumed to use one.
func CountryUsesPostalCode(country string) bool {
	return !noPostalCodes[normalizeCountry(country)]
}

// PostalCode validates a billing postal code.
//
// Without a country rule any trimmed code of 1..maxLen characters is Valid
// and content is never judged. maxLen <= 0 means DefaultPostalMaxLength.
// Countries without postal codes are always Valid. US and CA codes must
// also follow their national shape.
func PostalCode(code, country string, maxLen int) State {
	cc := normalizeCountry(country)
	if noPostalCodes[cc] {
		return Valid
	}
	c := strings.TrimSpace(code)
	if c == "" {
		return Incomplete
	}
	if maxLen <= 0 {
		maxLen = DefaultPostalMaxLength
	}
	if utf8.RuneCountInString(c) > maxLen {
		return Invalid
	}

	patterns, ok := shapes[cc]
	if !ok {
		return Valid
	}
	if cc == "CA" {
		c = strings.ReplaceAll(c, " ", "")
	}
	state := Invalid
	for _, p := range patterns {
		switch complete, prefix := matchShape(c, p); {
		case complete:
			return Valid
		case prefix:
			state = Incomplete
		}
	}
	return state
}

// matchShape reports whether s matches shape in full, or is a strict
// prefix of something that would.
func matchShape(s, shape string) (complete, prefix bool) {
	if len(s) > len(shape) {
		return false, false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch shape[i] {
		case '9':
			if c < '0' || c > '9' {
				return false, false
			}
		case 'A':
			if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
				return false, false
			}
		default:
			if c != shape[i] {
				return false, false
			}
		}
	}
	return len(s) == len(shape), len(s) < len(shape)
}

func normalizeCountry(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}
