package brand

import "strings"

var samples = map[Brand]string{
	Visa:       "4242424242424242",
	Mastercard: "5555555555554444",
	Amex:       "378282246310005",
	Discover:   "6011111111111117",
	DinersClub: "30569309025904",
	JCB:        "3566002020360505",
	UnionPay:   "6200000000000005",
	Unknown:    "1234567890123456",
}

// Groups returns the digit grouping used to display an n digit number of
// brand b. Digits past the last group form one trailing group.
func Groups(b Brand, n int) []int {
	switch {
	case b == Amex:
		return []int{4, 6, 5}
	case b == DinersClub && n <= 14:
		return []int{4, 6, 4}
	default:
		return []int{4, 4, 4, 4}
	}
}

// Format splits digits into space separated groups for brand b. Input is
// used as is; callers strip separators first.
func Format(digits string, b Brand) string {
	if digits == "" {
		return ""
	}
	var parts []string
	rest := digits
	for _, g := range Groups(b, len(digits)) {
		if rest == "" {
			break
		}
		if g > len(rest) {
			g = len(rest)
		}
		parts = append(parts, rest[:g])
		rest = rest[g:]
	}
	if rest != "" {
		parts = append(parts, rest)
	}
	return strings.Join(parts, " ")
}

// Placeholder is a brand shaped example number for empty input fields, for
// example "3782 822463 10005" for Amex.
func Placeholder(b Brand) string {
	s, ok := samples[b]
	if !ok {
		s = samples[Unknown]
	}
	return Format(s, b)
}
