package cardgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
)

// MaskRune replaces hidden digits in masked card numbers.
const MaskRune = '*'

var (
	ErrPrefix = errors.New("prefix must be a non-empty digit string")
	ErrLength = errors.New("length must be 12..19 and longer than the prefix")
)

// GeneratePAN returns a random card number of totalLen digits starting with
// prefix. The last digit is the Luhn check digit.
func GeneratePAN(prefix string, totalLen int) (string, error) {
	if prefix == "" || !IsDigits(prefix) {
		return "", fmt.Errorf("%w: %q", ErrPrefix, prefix)
	}
	if totalLen < 12 || totalLen > 19 {
		return "", fmt.Errorf("%w: got %d", ErrLength, totalLen)
	}
	fill := totalLen - 1 - len(prefix)
	if fill < 0 {
		return "", fmt.Errorf("%w: prefix %s does not fit %d digits", ErrLength, prefix, totalLen)
	}

	digitsPart, err := randomDigits(fill)
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	body := prefix + digitsPart
	return body + luhnCheckDigit(body), nil
}

// GenerateUniquePAN retries GeneratePAN until seen reports an unused number.
func GenerateUniquePAN(prefix string, totalLen int, maxRetries int, seen func(string) bool) (string, error) {
	if maxRetries <= 0 {
		maxRetries = 5
	}
	for i := 0; i <= maxRetries; i++ {
		pan, err := GeneratePAN(prefix, totalLen)
		if err != nil {
			return "", err
		}
		if seen == nil || !seen(pan) {
			return pan, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique PAN after %d retries", maxRetries)
}

// randomDigits uses rejection sampling so every digit is equally likely:
// only bytes below 250 are accepted before taking them mod 10.
func randomDigits(count int) (string, error) {
	if count <= 0 {
		return "", nil
	}
	const threshold = 250 // 256 - (256 % 10)
	var sb strings.Builder
	sb.Grow(count)
	buf := make([]byte, 64)
	for sb.Len() < count {
		n, err := rand.Read(buf)
		if err != nil {
			return "", err
		}
		for i := 0; i < n && sb.Len() < count; i++ {
			b := buf[i]
			if b < threshold {
				sb.WriteByte('0' + (b % 10))
			}
		}
	}
	return sb.String(), nil
}

func luhnCheckDigit(body string) string {
	sum, dbl := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	cd := (10 - (sum % 10)) % 10
	return string('0' + byte(cd))
}

// LuhnValid reports whether pan is a digit string of at least two digits
// whose last digit is its Luhn check digit.
func LuhnValid(pan string) bool {
	if len(pan) < 2 || !IsDigits(pan) {
		return false
	}
	return pan[len(pan)-1] == luhnCheckDigit(pan[:len(pan)-1])[0]
}

func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CountDigits returns how many ASCII digits s contains.
func CountDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}

func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// MaskDigits replaces every digit of s except the last keep digits with
// MaskRune. Non-digit characters are copied unchanged. It returns "" when s
// holds fewer than keep digits.
func MaskDigits(s string, keep int) string {
	total := CountDigits(s)
	if total < keep {
		return ""
	}
	hide := total - keep
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' && hide > 0 {
			sb.WriteRune(MaskRune)
			hide--
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// NormalizePAN drops spaces, tabs and dashes. Any other character is kept
// so callers can tell a formatted number from a malformed one.
func NormalizePAN(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-':
			return -1
		default:
			return r
		}
	}, s)
}
