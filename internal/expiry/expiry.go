package expiry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alovak/cardfield/internal/cardgen"
)

var defaultLoc = time.UTC

var ErrFormat = errors.New("expiry must be YYMM (4 digits, month 01..12)")

// SetDefaultExpiryLocation sets the default time location for expiry calculations (fallback UTC).
func SetDefaultExpiryLocation(loc *time.Location) {
	if loc != nil {
		defaultLoc = loc
	}
}

// DefaultLocation returns the location used when callers pass nil.
func DefaultLocation() *time.Location {
	return defaultLoc
}

// Split breaks raw "MM/YY" style text into its month and year parts.
// Spaces are ignored and the slash is optional ("1229" splits like
// "12/29"). Both results are empty unless raw holds a two digit month
// followed by a non-empty all-digit year.
func Split(raw string) (month, year string) {
	s := strings.ReplaceAll(raw, " ", "")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		month, year = s[:i], s[i+1:]
	} else if len(s) > 2 {
		month, year = s[:2], s[2:]
	}
	if len(month) != 2 || year == "" || !cardgen.IsDigits(month) || !cardgen.IsDigits(year) {
		return "", ""
	}
	return month, year
}

// CardFace returns expiry as MM/YY for display. A year longer than two
// digits keeps only its last two.
func CardFace(month, year string) string {
	if month == "" {
		return ""
	}
	if year == "" {
		return month
	}
	return month + "/" + cardgen.LastN(year, 2)
}

// YYMM joins a two digit month and year into the YYMM form used by
// ParseYYMMEndOfMonth.
func YYMM(month, year string) (string, error) {
	yymm := cardgen.LastN(year, 2) + month
	if err := ValidateYYMM(yymm); err != nil {
		return "", err
	}
	return yymm, nil
}

// ParseYYMMEndOfMonth parses YYMM into the last instant of that month in loc.
func ParseYYMMEndOfMonth(yymm string, loc *time.Location) (time.Time, error) {
	if err := ValidateYYMM(yymm); err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = defaultLoc
	}
	yy, _ := strconv.Atoi(yymm[:2])
	mm, _ := strconv.Atoi(yymm[2:])
	year := 2000 + yy
	// First day of next month
	firstNext := time.Date(year, time.Month(mm), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	// End of target month = 1ns before first day of next month
	end := firstNext.Add(-time.Nanosecond)
	return end, nil
}

// IsExpired reports whether time 'at' is strictly after the end of YYMM month in loc.
func IsExpired(yymm string, at time.Time, loc *time.Location) (bool, error) {
	end, err := ParseYYMMEndOfMonth(yymm, loc)
	if err != nil {
		return false, err
	}
	return at.In(end.Location()).After(end), nil
}

// ValidateYYMM checks that yymm is four digits with a month in 01..12.
func ValidateYYMM(yymm string) error {
	if len(yymm) != 4 || !cardgen.IsDigits(yymm) {
		return fmt.Errorf("%w: got %q", ErrFormat, yymm)
	}
	mm := (int(yymm[2]-'0')*10 + int(yymm[3]-'0'))
	if mm < 1 || mm > 12 {
		return fmt.Errorf("%w: month %02d", ErrFormat, mm)
	}
	return nil
}
