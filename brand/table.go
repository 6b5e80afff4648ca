package brand

import (
	"github.com/alovak/cardfield/internal/cardgen"
	"golang.org/x/exp/slices"
)

// Range is one IIN table row: every number whose first len(Low) digits
// fall in [Low, High] belongs to Brand and is complete at one of Lengths.
// Low and High always have the same width.
type Range struct {
	Low     string
	High    string
	Brand   Brand
	Lengths []int
}

// Width is the number of leading digits the range inspects.
func (r Range) Width() int {
	return len(r.Low)
}

// matches reports whether digits fully covers the range prefix and falls
// inside it.
func (r Range) matches(digits string) bool {
	w := r.Width()
	if len(digits) < w {
		return false
	}
	p := digits[:w]
	return p >= r.Low && p <= r.High
}

// consistent reports whether some continuation of digits can land in the
// range. Digit strings of equal width compare like the numbers they spell.
func (r Range) consistent(digits string) bool {
	if len(digits) >= r.Width() {
		return r.matches(digits)
	}
	n := len(digits)
	return digits >= r.Low[:n] && digits <= r.High[:n]
}

var sixteen = []int{16}

// rows are ordered by prefix width, widest first, so the first full match
// is the longest one.
var rows = sortRows([]Range{
	{Low: "4", High: "4", Brand: Visa, Lengths: sixteen},
	{Low: "34", High: "34", Brand: Amex, Lengths: []int{15}},
	{Low: "37", High: "37", Brand: Amex, Lengths: []int{15}},
	{Low: "51", High: "55", Brand: Mastercard, Lengths: sixteen},
	{Low: "2221", High: "2720", Brand: Mastercard, Lengths: sixteen},
	{Low: "6011", High: "6011", Brand: Discover, Lengths: sixteen},
	{Low: "644", High: "649", Brand: Discover, Lengths: sixteen},
	{Low: "65", High: "65", Brand: Discover, Lengths: sixteen},
	{Low: "300", High: "305", Brand: DinersClub, Lengths: []int{14}},
	{Low: "36", High: "36", Brand: DinersClub, Lengths: []int{14}},
	{Low: "38", High: "39", Brand: DinersClub, Lengths: sixteen},
	{Low: "3528", High: "3589", Brand: JCB, Lengths: sixteen},
	{Low: "62", High: "62", Brand: UnionPay, Lengths: []int{16, 17, 18, 19}},
	{Low: "81", High: "81", Brand: UnionPay, Lengths: []int{16, 17, 18, 19}},
})

func sortRows(in []Range) []Range {
	slices.SortStableFunc(in, func(a, b Range) int {
		return b.Width() - a.Width()
	})
	return in
}

// Table returns a copy of the IIN table, widest prefixes first.
func Table() []Range {
	return slices.Clone(rows)
}

// Digits strips separators from number and reports whether what is left is
// all digits.
func Digits(number string) (string, bool) {
	d := cardgen.NormalizePAN(number)
	return d, cardgen.IsDigits(d)
}

// Match returns the table row with the longest prefix fully matched by
// number. Separators are ignored; any other non-digit yields no match.
func Match(number string) (Range, bool) {
	d, ok := Digits(number)
	if !ok || d == "" {
		return Range{}, false
	}
	for _, r := range rows {
		if r.matches(d) {
			return r, true
		}
	}
	return Range{}, false
}

// ForNumber classifies number by its longest matching IIN prefix.
func ForNumber(number string) Brand {
	r, ok := Match(number)
	if !ok {
		return Unknown
	}
	return r.Brand
}

// Candidates returns every row that number, read as a possibly partial
// prefix, can still complete into. An empty number matches every row.
func Candidates(number string) []Range {
	d, ok := Digits(number)
	if !ok {
		return nil
	}
	var out []Range
	for _, r := range rows {
		if r.consistent(d) {
			out = append(out, r)
		}
	}
	return out
}

// Possible lists the brands number may still turn out to be, in All order.
func Possible(number string) []Brand {
	cands := Candidates(number)
	var out []Brand
	for _, b := range All() {
		for _, r := range cands {
			if r.Brand == b {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// Lengths returns the sorted set of complete number lengths for b. Unknown
// has none.
func Lengths(b Brand) []int {
	var out []int
	for _, r := range rows {
		if r.Brand != b {
			continue
		}
		for _, l := range r.Lengths {
			if !slices.Contains(out, l) {
				out = append(out, l)
			}
		}
	}
	slices.Sort(out)
	return out
}

// MaxLength is the longest complete number length for b, 16 for Unknown.
func MaxLength(b Brand) int {
	ls := Lengths(b)
	if len(ls) == 0 {
		return 16
	}
	return ls[len(ls)-1]
}
