// numfmt/range.go
package numfmt

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// FormatRange formats the interval [lo, hi]. The native primitive has no
// range surface, so both endpoints run through the full single-value
// pipeline and are joined with the locale's range separator. Endpoints that
// collapse to the same rendering produce an approximation ("~5K") instead
// of a degenerate "5K–5K".
func (f *Formatter) FormatRange(lo, hi float64) (string, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return "", fmt.Errorf("%w: NaN endpoint", ErrBadRange)
	}
	if lo > hi {
		return "", fmt.Errorf("%w: %v > %v", ErrBadRange, lo, hi)
	}

	f.observeFallback("range")

	left := f.Format(lo)
	right := f.Format(hi)
	if left == right {
		return f.data.Signs.Approx + left, nil
	}

	sep := f.data.Range.Separator
	if f.data.Range.Spaced {
		sep = " " + sep + " "
	}
	return left + sep + right, nil
}

// FormatRangeWith is FormatRange with per-call options layered over the
// instance options.
func (f *Formatter) FormatRangeWith(lo, hi float64, over Options) (string, error) {
	df, err := f.with(over)
	if err != nil {
		return "", err
	}
	return df.FormatRange(lo, hi)
}

// FormatDecimalRange formats an interval of arbitrary-precision endpoints.
func (f *Formatter) FormatDecimalRange(lo, hi decimal.Decimal) (string, error) {
	if lo.GreaterThan(hi) {
		return "", fmt.Errorf("%w: %s > %s", ErrBadRange, lo, hi)
	}

	f.observeFallback("range")

	left := f.render(lo, false, f.opts)
	right := f.render(hi, false, f.opts)
	if left == right {
		return f.data.Signs.Approx + left, nil
	}

	sep := f.data.Range.Separator
	if f.data.Range.Spaced {
		sep = " " + sep + " "
	}
	return left + sep + right, nil
}
