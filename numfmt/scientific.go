// numfmt/scientific.go
package numfmt

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/number"
)

// renderExponent handles scientific and engineering notation. The native
// primitive supports both; the manual builder takes over when the probe
// demoted the capability or when sign/rounding passes need raw control over
// the mantissa.
func (f *Formatter) renderExponent(d decimal.Decimal, negZero bool, opts Options) string {
	if f.caps.Scientific && opts.RoundingMode == RoundHalfEven && !opts.hasSignificant() {
		if out, ok := f.nativeExponent(d, opts); ok {
			return f.applySign(out, d, negZero, opts)
		}
	}
	return f.applySign(f.manualExponent(d, opts), d, negZero, opts)
}

func (f *Formatter) nativeExponent(d decimal.Decimal, opts Options) (string, bool) {
	var nopts []number.Option
	if opts.MaxFractionDigits != nil {
		nopts = append(nopts, number.MaxFractionDigits(*opts.MaxFractionDigits))
	}
	if opts.MinFractionDigits != nil {
		nopts = append(nopts, number.MinFractionDigits(*opts.MinFractionDigits))
	}

	v := d.InexactFloat64()
	if opts.Notation == NotationEngineering {
		return tryRender(func() string {
			return f.printer.Sprintf("%v", number.Engineering(v, nopts...))
		})
	}
	return tryRender(func() string {
		return f.printer.Sprintf("%v", number.Scientific(v, nopts...))
	})
}

// manualExponent builds mantissa and exponent by hand: fixed-precision
// mantissa, probed decimal separator, uppercase exponent marker. The
// engineering variant constrains the exponent to a multiple of three.
func (f *Formatter) manualExponent(d decimal.Decimal, opts Options) string {
	if d.IsZero() {
		return f.exponentString(decimal.Zero, 0, opts)
	}

	// strconv gives mantissa∈[1,10) and the decimal exponent directly.
	s := strconv.FormatFloat(d.InexactFloat64(), 'e', -1, 64)
	mantStr, expStr, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expStr)
	mant, err := decimal.NewFromString(mantStr)
	if err != nil {
		mant = decimal.Zero
	}

	if opts.Notation == NotationEngineering {
		shift := ((exp % 3) + 3) % 3
		mant = mant.Shift(int32(shift))
		exp -= shift
	}

	// Round the mantissa, then re-normalize if rounding carried it to 10
	// (or 1000 in engineering).
	rm, _ := f.round(mant, opts, digitSpec{fracMin: 0, fracMax: 3})
	limit := decimal.New(1, 1)
	step := 1
	if opts.Notation == NotationEngineering {
		limit = decimal.New(1, 3)
		step = 3
	}
	if rm.Abs().GreaterThanOrEqual(limit) {
		rm = rm.Shift(int32(-step))
		exp += step
	}

	return f.exponentString(rm, exp, opts)
}

func (f *Formatter) exponentString(mant decimal.Decimal, exp int, opts Options) string {
	digits := digitSpec{fracMin: 0, fracMax: 20}
	if opts.MinFractionDigits != nil {
		digits.fracMin = *opts.MinFractionDigits
	}
	if opts.MinSignificantDigits != nil {
		if pad := *opts.MinSignificantDigits - integerDigits(mant); pad > digits.fracMin {
			digits.fracMin = pad
		}
	}

	numOpts := opts
	numOpts.Style = StyleDecimal
	numOpts.UseGrouping = Bool(false)
	out := f.manualDigits(mant, digits, numOpts)
	if mant.IsNegative() {
		out = f.syms.minus + f.stripSign(out)
	}

	out += f.syms.exp
	if exp < 0 {
		out += f.syms.minus + strconv.Itoa(-exp)
	} else {
		out += strconv.Itoa(exp)
	}
	return out
}
