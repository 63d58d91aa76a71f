// numfmt/format.go
package numfmt

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/number"
)

// Format formats a float64 under the Formatter's options.
// Formatting never fails after construction; degraded features fall back.
func (f *Formatter) Format(v float64) string {
	if s, done := f.nonFinite(v, f.opts); done {
		return s
	}
	negZero := v == 0 && math.Signbit(v)
	return f.render(decimal.NewFromFloat(v), negZero, f.opts)
}

// FormatInt formats an integer.
func (f *Formatter) FormatInt(n int64) string {
	return f.render(decimal.NewFromInt(n), false, f.opts)
}

// FormatDecimal formats an arbitrary-precision decimal.
func (f *Formatter) FormatDecimal(d decimal.Decimal) string {
	return f.render(d, false, f.opts)
}

// FormatWith formats with per-call options layered over the instance
// options. It errors only if the layered options are invalid.
func (f *Formatter) FormatWith(v float64, over Options) (string, error) {
	df, err := f.with(over)
	if err != nil {
		return "", err
	}
	return df.Format(v), nil
}

// nonFinite short-circuits NaN and infinities before the decimal pipeline,
// which cannot represent them. Output is locale data, not native output.
func (f *Formatter) nonFinite(v float64, opts Options) (string, bool) {
	switch {
	case math.IsNaN(v):
		return f.data.Signs.NaN, true
	case math.IsInf(v, 1):
		if opts.SignDisplay == SignAlways || opts.SignDisplay == SignExceptZero {
			return f.data.Signs.Plus + f.data.Signs.Infinity, true
		}
		return f.data.Signs.Infinity, true
	case math.IsInf(v, -1):
		if opts.SignDisplay == SignNever {
			return f.data.Signs.Infinity, true
		}
		return f.syms.minus + f.data.Signs.Infinity, true
	}
	return "", false
}

// render is the routing engine: pattern first, then notation, then style.
func (f *Formatter) render(d decimal.Decimal, negZero bool, opts Options) string {
	f.observeFormat(opts)

	if opts.Pattern != "" {
		f.observeFallback("pattern")
		return f.renderPattern(d, negZero, opts)
	}

	switch opts.Notation {
	case NotationCompact:
		if !f.caps.Compact {
			f.observeFallback("compact")
			return f.renderCompact(d, negZero, opts)
		}
	case NotationScientific, NotationEngineering:
		if !f.caps.Scientific {
			f.observeFallback("scientific")
		}
		return f.renderExponent(d, negZero, opts)
	}

	return f.renderStandard(d, negZero, opts)
}

func (f *Formatter) renderStandard(d decimal.Decimal, negZero bool, opts Options) string {
	// Display-scale first so rounding applies to the digits the reader sees.
	display := d
	if opts.Style == StylePercent {
		display = d.Shift(2)
	}

	rd, digits := f.round(display, opts, f.styleDigits(opts))

	var out string
	switch opts.Style {
	case StylePercent:
		out = f.nativePercent(rd, digits, opts)
	case StyleCurrency:
		out = f.renderCurrency(rd, digits, opts)
	case StyleUnit:
		f.observeFallback("unit")
		out = f.renderUnit(rd, digits, opts)
	default:
		out = f.nativeDecimal(rd, digits, opts)
	}

	return f.applySign(out, rd, negZero, opts)
}

// digitSpec is the resolved digit policy for one render: either a
// significant-digit budget or a fraction-digit window.
type digitSpec struct {
	useSig  bool
	sig     int
	minSig  int
	fracMin int
	fracMax int
}

// styleDigits resolves the default digit window for a style, before caller
// overrides are applied.
func (f *Formatter) styleDigits(opts Options) digitSpec {
	switch opts.Style {
	case StylePercent:
		return digitSpec{fracMin: 0, fracMax: 0}
	case StyleCurrency:
		scale := f.currencyScale(opts)
		return digitSpec{fracMin: scale, fracMax: scale}
	default:
		return digitSpec{fracMin: 0, fracMax: 3}
	}
}

// round applies the requested rounding mode exactly once, before
// presentation, so the native layer's own (half-even) rounding becomes an
// identity operation. Significant digits win over fraction digits when both
// are requested.
func (f *Formatter) round(d decimal.Decimal, opts Options, def digitSpec) (decimal.Decimal, digitSpec) {
	spec := def

	if opts.hasSignificant() {
		spec.useSig = true
		spec.sig = 21
		if opts.MaxSignificantDigits != nil {
			spec.sig = *opts.MaxSignificantDigits
		}
		spec.minSig = 1
		if opts.MinSignificantDigits != nil {
			spec.minSig = *opts.MinSignificantDigits
		}
	} else {
		if opts.MinFractionDigits != nil {
			spec.fracMin = *opts.MinFractionDigits
			if spec.fracMin > spec.fracMax {
				spec.fracMax = spec.fracMin
			}
		}
		if opts.MaxFractionDigits != nil {
			spec.fracMax = *opts.MaxFractionDigits
			if spec.fracMax < spec.fracMin {
				spec.fracMin = spec.fracMax
			}
		}
	}

	if opts.RoundingMode != RoundHalfEven {
		f.observeFallback("rounding")
	}

	places := int32(spec.fracMax)
	if spec.useSig {
		places = int32(spec.sig - integerDigits(d))
	}
	rd := applyRounding(d, places, opts.RoundingMode)

	// Pad with trailing fraction zeros when the rounded value carries fewer
	// significant digits than the requested minimum (1.5 under minSig 4 must
	// read 1.500).
	if spec.useSig {
		if pad := spec.minSig - integerDigits(rd); pad > 0 {
			spec.fracMin = pad
		}
	}
	return rd, spec
}

// integerDigits returns the count of digits before the decimal point of
// |d|, minimum 1 (zero has one integer digit).
func integerDigits(d decimal.Decimal) int {
	abs := d.Abs()
	if abs.LessThan(decimal.New(1, 0)) {
		// For |d| < 1 leading zeros don't count as significant.
		if abs.IsZero() {
			return 1
		}
		n := 0
		for abs.LessThan(decimal.New(1, 0)) {
			abs = abs.Shift(1)
			n--
		}
		return n + 1
	}
	n := 0
	for abs.GreaterThanOrEqual(decimal.New(1, 0)) {
		abs = abs.Shift(-1)
		n++
	}
	return n
}

func applyRounding(d decimal.Decimal, places int32, mode RoundingMode) decimal.Decimal {
	switch mode {
	case RoundHalfExpand:
		return d.Round(places)
	case RoundCeil:
		return d.RoundCeil(places)
	case RoundFloor:
		return d.RoundFloor(places)
	case RoundTrunc:
		return d.RoundDown(places)
	default:
		return d.RoundBank(places)
	}
}

// nativeOptions translates a digit spec and merged options into native
// formatting options. The value is already rounded, so the digit options
// only shape presentation.
func (f *Formatter) nativeOptions(digits digitSpec, opts Options) []number.Option {
	var nopts []number.Option
	if digits.useSig {
		nopts = append(nopts, number.Precision(digits.sig))
		if digits.fracMin > 0 {
			nopts = append(nopts, number.MinFractionDigits(digits.fracMin))
		}
	} else {
		nopts = append(nopts,
			number.MinFractionDigits(digits.fracMin),
			number.MaxFractionDigits(digits.fracMax))
	}
	if opts.MinIntegerDigits != nil {
		nopts = append(nopts, number.MinIntegerDigits(*opts.MinIntegerDigits))
	}
	if opts.UseGrouping != nil && !*opts.UseGrouping {
		nopts = append(nopts, number.NoSeparator())
	}
	return nopts
}

func (f *Formatter) nativeDecimal(rd decimal.Decimal, digits digitSpec, opts Options) string {
	out, ok := tryRender(func() string {
		return f.printer.Sprintf("%v", number.Decimal(rd.InexactFloat64(), f.nativeOptions(digits, opts)...))
	})
	if !ok {
		return f.manualDigits(rd, digits, opts)
	}
	return out
}

func (f *Formatter) nativePercent(rd decimal.Decimal, digits digitSpec, opts Options) string {
	// rd is the display-scaled value; the native percent formatter scales by
	// 100 itself, so shift back down before handing it over.
	out, ok := tryRender(func() string {
		return f.printer.Sprintf("%v", number.Percent(rd.Shift(-2).InexactFloat64(), f.nativeOptions(digits, opts)...))
	})
	if !ok {
		return f.manualDigits(rd, digits, opts) + "%"
	}
	return out
}

// manualDigits renders digits with the probed separators when the native
// layer refuses a render. It honors grouping, fraction windows, and minimum
// integer digits; it is also the digit engine for the pattern branch.
func (f *Formatter) manualDigits(rd decimal.Decimal, digits digitSpec, opts Options) string {
	fracMin, fracMax := digits.fracMin, digits.fracMax
	if digits.useSig {
		fracMax = 20
	}

	s := rd.Abs().StringFixed(int32(fracMax))
	intPart, fracPart, _ := strings.Cut(s, ".")

	// Trim the fraction down to the minimum.
	for len(fracPart) > fracMin && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}

	if opts.MinIntegerDigits != nil {
		for len(intPart) < *opts.MinIntegerDigits {
			intPart = "0" + intPart
		}
	}

	grouping := opts.UseGrouping == nil || *opts.UseGrouping
	if grouping && f.syms.group != "" && len(intPart) > 3 {
		var groups []string
		for len(intPart) > 0 {
			start := len(intPart) - 3
			if start < 0 {
				start = 0
			}
			groups = append([]string{intPart[start:]}, groups...)
			intPart = intPart[:start]
		}
		intPart = strings.Join(groups, f.syms.group)
	}

	out := intPart
	if fracPart != "" {
		out += f.syms.decimal + fracPart
	}
	if rd.IsNegative() {
		out = f.syms.minus + out
	}
	return out
}

// applySign is the sign-display fallback pass over an already formatted
// string. It sees the rounded display value, so a value that rounded to
// zero is treated as zero (the exceptZero contract).
func (f *Formatter) applySign(out string, rd decimal.Decimal, negZero bool, opts Options) string {
	if opts.SignDisplay != SignAuto && !f.caps.SignDisplay {
		f.observeFallback("sign")
	}

	zero := rd.IsZero()
	neg := rd.IsNegative() || (zero && negZero)

	switch opts.SignDisplay {
	case SignNever:
		return f.stripSign(out)
	case SignAlways:
		if neg {
			return f.ensureMinus(out, zero)
		}
		return f.data.Signs.Plus + f.stripSign(out)
	case SignExceptZero:
		if zero {
			return f.stripSign(out)
		}
		if neg {
			return out
		}
		return f.data.Signs.Plus + f.stripSign(out)
	default:
		if neg && zero {
			// Negative zero: the native layer saw a plain zero.
			return f.ensureMinus(out, true)
		}
		return out
	}
}

func (f *Formatter) stripSign(s string) string {
	for _, sign := range []string{f.syms.minus, f.data.Signs.Minus, "-", "−", f.data.Signs.Plus, "+"} {
		if sign != "" && strings.HasPrefix(s, sign) {
			return strings.TrimPrefix(s, sign)
		}
	}
	return s
}

func (f *Formatter) ensureMinus(s string, zero bool) string {
	stripped := f.stripSign(s)
	if stripped == s && !zero {
		// Already carries its native sign.
		return s
	}
	return f.syms.minus + stripped
}
