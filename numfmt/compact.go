// numfmt/compact.go
package numfmt

import (
	"github.com/shopspring/decimal"
)

// compactTiers are the scale factors for the suffix table: 10^3, 10^6,
// 10^9, 10^12.
var compactTiers = [4]decimal.Decimal{
	decimal.New(1, 3),
	decimal.New(1, 6),
	decimal.New(1, 9),
	decimal.New(1, 12),
}

// renderCompact is the compact-notation fallback: scale into the K/M/B/T
// suffix table, round the mantissa, and render the mantissa natively so
// separators stay locale-correct. Values under 1000 format as standard
// notation, matching the suffix table's lower bound.
func (f *Formatter) renderCompact(d decimal.Decimal, negZero bool, opts Options) string {
	abs := d.Abs()
	if abs.LessThan(compactTiers[0]) {
		std := opts
		std.Notation = NotationStandard
		return f.renderStandard(d, negZero, std)
	}

	tier := 0
	for i := len(compactTiers) - 1; i >= 0; i-- {
		if abs.GreaterThanOrEqual(compactTiers[i]) {
			tier = i
			break
		}
	}

	mantissa := d.DivRound(compactTiers[tier], 12)
	rm, digits := f.roundMantissa(mantissa, opts)

	// Rounding can push the mantissa across the next tier boundary
	// (999,950 → 1000K must become 1M).
	if rm.Abs().GreaterThanOrEqual(compactTiers[0]) && tier < len(compactTiers)-1 {
		tier++
		mantissa = rm.DivRound(compactTiers[0], 12)
		rm, digits = f.roundMantissa(mantissa, opts)
	}

	numOpts := opts
	numOpts.Style = StyleDecimal
	num := f.nativeDecimal(rm, digits, numOpts)

	suffix, spaced := f.compactSuffix(tier, rm, opts)
	out := num
	if suffix != "" {
		if spaced {
			out += " "
		}
		out += suffix
	}

	return f.applySign(out, rm, negZero, opts)
}

// roundMantissa applies the compact digit rule: a single fraction digit
// while the mantissa is below 10, none afterwards, unless the caller set an
// explicit digit policy.
func (f *Formatter) roundMantissa(mantissa decimal.Decimal, opts Options) (decimal.Decimal, digitSpec) {
	if f.explicitDigitsIn(opts) {
		return f.round(mantissa, opts, digitSpec{fracMin: 0, fracMax: 0})
	}

	def := digitSpec{fracMin: 0, fracMax: 1}
	if mantissa.Abs().GreaterThanOrEqual(decimal.New(1, 1)) {
		def.fracMax = 0
	}
	rd := applyRounding(mantissa, int32(def.fracMax), opts.RoundingMode)

	// Drop a redundant trailing zero: 2.0K reads as 2K.
	if def.fracMax == 1 && rd.Equal(rd.Truncate(0)) {
		def.fracMax = 0
	}
	return rd, def
}

// compactSuffix picks the suffix for a tier and reports whether a
// non-breaking space separates it from the mantissa. Short single-letter
// suffixes attach directly ("1.2K"); longer and long-form suffixes get a
// space ("1,2 Tsd.", "1.2 thousand").
func (f *Formatter) compactSuffix(tier int, rm decimal.Decimal, opts Options) (string, bool) {
	var suffix string
	if opts.CompactDisplay == CompactLong {
		suffix = f.data.CompactLong[tier]
		return suffix, suffix != ""
	}
	suffix = f.data.CompactShort[tier]
	if suffix == "" {
		return "", false
	}
	return suffix, len([]rune(suffix)) > 1
}
