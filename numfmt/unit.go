// numfmt/unit.go
package numfmt

import (
	"github.com/shopspring/decimal"

	"github.com/cybanjar/intl-formatter/locale"
)

// renderUnit formats a quantity with a measurement unit name. The native
// primitive has no unit surface, so this is always the fallback branch: the
// number part renders natively, the name comes from the locale tables with
// plural selection, degrading locale → English → the raw unit identifier.
func (f *Formatter) renderUnit(rd decimal.Decimal, digits digitSpec, opts Options) string {
	numOpts := opts
	numOpts.Style = StyleDecimal
	num := f.stripSign(f.nativeDecimal(rd.Abs(), digits, numOpts))

	name, narrow := f.unitName(rd, opts)

	sep := " "
	if narrow {
		sep = ""
	}
	out := num + sep + name
	if rd.IsNegative() {
		out = f.syms.minus + out
	}
	return out
}

// unitName returns the display name for the unit and whether narrow
// (unspaced) attachment applies.
func (f *Formatter) unitName(rd decimal.Decimal, opts Options) (string, bool) {
	names, ok := f.data.Units[opts.Unit]
	if !ok || (opts.UnitDisplay == UnitLong && len(names.Long) == 0) {
		if en, found := locale.Lookup(locale.Default).Units[opts.Unit]; found {
			names, ok = en, true
		}
	}
	if !ok {
		// Unknown unit identifier: degrade to the identifier itself.
		return opts.Unit, false
	}

	switch opts.UnitDisplay {
	case UnitLong:
		form := f.data.Plural(rd.Abs().InexactFloat64())
		return names.LongName(form), false
	case UnitNarrow:
		if names.Narrow != "" {
			return names.Narrow, true
		}
		return names.Short, true
	default:
		return names.Short, false
	}
}
