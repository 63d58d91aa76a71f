// numfmt/currency.go
package numfmt

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// currencyScale returns the currency's fraction digits (2 for USD, 0 for
// JPY), from the native rounding tables when the code resolves and 2
// otherwise.
func (f *Formatter) currencyScale(opts Options) int {
	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// renderCurrency routes between the native currency path and the manual
// assembly branch. Native handles the stock case; explicit digit control,
// name display, or an unknown code route to assembly, where the number part
// is still rendered natively so separators stay locale-correct.
func (f *Formatter) renderCurrency(rd decimal.Decimal, digits digitSpec, opts Options) string {
	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		f.observeFallback("currency")
		return f.assembleCurrency(rd, digits, opts, strings.ToUpper(opts.Currency), false)
	}

	// Grouping enabled is the native default, so an explicit true is still
	// native-compatible; only disabling grouping forces assembly.
	nativeOK := f.caps.Currency &&
		!f.explicitDigitsIn(opts) &&
		opts.CurrencyDisplay != CurrencyName &&
		(opts.UseGrouping == nil || *opts.UseGrouping)

	if nativeOK {
		if out, ok := f.nativeCurrency(rd, unit, opts); ok {
			return out
		}
	}

	f.observeFallback("currency")
	if opts.CurrencyDisplay == CurrencyName {
		return f.assembleCurrencyName(rd, digits, opts, unit)
	}
	return f.assembleCurrency(rd, digits, opts, f.currencySymbol(unit, opts.CurrencyDisplay), true)
}

func (f *Formatter) explicitDigitsIn(opts Options) bool {
	return opts.MinFractionDigits != nil || opts.MaxFractionDigits != nil ||
		opts.MinSignificantDigits != nil || opts.MaxSignificantDigits != nil
}

func (f *Formatter) nativeCurrency(rd decimal.Decimal, unit currency.Unit, opts Options) (string, bool) {
	kind := currency.Symbol
	switch opts.CurrencyDisplay {
	case CurrencyNarrowSymbol:
		kind = currency.NarrowSymbol
	case CurrencyCode:
		kind = currency.ISO
	}
	return tryRender(func() string {
		return f.printer.Sprintf("%v", kind(unit.Amount(rd.InexactFloat64())))
	})
}

// assembleCurrency builds "symbol + number" (or the reverse) with the
// locale's symbol placement rules, covering everything the native path
// cannot express.
func (f *Formatter) assembleCurrency(rd decimal.Decimal, digits digitSpec, opts Options, symbol string, known bool) string {
	numOpts := opts
	numOpts.Style = StyleDecimal
	num := f.stripSign(f.nativeDecimal(rd.Abs(), digits, numOpts))

	cur := f.data.Currency
	sep := ""
	if cur.SymbolSpace || !known {
		sep = " "
	}

	var out string
	if cur.SymbolPosition == "after" {
		out = num + sep + symbol
	} else {
		out = symbol + sep + num
	}
	if rd.IsNegative() {
		out = f.syms.minus + out
	}
	return out
}

func (f *Formatter) assembleCurrencyName(rd decimal.Decimal, digits digitSpec, opts Options, unit currency.Unit) string {
	numOpts := opts
	numOpts.Style = StyleDecimal
	num := f.stripSign(f.nativeDecimal(rd.Abs(), digits, numOpts))

	name := currencyDisplayName(unit.String(), f.plural(rd))
	out := num + " " + name
	if rd.IsNegative() {
		out = f.syms.minus + out
	}
	return out
}

func (f *Formatter) plural(rd decimal.Decimal) bool {
	one := decimal.New(1, 0)
	return !rd.Abs().Equal(one)
}

// currencySymbol recovers the locale's symbol for a currency by rendering a
// zero amount natively and stripping digits and separators. Symbols are not
// carried as data; what the primitive emits is the ground truth.
func (f *Formatter) currencySymbol(unit currency.Unit, display CurrencyDisplay) string {
	if display == CurrencyCode {
		return unit.String()
	}

	kind := currency.Symbol
	if display == CurrencyNarrowSymbol {
		kind = currency.NarrowSymbol
	}

	out, ok := tryRender(func() string {
		return f.printer.Sprintf("%v", kind(unit.Amount(0)))
	})
	if !ok || out == "" {
		return unit.String()
	}

	symbol := strings.TrimFunc(out, func(r rune) bool {
		return unicode.IsDigit(r) || unicode.IsSpace(r) ||
			r == '.' || r == ',' || r == ' ' || r == ' ' ||
			strings.ContainsRune(f.syms.decimal+f.syms.group, r)
	})
	if symbol == "" {
		return unit.String()
	}
	return symbol
}

// resolvedCurrencySymbol maps the option's currency code to its display
// symbol, falling back to the uppercased code when it does not resolve.
func (f *Formatter) resolvedCurrencySymbol(opts Options) string {
	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		return strings.ToUpper(opts.Currency)
	}
	return f.currencySymbol(unit, opts.CurrencyDisplay)
}

// currencyNames carries English display names for common currencies; other
// locales degrade to these, and unknown codes degrade to the code itself.
var currencyNames = map[string][2]string{
	"USD": {"US dollar", "US dollars"},
	"EUR": {"euro", "euros"},
	"GBP": {"British pound", "British pounds"},
	"JPY": {"Japanese yen", "Japanese yen"},
	"CNY": {"Chinese yuan", "Chinese yuan"},
	"INR": {"Indian rupee", "Indian rupees"},
	"RUB": {"Russian ruble", "Russian rubles"},
	"BRL": {"Brazilian real", "Brazilian reals"},
	"CAD": {"Canadian dollar", "Canadian dollars"},
	"AUD": {"Australian dollar", "Australian dollars"},
	"CHF": {"Swiss franc", "Swiss francs"},
	"KRW": {"South Korean won", "South Korean won"},
	"MXN": {"Mexican peso", "Mexican pesos"},
	"SEK": {"Swedish krona", "Swedish kronor"},
	"PLN": {"Polish zloty", "Polish zlotys"},
	"TRY": {"Turkish lira", "Turkish lira"},
}

func currencyDisplayName(code string, plural bool) string {
	names, ok := currencyNames[code]
	if !ok {
		return code
	}
	if plural {
		return names[1]
	}
	return names[0]
}
