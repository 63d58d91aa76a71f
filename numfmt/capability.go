// numfmt/capability.go
package numfmt

import (
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Capabilities records which formatting features the native primitive can
// honor for a resolved locale. Anything absent here routes through a manual
// fallback branch that reproduces the requested semantics.
type Capabilities struct {
	// Scientific reports native scientific/engineering notation.
	Scientific bool

	// Compact reports native compact notation (K/M/B/T scaling). The
	// primitive has no such surface today, so this is false unless a test
	// injects it.
	Compact bool

	// RoundingModes reports native control over the rounding mode. The
	// primitive always rounds half-even, so explicit modes pre-round through
	// the decimal engine.
	RoundingModes bool

	// SignDisplay reports native always/never/exceptZero sign control.
	SignDisplay bool

	// Units reports native unit-style formatting (e.g. "3 hours").
	Units bool

	// Ranges reports native range formatting.
	Ranges bool

	// Currency reports that the requested currency code resolved against
	// the native currency tables.
	Currency bool

	// CurrencyDigits reports native fraction-digit control on the currency
	// path. The native path uses each currency's own rounding, so explicit
	// digit requests route to the manual assembly branch.
	CurrencyDigits bool
}

// symbols holds the separator and sign characters the native primitive
// actually emits for a locale, recovered by probing rather than carried as
// data, so fallback output matches native output byte for byte.
type symbols struct {
	group   string
	decimal string
	minus   string
	exp     string
}

// probe exercises the native primitive for a locale and records what it can
// do. Construction of the native formatter cannot fail in Go the way it can
// in exception-based hosts; the equivalent failures here are parse errors
// (unknown currency), panics inside a trial render, or probe output that
// lacks the expected shape. All three demote the capability.
func probe(tag language.Tag, opts Options) (Capabilities, symbols) {
	p := message.NewPrinter(tag)

	caps := Capabilities{}
	syms := detectSymbols(p)

	if marker, ok := probeScientific(p); ok {
		caps.Scientific = true
		syms.exp = marker
	} else {
		syms.exp = "E"
	}

	if opts.Style == StyleCurrency && opts.Currency != "" {
		if _, err := currency.ParseISO(opts.Currency); err == nil {
			caps.Currency = true
		}
	}

	return caps, syms
}

// tryRender runs a native render and reports whether it completed. A panic
// inside the primitive counts as an unsupported feature, not a crash.
func tryRender(render func() string) (out string, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = "", false
		}
	}()
	return render(), true
}

// detectSymbols recovers the locale's group separator, decimal separator,
// and minus sign by formatting a probe value and walking the output.
func detectSymbols(p *message.Printer) symbols {
	syms := symbols{group: ",", decimal: ".", minus: "-"}

	out, ok := tryRender(func() string {
		return p.Sprintf("%v", number.Decimal(-1234567.8, number.Scale(1)))
	})
	if !ok || out == "" {
		return syms
	}

	runes := []rune(out)

	// Leading non-digit run is the minus sign (possibly multi-byte).
	i := 0
	for i < len(runes) && !unicode.IsDigit(runes[i]) {
		i++
	}
	if i > 0 {
		syms.minus = strings.TrimSpace(string(runes[:i]))
		if syms.minus == "" {
			syms.minus = "-"
		}
	}

	// The separator before the final digit run is the decimal separator;
	// any separator before an earlier digit run is the group separator.
	type gap struct{ start, end int }
	var gaps []gap
	inGap := false
	for j := i; j < len(runes); j++ {
		if unicode.IsDigit(runes[j]) {
			inGap = false
			continue
		}
		if !inGap {
			gaps = append(gaps, gap{j, j + 1})
			inGap = true
		} else {
			gaps[len(gaps)-1].end = j + 1
		}
	}
	if len(gaps) > 0 {
		last := gaps[len(gaps)-1]
		syms.decimal = string(runes[last.start:last.end])
		if len(gaps) > 1 {
			first := gaps[0]
			syms.group = string(runes[first.start:first.end])
		} else {
			syms.group = ""
		}
	}

	return syms
}

// probeScientific renders a trial value in native scientific notation and
// extracts the exponent marker. A missing or shapeless result demotes the
// capability so the manual exponent builder takes over.
func probeScientific(p *message.Printer) (string, bool) {
	out, ok := tryRender(func() string {
		return p.Sprintf("%v", number.Scientific(12345.0))
	})
	if !ok || out == "" {
		return "", false
	}

	// Expect mantissa, marker, exponent: e.g. "1.2345E4". The marker is the
	// longest non-digit, non-sign run after the first digit.
	runes := []rune(out)
	start, end := -1, -1
	seenDigit := false
	for i, r := range runes {
		if unicode.IsDigit(r) {
			if start >= 0 && end < 0 {
				end = i
			}
			seenDigit = true
			continue
		}
		if !seenDigit {
			continue
		}
		if r == '+' || r == '-' || r == '.' || r == ',' {
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start < 0 {
		return "", false
	}
	if end < 0 {
		end = len(runes)
	}
	marker := strings.TrimFunc(string(runes[start:end]), func(r rune) bool {
		return r == '+' || r == '-'
	})
	if marker == "" {
		return "", false
	}
	return marker, true
}
