// numfmt/pattern.go
package numfmt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// pattern is a compiled CLDR-subset number pattern. Supported symbols:
// '#' and '0' digit slots, ',' grouping, '.' fraction boundary, '%'
// percent scaling, '¤' currency placeholder, quoted literals, and a ';'
// negative subpattern.
type pattern struct {
	prefix    string
	suffix    string
	negPrefix string
	negSuffix string
	hasNeg    bool

	minInt    int
	fracMin   int
	fracMax   int
	grouping  bool
	groupSize int
	percent   bool
	currency  bool
}

func compilePattern(src string) (*pattern, error) {
	pos, neg, hasNeg := strings.Cut(src, ";")

	p := &pattern{groupSize: 3}
	if err := p.compileSub(pos, true); err != nil {
		return nil, err
	}
	if hasNeg {
		p.hasNeg = true
		if err := p.compileSub(neg, false); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *pattern) compileSub(src string, positive bool) error {
	var prefix, suffix strings.Builder
	affix := &prefix

	inCore := false
	seenDigits := false
	seenDot := false
	intZeros, fracZeros, fracHashes := 0, 0, 0
	sinceGroup := -1 // digit count since the last ',' in the integer part

	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if isPatternDigit(r) && affix == &prefix {
			inCore = true
		}

		if inCore {
			switch r {
			case '#', '0':
				seenDigits = true
				if seenDot {
					if r == '0' {
						if fracHashes > 0 {
							return fmt.Errorf("%w: pattern %q has '0' after '#' in fraction", ErrBadOptions, src)
						}
						fracZeros++
					} else {
						fracHashes++
					}
				} else {
					if r == '0' {
						intZeros++
					}
					if sinceGroup >= 0 {
						sinceGroup++
					}
				}
				continue
			case ',':
				if !seenDot {
					p.grouping = true
					sinceGroup = 0
				}
				continue
			case '.':
				if seenDot {
					return fmt.Errorf("%w: pattern %q has two fraction boundaries", ErrBadOptions, src)
				}
				seenDot = true
				continue
			default:
				// Digit core ended; everything from here is the suffix.
				inCore = false
				affix = &suffix
			}
		}

		switch r {
		case '\'':
			// Quoted literal; '' is a literal apostrophe.
			j := i + 1
			for j < len(runes) && runes[j] != '\'' {
				j++
			}
			if j == i+1 {
				affix.WriteRune('\'')
			} else {
				affix.WriteString(string(runes[i+1 : j]))
			}
			i = j
		case '%':
			p.percent = true
			affix.WriteRune('%')
		case '¤':
			p.currency = true
			affix.WriteRune('¤')
		default:
			affix.WriteRune(r)
		}
	}

	if positive {
		if !seenDigits {
			return fmt.Errorf("%w: pattern %q has no digit core", ErrBadOptions, src)
		}
		p.minInt = intZeros
		p.fracMin = fracZeros
		p.fracMax = fracZeros + fracHashes
		if p.grouping && sinceGroup > 0 {
			p.groupSize = sinceGroup
		}
		p.prefix = prefix.String()
		p.suffix = suffix.String()
	} else {
		p.negPrefix = prefix.String()
		p.negSuffix = suffix.String()
	}
	return nil
}

func isPatternDigit(r rune) bool {
	return r == '#' || r == '0' || r == ',' || r == '.'
}

// renderPattern renders through the compiled pattern: round under the
// requested mode, emit digits with the probed separators and the pattern's
// group size, then wrap with the sign-selected affixes.
func (f *Formatter) renderPattern(d decimal.Decimal, negZero bool, opts Options) string {
	pat := f.pat
	if pat == nil {
		std := opts
		std.Pattern = ""
		return f.render(d, negZero, std)
	}

	display := d
	if pat.percent {
		display = d.Shift(2)
	}
	rd := applyRounding(display, int32(pat.fracMax), opts.RoundingMode)

	digits := f.patternDigits(rd.Abs(), pat)

	neg := rd.IsNegative() || (negZero && rd.IsZero())
	zero := rd.IsZero()

	prefix, suffix := pat.prefix, pat.suffix
	switch {
	case neg && opts.SignDisplay == SignNever,
		neg && zero && opts.SignDisplay == SignExceptZero:
		// Positive affixes, no sign.
	case neg && pat.hasNeg:
		prefix, suffix = pat.negPrefix, pat.negSuffix
	case neg:
		prefix = f.syms.minus + prefix
	case opts.SignDisplay == SignAlways,
		opts.SignDisplay == SignExceptZero && !zero:
		prefix = f.data.Signs.Plus + prefix
	}

	out := prefix + digits + suffix
	if pat.currency {
		out = strings.ReplaceAll(out, "¤", f.patternCurrencySymbol(opts))
	}
	return out
}

func (f *Formatter) patternDigits(abs decimal.Decimal, pat *pattern) string {
	s := abs.StringFixed(int32(pat.fracMax))
	intPart, fracPart, _ := strings.Cut(s, ".")

	for len(fracPart) > pat.fracMin && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}
	for len(intPart) < pat.minInt {
		intPart = "0" + intPart
	}

	if pat.grouping && f.syms.group != "" && len(intPart) > pat.groupSize {
		var groups []string
		for len(intPart) > 0 {
			start := len(intPart) - pat.groupSize
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
	return out
}

func (f *Formatter) patternCurrencySymbol(opts Options) string {
	if opts.Currency == "" {
		return ""
	}
	return f.resolvedCurrencySymbol(opts)
}
