package numfmt

import (
	"errors"
	"testing"
)

func TestCompilePattern(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		minInt   int
		fracMin  int
		fracMax  int
		grouping bool
	}{
		{"standard", "#,##0.00", 1, 2, 2, true},
		{"integer only", "#,##0", 1, 0, 0, true},
		{"optional fraction", "0.###", 1, 0, 3, false},
		{"padded integer", "000", 3, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := compilePattern(tt.src)
			if err != nil {
				t.Fatalf("compilePattern(%q) failed: %v", tt.src, err)
			}
			if p.minInt != tt.minInt {
				t.Errorf("minInt = %d, want %d", p.minInt, tt.minInt)
			}
			if p.fracMin != tt.fracMin || p.fracMax != tt.fracMax {
				t.Errorf("frac = [%d,%d], want [%d,%d]", p.fracMin, p.fracMax, tt.fracMin, tt.fracMax)
			}
			if p.grouping != tt.grouping {
				t.Errorf("grouping = %t, want %t", p.grouping, tt.grouping)
			}
		})
	}
}

func TestCompilePattern_Affixes(t *testing.T) {
	p, err := compilePattern("#,##0.00 ¤;(#,##0.00 ¤)")
	if err != nil {
		t.Fatalf("compilePattern failed: %v", err)
	}
	if !p.currency {
		t.Error("currency placeholder not detected")
	}
	if !p.hasNeg {
		t.Error("negative subpattern not detected")
	}
	if p.negPrefix != "(" || p.negSuffix != " ¤)" {
		t.Errorf("negative affixes = %q / %q, want %q / %q", p.negPrefix, p.negSuffix, "(", " ¤)")
	}
}

func TestCompilePattern_Errors(t *testing.T) {
	tests := []string{
		"abc",     // no digit core
		"0.0.0",   // two fraction boundaries
		"0.#0",    // '0' after '#' in fraction
		"",        // empty
	}

	for _, src := range tests {
		if _, err := compilePattern(src); err == nil {
			t.Errorf("compilePattern(%q) should fail", src)
		} else if !errors.Is(err, ErrBadOptions) {
			t.Errorf("compilePattern(%q) = %v, want ErrBadOptions", src, err)
		}
	}
}

func TestFormat_Pattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    Options
		in      float64
		want    string
	}{
		{"fixed fraction", "#,##0.00", Options{}, 1234.5, "1,234.50"},
		{"no grouping", "0.##", Options{}, 1234.56, "1234.56"},
		{"padded integer", "000", Options{}, 7, "007"},
		{"percent", "0.0%", Options{}, 0.256, "25.6%"},
		{"quoted literal", "0' kg'", Options{}, 2.5, "2 kg"},
		{"negative subpattern", "#,##0.00;(#,##0.00)", Options{}, -1234.5, "(1,234.50)"},
		{"default negative", "0.0", Options{}, -2.5, "-2.5"},
		{"sign always", "0.0", Options{SignDisplay: SignAlways}, 2.5, "+2.5"},
		{"sign never", "0.0", Options{SignDisplay: SignNever}, -2.5, "2.5"},
		{"trunc rounding", "0.0", Options{RoundingMode: RoundTrunc}, 2.39, "2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Pattern = tt.pattern
			f := mustNew(t, "en", opts)
			if got := f.Format(tt.in); got != tt.want {
				t.Errorf("Format(%v) with %q = %q, want %q", tt.in, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormat_PatternCurrency(t *testing.T) {
	f := mustNew(t, "en", Options{
		Pattern:         "#,##0.00 ¤",
		Currency:        "USD",
		CurrencyDisplay: CurrencyCode,
	})
	if got := f.Format(1234.5); got != "1,234.50 USD" {
		t.Errorf("Format(1234.5) = %q, want %q", got, "1,234.50 USD")
	}
}

func TestFormat_PatternGermanSeparators(t *testing.T) {
	f := mustNew(t, "de", Options{Pattern: "#,##0.00"})
	// Pattern group and decimal symbols resolve to the locale's separators.
	if got := f.Format(1234.5); got != "1.234,50" {
		t.Errorf("Format(1234.5) = %q, want %q", got, "1.234,50")
	}
}

func TestNew_BadPattern(t *testing.T) {
	if _, err := New("en", Options{Pattern: "no digits"}); err == nil {
		t.Error("New with an invalid pattern should fail")
	}
}
