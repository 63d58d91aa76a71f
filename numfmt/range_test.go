package numfmt

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatRange(t *testing.T) {
	f := mustNew(t, "en", Options{})

	got, err := f.FormatRange(1000, 2000)
	if err != nil {
		t.Fatalf("FormatRange failed: %v", err)
	}
	if got != "1,000–2,000" {
		t.Errorf("FormatRange(1000, 2000) = %q, want %q", got, "1,000–2,000")
	}
}

func TestFormatRange_Collapse(t *testing.T) {
	f := mustNew(t, "en", Options{})

	got, err := f.FormatRange(5, 5)
	if err != nil {
		t.Fatalf("FormatRange failed: %v", err)
	}
	if got != "~5" {
		t.Errorf("FormatRange(5, 5) = %q, want %q", got, "~5")
	}

	// Endpoints that round to the same rendering also collapse.
	coarse := mustNew(t, "en", Options{MaxFractionDigits: Int(0)})
	got, err = coarse.FormatRange(4.2, 4.4)
	if err != nil {
		t.Fatalf("FormatRange failed: %v", err)
	}
	if got != "~4" {
		t.Errorf("FormatRange(4.2, 4.4) = %q, want %q", got, "~4")
	}
}

func TestFormatRange_Spaced(t *testing.T) {
	// French pads the range separator with spaces.
	f := mustNew(t, "fr", Options{})
	got, err := f.FormatRange(5, 8)
	if err != nil {
		t.Fatalf("FormatRange failed: %v", err)
	}
	if got != "5 – 8" {
		t.Errorf("FormatRange(5, 8) = %q, want %q", got, "5 – 8")
	}
}

func TestFormatRange_Errors(t *testing.T) {
	f := mustNew(t, "en", Options{})

	if _, err := f.FormatRange(10, 5); !errors.Is(err, ErrBadRange) {
		t.Errorf("FormatRange(10, 5) = %v, want ErrBadRange", err)
	}
	if _, err := f.FormatRange(math.NaN(), 5); !errors.Is(err, ErrBadRange) {
		t.Errorf("FormatRange(NaN, 5) = %v, want ErrBadRange", err)
	}
	if _, err := f.FormatRange(5, math.NaN()); !errors.Is(err, ErrBadRange) {
		t.Errorf("FormatRange(5, NaN) = %v, want ErrBadRange", err)
	}
}

func TestFormatRangeWith(t *testing.T) {
	f := mustNew(t, "en", Options{})

	got, err := f.FormatRangeWith(1200, 1800, Options{Notation: NotationCompact})
	if err != nil {
		t.Fatalf("FormatRangeWith failed: %v", err)
	}
	if got != "1.2K–1.8K" {
		t.Errorf("FormatRangeWith = %q, want %q", got, "1.2K–1.8K")
	}
}

func TestFormatDecimalRange(t *testing.T) {
	f := mustNew(t, "en", Options{})

	lo := decimal.NewFromInt(100)
	hi := decimal.NewFromInt(200)
	got, err := f.FormatDecimalRange(lo, hi)
	if err != nil {
		t.Fatalf("FormatDecimalRange failed: %v", err)
	}
	if got != "100–200" {
		t.Errorf("FormatDecimalRange = %q, want %q", got, "100–200")
	}

	if _, err := f.FormatDecimalRange(hi, lo); !errors.Is(err, ErrBadRange) {
		t.Errorf("FormatDecimalRange(hi, lo) = %v, want ErrBadRange", err)
	}
}
