// numfmt/options.go
package numfmt

import (
	"fmt"
	"strings"
)

// Style selects the overall presentation of a formatted number.
type Style string

const (
	StyleDecimal  Style = "decimal"
	StyleCurrency Style = "currency"
	StylePercent  Style = "percent"
	StyleUnit     Style = "unit"
)

// Notation selects how magnitude is presented.
type Notation string

const (
	NotationStandard    Notation = "standard"
	NotationCompact     Notation = "compact"
	NotationScientific  Notation = "scientific"
	NotationEngineering Notation = "engineering"
)

// CompactDisplay selects suffix width for compact notation.
type CompactDisplay string

const (
	CompactShort CompactDisplay = "short"
	CompactLong  CompactDisplay = "long"
)

// SignDisplay controls when the sign is shown.
type SignDisplay string

const (
	SignAuto       SignDisplay = "auto"
	SignAlways     SignDisplay = "always"
	SignNever      SignDisplay = "never"
	SignExceptZero SignDisplay = "exceptZero"
)

// RoundingMode controls how excess precision is discarded.
type RoundingMode string

const (
	RoundHalfEven   RoundingMode = "halfEven"
	RoundHalfExpand RoundingMode = "halfExpand"
	RoundCeil       RoundingMode = "ceil"
	RoundFloor      RoundingMode = "floor"
	RoundTrunc      RoundingMode = "trunc"
)

// CurrencyDisplay selects how the currency itself is rendered.
type CurrencyDisplay string

const (
	CurrencySymbol       CurrencyDisplay = "symbol"
	CurrencyNarrowSymbol CurrencyDisplay = "narrowSymbol"
	CurrencyCode         CurrencyDisplay = "code"
	CurrencyName         CurrencyDisplay = "name"
)

// UnitDisplay selects the width of unit names.
type UnitDisplay string

const (
	UnitLong   UnitDisplay = "long"
	UnitShort  UnitDisplay = "short"
	UnitNarrow UnitDisplay = "narrow"
)

// Options configures a Formatter. The zero value means "unset" for every
// field: string fields use "" and digit fields use nil, so an explicit
// setting is never shadowed when options are merged.
type Options struct {
	Style    Style
	Notation Notation

	// CompactDisplay applies when Notation is compact.
	CompactDisplay CompactDisplay

	// Currency is the ISO 4217 code; required when Style is currency.
	Currency        string
	CurrencyDisplay CurrencyDisplay

	// Unit is the unit identifier (e.g. "hour", "megabyte"); required when
	// Style is unit.
	Unit        string
	UnitDisplay UnitDisplay

	// Pattern, when set, renders through a CLDR-subset pattern (e.g.
	// "#,##0.00 ¤") instead of the style's stock presentation.
	Pattern string

	MinIntegerDigits     *int
	MinFractionDigits    *int
	MaxFractionDigits    *int
	MinSignificantDigits *int
	MaxSignificantDigits *int

	UseGrouping *bool

	SignDisplay  SignDisplay
	RoundingMode RoundingMode
}

// Int returns a pointer to n, for setting digit options inline.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, for setting UseGrouping inline.
func Bool(b bool) *bool { return &b }

// DefaultOptions returns the library defaults: decimal style, standard
// notation, grouping on, automatic sign, banker's rounding.
func DefaultOptions() Options {
	return Options{
		Style:           StyleDecimal,
		Notation:        NotationStandard,
		CompactDisplay:  CompactShort,
		CurrencyDisplay: CurrencySymbol,
		UnitDisplay:     UnitShort,
		UseGrouping:     Bool(true),
		SignDisplay:     SignAuto,
		RoundingMode:    RoundHalfEven,
	}
}

// Merge layers over on top of base: any field explicitly set in over wins,
// unset fields keep the base value. Merging is pure; neither argument is
// modified.
func Merge(base, over Options) Options {
	out := base

	if over.Style != "" {
		out.Style = over.Style
	}
	if over.Notation != "" {
		out.Notation = over.Notation
	}
	if over.CompactDisplay != "" {
		out.CompactDisplay = over.CompactDisplay
	}
	if over.Currency != "" {
		out.Currency = over.Currency
	}
	if over.CurrencyDisplay != "" {
		out.CurrencyDisplay = over.CurrencyDisplay
	}
	if over.Unit != "" {
		out.Unit = over.Unit
	}
	if over.UnitDisplay != "" {
		out.UnitDisplay = over.UnitDisplay
	}
	if over.Pattern != "" {
		out.Pattern = over.Pattern
	}
	if over.MinIntegerDigits != nil {
		out.MinIntegerDigits = over.MinIntegerDigits
	}
	if over.MinFractionDigits != nil {
		out.MinFractionDigits = over.MinFractionDigits
	}
	if over.MaxFractionDigits != nil {
		out.MaxFractionDigits = over.MaxFractionDigits
	}
	if over.MinSignificantDigits != nil {
		out.MinSignificantDigits = over.MinSignificantDigits
	}
	if over.MaxSignificantDigits != nil {
		out.MaxSignificantDigits = over.MaxSignificantDigits
	}
	if over.UseGrouping != nil {
		out.UseGrouping = over.UseGrouping
	}
	if over.SignDisplay != "" {
		out.SignDisplay = over.SignDisplay
	}
	if over.RoundingMode != "" {
		out.RoundingMode = over.RoundingMode
	}

	return out
}

// Validate checks merged options for contradictions. It is called on fully
// merged options, so every enum field is non-empty.
func (o Options) Validate() error {
	switch o.Style {
	case StyleDecimal, StyleCurrency, StylePercent, StyleUnit:
	default:
		return fmt.Errorf("%w: unknown style %q", ErrBadOptions, o.Style)
	}
	switch o.Notation {
	case NotationStandard, NotationCompact, NotationScientific, NotationEngineering:
	default:
		return fmt.Errorf("%w: unknown notation %q", ErrBadOptions, o.Notation)
	}
	switch o.CompactDisplay {
	case CompactShort, CompactLong:
	default:
		return fmt.Errorf("%w: unknown compact display %q", ErrBadOptions, o.CompactDisplay)
	}
	switch o.CurrencyDisplay {
	case CurrencySymbol, CurrencyNarrowSymbol, CurrencyCode, CurrencyName:
	default:
		return fmt.Errorf("%w: unknown currency display %q", ErrBadOptions, o.CurrencyDisplay)
	}
	switch o.UnitDisplay {
	case UnitLong, UnitShort, UnitNarrow:
	default:
		return fmt.Errorf("%w: unknown unit display %q", ErrBadOptions, o.UnitDisplay)
	}
	switch o.SignDisplay {
	case SignAuto, SignAlways, SignNever, SignExceptZero:
	default:
		return fmt.Errorf("%w: unknown sign display %q", ErrBadOptions, o.SignDisplay)
	}
	switch o.RoundingMode {
	case RoundHalfEven, RoundHalfExpand, RoundCeil, RoundFloor, RoundTrunc:
	default:
		return fmt.Errorf("%w: unknown rounding mode %q", ErrBadOptions, o.RoundingMode)
	}

	if o.Style == StyleCurrency {
		code := strings.ToUpper(o.Currency)
		if len(code) != 3 {
			return fmt.Errorf("%w: currency style requires a 3-letter ISO code, got %q", ErrBadOptions, o.Currency)
		}
	}
	if o.Style == StyleUnit && o.Unit == "" {
		return fmt.Errorf("%w: unit style requires a unit identifier", ErrBadOptions)
	}

	if err := validateDigits(o); err != nil {
		return err
	}
	return nil
}

func validateDigits(o Options) error {
	check := func(name string, p *int, lo, hi int) error {
		if p == nil {
			return nil
		}
		if *p < lo || *p > hi {
			return fmt.Errorf("%w: %s %d out of range [%d,%d]", ErrBadOptions, name, *p, lo, hi)
		}
		return nil
	}

	if err := check("minIntegerDigits", o.MinIntegerDigits, 1, 21); err != nil {
		return err
	}
	if err := check("minFractionDigits", o.MinFractionDigits, 0, 20); err != nil {
		return err
	}
	if err := check("maxFractionDigits", o.MaxFractionDigits, 0, 20); err != nil {
		return err
	}
	if err := check("minSignificantDigits", o.MinSignificantDigits, 1, 21); err != nil {
		return err
	}
	if err := check("maxSignificantDigits", o.MaxSignificantDigits, 1, 21); err != nil {
		return err
	}

	if o.MinFractionDigits != nil && o.MaxFractionDigits != nil && *o.MinFractionDigits > *o.MaxFractionDigits {
		return fmt.Errorf("%w: minFractionDigits %d > maxFractionDigits %d",
			ErrBadOptions, *o.MinFractionDigits, *o.MaxFractionDigits)
	}
	if o.MinSignificantDigits != nil && o.MaxSignificantDigits != nil && *o.MinSignificantDigits > *o.MaxSignificantDigits {
		return fmt.Errorf("%w: minSignificantDigits %d > maxSignificantDigits %d",
			ErrBadOptions, *o.MinSignificantDigits, *o.MaxSignificantDigits)
	}
	return nil
}

// hasSignificant reports whether significant-digit options are in play.
// When both significant and fraction digit options are set, significant
// digits win (matching the native primitive's precedence).
func (o Options) hasSignificant() bool {
	return o.MinSignificantDigits != nil || o.MaxSignificantDigits != nil
}

// key returns a stable digest of the options, used as a cache key for
// derived formatters.
func (o Options) key() string {
	digit := func(p *int) string {
		if p == nil {
			return "_"
		}
		return fmt.Sprintf("%d", *p)
	}
	grouping := "_"
	if o.UseGrouping != nil {
		grouping = fmt.Sprintf("%t", *o.UseGrouping)
	}
	// Free-form fields are length-prefixed so a separator character inside
	// them cannot shift the field boundaries.
	lp := func(s string) string {
		return fmt.Sprintf("%d:%s", len(s), s)
	}
	return strings.Join([]string{
		string(o.Style), string(o.Notation), string(o.CompactDisplay),
		lp(o.Currency), string(o.CurrencyDisplay), lp(o.Unit), string(o.UnitDisplay),
		lp(o.Pattern),
		digit(o.MinIntegerDigits),
		digit(o.MinFractionDigits), digit(o.MaxFractionDigits),
		digit(o.MinSignificantDigits), digit(o.MaxSignificantDigits),
		grouping, string(o.SignDisplay), string(o.RoundingMode),
	}, "|")
}
