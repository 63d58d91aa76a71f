// Package numfmt is a number-formatting façade over the locale-aware
// primitives in golang.org/x/text. It exposes a uniform, option-driven API
// for decimal, currency, percent, unit, compact, scientific, custom-pattern,
// and ranged formats.
//
// The primitive's feature surface is partial: it has no compact notation,
// no rounding-mode control, no sign-display control, no unit names, and no
// range formatting. At construction a Formatter probes the primitive and
// records its capabilities; each format request is then routed either to the
// native path (with unsupported options stripped) or to a manual fallback
// branch that reproduces the requested semantics — precision, sign handling,
// scale, and separators — as closely as possible.
package numfmt

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cybanjar/intl-formatter/cache"
	"github.com/cybanjar/intl-formatter/locale"
)

// Observer receives formatting telemetry. The metrics package provides a
// Prometheus-backed implementation; a nil observer is a no-op.
type Observer interface {
	ObserveFormat(style, notation string)
	ObserveFallback(feature string)
}

// defaultObserver seeds the observer of every Formatter built by New.
var defaultObserver Observer

// SetDefaultObserver installs a process-wide observer for all Formatters
// built afterwards. Call once at startup, before formatters are created.
func SetDefaultObserver(o Observer) { defaultObserver = o }

// Formatter formats numbers for one locale under one merged option set.
// It is immutable after construction and safe for concurrent use, except
// for SetObserver which must be called before the Formatter is shared.
type Formatter struct {
	locale  string
	tag     language.Tag
	data    *locale.Data
	printer *message.Printer
	opts    Options
	caps    Capabilities
	syms    symbols
	pat     *pattern
	obs     Observer

	// derived caches formatters built by FormatWith, keyed by the merged
	// option digest.
	derived *cache.Memory[*Formatter]
}

// New builds a Formatter for a BCP-47 locale. The supplied options become
// the instance defaults, layered over the library defaults; per-call options
// passed to FormatWith layer over both. An empty locale resolves through the
// default chain; an unparseable one is an error.
func New(loc string, opts Options) (*Formatter, error) {
	merged := Merge(DefaultOptions(), opts)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	var tag language.Tag
	if strings.TrimSpace(loc) == "" {
		loc = locale.Default
		tag = language.Make(locale.Default)
	} else {
		t, err := locale.Parse(loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadLocale, err)
		}
		tag = t
	}

	var pat *pattern
	if merged.Pattern != "" {
		p, err := compilePattern(merged.Pattern)
		if err != nil {
			return nil, err
		}
		pat = p
	}

	caps, syms := probe(tag, merged)

	return &Formatter{
		locale:  loc,
		tag:     tag,
		data:    locale.Match(tag),
		printer: message.NewPrinter(tag),
		opts:    merged,
		caps:    caps,
		syms:    syms,
		pat:     pat,
		obs:     defaultObserver,
		derived: cache.NewMemory[*Formatter](),
	}, nil
}

// NewDefault builds a Formatter with library defaults only.
func NewDefault(loc string) (*Formatter, error) {
	return New(loc, Options{})
}

// Locale returns the locale identifier the Formatter was built with.
func (f *Formatter) Locale() string { return f.locale }

// Options returns the merged instance options.
func (f *Formatter) Options() Options { return f.opts }

// Capabilities returns the probed capability set of the native primitive
// for this Formatter's locale.
func (f *Formatter) Capabilities() Capabilities { return f.caps }

// SetObserver installs a telemetry observer. Call before sharing the
// Formatter across goroutines.
func (f *Formatter) SetObserver(o Observer) { f.obs = o }

// Degradations lists the requested features the native primitive cannot
// honor for this locale, each of which is served by a fallback branch.
func (f *Formatter) Degradations() []string {
	var out []string

	switch f.opts.Notation {
	case NotationCompact:
		if !f.caps.Compact {
			out = append(out, "compact notation")
		}
	case NotationScientific, NotationEngineering:
		if !f.caps.Scientific {
			out = append(out, "scientific notation")
		}
	}
	if f.opts.RoundingMode != RoundHalfEven && !f.caps.RoundingModes {
		out = append(out, "rounding mode "+string(f.opts.RoundingMode))
	}
	if f.opts.SignDisplay != SignAuto && !f.caps.SignDisplay {
		out = append(out, "sign display "+string(f.opts.SignDisplay))
	}
	if f.opts.Style == StyleUnit && !f.caps.Units {
		out = append(out, "unit names")
	}
	if f.opts.Style == StyleCurrency {
		if !f.caps.Currency {
			out = append(out, "currency "+strings.ToUpper(f.opts.Currency)+" (code used as symbol)")
		}
		if f.explicitDigits() && !f.caps.CurrencyDigits {
			out = append(out, "currency digit control")
		}
	}
	if f.opts.Pattern != "" {
		out = append(out, "custom pattern")
	}

	return out
}

func (f *Formatter) explicitDigits() bool {
	o := f.opts
	return o.MinFractionDigits != nil || o.MaxFractionDigits != nil ||
		o.MinSignificantDigits != nil || o.MaxSignificantDigits != nil
}

// with returns a derived Formatter with per-call options layered over this
// Formatter's options. Derived instances are cached.
func (f *Formatter) with(over Options) (*Formatter, error) {
	merged := Merge(f.opts, over)
	if merged == f.opts {
		return f, nil
	}
	return f.derived.GetOrCompute(merged.key(), func() (*Formatter, error) {
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		var pat *pattern
		if merged.Pattern != "" {
			p, err := compilePattern(merged.Pattern)
			if err != nil {
				return nil, err
			}
			pat = p
		}
		caps, syms := probe(f.tag, merged)
		return &Formatter{
			locale:  f.locale,
			tag:     f.tag,
			data:    f.data,
			printer: f.printer,
			opts:    merged,
			caps:    caps,
			syms:    syms,
			pat:     pat,
			obs:     f.obs,
			derived: f.derived,
		}, nil
	})
}

func (f *Formatter) observeFallback(feature string) {
	if f.obs != nil {
		f.obs.ObserveFallback(feature)
	}
}

func (f *Formatter) observeFormat(opts Options) {
	if f.obs != nil {
		f.obs.ObserveFormat(string(opts.Style), string(opts.Notation))
	}
}
