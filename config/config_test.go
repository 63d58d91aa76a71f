// config/config_test.go
package config

import (
	"strings"
	"testing"
	"time"

	"github.com/cybanjar/intl-formatter/numfmt"
)

func baseConfig() FormatterConfig {
	return FormatterConfig{
		Env:      "dev",
		LogLevel: "debug",
		Listen:   ":8080",
		Defaults: DefaultsConfig{
			Locale:            "en",
			Style:             "decimal",
			Notation:          "standard",
			CompactDisplay:    "short",
			SignDisplay:       "auto",
			RoundingMode:      "halfEven",
			Grouping:          true,
			MinFractionDigits: DigitUnset,
			MaxFractionDigits: DigitUnset,
		},
		CacheTTL: 30 * time.Minute,
	}
}

func TestOptions_Mapping(t *testing.T) {
	cfg := baseConfig()
	cfg.Defaults.Style = "currency"
	cfg.Defaults.Currency = "EUR"
	cfg.Defaults.Notation = "compact"
	cfg.Defaults.CompactDisplay = "long"
	cfg.Defaults.SignDisplay = "always"
	cfg.Defaults.RoundingMode = "trunc"
	cfg.Defaults.Grouping = false

	opts := cfg.Options()
	if opts.Style != numfmt.StyleCurrency {
		t.Errorf("Style = %q, want currency", opts.Style)
	}
	if opts.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", opts.Currency)
	}
	if opts.Notation != numfmt.NotationCompact || opts.CompactDisplay != numfmt.CompactLong {
		t.Errorf("Notation = %q/%q, want compact/long", opts.Notation, opts.CompactDisplay)
	}
	if opts.SignDisplay != numfmt.SignAlways {
		t.Errorf("SignDisplay = %q, want always", opts.SignDisplay)
	}
	if opts.RoundingMode != numfmt.RoundTrunc {
		t.Errorf("RoundingMode = %q, want trunc", opts.RoundingMode)
	}
	if opts.UseGrouping == nil || *opts.UseGrouping {
		t.Error("UseGrouping should be an explicit false")
	}
}

func TestOptions_DigitSentinels(t *testing.T) {
	cfg := baseConfig()
	if opts := cfg.Options(); opts.MinFractionDigits != nil || opts.MaxFractionDigits != nil {
		t.Error("unset digit sentinels should map to nil options")
	}

	cfg.Defaults.MinFractionDigits = 0
	cfg.Defaults.MaxFractionDigits = 4
	opts := cfg.Options()
	if opts.MinFractionDigits == nil || *opts.MinFractionDigits != 0 {
		t.Error("explicit zero min fraction digits should survive the mapping")
	}
	if opts.MaxFractionDigits == nil || *opts.MaxFractionDigits != 4 {
		t.Error("max fraction digits should map through")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FormatterConfig)
		wantErr string
	}{
		{"valid", func(c *FormatterConfig) {}, ""},
		{"missing locale", func(c *FormatterConfig) { c.Defaults.Locale = " " }, "DEFAULT_LOCALE"},
		{"missing listen", func(c *FormatterConfig) { c.Listen = "" }, "LISTEN"},
		{"currency style without code", func(c *FormatterConfig) { c.Defaults.Style = "currency" }, "DEFAULT_CURRENCY"},
		{"unit style without unit", func(c *FormatterConfig) { c.Defaults.Style = "unit" }, "DEFAULT_UNIT"},
		{"bad rounding mode", func(c *FormatterConfig) { c.Defaults.RoundingMode = "sideways" }, "invalid"},
		{"contradictory digits", func(c *FormatterConfig) {
			c.Defaults.MinFractionDigits = 5
			c.Defaults.MaxFractionDigits = 2
		}, "invalid"},
		{"overrides dir missing", func(c *FormatterConfig) { c.OverridesDir = "/no/such/dir" }, "locale_overrides_dir"},
		{"non-positive ttl", func(c *FormatterConfig) { c.CacheTTL = 0 }, "cache_ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)
			err := validateConfig(cfg)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateConfig = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("validateConfig = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDump(t *testing.T) {
	out := baseConfig().Dump()
	if !strings.Contains(out, `"Listen": ":8080"`) {
		t.Errorf("Dump output missing listen address:\n%s", out)
	}
}
