// config/config.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cybanjar/intl-formatter/numfmt"
)

// DigitUnset marks a digit option that was not configured. Digit options
// distinguish "not set" from zero, so plain ints need a sentinel.
const DigitUnset = -1

// DefaultsConfig groups the formatting defaults applied to every Formatter
// built from this config. Callers still layer per-instance and per-call
// options on top.
type DefaultsConfig struct {
	Locale   string `mapstructure:"default_locale"`
	Style    string `mapstructure:"default_style"`
	Currency string `mapstructure:"default_currency"`
	Unit     string `mapstructure:"default_unit"`

	Notation       string `mapstructure:"notation"`
	CompactDisplay string `mapstructure:"compact_display"`
	SignDisplay    string `mapstructure:"sign_display"`
	RoundingMode   string `mapstructure:"rounding_mode"`
	Grouping       bool   `mapstructure:"grouping"`

	MinFractionDigits int `mapstructure:"min_fraction_digits"`
	MaxFractionDigits int `mapstructure:"max_fraction_digits"`
}

// FormatterConfig holds the full service configuration: runtime settings,
// formatting defaults, and the locale data override location.
type FormatterConfig struct {
	// runtime
	Env      string `mapstructure:"env"`       // "dev" | "prod"
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error …
	Listen   string `mapstructure:"listen"`    // numfmtd bind address

	Defaults DefaultsConfig `mapstructure:",squash"`

	// OverridesDir points at a directory of per-locale YAML files that
	// patch the built-in locale tables.
	OverridesDir string `mapstructure:"locale_overrides_dir"`

	// CacheTTL bounds how long pooled formatters live.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Options translates the configured defaults into formatter options.
// Unset digit sentinels stay nil so library defaults apply.
func (c *FormatterConfig) Options() numfmt.Options {
	opts := numfmt.Options{
		Style:          numfmt.Style(c.Defaults.Style),
		Notation:       numfmt.Notation(c.Defaults.Notation),
		CompactDisplay: numfmt.CompactDisplay(c.Defaults.CompactDisplay),
		Currency:       c.Defaults.Currency,
		Unit:           c.Defaults.Unit,
		SignDisplay:    numfmt.SignDisplay(c.Defaults.SignDisplay),
		RoundingMode:   numfmt.RoundingMode(c.Defaults.RoundingMode),
		UseGrouping:    numfmt.Bool(c.Defaults.Grouping),
	}
	if c.Defaults.MinFractionDigits != DigitUnset {
		opts.MinFractionDigits = numfmt.Int(c.Defaults.MinFractionDigits)
	}
	if c.Defaults.MaxFractionDigits != DigitUnset {
		opts.MaxFractionDigits = numfmt.Int(c.Defaults.MaxFractionDigits)
	}
	return opts
}

// Dump returns a pretty JSON string of the config for debugging.
// Use at debug level only.
func (c FormatterConfig) Dump() string {
	b, _ := json.MarshalIndent(c, "", "  ")
	return string(b)
}

// Load merges defaults → config.* file(s) → env vars → explicit flags into
// one FormatterConfig. Final precedence (highest wins):
// flags(explicit) > env > config > defaults.
func Load(logger *zap.Logger) (*FormatterConfig, error) {
	// 0) Optionally load .env (safe: real env still wins over .env)
	if err := godotenv.Load(); err == nil && logger != nil {
		logger.Info("Loaded .env file")
	}

	// 1) Define flags (only *explicitly set* flags will override)
	pflag.String("env", "dev", `Runtime environment "dev"|"prod"`)
	pflag.String("log_level", "debug", "Log level")
	pflag.String("listen", ":8080", "Bind address for the formatting service")

	pflag.String("default_locale", "en", "BCP-47 locale for formatting")
	pflag.String("default_style", "decimal", "Formatting style: decimal|currency|percent|unit")
	pflag.String("default_currency", "", "ISO 4217 currency code for the currency style")
	pflag.String("default_unit", "", `Unit identifier for the unit style (e.g. "hour")`)

	pflag.String("notation", "standard", "Notation: standard|compact|scientific|engineering")
	pflag.String("compact_display", "short", "Compact suffix width: short|long")
	pflag.String("sign_display", "auto", "Sign display: auto|always|never|exceptZero")
	pflag.String("rounding_mode", "halfEven", "Rounding mode: halfEven|halfExpand|ceil|floor|trunc")
	pflag.Bool("grouping", true, "Use digit group separators")

	pflag.Int("min_fraction_digits", DigitUnset, "Minimum fraction digits (-1 = library default)")
	pflag.Int("max_fraction_digits", DigitUnset, "Maximum fraction digits (-1 = library default)")

	pflag.String("locale_overrides_dir", "", "Directory of per-locale YAML override files")
	pflag.String("cache_ttl", "30m", `Pooled formatter lifetime (e.g. "30m", "1h")`)
	pflag.Parse()

	// 2) Viper + env
	v := viper.New()
	v.SetEnvPrefix("NUMFMT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Bind env for all keys so Unmarshal sees them.
	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	// 3) Optional config.* files (yaml|yml|json|toml)
	for _, ext := range [...]string{"yaml", "yml", "json", "toml"} {
		file := "config." + ext
		if _, err := os.Stat(file); err != nil {
			continue
		}
		b, err := os.ReadFile(file)
		if err != nil {
			if logger != nil {
				logger.Warn("cannot read config file", zap.String("file", file), zap.Error(err))
			}
			continue
		}
		v.SetConfigType(ext)
		if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
			if logger != nil {
				logger.Warn("cannot decode config file", zap.String("file", file), zap.Error(err))
			}
			continue
		}
		if logger != nil {
			logger.Info("Loaded config file", zap.String("file", file))
		}
	}

	// 4) Defaults (lowest precedence)
	setDefaults(v)

	// 5) Apply *explicit* flags (highest precedence)
	pflag.CommandLine.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = v.BindPFlag(f.Name, f)
		}
	})

	// 6) Build struct
	var cfg FormatterConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode formatter config: %w", err)
	}

	ttl, err := parseDurationFlexible(v.Get("cache_ttl"), 30*time.Minute)
	if err != nil && logger != nil {
		logger.Warn("invalid cache_ttl; using default 30m",
			zap.Any("value", v.Get("cache_ttl")), zap.Error(err))
	}
	cfg.CacheTTL = ttl

	// 7) Validate
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func allKeys() []string {
	return []string{
		"env", "log_level", "listen",
		"default_locale", "default_style", "default_currency", "default_unit",
		"notation", "compact_display", "sign_display", "rounding_mode",
		"grouping",
		"min_fraction_digits", "max_fraction_digits",
		"locale_overrides_dir", "cache_ttl",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "debug")
	v.SetDefault("listen", ":8080")

	v.SetDefault("default_locale", "en")
	v.SetDefault("default_style", "decimal")
	v.SetDefault("default_currency", "")
	v.SetDefault("default_unit", "")

	v.SetDefault("notation", "standard")
	v.SetDefault("compact_display", "short")
	v.SetDefault("sign_display", "auto")
	v.SetDefault("rounding_mode", "halfEven")
	v.SetDefault("grouping", true)

	v.SetDefault("min_fraction_digits", DigitUnset)
	v.SetDefault("max_fraction_digits", DigitUnset)

	v.SetDefault("locale_overrides_dir", "")
	v.SetDefault("cache_ttl", "30m")
}

func validateConfig(cfg FormatterConfig) error {
	var missing []string
	var invalid []string

	if strings.TrimSpace(cfg.Defaults.Locale) == "" {
		missing = append(missing, "NUMFMT_DEFAULT_LOCALE (or --default_locale)")
	}
	if strings.TrimSpace(cfg.Listen) == "" {
		missing = append(missing, "NUMFMT_LISTEN (or --listen)")
	}

	if cfg.Defaults.Style == "currency" && len(strings.TrimSpace(cfg.Defaults.Currency)) != 3 {
		missing = append(missing, "NUMFMT_DEFAULT_CURRENCY (or --default_currency) for the currency style")
	}
	if cfg.Defaults.Style == "unit" && strings.TrimSpace(cfg.Defaults.Unit) == "" {
		missing = append(missing, "NUMFMT_DEFAULT_UNIT (or --default_unit) for the unit style")
	}

	// Option-level checks: a throwaway merge catches bad enum values and
	// contradictory digit windows early, with the library's own messages.
	if _, err := numfmt.New(cfg.Defaults.Locale, cfg.Options()); err != nil {
		invalid = append(invalid, err.Error())
	}

	if cfg.OverridesDir != "" {
		if st, err := os.Stat(cfg.OverridesDir); err != nil || !st.IsDir() {
			invalid = append(invalid, fmt.Sprintf("locale_overrides_dir %q is not a readable directory", cfg.OverridesDir))
		}
	}

	if cfg.CacheTTL <= 0 {
		invalid = append(invalid, "cache_ttl must be > 0")
	}

	if len(missing) == 0 && len(invalid) == 0 {
		return nil
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid: "+strings.Join(invalid, ", "))
	}
	return fmt.Errorf("formatter configuration errors: %s", strings.Join(parts, " | "))
}
