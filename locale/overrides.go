// locale/overrides.go
package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Override describes a partial replacement of a locale's presentation data.
// Only the fields present in the YAML document are applied; everything else
// keeps the built-in (or previously overridden) value.
type Override struct {
	Signs *struct {
		Plus     string `yaml:"plus"`
		Minus    string `yaml:"minus"`
		Approx   string `yaml:"approx"`
		Infinity string `yaml:"infinity"`
		NaN      string `yaml:"nan"`
	} `yaml:"signs"`
	Range *struct {
		Separator string `yaml:"separator"`
		Spaced    bool   `yaml:"spaced"`
	} `yaml:"range"`
	CompactShort []string `yaml:"compact_short"`
	CompactLong  []string `yaml:"compact_long"`
	Currency     *struct {
		SymbolPosition string `yaml:"symbol_position"`
		SymbolSpace    bool   `yaml:"symbol_space"`
	} `yaml:"currency"`
	Units map[string]struct {
		Long   map[string]string `yaml:"long"`
		Short  string            `yaml:"short"`
		Narrow string            `yaml:"narrow"`
	} `yaml:"units"`
}

// LoadOverrides reads a YAML override file and applies it to one locale.
// Unknown locales get a copy of the default data first, so an override file
// can introduce a locale the built-in tables do not carry.
func LoadOverrides(locale, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("locale: read overrides %s: %w", path, err)
	}

	var ov Override
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("locale: parse overrides %s: %w", path, err)
	}

	Apply(locale, ov)
	return nil
}

// LoadOverridesDir loads every {locale}.yaml or {locale}.yml file from a
// directory, using the file name as the locale key.
func LoadOverridesDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("locale: read overrides dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		key := strings.TrimSuffix(name, ext)
		if err := LoadOverrides(key, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges an override into a locale's data, creating the locale from
// the default data if needed.
func Apply(locale string, ov Override) {
	key := Base(locale)
	if key == "" {
		key = Default
	}

	mu.Lock()
	defer mu.Unlock()

	d, ok := localeData[key]
	if !ok {
		d = cloneData(localeData[Default], key)
		d.Plural = PluralRules(key)
		localeData[key] = d
		rebuildMatcher()
	}

	if ov.Signs != nil {
		applyNonEmpty(&d.Signs.Plus, ov.Signs.Plus)
		applyNonEmpty(&d.Signs.Minus, ov.Signs.Minus)
		applyNonEmpty(&d.Signs.Approx, ov.Signs.Approx)
		applyNonEmpty(&d.Signs.Infinity, ov.Signs.Infinity)
		applyNonEmpty(&d.Signs.NaN, ov.Signs.NaN)
	}
	if ov.Range != nil {
		applyNonEmpty(&d.Range.Separator, ov.Range.Separator)
		d.Range.Spaced = ov.Range.Spaced
	}
	if len(ov.CompactShort) == len(d.CompactShort) {
		copy(d.CompactShort[:], ov.CompactShort)
	}
	if len(ov.CompactLong) == len(d.CompactLong) {
		copy(d.CompactLong[:], ov.CompactLong)
	}
	if ov.Currency != nil {
		applyNonEmpty(&d.Currency.SymbolPosition, ov.Currency.SymbolPosition)
		d.Currency.SymbolSpace = ov.Currency.SymbolSpace
	}

	if len(ov.Units) > 0 {
		// Units maps may be shared with the default data; copy before write.
		units := make(map[string]UnitNames, len(d.Units)+len(ov.Units))
		for k, v := range d.Units {
			units[k] = v
		}
		for unit, names := range ov.Units {
			merged := units[unit]
			if len(names.Long) > 0 {
				long := make(map[PluralForm]string, len(names.Long))
				for form, name := range names.Long {
					long[PluralForm(form)] = name
				}
				merged.Long = long
			}
			applyNonEmpty(&merged.Short, names.Short)
			applyNonEmpty(&merged.Narrow, names.Narrow)
			units[unit] = merged
		}
		d.Units = units
	}
}

func applyNonEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func cloneData(src *Data, tag string) *Data {
	cp := *src
	cp.Tag = tag
	units := make(map[string]UnitNames, len(src.Units))
	for k, v := range src.Units {
		units[k] = v
	}
	cp.Units = units
	return &cp
}
