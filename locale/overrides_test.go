package locale

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/text/language"
)

func writeOverride(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadOverrides_NewLocale(t *testing.T) {
	dir := t.TempDir()
	path := writeOverride(t, dir, "sw.yaml", `
signs:
  approx: "≈"
range:
  separator: "—"
  spaced: true
compact_short: ["elfu", "M", "B", "T"]
currency:
  symbol_position: after
  symbol_space: true
`)

	if err := LoadOverrides("sw", path); err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}

	d := Lookup("sw")
	if d.Tag != "sw" {
		t.Fatalf("Lookup(sw).Tag = %q, want sw", d.Tag)
	}
	if d.Signs.Approx != "≈" {
		t.Errorf("Approx = %q, want ≈", d.Signs.Approx)
	}
	if d.Range.Separator != "—" || !d.Range.Spaced {
		t.Errorf("Range = %+v, want — spaced", d.Range)
	}
	if d.CompactShort[0] != "elfu" {
		t.Errorf("CompactShort[0] = %q, want elfu", d.CompactShort[0])
	}
	if d.Currency.SymbolPosition != "after" || !d.Currency.SymbolSpace {
		t.Errorf("Currency = %+v, want after with space", d.Currency)
	}

	// Untouched fields keep the default data.
	if d.Signs.Minus != "-" {
		t.Errorf("Minus = %q, want default -", d.Signs.Minus)
	}
	if _, ok := d.Units["hour"]; !ok {
		t.Error("new locale should inherit the default unit tables")
	}

	// The default data itself is untouched.
	if Lookup(Default).Signs.Approx != "~" {
		t.Error("override leaked into the default locale data")
	}
}

func TestLoadOverrides_Units(t *testing.T) {
	dir := t.TempDir()
	path := writeOverride(t, dir, "eo.yaml", `
units:
  hour:
    long:
      one: horo
      other: horoj
    short: h
`)

	if err := LoadOverrides("eo", path); err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}

	names := Lookup("eo").Units["hour"]
	if got := names.LongName(PluralOne); got != "horo" {
		t.Errorf("LongName(one) = %q, want horo", got)
	}
	if got := names.LongName(PluralOther); got != "horoj" {
		t.Errorf("LongName(other) = %q, want horoj", got)
	}
	if names.Short != "h" {
		t.Errorf("Short = %q, want h", names.Short)
	}
	// Narrow was not overridden; the inherited default remains.
	if names.Narrow != unitNamesEN["hour"].Narrow {
		t.Errorf("Narrow = %q, want inherited %q", names.Narrow, unitNamesEN["hour"].Narrow)
	}

	// Other units stay intact.
	if Lookup("eo").Units["minute"].Short != unitNamesEN["minute"].Short {
		t.Error("unrelated units should be inherited unchanged")
	}
}

func TestLoadOverridesDir(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, dir, "io.yaml", "signs:\n  nan: \"ne-nombro\"\n")
	writeOverride(t, dir, "vo.yml", "signs:\n  nan: \"nenumat\"\n")
	writeOverride(t, dir, "notes.txt", "ignored")

	if err := LoadOverridesDir(dir); err != nil {
		t.Fatalf("LoadOverridesDir failed: %v", err)
	}

	if got := Lookup("io").Signs.NaN; got != "ne-nombro" {
		t.Errorf("io NaN = %q, want ne-nombro", got)
	}
	if got := Lookup("vo").Signs.NaN; got != "nenumat" {
		t.Errorf("vo NaN = %q, want nenumat", got)
	}
}

func TestLoadOverrides_Errors(t *testing.T) {
	if err := LoadOverrides("en", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	dir := t.TempDir()
	bad := writeOverride(t, dir, "bad.yaml", "signs: [not, a, mapping]")
	if err := LoadOverrides("xx", bad); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestMatch_ConcurrentWithOverrides(t *testing.T) {
	// Loading overrides for new locales rebuilds the matcher; concurrent
	// Match calls must keep resolving against a consistent snapshot.
	dir := t.TempDir()
	path := writeOverride(t, dir, "ov.yaml", "signs:\n  nan: \"x\"\n")

	codes := []string{"mi", "sm", "to", "fj", "ty", "haw", "gd", "cy"}
	tag := language.Make("de-AT")

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if d := Match(tag); d == nil || d.Tag == "" {
					t.Error("Match returned no data")
					return
				}
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, code := range codes {
			if err := LoadOverrides(code, path); err != nil {
				t.Errorf("LoadOverrides(%s) failed: %v", code, err)
				return
			}
		}
	}()
	wg.Wait()
}

func TestLoadOverridesDir_MissingDir(t *testing.T) {
	if err := LoadOverridesDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("missing directory should fail")
	}
}
