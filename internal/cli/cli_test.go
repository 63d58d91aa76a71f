// internal/cli/cli_test.go
package cli

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"decimal", []string{"format", "-q", "1234.5"}, "1,234.5\n"},
		{"multiple values", []string{"format", "-q", "1", "2.5"}, "1\n2.5\n"},
		{"german locale", []string{"format", "-q", "-l", "de", "1234.5"}, "1.234,5\n"},
		{"percent", []string{"format", "-q", "-s", "percent", "0.256"}, "25.6%\n"},
		{"compact", []string{"format", "-q", "-n", "compact", "1234"}, "1.2K\n"},
		{"fraction digits", []string{"format", "-q", "--min-frac", "2", "5"}, "5.00\n"},
		{"no grouping", []string{"format", "-q", "--no-grouping", "1234567"}, "1234567\n"},
		{"currency implies style", []string{"format", "-q", "-c", "EUR", "--currency-display", "name", "1"}, "1.00 euro\n"},
		{"pattern", []string{"format", "-q", "-p", "000.0", "7"}, "007.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestFormatCommand_Errors(t *testing.T) {
	if _, err := execute(t, "format", "-q", "nope"); err == nil {
		t.Error("non-numeric argument should fail")
	}
	if _, err := execute(t, "format", "-q", "--round", "sideways", "1"); err == nil {
		t.Error("bad rounding mode should fail")
	}
	if _, err := execute(t, "format"); err == nil {
		t.Error("missing arguments should fail")
	}
}

func TestRangeCommand(t *testing.T) {
	out, err := execute(t, "range", "-q", "1000", "2000")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if out != "1,000–2,000\n" {
		t.Errorf("output = %q, want 1,000–2,000", out)
	}

	if _, err := execute(t, "range", "-q", "5", "2"); err == nil {
		t.Error("inverted range should fail")
	}
}

func TestProbeCommand(t *testing.T) {
	out, err := execute(t, "probe", "-l", "en", "-c", "usd")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.Contains(out, "locale: en") {
		t.Errorf("output missing locale line:\n%s", out)
	}
	if !strings.Contains(out, "scientific notation: native") {
		t.Errorf("scientific should report native:\n%s", out)
	}
	if !strings.Contains(out, "compact notation:    fallback") {
		t.Errorf("compact should report fallback:\n%s", out)
	}
	if !strings.Contains(out, "USD") {
		t.Errorf("currency probe line missing:\n%s", out)
	}
}

func TestLocalesCommand(t *testing.T) {
	out, err := execute(t, "locales")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	found := false
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "en" {
			found = true
		}
	}
	if !found {
		t.Errorf("locales output missing en:\n%s", out)
	}
}

func TestRun_ExitCodes(t *testing.T) {
	if code := Run([]string{"format", "-q", "1"}); code != 0 {
		t.Errorf("Run(format 1) = %d, want 0", code)
	}
	if code := Run([]string{"format", "-q", "nope"}); code != 1 {
		t.Errorf("Run(format nope) = %d, want 1", code)
	}
}
