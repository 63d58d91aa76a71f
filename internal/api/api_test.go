// internal/api/api_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/cybanjar/intl-formatter/config"
	"github.com/cybanjar/intl-formatter/httputil"
)

func testHandler() http.Handler {
	cfg := &config.FormatterConfig{
		Env:      "dev",
		LogLevel: "debug",
		Listen:   ":8080",
		Defaults: config.DefaultsConfig{
			Locale:            "en",
			Style:             "decimal",
			Notation:          "standard",
			CompactDisplay:    "short",
			SignDisplay:       "auto",
			RoundingMode:      "halfEven",
			Grouping:          true,
			MinFractionDigits: config.DigitUnset,
			MaxFractionDigits: config.DigitUnset,
		},
		CacheTTL: 30 * time.Minute,
	}
	return Handler(cfg, zap.NewNop())
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeFormat(t *testing.T, rec *httptest.ResponseRecorder) formatResponse {
	t.Helper()
	var resp formatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v\n%s", err, rec.Body.String())
	}
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var resp httputil.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON error: %v\n%s", err, rec.Body.String())
	}
	return resp
}

func TestFormatQuery(t *testing.T) {
	h := testHandler()

	tests := []struct {
		name   string
		target string
		want   []string
		locale string
	}{
		{"default locale", "/v1/format?value=1234.5", []string{"1,234.5"}, "en"},
		{"multiple values", "/v1/format?value=1&value=2.5", []string{"1", "2.5"}, "en"},
		{"german", "/v1/format?value=1234.5&locale=de", []string{"1.234,5"}, "de"},
		{"percent", "/v1/format?value=0.256&style=percent", []string{"25.6%"}, "en"},
		{"compact", "/v1/format?value=1234&notation=compact", []string{"1.2K"}, "en"},
		{"digits", "/v1/format?value=5&minFractionDigits=2", []string{"5.00"}, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			resp := decodeFormat(t, rec)
			if resp.Locale != tt.locale {
				t.Errorf("locale = %q, want %q", resp.Locale, tt.locale)
			}
			if len(resp.Formatted) != len(tt.want) {
				t.Fatalf("formatted = %v, want %v", resp.Formatted, tt.want)
			}
			for i, want := range tt.want {
				if resp.Formatted[i] != want {
					t.Errorf("formatted[%d] = %q, want %q", i, resp.Formatted[i], want)
				}
			}
		})
	}
}

func TestFormatQuery_Degradations(t *testing.T) {
	rec := get(t, testHandler(), "/v1/format?value=1234&notation=compact")
	resp := decodeFormat(t, rec)

	found := false
	for _, d := range resp.Degradations {
		if strings.Contains(d, "compact") {
			found = true
		}
	}
	if !found {
		t.Errorf("degradations = %v, want a compact entry", resp.Degradations)
	}
}

func TestFormatQuery_Errors(t *testing.T) {
	h := testHandler()

	tests := []struct {
		name   string
		target string
		code   string
	}{
		{"no value", "/v1/format", "missing_value"},
		{"not a number", "/v1/format?value=abc", "bad_value"},
		{"currency without code", "/v1/format?value=1&style=currency", "bad_options"},
		{"bad rounding mode", "/v1/format?value=1&roundingMode=sideways", "bad_options"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if resp := decodeError(t, rec); resp.Error != tt.code {
				t.Errorf("error = %q, want %q", resp.Error, tt.code)
			}
		})
	}
}

func TestFormatBody(t *testing.T) {
	h := testHandler()

	body := `{"values":[1234.5,99],"locale":"de","options":{"minFractionDigits":2}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/format", strings.NewReader(body))
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decodeFormat(t, rec)
	if resp.Formatted[0] != "1.234,50" || resp.Formatted[1] != "99,00" {
		t.Errorf("formatted = %v", resp.Formatted)
	}
}

func TestFormatBody_Errors(t *testing.T) {
	h := testHandler()

	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed", `{"values":`, "invalid_request"},
		{"unknown field", `{"nope":1}`, "invalid_request"},
		{"empty values", `{"values":[]}`, "missing_value"},
		{"bad currency", `{"values":[1],"options":{"style":"currency","currency":"x"}}`, "bad_options"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/format", strings.NewReader(tt.body))
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if resp := decodeError(t, rec); resp.Error != tt.code {
				t.Errorf("error = %q, want %q", resp.Error, tt.code)
			}
		})
	}
}

func TestFormatRange(t *testing.T) {
	h := testHandler()

	rec := get(t, h, "/v1/range?lo=1000&hi=2000")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decodeFormat(t, rec)
	if got := resp.Formatted[0]; got != "1,000–2,000" {
		t.Errorf("range = %q, want 1,000–2,000", got)
	}

	rec = get(t, h, "/v1/range?lo=5&hi=2")
	if resp := decodeError(t, rec); resp.Error != "bad_range" {
		t.Errorf("error = %q, want bad_range", resp.Error)
	}

	rec = get(t, h, "/v1/range?lo=x&hi=2")
	if resp := decodeError(t, rec); resp.Error != "bad_value" {
		t.Errorf("error = %q, want bad_value", resp.Error)
	}
}

func TestLocales(t *testing.T) {
	rec := get(t, testHandler(), "/v1/locales")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	found := false
	for _, l := range resp["locales"] {
		if l == "en" {
			found = true
		}
	}
	if !found {
		t.Errorf("locales = %v, want en included", resp["locales"])
	}
}

func TestHealthz(t *testing.T) {
	rec := get(t, testHandler(), "/healthz")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("healthz = %d %s", rec.Code, rec.Body.String())
	}
}
