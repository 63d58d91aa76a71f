// internal/api/api.go
package api

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/cybanjar/intl-formatter/config"
	"github.com/cybanjar/intl-formatter/httputil"
	"github.com/cybanjar/intl-formatter/locale"
	"github.com/cybanjar/intl-formatter/metrics"
	"github.com/cybanjar/intl-formatter/numfmt"
)

// Handler builds the numfmtd HTTP surface:
//
//	GET  /v1/format   query-driven single-value formatting
//	POST /v1/format   JSON body with full option control
//	GET  /v1/range    range formatting
//	GET  /v1/locales  locales with built-in data
//	GET  /healthz     liveness
//	GET  /metrics     Prometheus metrics
func Handler(cfg *config.FormatterConfig, logger *zap.Logger) http.Handler {
	h := &handlers{cfg: cfg, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/format", h.formatQuery)
	mux.HandleFunc("POST /v1/format", h.formatBody)
	mux.HandleFunc("GET /v1/range", h.formatRange)
	mux.HandleFunc("GET /v1/locales", h.locales)
	mux.HandleFunc("GET /healthz", h.healthz)
	mux.Handle("GET /metrics", metrics.Handler())
	return mux
}

type handlers struct {
	cfg    *config.FormatterConfig
	logger *zap.Logger
}

// formatResponse is the envelope for format and range responses.
type formatResponse struct {
	Locale       string   `json:"locale"`
	Formatted    []string `json:"formatted"`
	Degradations []string `json:"degradations,omitempty"`
}

// optionsPayload mirrors the formatter options for JSON requests. Pointer
// digit fields keep "absent" distinct from zero.
type optionsPayload struct {
	Style           string `json:"style,omitempty"`
	Notation        string `json:"notation,omitempty"`
	CompactDisplay  string `json:"compactDisplay,omitempty"`
	Currency        string `json:"currency,omitempty"`
	CurrencyDisplay string `json:"currencyDisplay,omitempty"`
	Unit            string `json:"unit,omitempty"`
	UnitDisplay     string `json:"unitDisplay,omitempty"`
	Pattern         string `json:"pattern,omitempty"`

	MinIntegerDigits     *int `json:"minIntegerDigits,omitempty"`
	MinFractionDigits    *int `json:"minFractionDigits,omitempty"`
	MaxFractionDigits    *int `json:"maxFractionDigits,omitempty"`
	MinSignificantDigits *int `json:"minSignificantDigits,omitempty"`
	MaxSignificantDigits *int `json:"maxSignificantDigits,omitempty"`

	UseGrouping  *bool  `json:"useGrouping,omitempty"`
	SignDisplay  string `json:"signDisplay,omitempty"`
	RoundingMode string `json:"roundingMode,omitempty"`
}

func (p optionsPayload) options() numfmt.Options {
	return numfmt.Options{
		Style:                numfmt.Style(p.Style),
		Notation:             numfmt.Notation(p.Notation),
		CompactDisplay:       numfmt.CompactDisplay(p.CompactDisplay),
		Currency:             p.Currency,
		CurrencyDisplay:      numfmt.CurrencyDisplay(p.CurrencyDisplay),
		Unit:                 p.Unit,
		UnitDisplay:          numfmt.UnitDisplay(p.UnitDisplay),
		Pattern:              p.Pattern,
		MinIntegerDigits:     p.MinIntegerDigits,
		MinFractionDigits:    p.MinFractionDigits,
		MaxFractionDigits:    p.MaxFractionDigits,
		MinSignificantDigits: p.MinSignificantDigits,
		MaxSignificantDigits: p.MaxSignificantDigits,
		UseGrouping:          p.UseGrouping,
		SignDisplay:          numfmt.SignDisplay(p.SignDisplay),
		RoundingMode:         numfmt.RoundingMode(p.RoundingMode),
	}
}

// formatRequest is the POST /v1/format body.
type formatRequest struct {
	Values  []float64      `json:"values"`
	Locale  string         `json:"locale,omitempty"`
	Options optionsPayload `json:"options,omitempty"`
}

func (h *handlers) formatQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	values := q["value"]
	if len(values) == 0 {
		httputil.JSONError(w, http.StatusBadRequest, "missing_value", "at least one value parameter is required")
		return
	}

	f, err := h.formatter(queryLocale(q.Get("locale"), h.cfg), queryOptions(q))
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "bad_options", err.Error())
		return
	}

	out := make([]string, 0, len(values))
	for _, raw := range values {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httputil.JSONError(w, http.StatusBadRequest, "bad_value", "not a number: "+raw)
			return
		}
		out = append(out, f.Format(v))
	}

	httputil.WriteJSON(w, http.StatusOK, formatResponse{
		Locale:       f.Locale(),
		Formatted:    out,
		Degradations: f.Degradations(),
	})
}

func (h *handlers) formatBody(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if err := httputil.BindJSON(r, &req); err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if len(req.Values) == 0 {
		httputil.JSONError(w, http.StatusBadRequest, "missing_value", "values must not be empty")
		return
	}

	f, err := h.formatter(queryLocale(req.Locale, h.cfg), req.Options.options())
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "bad_options", err.Error())
		return
	}

	out := make([]string, 0, len(req.Values))
	for _, v := range req.Values {
		out = append(out, f.Format(v))
	}

	httputil.WriteJSON(w, http.StatusOK, formatResponse{
		Locale:       f.Locale(),
		Formatted:    out,
		Degradations: f.Degradations(),
	})
}

func (h *handlers) formatRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lo, err := strconv.ParseFloat(q.Get("lo"), 64)
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "bad_value", "lo must be a number")
		return
	}
	hi, err := strconv.ParseFloat(q.Get("hi"), 64)
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "bad_value", "hi must be a number")
		return
	}

	f, err := h.formatter(queryLocale(q.Get("locale"), h.cfg), queryOptions(q))
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "bad_options", err.Error())
		return
	}

	out, err := f.FormatRange(lo, hi)
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "bad_range", err.Error())
		return
	}

	httputil.WriteJSON(w, http.StatusOK, formatResponse{
		Locale:       f.Locale(),
		Formatted:    []string{out},
		Degradations: f.Degradations(),
	})
}

func (h *handlers) locales(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string][]string{"locales": locale.Supported()})
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// formatter layers the request options over the configured service defaults
// and pulls a pooled instance.
func (h *handlers) formatter(loc string, over numfmt.Options) (*numfmt.Formatter, error) {
	return numfmt.Get(loc, numfmt.Merge(h.cfg.Options(), over))
}

func queryLocale(loc string, cfg *config.FormatterConfig) string {
	if loc != "" {
		return loc
	}
	return cfg.Defaults.Locale
}

// queryOptions maps query parameters onto formatter options. Absent
// parameters stay unset so configured defaults apply.
func queryOptions(q map[string][]string) numfmt.Options {
	get := func(key string) string {
		if vs := q[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	opts := numfmt.Options{
		Style:           numfmt.Style(get("style")),
		Notation:        numfmt.Notation(get("notation")),
		CompactDisplay:  numfmt.CompactDisplay(get("compactDisplay")),
		Currency:        get("currency"),
		CurrencyDisplay: numfmt.CurrencyDisplay(get("currencyDisplay")),
		Unit:            get("unit"),
		UnitDisplay:     numfmt.UnitDisplay(get("unitDisplay")),
		Pattern:         get("pattern"),
		SignDisplay:     numfmt.SignDisplay(get("signDisplay")),
		RoundingMode:    numfmt.RoundingMode(get("roundingMode")),
	}

	digit := func(key string) *int {
		s := get(key)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return numfmt.Int(n)
	}
	opts.MinIntegerDigits = digit("minIntegerDigits")
	opts.MinFractionDigits = digit("minFractionDigits")
	opts.MaxFractionDigits = digit("maxFractionDigits")
	opts.MinSignificantDigits = digit("minSignificantDigits")
	opts.MaxSignificantDigits = digit("maxSignificantDigits")

	if s := get("useGrouping"); s != "" {
		b, err := strconv.ParseBool(s)
		if err == nil {
			opts.UseGrouping = numfmt.Bool(b)
		}
	}

	return opts
}
