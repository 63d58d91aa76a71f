// metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// formatsTotal counts format operations, labeled by the resolved style and
// notation.
var formatsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "numfmt_formats_total",
		Help: "Number of format operations.",
	},
	[]string{"style", "notation"},
)

// fallbacksTotal counts format operations served by a manual fallback
// branch instead of the native formatting primitive, labeled by feature
// (compact, scientific, rounding, sign, unit, currency, pattern, range).
var fallbacksTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "numfmt_fallbacks_total",
		Help: "Number of format operations served by a fallback branch.",
	},
	[]string{"feature"},
)

// RegisterDefault registers the default Go runtime and process collectors
// plus the formatter counters. It is safe (and intended) to call this once
// at startup.
//
// Registration failures other than AlreadyRegisteredError are fatal so
// configuration errors surface early rather than being silently ignored.
func RegisterDefault(logger *zap.Logger) {
	mustRegister(logger, "Go collector", collectors.NewGoCollector())
	mustRegister(logger, "process collector", collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mustRegister(logger, "formats counter", formatsTotal)
	mustRegister(logger, "fallbacks counter", fallbacksTotal)
}

// mustRegister attempts to register a Prometheus collector. Already
// registered is fine (tests, repeated RegisterDefault calls); anything else
// logs fatal, or panics if no logger is available.
func mustRegister(logger *zap.Logger, name string, c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return
		}
		if logger != nil {
			logger.Fatal("failed to register "+name, zap.Error(err))
		} else {
			panic("metrics: failed to register " + name + ": " + err.Error())
		}
	}
}

// Recorder feeds formatter telemetry into the Prometheus counters. Install
// it on a Formatter with SetObserver.
type Recorder struct{}

func (Recorder) ObserveFormat(style, notation string) {
	formatsTotal.WithLabelValues(style, notation).Inc()
}

func (Recorder) ObserveFallback(feature string) {
	fallbacksTotal.WithLabelValues(feature).Inc()
}

// Handler returns an http.Handler that exposes the Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
