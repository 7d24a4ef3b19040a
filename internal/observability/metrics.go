package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// EvaluationsTotal counts finished affordability evaluations by selected
// product and viability outcome.
var EvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "habitalibre_evaluations_total",
	Help: "Affordability evaluations by selected product and viability.",
}, []string{"product", "viable"})

// InitMetrics initializes the Prometheus metrics exporter. Returns the
// MeterProvider and the HTTP handler for the /metrics endpoint.
func InitMetrics() (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return provider, promhttp.Handler(), nil
}
