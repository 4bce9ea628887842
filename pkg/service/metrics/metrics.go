package metrics

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
)

const namespace = "qmsboard"

// Collector holds the Prometheus registry and the risk register metrics
type Collector struct {
	registry       *prometheus.Registry
	risksByLevel   *prometheus.GaugeVec
	cellSelections *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
}

// New creates a Collector with Go runtime and process collectors registered
func New() (*Collector, error) {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		risksByLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "risks",
			Help:      "Number of registered risks per risk level.",
		}, []string{"level"}),
		cellSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matrix_cell_selections_total",
			Help:      "Number of risk matrix cell selections.",
		}, []string{"likelihood", "severity"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
	}

	for _, col := range []prometheus.Collector{
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
		c.risksByLevel,
		c.cellSelections,
		c.httpRequests,
	} {
		if err := c.registry.Register(col); err != nil {
			return nil, goerr.Wrap(err, "failed to register metric collector")
		}
	}

	for _, level := range types.RiskLevels() {
		c.risksByLevel.WithLabelValues(string(level)).Set(0)
	}

	return c, nil
}

// ObserveMatrix sets the per-level gauge from the matrix
func (c *Collector) ObserveMatrix(matrix *model.RiskMatrix) {
	if matrix == nil {
		return
	}
	for level, n := range matrix.LevelCounts() {
		c.risksByLevel.WithLabelValues(string(level)).Set(float64(n))
	}
}

// CellSelected counts a matrix cell selection. It has the signature of
// model.CellSelectedFunc.
func (c *Collector) CellSelected(likelihood types.Likelihood, severity types.Severity, _ []*model.Risk) {
	c.cellSelections.WithLabelValues(string(likelihood), string(severity)).Inc()
}

// ObserveRequest counts a served HTTP request
func (c *Collector) ObserveRequest(method, route string, code int) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// RisksGauge returns the gauge of a risk level
func (c *Collector) RisksGauge(level types.RiskLevel) prometheus.Gauge {
	return c.risksByLevel.WithLabelValues(string(level))
}

// SelectionCounter returns the selection counter of a cell
func (c *Collector) SelectionCounter(likelihood types.Likelihood, severity types.Severity) prometheus.Counter {
	return c.cellSelections.WithLabelValues(string(likelihood), string(severity))
}

// Registry returns the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
