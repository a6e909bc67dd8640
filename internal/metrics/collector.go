package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/dragsim/internal/dynamo"
)

// Collector tracks engine and store activity on its own registry.
type Collector struct {
	registry    *prometheus.Registry
	evaluations prometheus.Counter
	evalErrors  *prometheus.CounterVec
	added       prometheus.Counter
	clears      prometheus.Counter
	records     prometheus.Gauge
	flightTime  prometheus.Histogram
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dragsim_evaluations_total",
			Help: "Trajectory evaluations attempted",
		}),
		evalErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dragsim_evaluation_errors_total",
				Help: "Failed trajectory evaluations by kind",
			},
			[]string{"kind"},
		),
		added: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dragsim_trajectories_added_total",
			Help: "Records appended to session stores",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dragsim_clears_total",
			Help: "Clear-all actions",
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dragsim_store_records",
			Help: "Records in the most recently updated store",
		}),
		flightTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dragsim_flight_time_seconds",
			Help:    "Flight time of trimmed trajectories",
			Buckets: prometheus.LinearBuckets(0, 5, 9),
		}),
	}

	c.registry.MustRegister(
		c.evaluations, c.evalErrors, c.added,
		c.clears, c.records, c.flightTime,
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// OnEvaluate implements sim.Observer.
func (c *Collector) OnEvaluate(p dynamo.Params, s dynamo.Series, err error) {
	c.evaluations.Inc()
	if err != nil {
		c.evalErrors.WithLabelValues(ErrorKind(err)).Inc()
		return
	}
	if n := s.Len(); n > 0 {
		c.flightTime.Observe(s.T[n-1])
	}
}

// RecordAppend counts one appended record; size is the store size after it.
func (c *Collector) RecordAppend(size int) {
	c.added.Inc()
	c.records.Set(float64(size))
}

func (c *Collector) RecordClear() {
	c.clears.Inc()
	c.records.Set(0)
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ErrorKind maps an evaluation error to its metric label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, dynamo.ErrInvalidParameter):
		return "invalid_parameter"
	case errors.Is(err, dynamo.ErrComputation):
		return "computation"
	case errors.Is(err, dynamo.ErrInvalidGrid):
		return "invalid_grid"
	default:
		return "other"
	}
}
