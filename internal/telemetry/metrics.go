// Package telemetry exposes a small Prometheus registry for the
// scheduling API, shaped after 99souls-ariadne's PrometheusProvider but
// trimmed to the handful of gauges/counters a scheduling service needs.
package telemetry

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder tracks simulation-run counts, durations, and the last observed
// CPU utilization per algorithm.
type Recorder struct {
	reg *prom.Registry

	simulationsTotal  *prom.CounterVec
	simulationSeconds *prom.HistogramVec
	cpuUtilization    *prom.GaugeVec
}

func NewRecorder() *Recorder {
	reg := prom.NewRegistry()

	r := &Recorder{
		reg: reg,
		simulationsTotal: prom.NewCounterVec(prom.CounterOpts{
			Name: "schedsim_simulations_total",
			Help: "Total number of completed simulation runs, by algorithm.",
		}, []string{"algorithm"}),
		simulationSeconds: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "schedsim_simulation_duration_seconds",
			Help:    "Wall-clock duration of a simulation run, by algorithm.",
			Buckets: prom.DefBuckets,
		}, []string{"algorithm"}),
		cpuUtilization: prom.NewGaugeVec(prom.GaugeOpts{
			Name: "schedsim_cpu_utilization",
			Help: "CPU utilization of the most recent run, by algorithm.",
		}, []string{"algorithm"}),
	}

	reg.MustRegister(r.simulationsTotal, r.simulationSeconds, r.cpuUtilization)
	return r
}

// Observe records one completed simulation run.
func (r *Recorder) Observe(algorithm string, seconds float64, cpuUtilization *float64) {
	r.simulationsTotal.WithLabelValues(algorithm).Inc()
	r.simulationSeconds.WithLabelValues(algorithm).Observe(seconds)
	if cpuUtilization != nil {
		r.cpuUtilization.WithLabelValues(algorithm).Set(*cpuUtilization)
	}
}

// Handler returns the /metrics HTTP handler for this registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
