package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageDuration *prom.HistogramVec
	stageResults  *prom.CounterVec
	runDuration   prom.Histogram
	runOutcome    *prom.CounterVec
	entries       prom.Gauge
	packages      prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "hidldoc",
			Name:      "index_stage_duration_seconds",
			Help:      "Duration of index generation stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "hidldoc",
			Name:      "index_stage_results_total",
			Help:      "Index stage result counts by outcome",
		}, []string{"stage", "result"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "hidldoc",
			Name:      "index_run_duration_seconds",
			Help:      "Total index generation duration",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "hidldoc",
			Name:      "index_runs_total",
			Help:      "Index generation runs by final outcome",
		}, []string{"result"}),
		entries: prom.NewGauge(prom.GaugeOpts{
			Namespace: "hidldoc",
			Name:      "index_entries",
			Help:      "Entries in the last generated index",
		}),
		packages: prom.NewGauge(prom.GaugeOpts{
			Namespace: "hidldoc",
			Name:      "index_packages",
			Help:      "Packages in the last generated table of contents",
		}),
	}
	reg.MustRegister(pr.stageDuration, pr.stageResults, pr.runDuration, pr.runOutcome, pr.entries, pr.packages)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(result ResultLabel) {
	p.runOutcome.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) SetIndexSize(entries, packages int) {
	p.entries.Set(float64(entries))
	p.packages.Set(float64(packages))
}
