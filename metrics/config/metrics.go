package config

import (
	gometrics "github.com/rcrowley/go-metrics"

	mainConfig "github.com/edgee-cloud/didomi-component/config"
	"github.com/edgee-cloud/didomi-component/consent"
	"github.com/edgee-cloud/didomi-component/metrics"
	prometheusmetrics "github.com/edgee-cloud/didomi-component/metrics/prometheus"
)

// NewMetricsEngine reads the configuration and returns the appropriate metrics engine
// for this instance.
func NewMetricsEngine(cfg *mainConfig.Configuration) *DetailedMetricsEngine {
	engineList := make(MultiMetricsEngine, 0, 2)
	returnEngine := DetailedMetricsEngine{}

	if cfg.Metrics.GoMetrics.Enabled {
		returnEngine.GoMetrics = metrics.NewMetrics(gometrics.NewPrefixedRegistry(cfg.Metrics.GoMetrics.Prefix))
		engineList = append(engineList, returnEngine.GoMetrics)
	}
	if cfg.Metrics.Prometheus.Enabled {
		returnEngine.PrometheusMetrics = prometheusmetrics.NewMetrics(cfg.Metrics.Prometheus)
		engineList = append(engineList, returnEngine.PrometheusMetrics)
	}

	switch len(engineList) {
	case 0:
		returnEngine.MetricsEngine = metrics.NewNilMetricsEngine()
	case 1:
		returnEngine.MetricsEngine = engineList[0]
	default:
		returnEngine.MetricsEngine = &engineList
	}
	return &returnEngine
}

// DetailedMetricsEngine is a MultiMetricsEngine that preserves links to underlying metrics
// engines so the command can report them.
type DetailedMetricsEngine struct {
	metrics.MetricsEngine
	GoMetrics         *metrics.Metrics
	PrometheusMetrics *prometheusmetrics.Metrics
}

// MultiMetricsEngine logs metrics to multiple metrics databases.
type MultiMetricsEngine []metrics.MetricsEngine

// RecordConsentVerdict across all engines
func (me *MultiMetricsEngine) RecordConsentVerdict(verdict consent.Verdict) {
	for _, thisME := range *me {
		thisME.RecordConsentVerdict(verdict)
	}
}

// RecordConsentError across all engines
func (me *MultiMetricsEngine) RecordConsentError(reason metrics.ErrorReason) {
	for _, thisME := range *me {
		thisME.RecordConsentError(reason)
	}
}
