// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thatcatcamp/stylelab/internal/apperrors"
)

var (
	metricSelectionsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stylelab",
		Name:      "selections_applied_total",
		Help:      "Number of selections resolved and applied.",
	})
	metricApplyFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stylelab",
		Name:      "apply_failures_total",
		Help:      "Number of selections whose tokens failed to apply.",
	})
	metricExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stylelab",
		Name:      "exports_total",
		Help:      "Exports served, by format.",
	}, []string{"format"})
	metricExportCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "stylelab",
		Name:      "export_cache_hits_total",
		Help:      "Exports served from the render cache.",
	})
)

func recordApply(err error) {
	switch {
	case err == nil:
		metricSelectionsApplied.Inc()
	case errors.Is(err, apperrors.ErrApply):
		metricApplyFailures.Inc()
	}
}

func recordExport(format string, cached bool) {
	metricExports.WithLabelValues(format).Inc()
	if cached {
		metricExportCacheHits.Inc()
	}
}

func metricsHandler() http.Handler {
	return promhttp.Handler()
}
