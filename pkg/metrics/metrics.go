// Package metrics defines the Prometheus instruments shared by the
// monitor, the pipeline and the LMS client. Everything is registered on
// the default registry and served by the API's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LMSLogins counts successful token logins against the LMS.
	LMSLogins = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "simwatch",
		Subsystem: "lms",
		Name:      "logins_total",
		Help:      "Successful logins against the LMS token endpoint.",
	})

	// LMSRequests counts web service calls by function name.
	LMSRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simwatch",
		Subsystem: "lms",
		Name:      "requests_total",
		Help:      "Web service calls issued to the LMS, by wsfunction.",
	}, []string{"wsfunction"})

	// TierRefreshes counts completed cache refreshes by tier
	// (courses, assignments, submissions_deadline, submissions_active).
	TierRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simwatch",
		Subsystem: "monitor",
		Name:      "tier_refreshes_total",
		Help:      "Completed cache refreshes, by tier.",
	}, []string{"tier"})

	// TierErrors counts failed refresh attempts by tier.
	TierErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simwatch",
		Subsystem: "monitor",
		Name:      "tier_errors_total",
		Help:      "Failed cache refresh attempts, by tier.",
	}, []string{"tier"})

	// FilesDigested counts files for which extraction produced a result
	// (including recorded-empty digests).
	FilesDigested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "simwatch",
		Subsystem: "pipeline",
		Name:      "files_digested_total",
		Help:      "Files processed by the extraction flow.",
	})

	// DownloadFailures counts files dropped from a batch because the
	// download failed. They are retried on the next cycle.
	DownloadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "simwatch",
		Subsystem: "pipeline",
		Name:      "download_failures_total",
		Help:      "File downloads that failed and were dropped from their batch.",
	})

	// ComparisonsStored counts persisted comparison rows.
	ComparisonsStored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "simwatch",
		Subsystem: "pipeline",
		Name:      "comparisons_stored_total",
		Help:      "Similarity scores persisted by the comparison flow.",
	})

	// PluginFailures counts extractor/comparer calls that returned an
	// error, by plugin kind.
	PluginFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simwatch",
		Subsystem: "pipeline",
		Name:      "plugin_failures_total",
		Help:      "Extractor and comparer invocations that failed, by kind.",
	}, []string{"kind"})

	// CycleErrors counts pipeline cycles that ended with an error.
	CycleErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "simwatch",
		Subsystem: "pipeline",
		Name:      "cycle_errors_total",
		Help:      "Pipeline cycles aborted by an error.",
	})
)
