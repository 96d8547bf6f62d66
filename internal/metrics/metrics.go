// Package metrics exposes the engine's operational counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PacketsProcessed counts packets accepted into the pipeline.
	PacketsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netsentry_packets_processed_total",
		Help: "Packets accepted into the ingestion pipeline.",
	})

	// PacketsMalformed counts packets dropped because their headers
	// could not be parsed.
	PacketsMalformed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netsentry_packets_malformed_total",
		Help: "Packets dropped due to unparseable headers.",
	})

	// FlowsExported counts flows closed and handed to feature extraction.
	FlowsExported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netsentry_flows_exported_total",
		Help: "Flows closed and exported for classification.",
	})

	// ClassifierMisses counts flows recorded unclassified because the
	// classifier errored or exceeded its call budget.
	ClassifierMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netsentry_classifier_misses_total",
		Help: "Flows left unclassified after a classifier error or timeout.",
	})

	// AlertsEmitted counts alerts published to the snapshot.
	AlertsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netsentry_alerts_emitted_total",
		Help: "Alerts emitted after dedup.",
	})

	// AlertsSuppressed counts candidates absorbed by the cooldown.
	AlertsSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netsentry_alerts_suppressed_total",
		Help: "Alert candidates suppressed by the per-(source,label) cooldown.",
	})

	// RuleFirings counts raw rule engine detections before dedup,
	// labeled by rule.
	RuleFirings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netsentry_rule_firings_total",
		Help: "Signature rule firings before dispatcher dedup.",
	}, []string{"rule"})
)
