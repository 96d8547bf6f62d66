// Package dispatch turns detection candidates into deduplicated alerts
// and publishes the rolling state consumed by the HTTP API.
package dispatch

import (
	"fmt"
	"log"
	"sync"
	"time"

	"NetSentry/internal/config"
	"NetSentry/internal/engine/rules"
	"NetSentry/internal/metrics"
	"NetSentry/internal/model"
)

// Dispatcher is the single funnel for detections from the classifier and
// the rule engine. It applies the unknown-traffic override, buckets
// severity, suppresses repeats per (source IP, label) within the cooldown,
// maintains the bounded histories, and fans emitted alerts out to the
// configured sinks.
type Dispatcher struct {
	mu sync.Mutex

	cooldown          time.Duration
	trafficCap        int
	alertCap          int
	ruleConfidence    float64
	patternConfidence float64
	unknownThreshold  float64

	lastEmitted map[string]time.Time
	traffic     []model.TrafficSample
	alerts      []model.Alert
	stats       model.SnapshotStats

	snap  atomicSnapshot
	sinks []model.AlertSink
}

// New builds a dispatcher. The unknown threshold comes from the
// classifier config: verdicts below it are demoted to Unknown-Traffic
// before any alerting decision.
func New(cfg *config.DispatcherConfig, unknownThreshold float64, sinks ...model.AlertSink) (*Dispatcher, error) {
	cooldown, err := time.ParseDuration(cfg.Cooldown)
	if err != nil {
		return nil, fmt.Errorf("invalid dispatcher cooldown: %w", err)
	}

	d := &Dispatcher{
		cooldown:          cooldown,
		trafficCap:        cfg.TrafficHistory,
		alertCap:          cfg.AlertHistory,
		ruleConfidence:    cfg.RuleConfidence,
		patternConfidence: cfg.PatternConfidence,
		unknownThreshold:  unknownThreshold,
		lastEmitted:       make(map[string]time.Time),
		sinks:             sinks,
	}
	d.publishLocked()
	return d, nil
}

// SubmitClassification records one classified flow: it always joins the
// traffic history, and attack verdicts additionally go through alerting.
func (d *Dispatcher) SubmitClassification(c model.ClassifierCandidate) {
	d.mu.Lock()
	defer d.mu.Unlock()

	label := c.Result.Label
	confidence := c.Result.Confidence
	if label != model.LabelUnclassified && confidence < d.unknownThreshold {
		label = model.LabelUnknown
	}
	if label == model.LabelUnclassified {
		d.stats.Unclassified++
	}

	isAttack := label != model.LabelBenign && label != model.LabelUnclassified

	d.traffic = appendBounded(d.traffic, model.TrafficSample{
		Timestamp:  c.Flow.EndTime,
		Label:      label,
		Confidence: confidence,
		IsAttack:   isAttack,
		FwdPackets: c.Flow.FwdPackets,
		BwdPackets: c.Flow.BwdPackets,
		Bytes:      c.Flow.FwdBytes + c.Flow.BwdBytes,
		DstPort:    c.Flow.DstPort,
		DurationS:  c.Flow.Duration().Seconds(),
	}, d.trafficCap)

	if isAttack {
		d.emitLocked(model.Alert{
			Timestamp:  c.Flow.EndTime,
			SrcIP:      c.Flow.SrcIP.String(),
			SrcPort:    c.Flow.SrcPort,
			DstIP:      c.Flow.DstIP.String(),
			DstPort:    c.Flow.DstPort,
			Label:      label,
			Confidence: confidence,
			Method:     model.MethodClassifier,
			Severity:   severityFor(confidence),
			Packets:    c.Flow.FwdPackets + c.Flow.BwdPackets,
			Bytes:      c.Flow.FwdBytes + c.Flow.BwdBytes,
		})
	}

	d.publishLocked()
}

// SubmitRule records one rule engine firing. Pattern matches carry a
// higher fixed confidence than windowed counters.
func (d *Dispatcher) SubmitRule(c model.RuleCandidate) {
	d.mu.Lock()
	defer d.mu.Unlock()

	confidence := d.ruleConfidence
	if rules.IsPatternLabel(c.Label) {
		confidence = d.patternConfidence
	}

	d.emitLocked(model.Alert{
		Timestamp:  c.Timestamp,
		SrcIP:      c.SrcIP.String(),
		DstIP:      c.DstIP.String(),
		DstPort:    c.DstPort,
		Label:      c.Label,
		Confidence: confidence,
		Method:     model.MethodRule,
		Severity:   severityFor(confidence),
		Packets:    c.Packets,
		Bytes:      c.Bytes,
	})

	d.publishLocked()
}

// emitLocked applies the cooldown and, if the alert survives, appends it
// to the history and offers it to every sink. Caller holds d.mu.
// The cooldown key deliberately excludes the source port: multi-flow
// attacks cycle ephemeral ports, and a rule firing must share its key
// with the classifier verdict for the same attacker.
func (d *Dispatcher) emitLocked(a model.Alert) {
	key := a.SrcIP + "|" + a.Label
	if last, ok := d.lastEmitted[key]; ok && a.Timestamp.Sub(last) < d.cooldown {
		d.stats.AlertsSuppressed++
		metrics.AlertsSuppressed.Inc()
		return
	}
	d.lastEmitted[key] = a.Timestamp

	d.alerts = appendBounded(d.alerts, a, d.alertCap)
	d.stats.AlertsEmitted++
	metrics.AlertsEmitted.Inc()

	for _, sink := range d.sinks {
		if err := sink.Offer(&a); err != nil {
			log.Printf("Alert sink rejected alert: %v", err)
		}
	}
}

// FlowExported bumps the exported-flow counter in the published stats.
func (d *Dispatcher) FlowExported() {
	d.mu.Lock()
	d.stats.FlowsExported++
	d.publishLocked()
	d.mu.Unlock()
}

// Close closes every sink.
func (d *Dispatcher) Close() error {
	var firstErr error
	for _, sink := range d.sinks {
		if err := sink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// severityFor buckets a confidence value.
func severityFor(confidence float64) model.Severity {
	switch {
	case confidence >= 0.95:
		return model.SeverityCritical
	case confidence >= 0.85:
		return model.SeverityHigh
	case confidence >= 0.75:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// appendBounded appends keeping at most cap entries, dropping the oldest.
func appendBounded[T any](s []T, v T, capacity int) []T {
	s = append(s, v)
	if capacity > 0 && len(s) > capacity {
		s = s[len(s)-capacity:]
	}
	return s
}
