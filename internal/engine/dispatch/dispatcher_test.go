package dispatch

import (
	"net"
	"testing"
	"time"

	"NetSentry/internal/config"
	"NetSentry/internal/engine/rules"
	"NetSentry/internal/model"
)

type captureSink struct {
	alerts []model.Alert
	closed bool
}

func (s *captureSink) Offer(a *model.Alert) error { s.alerts = append(s.alerts, *a); return nil }
func (s *captureSink) Close() error               { s.closed = true; return nil }

func newTestDispatcher(t *testing.T, sinks ...model.AlertSink) *Dispatcher {
	t.Helper()
	cfg := config.Default()
	d, err := New(&cfg.Dispatcher, cfg.Classifier.UnknownThreshold, sinks...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return d
}

func attackCandidate(ts time.Time, label string, confidence float64) model.ClassifierCandidate {
	return model.ClassifierCandidate{
		Flow: model.FlowSummary{
			SrcIP:      net.ParseIP("192.168.1.50"),
			DstIP:      net.ParseIP("10.0.0.1"),
			SrcPort:    40000,
			DstPort:    80,
			Protocol:   6,
			StartTime:  ts.Add(-time.Second),
			EndTime:    ts,
			FwdPackets: 10,
			BwdPackets: 8,
			FwdBytes:   1500,
			BwdBytes:   900,
		},
		Result: model.ClassificationResult{Label: label, Confidence: confidence},
	}
}

func TestCooldownSuppressesRepeats(t *testing.T) {
	d := newTestDispatcher(t)
	base := time.Now()

	d.SubmitClassification(attackCandidate(base, "DDoS", 0.97))
	d.SubmitClassification(attackCandidate(base.Add(5*time.Second), "DDoS", 0.97))
	d.SubmitClassification(attackCandidate(base.Add(29*time.Second), "DDoS", 0.97))

	snap := d.Snapshot()
	if len(snap.Alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(snap.Alerts))
	}
	if snap.Stats.AlertsEmitted != 1 || snap.Stats.AlertsSuppressed != 2 {
		t.Errorf("stats = %+v, want 1 emitted / 2 suppressed", snap.Stats)
	}

	// After the cooldown elapses the same (source, label) emits again.
	d.SubmitClassification(attackCandidate(base.Add(31*time.Second), "DDoS", 0.97))
	if got := len(d.Snapshot().Alerts); got != 2 {
		t.Errorf("expected 2 alerts after cooldown, got %d", got)
	}
}

func TestCooldownIsPerSourceAndLabel(t *testing.T) {
	d := newTestDispatcher(t)
	base := time.Now()

	d.SubmitClassification(attackCandidate(base, "DDoS", 0.97))

	other := attackCandidate(base, "DDoS", 0.97)
	other.Flow.SrcIP = net.ParseIP("192.168.1.51")
	d.SubmitClassification(other)

	// Same source, different label.
	d.SubmitClassification(attackCandidate(base, "PortScan", 0.97))

	if got := len(d.Snapshot().Alerts); got != 3 {
		t.Errorf("expected 3 alerts, got %d", got)
	}
}

func TestCooldownIgnoresEphemeralSourcePort(t *testing.T) {
	d := newTestDispatcher(t)
	base := time.Now()

	// A scan produces many short flows from the same source IP, each
	// with a fresh ephemeral port. They are one attack, not twelve.
	for i := 0; i < 12; i++ {
		c := attackCandidate(base.Add(time.Duration(i)*time.Second), "PortScan", 0.97)
		c.Flow.SrcPort = uint16(49000 + i)
		d.SubmitClassification(c)
	}

	snap := d.Snapshot()
	if len(snap.Alerts) != 1 {
		t.Fatalf("expected 1 alert for 12 flows from one source, got %d", len(snap.Alerts))
	}
	if snap.Stats.AlertsSuppressed != 11 {
		t.Errorf("suppressed = %d, want 11", snap.Stats.AlertsSuppressed)
	}

	// A rule firing for the same attacker and label lands on the same
	// cooldown key as the classifier verdicts.
	d.SubmitRule(model.RuleCandidate{
		Timestamp: base.Add(15 * time.Second),
		SrcIP:     net.ParseIP("192.168.1.50"),
		DstIP:     net.ParseIP("10.0.0.1"),
		DstPort:   80,
		Label:     "PortScan",
	})
	if got := len(d.Snapshot().Alerts); got != 1 {
		t.Errorf("rule firing bypassed the classifier's cooldown: %d alerts", got)
	}
}

func TestUnknownOverride(t *testing.T) {
	d := newTestDispatcher(t)

	d.SubmitClassification(attackCandidate(time.Now(), "Bot", 0.40))

	snap := d.Snapshot()
	if len(snap.Traffic) != 1 || snap.Traffic[0].Label != model.LabelUnknown {
		t.Fatalf("expected traffic label %q, got %+v", model.LabelUnknown, snap.Traffic)
	}
	if len(snap.Alerts) != 1 || snap.Alerts[0].Label != model.LabelUnknown {
		t.Fatalf("expected alert label %q, got %+v", model.LabelUnknown, snap.Alerts)
	}
	if snap.Alerts[0].Severity != model.SeverityLow {
		t.Errorf("expected low severity, got %q", snap.Alerts[0].Severity)
	}
}

func TestBenignEmitsNoAlert(t *testing.T) {
	d := newTestDispatcher(t)

	d.SubmitClassification(attackCandidate(time.Now(), model.LabelBenign, 0.99))

	snap := d.Snapshot()
	if len(snap.Traffic) != 1 {
		t.Fatalf("benign flow missing from traffic history")
	}
	if snap.Traffic[0].IsAttack {
		t.Error("benign sample marked as attack")
	}
	if len(snap.Alerts) != 0 {
		t.Errorf("benign flow produced %d alerts", len(snap.Alerts))
	}
}

func TestUnclassifiedCountedNotAlerted(t *testing.T) {
	d := newTestDispatcher(t)

	d.SubmitClassification(attackCandidate(time.Now(), model.LabelUnclassified, 0))

	snap := d.Snapshot()
	if snap.Stats.Unclassified != 1 {
		t.Errorf("expected unclassified counted, stats = %+v", snap.Stats)
	}
	if len(snap.Alerts) != 0 {
		t.Errorf("unclassified flow produced %d alerts", len(snap.Alerts))
	}
}

func TestSeverityBuckets(t *testing.T) {
	cases := []struct {
		confidence float64
		want       model.Severity
	}{
		{0.99, model.SeverityCritical},
		{0.95, model.SeverityCritical},
		{0.90, model.SeverityHigh},
		{0.80, model.SeverityMedium},
		{0.75, model.SeverityMedium},
		{0.70, model.SeverityLow},
	}
	for _, c := range cases {
		if got := severityFor(c.confidence); got != c.want {
			t.Errorf("severityFor(%v) = %q, want %q", c.confidence, got, c.want)
		}
	}
}

func TestRuleConfidenceAssignment(t *testing.T) {
	d := newTestDispatcher(t)
	base := time.Now()

	d.SubmitRule(model.RuleCandidate{
		Timestamp: base,
		SrcIP:     net.ParseIP("192.168.1.50"),
		DstIP:     net.ParseIP("10.0.0.1"),
		DstPort:   22,
		Label:     rules.LabelSSHBruteForce,
	})
	d.SubmitRule(model.RuleCandidate{
		Timestamp: base,
		SrcIP:     net.ParseIP("192.168.1.51"),
		DstIP:     net.ParseIP("10.0.0.1"),
		DstPort:   80,
		Label:     rules.LabelSQLInjection,
	})

	snap := d.Snapshot()
	if len(snap.Alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(snap.Alerts))
	}
	if snap.Alerts[0].Confidence != 0.90 || snap.Alerts[0].Severity != model.SeverityHigh {
		t.Errorf("windowed rule alert = %+v, want confidence 0.90 / high", snap.Alerts[0])
	}
	if snap.Alerts[1].Confidence != 0.95 || snap.Alerts[1].Severity != model.SeverityCritical {
		t.Errorf("pattern alert = %+v, want confidence 0.95 / critical", snap.Alerts[1])
	}
}

func TestHistoriesAreBounded(t *testing.T) {
	cfg := config.Default()
	cfg.Dispatcher.TrafficHistory = 5
	cfg.Dispatcher.AlertHistory = 3
	cfg.Dispatcher.Cooldown = "0s"
	d, err := New(&cfg.Dispatcher, cfg.Classifier.UnknownThreshold)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	base := time.Now()
	for i := 0; i < 10; i++ {
		d.SubmitClassification(attackCandidate(base.Add(time.Duration(i)*time.Second), "DDoS", 0.97))
	}

	snap := d.Snapshot()
	if len(snap.Traffic) != 5 {
		t.Errorf("traffic history length = %d, want 5", len(snap.Traffic))
	}
	if len(snap.Alerts) != 3 {
		t.Errorf("alert history length = %d, want 3", len(snap.Alerts))
	}
	// The retained entries are the most recent, still in order.
	if !snap.Alerts[0].Timestamp.Before(snap.Alerts[2].Timestamp) {
		t.Error("alert history lost chronological order")
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	d := newTestDispatcher(t)
	base := time.Now()

	d.SubmitClassification(attackCandidate(base, "DDoS", 0.97))
	old := d.Snapshot()

	c := attackCandidate(base, "PortScan", 0.97)
	d.SubmitClassification(c)

	if len(old.Alerts) != 1 || len(old.Traffic) != 1 {
		t.Error("previously returned snapshot changed after a later submit")
	}
	if got := d.Snapshot(); len(got.Alerts) != 2 {
		t.Errorf("new snapshot has %d alerts, want 2", len(got.Alerts))
	}
}

func TestSinkFanOut(t *testing.T) {
	sink := &captureSink{}
	d := newTestDispatcher(t, sink)

	d.SubmitClassification(attackCandidate(time.Now(), "DDoS", 0.97))
	if len(sink.alerts) != 1 {
		t.Fatalf("sink received %d alerts, want 1", len(sink.alerts))
	}

	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !sink.closed {
		t.Error("sink not closed")
	}
}
