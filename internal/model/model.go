package model

import (
	"fmt"
	"net"
	"time"
)

// FiveTuple represents the 5-tuple of a network packet.
type FiveTuple struct {
	SrcIP    net.IP
	DstIP    net.IP
	SrcPort  uint16
	DstPort  uint16
	Protocol uint8
}

// TCP flag bits, matching their on-the-wire positions.
const (
	FlagFIN uint8 = 1 << iota
	FlagSYN
	FlagRST
	FlagPSH
	FlagACK
	FlagURG
)

// PacketInfo holds the metadata extracted from a single packet.
// Payload references the captured application bytes and may be empty.
type PacketInfo struct {
	Timestamp time.Time
	FiveTuple FiveTuple
	Length    int
	TCPFlags  uint8
	HeaderLen int
	Window    uint16
	Payload   []byte
}

// ClassificationResult is the verdict returned by a statistical classifier
// for one flow feature vector. Confidence is in [0, 1].
type ClassificationResult struct {
	Label      string
	Confidence float64
}

// LabelBenign is the classifier's non-attack class.
const LabelBenign = "BENIGN"

// LabelUnknown is the sentinel label applied when classifier confidence
// falls below the configured unknown threshold.
const LabelUnknown = "Unknown-Traffic"

// LabelUnclassified marks flows whose classification did not complete
// within the call budget.
const LabelUnclassified = "Unclassified"

// DetectionMethod records which mechanism produced an alert.
type DetectionMethod string

const (
	MethodClassifier DetectionMethod = "classifier"
	MethodRule       DetectionMethod = "rule"
	MethodHybrid     DetectionMethod = "hybrid"
)

// Severity buckets an alert by classifier confidence.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// FlowSummary is the exported identity and totals of a closed flow,
// detached from the flow table's internal state.
type FlowSummary struct {
	SrcIP      net.IP
	DstIP      net.IP
	SrcPort    uint16
	DstPort    uint16
	Protocol   uint8
	StartTime  time.Time
	EndTime    time.Time
	FwdPackets uint64
	BwdPackets uint64
	FwdBytes   uint64
	BwdBytes   uint64
}

// Duration returns the flow's wall-clock length.
func (s FlowSummary) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// ClassifierCandidate is a classification result bound to its flow,
// submitted to the alert dispatcher.
type ClassifierCandidate struct {
	Flow   FlowSummary
	Result ClassificationResult
}

// RuleCandidate is a signature rule firing, submitted to the alert
// dispatcher. Confidence is the fixed confidence assigned to the rule.
type RuleCandidate struct {
	Timestamp  time.Time
	SrcIP      net.IP
	DstIP      net.IP
	DstPort    uint16
	Label      string
	Confidence float64
	Packets    uint64
	Bytes      uint64
}

// Alert is an emitted detection. Immutable once created.
type Alert struct {
	Timestamp  time.Time       `json:"timestamp"`
	SrcIP      string          `json:"src_ip"`
	SrcPort    uint16          `json:"src_port"`
	DstIP      string          `json:"dst_ip"`
	DstPort    uint16          `json:"dst_port"`
	Label      string          `json:"label"`
	Confidence float64         `json:"confidence"`
	Method     DetectionMethod `json:"method"`
	Severity   Severity        `json:"severity"`
	Packets    uint64          `json:"packets"`
	Bytes      uint64          `json:"bytes"`
}

// Source returns the alert's source endpoint as "ip:port".
func (a *Alert) Source() string {
	return fmt.Sprintf("%s:%d", a.SrcIP, a.SrcPort)
}

// TrafficSample is one classified flow's contribution to the rolling
// traffic history consumed by the dashboard.
type TrafficSample struct {
	Timestamp  time.Time `json:"timestamp"`
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	IsAttack   bool      `json:"is_attack"`
	FwdPackets uint64    `json:"fwd_packets"`
	BwdPackets uint64    `json:"bwd_packets"`
	Bytes      uint64    `json:"bytes"`
	DstPort    uint16    `json:"dst_port"`
	DurationS  float64   `json:"duration"`
}

// SnapshotStats are running totals published alongside the histories.
type SnapshotStats struct {
	FlowsExported    uint64 `json:"flows_exported"`
	AlertsEmitted    uint64 `json:"alerts_emitted"`
	AlertsSuppressed uint64 `json:"alerts_suppressed"`
	Unclassified     uint64 `json:"unclassified"`
}

// Snapshot is the externally published state: bounded, time-ordered
// traffic and alert histories. Instances are immutable; the dispatcher
// publishes a fresh one on every update.
type Snapshot struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Traffic     []TrafficSample `json:"traffic"`
	Alerts      []Alert         `json:"alerts"`
	Stats       SnapshotStats   `json:"stats"`
}
