package model

// AlertSink receives each emitted alert exactly once, immediately after
// dispatch. A sink failure must not affect dispatcher state; errors are
// logged by the caller and otherwise absorbed.
type AlertSink interface {
	Offer(alert *Alert) error

	// Close flushes any buffered alerts and releases resources.
	Close() error
}
