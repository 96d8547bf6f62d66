package dispatch

import (
	"sync/atomic"
	"time"

	"NetSentry/internal/model"
)

// atomicSnapshot publishes immutable snapshots: readers load the current
// pointer without touching the dispatcher's mutex, so the HTTP API never
// contends with the packet path.
type atomicSnapshot struct {
	ptr atomic.Pointer[model.Snapshot]
}

// Snapshot returns the most recently published state. The returned value
// is immutable and never nil.
func (d *Dispatcher) Snapshot() *model.Snapshot {
	return d.snap.ptr.Load()
}

// publishLocked builds a fresh snapshot from the current histories and
// swaps it in. Caller holds d.mu. The histories are copied so a reader
// holding an old snapshot never observes later appends.
func (d *Dispatcher) publishLocked() {
	snap := &model.Snapshot{
		GeneratedAt: time.Now(),
		Traffic:     make([]model.TrafficSample, len(d.traffic)),
		Alerts:      make([]model.Alert, len(d.alerts)),
		Stats:       d.stats,
	}
	copy(snap.Traffic, d.traffic)
	copy(snap.Alerts, d.alerts)
	d.snap.ptr.Store(snap)
}
