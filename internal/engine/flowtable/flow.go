package flowtable

import (
	"NetSentry/internal/model"
	"math"
	"time"
)

// State tracks a flow's lifecycle. A flow transitions to StateClosed at
// most once; the table removes it from the map in the same critical
// section, so it can never be exported twice.
type State uint8

const (
	StateActive State = iota
	StateClosing
	StateClosed
)

// Dist accumulates a sample distribution without retaining the samples.
// Mean and Std are population statistics; every statistic of an empty
// distribution is 0.
type Dist struct {
	count  uint64
	sum    float64
	sqSum  float64
	minVal float64
	maxVal float64
}

// Add records one sample.
func (d *Dist) Add(v float64) {
	if d.count == 0 || v < d.minVal {
		d.minVal = v
	}
	if d.count == 0 || v > d.maxVal {
		d.maxVal = v
	}
	d.count++
	d.sum += v
	d.sqSum += v * v
}

// Merge folds another distribution's samples into d.
func (d *Dist) Merge(o Dist) {
	if o.count == 0 {
		return
	}
	if d.count == 0 || o.minVal < d.minVal {
		d.minVal = o.minVal
	}
	if d.count == 0 || o.maxVal > d.maxVal {
		d.maxVal = o.maxVal
	}
	d.count += o.count
	d.sum += o.sum
	d.sqSum += o.sqSum
}

// Count returns the number of samples.
func (d *Dist) Count() uint64 { return d.count }

// Sum returns the sample total.
func (d *Dist) Sum() float64 { return d.sum }

// Min returns the smallest sample, or 0 when empty.
func (d *Dist) Min() float64 { return d.minVal }

// Max returns the largest sample, or 0 when empty.
func (d *Dist) Max() float64 { return d.maxVal }

// Mean returns the sample mean, or 0 when empty.
func (d *Dist) Mean() float64 {
	if d.count == 0 {
		return 0
	}
	return d.sum / float64(d.count)
}

// Variance returns the population variance, or 0 when empty.
func (d *Dist) Variance() float64 {
	if d.count == 0 {
		return 0
	}
	mean := d.Mean()
	v := d.sqSum/float64(d.count) - mean*mean
	if v < 0 {
		// Guard against negative values from floating point cancellation.
		return 0
	}
	return v
}

// Std returns the population standard deviation, or 0 when empty.
func (d *Dist) Std() float64 {
	return math.Sqrt(d.Variance())
}

// DirStats holds the running aggregates for one direction of a flow.
type DirStats struct {
	Packets     uint64
	Bytes       uint64
	HeaderBytes uint64

	// HeaderLenMin is the smallest transport header seen, 0 when empty.
	HeaderLenMin float64

	Len Dist
	IAT Dist

	FIN, SYN, RST, PSH, ACK, URG uint32

	InitWindow    uint16
	hasInitWindow bool

	// PayloadPackets counts packets carrying at least one payload byte.
	PayloadPackets uint64

	// Completed bulk-transfer runs.
	BulkCount    uint64
	BulkPackets  uint64
	BulkBytes    uint64
	BulkDuration float64

	// In-progress bulk run.
	runLen   int
	runBytes uint64
	runStart time.Time
	runLast  time.Time

	lastSeen time.Time
}

func (ds *DirStats) update(pkt *model.PacketInfo, bulkMinPackets int) {
	ts := pkt.Timestamp
	if ds.Packets > 0 {
		ds.IAT.Add(ts.Sub(ds.lastSeen).Seconds())
	}
	ds.lastSeen = ts

	ds.Packets++
	ds.Bytes += uint64(pkt.Length)
	ds.HeaderBytes += uint64(pkt.HeaderLen)
	if ds.Packets == 1 || float64(pkt.HeaderLen) < ds.HeaderLenMin {
		ds.HeaderLenMin = float64(pkt.HeaderLen)
	}
	ds.Len.Add(float64(pkt.Length))

	if !ds.hasInitWindow {
		ds.InitWindow = pkt.Window
		ds.hasInitWindow = true
	}

	if pkt.TCPFlags&model.FlagFIN != 0 {
		ds.FIN++
	}
	if pkt.TCPFlags&model.FlagSYN != 0 {
		ds.SYN++
	}
	if pkt.TCPFlags&model.FlagRST != 0 {
		ds.RST++
	}
	if pkt.TCPFlags&model.FlagPSH != 0 {
		ds.PSH++
	}
	if pkt.TCPFlags&model.FlagACK != 0 {
		ds.ACK++
	}
	if pkt.TCPFlags&model.FlagURG != 0 {
		ds.URG++
	}

	if len(pkt.Payload) > 0 {
		ds.PayloadPackets++
		if ds.runLen == 0 {
			ds.runStart = ts
		}
		ds.runLen++
		ds.runBytes += uint64(len(pkt.Payload))
		ds.runLast = ts
	} else {
		ds.finishBulkRun(bulkMinPackets)
	}
}

// finishBulkRun closes the in-progress payload run, counting it as a bulk
// transfer if it reached the minimum length.
func (ds *DirStats) finishBulkRun(bulkMinPackets int) {
	if ds.runLen >= bulkMinPackets && bulkMinPackets > 0 {
		ds.BulkCount++
		ds.BulkPackets += uint64(ds.runLen)
		ds.BulkBytes += ds.runBytes
		ds.BulkDuration += ds.runLast.Sub(ds.runStart).Seconds()
	}
	ds.runLen = 0
	ds.runBytes = 0
}

// Flow is a bidirectional sequence of packets sharing a canonical
// 5-tuple. It is owned exclusively by the table; the forward direction is
// the direction of the packet that created it.
type Flow struct {
	Key   string
	Tuple model.FiveTuple

	State     State
	StartTime time.Time
	LastSeen  time.Time

	Fwd DirStats
	Bwd DirStats

	// Active/idle segmentation of the whole flow's timeline.
	Active Dist
	Idle   Dist

	activeStart time.Time
	finFwd      bool
	finBwd      bool
}

func newFlow(key string, pkt *model.PacketInfo) *Flow {
	return &Flow{
		Key:         key,
		Tuple:       pkt.FiveTuple,
		State:       StateActive,
		StartTime:   pkt.Timestamp,
		LastSeen:    pkt.Timestamp,
		activeStart: pkt.Timestamp,
	}
}

// isForward reports whether pkt travels in the flow's forward direction.
func (f *Flow) isForward(pkt *model.PacketInfo) bool {
	return pkt.FiveTuple.SrcPort == f.Tuple.SrcPort &&
		pkt.FiveTuple.SrcIP.Equal(f.Tuple.SrcIP)
}

// update applies one packet to the flow and reports whether the packet
// closed it (FIN in both directions, or RST).
func (f *Flow) update(pkt *model.PacketInfo, idleThreshold time.Duration, bulkMinPackets int) bool {
	ts := pkt.Timestamp

	if ts.After(f.LastSeen) {
		gap := ts.Sub(f.LastSeen)
		if gap >= idleThreshold {
			f.Idle.Add(gap.Seconds())
			if active := f.LastSeen.Sub(f.activeStart); active > 0 {
				f.Active.Add(active.Seconds())
			}
			f.activeStart = ts
		}
		f.LastSeen = ts
	}

	if f.isForward(pkt) {
		f.Fwd.update(pkt, bulkMinPackets)
		if pkt.TCPFlags&model.FlagFIN != 0 {
			f.finFwd = true
		}
	} else {
		f.Bwd.update(pkt, bulkMinPackets)
		if pkt.TCPFlags&model.FlagFIN != 0 {
			f.finBwd = true
		}
	}

	if pkt.TCPFlags&model.FlagRST != 0 {
		return true
	}
	if f.finFwd && f.finBwd {
		return true
	}
	if f.finFwd || f.finBwd {
		f.State = StateClosing
	}
	return false
}

// finalize flushes run state that only resolves at flow end: the pending
// bulk runs and the trailing active segment.
func (f *Flow) finalize(bulkMinPackets int) {
	f.Fwd.finishBulkRun(bulkMinPackets)
	f.Bwd.finishBulkRun(bulkMinPackets)
	if active := f.LastSeen.Sub(f.activeStart); active > 0 {
		f.Active.Add(active.Seconds())
	}
	f.State = StateClosed
}

// Duration returns the flow's wall-clock length.
func (f *Flow) Duration() time.Duration {
	return f.LastSeen.Sub(f.StartTime)
}

// Summary detaches the flow's identity and totals for the dispatcher.
func (f *Flow) Summary() model.FlowSummary {
	return model.FlowSummary{
		SrcIP:      f.Tuple.SrcIP,
		DstIP:      f.Tuple.DstIP,
		SrcPort:    f.Tuple.SrcPort,
		DstPort:    f.Tuple.DstPort,
		Protocol:   f.Tuple.Protocol,
		StartTime:  f.StartTime,
		EndTime:    f.LastSeen,
		FwdPackets: f.Fwd.Packets,
		BwdPackets: f.Bwd.Packets,
		FwdBytes:   f.Fwd.Bytes,
		BwdBytes:   f.Bwd.Bytes,
	}
}
