package flowtable

import (
	"net"
	"testing"
	"time"

	"NetSentry/internal/model"
)

const (
	testTimeout       = 2 * time.Second
	testIdleThreshold = 1 * time.Second
	testBulkMin       = 4
)

func newTestTable() *Table {
	return New(16, testTimeout, testIdleThreshold, testBulkMin)
}

func packet(ts time.Time, srcIP string, srcPort uint16, dstIP string, dstPort uint16, flags uint8, payload []byte) *model.PacketInfo {
	return &model.PacketInfo{
		Timestamp: ts,
		FiveTuple: model.FiveTuple{
			SrcIP:    net.ParseIP(srcIP),
			DstIP:    net.ParseIP(dstIP),
			SrcPort:  srcPort,
			DstPort:  dstPort,
			Protocol: 6,
		},
		Length:    60 + len(payload),
		TCPFlags:  flags,
		HeaderLen: 20,
		Window:    65535,
		Payload:   payload,
	}
}

func TestCanonicalKeyDirectionIndependent(t *testing.T) {
	fwd := packet(time.Now(), "192.168.0.1", 12345, "8.8.8.8", 53, model.FlagSYN, nil)
	bwd := packet(time.Now(), "8.8.8.8", 53, "192.168.0.1", 12345, model.FlagSYN|model.FlagACK, nil)

	if CanonicalKey(fwd.FiveTuple) != CanonicalKey(bwd.FiveTuple) {
		t.Errorf("keys differ by direction: %q vs %q",
			CanonicalKey(fwd.FiveTuple), CanonicalKey(bwd.FiveTuple))
	}

	other := packet(time.Now(), "192.168.0.1", 12346, "8.8.8.8", 53, model.FlagSYN, nil)
	if CanonicalKey(fwd.FiveTuple) == CanonicalKey(other.FiveTuple) {
		t.Error("different flows mapped to the same key")
	}
}

func TestFinBothSidesClosesOnce(t *testing.T) {
	table := newTestTable()
	base := time.Now()

	if flow := table.Ingest(packet(base, "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagSYN, nil)); flow != nil {
		t.Fatal("flow closed on SYN")
	}
	if flow := table.Ingest(packet(base.Add(10*time.Millisecond), "10.0.0.1", 80, "10.0.0.2", 40000, model.FlagSYN|model.FlagACK, nil)); flow != nil {
		t.Fatal("flow closed on SYN-ACK")
	}
	if flow := table.Ingest(packet(base.Add(20*time.Millisecond), "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagFIN|model.FlagACK, nil)); flow != nil {
		t.Fatal("flow closed on first FIN")
	}

	flow := table.Ingest(packet(base.Add(30*time.Millisecond), "10.0.0.1", 80, "10.0.0.2", 40000, model.FlagFIN|model.FlagACK, nil))
	if flow == nil {
		t.Fatal("flow did not close on FIN from both sides")
	}
	if flow.State != StateClosed {
		t.Errorf("exported flow state = %v, want closed", flow.State)
	}
	if table.Len() != 0 {
		t.Errorf("flow still in table after close, len = %d", table.Len())
	}

	// Forward is the direction of the first packet.
	if flow.Fwd.Packets != 2 || flow.Bwd.Packets != 2 {
		t.Errorf("direction split = %d/%d, want 2/2", flow.Fwd.Packets, flow.Bwd.Packets)
	}
}

func TestRSTClosesImmediately(t *testing.T) {
	table := newTestTable()
	base := time.Now()

	table.Ingest(packet(base, "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagSYN, nil))
	flow := table.Ingest(packet(base.Add(time.Millisecond), "10.0.0.1", 80, "10.0.0.2", 40000, model.FlagRST, nil))
	if flow == nil {
		t.Fatal("flow did not close on RST")
	}
	if table.Len() != 0 {
		t.Error("flow still in table after RST")
	}
}

func TestReArrivalStartsNewFlow(t *testing.T) {
	table := newTestTable()
	base := time.Now()

	table.Ingest(packet(base, "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagSYN, nil))
	closed := table.Ingest(packet(base.Add(time.Millisecond), "10.0.0.1", 80, "10.0.0.2", 40000, model.FlagRST, nil))
	if closed == nil {
		t.Fatal("expected close on RST")
	}

	table.Ingest(packet(base.Add(time.Second), "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagSYN, nil))
	if table.Len() != 1 {
		t.Fatalf("re-arrival did not create a new flow, len = %d", table.Len())
	}

	second := table.Ingest(packet(base.Add(time.Second+time.Millisecond), "10.0.0.1", 80, "10.0.0.2", 40000, model.FlagRST, nil))
	if second == nil {
		t.Fatal("second flow did not close")
	}
	if second == closed {
		t.Error("closed flow instance was reused")
	}
	if second.Fwd.Packets != 1 {
		t.Errorf("second flow carries stale counters: %d fwd packets", second.Fwd.Packets)
	}
}

func TestSweepInactive(t *testing.T) {
	table := newTestTable()
	base := time.Now()

	table.Ingest(packet(base, "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagSYN, nil))
	table.Ingest(packet(base.Add(time.Second), "10.0.0.3", 40000, "10.0.0.1", 80, model.FlagSYN, nil))

	// Only the first flow is past the timeout.
	expired := table.SweepInactive(base.Add(2*time.Second + 500*time.Millisecond))
	if len(expired) != 1 {
		t.Fatalf("expected 1 expired flow, got %d", len(expired))
	}
	if expired[0].State != StateClosed {
		t.Error("expired flow not finalized")
	}
	if table.Len() != 1 {
		t.Errorf("table len = %d after sweep, want 1", table.Len())
	}

	// A later sweep catches the second one; nothing is exported twice.
	expired = table.SweepInactive(base.Add(time.Minute))
	if len(expired) != 1 {
		t.Fatalf("expected 1 expired flow on second sweep, got %d", len(expired))
	}
	if table.Len() != 0 {
		t.Errorf("table not empty after full sweep, len = %d", table.Len())
	}
}

func TestFlushAll(t *testing.T) {
	table := newTestTable()
	base := time.Now()

	for i := 0; i < 5; i++ {
		table.Ingest(packet(base, "10.0.0.2", uint16(40000+i), "10.0.0.1", 80, model.FlagSYN, nil))
	}

	flows := table.FlushAll()
	if len(flows) != 5 {
		t.Fatalf("expected 5 flushed flows, got %d", len(flows))
	}
	if table.Len() != 0 {
		t.Errorf("table not empty after flush, len = %d", table.Len())
	}
	for _, f := range flows {
		if f.State != StateClosed {
			t.Error("flushed flow not finalized")
		}
	}
}

func TestDirectionStats(t *testing.T) {
	table := newTestTable()
	base := time.Now()

	table.Ingest(packet(base, "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagSYN, nil))
	table.Ingest(packet(base.Add(100*time.Millisecond), "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagPSH|model.FlagACK, []byte("hello")))
	flow := table.Ingest(packet(base.Add(200*time.Millisecond), "10.0.0.1", 80, "10.0.0.2", 40000, model.FlagRST, nil))
	if flow == nil {
		t.Fatal("flow did not close")
	}

	if flow.Fwd.Packets != 2 || flow.Bwd.Packets != 1 {
		t.Fatalf("direction split = %d/%d, want 2/1", flow.Fwd.Packets, flow.Bwd.Packets)
	}
	if flow.Fwd.SYN != 1 || flow.Fwd.PSH != 1 {
		t.Errorf("fwd flag counts SYN=%d PSH=%d, want 1/1", flow.Fwd.SYN, flow.Fwd.PSH)
	}
	if flow.Bwd.RST != 1 {
		t.Errorf("bwd RST count = %d, want 1", flow.Bwd.RST)
	}
	if flow.Fwd.PayloadPackets != 1 {
		t.Errorf("fwd payload packets = %d, want 1", flow.Fwd.PayloadPackets)
	}
	// One inter-arrival sample per direction after the first packet.
	if flow.Fwd.IAT.Count() != 1 || flow.Bwd.IAT.Count() != 0 {
		t.Errorf("IAT counts = %d/%d, want 1/0", flow.Fwd.IAT.Count(), flow.Bwd.IAT.Count())
	}
	if got := flow.Duration(); got != 200*time.Millisecond {
		t.Errorf("duration = %v, want 200ms", got)
	}
}

func TestBulkRunCounting(t *testing.T) {
	table := newTestTable()
	base := time.Now()
	payload := []byte("0123456789")

	// Four consecutive payload packets form one bulk run; the pending
	// run resolves at finalize.
	for i := 0; i < 4; i++ {
		table.Ingest(packet(base.Add(time.Duration(i)*10*time.Millisecond), "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagPSH|model.FlagACK, payload))
	}
	flows := table.FlushAll()
	if len(flows) != 1 {
		t.Fatalf("expected 1 flow, got %d", len(flows))
	}

	f := flows[0]
	if f.Fwd.BulkCount != 1 {
		t.Fatalf("bulk count = %d, want 1", f.Fwd.BulkCount)
	}
	if f.Fwd.BulkPackets != 4 || f.Fwd.BulkBytes != 40 {
		t.Errorf("bulk packets/bytes = %d/%d, want 4/40", f.Fwd.BulkPackets, f.Fwd.BulkBytes)
	}
}

func TestBulkRunBelowMinimumNotCounted(t *testing.T) {
	table := newTestTable()
	base := time.Now()

	for i := 0; i < 3; i++ {
		table.Ingest(packet(base.Add(time.Duration(i)*10*time.Millisecond), "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagPSH|model.FlagACK, []byte("x")))
	}
	flows := table.FlushAll()
	if flows[0].Fwd.BulkCount != 0 {
		t.Errorf("bulk count = %d for a 3-packet run, want 0", flows[0].Fwd.BulkCount)
	}
}

func TestActiveIdleSegmentation(t *testing.T) {
	table := newTestTable()
	base := time.Now()

	// Two packets close together, then one after a 5s silence: one
	// active segment and one idle segment.
	table.Ingest(packet(base, "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagSYN, nil))
	table.Ingest(packet(base.Add(100*time.Millisecond), "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagACK, nil))
	table.Ingest(packet(base.Add(5*time.Second+100*time.Millisecond), "10.0.0.2", 40000, "10.0.0.1", 80, model.FlagACK, nil))

	flows := table.FlushAll()
	f := flows[0]

	if f.Idle.Count() != 1 {
		t.Fatalf("idle segments = %d, want 1", f.Idle.Count())
	}
	if got := f.Idle.Max(); got < 4.9 || got > 5.1 {
		t.Errorf("idle duration = %vs, want ~5s", got)
	}
	if f.Active.Count() != 1 {
		t.Fatalf("active segments = %d, want 1", f.Active.Count())
	}
	if got := f.Active.Max(); got < 0.09 || got > 0.11 {
		t.Errorf("active duration = %vs, want ~0.1s", got)
	}
}

func TestDistStatistics(t *testing.T) {
	var d Dist
	if d.Mean() != 0 || d.Std() != 0 || d.Min() != 0 || d.Max() != 0 {
		t.Error("empty distribution must be all zeros")
	}

	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		d.Add(v)
	}
	if d.Mean() != 5 {
		t.Errorf("mean = %v, want 5", d.Mean())
	}
	if d.Std() != 2 {
		t.Errorf("std = %v, want 2", d.Std())
	}
	if d.Min() != 2 || d.Max() != 9 {
		t.Errorf("min/max = %v/%v, want 2/9", d.Min(), d.Max())
	}
}
