package rules

import (
	"net"
	"testing"
	"time"

	"NetSentry/internal/config"
	"NetSentry/internal/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Default()
	e, err := New(&cfg.Rules)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e
}

func synPacket(ts time.Time, src string, dstPort uint16) *model.PacketInfo {
	return &model.PacketInfo{
		Timestamp: ts,
		FiveTuple: model.FiveTuple{
			SrcIP:    net.ParseIP(src),
			DstIP:    net.ParseIP("10.0.0.1"),
			SrcPort:  40000,
			DstPort:  dstPort,
			Protocol: 6,
		},
		Length:    60,
		TCPFlags:  model.FlagSYN,
		HeaderLen: 40,
	}
}

func TestBruteForceFiresAtThreshold(t *testing.T) {
	e := newTestEngine(t)
	base := time.Now()

	fired := 0
	for i := 0; i < 15; i++ {
		// 15 attempts spread over 8 seconds, all inside the 10s window.
		pkt := synPacket(base.Add(time.Duration(i)*533*time.Millisecond), "192.168.1.50", 22)
		for _, c := range e.ObservePacket(pkt) {
			if c.Label != LabelSSHBruteForce {
				t.Fatalf("unexpected label %q", c.Label)
			}
			fired++
		}
	}

	// Fires on the 10th attempt and every attempt after it; the
	// dispatcher's cooldown is what collapses the repeats.
	if fired != 6 {
		t.Errorf("expected 6 firings, got %d", fired)
	}
}

func TestBruteForceWindowExpires(t *testing.T) {
	e := newTestEngine(t)
	base := time.Now()

	// 9 attempts, then a long pause, then one more: the window has
	// drained, so the 10th attempt must not fire.
	for i := 0; i < 9; i++ {
		if got := e.ObservePacket(synPacket(base.Add(time.Duration(i)*time.Second), "192.168.1.50", 22)); len(got) != 0 {
			t.Fatalf("fired below threshold: %+v", got)
		}
	}
	if got := e.ObservePacket(synPacket(base.Add(30*time.Second), "192.168.1.50", 22)); len(got) != 0 {
		t.Errorf("fired after window drained: %+v", got)
	}
}

func TestPortScanDistinctPorts(t *testing.T) {
	e := newTestEngine(t)
	base := time.Now()

	fired := 0
	for i := 0; i < 12; i++ {
		pkt := synPacket(base.Add(time.Duration(i)*100*time.Millisecond), "172.16.0.9", uint16(8000+i))
		for _, c := range e.ObservePacket(pkt) {
			if c.Label != LabelPortScan {
				t.Fatalf("unexpected label %q", c.Label)
			}
			fired++
		}
	}
	if fired != 3 {
		t.Errorf("expected 3 firings (ports 10..12), got %d", fired)
	}
}

func TestPortScanIgnoresRepeatedPort(t *testing.T) {
	e := newTestEngine(t)
	base := time.Now()

	// 20 SYNs to the same port are one distinct port, not a scan.
	for i := 0; i < 20; i++ {
		pkt := synPacket(base.Add(time.Duration(i)*100*time.Millisecond), "172.16.0.9", 80)
		for _, c := range e.ObservePacket(pkt) {
			if c.Label == LabelPortScan {
				t.Fatal("port scan fired for a single destination port")
			}
		}
	}
}

func TestPayloadPatternFiresImmediately(t *testing.T) {
	e := newTestEngine(t)

	pkt := &model.PacketInfo{
		Timestamp: time.Now(),
		FiveTuple: model.FiveTuple{
			SrcIP:    net.ParseIP("203.0.113.7"),
			DstIP:    net.ParseIP("10.0.0.1"),
			SrcPort:  51000,
			DstPort:  80,
			Protocol: 6,
		},
		Length:   200,
		TCPFlags: model.FlagPSH | model.FlagACK,
		Payload:  []byte("GET /login?user=admin&pass=' OR '1'='1 HTTP/1.1"),
	}

	got := e.ObservePacket(pkt)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Label != LabelSQLInjection {
		t.Errorf("expected %q, got %q", LabelSQLInjection, got[0].Label)
	}
}

func TestPayloadPatternDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.PayloadInspection = false
	e, err := New(&cfg.Rules)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	pkt := synPacket(time.Now(), "203.0.113.7", 80)
	pkt.TCPFlags = model.FlagPSH | model.FlagACK
	pkt.Payload = []byte("<script>alert(1)</script>")
	if got := e.ObservePacket(pkt); len(got) != 0 {
		t.Errorf("payload inspection disabled but fired: %+v", got)
	}
}

func TestMatchPayloadFamilies(t *testing.T) {
	cases := []struct {
		payload string
		want    string
	}{
		{"id=1 UNION SELECT password FROM users", LabelSQLInjection},
		{"<IMG onerror=alert(document.cookie)>", LabelXSS},
		{"name=x; cat /etc/passwd", LabelCommandInjection},
		{"plain old request body", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := matchPayload([]byte(c.payload)); got != c.want {
			t.Errorf("matchPayload(%q) = %q, want %q", c.payload, got, c.want)
		}
	}
}

func TestSlowConnDetector(t *testing.T) {
	e := newTestEngine(t)
	base := time.Now()
	src := "198.51.100.4"

	// Open 25 connections from distinct source ports, no payload.
	for i := 0; i < 25; i++ {
		pkt := synPacket(base, src, 80)
		pkt.FiveTuple.SrcPort = uint16(50000 + i)
		if got := e.ObservePacket(pkt); containsLabel(got, LabelSlowConn) {
			t.Fatal("slow conn fired before connections aged")
		}
	}

	// Two seconds later every connection is old enough and still idle.
	late := synPacket(base.Add(2*time.Second), src, 80)
	late.FiveTuple.SrcPort = 50000
	late.TCPFlags = model.FlagACK
	if got := e.ObservePacket(late); !containsLabel(got, LabelSlowConn) {
		t.Errorf("expected slow conn firing, got %+v", got)
	}
}

func TestObserveEventPrivilegeEscalation(t *testing.T) {
	e := newTestEngine(t)
	base := time.Now()
	src := net.ParseIP("192.168.1.77")

	fired := 0
	for i := 0; i < 4; i++ {
		got := e.ObserveEvent(Event{
			Timestamp: base.Add(time.Duration(i) * 5 * time.Second),
			SrcIP:     src,
			Type:      EventPrivilegeEscalation,
		})
		for _, c := range got {
			if c.Label != LabelPrivilegeEscalation {
				t.Fatalf("unexpected label %q", c.Label)
			}
			fired++
		}
	}
	if fired != 2 {
		t.Errorf("expected firings on events 3 and 4, got %d", fired)
	}
}

func TestReclaimDropsQuietSources(t *testing.T) {
	e := newTestEngine(t)
	base := time.Now()

	e.ObservePacket(synPacket(base, "192.168.1.50", 22))
	e.ObservePacket(synPacket(base.Add(90*time.Second), "192.168.1.51", 22))
	if e.Sources() != 2 {
		t.Fatalf("expected 2 sources, got %d", e.Sources())
	}

	removed := e.Reclaim(base.Add(100 * time.Second))
	if removed != 1 || e.Sources() != 1 {
		t.Errorf("expected the first source reclaimed, removed=%d sources=%d", removed, e.Sources())
	}
}

func containsLabel(cs []model.RuleCandidate, label string) bool {
	for _, c := range cs {
		if c.Label == label {
			return true
		}
	}
	return false
}
