package pcap

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"NetSentry/internal/metrics"
	"NetSentry/internal/model"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func frame(t *testing.T, ls ...gopacket.SerializableLayer) []byte {
	t.Helper()
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, ls...); err != nil {
		t.Fatalf("failed to serialize frame: %v", err)
	}
	return buf.Bytes()
}

func tcpFrame(t *testing.T) []byte {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		DstMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.IP{10, 0, 0, 2},
		DstIP:    net.IP{10, 0, 0, 1},
	}
	tcp := &layers.TCP{SrcPort: 40000, DstPort: 80, SYN: true, Window: 29200}
	tcp.SetNetworkLayerForChecksum(ip)
	return frame(t, eth, ip, tcp)
}

func arpFrame(t *testing.T) []byte {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   []byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		SourceProtAddress: []byte{10, 0, 0, 2},
		DstHwAddress:      []byte{0, 0, 0, 0, 0, 0},
		DstProtAddress:    []byte{10, 0, 0, 1},
	}
	return frame(t, eth, arp)
}

func writeCapture(t *testing.T, ts time.Time, frames ...[]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.pcap")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create capture file: %v", err)
	}
	defer f.Close()

	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		t.Fatalf("failed to write file header: %v", err)
	}
	for i, data := range frames {
		ci := gopacket.CaptureInfo{
			Timestamp:     ts.Add(time.Duration(i) * time.Millisecond),
			CaptureLength: len(data),
			Length:        len(data),
		}
		if err := w.WritePacket(ci, data); err != nil {
			t.Fatalf("failed to write packet %d: %v", i, err)
		}
	}
	return path
}

func TestReadPacketsDropsAndCountsUnparseable(t *testing.T) {
	ts := time.Now().Truncate(time.Microsecond)
	path := writeCapture(t, ts, tcpFrame(t), arpFrame(t))

	before := testutil.ToFloat64(metrics.PacketsMalformed)

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	out := make(chan *model.PacketInfo, 4)
	r.ReadPackets(out)

	var got []*model.PacketInfo
	for info := range out {
		got = append(got, info)
	}

	if len(got) != 1 {
		t.Fatalf("parsed %d packets, want 1 (ARP dropped)", len(got))
	}
	if got[0].FiveTuple.DstPort != 80 || got[0].FiveTuple.Protocol != 6 {
		t.Errorf("parsed packet = %+v, want the TCP frame", got[0].FiveTuple)
	}
	if !got[0].Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want the capture time %v", got[0].Timestamp, ts)
	}
	if delta := testutil.ToFloat64(metrics.PacketsMalformed) - before; delta != 1 {
		t.Errorf("malformed counter delta = %v, want 1", delta)
	}
}
