// Package pcap reads capture files for offline analysis.
package pcap

import (
	"NetSentry/internal/engine/protocol"
	"NetSentry/internal/metrics"
	"NetSentry/internal/model"
	"log"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
)

// Reader reads packets from a pcap file.
type Reader struct {
	handle *pcap.Handle
}

// NewReader creates a new pcap reader for the given file path.
func NewReader(filePath string) (*Reader, error) {
	handle, err := pcap.OpenOffline(filePath)
	if err != nil {
		return nil, err
	}
	return &Reader{handle: handle}, nil
}

// Close closes the pcap handle.
func (r *Reader) Close() {
	r.handle.Close()
}

// ReadPackets parses every packet in the file onto the channel, keeping
// capture timestamps so flow timing reflects the recording, not the
// replay. The channel is closed when the file is exhausted.
func (r *Reader) ReadPackets(out chan<- *model.PacketInfo) {
	defer close(out)

	packetSource := gopacket.NewPacketSource(r.handle, r.handle.LinkType())
	for packet := range packetSource.Packets() {
		info, err := protocol.ParsePacket(packet)
		if err != nil {
			// Unsupported link/network types and truncated packets are
			// expected in real captures; count and continue.
			metrics.PacketsMalformed.Inc()
			log.Printf("Error parsing packet: %v", err)
			continue
		}
		out <- info
	}
}
