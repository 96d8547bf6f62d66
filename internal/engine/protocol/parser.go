package protocol

import (
	"NetSentry/internal/model"
	"fmt"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// ParsePacket decodes a captured packet and extracts the metadata the
// detection pipeline needs: 5-tuple, length, TCP flags, transport header
// length, initial window and application payload. Packets that are not
// IPv4 TCP/UDP, or whose headers cannot be decoded, are rejected with an
// error; callers drop and count them.
func ParsePacket(packet gopacket.Packet) (*model.PacketInfo, error) {
	info := &model.PacketInfo{
		Timestamp: time.Now(),
		Length:    len(packet.Data()),
	}
	if meta := packet.Metadata(); meta != nil && !meta.Timestamp.IsZero() {
		info.Timestamp = meta.Timestamp
	}
	if errLayer := packet.ErrorLayer(); errLayer != nil {
		return nil, fmt.Errorf("packet decode failed: %v", errLayer.Error())
	}

	l := packet.Layer(layers.LayerTypeIPv4)
	if l == nil {
		return nil, fmt.Errorf("not an IPv4 packet")
	}
	ipLayer := l.(*layers.IPv4)
	info.FiveTuple.SrcIP = ipLayer.SrcIP
	info.FiveTuple.DstIP = ipLayer.DstIP
	info.FiveTuple.Protocol = uint8(ipLayer.Protocol)

	if l := packet.Layer(layers.LayerTypeTCP); l != nil {
		tcp := l.(*layers.TCP)
		info.FiveTuple.SrcPort = uint16(tcp.SrcPort)
		info.FiveTuple.DstPort = uint16(tcp.DstPort)
		info.TCPFlags = tcpFlagBits(tcp)
		info.HeaderLen = int(tcp.DataOffset) * 4
		info.Window = tcp.Window
		info.Payload = tcp.Payload
	} else if l := packet.Layer(layers.LayerTypeUDP); l != nil {
		udp := l.(*layers.UDP)
		info.FiveTuple.SrcPort = uint16(udp.SrcPort)
		info.FiveTuple.DstPort = uint16(udp.DstPort)
		info.HeaderLen = 8
		info.Payload = udp.Payload
	} else {
		return nil, fmt.Errorf("not a TCP or UDP packet")
	}

	return info, nil
}

func tcpFlagBits(tcp *layers.TCP) uint8 {
	var flags uint8
	if tcp.FIN {
		flags |= model.FlagFIN
	}
	if tcp.SYN {
		flags |= model.FlagSYN
	}
	if tcp.RST {
		flags |= model.FlagRST
	}
	if tcp.PSH {
		flags |= model.FlagPSH
	}
	if tcp.ACK {
		flags |= model.FlagACK
	}
	if tcp.URG {
		flags |= model.FlagURG
	}
	return flags
}
