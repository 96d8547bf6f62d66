package probe

import (
	"NetSentry/internal/config"
	"log"

	v1 "NetSentry/api/gen/v1"
	"NetSentry/internal/model"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"
)

// Publisher ships parsed packets to the engine over a NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher connects to NATS.
func NewPublisher(cfg config.ProbeConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Publisher{nc: nc, subject: cfg.Subject}, nil
}

// Publish serializes a PacketInfo to Protobuf and publishes it.
func (p *Publisher) Publish(packetInfo *model.PacketInfo) error {
	data, err := proto.Marshal(PacketToProto(packetInfo))
	if err != nil {
		return err
	}
	return p.nc.Publish(p.subject, data)
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}

// PacketToProto converts a parsed packet to its wire representation.
func PacketToProto(info *model.PacketInfo) *v1.PacketInfo {
	return &v1.PacketInfo{
		TimestampUnixNano: info.Timestamp.UnixNano(),
		FiveTuple: &v1.FiveTuple{
			SrcIp:    []byte(info.FiveTuple.SrcIP),
			DstIp:    []byte(info.FiveTuple.DstIP),
			SrcPort:  uint32(info.FiveTuple.SrcPort),
			DstPort:  uint32(info.FiveTuple.DstPort),
			Protocol: uint32(info.FiveTuple.Protocol),
		},
		Length:       uint32(info.Length),
		TcpFlags:     uint32(info.TCPFlags),
		HeaderLength: uint32(info.HeaderLen),
		Window:       uint32(info.Window),
		Payload:      info.Payload,
	}
}
