package probe

import (
	"NetSentry/internal/config"
	"log"

	v1 "NetSentry/api/gen/v1"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"
)

// PacketHandler processes one received packet. The engine's handler
// forwards into the manager's input channel.
type PacketHandler func(pkt *v1.PacketInfo)

// Subscriber receives the probe's packet stream from NATS.
type Subscriber struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	subject string
}

// NewSubscriber connects to NATS.
func NewSubscriber(cfg config.ProbeConfig) (*Subscriber, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Subscriber{nc: nc, subject: cfg.Subject}, nil
}

// Start subscribes and decodes messages onto the handler.
func (s *Subscriber) Start(handler PacketHandler) error {
	sub, err := s.nc.Subscribe(s.subject, func(msg *nats.Msg) {
		var pbPacket v1.PacketInfo
		if err := proto.Unmarshal(msg.Data, &pbPacket); err != nil {
			log.Printf("Error unmarshalling protobuf: %v", err)
			return
		}
		if pbPacket.FiveTuple == nil {
			log.Println("Dropping packet without a 5-tuple.")
			return
		}
		handler(&pbPacket)
	})
	if err != nil {
		return err
	}
	s.sub = sub
	log.Printf("Subscribed to '%s'. Waiting for packets...", s.subject)
	return nil
}

// Close unsubscribes and closes the NATS connection.
func (s *Subscriber) Close() {
	if s.sub != nil {
		s.sub.Unsubscribe()
	}
	if s.nc != nil {
		s.nc.Close()
		log.Println("NATS connection closed.")
	}
}
