package main

import (
	"NetSentry/internal/config"
	"NetSentry/internal/engine/protocol"
	"NetSentry/internal/metrics"
	"NetSentry/internal/probe"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
)

func main() {
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	iface := flag.String("iface", "", "Interface to capture from (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *iface != "" {
		cfg.Probe.Interface = *iface
	}
	if cfg.Probe.Interface == "" {
		log.Fatal("No capture interface configured: set probe.interface or pass -iface.")
	}

	log.Printf("Starting sentry-probe on interface %s", cfg.Probe.Interface)

	pub, err := probe.NewPublisher(cfg.Probe)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	handle, err := pcap.OpenLive(cfg.Probe.Interface, cfg.Probe.SnapshotLen, true, pcap.BlockForever)
	if err != nil {
		log.Fatalf("Error opening device %s: %v", cfg.Probe.Interface, err)
	}
	defer handle.Close()

	if cfg.Probe.BPF != "" {
		if err := handle.SetBPFFilter(cfg.Probe.BPF); err != nil {
			log.Fatalf("Failed to set BPF filter %q: %v", cfg.Probe.BPF, err)
		}
		log.Printf("BPF filter applied: %s", cfg.Probe.BPF)
	}

	log.Println("Capture started. Publishing packets to NATS...")

	go func() {
		packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
		packetsPublished := 0
		for packet := range packetSource.Packets() {
			info, err := protocol.ParsePacket(packet)
			if err != nil {
				// Non-IPv4 / non-TCP-UDP packets are dropped but counted.
				metrics.PacketsMalformed.Inc()
				continue
			}
			if err := pub.Publish(info); err != nil {
				log.Printf("Failed to publish packet: %v", err)
			}
			packetsPublished++
			if packetsPublished%1000 == 0 {
				log.Printf("%d packets published...", packetsPublished)
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
}
