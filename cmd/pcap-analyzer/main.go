package main

import (
	"NetSentry/internal/classifier"
	"NetSentry/internal/config"
	"NetSentry/internal/engine/dispatch"
	"NetSentry/internal/engine/manager"
	"NetSentry/internal/model"
	"NetSentry/pkg/pcap"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: pcap-analyzer [-config path] <path_to_pcap_file>")
		os.Exit(1)
	}
	pcapFilePath := flag.Arg(0)

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Offline analysis always scores in-process: no service round-trips,
	// no alert sinks, results go to stdout.
	dispatcher, err := dispatch.New(&cfg.Dispatcher, cfg.Classifier.UnknownThreshold)
	if err != nil {
		log.Fatalf("Failed to create dispatcher: %v", err)
	}

	clf := classifier.Local{Scorer: classifier.Heuristic{}}
	mgr, err := manager.NewManager(cfg, clf, dispatcher)
	if err != nil {
		log.Fatalf("Failed to create manager: %v", err)
	}

	pcapReader, err := pcap.NewReader(pcapFilePath)
	if err != nil {
		log.Fatalf("Failed to open pcap file: %v", err)
	}
	defer pcapReader.Close()

	mgr.Start()
	log.Printf("Reading packets from '%s'...", pcapFilePath)

	packets := make(chan *model.PacketInfo, 1024)
	go pcapReader.ReadPackets(packets)
	for info := range packets {
		mgr.Process(info)
	}
	log.Println("Finished reading all packets from pcap file.")

	// Flush remaining flows so short captures still classify everything.
	mgr.Stop()

	snap := dispatcher.Snapshot()
	log.Printf("Analysis complete: %d flows exported, %d alerts emitted, %d suppressed.",
		snap.Stats.FlowsExported, snap.Stats.AlertsEmitted, snap.Stats.AlertsSuppressed)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		log.Fatalf("Failed to encode snapshot: %v", err)
	}
}
