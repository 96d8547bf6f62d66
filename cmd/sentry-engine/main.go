package main

import (
	"NetSentry/internal/ai"
	"NetSentry/internal/classifier"
	"NetSentry/internal/config"
	"NetSentry/internal/engine/dispatch"
	"NetSentry/internal/engine/manager"
	"NetSentry/internal/engine/rules"
	"NetSentry/internal/model"
	"NetSentry/internal/notification"
	"NetSentry/internal/probe"
	"NetSentry/internal/storage"
	"context"
	"encoding/json"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "NetSentry/api/gen/v1"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	log.Println("Starting sentry-engine...")

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 1. Alert sinks.
	var sinks []model.AlertSink
	if cfg.ClickHouse.Enabled {
		sink, err := storage.NewClickHouseSink(cfg.ClickHouse)
		if err != nil {
			log.Fatalf("Failed to create ClickHouse sink: %v", err)
		}
		sinks = append(sinks, sink)
	}

	// 2. Dispatcher.
	dispatcher, err := dispatch.New(&cfg.Dispatcher, cfg.Classifier.UnknownThreshold, sinks...)
	if err != nil {
		log.Fatalf("Failed to create dispatcher: %v", err)
	}

	// 3. Classifier: the gRPC service when enabled, the in-process
	// heuristic otherwise.
	var clf model.Classifier
	if cfg.Classifier.Enabled {
		grpcClf, err := classifier.NewGRPCClassifier(&cfg.Classifier)
		if err != nil {
			log.Fatalf("Failed to create classifier client: %v", err)
		}
		defer grpcClf.Close()
		clf = grpcClf
		log.Printf("Using classifier service at %s", cfg.Classifier.ServiceAddr)
	} else {
		clf = classifier.Local{Scorer: classifier.Heuristic{}}
		log.Println("Classifier service disabled, using in-process heuristic scorer.")
	}

	// 4. Pipeline manager.
	mgr, err := manager.NewManager(cfg, clf, dispatcher)
	if err != nil {
		log.Fatalf("Failed to create manager: %v", err)
	}
	mgr.Start()

	// 5. Packet transport.
	sub, err := probe.NewSubscriber(cfg.Probe)
	if err != nil {
		log.Fatalf("Failed to create subscriber: %v", err)
	}

	input := mgr.InputChannel()
	if err := sub.Start(func(pkt *v1.PacketInfo) {
		input <- pkt
	}); err != nil {
		log.Fatalf("Subscriber failed to start: %v", err)
	}

	// 6. Alert digest emailer.
	var digester *notification.Digester
	if cfg.Notify.Enabled && cfg.SMTP.Host != "" {
		var analyzer model.Analyzer
		if cfg.AI.Enabled {
			a, err := ai.NewAnalyzer(&cfg.AI)
			if err != nil {
				log.Fatalf("Failed to create AI analyzer: %v", err)
			}
			analyzer = a
		}
		notifier := notification.NewEmailNotifier(cfg.SMTP)
		digester, err = notification.NewDigester(&cfg.Notify, dispatcher.Snapshot, notifier, analyzer)
		if err != nil {
			log.Fatalf("Failed to create digester: %v", err)
		}
		digester.Start()
	} else if cfg.Notify.Enabled {
		log.Println("Notify is enabled in config, but SMTP is not configured. Digester will not run.")
	}

	// 7. HTTP API.
	httpServer := &http.Server{
		Addr:    cfg.API.ListenAddr,
		Handler: newHTTPHandler(dispatcher, mgr),
	}
	go func() {
		log.Printf("HTTP API server starting on %s", cfg.API.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// 8. Wait for a shutdown signal.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutdown signal received, stopping...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	httpServer.Shutdown(ctx)

	sub.Close()
	mgr.Stop()
	if digester != nil {
		digester.Stop()
	}
	if err := dispatcher.Close(); err != nil {
		log.Printf("Error closing alert sinks: %v", err)
	}
	log.Println("Shutdown complete.")
}

// hostEvent is the JSON body accepted by the events endpoint.
type hostEvent struct {
	Type    string `json:"type"`
	SrcIP   string `json:"src_ip"`
	DstIP   string `json:"dst_ip"`
	DstPort uint16 `json:"dst_port"`
}

func newHTTPHandler(d *dispatch.Dispatcher, mgr *manager.Manager) http.Handler {
	r := mux.NewRouter()

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}

	r.HandleFunc("/api/v1/snapshot", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, d.Snapshot())
	}).Methods("GET")

	r.HandleFunc("/api/v1/alerts", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, d.Snapshot().Alerts)
	}).Methods("GET")

	r.HandleFunc("/api/v1/traffic", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, d.Snapshot().Traffic)
	}).Methods("GET")

	r.HandleFunc("/api/v1/stats", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, d.Snapshot().Stats)
	}).Methods("GET")

	r.HandleFunc("/api/v1/events", func(w http.ResponseWriter, req *http.Request) {
		var ev hostEvent
		if err := json.NewDecoder(req.Body).Decode(&ev); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		srcIP := net.ParseIP(ev.SrcIP)
		if srcIP == nil {
			http.Error(w, "invalid src_ip", http.StatusBadRequest)
			return
		}
		mgr.ObserveEvent(rules.Event{
			Timestamp: time.Now(),
			SrcIP:     srcIP,
			DstIP:     net.ParseIP(ev.DstIP),
			DstPort:   ev.DstPort,
			Type:      rules.EventType(ev.Type),
		})
		w.WriteHeader(http.StatusAccepted)
	}).Methods("POST")

	r.Handle("/metrics", promhttp.Handler())

	return r
}
