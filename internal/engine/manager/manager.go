// Package manager wires the detection pipeline together: packet workers
// feed the flow table and the rule engine, closed flows go to the export
// workers for feature extraction and classification, and everything
// funnels into the dispatcher.
package manager

import (
	v1 "NetSentry/api/gen/v1"
	"NetSentry/internal/config"
	"NetSentry/internal/engine/dispatch"
	"NetSentry/internal/engine/features"
	"NetSentry/internal/engine/flowtable"
	"NetSentry/internal/engine/rules"
	"NetSentry/internal/metrics"
	"NetSentry/internal/model"
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"time"
)

// Manager owns the pipeline goroutines and their channels.
type Manager struct {
	table      *flowtable.Table
	ruleEngine *rules.Engine
	dispatcher *dispatch.Dispatcher
	classifier model.Classifier

	// Worker pool for concurrent packet processing.
	packetChannel chan *v1.PacketInfo
	numWorkers    int
	workerWg      sync.WaitGroup

	// Bounded export stage: feature extraction and classification.
	exportChannel chan *flowtable.Flow
	exportWorkers int
	exportWg      sync.WaitGroup

	sweepInterval   time.Duration
	reclaimInterval time.Duration
	done            chan struct{}
	tickerWg        sync.WaitGroup
}

// NewManager creates a manager. The classifier and dispatcher are built
// by the caller so the same pipeline serves the live engine and the
// offline analyzer.
func NewManager(cfg *config.Config, clf model.Classifier, dispatcher *dispatch.Dispatcher) (*Manager, error) {
	flowTimeout, err := time.ParseDuration(cfg.Engine.FlowTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid flow_timeout: %w", err)
	}
	sweepInterval, err := time.ParseDuration(cfg.Engine.SweepInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid sweep_interval: %w", err)
	}
	idleThreshold, err := time.ParseDuration(cfg.Engine.IdleThreshold)
	if err != nil {
		return nil, fmt.Errorf("invalid idle_threshold: %w", err)
	}
	reclaimInterval, err := time.ParseDuration(cfg.Rules.ReclaimInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid reclaim_interval: %w", err)
	}

	ruleEngine, err := rules.New(&cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule engine: %w", err)
	}

	return &Manager{
		table:           flowtable.New(cfg.Engine.NumShards, flowTimeout, idleThreshold, cfg.Engine.BulkMinPackets),
		ruleEngine:      ruleEngine,
		dispatcher:      dispatcher,
		classifier:      clf,
		packetChannel:   make(chan *v1.PacketInfo, cfg.Engine.SizeOfPacketChannel),
		numWorkers:      cfg.Engine.NumWorkers,
		exportChannel:   make(chan *flowtable.Flow, cfg.Engine.SizeOfPacketChannel),
		exportWorkers:   cfg.Engine.ExportWorkers,
		sweepInterval:   sweepInterval,
		reclaimInterval: reclaimInterval,
		done:            make(chan struct{}),
	}, nil
}

// Start launches the packet workers, export workers, and the periodic
// sweep and reclaim loops.
func (m *Manager) Start() {
	m.exportWg.Add(m.exportWorkers)
	for i := 0; i < m.exportWorkers; i++ {
		go m.exportWorker()
	}

	m.workerWg.Add(m.numWorkers)
	for i := 0; i < m.numWorkers; i++ {
		go m.worker()
	}

	m.tickerWg.Add(2)
	go m.runSweeper()
	go m.runReclaimer()

	log.Printf("Manager started with %d packet workers and %d export workers.", m.numWorkers, m.exportWorkers)
}

// Process feeds one parsed packet through the rule engine and the flow
// table. Exposed for the offline analyzer, which bypasses the transport.
func (m *Manager) Process(info *model.PacketInfo) {
	metrics.PacketsProcessed.Inc()

	for _, c := range m.ruleEngine.ObservePacket(info) {
		m.dispatcher.SubmitRule(c)
	}

	if flow := m.table.Ingest(info); flow != nil {
		m.exportChannel <- flow
	}
}

// ObserveEvent feeds one host-reported event into the rule engine.
func (m *Manager) ObserveEvent(ev rules.Event) {
	for _, c := range m.ruleEngine.ObserveEvent(ev) {
		m.dispatcher.SubmitRule(c)
	}
}

func (m *Manager) worker() {
	defer m.workerWg.Done()
	for pbPacket := range m.packetChannel {
		m.Process(packetFromProto(pbPacket))
	}
}

func (m *Manager) exportWorker() {
	defer m.exportWg.Done()
	for flow := range m.exportChannel {
		metrics.FlowsExported.Inc()
		m.dispatcher.FlowExported()

		vector := features.Extract(flow)
		result, err := m.classifier.Classify(context.Background(), vector)
		if err != nil {
			metrics.ClassifierMisses.Inc()
			log.Printf("Classification failed for flow %s: %v", flow.Key, err)
			result = model.ClassificationResult{Label: model.LabelUnclassified}
		}

		m.dispatcher.SubmitClassification(model.ClassifierCandidate{
			Flow:   flow.Summary(),
			Result: result,
		})
	}
}

// runSweeper periodically closes inactive flows and hands them to the
// export stage.
func (m *Manager) runSweeper() {
	defer m.tickerWg.Done()
	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, flow := range m.table.SweepInactive(time.Now()) {
				m.exportChannel <- flow
			}
		case <-m.done:
			return
		}
	}
}

// runReclaimer periodically drops rule engine state for quiet sources.
func (m *Manager) runReclaimer() {
	defer m.tickerWg.Done()
	ticker := time.NewTicker(m.reclaimInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := m.ruleEngine.Reclaim(time.Now()); removed > 0 {
				log.Printf("Rule engine reclaimed %d quiet sources.", removed)
			}
		case <-m.done:
			return
		}
	}
}

// Stop drains the pipeline: no new packets, workers finish the buffered
// ones, every remaining flow is flushed through export so short captures
// still produce verdicts.
func (m *Manager) Stop() {
	log.Println("Manager stopping...")

	// 1. Stop accepting new packets and let the workers drain.
	close(m.packetChannel)
	m.workerWg.Wait()

	// 2. Stop the ticker loops before touching the export channel.
	close(m.done)
	m.tickerWg.Wait()

	// 3. Flush every in-progress flow, then let the export stage drain.
	for _, flow := range m.table.FlushAll() {
		m.exportChannel <- flow
	}
	close(m.exportChannel)
	m.exportWg.Wait()

	log.Println("Manager stopped.")
}

// InputChannel is where the transport subscriber delivers packets.
func (m *Manager) InputChannel() chan<- *v1.PacketInfo {
	return m.packetChannel
}

// FlowCount returns the number of in-progress flows.
func (m *Manager) FlowCount() int {
	return m.table.Len()
}

func packetFromProto(p *v1.PacketInfo) *model.PacketInfo {
	return &model.PacketInfo{
		Timestamp: time.Unix(0, p.TimestampUnixNano),
		FiveTuple: model.FiveTuple{
			SrcIP:    net.IP(p.FiveTuple.SrcIp).To16(),
			DstIP:    net.IP(p.FiveTuple.DstIp).To16(),
			SrcPort:  uint16(p.FiveTuple.SrcPort),
			DstPort:  uint16(p.FiveTuple.DstPort),
			Protocol: uint8(p.FiveTuple.Protocol),
		},
		Length:    int(p.Length),
		TCPFlags:  uint8(p.TcpFlags),
		HeaderLen: int(p.HeaderLength),
		Window:    uint16(p.Window),
		Payload:   p.Payload,
	}
}
