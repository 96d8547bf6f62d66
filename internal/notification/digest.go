package notification

import (
	"NetSentry/internal/config"
	"NetSentry/internal/model"
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gomarkdown/markdown"
)

// severityRank orders severities for the digest threshold.
var severityRank = map[model.Severity]int{
	model.SeverityLow:      0,
	model.SeverityMedium:   1,
	model.SeverityHigh:     2,
	model.SeverityCritical: 3,
}

// Digester periodically collects the alerts that crossed the configured
// severity since its last check and emails them as one digest, with an
// optional AI analysis appended.
type Digester struct {
	snapshot func() *model.Snapshot
	notifier model.Notifier
	analyzer model.Analyzer

	interval time.Duration
	minRank  int
	since    time.Time

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewDigester creates a digester. analyzer may be nil.
func NewDigester(cfg *config.NotifyConfig, snapshot func() *model.Snapshot, notifier model.Notifier, analyzer model.Analyzer) (*Digester, error) {
	interval, err := time.ParseDuration(cfg.CheckInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid notify check_interval: %w", err)
	}
	minRank, ok := severityRank[model.Severity(cfg.MinSeverity)]
	if !ok {
		return nil, fmt.Errorf("invalid notify min_severity: %q", cfg.MinSeverity)
	}

	return &Digester{
		snapshot: snapshot,
		notifier: notifier,
		analyzer: analyzer,
		interval: interval,
		minRank:  minRank,
		since:    time.Now(),
		stopChan: make(chan struct{}),
	}, nil
}

// Start launches the digest loop. The waitgroup is armed before the
// goroutine spawns so an immediate Stop still waits for it.
func (d *Digester) Start() {
	d.wg.Add(1)
	go d.run()
}

func (d *Digester) run() {
	defer d.wg.Done()
	log.Println("Alert digester started.")

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.evaluate()
		case <-d.stopChan:
			return
		}
	}
}

// Stop halts the loop and sends a final digest for anything pending.
func (d *Digester) Stop() {
	log.Println("Stopping alert digester...")
	close(d.stopChan)
	d.wg.Wait()
	d.evaluate()
}

func (d *Digester) evaluate() {
	snap := d.snapshot()

	var pending []model.Alert
	for _, a := range snap.Alerts {
		if a.Timestamp.After(d.since) && severityRank[a.Severity] >= d.minRank {
			pending = append(pending, a)
		}
	}
	if len(pending) == 0 {
		return
	}
	d.since = time.Now()

	var rows []string
	for _, a := range pending {
		rows = append(rows, fmt.Sprintf(
			"<tr><td>%s</td><td>%s</td><td>%s</td><td>%s:%d</td><td>%.2f</td><td>%s</td></tr>",
			a.Timestamp.Format("15:04:05"), a.Label, a.Source(), a.DstIP, a.DstPort, a.Confidence, a.Severity))
	}

	body := "<h1>NetSentry Alert Digest</h1>" +
		fmt.Sprintf("<p>%d alert(s) since the last digest:</p>", len(pending)) +
		"<table border=\"1\"><tr><th>Time</th><th>Label</th><th>Source</th><th>Destination</th><th>Confidence</th><th>Severity</th></tr>" +
		strings.Join(rows, "") + "</table>"

	if analysis, err := d.analyze(pending); err != nil {
		log.Printf("Failed to get AI analysis: %v", err)
	} else if analysis != "" {
		// The model answers in Markdown; convert for the HTML mail body.
		html := markdown.ToHTML([]byte(analysis), nil, nil)
		body += "<hr><h2>AI Analysis</h2>" + string(html)
	}

	subject := fmt.Sprintf("NetSentry Alert Digest (%d alerts)", len(pending))
	if err := d.notifier.Send(subject, body); err != nil {
		log.Printf("ERROR: Failed to send alert digest: %v", err)
	} else {
		log.Printf("Alert digest with %d alert(s) sent.", len(pending))
	}
}

func (d *Digester) analyze(alerts []model.Alert) (string, error) {
	if d.analyzer == nil {
		return "", nil
	}

	var lines []string
	for _, a := range alerts {
		lines = append(lines, fmt.Sprintf("%s %s from %s to %s:%d (confidence %.2f, %s)",
			a.Timestamp.Format(time.RFC3339), a.Label, a.Source(), a.DstIP, a.DstPort, a.Confidence, a.Severity))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	return d.analyzer.AnalyzeAlerts(ctx, strings.Join(lines, "\n"))
}
