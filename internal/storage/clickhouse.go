// Package storage persists emitted alerts for offline analysis.
package storage

import (
	"NetSentry/internal/config"
	"NetSentry/internal/model"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const createAlertsTableStatement = `
CREATE TABLE IF NOT EXISTS alerts (
    Timestamp  DateTime64(3),
    SrcIP      String,
    SrcPort    UInt16,
    DstIP      String,
    DstPort    UInt16,
    Label      String,
    Confidence Float64,
    Method     String,
    Severity   String,
    Packets    UInt64,
    Bytes      UInt64
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (Label, Timestamp);
`

const (
	sinkBufferSize = 1024
	batchSize      = 100
	flushInterval  = 5 * time.Second
)

// ClickHouseSink buffers alerts and writes them to ClickHouse in
// batches. Offer never blocks the dispatcher: when the buffer is full
// the alert is dropped with an error.
type ClickHouseSink struct {
	conn    driver.Conn
	alerts  chan model.Alert
	done    chan struct{}
	stopped chan struct{}
}

// NewClickHouseSink connects, ensures the alerts table exists, and
// starts the flush loop.
func NewClickHouseSink(cfg config.ClickHouseConfig) (*ClickHouseSink, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Exec(context.Background(), createAlertsTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create alerts table: %w", err)
	}
	log.Println("Successfully connected to ClickHouse and ensured alerts table exists.")

	s := &ClickHouseSink{
		conn:    conn,
		alerts:  make(chan model.Alert, sinkBufferSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.run()
	return s, nil
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}
	return conn, nil
}

// Offer enqueues one alert for the next batch.
func (s *ClickHouseSink) Offer(a *model.Alert) error {
	select {
	case s.alerts <- *a:
		return nil
	default:
		return fmt.Errorf("alert buffer full, dropping alert for %s", a.Source())
	}
}

// Close flushes the remaining buffer and closes the connection.
func (s *ClickHouseSink) Close() error {
	close(s.done)
	<-s.stopped
	return s.conn.Close()
}

func (s *ClickHouseSink) run() {
	defer close(s.stopped)

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]model.Alert, 0, batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := s.write(batch); err != nil {
			log.Printf("Failed to write alert batch to ClickHouse: %v", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case a := <-s.alerts:
			batch = append(batch, a)
			if len(batch) >= batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.done:
			// Drain whatever the dispatcher managed to enqueue.
			for {
				select {
				case a := <-s.alerts:
					batch = append(batch, a)
				default:
					flush()
					return
				}
			}
		}
	}
}

func (s *ClickHouseSink) write(alerts []model.Alert) error {
	batch, err := s.conn.PrepareBatch(context.Background(), "INSERT INTO alerts")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	for _, a := range alerts {
		err = batch.Append(
			a.Timestamp,
			a.SrcIP,
			a.SrcPort,
			a.DstIP,
			a.DstPort,
			a.Label,
			a.Confidence,
			string(a.Method),
			string(a.Severity),
			a.Packets,
			a.Bytes,
		)
		if err != nil {
			return fmt.Errorf("failed to append alert to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}
	log.Printf("Wrote %d alerts to ClickHouse.", len(alerts))
	return nil
}
