// Package classifier provides the flow classifier implementations: a
// gRPC client for the classifier service and the heuristic scorer the
// bundled service runs.
package classifier

import (
	"context"
	"fmt"
	"time"

	v1 "NetSentry/api/gen/v1"
	"NetSentry/internal/config"
	"NetSentry/internal/model"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClassifier calls the classifier service over gRPC. Every call
// carries the configured timeout so a slow model cannot stall the export
// workers; callers translate a miss into the unclassified label.
type GRPCClassifier struct {
	conn    *grpc.ClientConn
	client  v1.ClassifierServiceClient
	timeout time.Duration
}

// NewGRPCClassifier connects to the classifier service.
func NewGRPCClassifier(cfg *config.ClassifierConfig) (*GRPCClassifier, error) {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid classifier timeout: %w", err)
	}

	conn, err := grpc.NewClient(cfg.ServiceAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to classifier service: %w", err)
	}

	return &GRPCClassifier{
		conn:    conn,
		client:  v1.NewClassifierServiceClient(conn),
		timeout: timeout,
	}, nil
}

// Classify sends one feature vector to the service and returns its
// verdict.
func (c *GRPCClassifier) Classify(ctx context.Context, features []float64) (model.ClassificationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Classify(ctx, &v1.ClassifyRequest{Features: features})
	if err != nil {
		return model.ClassificationResult{}, fmt.Errorf("classifier service call failed: %w", err)
	}
	return model.ClassificationResult{
		Label:      resp.GetLabel(),
		Confidence: resp.GetConfidence(),
	}, nil
}

// Close tears down the service connection.
func (c *GRPCClassifier) Close() error {
	return c.conn.Close()
}
