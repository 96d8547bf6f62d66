package model

import (
	"context"
)

// Analyzer defines the standard interface for an AI analyzer.
type Analyzer interface {
	// AnalyzeAlerts receives an alert summary and returns the analysis
	// produced by the AI model.
	AnalyzeAlerts(ctx context.Context, summary string) (string, error)
}
