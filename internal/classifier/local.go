package classifier

import (
	"context"

	"NetSentry/internal/model"
)

// Local adapts an in-process scorer to the classifier interface. Used
// when the engine runs without the gRPC service.
type Local struct {
	Scorer model.Scorer
}

// Classify scores the vector in-process; it never fails.
func (l Local) Classify(_ context.Context, features []float64) (model.ClassificationResult, error) {
	return l.Scorer.Score(features), nil
}
