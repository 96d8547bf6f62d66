package model

import "context"

// Classifier scores a flow feature vector. Implementations must be
// deterministic for identical inputs and return a confidence in [0, 1].
// The call is expected to honor ctx deadlines; a slow classifier must not
// stall flow export.
type Classifier interface {
	Classify(ctx context.Context, features []float64) (ClassificationResult, error)
}
