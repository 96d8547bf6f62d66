package model

// Scorer is an in-process scoring function over a feature vector. It is
// the pluggable core of the classifier service; the engine itself only
// depends on Classifier.
type Scorer interface {
	Score(features []float64) ClassificationResult
}
