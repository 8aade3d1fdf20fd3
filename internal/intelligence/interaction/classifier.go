package interaction

import (
	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// Classifier scores assembled feature vectors against the model bundle.
// It performs a single inference attempt per call; unavailability is
// reported to the caller, never retried here.
type Classifier struct {
	bundle *ClassifierBundle
}

// NewClassifier wraps a bundle.  A nil bundle is allowed and produces a
// classifier that always reports model unavailability.
func NewClassifier(bundle *ClassifierBundle) *Classifier {
	return &Classifier{bundle: bundle}
}

// Available reports whether a complete bundle is loaded.
func (c *Classifier) Available() bool {
	return c != nil && c.bundle != nil
}

// FeatureOrder exposes the bundle's feature schema for assembly.  Returns
// nil when no bundle is loaded.
func (c *Classifier) FeatureOrder() []string {
	if !c.Available() {
		return nil
	}
	return c.bundle.FeatureOrder()
}

// Classify scores the feature vector and returns the argmax effect with the
// maximum class probability as confidence.
func (c *Classifier) Classify(features []float64) (Effect, float64, error) {
	if !c.Available() {
		return "", 0, apperrors.New(apperrors.ErrCodeModelUnavailable, "no classifier bundle loaded")
	}
	probs := c.bundle.model.Probabilities(features)
	idx := argmax(probs)
	effect, err := ParseEffect(c.bundle.labels[idx])
	if err != nil {
		return "", 0, apperrors.Wrap(err, apperrors.ErrCodeInferenceFailed, "decode predicted class")
	}
	return effect, probs[idx], nil
}
