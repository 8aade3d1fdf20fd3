// Package interaction implements the drug-food interaction prediction
// pipeline: nutrient normalization, feature vector assembly, classifier
// scoring with a rule-based fallback, and explanation generation.
package interaction

import (
	"fmt"

	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// Effect is the qualitative interaction outcome.  The set of effects is
// closed; classifier labels outside it are rejected at decode time.
type Effect string

const (
	EffectNoEffect Effect = "no effect"
	EffectPossible Effect = "possible"
	EffectPositive Effect = "positive"
	EffectNegative Effect = "negative"
	EffectHarmful  Effect = "harmful"
)

// Effects lists every valid effect in stable order.
var Effects = []Effect{EffectNoEffect, EffectPossible, EffectPositive, EffectNegative, EffectHarmful}

// String returns the wire form of the effect.
func (e Effect) String() string { return string(e) }

// Valid reports whether e is a member of the closed effect set.
func (e Effect) Valid() bool {
	switch e {
	case EffectNoEffect, EffectPossible, EffectPositive, EffectNegative, EffectHarmful:
		return true
	}
	return false
}

// ParseEffect converts a classifier label into an Effect, rejecting labels
// outside the closed set.
func ParseEffect(label string) (Effect, error) {
	e := Effect(label)
	if !e.Valid() {
		return "", apperrors.New(apperrors.ErrCodeLabelDecodeFailed,
			fmt.Sprintf("unknown effect label %q", label))
	}
	return e, nil
}

// Scoring path identifiers recorded in prediction results.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// PredictionResult is the complete outcome of one interaction prediction.
type PredictionResult struct {
	Effect      Effect  `json:"effect"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`

	// Source records which scoring path produced the result.
	Source string `json:"source"`
}
