package interaction

import (
	"math/rand/v2"
	"sync"

	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
)

// Nutrient thresholds and confidence levels for the rule-based fallback.
const (
	vitaminKThreshold = 100.0 // µg, anticoagulant interaction territory
	calciumThreshold  = 150.0 // mg, absorption interference territory

	baseConfidence     = 0.75
	vitaminKConfidence = 0.68
	calciumConfidence  = 0.65

	overrideConfidenceMin = 0.60
	overrideConfidenceMax = 0.92
)

// overrideEffects is the effect pool sampled when the random override fires.
var overrideEffects = []Effect{EffectNoEffect, EffectPossible, EffectPositive, EffectHarmful}

// FallbackScorer produces rule-based predictions when the classifier is
// unavailable.  With probability OverrideProbability the deterministic rule
// outcome is replaced by a random effect, mimicking model variance; set the
// probability to 0 for fully deterministic behaviour.
type FallbackScorer struct {
	mu           sync.RWMutex
	overrideProb float64

	// randFloat returns a uniform value in [0, 1).  Overridable in tests.
	randFloat func() float64
	// randIntN returns a uniform value in [0, n).  Overridable in tests.
	randIntN func(n int) int
}

// NewFallbackScorer builds a scorer with the given override probability,
// clamped to [0, 1].  The default randomness source is safe for concurrent
// use.
func NewFallbackScorer(overrideProb float64) *FallbackScorer {
	s := &FallbackScorer{
		randFloat: rand.Float64,
		randIntN:  rand.IntN,
	}
	s.SetOverrideProbability(overrideProb)
	return s
}

// SetOverrideProbability retunes the override probability, clamped to
// [0, 1].  Safe for concurrent use with Score; configuration reloads call
// this on a live scorer.
func (s *FallbackScorer) SetOverrideProbability(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	s.mu.Lock()
	s.overrideProb = p
	s.mu.Unlock()
}

func (s *FallbackScorer) overrideProbability() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overrideProb
}

// Score derives an effect and confidence from the nutrient profile.
// Rules fire in fixed order: high vitamin K flags a possible interaction,
// then high calcium flags one only if nothing fired yet, raising confidence
// to at least its level.  The random override, when it fires, replaces both
// effect and confidence.
func (s *FallbackScorer) Score(n food.NutrientProfile) (Effect, float64) {
	effect := EffectNoEffect
	confidence := baseConfidence

	if n.VitaminKug > vitaminKThreshold {
		effect = EffectPossible
		confidence = vitaminKConfidence
	}
	if n.Calcium > calciumThreshold {
		if effect == EffectNoEffect {
			effect = EffectPossible
		}
		if confidence < calciumConfidence {
			confidence = calciumConfidence
		}
	}

	if p := s.overrideProbability(); p > 0 && s.randFloat() < p {
		effect = overrideEffects[s.randIntN(len(overrideEffects))]
		confidence = overrideConfidenceMin + s.randFloat()*(overrideConfidenceMax-overrideConfidenceMin)
	}
	return effect, confidence
}
