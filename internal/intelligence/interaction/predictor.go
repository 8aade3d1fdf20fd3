package interaction

import (
	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/drug"
	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
)

// Predictor is the complete prediction pipeline: feature assembly, model
// scoring and fallback.  Model unavailability and inference failures never
// surface to the caller; the fallback path always yields a result.
type Predictor struct {
	classifier *Classifier
	fallback   *FallbackScorer
	log        logging.Logger
}

// NewPredictor wires the pipeline.  classifier may wrap a nil bundle, in
// which case every prediction takes the fallback path.
func NewPredictor(classifier *Classifier, fallback *FallbackScorer, log logging.Logger) *Predictor {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Predictor{classifier: classifier, fallback: fallback, log: log.Named("predictor")}
}

// ModelLoaded reports whether predictions use the classifier path.
func (p *Predictor) ModelLoaded() bool { return p.classifier.Available() }

// SetOverrideProbability retunes the fallback scorer's override probability
// on the live pipeline.
func (p *Predictor) SetOverrideProbability(prob float64) {
	p.fallback.SetOverrideProbability(prob)
}

// Predict produces the interaction prediction for a drug profile and a
// normalized nutrient profile.  It never returns an error: classifier
// problems degrade to the rule-based fallback.
func (p *Predictor) Predict(d *drug.Profile, n food.NutrientProfile) PredictionResult {
	if p.classifier.Available() {
		features := AssembleFeatures(p.classifier.FeatureOrder(), d, n)
		effect, confidence, err := p.classifier.Classify(features)
		if err == nil {
			return PredictionResult{
				Effect:      effect,
				Confidence:  confidence,
				Explanation: Explain(effect, confidence),
				Source:      SourceModel,
			}
		}
		p.log.Warn("classifier failed, using fallback", logging.Err(err))
	}

	effect, confidence := p.fallback.Score(n)
	return PredictionResult{
		Effect:      effect,
		Confidence:  confidence,
		Explanation: Explain(effect, confidence),
		Source:      SourceFallback,
	}
}
