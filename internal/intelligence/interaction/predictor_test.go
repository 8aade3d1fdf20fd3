package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/drug"
	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
)

func TestPredictorModelPath(t *testing.T) {
	p := NewPredictor(testClassifier(t), NewFallbackScorer(0), nil)
	require.True(t, p.ModelLoaded())

	// the test bundle splits on Vitamin_K_ug < 0.5
	result := p.Predict(nil, food.NutrientProfile{VitaminKug: 300})

	assert.Equal(t, SourceModel, result.Source)
	assert.Equal(t, EffectPossible, result.Effect)
	assert.Greater(t, result.Confidence, 0.5)
	assert.Contains(t, result.Explanation, "Potential interaction identified")
}

func TestPredictorModelPathWithSynthesizedOrder(t *testing.T) {
	b, err := NewClassifierBundle(testEnsemble(), []string{"no effect", "possible"}, nil)
	require.NoError(t, err)
	p := NewPredictor(NewClassifier(b), NewFallbackScorer(0), nil)
	require.True(t, p.ModelLoaded())

	// the default order puts MolWt first; ethanol's mass clears the
	// test ensemble's 0.5 split
	profile, err := drug.NewProfile("ethanol", "CCO")
	require.NoError(t, err)
	result := p.Predict(profile, food.NutrientProfile{})

	assert.Equal(t, SourceModel, result.Source)
	assert.Equal(t, EffectPossible, result.Effect)
}

func TestPredictorFallbackPath(t *testing.T) {
	p := NewPredictor(NewClassifier(nil), NewFallbackScorer(0), nil)
	require.False(t, p.ModelLoaded())

	result := p.Predict(nil, food.NutrientProfile{VitaminKug: 300})

	assert.Equal(t, SourceFallback, result.Source)
	assert.Equal(t, EffectPossible, result.Effect)
	assert.InDelta(t, 0.68, result.Confidence, 1e-9)
	assert.Contains(t, result.Explanation, "0.68")
}

func TestPredictorNeverFails(t *testing.T) {
	p := NewPredictor(NewClassifier(nil), NewFallbackScorer(0), nil)

	// empty inputs still produce a complete result
	result := p.Predict(nil, food.NutrientProfile{})
	assert.True(t, result.Effect.Valid())
	assert.Greater(t, result.Confidence, 0.0)
	assert.NotEmpty(t, result.Explanation)
	assert.Equal(t, SourceFallback, result.Source)
}

func TestPredictorExplanationMatchesConfidence(t *testing.T) {
	p := NewPredictor(testClassifier(t), NewFallbackScorer(0), nil)

	result := p.Predict(nil, food.NutrientProfile{VitaminKug: 300})
	assert.Contains(t, result.Explanation, "0.88") // softmax of {0, 2}
}
