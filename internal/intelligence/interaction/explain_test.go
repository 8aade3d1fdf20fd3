package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplainPerEffect(t *testing.T) {
	tests := []struct {
		effect Effect
		want   string
	}{
		{EffectHarmful, "Significant interaction detected (confidence: 0.91)"},
		{EffectNegative, "Minor negative interaction possible (confidence: 0.91)"},
		{EffectNoEffect, "No significant interaction expected (confidence: 0.91)"},
		{EffectPositive, "Beneficial interaction detected (confidence: 0.91)"},
		{EffectPossible, "Potential interaction identified (confidence: 0.91)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.effect), func(t *testing.T) {
			assert.Contains(t, Explain(tt.effect, 0.91), tt.want)
		})
	}
}

func TestExplainConfidenceTwoDecimals(t *testing.T) {
	assert.Contains(t, Explain(EffectPossible, 0.6789), "0.68")
	assert.Contains(t, Explain(EffectPossible, 0.7), "0.70")
	assert.Contains(t, Explain(EffectPossible, 1.0), "1.00")
}

func TestExplainUnknownEffect(t *testing.T) {
	got := Explain(Effect("mystery"), 0.5)
	assert.Equal(t, "Interaction analysis completed with 0.50 confidence.", got)
}
