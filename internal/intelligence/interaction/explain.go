package interaction

import "fmt"

// explanationTemplates holds one fixed template per effect.  Each template
// takes the confidence formatted to two decimals.
var explanationTemplates = map[Effect]string{
	EffectHarmful:  "Significant interaction detected (confidence: %.2f). This food may interfere with drug efficacy or cause adverse effects. Consult your healthcare provider immediately.",
	EffectNegative: "Minor negative interaction possible (confidence: %.2f). The food may slightly reduce drug effectiveness or absorption.",
	EffectNoEffect: "No significant interaction expected (confidence: %.2f). The food is unlikely to affect drug absorption or metabolism significantly.",
	EffectPositive: "Beneficial interaction detected (confidence: %.2f). This food may enhance drug absorption, stability, or therapeutic effects.",
	EffectPossible: "Potential interaction identified (confidence: %.2f). Monitor for changes in drug effectiveness or side effects.",
}

// Explain renders the fixed explanation text for an effect, embedding the
// confidence to two decimal places.  Effects outside the template set get a
// generic completion message.
func Explain(effect Effect, confidence float64) string {
	tmpl, ok := explanationTemplates[effect]
	if !ok {
		return fmt.Sprintf("Interaction analysis completed with %.2f confidence.", confidence)
	}
	return fmt.Sprintf(tmpl, confidence)
}
