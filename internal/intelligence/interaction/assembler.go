package interaction

import (
	"fmt"

	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/drug"
	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
)

// DefaultFeatureOrder synthesizes the feature schema used when a bundle
// ships without one: drug descriptors first, then fingerprint bits, then
// the nutrient schema.
func DefaultFeatureOrder() []string {
	order := make([]string, 0, len(drug.DescriptorNames)+drug.FingerprintBits+len(food.NutrientNames))
	order = append(order, drug.DescriptorNames...)
	for i := 0; i < drug.FingerprintBits; i++ {
		order = append(order, fmt.Sprintf("FP_%d", i))
	}
	order = append(order, food.NutrientNames...)
	return order
}

// AssembleFeatures builds the classifier input vector from the drug profile
// and nutrient profile following featureOrder.  Each name is resolved
// against the drug side first, then the food side; names known to neither
// contribute 0.0.  The returned slice always has exactly len(featureOrder)
// elements, position i holding the value for featureOrder[i].
func AssembleFeatures(featureOrder []string, d *drug.Profile, n food.NutrientProfile) []float64 {
	features := make([]float64, len(featureOrder))
	for i, name := range featureOrder {
		if d != nil {
			if v, ok := d.Feature(name); ok {
				features[i] = v
				continue
			}
		}
		if v, ok := n.Value(name); ok {
			features[i] = v
			continue
		}
		features[i] = 0.0
	}
	return features
}
