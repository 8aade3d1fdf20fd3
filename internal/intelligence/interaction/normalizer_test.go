package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
)

func amount(v float64) *float64 { return &v }

func TestNormalizeNutrientsBasicMapping(t *testing.T) {
	raw := []RawNutrient{
		{NutrientID: 1004, Amount: amount(3.2)},   // fat
		{NutrientID: 1087, Amount: amount(125)},   // calcium
		{NutrientID: 1185, Amount: amount(482.9)}, // vitamin K
	}

	p := NormalizeNutrients(raw)

	assert.Equal(t, 3.2, p.Fat)
	assert.Equal(t, 125.0, p.Calcium)
	assert.Equal(t, 482.9, p.VitaminKug)
	// unmapped nutrients default to zero
	assert.Equal(t, 0.0, p.Protein)
	assert.Equal(t, 0.0, p.CholesterolMg)
}

func TestNormalizeNutrientsAliasPriority(t *testing.T) {
	// Vitamin A: RAE (1106) outranks IU-derived (1104)
	raw := []RawNutrient{
		{NutrientID: 1104, Amount: amount(900)},
		{NutrientID: 1106, Amount: amount(300)},
	}
	p := NormalizeNutrients(raw)
	assert.Equal(t, 300.0, p.VitaminAug)

	// only the lower-priority alias present: it still supplies the value
	p = NormalizeNutrients([]RawNutrient{{NutrientID: 1186, Amount: amount(42)}})
	assert.Equal(t, 42.0, p.Folateug)
}

func TestNormalizeNutrientsMalformedAmounts(t *testing.T) {
	raw := []RawNutrient{
		{NutrientID: 1003, Amount: nil},          // missing amount
		{NutrientID: 1005, Amount: amount(-7)},   // negative amount
		{NutrientID: 1162, Amount: amount(53.2)}, // valid
	}
	p := NormalizeNutrients(raw)

	assert.Equal(t, 0.0, p.Protein)
	assert.Equal(t, 0.0, p.Carbohydrates)
	assert.Equal(t, 53.2, p.VitaminCmg)
}

func TestNormalizeNutrientsDuplicateIDFirstWins(t *testing.T) {
	raw := []RawNutrient{
		{NutrientID: 1087, Amount: amount(100)},
		{NutrientID: 1087, Amount: amount(999)},
	}
	p := NormalizeNutrients(raw)
	assert.Equal(t, 100.0, p.Calcium)
}

func TestNormalizeNutrientsEmptyInput(t *testing.T) {
	p := NormalizeNutrients(nil)
	assert.Equal(t, food.NutrientProfile{}, p)

	// every canonical name resolves to zero
	for name, v := range p.Map() {
		assert.Zero(t, v, name)
	}
}

func TestNutrientAliasesCoverSchema(t *testing.T) {
	for _, name := range food.NutrientNames {
		ids, ok := nutrientAliases[name]
		assert.True(t, ok, "no aliases for %s", name)
		assert.NotEmpty(t, ids, "empty aliases for %s", name)
	}
}
