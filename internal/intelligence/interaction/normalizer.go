package interaction

import (
	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
)

// RawNutrient is one nutrient entry as reported by the upstream food data
// source.  Amount is a pointer because upstream records sometimes omit it.
type RawNutrient struct {
	NutrientID int      `json:"nutrient_id"`
	Amount     *float64 `json:"amount"`
}

// nutrientAliases maps each canonical nutrient name to the upstream nutrient
// IDs that may carry it, in priority order.  Where multiple IDs exist the
// earlier one is the preferred reporting form (e.g. Vitamin A as RAE before
// IU-derived, Folate as DFE before total).
var nutrientAliases = map[string][]int{
	food.Fat:           {1004},
	food.Carbohydrates: {1005},
	food.Protein:       {1003},

	food.VitaminCmg:  {1162},
	food.VitaminDug:  {1114},
	food.VitaminB12g: {1178},
	food.VitaminB6mg: {1175},
	food.VitaminAug:  {1106, 1104},
	food.VitaminEmg:  {1109},
	food.VitaminKug:  {1185},
	food.Folateug:    {1177, 1186},

	food.Calcium:   {1087},
	food.Iron:      {1089},
	food.Magnesium: {1090},
	food.Potassium: {1092},
	food.Sodium:    {1093},
	food.Zinc:      {1095},

	food.SaturatedFatG:       {1258},
	food.MonounsaturatedFatG: {1292},
	food.PolyunsaturatedFatG: {1293},
	food.CholesterolMg:       {1253},
}

// NormalizeNutrients maps raw upstream nutrient entries onto the canonical
// schema.  For each canonical name the alias IDs are tried in priority
// order; the first ID present in the input supplies the value.  Nutrients
// with no matching entry, a missing amount or a negative amount resolve to
// 0.0.  Normalization never fails.
func NormalizeNutrients(raw []RawNutrient) food.NutrientProfile {
	byID := make(map[int]*float64, len(raw))
	for _, r := range raw {
		// first occurrence of an ID wins
		if _, seen := byID[r.NutrientID]; !seen {
			byID[r.NutrientID] = r.Amount
		}
	}

	var profile food.NutrientProfile
	for _, name := range food.NutrientNames {
		for _, id := range nutrientAliases[name] {
			amount, ok := byID[id]
			if !ok {
				continue
			}
			if amount != nil && *amount >= 0 {
				profile.Set(name, *amount)
			}
			break
		}
	}
	return profile
}
