// Package food defines the nutrient schema the interaction classifier was
// trained on and the catalogue describing it.
package food

// Canonical nutrient attribute names.  These are the exact feature names the
// classifier's feature schema uses for the food side.
const (
	Fat           = "Fat"
	Carbohydrates = "Carbohydrates"
	Protein       = "Protein"

	VitaminCmg  = "Vitamin_C_mg"
	VitaminDug  = "Vitamin_D_ug"
	VitaminB12g = "Vitamin_B12_ug"
	VitaminB6mg = "Vitamin_B6_mg"
	VitaminAug  = "Vitamin_A_ug"
	VitaminEmg  = "Vitamin_E_mg"
	VitaminKug  = "Vitamin_K_ug"
	Folateug    = "Folate_ug"

	Calcium   = "Calcium"
	Iron      = "Iron"
	Magnesium = "Magnesium"
	Potassium = "Potassium"
	Sodium    = "Sodium"
	Zinc      = "Zinc"

	SaturatedFatG       = "Saturated_Fat_g"
	MonounsaturatedFatG = "Monounsaturated_Fat_g"
	PolyunsaturatedFatG = "Polyunsaturated_Fat_g"
	CholesterolMg       = "Cholesterol_mg"
)

// NutrientNames lists every canonical nutrient name in schema order.
var NutrientNames = []string{
	Fat, Carbohydrates, Protein,
	VitaminCmg, VitaminDug, VitaminB12g, VitaminB6mg,
	VitaminAug, VitaminEmg, VitaminKug, Folateug,
	Calcium, Iron, Magnesium, Potassium, Sodium, Zinc,
	SaturatedFatG, MonounsaturatedFatG, PolyunsaturatedFatG, CholesterolMg,
}

// NutrientProfile holds the per-100g nutrient values of a food as a fixed
// struct.  Absent nutrients are zero, never missing.
type NutrientProfile struct {
	Fat           float64 `json:"Fat"`
	Carbohydrates float64 `json:"Carbohydrates"`
	Protein       float64 `json:"Protein"`

	VitaminCmg  float64 `json:"Vitamin_C_mg"`
	VitaminDug  float64 `json:"Vitamin_D_ug"`
	VitaminB12g float64 `json:"Vitamin_B12_ug"`
	VitaminB6mg float64 `json:"Vitamin_B6_mg"`
	VitaminAug  float64 `json:"Vitamin_A_ug"`
	VitaminEmg  float64 `json:"Vitamin_E_mg"`
	VitaminKug  float64 `json:"Vitamin_K_ug"`
	Folateug    float64 `json:"Folate_ug"`

	Calcium   float64 `json:"Calcium"`
	Iron      float64 `json:"Iron"`
	Magnesium float64 `json:"Magnesium"`
	Potassium float64 `json:"Potassium"`
	Sodium    float64 `json:"Sodium"`
	Zinc      float64 `json:"Zinc"`

	SaturatedFatG       float64 `json:"Saturated_Fat_g"`
	MonounsaturatedFatG float64 `json:"Monounsaturated_Fat_g"`
	PolyunsaturatedFatG float64 `json:"Polyunsaturated_Fat_g"`
	CholesterolMg       float64 `json:"Cholesterol_mg"`
}

// Value returns the nutrient with the given canonical name.
func (p NutrientProfile) Value(name string) (float64, bool) {
	switch name {
	case Fat:
		return p.Fat, true
	case Carbohydrates:
		return p.Carbohydrates, true
	case Protein:
		return p.Protein, true
	case VitaminCmg:
		return p.VitaminCmg, true
	case VitaminDug:
		return p.VitaminDug, true
	case VitaminB12g:
		return p.VitaminB12g, true
	case VitaminB6mg:
		return p.VitaminB6mg, true
	case VitaminAug:
		return p.VitaminAug, true
	case VitaminEmg:
		return p.VitaminEmg, true
	case VitaminKug:
		return p.VitaminKug, true
	case Folateug:
		return p.Folateug, true
	case Calcium:
		return p.Calcium, true
	case Iron:
		return p.Iron, true
	case Magnesium:
		return p.Magnesium, true
	case Potassium:
		return p.Potassium, true
	case Sodium:
		return p.Sodium, true
	case Zinc:
		return p.Zinc, true
	case SaturatedFatG:
		return p.SaturatedFatG, true
	case MonounsaturatedFatG:
		return p.MonounsaturatedFatG, true
	case PolyunsaturatedFatG:
		return p.PolyunsaturatedFatG, true
	case CholesterolMg:
		return p.CholesterolMg, true
	}
	return 0, false
}

// Set assigns the nutrient with the given canonical name.  Unknown names are
// ignored and reported as false.
func (p *NutrientProfile) Set(name string, v float64) bool {
	switch name {
	case Fat:
		p.Fat = v
	case Carbohydrates:
		p.Carbohydrates = v
	case Protein:
		p.Protein = v
	case VitaminCmg:
		p.VitaminCmg = v
	case VitaminDug:
		p.VitaminDug = v
	case VitaminB12g:
		p.VitaminB12g = v
	case VitaminB6mg:
		p.VitaminB6mg = v
	case VitaminAug:
		p.VitaminAug = v
	case VitaminEmg:
		p.VitaminEmg = v
	case VitaminKug:
		p.VitaminKug = v
	case Folateug:
		p.Folateug = v
	case Calcium:
		p.Calcium = v
	case Iron:
		p.Iron = v
	case Magnesium:
		p.Magnesium = v
	case Potassium:
		p.Potassium = v
	case Sodium:
		p.Sodium = v
	case Zinc:
		p.Zinc = v
	case SaturatedFatG:
		p.SaturatedFatG = v
	case MonounsaturatedFatG:
		p.MonounsaturatedFatG = v
	case PolyunsaturatedFatG:
		p.PolyunsaturatedFatG = v
	case CholesterolMg:
		p.CholesterolMg = v
	default:
		return false
	}
	return true
}

// Map returns the nutrients keyed by canonical name, in a fresh map.
func (p NutrientProfile) Map() map[string]float64 {
	m := make(map[string]float64, len(NutrientNames))
	for _, name := range NutrientNames {
		v, _ := p.Value(name)
		m[name] = v
	}
	return m
}

// Category groups nutrient names for the catalogue endpoint.
type Category struct {
	Name      string   `json:"name"`
	Nutrients []string `json:"nutrients"`
}

// Catalogue returns the nutrient schema grouped by category, in stable
// order.
func Catalogue() []Category {
	return []Category{
		{Name: "macronutrients", Nutrients: []string{Fat, Carbohydrates, Protein}},
		{Name: "vitamins", Nutrients: []string{
			VitaminCmg, VitaminDug, VitaminB12g, VitaminB6mg,
			VitaminAug, VitaminEmg, VitaminKug, Folateug,
		}},
		{Name: "minerals", Nutrients: []string{Calcium, Iron, Magnesium, Potassium, Sodium, Zinc}},
		{Name: "lipids", Nutrients: []string{SaturatedFatG, MonounsaturatedFatG, PolyunsaturatedFatG, CholesterolMg}},
	}
}
