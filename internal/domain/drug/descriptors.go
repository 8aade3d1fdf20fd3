package drug

import (
	"math"
)

// Descriptor names in the order the classifier's feature schema uses them.
const (
	DescMolWt        = "MolWt"
	DescLogP         = "LogP"
	DescHBA          = "HBA"
	DescHBD          = "HBD"
	DescTPSA         = "TPSA"
	DescRotBonds     = "RotBonds"
	DescRingCount    = "RingCount"
	DescFractionCSP3 = "FractionCSP3"
	DescBalabanJ     = "BalabanJ"
	DescBertzCT      = "BertzCT"
)

// DescriptorNames lists all descriptor names in canonical order.
var DescriptorNames = []string{
	DescMolWt, DescLogP, DescHBA, DescHBD, DescTPSA,
	DescRotBonds, DescRingCount, DescFractionCSP3, DescBalabanJ, DescBertzCT,
}

// DescriptorSet holds the physicochemical descriptors of a molecule as a
// fixed struct.  All values are float64; count-like descriptors hold whole
// numbers.
type DescriptorSet struct {
	MolWt        float64 `json:"MolWt"`
	LogP         float64 `json:"LogP"`
	HBA          float64 `json:"HBA"`
	HBD          float64 `json:"HBD"`
	TPSA         float64 `json:"TPSA"`
	RotBonds     float64 `json:"RotBonds"`
	RingCount    float64 `json:"RingCount"`
	FractionCSP3 float64 `json:"FractionCSP3"`
	BalabanJ     float64 `json:"BalabanJ"`
	BertzCT      float64 `json:"BertzCT"`
}

// Value returns the descriptor with the given canonical name.
func (d DescriptorSet) Value(name string) (float64, bool) {
	switch name {
	case DescMolWt:
		return d.MolWt, true
	case DescLogP:
		return d.LogP, true
	case DescHBA:
		return d.HBA, true
	case DescHBD:
		return d.HBD, true
	case DescTPSA:
		return d.TPSA, true
	case DescRotBonds:
		return d.RotBonds, true
	case DescRingCount:
		return d.RingCount, true
	case DescFractionCSP3:
		return d.FractionCSP3, true
	case DescBalabanJ:
		return d.BalabanJ, true
	case DescBertzCT:
		return d.BertzCT, true
	}
	return 0, false
}

// Map returns the descriptors keyed by canonical name, in a fresh map.
func (d DescriptorSet) Map() map[string]float64 {
	m := make(map[string]float64, len(DescriptorNames))
	for _, name := range DescriptorNames {
		v, _ := d.Value(name)
		m[name] = v
	}
	return m
}

// atomicWeights covers the elements tokenized by ParseAtoms.
var atomicWeights = map[string]float64{
	"H": 1.008, "B": 10.811, "C": 12.011, "N": 14.007, "O": 15.999,
	"F": 18.998, "Na": 22.990, "Mg": 24.305, "Si": 28.086, "P": 30.974,
	"S": 32.06, "Cl": 35.45, "Ca": 40.078, "Fe": 55.845, "Zn": 65.38,
	"Se": 78.971, "Br": 79.904, "I": 126.904, "Li": 6.941,
}

// crippen-style per-atom hydrophobicity contributions.
var logPContrib = map[string]float64{
	"C": 0.36, "N": -0.60, "O": -0.63, "S": 0.26, "P": -0.45,
	"F": 0.22, "Cl": 0.65, "Br": 0.86, "I": 1.12,
}

// polar surface contributions for heteroatoms.
var tpsaContrib = map[string]float64{
	"N": 12.03, "O": 20.23, "S": 25.30, "P": 13.59,
}

// ComputeDescriptors derives a DescriptorSet from a SMILES string using
// additive atom contributions and simple topological counts.
func ComputeDescriptors(smiles string) (DescriptorSet, error) {
	atoms, err := ParseAtoms(smiles)
	if err != nil {
		return DescriptorSet{}, err
	}

	var (
		molWt       float64
		logP        float64
		tpsa        float64
		hba         float64
		carbons     int
		sp3Carbons  int
		heteroAtoms int
	)
	for _, a := range atoms {
		molWt += atomicWeights[a.Symbol]
		logP += logPContrib[a.Symbol]
		tpsa += tpsaContrib[a.Symbol]
		switch a.Symbol {
		case "N", "O":
			hba++
			heteroAtoms++
		case "S", "P", "F", "Cl", "Br", "I":
			heteroAtoms++
		case "C":
			carbons++
			if !a.Aromatic {
				sp3Carbons++
			}
		}
	}

	// Implicit hydrogens estimated from carbon count; aromatic carbons carry
	// roughly one hydrogen, aliphatic roughly two.
	implicitH := float64(sp3Carbons)*2 + float64(carbons-sp3Carbons)
	molWt += implicitH * atomicWeights["H"]

	hbd := countDonors(smiles)
	tpsa += hbd * 8.0

	rings := float64(ringClosureCount(smiles))
	rot := countRotatableBonds(smiles, len(atoms), int(rings))

	fracCSP3 := 0.0
	if carbons > 0 {
		fracCSP3 = float64(sp3Carbons) / float64(carbons)
	}

	n := float64(len(atoms))
	// Balaban-like connectivity index: decreases with ring fusion, normalised
	// by atom count.
	balaban := 0.0
	if n > 1 {
		balaban = (n / (n + rings*2)) * 3.0
	}
	// Bertz-like complexity: grows with size, heteroatom variety and rings.
	bertz := 0.0
	if n > 1 {
		bertz = n*math.Log2(n) + float64(heteroAtoms)*4.0 + rings*12.0
	}

	return DescriptorSet{
		MolWt:        round2(molWt),
		LogP:         round2(logP),
		HBA:          hba,
		HBD:          hbd,
		TPSA:         round2(tpsa),
		RotBonds:     rot,
		RingCount:    rings,
		FractionCSP3: round4(fracCSP3),
		BalabanJ:     round4(balaban),
		BertzCT:      round2(bertz),
	}, nil
}

// countDonors counts hydrogen bond donor groups written explicitly in the
// SMILES ([OH], [NH], [NH2], [NH3]) plus terminal hydroxyls in common acid
// notation.
func countDonors(smiles string) float64 {
	donors := 0.0
	for i := 0; i+1 < len(smiles); i++ {
		if smiles[i] != '[' {
			continue
		}
		j := i + 1
		for j < len(smiles) && smiles[j] != ']' {
			j++
		}
		body := smiles[i+1 : j]
		if containsAny(body, "OH", "oH") {
			donors++
		}
		if containsAny(body, "NH", "nH") {
			donors++
		}
	}
	// carboxylic acids and alcohols written without brackets: "C(=O)O" and
	// trailing "O" after a saturated carbon both carry an OH in practice
	for i := 0; i+5 <= len(smiles); i++ {
		if smiles[i:i+5] == "C(=O)" && i+5 < len(smiles) && smiles[i+5] == 'O' {
			donors++
		}
	}
	return donors
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if len(sub) <= len(s) {
			for i := 0; i+len(sub) <= len(s); i++ {
				if s[i:i+len(sub)] == sub {
					return true
				}
			}
		}
	}
	return false
}

// countRotatableBonds estimates rotatable bonds from chain length: bonds
// between heavy atoms minus ring bonds and terminal bonds.
func countRotatableBonds(smiles string, atomCount, rings int) float64 {
	if atomCount < 3 {
		return 0
	}
	chainBonds := atomCount - 1 + rings // edges in the molecular graph
	rigid := rings * 5                  // bonds locked inside rings, 5 per ring on average
	rot := chainBonds - rigid - 2       // minus two terminal bonds
	if rot < 0 {
		rot = 0
	}
	// double and triple bonds are not rotatable
	for i := 0; i < len(smiles); i++ {
		if smiles[i] == '=' || smiles[i] == '#' {
			if rot > 0 {
				rot--
			}
		}
	}
	return float64(rot)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
