// Package drug derives molecular descriptors and structural fingerprints
// from SMILES strings.  The routines here use atom-level heuristics rather
// than a full cheminformatics toolkit; they are deterministic, fast and
// sufficient for the feature set the interaction classifier was trained on.
package drug

import (
	"strings"

	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// Atom is a single parsed atom from a SMILES string.
type Atom struct {
	// Symbol is the element symbol with canonical capitalisation ("Cl", "N").
	Symbol string

	// Aromatic is true when the atom appeared in lowercase aromatic notation.
	Aromatic bool
}

// twoLetterElements lists the multi-character element symbols that occur in
// drug-like molecules and must be tokenized before single letters.
var twoLetterElements = []string{"Cl", "Br", "Si", "Se", "Na", "Li", "Mg", "Ca", "Fe", "Zn"}

// ParseAtoms tokenizes a SMILES string into its atoms, preserving aromatic
// flags.  Bond symbols, branch parentheses, ring-closure digits and charges
// are skipped; bracket atoms contribute their element symbol.  Returns an
// error when the string contains no atoms.
func ParseAtoms(smiles string) ([]Atom, error) {
	if strings.TrimSpace(smiles) == "" {
		return nil, apperrors.New(apperrors.ErrCodeDrugInvalidSMILES, "empty SMILES string")
	}

	var atoms []Atom
	i := 0
	for i < len(smiles) {
		c := smiles[i]
		switch {
		case c == '[':
			end := strings.IndexByte(smiles[i:], ']')
			if end < 0 {
				return nil, apperrors.New(apperrors.ErrCodeDrugInvalidSMILES, "unterminated bracket atom")
			}
			if a, ok := bracketAtom(smiles[i+1 : i+end]); ok {
				atoms = append(atoms, a)
			}
			i += end + 1
		case c >= 'A' && c <= 'Z':
			sym := string(c)
			if i+1 < len(smiles) {
				two := smiles[i : i+2]
				for _, el := range twoLetterElements {
					if two == el {
						sym = el
						break
					}
				}
			}
			atoms = append(atoms, Atom{Symbol: sym})
			i += len(sym)
		case c == 'c' || c == 'n' || c == 'o' || c == 's' || c == 'p' || c == 'b':
			atoms = append(atoms, Atom{Symbol: strings.ToUpper(string(c)), Aromatic: true})
			i++
		default:
			// bonds, digits, parentheses, stereo markers
			i++
		}
	}
	if len(atoms) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeDrugInvalidSMILES, "no atoms found in SMILES")
	}
	return atoms, nil
}

// bracketAtom extracts the element from the inside of a bracket atom
// expression such as "NH2+", "nH" or "13C".  Hydrogen-only brackets are
// dropped since implicit hydrogens are estimated separately.
func bracketAtom(body string) (Atom, bool) {
	// skip isotope digits
	j := 0
	for j < len(body) && body[j] >= '0' && body[j] <= '9' {
		j++
	}
	if j >= len(body) {
		return Atom{}, false
	}
	c := body[j]
	switch {
	case c >= 'A' && c <= 'Z':
		sym := string(c)
		if j+1 < len(body) && body[j+1] >= 'a' && body[j+1] <= 'z' {
			two := body[j : j+2]
			for _, el := range twoLetterElements {
				if two == el {
					sym = el
					break
				}
			}
		}
		if sym == "H" {
			return Atom{}, false
		}
		return Atom{Symbol: sym}, true
	case c == 'c' || c == 'n' || c == 'o' || c == 's' || c == 'p' || c == 'b':
		return Atom{Symbol: strings.ToUpper(string(c)), Aromatic: true}, true
	}
	return Atom{}, false
}

// ringClosureCount counts distinct ring-closure labels in a SMILES string.
// Each label digit appears exactly twice (open and close), so the ring count
// is half the digit occurrences.  %nn two-digit labels are handled.
func ringClosureCount(smiles string) int {
	occurrences := 0
	i := 0
	for i < len(smiles) {
		c := smiles[i]
		switch {
		case c == '[':
			// digits inside brackets are isotopes/charges, not ring labels
			end := strings.IndexByte(smiles[i:], ']')
			if end < 0 {
				return occurrences / 2
			}
			i += end + 1
		case c == '%' && i+2 < len(smiles):
			occurrences++
			i += 3
		case c >= '0' && c <= '9':
			occurrences++
			i++
		default:
			i++
		}
	}
	return occurrences / 2
}
