package drug

import (
	"strconv"
	"strings"
)

// Profile is the complete drug-side feature source: physicochemical
// descriptors plus the structural fingerprint.  It is the first tier the
// feature assembler consults when resolving a feature name.
type Profile struct {
	Name        string        `json:"name"`
	SMILES      string        `json:"smiles"`
	Descriptors DescriptorSet `json:"descriptors"`
	Fingerprint *Fingerprint  `json:"fingerprint,omitempty"`
}

// NewProfile computes descriptors and fingerprint for the given structure.
func NewProfile(name, smiles string) (*Profile, error) {
	desc, err := ComputeDescriptors(smiles)
	if err != nil {
		return nil, err
	}
	fp, err := ComputeFingerprint(smiles)
	if err != nil {
		return nil, err
	}
	return &Profile{Name: name, SMILES: smiles, Descriptors: desc, Fingerprint: fp}, nil
}

// Feature resolves a feature name against the drug profile.  Descriptor
// names map to descriptor values; "FP_<i>" names map to fingerprint bits.
// The second return is false when the name belongs to neither namespace.
func (p *Profile) Feature(name string) (float64, bool) {
	if v, ok := p.Descriptors.Value(name); ok {
		return v, true
	}
	if idx, ok := fingerprintIndex(name); ok {
		if p.Fingerprint == nil {
			return 0.0, true
		}
		return p.Fingerprint.BitValue(idx), true
	}
	return 0, false
}

func fingerprintIndex(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "FP_")
	if !ok {
		return 0, false
	}
	idx, err := strconv.Atoi(rest)
	if err != nil || idx < 0 || idx >= FingerprintBits {
		return 0, false
	}
	return idx, true
}
