package drug

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/bits"
)

// FingerprintBits is the length of the structural fingerprint the classifier
// was trained with.
const FingerprintBits = 2048

// FingerprintRadius is the neighborhood radius used for environment hashing.
const FingerprintRadius = 2

// Fingerprint is a fixed-length structural bit vector.  Bit i is stored in
// byte i/8 at position i%8.
type Fingerprint struct {
	Bits   []byte `json:"bits"`
	Length int    `json:"length"`
	OnBits int    `json:"on_bits"`
}

// Bit reports whether the bit at index is set.  Out-of-range indexes return
// false.
func (fp *Fingerprint) Bit(index int) bool {
	if index < 0 || index >= fp.Length {
		return false
	}
	return fp.Bits[index/8]&(1<<uint(index%8)) != 0
}

// BitValue returns 1.0 when the bit at index is set, 0.0 otherwise.  This is
// the numeric form the feature assembler consumes.
func (fp *Fingerprint) BitValue(index int) float64 {
	if fp.Bit(index) {
		return 1.0
	}
	return 0.0
}

// ComputeFingerprint builds a circular fingerprint by hashing each atom's
// symbol together with its position and every radius level up to
// FingerprintRadius, folding the hashes into FingerprintBits bits.
func ComputeFingerprint(smiles string) (*Fingerprint, error) {
	atoms, err := ParseAtoms(smiles)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, FingerprintBits/8)
	for i, atom := range atoms {
		for r := 0; r <= FingerprintRadius; r++ {
			h := hashEnvironment(atom, r, i)
			idx := int(h % uint64(FingerprintBits))
			raw[idx/8] |= 1 << uint(idx%8)
		}
	}

	on := 0
	for _, b := range raw {
		on += bits.OnesCount8(b)
	}
	return &Fingerprint{Bits: raw, Length: FingerprintBits, OnBits: on}, nil
}

func hashEnvironment(atom Atom, radius, position int) uint64 {
	aromatic := 0
	if atom.Aromatic {
		aromatic = 1
	}
	data := fmt.Sprintf("%s:%d:%d:%d", atom.Symbol, aromatic, radius, position)
	sum := sha256.Sum256([]byte(data))
	return binary.BigEndian.Uint64(sum[:8])
}
