package drug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFingerprint(t *testing.T) {
	fp, err := ComputeFingerprint(aspirinSMILES)
	require.NoError(t, err)

	assert.Equal(t, FingerprintBits, fp.Length)
	assert.Len(t, fp.Bits, FingerprintBits/8)
	assert.Greater(t, fp.OnBits, 0)
	assert.Less(t, fp.OnBits, FingerprintBits)
}

func TestComputeFingerprintDeterministic(t *testing.T) {
	a, err := ComputeFingerprint(caffeineSMILES)
	require.NoError(t, err)
	b, err := ComputeFingerprint(caffeineSMILES)
	require.NoError(t, err)
	assert.Equal(t, a.Bits, b.Bits)
}

func TestComputeFingerprintDistinguishesMolecules(t *testing.T) {
	a, err := ComputeFingerprint(aspirinSMILES)
	require.NoError(t, err)
	b, err := ComputeFingerprint(ethanolSMILES)
	require.NoError(t, err)
	assert.NotEqual(t, a.Bits, b.Bits)
}

func TestComputeFingerprintInvalidSMILES(t *testing.T) {
	_, err := ComputeFingerprint("")
	assert.Error(t, err)
}

func TestFingerprintBitAccess(t *testing.T) {
	fp, err := ComputeFingerprint(aspirinSMILES)
	require.NoError(t, err)

	// on-bit count matches per-bit reads
	on := 0
	for i := 0; i < fp.Length; i++ {
		if fp.Bit(i) {
			on++
			assert.Equal(t, 1.0, fp.BitValue(i))
		}
	}
	assert.Equal(t, fp.OnBits, on)

	// out of range reads are false
	assert.False(t, fp.Bit(-1))
	assert.False(t, fp.Bit(FingerprintBits))
	assert.Equal(t, 0.0, fp.BitValue(FingerprintBits+5))
}
