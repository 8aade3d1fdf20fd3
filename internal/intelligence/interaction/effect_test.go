package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

func TestParseEffect(t *testing.T) {
	for _, e := range Effects {
		got, err := ParseEffect(string(e))
		require.NoError(t, err)
		assert.Equal(t, e, got)
		assert.True(t, got.Valid())
	}
}

func TestParseEffectRejectsUnknownLabels(t *testing.T) {
	for _, label := range []string{"", "NO EFFECT", "maybe", "severe", "no_effect"} {
		_, err := ParseEffect(label)
		require.Error(t, err, "label %q", label)
		assert.Equal(t, apperrors.ErrCodeLabelDecodeFailed, apperrors.GetCode(err))
	}
}

func TestEffectValid(t *testing.T) {
	assert.True(t, EffectHarmful.Valid())
	assert.False(t, Effect("benign").Valid())
	assert.False(t, Effect("").Valid())
}
