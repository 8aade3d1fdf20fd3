package interaction

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/drug"
	"github.com/nutrirx/DrugFood-Intelligence/internal/domain/food"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/storage"
	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

func TestNewClassifierBundle(t *testing.T) {
	b, err := NewClassifierBundle(testEnsemble(), []string{"no effect", "possible"}, []string{"MolWt", "Calcium"})
	require.NoError(t, err)
	assert.Equal(t, 2, b.NumFeatures())
	assert.Equal(t, []string{"MolWt", "Calcium"}, b.FeatureOrder())
}

func TestNewClassifierBundleRejectsIncomplete(t *testing.T) {
	labels := []string{"no effect", "possible"}
	order := []string{"MolWt"}

	tests := []struct {
		name  string
		build func() (*ClassifierBundle, error)
		code  apperrors.ErrorCode
	}{
		{"nil model", func() (*ClassifierBundle, error) {
			return NewClassifierBundle(nil, labels, order)
		}, apperrors.ErrCodeBundleIncomplete},
		{"no labels", func() (*ClassifierBundle, error) {
			return NewClassifierBundle(testEnsemble(), nil, order)
		}, apperrors.ErrCodeBundleIncomplete},
		{"label count mismatch", func() (*ClassifierBundle, error) {
			return NewClassifierBundle(testEnsemble(), []string{"no effect"}, order)
		}, apperrors.ErrCodeBundleIncomplete},
		{"label outside effect set", func() (*ClassifierBundle, error) {
			return NewClassifierBundle(testEnsemble(), []string{"no effect", "maybe"}, order)
		}, apperrors.ErrCodeLabelDecodeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.GetCode(err))
		})
	}
}

func TestNewClassifierBundleSynthesizesFeatureOrder(t *testing.T) {
	b, err := NewClassifierBundle(testEnsemble(), []string{"no effect", "possible"}, nil)
	require.NoError(t, err)

	order := b.FeatureOrder()
	require.Len(t, order, len(drug.DescriptorNames)+drug.FingerprintBits+len(food.NutrientNames))
	assert.Equal(t, drug.DescriptorNames, order[:len(drug.DescriptorNames)])
	assert.Equal(t, "FP_0", order[len(drug.DescriptorNames)])
	assert.Equal(t, food.NutrientNames[len(food.NutrientNames)-1], order[len(order)-1])
}

func TestBundleFeatureOrderIsACopy(t *testing.T) {
	order := []string{"MolWt", "Calcium"}
	b, err := NewClassifierBundle(testEnsemble(), []string{"no effect", "possible"}, order)
	require.NoError(t, err)

	got := b.FeatureOrder()
	got[0] = "mutated"
	assert.Equal(t, []string{"MolWt", "Calcium"}, b.FeatureOrder())
}

func writeArtifacts(t *testing.T, dir string, model *Ensemble, labels, features []string) {
	t.Helper()
	write := func(name string, v interface{}) {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), raw, 0o600))
	}
	if model != nil {
		write(ArtifactModel, model)
	}
	if labels != nil {
		write(ArtifactLabelDecoder, labelDecoderDoc{Labels: labels})
	}
	if features != nil {
		write(ArtifactFeatureOrder, featureOrderDoc{Features: features})
	}
}

func TestLoadBundle(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, testEnsemble(), []string{"no effect", "possible"}, []string{"MolWt", "Calcium"})

	b, err := LoadBundle(context.Background(), storage.NewLocalStore(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"MolWt", "Calcium"}, b.FeatureOrder())
}

func TestLoadBundleMissingArtifact(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
	}{
		{"missing model", func(t *testing.T, dir string) {
			writeArtifacts(t, dir, nil, []string{"no effect", "possible"}, []string{"MolWt"})
		}},
		{"missing labels", func(t *testing.T, dir string) {
			writeArtifacts(t, dir, testEnsemble(), nil, []string{"MolWt"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)
			_, err := LoadBundle(context.Background(), storage.NewLocalStore(dir))
			assert.Error(t, err)
		})
	}
}

func TestLoadBundleWithoutFeatureOrderUsesDefault(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, testEnsemble(), []string{"no effect", "possible"}, nil)

	b, err := LoadBundle(context.Background(), storage.NewLocalStore(dir))
	require.NoError(t, err)
	assert.Equal(t, DefaultFeatureOrder(), b.FeatureOrder())
}

func TestLoadBundleCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, testEnsemble(), []string{"no effect", "possible"}, []string{"MolWt"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, ArtifactLabelDecoder), []byte("{{"), 0o600))

	_, err := LoadBundle(context.Background(), storage.NewLocalStore(dir))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeArtifactLoadFailed, apperrors.GetCode(err))
}
