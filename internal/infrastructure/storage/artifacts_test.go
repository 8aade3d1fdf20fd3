package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

func TestLocalStoreFetch(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`{"labels":["no effect","possible"]}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "label_decoder.json"), content, 0o600))

	store := NewLocalStore(dir)
	got, err := store.Fetch(context.Background(), "label_decoder.json")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLocalStoreFetchMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Fetch(context.Background(), "model.json")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeArtifactLoadFailed, apperrors.GetCode(err))
}

func TestLocalStoreRejectsPathTraversal(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	for _, name := range []string{"", "../etc/passwd", "sub/model.json", `sub\model.json`} {
		_, err := store.Fetch(context.Background(), name)
		require.Error(t, err, "name %q", name)
		assert.Equal(t, apperrors.ErrCodeBadRequest, apperrors.GetCode(err))
	}
}
