package cactus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL, Timeout: time.Second})
}

func TestCanonicalSMILES(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/aspirin/canonical_smiles", r.URL.Path)
		_, _ = w.Write([]byte("CC(=O)Oc1ccccc1C(=O)O\n"))
	})

	smiles, err := c.CanonicalSMILES(context.Background(), "aspirin")
	require.NoError(t, err)
	assert.Equal(t, "CC(=O)Oc1ccccc1C(=O)O", smiles)
}

func TestCanonicalSMILESTakesFirstLine(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("CCO\nC(C)O\n"))
	})

	smiles, err := c.CanonicalSMILES(context.Background(), "ethanol")
	require.NoError(t, err)
	assert.Equal(t, "CCO", smiles)
}

func TestCanonicalSMILESEscapesName(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte("C"))
	})

	_, err := c.CanonicalSMILES(context.Background(), "vitamin k1")
	require.NoError(t, err)
	assert.Equal(t, "/vitamin%20k1/canonical_smiles", gotPath)
}

func TestCanonicalSMILESNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.CanonicalSMILES(context.Background(), "not-a-drug")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeDrugNotFound, apperrors.GetCode(err))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCanonicalSMILESUpstreamErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   apperrors.ErrorCode
	}{
		{"server error", http.StatusInternalServerError, apperrors.ErrCodeSourceUnavailable},
		{"rate limited", http.StatusTooManyRequests, apperrors.ErrCodeSourceRateLimited},
		{"bad gateway", http.StatusBadGateway, apperrors.ErrCodeSourceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := c.CanonicalSMILES(context.Background(), "aspirin")
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.GetCode(err))
			assert.True(t, apperrors.IsUpstream(err))
		})
	}
}

func TestCanonicalSMILESTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	c.httpClient.Timeout = 50 * time.Millisecond

	_, err := c.CanonicalSMILES(context.Background(), "aspirin")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeSourceTimeout, apperrors.GetCode(err))
	assert.True(t, apperrors.IsUpstream(err))
}

func TestCanonicalSMILESEmptyInputs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("  \n"))
	})

	_, err := c.CanonicalSMILES(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeBadRequest, apperrors.GetCode(err))

	_, err = c.CanonicalSMILES(context.Background(), "aspirin")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeSourceParseError, apperrors.GetCode(err))
}
