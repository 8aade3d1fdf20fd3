package usda

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

const (
	searchBody = `{"foods": [{"fdcId": 168462, "description": "Spinach, raw"}]}`
	detailBody = `{
		"description": "Spinach, raw",
		"foodNutrients": [
			{"nutrient": {"id": 1185}, "amount": 482.9},
			{"nutrient": {"id": 1087}, "amount": 99},
			{"nutrient": {"id": 1003}}
		]
	}`
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL, APIKey: "test-key", Timeout: time.Second})
}

func spinachHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/foods/search":
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			assert.Equal(t, "spinach", r.URL.Query().Get("query"))
			assert.Equal(t, "1", r.URL.Query().Get("pageSize"))
			_, _ = w.Write([]byte(searchBody))
		case "/food/168462":
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			_, _ = w.Write([]byte(detailBody))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestLookupFood(t *testing.T) {
	c := newTestClient(t, spinachHandler(t))

	food, err := c.LookupFood(context.Background(), "spinach")
	require.NoError(t, err)

	assert.Equal(t, int64(168462), food.FDCID)
	assert.Equal(t, "Spinach, raw", food.Description)
	require.Len(t, food.Nutrients, 3)
	assert.Equal(t, 1185, food.Nutrients[0].ID)
	require.NotNil(t, food.Nutrients[0].Amount)
	assert.Equal(t, 482.9, *food.Nutrients[0].Amount)
	// missing amount stays nil for the normalizer to default
	assert.Nil(t, food.Nutrients[2].Amount)
}

func TestLookupFoodNoSearchHit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"foods": []}`))
	})

	_, err := c.LookupFood(context.Background(), "unobtainium stew")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeFoodNotFound, apperrors.GetCode(err))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLookupFoodUpstreamErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   apperrors.ErrorCode
	}{
		{"server error", http.StatusInternalServerError, apperrors.ErrCodeSourceUnavailable},
		{"rate limited", http.StatusTooManyRequests, apperrors.ErrCodeSourceRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := c.LookupFood(context.Background(), "spinach")
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.GetCode(err))
			assert.True(t, apperrors.IsUpstream(err))
		})
	}
}

func TestLookupFoodTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	c.httpClient.Timeout = 50 * time.Millisecond

	_, err := c.LookupFood(context.Background(), "spinach")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeSourceTimeout, apperrors.GetCode(err))
}

func TestLookupFoodMalformedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := c.LookupFood(context.Background(), "spinach")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeSourceParseError, apperrors.GetCode(err))
}

func TestLookupFoodEmptyName(t *testing.T) {
	c := newTestClient(t, spinachHandler(t))

	_, err := c.LookupFood(context.Background(), "  ")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeBadRequest, apperrors.GetCode(err))
}
