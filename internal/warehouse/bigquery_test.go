package warehouse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *BigQuery {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	b := NewBigQuery(BigQueryOptions{BaseURL: srv.URL, AccessToken: "test-token"})
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestDatasetExists(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		b := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/projects/p/datasets/d", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		}))

		exists, err := b.DatasetExists(context.Background(), "p", "d")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("absent", func(t *testing.T) {
		b := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		exists, err := b.DatasetExists(context.Background(), "p", "d")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("unexpected status", func(t *testing.T) {
		b := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		_, err := b.DatasetExists(context.Background(), "p", "d")
		assert.ErrorContains(t, err, "unexpected status 403")
	})
}

func TestCreateDataset(t *testing.T) {
	var got map[string]any
	b := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/projects/p/datasets", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, b.CreateDataset(context.Background(), "p", "d"))
	assert.Equal(t, map[string]any{
		"datasetReference": map[string]any{"projectId": "p", "datasetId": "d"},
	}, got)
}

func TestTableExists(t *testing.T) {
	b := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/p/datasets/d/tables/inbound_rtp", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))

	exists, err := b.TableExists(context.Background(), "p", "d", "inbound_rtp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateTable(t *testing.T) {
	var got map[string]any
	b := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/projects/p/datasets/d/tables", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))

	schema := Schema{
		{Name: "serviceUUID", Type: TypeString, Required: true},
		{Name: "marker", Type: TypeString},
	}
	require.NoError(t, b.CreateTable(context.Background(), "p", "d", "t", schema))

	assert.Equal(t, map[string]any{
		"tableReference": map[string]any{"projectId": "p", "datasetId": "d", "tableId": "t"},
		"schema": map[string]any{
			"fields": []any{
				map[string]any{"name": "serviceUUID", "type": "STRING", "mode": "REQUIRED"},
				map[string]any{"name": "marker", "type": "STRING", "mode": "NULLABLE"},
			},
		},
	}, got)
}

func TestCreateTableError(t *testing.T) {
	b := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusForbidden)
	}))

	err := b.CreateTable(context.Background(), "p", "d", "t", Schema{{Name: "f", Type: TypeString}})
	assert.ErrorContains(t, err, "unexpected status 403")
}
