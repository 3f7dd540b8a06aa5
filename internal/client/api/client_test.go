package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabdeck/tabdeck/internal/models"
	"github.com/tabdeck/tabdeck/pkg/api"
)

func testRecord() *models.MutationRecord {
	return &models.MutationRecord{
		ID:         7,
		EntityType: models.EntityLink,
		EntityID:   "link-1",
		Operation:  models.OpCreate,
		Payload:    json.RawMessage(`{"title":"docs"}`),
		CreatedAt:  time.Now().UTC(),
	}
}

func TestApplyMutation_Success(t *testing.T) {
	var received api.Mutation
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/mutations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.ApplyMutationResponse{Applied: true})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.ApplyMutation(context.Background(), testRecord())
	require.NoError(t, err)

	assert.Equal(t, "link", received.EntityType)
	assert.Equal(t, "link-1", received.EntityID)
	assert.Equal(t, "create", received.Operation)
	assert.Equal(t, uint64(7), received.ClientSeq)
}

func TestApplyMutation_ServerErrorIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.ApplyMutation(context.Background(), testRecord())

	var retryable *models.RetryableError
	require.ErrorAs(t, err, &retryable)
	assert.Contains(t, retryable.Error(), "500")
}

func TestApplyMutation_TooManyRequestsIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.ApplyMutation(context.Background(), testRecord())

	var retryable *models.RetryableError
	assert.ErrorAs(t, err, &retryable)
}

func TestApplyMutation_ClientErrorIsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "entity not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.ApplyMutation(context.Background(), testRecord())

	var rejected *models.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Contains(t, rejected.Reason, "entity not found")
}

func TestApplyMutation_ConnectionFailureIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	err := client.ApplyMutation(context.Background(), testRecord())

	var retryable *models.RetryableError
	assert.ErrorAs(t, err, &retryable)
}
