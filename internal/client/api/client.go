// Package api implements the HTTP client for the remote mutation sink.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tabdeck/tabdeck/internal/models"
	"github.com/tabdeck/tabdeck/pkg/api"
)

// Client is the HTTP client for the remote mutation sink
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new sink client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// ApplyMutation delivers one mutation record to the server. Failures are
// classified for the sync coordinator: transport errors, timeouts and
// server-side 5xx responses are retryable; application-level 4xx responses
// are permanent rejections.
func (c *Client) ApplyMutation(ctx context.Context, record *models.MutationRecord) error {
	reqBody := api.Mutation{
		EntityType: string(record.EntityType),
		EntityID:   record.EntityID,
		Operation:  string(record.Operation),
		Payload:    record.Payload,
		CreatedAt:  record.CreatedAt,
		ClientSeq:  record.ID,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return &models.RejectedError{Reason: fmt.Sprintf("unserializable mutation: %v", err)}
	}

	url := c.baseURL + "/api/v1/mutations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return &models.RejectedError{Reason: fmt.Sprintf("invalid request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failure: the server may never have seen the
		// mutation, retry it on the next pass.
		return &models.RetryableError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.RetryableError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil

	case resp.StatusCode == http.StatusRequestTimeout,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= 500:
		return &models.RetryableError{
			Err: fmt.Errorf("server error (%d): %s", resp.StatusCode, errorMessage(respBody)),
		}

	default:
		return &models.RejectedError{
			Reason: fmt.Sprintf("server rejected mutation (%d): %s", resp.StatusCode, errorMessage(respBody)),
		}
	}
}

// errorMessage extracts the server's error message, falling back to the raw body
func errorMessage(body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		if errResp.Message != "" {
			return errResp.Error + ": " + errResp.Message
		}
		return errResp.Error
	}
	return string(body)
}
