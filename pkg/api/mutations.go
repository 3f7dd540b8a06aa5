// Package api defines the wire types of the mutation endpoint shared by the
// client and the reference server.
package api

import (
	"encoding/json"
	"time"
)

// Mutation is one queued client edit on the wire
type Mutation struct {
	CreatedAt  time.Time       `json:"created_at"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Operation  string          `json:"operation"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	ClientSeq  uint64          `json:"client_seq"` // local queue id, for diagnostics
}

// ApplyMutationResponse is the server's answer to one applied mutation
type ApplyMutationResponse struct {
	Applied bool `json:"applied"` // false when the mutation was a no-op re-delivery
}

// ErrorResponse is returned with any non-2xx status
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
