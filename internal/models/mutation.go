package models

import (
	"encoding/json"
	"time"
)

// EntityType identifies which dashboard entity a mutation touches.
type EntityType string

// Entity types known to the mutation queue
const (
	EntityLink     EntityType = "link"
	EntityCategory EntityType = "category"
	EntityTag      EntityType = "tag"
	EntityWidget   EntityType = "widget"
	EntityLinkTag  EntityType = "link-tag-association"
)

// Operation identifies what a mutation does to its entity.
type Operation string

// Operations known to the mutation queue
const (
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpDelete  Operation = "delete"
	OpReorder Operation = "reorder"
)

// KnownEntityType reports whether t is a recognized entity type.
func KnownEntityType(t EntityType) bool {
	switch t {
	case EntityLink, EntityCategory, EntityTag, EntityWidget, EntityLinkTag:
		return true
	}
	return false
}

// KnownOperation reports whether op is a recognized operation.
func KnownOperation(op Operation) bool {
	switch op {
	case OpCreate, OpUpdate, OpDelete, OpReorder:
		return true
	}
	return false
}

// MutationRecord is one pending edit buffered on the client while offline.
// Records are replayed to the remote sink in ID order; IDs are assigned by
// the queue store and are monotonically increasing within one local queue.
type MutationRecord struct {
	CreatedAt  time.Time       `json:"created_at"` // diagnostics only, never used for ordering
	EntityType EntityType      `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Operation  Operation       `json:"operation"`
	LastError  string          `json:"last_error,omitempty"` // last sync failure reason
	Payload    json.RawMessage `json:"payload,omitempty"`    // operation-specific data
	ID         uint64          `json:"id"`
	Attempts   int             `json:"attempts"` // failed sync attempts so far
}

// EntityKey returns the grouping key for per-entity ordering and coalescing.
func (r *MutationRecord) EntityKey() string {
	return string(r.EntityType) + "/" + r.EntityID
}

// Clone creates a deep copy of the record
func (r *MutationRecord) Clone() *MutationRecord {
	payload := make(json.RawMessage, len(r.Payload))
	copy(payload, r.Payload)

	return &MutationRecord{
		ID:         r.ID,
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		Operation:  r.Operation,
		Payload:    payload,
		CreatedAt:  r.CreatedAt,
		Attempts:   r.Attempts,
		LastError:  r.LastError,
	}
}
