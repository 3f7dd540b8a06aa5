// Package handlers contains the HTTP handlers of the reference sink server.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tabdeck/tabdeck/internal/models"
	"github.com/tabdeck/tabdeck/internal/server/storage"
	"github.com/tabdeck/tabdeck/pkg/api"
)

// EntityStorage is the slice of server storage the mutation handler needs
//
//go:generate moq -out entitystorage_mock.go . EntityStorage
type EntityStorage interface {
	Apply(ctx context.Context, mutation *models.MutationRecord) error
}

// MutationsHandler applies client mutations to the entity store
type MutationsHandler struct {
	logger  *slog.Logger
	storage EntityStorage
}

// NewMutationsHandler creates a new mutations handler
func NewMutationsHandler(logger *slog.Logger, entityStorage EntityStorage) *MutationsHandler {
	return &MutationsHandler{
		logger:  logger,
		storage: entityStorage,
	}
}

// ApplyMutation handles POST /api/v1/mutations
func (h *MutationsHandler) ApplyMutation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}

	var req api.Mutation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode mutation", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	record := &models.MutationRecord{
		CreatedAt:  req.CreatedAt,
		EntityType: models.EntityType(req.EntityType),
		EntityID:   req.EntityID,
		Operation:  models.Operation(req.Operation),
		Payload:    req.Payload,
	}

	if !models.KnownEntityType(record.EntityType) || !models.KnownOperation(record.Operation) || record.EntityID == "" {
		h.logger.Warn("rejecting malformed mutation",
			"entity_type", req.EntityType,
			"operation", req.Operation,
			"client_seq", req.ClientSeq)
		writeError(w, h.logger, http.StatusBadRequest, "invalid_request", "unknown entity type or operation")
		return
	}

	if err := h.storage.Apply(r.Context(), record); err != nil {
		if errors.Is(err, storage.ErrEntityNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "not_found", "entity not found")
			return
		}

		h.logger.Error("failed to apply mutation",
			"error", err,
			"entity_type", req.EntityType,
			"entity_id", req.EntityID,
			"operation", req.Operation)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "")
		return
	}

	h.logger.Info("mutation applied",
		"entity_type", req.EntityType,
		"entity_id", req.EntityID,
		"operation", req.Operation,
		"client_seq", req.ClientSeq)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(api.ApplyMutationResponse{Applied: true}); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(api.ErrorResponse{Error: code, Message: message}); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}
