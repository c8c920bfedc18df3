package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"folio/internal/content"

	"go.uber.org/zap"
)

type envelope map[string]any

// writeJSON sends payload with the standard success/timestamp fields filled
// in from the status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload envelope) {
	payload["success"] = status < http.StatusBadRequest
	payload["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeError sends a human-readable error plus an optional validation list.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string, errs []string) {
	payload := envelope{"error": msg}
	if len(errs) > 0 {
		payload["errors"] = errs
	}
	s.writeJSON(w, status, payload)
}

// writeStoreError maps a store failure onto an HTTP status. Anything the
// store did not classify becomes a 500; nothing escapes as a raw fault.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	var opErr *content.OpError
	if errors.As(err, &opErr) {
		switch opErr.Kind {
		case content.KindNotFound:
			s.writeError(w, http.StatusNotFound, "Content not found", opErr.Msgs)
			return
		case content.KindValidation:
			s.writeError(w, http.StatusBadRequest, "Validation failed", opErr.Msgs)
			return
		}
	}
	s.logger.Error("Unexpected store error", zap.Error(err))
	s.writeError(w, http.StatusInternalServerError, err.Error(), nil)
}
