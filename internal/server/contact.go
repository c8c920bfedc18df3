package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"folio/internal/model"

	"go.uber.org/zap"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	sub := model.NewSubmission(req.Name, req.Email, req.Subject, req.Message)
	if errs := sub.Validate(); len(errs) > 0 {
		s.writeError(w, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	if err := s.inbox.Save(r.Context(), &sub); err != nil {
		s.logger.Error("Failed to save submission", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Failed to save submission", nil)
		return
	}

	s.logger.Info("Contact submission received",
		zap.String("id", sub.ID.String()),
		zap.String("email", sub.Email))
	s.writeJSON(w, http.StatusCreated, envelope{
		"id":      sub.ID,
		"message": "Thanks for reaching out",
	})
}

func (s *Server) handleContactList(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	subs, err := s.inbox.List(r.Context(), limit)
	if err != nil {
		s.logger.Error("Failed to list submissions", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Failed to list submissions", nil)
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{"submissions": subs, "count": len(subs)})
}
