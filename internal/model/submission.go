package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	SubmissionReceived SubmissionStatus = "received"
	SubmissionReviewed SubmissionStatus = "reviewed"
)

// Submission is a contact-form message. The Message body is the heavy part
// and is stored separately from the metadata.
type Submission struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Subject    string           `json:"subject,omitempty"`
	Message    string           `json:"message,omitempty"`
	Status     SubmissionStatus `json:"status"`
	ReceivedAt time.Time        `json:"received_at"`
}

// NewSubmission creates a submission with the given sender details and
// default values.
func NewSubmission(name, email, subject, message string) Submission {
	return Submission{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		Subject:    subject,
		Message:    message,
		Status:     SubmissionReceived,
		ReceivedAt: time.Now(),
	}
}

// Validate checks the sender-supplied fields.
func (s *Submission) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	} else if !strings.Contains(s.Email, "@") {
		errs = append(errs, "email is not valid")
	}
	if strings.TrimSpace(s.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}
