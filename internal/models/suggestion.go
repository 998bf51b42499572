package models

import (
	"strings"
	"time"
)

// SuggestionStatus is the two-state triage flag on a suggestion.
type SuggestionStatus string

const (
	SuggestionStatusNew      SuggestionStatus = "new"
	SuggestionStatusReviewed SuggestionStatus = "reviewed"
)

// ValidSuggestionStatus reports whether status is a known triage flag.
func ValidSuggestionStatus(status string) bool {
	switch SuggestionStatus(status) {
	case SuggestionStatusNew, SuggestionStatusReviewed:
		return true
	}
	return false
}

// Suggestion is a free-text feedback entry left by a customer.
type Suggestion struct {
	ID           string    `gorm:"primary_key" json:"id"`
	CustomerName string    `json:"customerName"`
	Content      string    `json:"content"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidateSuggestion validates a new suggestion. Both fields must be
// non-empty after trimming.
func ValidateSuggestion(s *Suggestion) error {
	if strings.TrimSpace(s.CustomerName) == "" {
		return NewValidationError("customer name is required")
	}
	if strings.TrimSpace(s.Content) == "" {
		return NewValidationError("suggestion content is required")
	}
	return nil
}
