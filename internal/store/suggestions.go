package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"brasserie/internal/models"
)

// SuggestionBox owns the free-text feedback entries and their
// two-state triage flag.
type SuggestionBox struct {
	db *gorm.DB
}

// NewSuggestionBox creates a box backed by the given database handle.
func NewSuggestionBox(db *gorm.DB) *SuggestionBox {
	return &SuggestionBox{db: db}
}

// ListAll returns every suggestion, newest first.
func (b *SuggestionBox) ListAll(ctx context.Context) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	if err := b.db.Order("created_at desc").Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

// GetByID returns a single suggestion or ErrNotFound.
func (b *SuggestionBox) GetByID(ctx context.Context, id string) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	err := b.db.Where("id = ?", id).First(&suggestion).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// Create persists a new suggestion with status new. Both fields are
// trimmed and must be non-empty.
func (b *SuggestionBox) Create(ctx context.Context, customerName, content string) (*models.Suggestion, error) {
	suggestion := &models.Suggestion{
		ID:           uuid.NewString(),
		CustomerName: strings.TrimSpace(customerName),
		Content:      strings.TrimSpace(content),
		Status:       string(models.SuggestionStatusNew),
	}
	if err := models.ValidateSuggestion(suggestion); err != nil {
		return nil, err
	}
	if err := b.db.Create(suggestion).Error; err != nil {
		return nil, err
	}
	return suggestion, nil
}

// UpdateStatus flips the triage flag. Both directions are accepted.
func (b *SuggestionBox) UpdateStatus(ctx context.Context, id, status string) (*models.Suggestion, error) {
	if !models.ValidSuggestionStatus(status) {
		return nil, models.NewValidationError("invalid suggestion status: %s", status)
	}

	suggestion, err := b.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.db.Model(suggestion).Update("status", status).Error; err != nil {
		return nil, err
	}
	suggestion.Status = status
	return suggestion, nil
}

// Remove deletes a suggestion by id. A missing id is treated as
// already satisfied.
func (b *SuggestionBox) Remove(ctx context.Context, id string) error {
	return b.db.Where("id = ?", id).Delete(&models.Suggestion{}).Error
}
