package repositories

import "cardvault/internal/models"

// NoteRepository defines the interface for note data access.
type NoteRepository interface {
	GetByCard(cardID string) ([]models.Note, error)
	GetByID(id string) (*models.Note, error)
	Create(note *models.Note) error
	Delete(id string) error
	DeleteByCard(cardID string) error
	CountByOwner(owner string) (int64, error)
}
