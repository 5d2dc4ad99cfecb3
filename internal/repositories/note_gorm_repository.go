package repositories

import (
	"errors"
	"fmt"

	"cardvault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMNoteRepository is a GORM implementation of NoteRepository.
type GORMNoteRepository struct {
	db *gorm.DB
}

// NewGORMNoteRepository creates a new instance of GORMNoteRepository.
func NewGORMNoteRepository(db *gorm.DB) *GORMNoteRepository {
	return &GORMNoteRepository{db: db}
}

// GetByCard retrieves every note attached to the given card.
func (r *GORMNoteRepository) GetByCard(cardID string) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.Find(&notes, "card_id = ?", cardID).Error; err != nil {
		return nil, fmt.Errorf("failed to get notes for card %s: %w", cardID, err)
	}
	return notes, nil
}

// GetByID retrieves a single note by its ID.
func (r *GORMNoteRepository) GetByID(id string) (*models.Note, error) {
	var note models.Note
	if err := r.db.First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("note with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get note by ID %s: %w", id, err)
	}
	return &note, nil
}

// Create persists a new note, assigning an ID if none is set.
func (r *GORMNoteRepository) Create(note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	if err := r.db.Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// Delete removes a note by its ID.
func (r *GORMNoteRepository) Delete(id string) error {
	res := r.db.Delete(&models.Note{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete note: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("note with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteByCard removes every note attached to the given card. Deleting zero
// notes is not an error; a card may have none.
func (r *GORMNoteRepository) DeleteByCard(cardID string) error {
	if err := r.db.Delete(&models.Note{}, "card_id = ?", cardID).Error; err != nil {
		return fmt.Errorf("failed to delete notes for card %s: %w", cardID, err)
	}
	return nil
}

// CountByOwner returns the number of notes owned by the given user.
func (r *GORMNoteRepository) CountByOwner(owner string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Note{}).Where("owner = ?", owner).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count notes for owner %s: %w", owner, err)
	}
	return count, nil
}
