package repositories

import (
	"errors"
	"fmt"

	"cardvault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCardRepository is a GORM implementation of CardRepository.
type GORMCardRepository struct {
	db *gorm.DB
}

// NewGORMCardRepository creates a new instance of GORMCardRepository.
func NewGORMCardRepository(db *gorm.DB) *GORMCardRepository {
	return &GORMCardRepository{db: db}
}

// GetAllByOwner retrieves every card owned by the given user.
func (r *GORMCardRepository) GetAllByOwner(owner string) ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Find(&cards, "owner = ?", owner).Error; err != nil {
		return nil, fmt.Errorf("failed to get cards for owner %s: %w", owner, err)
	}
	return cards, nil
}

// GetByID retrieves a single card by its ID.
func (r *GORMCardRepository) GetByID(id string) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("card with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get card by ID %s: %w", id, err)
	}
	return &card, nil
}

// Create persists a new card, assigning an ID if none is set.
func (r *GORMCardRepository) Create(card *models.Card) error {
	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	if err := r.db.Create(card).Error; err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

// Update replaces an existing card record wholesale.
func (r *GORMCardRepository) Update(card *models.Card) error {
	res := r.db.Save(card)
	if res.Error != nil {
		return fmt.Errorf("failed to update card: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("card with ID %s: %w", card.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a card by its ID. A repeated delete reports not found.
func (r *GORMCardRepository) Delete(id string) error {
	res := r.db.Delete(&models.Card{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete card: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("card with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountByOwner returns the number of cards owned by the given user.
func (r *GORMCardRepository) CountByOwner(owner string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Card{}).Where("owner = ?", owner).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cards for owner %s: %w", owner, err)
	}
	return count, nil
}
