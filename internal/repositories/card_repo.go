package repositories

import "cardvault/internal/models"

// CardRepository defines the interface for card data access.
type CardRepository interface {
	GetAllByOwner(owner string) ([]models.Card, error)
	GetByID(id string) (*models.Card, error)
	Create(card *models.Card) error
	Update(card *models.Card) error
	Delete(id string) error
	CountByOwner(owner string) (int64, error)
}
