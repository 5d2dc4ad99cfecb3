package repositories

import "cardvault/internal/models"

// WishlistRepository defines the interface for wishlist item data access.
type WishlistRepository interface {
	GetAllByOwner(owner string) ([]models.WishlistItem, error)
	GetByID(id string) (*models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	Update(item *models.WishlistItem) error
	Delete(id string) error
	CountByOwner(owner string) (int64, error)
}
