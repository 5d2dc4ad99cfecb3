package repositories

import (
	"errors"
	"fmt"

	"cardvault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{db: db}
}

// GetAllByOwner retrieves every wishlist item owned by the given user.
func (r *GORMWishlistRepository) GetAllByOwner(owner string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Find(&items, "owner = ?", owner).Error; err != nil {
		return nil, fmt.Errorf("failed to get wishlist items for owner %s: %w", owner, err)
	}
	return items, nil
}

// GetByID retrieves a single wishlist item by its ID.
func (r *GORMWishlistRepository) GetByID(id string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wishlist item with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wishlist item by ID %s: %w", id, err)
	}
	return &item, nil
}

// Create persists a new wishlist item, assigning an ID if none is set.
func (r *GORMWishlistRepository) Create(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}
	return nil
}

// Update replaces an existing wishlist item wholesale.
func (r *GORMWishlistRepository) Update(item *models.WishlistItem) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist item with ID %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a wishlist item by its ID.
func (r *GORMWishlistRepository) Delete(id string) error {
	res := r.db.Delete(&models.WishlistItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist item with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountByOwner returns the number of wishlist items owned by the given user.
func (r *GORMWishlistRepository) CountByOwner(owner string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.WishlistItem{}).Where("owner = ?", owner).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count wishlist items for owner %s: %w", owner, err)
	}
	return count, nil
}
