package services

import (
	"fmt"
	"time"

	"cardvault/internal/models"
	"cardvault/internal/repositories"
)

// WishlistService handles business logic related to wishlist items.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo}
}

// GetAllItems retrieves every wishlist item owned by the given user.
func (s *WishlistService) GetAllItems(owner string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.GetAllByOwner(owner)
}

// GetItemByID retrieves a single wishlist item, verifying ownership.
func (s *WishlistService) GetItemByID(owner, id string) (*models.WishlistItem, error) {
	item, err := s.wishlistRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item.Owner != owner {
		return nil, fmt.Errorf("wishlist item with ID %s: %w", id, repositories.ErrNotFound)
	}
	return item, nil
}

// CreateItem persists a new wishlist item for the given owner, applying the
// priority default.
func (s *WishlistService) CreateItem(owner string, item *models.WishlistItem) error {
	item.ID = ""
	item.Owner = owner
	item.CreatedAt = time.Now()
	if item.Priority == 0 {
		item.Priority = models.DefaultPriority
	}
	return s.wishlistRepo.Create(item)
}

// UpdateItem replaces the mutable fields of an existing wishlist item. The
// ID, owner and creation timestamp are preserved.
func (s *WishlistService) UpdateItem(owner, id string, in *models.WishlistItem) (*models.WishlistItem, error) {
	item, err := s.GetItemByID(owner, id)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Set = in.Set
	item.Condition = in.Condition
	item.MaxPrice = in.MaxPrice
	item.Type = in.Type
	if in.Priority != 0 {
		item.Priority = in.Priority
	}

	if err := s.wishlistRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes a wishlist item, verifying ownership.
func (s *WishlistService) DeleteItem(owner, id string) error {
	if _, err := s.GetItemByID(owner, id); err != nil {
		return err
	}
	return s.wishlistRepo.Delete(id)
}

// CountItems returns the number of wishlist items owned by the given user.
func (s *WishlistService) CountItems(owner string) (int64, error) {
	return s.wishlistRepo.CountByOwner(owner)
}
