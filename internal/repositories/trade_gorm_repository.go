package repositories

import (
	"errors"
	"fmt"

	"cardvault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTradeRepository is a GORM implementation of TradeRepository.
type GORMTradeRepository struct {
	db *gorm.DB
}

// NewGORMTradeRepository creates a new instance of GORMTradeRepository.
func NewGORMTradeRepository(db *gorm.DB) *GORMTradeRepository {
	return &GORMTradeRepository{db: db}
}

// GetAllByOwner retrieves every trade listing owned by the given user.
func (r *GORMTradeRepository) GetAllByOwner(owner string) ([]models.Trade, error) {
	var trades []models.Trade
	if err := r.db.Find(&trades, "owner = ?", owner).Error; err != nil {
		return nil, fmt.Errorf("failed to get trades for owner %s: %w", owner, err)
	}
	return trades, nil
}

// GetByID retrieves a single trade listing by its ID.
func (r *GORMTradeRepository) GetByID(id string) (*models.Trade, error) {
	var trade models.Trade
	if err := r.db.First(&trade, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("trade with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trade by ID %s: %w", id, err)
	}
	return &trade, nil
}

// Create persists a new trade listing, assigning an ID if none is set.
func (r *GORMTradeRepository) Create(trade *models.Trade) error {
	if trade.ID == "" {
		trade.ID = uuid.New().String()
	}
	if err := r.db.Create(trade).Error; err != nil {
		return fmt.Errorf("failed to create trade: %w", err)
	}
	return nil
}

// Delete removes a trade listing by its ID.
func (r *GORMTradeRepository) Delete(id string) error {
	res := r.db.Delete(&models.Trade{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete trade: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("trade with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountByOwner returns the number of trade listings owned by the given user.
func (r *GORMTradeRepository) CountByOwner(owner string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Trade{}).Where("owner = ?", owner).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count trades for owner %s: %w", owner, err)
	}
	return count, nil
}
