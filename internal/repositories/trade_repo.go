package repositories

import "cardvault/internal/models"

// TradeRepository defines the interface for trade listing data access.
type TradeRepository interface {
	GetAllByOwner(owner string) ([]models.Trade, error)
	GetByID(id string) (*models.Trade, error)
	Create(trade *models.Trade) error
	Delete(id string) error
	CountByOwner(owner string) (int64, error)
}
