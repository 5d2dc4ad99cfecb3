package services

import (
	"fmt"
	"log"
	"time"

	"cardvault/internal/models"
	"cardvault/internal/repositories"
	"cardvault/pkg/events"
)

// TradeService handles business logic related to trade listings. Listings
// are created and deleted, never edited.
type TradeService struct {
	tradeRepo repositories.TradeRepository
	mqClient  *events.Client
}

// NewTradeService creates a new TradeService. mqClient may be nil to disable
// event publishing.
func NewTradeService(tradeRepo repositories.TradeRepository, mqClient *events.Client) *TradeService {
	return &TradeService{
		tradeRepo: tradeRepo,
		mqClient:  mqClient,
	}
}

// GetAllTrades retrieves every trade listing owned by the given user.
func (s *TradeService) GetAllTrades(owner string) ([]models.Trade, error) {
	return s.tradeRepo.GetAllByOwner(owner)
}

// GetTradeByID retrieves a single trade listing, verifying ownership.
func (s *TradeService) GetTradeByID(owner, id string) (*models.Trade, error) {
	trade, err := s.tradeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trade.Owner != owner {
		return nil, fmt.Errorf("trade with ID %s: %w", id, repositories.ErrNotFound)
	}
	return trade, nil
}

// CreateTrade persists a new trade listing for the given owner.
func (s *TradeService) CreateTrade(owner string, trade *models.Trade) error {
	trade.ID = ""
	trade.Owner = owner
	trade.CreatedAt = time.Now()

	if err := s.tradeRepo.Create(trade); err != nil {
		return err
	}

	if err := s.mqClient.Publish("trade.created", map[string]interface{}{
		"id":        trade.ID,
		"card_name": trade.CardName,
		"owner":     trade.Owner,
	}); err != nil {
		log.Printf("Failed to publish trade.created event for %s: %v", trade.ID, err)
	}
	return nil
}

// DeleteTrade removes a trade listing, verifying ownership.
func (s *TradeService) DeleteTrade(owner, id string) error {
	if _, err := s.GetTradeByID(owner, id); err != nil {
		return err
	}

	if err := s.tradeRepo.Delete(id); err != nil {
		return err
	}

	if err := s.mqClient.Publish("trade.deleted", map[string]interface{}{
		"id":    id,
		"owner": owner,
	}); err != nil {
		log.Printf("Failed to publish trade.deleted event for %s: %v", id, err)
	}
	return nil
}

// CountTrades returns the number of trade listings owned by the given user.
func (s *TradeService) CountTrades(owner string) (int64, error) {
	return s.tradeRepo.CountByOwner(owner)
}
