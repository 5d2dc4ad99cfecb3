package services

import (
	"fmt"
	"log"
	"time"

	"cardvault/internal/models"
	"cardvault/internal/repositories"
	"cardvault/pkg/events"
)

// CardService handles business logic related to collection cards. Every
// operation is scoped to the owner derived from the caller's verified
// session; a card belonging to someone else is reported as not found.
type CardService struct {
	cardRepo repositories.CardRepository
	noteRepo repositories.NoteRepository
	mqClient *events.Client
}

// NewCardService creates a new CardService. mqClient may be nil to disable
// event publishing.
func NewCardService(cardRepo repositories.CardRepository, noteRepo repositories.NoteRepository, mqClient *events.Client) *CardService {
	return &CardService{
		cardRepo: cardRepo,
		noteRepo: noteRepo,
		mqClient: mqClient,
	}
}

// GetAllCards retrieves every card owned by the given user.
func (s *CardService) GetAllCards(owner string) ([]models.Card, error) {
	return s.cardRepo.GetAllByOwner(owner)
}

// GetCardByID retrieves a single card, verifying ownership.
func (s *CardService) GetCardByID(owner, id string) (*models.Card, error) {
	card, err := s.cardRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if card.Owner != owner {
		return nil, fmt.Errorf("card with ID %s: %w", id, repositories.ErrNotFound)
	}
	return card, nil
}

// CreateCard persists a new card for the given owner, applying the image
// and rarity defaults.
func (s *CardService) CreateCard(owner string, card *models.Card) error {
	card.ID = ""
	card.Owner = owner
	card.CreatedAt = time.Now()
	if card.Image == "" {
		card.Image = models.DefaultImage
	}
	if card.Rarity == "" {
		card.Rarity = models.DefaultRarity
	}

	if err := s.cardRepo.Create(card); err != nil {
		return err
	}

	if err := s.mqClient.Publish("card.created", map[string]interface{}{
		"id":    card.ID,
		"name":  card.Name,
		"owner": card.Owner,
	}); err != nil {
		log.Printf("Failed to publish card.created event for %s: %v", card.ID, err)
	}
	return nil
}

// UpdateCard replaces the mutable fields of an existing card. The ID, owner
// and creation timestamp are preserved.
func (s *CardService) UpdateCard(owner, id string, in *models.Card) (*models.Card, error) {
	card, err := s.GetCardByID(owner, id)
	if err != nil {
		return nil, err
	}

	card.Name = in.Name
	card.Set = in.Set
	card.Condition = in.Condition
	card.Price = in.Price
	card.Type = in.Type
	if in.Image != "" {
		card.Image = in.Image
	}
	if in.Rarity != "" {
		card.Rarity = in.Rarity
	}

	if err := s.cardRepo.Update(card); err != nil {
		return nil, err
	}
	return card, nil
}

// DeleteCard removes a card and then its notes. The two deletions are
// independent single-document calls; if note cleanup fails after the card is
// gone, the failure is logged and the orphaned notes remain.
func (s *CardService) DeleteCard(owner, id string) error {
	if _, err := s.GetCardByID(owner, id); err != nil {
		return err
	}

	if err := s.cardRepo.Delete(id); err != nil {
		return err
	}
	if err := s.noteRepo.DeleteByCard(id); err != nil {
		log.Printf("Failed to delete notes for card %s: %v", id, err)
	}

	if err := s.mqClient.Publish("card.deleted", map[string]interface{}{
		"id":    id,
		"owner": owner,
	}); err != nil {
		log.Printf("Failed to publish card.deleted event for %s: %v", id, err)
	}
	return nil
}

// CountCards returns the number of cards owned by the given user.
func (s *CardService) CountCards(owner string) (int64, error) {
	return s.cardRepo.CountByOwner(owner)
}
