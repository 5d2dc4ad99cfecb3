package services_test

import (
	"fmt"
	"testing"
	"time"

	"cardvault/internal/models"
	"cardvault/internal/repositories"
	"cardvault/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCardService() (*services.CardService, *MockCardRepository, *MockNoteRepository) {
	cardRepo := new(MockCardRepository)
	noteRepo := new(MockNoteRepository)
	return services.NewCardService(cardRepo, noteRepo, nil), cardRepo, noteRepo
}

func TestCardService_CreateCard(t *testing.T) {
	service, cardRepo, _ := newCardService()

	card := &models.Card{
		Name:      "Charizard",
		Set:       "Base Set",
		Condition: models.ConditionNearMint,
		Price:     150.00,
		Type:      models.TypePokemon,
	}

	cardRepo.On("Create", mock.AnythingOfType("*models.Card")).Return(nil).Once()

	err := service.CreateCard("alice", card)
	assert.NoError(t, err)
	cardRepo.AssertExpectations(t)

	// Owner, timestamp and defaults are assigned server-side.
	assert.Equal(t, "alice", card.Owner)
	assert.False(t, card.CreatedAt.IsZero())
	assert.Equal(t, models.DefaultImage, card.Image)
	assert.Equal(t, models.DefaultRarity, card.Rarity)
}

func TestCardService_GetCardByID_OwnershipScoped(t *testing.T) {
	service, cardRepo, _ := newCardService()

	card := &models.Card{ID: "card-1", Name: "Charizard", Owner: "alice"}

	// The owner sees the card.
	cardRepo.On("GetByID", "card-1").Return(card, nil).Once()
	got, err := service.GetCardByID("alice", "card-1")
	assert.NoError(t, err)
	assert.Equal(t, card, got)

	// Another user gets not found, not forbidden.
	cardRepo.On("GetByID", "card-1").Return(card, nil).Once()
	_, err = service.GetCardByID("bob", "card-1")
	assert.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	cardRepo.AssertExpectations(t)
}

func TestCardService_UpdateCard(t *testing.T) {
	service, cardRepo, _ := newCardService()

	created := time.Now().Add(-time.Hour)
	existing := &models.Card{
		ID:        "card-1",
		Name:      "Charizard",
		Set:       "Base Set",
		Condition: models.ConditionGood,
		Price:     100.00,
		Image:     models.DefaultImage,
		Rarity:    "Rare Holo",
		Owner:     "alice",
		CreatedAt: created,
	}

	cardRepo.On("GetByID", "card-1").Return(existing, nil).Once()
	cardRepo.On("Update", mock.AnythingOfType("*models.Card")).Return(nil).Once()

	updated, err := service.UpdateCard("alice", "card-1", &models.Card{
		Name:      "Charizard",
		Set:       "Base Set",
		Condition: models.ConditionNearMint,
		Price:     150.00,
		Type:      models.TypePokemon,
	})
	assert.NoError(t, err)
	cardRepo.AssertExpectations(t)

	// Mutable fields replaced, identity fields untouched.
	assert.Equal(t, models.ConditionNearMint, updated.Condition)
	assert.Equal(t, 150.00, updated.Price)
	assert.Equal(t, "card-1", updated.ID)
	assert.Equal(t, "alice", updated.Owner)
	assert.Equal(t, created, updated.CreatedAt)
	// Rarity was not supplied, so the stored value survives.
	assert.Equal(t, "Rare Holo", updated.Rarity)
}

func TestCardService_UpdateCard_NotFound(t *testing.T) {
	service, cardRepo, _ := newCardService()

	cardRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("card with ID missing: %w", repositories.ErrNotFound)).Once()

	_, err := service.UpdateCard("alice", "missing", &models.Card{Name: "X"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	cardRepo.AssertExpectations(t)
}

func TestCardService_DeleteCard_CascadesNotes(t *testing.T) {
	service, cardRepo, noteRepo := newCardService()

	card := &models.Card{ID: "card-1", Owner: "alice"}
	cardRepo.On("GetByID", "card-1").Return(card, nil).Once()
	cardRepo.On("Delete", "card-1").Return(nil).Once()
	noteRepo.On("DeleteByCard", "card-1").Return(nil).Once()

	err := service.DeleteCard("alice", "card-1")
	assert.NoError(t, err)
	cardRepo.AssertExpectations(t)
	noteRepo.AssertExpectations(t)
}

func TestCardService_DeleteCard_RepeatedDeleteNotFound(t *testing.T) {
	service, cardRepo, noteRepo := newCardService()

	card := &models.Card{ID: "card-1", Owner: "alice"}
	cardRepo.On("GetByID", "card-1").Return(card, nil).Once()
	cardRepo.On("Delete", "card-1").Return(nil).Once()
	noteRepo.On("DeleteByCard", "card-1").Return(nil).Once()

	assert.NoError(t, service.DeleteCard("alice", "card-1"))

	// Second delete: the card is gone, so lookup reports not found.
	cardRepo.On("GetByID", "card-1").Return(nil, fmt.Errorf("card with ID card-1: %w", repositories.ErrNotFound)).Once()
	err := service.DeleteCard("alice", "card-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	cardRepo.AssertExpectations(t)
}

func TestCardService_CountCards(t *testing.T) {
	service, cardRepo, _ := newCardService()

	cardRepo.On("CountByOwner", "alice").Return(int64(3), nil).Once()
	count, err := service.CountCards("alice")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	cardRepo.AssertExpectations(t)
}
