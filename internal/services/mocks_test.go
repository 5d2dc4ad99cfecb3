package services_test

import (
	"cardvault/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCardRepository is a mock implementation of repositories.CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) GetAllByOwner(owner string) ([]models.Card, error) {
	args := m.Called(owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardRepository) GetByID(id string) (*models.Card, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepository) Create(card *models.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockCardRepository) Update(card *models.Card) error {
	args := m.Called(card)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCardRepository) CountByOwner(owner string) (int64, error) {
	args := m.Called(owner)
	return args.Get(0).(int64), args.Error(1)
}

// MockNoteRepository is a mock implementation of repositories.NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) GetByCard(cardID string) ([]models.Note, error) {
	args := m.Called(cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) GetByID(id string) (*models.Note, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) Create(note *models.Note) error {
	args := m.Called(note)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNoteRepository) DeleteByCard(cardID string) error {
	args := m.Called(cardID)
	return args.Error(0)
}

func (m *MockNoteRepository) CountByOwner(owner string) (int64, error) {
	args := m.Called(owner)
	return args.Get(0).(int64), args.Error(1)
}

// MockWishlistRepository is a mock implementation of repositories.WishlistRepository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) GetAllByOwner(owner string) ([]models.WishlistItem, error) {
	args := m.Called(owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) GetByID(id string) (*models.WishlistItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) Create(item *models.WishlistItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockWishlistRepository) Update(item *models.WishlistItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockWishlistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWishlistRepository) CountByOwner(owner string) (int64, error) {
	args := m.Called(owner)
	return args.Get(0).(int64), args.Error(1)
}

// MockTradeRepository is a mock implementation of repositories.TradeRepository
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) GetAllByOwner(owner string) ([]models.Trade, error) {
	args := m.Called(owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trade), args.Error(1)
}

func (m *MockTradeRepository) GetByID(id string) (*models.Trade, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trade), args.Error(1)
}

func (m *MockTradeRepository) Create(trade *models.Trade) error {
	args := m.Called(trade)
	return args.Error(0)
}

func (m *MockTradeRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTradeRepository) CountByOwner(owner string) (int64, error) {
	args := m.Called(owner)
	return args.Get(0).(int64), args.Error(1)
}
