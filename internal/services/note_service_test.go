package services_test

import (
	"fmt"
	"testing"

	"cardvault/internal/models"
	"cardvault/internal/repositories"
	"cardvault/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newNoteService() (*services.NoteService, *MockNoteRepository, *MockCardRepository) {
	noteRepo := new(MockNoteRepository)
	cardRepo := new(MockCardRepository)
	return services.NewNoteService(noteRepo, cardRepo), noteRepo, cardRepo
}

func TestNoteService_CreateNote(t *testing.T) {
	service, noteRepo, cardRepo := newNoteService()

	parent := &models.Card{ID: "card-1", Owner: "alice"}
	cardRepo.On("GetByID", "card-1").Return(parent, nil).Once()
	noteRepo.On("Create", mock.AnythingOfType("*models.Note")).Return(nil).Once()

	note := &models.Note{CardID: "card-1", Content: "First edition stamp looks genuine"}
	err := service.CreateNote("alice", note)
	assert.NoError(t, err)
	assert.Equal(t, "alice", note.Owner)
	assert.False(t, note.CreatedAt.IsZero())
	noteRepo.AssertExpectations(t)
	cardRepo.AssertExpectations(t)
}

func TestNoteService_CreateNote_MissingParent(t *testing.T) {
	service, _, cardRepo := newNoteService()

	cardRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("card with ID missing: %w", repositories.ErrNotFound)).Once()

	err := service.CreateNote("alice", &models.Note{CardID: "missing", Content: "orphan"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	cardRepo.AssertExpectations(t)
}

func TestNoteService_CreateNote_ForeignParent(t *testing.T) {
	service, _, cardRepo := newNoteService()

	// The parent exists but belongs to somebody else; the caller learns
	// nothing beyond "not found".
	parent := &models.Card{ID: "card-1", Owner: "bob"}
	cardRepo.On("GetByID", "card-1").Return(parent, nil).Once()

	err := service.CreateNote("alice", &models.Note{CardID: "card-1", Content: "sneaky"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	cardRepo.AssertExpectations(t)
}

func TestNoteService_GetNotesByCard(t *testing.T) {
	service, noteRepo, cardRepo := newNoteService()

	parent := &models.Card{ID: "card-1", Owner: "alice"}
	notes := []models.Note{{ID: "note-1", CardID: "card-1", Owner: "alice", Content: "graded 9.5"}}

	cardRepo.On("GetByID", "card-1").Return(parent, nil).Once()
	noteRepo.On("GetByCard", "card-1").Return(notes, nil).Once()

	got, err := service.GetNotesByCard("alice", "card-1")
	assert.NoError(t, err)
	assert.Equal(t, notes, got)
	noteRepo.AssertExpectations(t)
	cardRepo.AssertExpectations(t)
}

func TestNoteService_DeleteNote(t *testing.T) {
	service, noteRepo, _ := newNoteService()

	note := &models.Note{ID: "note-1", CardID: "card-1", Owner: "alice"}

	// Owner can delete.
	noteRepo.On("GetByID", "note-1").Return(note, nil).Once()
	noteRepo.On("Delete", "note-1").Return(nil).Once()
	assert.NoError(t, service.DeleteNote("alice", "note-1"))

	// A different user cannot.
	noteRepo.On("GetByID", "note-1").Return(note, nil).Once()
	err := service.DeleteNote("bob", "note-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	noteRepo.AssertExpectations(t)
}
