package services

import (
	"fmt"
	"time"

	"cardvault/internal/models"
	"cardvault/internal/repositories"
)

// NoteService handles business logic related to card notes. Notes are always
// reached through their parent card, and the parent's ownership is
// cross-checked against the caller so one user cannot attach notes to, or
// read notes of, another user's card.
type NoteService struct {
	noteRepo repositories.NoteRepository
	cardRepo repositories.CardRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(noteRepo repositories.NoteRepository, cardRepo repositories.CardRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		cardRepo: cardRepo,
	}
}

// verifyParent loads the parent card and checks it belongs to the caller.
// A foreign or missing card is reported as not found either way.
func (s *NoteService) verifyParent(owner, cardID string) error {
	card, err := s.cardRepo.GetByID(cardID)
	if err != nil {
		return err
	}
	if card.Owner != owner {
		return fmt.Errorf("card with ID %s: %w", cardID, repositories.ErrNotFound)
	}
	return nil
}

// GetNotesByCard retrieves every note on one of the caller's cards.
func (s *NoteService) GetNotesByCard(owner, cardID string) ([]models.Note, error) {
	if err := s.verifyParent(owner, cardID); err != nil {
		return nil, err
	}
	return s.noteRepo.GetByCard(cardID)
}

// CreateNote attaches a new note to one of the caller's cards.
func (s *NoteService) CreateNote(owner string, note *models.Note) error {
	if err := s.verifyParent(owner, note.CardID); err != nil {
		return err
	}

	note.ID = ""
	note.Owner = owner
	note.CreatedAt = time.Now()
	return s.noteRepo.Create(note)
}

// DeleteNote removes a note, verifying ownership.
func (s *NoteService) DeleteNote(owner, id string) error {
	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if note.Owner != owner {
		return fmt.Errorf("note with ID %s: %w", id, repositories.ErrNotFound)
	}
	return s.noteRepo.Delete(id)
}

// CountNotes returns the number of notes owned by the given user.
func (s *NoteService) CountNotes(owner string) (int64, error) {
	return s.noteRepo.CountByOwner(owner)
}
