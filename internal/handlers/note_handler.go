package handlers

import (
	"log"

	"cardvault/internal/models"
	"cardvault/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// NoteHandler handles HTTP requests for card notes.
type NoteHandler struct {
	service  *services.NoteService
	validate *validator.Validate
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(service *services.NoteService) *NoteHandler {
	return &NoteHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the note routes with the Fiber app.
func (h *NoteHandler) RegisterRoutes(router fiber.Router) {
	noteRoutes := router.Group("/notes")
	noteRoutes.Get("/", h.HandleGetNotes)
	noteRoutes.Get("/count", h.HandleCountNotes)
	noteRoutes.Post("/", h.HandleCreateNote)
	noteRoutes.Delete("/:id", h.HandleDeleteNote)
}

// HandleGetNotes lists the notes on one of the caller's cards. The cardId
// query parameter is required; notes are only ever viewed per card.
func (h *NoteHandler) HandleGetNotes(c *fiber.Ctx) error {
	cardID := c.Query("cardId")
	if cardID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "cardId query parameter is required",
		})
	}

	notes, err := h.service.GetNotesByCard(owner(c), cardID)
	if err != nil {
		log.Printf("Error getting notes for card %s: %v", cardID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve notes",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"notes": notes})
}

// HandleCountNotes returns the number of notes the caller has written.
func (h *NoteHandler) HandleCountNotes(c *fiber.Ctx) error {
	count, err := h.service.CountNotes(owner(c))
	if err != nil {
		log.Printf("Error counting notes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not count notes",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleCreateNote attaches a note to one of the caller's cards.
func (h *NoteHandler) HandleCreateNote(c *fiber.Ctx) error {
	var note models.Note
	if err := c.BodyParser(&note); err != nil {
		log.Printf("Error parsing note request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(note); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateNote(owner(c), &note); err != nil {
		log.Printf("Error creating note for card %s: %v", note.CardID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create note",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"note": note})
}

// HandleDeleteNote removes a note.
func (h *NoteHandler) HandleDeleteNote(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteNote(owner(c), id); err != nil {
		log.Printf("Error deleting note %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete note",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}
