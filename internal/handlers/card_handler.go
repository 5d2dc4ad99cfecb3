package handlers

import (
	"log"

	"cardvault/internal/listview"
	"cardvault/internal/models"
	"cardvault/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CardHandler handles HTTP requests for collection cards.
type CardHandler struct {
	service  *services.CardService
	validate *validator.Validate
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(service *services.CardService) *CardHandler {
	return &CardHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the card routes with the Fiber app.
func (h *CardHandler) RegisterRoutes(router fiber.Router) {
	cardRoutes := router.Group("/cards")
	cardRoutes.Get("/", h.HandleGetCards)
	cardRoutes.Get("/count", h.HandleCountCards)
	cardRoutes.Get("/:id", h.HandleGetCardByID)
	cardRoutes.Post("/", h.HandleCreateCard)
	cardRoutes.Put("/:id", h.HandleUpdateCard)
	cardRoutes.Delete("/:id", h.HandleDeleteCard)
}

// HandleGetCards lists the caller's cards, applying the optional search,
// type filter and sort query parameters.
func (h *CardHandler) HandleGetCards(c *fiber.Ctx) error {
	cards, err := h.service.GetAllCards(owner(c))
	if err != nil {
		log.Printf("Error getting cards: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cards",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"cards": listview.Cards(cards, listParams(c)),
	})
}

// HandleCountCards returns the size of the caller's collection.
func (h *CardHandler) HandleCountCards(c *fiber.Ctx) error {
	count, err := h.service.CountCards(owner(c))
	if err != nil {
		log.Printf("Error counting cards: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not count cards",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleGetCardByID retrieves a single card.
func (h *CardHandler) HandleGetCardByID(c *fiber.Ctx) error {
	id := c.Params("id")
	card, err := h.service.GetCardByID(owner(c), id)
	if err != nil {
		log.Printf("Error getting card by ID %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve card",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"card": card})
}

// HandleCreateCard adds a card to the caller's collection.
func (h *CardHandler) HandleCreateCard(c *fiber.Ctx) error {
	var card models.Card
	if err := c.BodyParser(&card); err != nil {
		log.Printf("Error parsing card request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(card); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateCard(owner(c), &card); err != nil {
		log.Printf("Error creating card: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create card",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"card": card})
}

// HandleUpdateCard replaces the mutable fields of an existing card.
func (h *CardHandler) HandleUpdateCard(c *fiber.Ctx) error {
	id := c.Params("id")

	var in models.Card
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing card update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(in); err != nil {
		return validationFailed(c, err)
	}

	card, err := h.service.UpdateCard(owner(c), id, &in)
	if err != nil {
		log.Printf("Error updating card %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update card",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"card": card})
}

// HandleDeleteCard removes a card (and its notes) from the collection.
func (h *CardHandler) HandleDeleteCard(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteCard(owner(c), id); err != nil {
		log.Printf("Error deleting card %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete card",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Card deleted successfully"})
}
