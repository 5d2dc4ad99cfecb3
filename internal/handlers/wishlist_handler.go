package handlers

import (
	"log"

	"cardvault/internal/listview"
	"cardvault/internal/models"
	"cardvault/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for wishlist items.
type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetItems)
	wishlistRoutes.Get("/count", h.HandleCountItems)
	wishlistRoutes.Get("/:id", h.HandleGetItemByID)
	wishlistRoutes.Post("/", h.HandleCreateItem)
	wishlistRoutes.Put("/:id", h.HandleUpdateItem)
	wishlistRoutes.Delete("/:id", h.HandleDeleteItem)
}

// HandleGetItems lists the caller's wishlist, applying the optional search,
// type filter and sort query parameters.
func (h *WishlistHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems(owner(c))
	if err != nil {
		log.Printf("Error getting wishlist items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"items": listview.WishlistItems(items, listParams(c)),
	})
}

// HandleCountItems returns the size of the caller's wishlist.
func (h *WishlistHandler) HandleCountItems(c *fiber.Ctx) error {
	count, err := h.service.CountItems(owner(c))
	if err != nil {
		log.Printf("Error counting wishlist items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not count wishlist items",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleGetItemByID retrieves a single wishlist item.
func (h *WishlistHandler) HandleGetItemByID(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := h.service.GetItemByID(owner(c), id)
	if err != nil {
		log.Printf("Error getting wishlist item %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve wishlist item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"item": item})
}

// HandleCreateItem adds a wishlist item for the caller.
func (h *WishlistHandler) HandleCreateItem(c *fiber.Ctx) error {
	var item models.WishlistItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing wishlist request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(item); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateItem(owner(c), &item); err != nil {
		log.Printf("Error creating wishlist item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create wishlist item",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": item})
}

// HandleUpdateItem replaces the mutable fields of an existing wishlist item.
func (h *WishlistHandler) HandleUpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")

	var in models.WishlistItem
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing wishlist update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(in); err != nil {
		return validationFailed(c, err)
	}

	item, err := h.service.UpdateItem(owner(c), id, &in)
	if err != nil {
		log.Printf("Error updating wishlist item %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update wishlist item",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"item": item})
}

// HandleDeleteItem removes a wishlist item.
func (h *WishlistHandler) HandleDeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteItem(owner(c), id); err != nil {
		log.Printf("Error deleting wishlist item %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete wishlist item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Wishlist item deleted successfully"})
}
