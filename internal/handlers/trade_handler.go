package handlers

import (
	"log"

	"cardvault/internal/listview"
	"cardvault/internal/models"
	"cardvault/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TradeHandler handles HTTP requests for trade listings.
type TradeHandler struct {
	service  *services.TradeService
	validate *validator.Validate
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(service *services.TradeService) *TradeHandler {
	return &TradeHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the trade routes with the Fiber app.
func (h *TradeHandler) RegisterRoutes(router fiber.Router) {
	tradeRoutes := router.Group("/trades")
	tradeRoutes.Get("/", h.HandleGetTrades)
	tradeRoutes.Get("/count", h.HandleCountTrades)
	tradeRoutes.Get("/:id", h.HandleGetTradeByID)
	tradeRoutes.Post("/", h.HandleCreateTrade)
	tradeRoutes.Delete("/:id", h.HandleDeleteTrade)
}

// HandleGetTrades lists the caller's trade listings, applying the optional
// search, type filter and sort query parameters.
func (h *TradeHandler) HandleGetTrades(c *fiber.Ctx) error {
	trades, err := h.service.GetAllTrades(owner(c))
	if err != nil {
		log.Printf("Error getting trades: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve trades",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"trades": listview.Trades(trades, listParams(c)),
	})
}

// HandleCountTrades returns the number of active trade listings.
func (h *TradeHandler) HandleCountTrades(c *fiber.Ctx) error {
	count, err := h.service.CountTrades(owner(c))
	if err != nil {
		log.Printf("Error counting trades: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not count trades",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleGetTradeByID retrieves a single trade listing.
func (h *TradeHandler) HandleGetTradeByID(c *fiber.Ctx) error {
	id := c.Params("id")
	trade, err := h.service.GetTradeByID(owner(c), id)
	if err != nil {
		log.Printf("Error getting trade by ID %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve trade",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"trade": trade})
}

// HandleCreateTrade adds a new trade listing for the caller.
func (h *TradeHandler) HandleCreateTrade(c *fiber.Ctx) error {
	var trade models.Trade
	if err := c.BodyParser(&trade); err != nil {
		log.Printf("Error parsing trade request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(trade); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateTrade(owner(c), &trade); err != nil {
		log.Printf("Error creating trade: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create trade",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"trade": trade})
}

// HandleDeleteTrade removes a trade listing.
func (h *TradeHandler) HandleDeleteTrade(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteTrade(owner(c), id); err != nil {
		log.Printf("Error deleting trade %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete trade",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Trade deleted successfully"})
}
