package handlers

import (
	"errors"
	"fmt"

	"cardvault/internal/listview"
	"cardvault/internal/middleware"
	"cardvault/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validationFailed renders a per-field error map for a failed struct
// validation, so the UI can surface each message next to its input.
func validationFailed(c *fiber.Ctx, err error) error {
	errorMessages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// statusForError maps a service error onto an HTTP status.
func statusForError(err error) int {
	if errors.Is(err, repositories.ErrNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// owner returns the acting username from the verified session context.
func owner(c *fiber.Ctx) string {
	return middleware.SessionFrom(c).Username()
}

// listParams reads the search/filter/sort query parameters shared by the
// collection list endpoints.
func listParams(c *fiber.Ctx) listview.Params {
	return listview.Params{
		Search:    c.Query("search"),
		Type:      c.Query("type"),
		SortField: c.Query("sort"),
		SortDir:   c.Query("dir"),
	}
}
