package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/nutrihz/ConsultBack/internal/journey"
)

type journeyResolver interface {
	Resolve(ctx context.Context, userID *int64, action string) (*journey.InitialState, error)
}

// JourneyHandler answers the first request a client makes on page load:
// where to land, whether to open the auth modal, and what to hydrate.
type JourneyHandler struct {
	service journeyResolver
}

func NewJourneyHandler(service journeyResolver) *JourneyHandler {
	return &JourneyHandler{service: service}
}

// Resolve runs behind optional auth; anonymous visitors land on the landing
// page. The action query parameter is consumed exactly once.
func (h *JourneyHandler) Resolve(c *fiber.Ctx) error {
	var userID *int64
	if id, ok := currentUserID(c); ok {
		userID = &id
	}

	state, err := h.service.Resolve(c.Context(), userID, c.Query("action"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve journey state"})
	}
	return c.JSON(state)
}
