package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/repository"
	"github.com/nutrihz/ConsultBack/internal/services"
)

type registrationCompleter interface {
	CompleteRegistration(ctx context.Context, userID int64, contact repository.ContactInput, answers models.QuizAnswers) (*models.Profile, error)
}

// RegistrationHandler finalizes intake: contact details plus the completed
// quiz answers become the user's stored health record.
type RegistrationHandler struct {
	intake registrationCompleter
}

func NewRegistrationHandler(intake registrationCompleter) *RegistrationHandler {
	return &RegistrationHandler{intake: intake}
}

type registrationRequest struct {
	FullName string             `json:"full_name"`
	Phone    string             `json:"phone"`
	Email    string             `json:"email"`
	Answers  models.QuizAnswers `json:"answers"`
}

// Complete validates every contact field before anything is persisted, so a
// bad phone number cannot leave a half-registered profile behind.
func (h *RegistrationHandler) Complete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req registrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if problem := validateFullName(req.FullName); problem != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": problem})
	}
	if problem := validatePhone(req.Phone); problem != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": problem})
	}
	email, problem := validateEmail(req.Email)
	if problem != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": problem})
	}

	profile, err := h.intake.CompleteRegistration(c.Context(), userID, repository.ContactInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    email,
	}, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuizIncomplete):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Complete the health quiz before registering"})
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete registration"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}
