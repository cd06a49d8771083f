package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/services"
)

type appointmentBooker interface {
	Book(ctx context.Context, userID int64, input services.BookAppointmentInput) (*models.AppointmentDetail, error)
	Pay(ctx context.Context, userID int64, appointmentID int64) (*services.PayResult, error)
	Get(ctx context.Context, userID int64, appointmentID int64) (*models.AppointmentDetail, error)
	ListAppointments(ctx context.Context, userID int64) ([]models.AppointmentDetail, error)
}

type AppointmentHandler struct {
	service appointmentBooker
}

func NewAppointmentHandler(service appointmentBooker) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type bookRequest struct {
	AppointmentType string  `json:"appointment_type"`
	Slot            string  `json:"slot"`
	Notes           *string `json:"notes"`
}

func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req bookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	detail, err := h.service.Book(c.Context(), userID, services.BookAppointmentInput{
		AppointmentType: req.AppointmentType,
		Slot:            req.Slot,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelectionMissing):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Choose an appointment type and a time slot"})
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to book appointment"})
	}

	return c.Status(fiber.StatusCreated).JSON(detail)
}

// Pay runs the payment for a pending appointment. The charge is abandoned if
// the client disconnects; nothing settles in the background.
func (h *AppointmentHandler) Pay(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment id"})
	}

	result, err := h.service.Pay(c.Context(), userID, int64(appointmentID))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your appointment"})
		case errors.Is(err, services.ErrPaymentDeclined):
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "Payment was declined"})
		case errors.Is(err, services.ErrInvalidStateTransition):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Appointment is not payable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process payment"})
	}

	return c.JSON(result)
}

func (h *AppointmentHandler) Get(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment id"})
	}

	detail, err := h.service.Get(c.Context(), userID, int64(appointmentID))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your appointment"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch appointment"})
	}

	return c.JSON(detail)
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	details, err := h.service.ListAppointments(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list appointments"})
	}

	return c.JSON(fiber.Map{"appointments": details})
}
