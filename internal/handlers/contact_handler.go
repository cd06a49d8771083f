package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/repository"
)

type inquirySubmitter interface {
	Submit(ctx context.Context, input repository.CreateInquiryInput) (*models.ContactInquiry, error)
}

type ContactHandler struct {
	service inquirySubmitter
}

func NewContactHandler(service inquirySubmitter) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if problem := validateFullName(req.Name); problem != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": problem})
	}
	email, problem := validateEmail(req.Email)
	if problem != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": problem})
	}
	if problem := validatePhone(req.Phone); problem != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": problem})
	}
	if len(req.Subject) < 5 || len(req.Subject) > 200 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Subject must be between 5 and 200 characters"})
	}
	if len(req.Message) < 10 || len(req.Message) > 1000 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Message must be between 10 and 1000 characters"})
	}

	var userID *int64
	if id, ok := currentUserID(c); ok {
		userID = &id
	}

	inquiry, err := h.service.Submit(c.Context(), repository.CreateInquiryInput{
		UserID:  userID,
		Name:    req.Name,
		Email:   email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to submit inquiry"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"inquiry_id": inquiry.ID,
	})
}
