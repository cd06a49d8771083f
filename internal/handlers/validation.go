package handlers

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nutrihz/ConsultBack/pkg/utils"
)

// currentUserID reads the authenticated user from the request locals set by
// the auth middleware.
func currentUserID(c *fiber.Ctx) (int64, bool) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return 0, false
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return userID, true
}

func validateFullName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 100 {
		return "Name must be between 2 and 100 characters"
	}
	return ""
}

func validatePhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '+':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
	if len(digits) < 10 || len(digits) > 15 || !utils.DigitsOnly(digits) {
		return "Phone number must be 10 to 15 digits"
	}
	return ""
}

// validateEmail normalizes to the lowered address form on success.
func validateEmail(email string) (string, string) {
	email = strings.TrimSpace(email)
	if len(email) > 255 {
		return "", "Email must be at most 255 characters"
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil {
		return "", "Invalid email format"
	}
	return strings.ToLower(parsed.Address), ""
}
