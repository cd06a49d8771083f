package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/nutrihz/ConsultBack/internal/scoring"
)

// ReportHandler renders the health report computed from the stored quiz
// answers.
type ReportHandler struct {
	answersRepo storedAnswersReader
}

func NewReportHandler(answersRepo storedAnswersReader) *ReportHandler {
	return &ReportHandler{answersRepo: answersRepo}
}

func (h *ReportHandler) Get(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	answers, err := h.answersRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Complete the health quiz to see your report"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load answers"})
	}

	bmi, known := scoring.AnswersBMI(*answers)
	return c.JSON(fiber.Map{
		"score":        scoring.NutritionScore(*answers),
		"bmi":          bmi,
		"bmi_known":    known,
		"bmi_category": scoring.ClassifyBMI(bmi, known),
		"insights":     scoring.Insights(*answers),
		"tips":         scoring.Tips(*answers),
		"answers":      answers,
	})
}
