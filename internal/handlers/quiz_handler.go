package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/quiz"
	"github.com/nutrihz/ConsultBack/internal/scoring"
)

type storedAnswersReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.QuizAnswers, error)
}

// QuizHandler exposes the intake wizard over draft sessions kept in memory.
type QuizHandler struct {
	store       *quiz.Store
	answersRepo storedAnswersReader
}

func NewQuizHandler(store *quiz.Store, answersRepo storedAnswersReader) *QuizHandler {
	return &QuizHandler{store: store, answersRepo: answersRepo}
}

// CreateSession opens a wizard session. Authenticated users who already
// completed the quiz get their stored answers pre-filled for retaking.
func (h *QuizHandler) CreateSession(c *fiber.Ctx) error {
	var initial *models.QuizAnswers
	if userID, ok := currentUserID(c); ok {
		answers, err := h.answersRepo.GetByUserID(c.Context(), userID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load saved answers"})
		}
		initial = answers
	}

	sessionID := h.store.Create(initial)
	var payload fiber.Map
	err := h.store.With(sessionID, func(w *quiz.Wizard) error {
		payload = sessionState(sessionID, w)
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open session"})
	}
	return c.Status(fiber.StatusCreated).JSON(payload)
}

func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	var payload fiber.Map
	err := h.store.With(sessionID, func(w *quiz.Wizard) error {
		payload = sessionState(sessionID, w)
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found or expired"})
	}
	return c.JSON(payload)
}

type answerRequest struct {
	Field     string `json:"field"`
	Value     string `json:"value"`
	Condition string `json:"condition"`
	Checked   *bool  `json:"checked"`
}

// Answer writes one field of the draft. Multi-select medical conditions are
// toggled through condition/checked; everything else goes through
// field/value.
func (h *QuizHandler) Answer(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var payload fiber.Map
	err := h.store.With(sessionID, func(w *quiz.Wizard) error {
		if req.Condition != "" {
			checked := req.Checked == nil || *req.Checked
			if err := w.SetCondition(req.Condition, checked); err != nil {
				return err
			}
		} else {
			if err := w.SetField(quiz.Field(req.Field), req.Value); err != nil {
				return err
			}
		}
		payload = sessionState(sessionID, w)
		return nil
	})
	if err != nil {
		if errors.Is(err, quiz.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found or expired"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(payload)
}

// Next advances the wizard. Confirming the last step completes the quiz and
// attaches the computed score so the client can render results immediately.
func (h *QuizHandler) Next(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	var payload fiber.Map
	err := h.store.With(sessionID, func(w *quiz.Wizard) error {
		if err := w.Next(); err != nil {
			return err
		}
		payload = sessionState(sessionID, w)
		if w.Completed() {
			answers := w.Answers()
			bmi, ok := scoring.AnswersBMI(answers)
			payload["results"] = fiber.Map{
				"score":        scoring.NutritionScore(answers),
				"bmi":          bmi,
				"bmi_known":    ok,
				"bmi_category": scoring.ClassifyBMI(bmi, ok),
				"insights":     scoring.Insights(answers),
				"tips":         scoring.Tips(answers),
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found or expired"})
		case errors.Is(err, quiz.ErrStepIncomplete):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Answer the current question to continue"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to advance"})
	}
	return c.JSON(payload)
}

// Back steps backwards. Backing out of step 0 discards the session.
func (h *QuizHandler) Back(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	var payload fiber.Map
	exited := false
	err := h.store.With(sessionID, func(w *quiz.Wizard) error {
		w.Back()
		exited = w.Exited()
		payload = sessionState(sessionID, w)
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found or expired"})
	}
	if exited {
		h.store.Drop(sessionID)
	}
	return c.JSON(payload)
}

func sessionState(sessionID string, w *quiz.Wizard) fiber.Map {
	step, _ := quiz.StepAt(w.Step())
	return fiber.Map{
		"session_id":  sessionID,
		"step":        step,
		"total_steps": quiz.TotalSteps,
		"answers":     w.Answers(),
		"step_valid":  w.StepValid(),
		"completed":   w.Completed(),
		"exited":      w.Exited(),
	}
}
